package ui

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/huh/spinner"
	"github.com/spf13/cobra"

	"github.com/javiermolinar/horario/internal/catalog"
	"github.com/javiermolinar/horario/internal/portal"
	"github.com/javiermolinar/horario/internal/schedule"
)

// Search modes accepted by the search command.
var searchModes = []string{"taller", "optativas", "lip", "complementarios", "asignatura", "genero", "profesor"}

type searchOptions struct {
	taller     string
	semestre   int
	area       string
	lip        string
	asignatura string
	profesor   string
	filter     string
	add        bool
	refresh    bool
}

func (a *App) searchCmd() *cobra.Command {
	var opts searchOptions

	cmd := &cobra.Command{
		Use:   "search <mode>",
		Short: "Search the portal for groups",
		Long: `Search the schedule portal and print the groups found.

Modes:
  taller           groups of a workshop (--taller, --semestre; semestre 0 lists all)
  optativas        electives of a knowledge area (--area)
  lip              electives of a line of professional interest (--lip)
  complementarios  complementary courses (--semestre 1-10)
  asignatura       every group of a course (--asignatura, name or key)
  genero           groups that satisfy the gender-studies requirement
  profesor         a professor's groups (--profesor)

Catalog names are matched ignoring case and accents; any unique fragment works.
With --add, pick groups from the results to add to the collection.`,
		Example: `  horario search taller --taller "max cetto" --semestre 3
  horario search optativas --area teoria
  horario search asignatura --asignatura 1140 --add
  horario search profesor --profesor abud`,
		ValidArgs: searchModes,
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			s, err := buildSearch(args[0], opts)
			if err != nil {
				return err
			}

			if opts.refresh {
				if err := a.clearCache(); err != nil {
					return err
				}
			}

			sections, err := a.fetch(ctx, a.portalClient(), s)
			if err != nil {
				return fmt.Errorf("searching %s: %w", s.Name, err)
			}
			sections = filterSections(sections, opts.filter)

			if len(sections) == 0 {
				_, _ = fmt.Fprintln(a.out, "No groups found.")
				return nil
			}

			_, _ = fmt.Fprintf(a.out, "%s\n\n", formatHeader(fmt.Sprintf("%d groups found", len(sections))))
			PrintSections(a.out, sections, PrintOpts{Numbered: true})

			if !opts.add {
				return nil
			}

			selected, err := selectSections(sections)
			if err != nil {
				return err
			}
			c, err := a.activeCollection(ctx)
			if err != nil {
				return err
			}
			added, err := a.addSections(ctx, c, selected)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(a.out, "\n%s\n", formatSuccess(fmt.Sprintf("Added %d groups to %s", added, c.Name)))
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.taller, "taller", "", "Workshop name or number (default: all)")
	cmd.Flags().IntVar(&opts.semestre, "semestre", 1, "Semester (0 lists every semester of a workshop)")
	cmd.Flags().StringVar(&opts.area, "area", "", "Elective knowledge area (default: all)")
	cmd.Flags().StringVar(&opts.lip, "lip", "", "Line of professional interest (default: all)")
	cmd.Flags().StringVar(&opts.asignatura, "asignatura", "", "Course name or key")
	cmd.Flags().StringVar(&opts.profesor, "profesor", "", "Professor name or portal id (RFC|NAME)")
	cmd.Flags().StringVar(&opts.filter, "filter", "", "Only show groups whose course, professor or key contains this text")
	cmd.Flags().BoolVar(&opts.add, "add", false, "Pick groups from the results and add them to the collection")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "Discard cached portal responses before searching")

	return cmd
}

// buildSearch resolves catalog names and flag values into a portal search.
func buildSearch(mode string, o searchOptions) (portal.Search, error) {
	switch mode {
	case "taller":
		tal, err := catalogInt(catalog.Talleres, o.taller)
		if err != nil {
			return portal.Search{}, err
		}
		if o.semestre < 0 || o.semestre > 10 {
			return portal.Search{}, fmt.Errorf("semestre must be between 0 and 10, got %d", o.semestre)
		}
		return portal.TallerSearch(tal, o.semestre), nil

	case "optativas":
		area, err := catalogInt(catalog.Areas, o.area)
		if err != nil {
			return portal.Search{}, err
		}
		return portal.OptativasSearch(area), nil

	case "lip":
		lip, err := catalogInt(catalog.LIPs, o.lip)
		if err != nil {
			return portal.Search{}, err
		}
		return portal.LIPSearch(lip), nil

	case "complementarios":
		if o.semestre < 1 || o.semestre > 10 {
			return portal.Search{}, fmt.Errorf("semestre must be between 1 and 10, got %d", o.semestre)
		}
		return portal.ComplementariosSearch(o.semestre), nil

	case "asignatura":
		if strings.TrimSpace(o.asignatura) == "" {
			return portal.Search{}, errors.New("--asignatura is required")
		}
		// Any numeric key is accepted, not only the ones in the catalog.
		if n, err := strconv.Atoi(strings.TrimSpace(o.asignatura)); err == nil {
			return portal.AsignaturaSearch(n), nil
		}
		id, err := catalogInt(catalog.Asignaturas, o.asignatura)
		if err != nil {
			return portal.Search{}, err
		}
		return portal.AsignaturaSearch(id), nil

	case "genero":
		return portal.GeneroSearch(), nil

	case "profesor":
		q := strings.TrimSpace(o.profesor)
		if q == "" {
			return portal.Search{}, errors.New("--profesor is required")
		}
		if strings.Contains(q, "|") {
			return portal.ProfesorSearch(q), nil
		}
		e, err := catalog.Lookup(catalog.Profesores, q)
		if err != nil {
			return portal.Search{}, err
		}
		return portal.ProfesorSearch(e.Value), nil
	}
	return portal.Search{}, fmt.Errorf("unknown search mode %q (valid: %s)", mode, strings.Join(searchModes, ", "))
}

// catalogInt resolves a catalog entry to its numeric value. Empty selects all.
func catalogInt(kind catalog.Kind, query string) (int, error) {
	if strings.TrimSpace(query) == "" {
		return 0, nil
	}
	e, err := catalog.Lookup(kind, query)
	if err != nil {
		return 0, err
	}
	return e.Int()
}

type searcher interface {
	Search(ctx context.Context, s portal.Search) ([]*schedule.Section, error)
}

// fetch runs a search, behind a spinner when attached to a terminal.
func (a *App) fetch(ctx context.Context, src searcher, s portal.Search) ([]*schedule.Section, error) {
	if !isTerminal() {
		return src.Search(ctx, s)
	}

	var (
		sections []*schedule.Section
		fetchErr error
	)
	err := spinner.New().
		Title("Consultando el portal...").
		Context(ctx).
		Action(func() {
			sections, fetchErr = src.Search(ctx, s)
		}).
		Run()
	if err != nil {
		return nil, err
	}
	return sections, fetchErr
}

// filterSections keeps sections whose course, professor or key contains query,
// ignoring case and accents.
func filterSections(sections []*schedule.Section, query string) []*schedule.Section {
	q := catalog.Fold(query)
	if q == "" {
		return sections
	}
	var out []*schedule.Section
	for _, s := range sections {
		haystack := catalog.Fold(s.Materia + " " + s.Profesor + " " + s.Clave)
		if strings.Contains(haystack, q) {
			out = append(out, s)
		}
	}
	return out
}

// selectSections asks the user which results to keep.
func selectSections(sections []*schedule.Section) ([]*schedule.Section, error) {
	options := make([]huh.Option[int], len(sections))
	for i, s := range sections {
		label := fmt.Sprintf("%s · %s", courseLabel(s), s.Horario)
		if s.Profesor != "" {
			label += " · " + s.Profesor
		}
		options[i] = huh.NewOption(label, i)
	}

	var picked []int
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewMultiSelect[int]().
				Title("Select groups to add").
				Description("Space = toggle, Enter = confirm. Start typing to filter.").
				Options(options...).
				Value(&picked).
				Filterable(true).
				Height(12),
		),
	)
	if err := form.Run(); err != nil {
		return nil, err
	}

	selected := make([]*schedule.Section, 0, len(picked))
	for _, i := range picked {
		selected = append(selected, sections[i])
	}
	return selected, nil
}

// addSections stores sections in a collection, skipping the ones already there.
func (a *App) addSections(ctx context.Context, c *schedule.Collection, sections []*schedule.Section) (int, error) {
	added := 0
	for _, s := range sections {
		err := a.repo.AddSection(ctx, c.ID, s)
		switch {
		case errors.Is(err, schedule.ErrDuplicateSection):
			_, _ = fmt.Fprintf(a.out, "%s\n", formatWarning("Skipping "+s.ID+": already in "+c.Name))
		case err != nil:
			return added, fmt.Errorf("adding %s: %w", s.ID, err)
		default:
			added++
		}
	}
	return added, nil
}

func (a *App) catalogCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "catalog [kind]",
		Short:     "List the names accepted by search flags",
		Long:      "List workshops (taller), elective areas (area), lines of interest (lip), courses (asignatura) or professors (profesor).",
		ValidArgs: []string{"taller", "area", "lip", "asignatura", "profesor"},
		Args:      cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			kinds := catalog.Kinds()
			if len(args) == 1 {
				k, err := catalog.ParseKind(args[0])
				if err != nil {
					return err
				}
				kinds = []catalog.Kind{k}
			}
			for i, k := range kinds {
				if i > 0 {
					_, _ = fmt.Fprintln(a.out)
				}
				entries, err := catalog.Entries(k)
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintf(a.out, "=== %s ===\n", formatHeader(string(k)))
				for _, e := range entries {
					_, _ = fmt.Fprintf(a.out, "  %s %s\n", e.Name, formatMuted("("+e.Value+")"))
				}
			}
			return nil
		},
	}
}
