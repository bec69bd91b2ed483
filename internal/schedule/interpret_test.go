package schedule

import (
	"slices"
	"testing"
)

func TestParseBlocks(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []TimeBlock
	}{
		{
			name: "two days mixed notation",
			in:   "LU 10:00-14:00, MI 9-12",
			want: []TimeBlock{{Monday, 10, 14}, {Wednesday, 9, 12}},
		},
		{
			name: "half hour start truncates",
			in:   "MI 1330-1500",
			want: []TimeBlock{{Wednesday, 13, 15}},
		},
		{
			name: "half hour end rounds up",
			in:   "VI 0700-0930",
			want: []TimeBlock{{Friday, 7, 10}},
		},
		{
			name: "minutes below thirty are dropped",
			in:   "JU 1000-1229",
			want: []TimeBlock{{Thursday, 10, 12}},
		},
		{
			name: "new day token replaces cursor",
			in:   "LU Y MI 1000-1200",
			want: []TimeBlock{{Wednesday, 10, 12}},
		},
		{
			name: "cursor applies to later ranges",
			in:   "SA 8-10 12-14",
			want: []TimeBlock{{Saturday, 8, 10}, {Saturday, 12, 14}},
		},
		{
			name: "full day names",
			in:   "Martes 16:00-18:00, Jueves 16:00-18:00",
			want: []TimeBlock{{Tuesday, 16, 18}, {Thursday, 16, 18}},
		},
		{
			name: "range before any day is dropped",
			in:   "1000-1200 LU 14-16",
			want: []TimeBlock{{Monday, 14, 16}},
		},
		{
			name: "unrecognized tokens ignored",
			in:   "LU aula 12 10-12 edificio",
			want: []TimeBlock{{Monday, 10, 12}},
		},
		{
			name: "overlapping blocks are not merged",
			in:   "LU 10-12 11-13",
			want: []TimeBlock{{Monday, 10, 12}, {Monday, 11, 13}},
		},
		{
			name: "inverted range is skipped",
			in:   "LU 14-10",
			want: nil,
		},
		{
			name: "too many digits is not a range",
			in:   "LU 10000-12000",
			want: nil,
		},
		{
			name: "empty text",
			in:   "",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseBlocks(tt.in)
			if !slices.Equal(got, tt.want) {
				t.Errorf("ParseBlocks(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseBlocks_Deterministic(t *testing.T) {
	inputs := []string{"LU 10:00-14:00, MI 9-12", "VI 0700-0930", "1000-1200"}
	for _, in := range inputs {
		first := ParseBlocks(in)
		// Interleave another section to make sure no cursor state leaks.
		_ = ParseBlocks("SA 8-20")
		second := ParseBlocks(in)
		if !slices.Equal(first, second) {
			t.Errorf("ParseBlocks(%q) not stable: %v then %v", in, first, second)
		}
	}
}

func TestInterpret_RangeAfterDayFromPreviousCall(t *testing.T) {
	_ = Interpret([]string{"lu"})
	if got := Interpret([]string{"10-12"}); len(got) != 0 {
		t.Errorf("expected no blocks without a day token, got %v", got)
	}
}

func TestNormalizeHour(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"9", 9},
		{"14", 14},
		{"24", 24},
		{"0700", 7},
		{"1330", 13.5},
		{"1329", 13},
		{"1359", 13.5},
		{"930", 9.5},
		{"1500", 15},
	}

	for _, tt := range tests {
		got, err := NormalizeHour(tt.in)
		if err != nil {
			t.Fatalf("NormalizeHour(%q) unexpected error: %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("NormalizeHour(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestNormalizeHour_Invalid(t *testing.T) {
	if _, err := NormalizeHour("ab"); err == nil {
		t.Error("expected error for non-numeric input")
	}
}

func TestTimeBlockString(t *testing.T) {
	b := TimeBlock{Day: Wednesday, Start: 13, End: 15}
	if got := b.String(); got != "Miércoles 13-15" {
		t.Errorf("String() = %q, want %q", got, "Miércoles 13-15")
	}
	if b.Hours() != 2 {
		t.Errorf("Hours() = %d, want 2", b.Hours())
	}
}
