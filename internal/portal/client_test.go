package portal

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"
)

const resultPage = `<table>
<tr><td colspan="6" style="background-color:#64C2FD">Taller: MAX CETTO</td></tr>
<tr class="sombreado"><td>1140</td><td>TALLER INTEGRAL I</td><td>1501</td><td>30</td><td>RAMIREZ</td><td><b>LU 10-14</b></td></tr>
</table>`

func TestClient_QuerySendsForm(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}
		if r.URL.Path != "/hor/taller.php" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if !strings.HasPrefix(r.Header.Get("Content-Type"), "application/x-www-form-urlencoded") {
			t.Errorf("unexpected content type %q", r.Header.Get("Content-Type"))
		}
		if r.Header.Get("X-Requested-With") != "XMLHttpRequest" {
			t.Error("missing X-Requested-With header")
		}
		if r.Header.Get("User-Agent") == "" {
			t.Error("missing User-Agent header")
		}
		if err := r.ParseForm(); err != nil {
			t.Fatalf("ParseForm: %v", err)
		}
		want := map[string]string{"estu": "0", "qsemac": "20262", "tal": "8", "talsem": "3"}
		for k, v := range want {
			if got := r.PostForm.Get(k); got != v {
				t.Errorf("form %s = %q, want %q", k, got, v)
			}
		}
		_, _ = w.Write([]byte(resultPage))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "20262", 5*time.Second)
	sections, err := c.Search(context.Background(), TallerSearch(8, 3))
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if len(sections) != 1 {
		t.Fatalf("got %d sections, want 1", len(sections))
	}
	if sections[0].Agrupacion != "MAX CETTO" {
		t.Errorf("got context %q", sections[0].Agrupacion)
	}
}

func TestClient_NonOKStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "20262", 5*time.Second)
	_, err := c.Query(context.Background(), "genero.php", nil)
	if err == nil {
		t.Fatal("expected error for non-200 status")
	}
	if !strings.Contains(err.Error(), "502") {
		t.Errorf("expected status in error, got %v", err)
	}
}

func TestClient_CanceledContext(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(resultPage))
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	c := NewClient(srv.URL, "20262", 5*time.Second)
	_, err := c.Query(ctx, "taller.php", nil)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

func TestClient_CacheHit(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		_, _ = w.Write([]byte(resultPage))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "20262", 5*time.Second, WithCache(NewCache(t.TempDir(), time.Hour)))
	for range 3 {
		if _, err := c.Search(context.Background(), GeneroSearch()); err != nil {
			t.Fatalf("Search failed: %v", err)
		}
	}
	if got := calls.Load(); got != 1 {
		t.Errorf("expected 1 request, got %d", got)
	}

	if _, err := c.Search(context.Background(), ComplementariosSearch(5)); err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if got := calls.Load(); got != 2 {
		t.Errorf("expected a new request for a different form, got %d calls", got)
	}
}
