package oracle

import (
	"context"
	"encoding/json"
	"errors"
	"math"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gogpu/wcag"
)

// fakeChecker serves the WebAIM API shape from the local implementation,
// quantized to 8 bits and rounded to two decimals as the service does.
func fakeChecker(t *testing.T) http.HandlerFunc {
	t.Helper()
	return func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasSuffix(r.URL.RawQuery, "&api") {
			http.Error(w, "missing api flag", http.StatusBadRequest)
			return
		}
		fg, err1 := parseHex(r.URL.Query().Get("fcolor"))
		bg, err2 := parseHex(r.URL.Query().Get("bcolor"))
		if err1 != nil || err2 != nil {
			http.Error(w, "bad color", http.StatusBadRequest)
			return
		}
		res, err := wcag.CheckContrast(fg, bg)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		rep := res.Report()
		rep.Ratio = math.Round(rep.Ratio*100) / 100
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(rep)
	}
}

func parseHex(s string) (wcag.Color, error) {
	if len(s) != 6 {
		return wcag.Color{}, errors.New("want 6 digits")
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return wcag.Color{}, err
	}
	return wcag.RGB8(uint8(v>>16), uint8(v>>8), uint8(v)), nil
}

func newTestClient(t *testing.T, h http.Handler) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return New(WithBaseURL(srv.URL+"/resources/contrastchecker/"), WithHTTPClient(srv.Client()))
}

func TestVerifyRequest(t *testing.T) {
	var gotPath, gotQuery string
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath, gotQuery = r.URL.Path, r.URL.RawQuery
		_, _ = w.Write([]byte(`{"ratio":21,"AA":"pass","AALarge":"pass","AAA":"pass","AAALarge":"pass"}`))
	}))

	rep, err := c.Verify(context.Background(), wcag.Color{}, wcag.Color{R: 1, G: 1, B: 1})
	if err != nil {
		t.Fatalf("Verify error: %v", err)
	}
	if gotPath != "/resources/contrastchecker/" {
		t.Errorf("path = %q", gotPath)
	}
	if want := "fcolor=000000&bcolor=ffffff&api"; gotQuery != want {
		t.Errorf("query = %q, want %q", gotQuery, want)
	}
	want := wcag.Report{Ratio: 21, AA: wcag.Pass, AALarge: wcag.Pass, AAA: wcag.Pass, AAALarge: wcag.Pass}
	if rep != want {
		t.Errorf("report = %+v, want %+v", rep, want)
	}
}

func TestVerifyKeepsBaseQuery(t *testing.T) {
	var gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		_, _ = w.Write([]byte(`{"ratio":1,"AA":"fail","AALarge":"fail","AAA":"fail","AAALarge":"fail"}`))
	}))
	t.Cleanup(srv.Close)

	c := New(WithBaseURL(srv.URL+"/?key=abc"), WithHTTPClient(srv.Client()))
	if _, err := c.Verify(context.Background(), wcag.Color{}, wcag.Color{}); err != nil {
		t.Fatal(err)
	}
	if want := "key=abc&fcolor=000000&bcolor=000000&api"; gotQuery != want {
		t.Errorf("query = %q, want %q", gotQuery, want)
	}
}

func TestVerifyErrors(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
		check   func(error) bool
	}{
		{
			name: "status",
			handler: func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, "down", http.StatusServiceUnavailable)
			},
			check: func(err error) bool {
				var se *StatusError
				return errors.As(err, &se) && se.StatusCode == http.StatusServiceUnavailable
			},
		},
		{
			name: "not json",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte("<html>"))
			},
			check: func(err error) bool {
				var se *json.SyntaxError
				return errors.As(err, &se)
			},
		},
		{
			name: "bad outcome",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`{"ratio":2,"AA":"n/a","AALarge":"fail","AAA":"fail","AAALarge":"fail"}`))
			},
			check: func(err error) bool { return errors.Is(err, wcag.ErrInvalidReport) },
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient(t, tt.handler)
			_, err := c.Verify(context.Background(), wcag.Color{}, wcag.Color{})
			if err == nil || !tt.check(err) {
				t.Errorf("Verify error = %v", err)
			}
		})
	}
}

// flakyChecker answers 503 for the first failures hits, then delegates to next.
func flakyChecker(failures int32, hits *atomic.Int32, next http.Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if hits.Add(1) <= failures {
			http.Error(w, "busy", http.StatusServiceUnavailable)
			return
		}
		next.ServeHTTP(w, r)
	}
}

func newRetryTestClient(t *testing.T, h http.Handler, retryMax int) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return New(
		WithBaseURL(srv.URL),
		WithRetryMax(retryMax),
		WithRetryWait(time.Millisecond, 5*time.Millisecond),
	)
}

func TestVerifyRetriesTransientStatus(t *testing.T) {
	var hits atomic.Int32
	c := newRetryTestClient(t, flakyChecker(1, &hits, fakeChecker(t)), DefaultRetryMax)

	rep, err := c.Verify(context.Background(), wcag.Color{}, wcag.Color{R: 1, G: 1, B: 1})
	if err != nil {
		t.Fatalf("Verify error: %v", err)
	}
	if rep.Ratio != 21 || rep.AAA != wcag.Pass {
		t.Errorf("report = %+v", rep)
	}
	if got := hits.Load(); got != 2 {
		t.Errorf("attempts = %d, want 2", got)
	}

	hits.Store(0)
	if _, err := wcag.CrossCheck(context.Background(), c, wcag.Color{R: 1}, wcag.Color{}); err != nil {
		t.Errorf("CrossCheck after transient failure: %v", err)
	}
}

func TestVerifyRetriesExhausted(t *testing.T) {
	var hits atomic.Int32
	c := newRetryTestClient(t, flakyChecker(100, &hits, fakeChecker(t)), 2)

	_, err := c.Verify(context.Background(), wcag.Color{}, wcag.Color{})
	var se *StatusError
	if !errors.As(err, &se) || se.StatusCode != http.StatusServiceUnavailable {
		t.Fatalf("error = %v, want *StatusError 503", err)
	}
	if got := hits.Load(); got != 3 {
		t.Errorf("attempts = %d, want 3", got)
	}
}

func TestVerifyNoRetryOnClientError(t *testing.T) {
	var hits atomic.Int32
	c := newRetryTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		http.Error(w, "nope", http.StatusBadRequest)
	}), DefaultRetryMax)

	_, err := c.Verify(context.Background(), wcag.Color{}, wcag.Color{})
	var se *StatusError
	if !errors.As(err, &se) || se.StatusCode != http.StatusBadRequest {
		t.Fatalf("error = %v, want *StatusError 400", err)
	}
	if got := hits.Load(); got != 1 {
		t.Errorf("attempts = %d, want 1", got)
	}
}

func TestVerifyRejectsInvalidColor(t *testing.T) {
	called := false
	c := newTestClient(t, http.HandlerFunc(func(http.ResponseWriter, *http.Request) { called = true }))
	_, err := c.Verify(context.Background(), wcag.Color{R: 1.2}, wcag.Color{})
	if !errors.Is(err, wcag.ErrInvalidChannelValue) {
		t.Errorf("error = %v, want ErrInvalidChannelValue", err)
	}
	if called {
		t.Error("server called for invalid color")
	}
}

func TestVerifyContextCanceled(t *testing.T) {
	release := make(chan struct{})
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	t.Cleanup(func() { close(release) })

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	_, err := c.Verify(ctx, wcag.Color{}, wcag.Color{})
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("error = %v, want context.DeadlineExceeded", err)
	}
}

// TestCrossCheckScenarios runs the regression pairs through wcag.CrossCheck
// against a fake service.
func TestCrossCheckScenarios(t *testing.T) {
	c := newTestClient(t, fakeChecker(t))

	black := wcag.Color{}
	white := wcag.Color{R: 1, G: 1, B: 1}
	pairs := []struct {
		name   string
		fg, bg wcag.Color
	}{
		{"black/white", black, white},
		{"white/black", white, black},
		{"green/white", wcag.Color{G: 1}, white},
		{"green/black", wcag.Color{G: 1}, black},
		{"red/black", wcag.Color{R: 1}, black},
		{"red/white", wcag.Color{R: 1}, white},
		{"blue/black", wcag.Color{B: 1}, black},
		{"blue/white", wcag.Color{B: 1}, white},
		{"gray/white", wcag.Color{R: 0.5, G: 0.5, B: 0.5}, white},
	}
	for _, p := range pairs {
		t.Run(p.name, func(t *testing.T) {
			if _, err := wcag.CrossCheck(context.Background(), c, p.fg, p.bg); err != nil {
				t.Errorf("CrossCheck error: %v", err)
			}
		})
	}
}
