package testutils

import (
	"io"
	"net/http"
	"net/http/httptest"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// FakeBatch is a fake analytics batch endpoint served at /batch.
type FakeBatch struct {
	*httptest.Server

	// FailIf, when it returns true for a request body, makes the endpoint answer 500.
	FailIf func(body string) bool

	mu     sync.Mutex
	bodies []string
}

// NewFakeBatch starts a fake batch endpoint. Close it when done.
func NewFakeBatch() *FakeBatch {
	f := &FakeBatch{}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Post("/batch", f.handle)

	f.Server = httptest.NewServer(r)
	return f
}

// Endpoint is the URL to post batches to.
func (f *FakeBatch) Endpoint() string {
	return f.URL + "/batch"
}

// Bodies returns every body received so far, including failed ones.
func (f *FakeBatch) Bodies() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.bodies...)
}

func (f *FakeBatch) handle(w http.ResponseWriter, r *http.Request) {
	b, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	body := string(b)

	f.mu.Lock()
	f.bodies = append(f.bodies, body)
	fail := f.FailIf
	f.mu.Unlock()

	if fail != nil && fail(body) {
		http.Error(w, "boom", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusOK)
}
