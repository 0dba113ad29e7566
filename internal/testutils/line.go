// Package testutils provides fake upstream servers for tests.
package testutils

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"

	"github.com/and161185/line-insight/internal/lineapi"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Account is the canned insight data served for one access token.
// Dates missing from the maps are answered with status "unready".
type Account struct {
	Deliveries   map[string]*lineapi.MessageDeliveries
	Followers    map[string]*lineapi.Followers
	Demographics *lineapi.Demographics
	// FailStatus, when set, is returned for every request made with this token.
	FailStatus int
}

// FakeLine is a fake messaging API keyed by access token.
type FakeLine struct {
	*httptest.Server

	mu       sync.Mutex
	accounts map[string]*Account
	calls    map[string]int
}

// NewFakeLine starts a fake messaging API server. Close it when done.
func NewFakeLine(accounts map[string]*Account) *FakeLine {
	f := &FakeLine{accounts: accounts, calls: map[string]int{}}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Route("/v2/bot/insight", func(r chi.Router) {
		r.Use(f.auth)
		r.Get("/message/delivery", f.deliveries)
		r.Get("/followers", f.followers)
		r.Get("/demographic", f.demographic)
	})

	f.Server = httptest.NewServer(r)
	return f
}

// Calls returns how many requests were made with token.
func (f *FakeLine) Calls(token string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[token]
}

func (f *FakeLine) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")

		f.mu.Lock()
		f.calls[token]++
		acc, ok := f.accounts[token]
		f.mu.Unlock()

		if !ok {
			http.Error(w, `{"message":"Authentication failed"}`, http.StatusUnauthorized)
			return
		}
		if acc.FailStatus != 0 {
			http.Error(w, `{"message":"failure"}`, acc.FailStatus)
			return
		}
		next.ServeHTTP(w, r.WithContext(withAccount(r.Context(), acc)))
	})
}

func (f *FakeLine) deliveries(w http.ResponseWriter, r *http.Request) {
	acc := accountFrom(r.Context())
	if d, ok := acc.Deliveries[r.URL.Query().Get("date")]; ok {
		writeJSON(w, d)
		return
	}
	writeJSON(w, &lineapi.MessageDeliveries{Status: lineapi.StatusUnready})
}

func (f *FakeLine) followers(w http.ResponseWriter, r *http.Request) {
	acc := accountFrom(r.Context())
	if d, ok := acc.Followers[r.URL.Query().Get("date")]; ok {
		writeJSON(w, d)
		return
	}
	writeJSON(w, &lineapi.Followers{Status: lineapi.StatusUnready})
}

func (f *FakeLine) demographic(w http.ResponseWriter, r *http.Request) {
	acc := accountFrom(r.Context())
	if acc.Demographics != nil {
		writeJSON(w, acc.Demographics)
		return
	}
	writeJSON(w, &lineapi.Demographics{Available: false})
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}
