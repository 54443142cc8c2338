package civic

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"

	"github.com/emmayyque/community-issue-tracker-app/internal/store"
)

// newTestClient wires a Client against an httptest backend and an
// in-memory store. The server and client are torn down with the test.
func newTestClient(t *testing.T, handler http.Handler) (*Client, store.KV) {
	t.Helper()

	hs := httptest.NewServer(handler)
	t.Cleanup(hs.Close)

	kv, err := store.OpenInMemory()
	if err != nil {
		t.Fatalf("open in-memory store: %v", err)
	}

	c, err := New(hs.URL, WithStore(kv))
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	t.Cleanup(func() { _ = c.Close() })
	return c, kv
}

// authBackend is a minimal fake of the auth endpoints: one account, one
// token. Routes are registered on a mux router like the real service.
type authBackend struct {
	token string
	user  User

	loginCalls   int
	getInfoCalls int
	updateCalls  int
	lastUpdate   User

	rejectUpdate bool
}

func (b *authBackend) router() *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/api/auth/login", func(w http.ResponseWriter, req *http.Request) {
		b.loginCalls++
		var creds struct {
			Email    string `json:"email"`
			Password string `json:"password"`
		}
		_ = json.NewDecoder(req.Body).Decode(&creds)
		if creds.Email != b.user.Email {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]string{"token": b.token})
	}).Methods(http.MethodPost)

	r.HandleFunc("/api/auth/getInfo", func(w http.ResponseWriter, req *http.Request) {
		b.getInfoCalls++
		if req.Header.Get("Authorization") != "Bearer "+b.token {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		_ = json.NewEncoder(w).Encode(b.user)
	}).Methods(http.MethodGet)

	r.HandleFunc("/api/auth/updateProfile", func(w http.ResponseWriter, req *http.Request) {
		b.updateCalls++
		if b.rejectUpdate {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		_ = json.NewDecoder(req.Body).Decode(&b.lastUpdate)
		b.user = b.lastUpdate
		w.WriteHeader(http.StatusOK)
	}).Methods(http.MethodPut)

	return r
}

func defaultBackend() *authBackend {
	return &authBackend{
		token: "tok-abc123",
		user:  User{ID: "u1", Name: "A", Email: "a@b.com"},
	}
}
