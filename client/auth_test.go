package client

import (
    "context"
    "encoding/json"
    "net/http"
    "net/http/httptest"
    "testing"
    "time"

    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"
)

func authTestServer(t *testing.T) *httptest.Server {
    t.Helper()
    mux := http.NewServeMux()
    mux.HandleFunc("/api/Auth/login", func(w http.ResponseWriter, r *http.Request) {
        var req loginRequest
        require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
        if req.Password != "hunter2" {
            http.Error(w, `{"error":"invalid credentials"}`, http.StatusUnauthorized)
            return
        }
        json.NewEncoder(w).Encode(map[string]any{
            "user":    Profile{ID: 42, Name: "Ada", Email: req.Email},
            "access":  map[string]string{"token": "access-abc"},
            "refresh": map[string]string{"token": "refresh-xyz"},
        })
    })
    mux.HandleFunc("/api/Auth/register", func(w http.ResponseWriter, r *http.Request) {
        w.WriteHeader(http.StatusCreated)
        json.NewEncoder(w).Encode(map[string]any{"user": Profile{ID: 43}})
    })
    mux.HandleFunc("/api/Auth/logout", func(w http.ResponseWriter, r *http.Request) {
        w.WriteHeader(http.StatusNoContent)
    })
    srv := httptest.NewServer(mux)
    t.Cleanup(srv.Close)
    return srv
}

// drain returns how many signals are immediately pending on ch.
func drain(ch <-chan struct{}) int {
    n := 0
    for {
        select {
        case <-ch:
            n++
        case <-time.After(50 * time.Millisecond):
            return n
        }
    }
}

func TestLoginPersistsSessionAndNotifiesOnce(t *testing.T) {
    srv := authTestServer(t)
    store := NewMemCredentialStore()
    c := New(srv.URL, store)
    c.Logf = t.Logf
    ch := c.OnAuthChange()

    p, err := c.Login(context.Background(), "ada@example.com", "hunter2")
    require.NoError(t, err)
    assert.Equal(t, uint64(42), p.ID)

    // The credential is readable immediately after Login returns.
    assert.Equal(t, "access-abc", store.Token())
    got, ok := store.Profile()
    require.True(t, ok)
    assert.Equal(t, "ada@example.com", got.Email)

    assert.Equal(t, 1, drain(ch), "login broadcasts exactly once")
}

func TestLoginFailurePersistsNothing(t *testing.T) {
    srv := authTestServer(t)
    store := NewMemCredentialStore()
    c := New(srv.URL, store)
    c.Logf = t.Logf
    ch := c.OnAuthChange()

    _, err := c.Login(context.Background(), "ada@example.com", "wrong")
    require.Error(t, err)
    assert.True(t, IsUnauthorized(err))

    assert.Empty(t, store.Token())
    _, ok := store.Profile()
    assert.False(t, ok)
    assert.Equal(t, 0, drain(ch), "a failed login broadcasts nothing")
}

func TestLogoutClearsBothKeysAndNotifiesOnce(t *testing.T) {
    srv := authTestServer(t)
    store := NewMemCredentialStore()
    c := New(srv.URL, store)
    c.Logf = t.Logf

    _, err := c.Login(context.Background(), "ada@example.com", "hunter2")
    require.NoError(t, err)

    ch := c.OnAuthChange()
    require.NoError(t, c.Logout(context.Background()))

    // Token and profile go together, never one without the other.
    assert.Empty(t, store.Token())
    _, ok := store.Profile()
    assert.False(t, ok)

    assert.Equal(t, 1, drain(ch), "logout broadcasts exactly once")
}

func TestRegisterDoesNotLogIn(t *testing.T) {
    srv := authTestServer(t)
    store := NewMemCredentialStore()
    c := New(srv.URL, store)
    c.Logf = t.Logf

    require.NoError(t, c.Register(context.Background(), "Ada", "ada@example.com", "hunter2"))
    assert.Empty(t, store.Token(), "registration leaves the caller signed out")
    _, ok := store.Profile()
    assert.False(t, ok)
}

func TestFileCredentialStoreRoundTrip(t *testing.T) {
    store, err := NewFileCredentialStore(t.TempDir())
    require.NoError(t, err)

    assert.Empty(t, store.Token())
    _, ok := store.Profile()
    assert.False(t, ok)

    ch := store.Subscribe()
    require.NoError(t, store.SetSession("tok-1", Profile{ID: 7, Name: "Ada"}))
    assert.Equal(t, "tok-1", store.Token())
    p, ok := store.Profile()
    require.True(t, ok)
    assert.Equal(t, uint64(7), p.ID)
    assert.Equal(t, 1, drain(ch))

    require.NoError(t, store.Clear())
    assert.Empty(t, store.Token())
    _, ok = store.Profile()
    assert.False(t, ok)
    assert.Equal(t, 1, drain(ch))
}
