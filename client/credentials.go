package client

import (
    "encoding/json"
    "os"
    "path/filepath"
    "sync"
)

// Storage keys for the persisted session. The two values live and die
// together: SetSession writes both, Clear removes both. Nothing else
// ever touches one without the other.
const (
    keyToken = "token"
    keyUser  = "user"
)

// Profile is the user snapshot persisted next to the credential so
// views can show who is signed in without a round trip.
type Profile struct {
    ID    uint64 `json:"id"`
    Name  string `json:"name"`
    Email string `json:"email"`
}

// CredentialStore persists the bearer token and profile snapshot across
// process restarts and broadcasts a payload-free change signal.
// Subscribers re-read state themselves; the notification only says
// "something changed".
type CredentialStore interface {
    Token() string
    Profile() (Profile, bool)
    SetSession(token string, p Profile) error
    Clear() error
    // Subscribe returns a channel that receives one signal per
    // SetSession or Clear. The channel is buffered; a slow listener
    // misses coalesced signals rather than blocking the writer.
    Subscribe() <-chan struct{}
}

// FileCredentialStore keeps the session in small files under a
// directory, one file per key. Suitable for CLI-style processes where
// the session must survive restarts.
type FileCredentialStore struct {
    dir string

    mu   sync.Mutex
    subs []chan struct{}
}

// NewFileCredentialStore creates the directory if needed and returns a
// store rooted there.
func NewFileCredentialStore(dir string) (*FileCredentialStore, error) {
    if err := os.MkdirAll(dir, 0o700); err != nil {
        return nil, err
    }
    return &FileCredentialStore{dir: dir}, nil
}

func (s *FileCredentialStore) path(key string) string { return filepath.Join(s.dir, key) }

// Token returns the stored bearer token, or "" when signed out.
func (s *FileCredentialStore) Token() string {
    bs, err := os.ReadFile(s.path(keyToken))
    if err != nil {
        return ""
    }
    return string(bs)
}

// Profile returns the stored user snapshot and whether one exists.
func (s *FileCredentialStore) Profile() (Profile, bool) {
    bs, err := os.ReadFile(s.path(keyUser))
    if err != nil {
        return Profile{}, false
    }
    var p Profile
    if err := json.Unmarshal(bs, &p); err != nil {
        return Profile{}, false
    }
    return p, true
}

// SetSession persists token and profile together and notifies
// subscribers once.
func (s *FileCredentialStore) SetSession(token string, p Profile) error {
    bs, err := json.Marshal(p)
    if err != nil {
        return err
    }
    if err := os.WriteFile(s.path(keyToken), []byte(token), 0o600); err != nil {
        return err
    }
    if err := os.WriteFile(s.path(keyUser), bs, 0o600); err != nil {
        return err
    }
    s.notify()
    return nil
}

// Clear removes both keys and notifies subscribers once. Clearing an
// already-empty store still notifies; listeners re-read state anyway.
func (s *FileCredentialStore) Clear() error {
    for _, key := range []string{keyToken, keyUser} {
        if err := os.Remove(s.path(key)); err != nil && !os.IsNotExist(err) {
            return err
        }
    }
    s.notify()
    return nil
}

// Subscribe registers a listener for session changes.
func (s *FileCredentialStore) Subscribe() <-chan struct{} {
    s.mu.Lock()
    defer s.mu.Unlock()
    ch := make(chan struct{}, 1)
    s.subs = append(s.subs, ch)
    return ch
}

func (s *FileCredentialStore) notify() {
    s.mu.Lock()
    defer s.mu.Unlock()
    for _, ch := range s.subs {
        select {
        case ch <- struct{}{}:
        default: // listener still has an unread signal
        }
    }
}

// MemCredentialStore is an in-memory CredentialStore for tests and
// short-lived processes.
type MemCredentialStore struct {
    mu      sync.Mutex
    token   string
    profile Profile
    hasUser bool
    subs    []chan struct{}
}

// NewMemCredentialStore returns an empty in-memory store.
func NewMemCredentialStore() *MemCredentialStore { return &MemCredentialStore{} }

func (s *MemCredentialStore) Token() string {
    s.mu.Lock()
    defer s.mu.Unlock()
    return s.token
}

func (s *MemCredentialStore) Profile() (Profile, bool) {
    s.mu.Lock()
    defer s.mu.Unlock()
    return s.profile, s.hasUser
}

func (s *MemCredentialStore) SetSession(token string, p Profile) error {
    s.mu.Lock()
    s.token = token
    s.profile = p
    s.hasUser = true
    s.mu.Unlock()
    s.notify()
    return nil
}

func (s *MemCredentialStore) Clear() error {
    s.mu.Lock()
    s.token = ""
    s.profile = Profile{}
    s.hasUser = false
    s.mu.Unlock()
    s.notify()
    return nil
}

func (s *MemCredentialStore) Subscribe() <-chan struct{} {
    s.mu.Lock()
    defer s.mu.Unlock()
    ch := make(chan struct{}, 1)
    s.subs = append(s.subs, ch)
    return ch
}

func (s *MemCredentialStore) notify() {
    s.mu.Lock()
    defer s.mu.Unlock()
    for _, ch := range s.subs {
        select {
        case ch <- struct{}{}:
        default:
        }
    }
}
