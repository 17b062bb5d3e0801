// Package client is a Go SDK for the flight information backend. It
// owns the booking lifecycle (create, list, cancel, restore), the
// flight catalog with client-side filtering, the country/city/airport
// directory and session handling. All backend errors cross the package
// boundary classified as *APIError; reservation statuses cross it
// normalized to ReservationStatus.
package client

import (
    "bytes"
    "context"
    "encoding/json"
    "fmt"
    "io"
    "log"
    "net/http"
    "strings"
    "time"
)

// defaultTimeout bounds every request. A hung backend turns into a
// Transient error instead of an indefinite wait.
const defaultTimeout = 15 * time.Second

// Client talks to one backend instance. Safe for concurrent use; the
// only mutable state is behind the CredentialStore.
type Client struct {
    baseURL string
    http    *http.Client
    creds   CredentialStore
    // Logf receives degraded-result notices, e.g. a flight that could
    // not be resolved during enrichment. Defaults to log.Printf via New.
    Logf func(format string, args ...any)
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client, e.g. to change
// the timeout or install a test transport.
func WithHTTPClient(hc *http.Client) Option {
    return func(c *Client) { c.http = hc }
}

// New returns a Client for the backend at baseURL. The credential store
// supplies the bearer token for authenticated calls; every request that
// finds a token in the store carries it, attached in one place rather
// than per call.
func New(baseURL string, creds CredentialStore, opts ...Option) *Client {
    c := &Client{
        baseURL: strings.TrimRight(baseURL, "/"),
        http:    &http.Client{Timeout: defaultTimeout},
        creds:   creds,
        Logf:    log.Printf,
    }
    for _, opt := range opts {
        opt(c)
    }
    return c
}

// do issues one request and decodes the JSON response into out (when
// out is non-nil). Non-2xx responses come back classified; transport
// failures come back as Transient.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
    var rd io.Reader
    if body != nil {
        bs, err := json.Marshal(body)
        if err != nil {
            return &APIError{Kind: KindTransient, Message: fmt.Sprintf("encode request: %v", err)}
        }
        rd = bytes.NewReader(bs)
    }

    req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, rd)
    if err != nil {
        return &APIError{Kind: KindTransient, Message: err.Error()}
    }
    req.Header.Set("Accept", "application/json")
    if body != nil {
        req.Header.Set("Content-Type", "application/json")
    }
    if tok := c.creds.Token(); tok != "" {
        req.Header.Set("Authorization", "Bearer "+tok)
    }

    resp, err := c.http.Do(req)
    if err != nil {
        return &APIError{Kind: KindTransient, Message: err.Error()}
    }
    defer resp.Body.Close()

    if resp.StatusCode < 200 || resp.StatusCode > 299 {
        return classify(resp.StatusCode, readErrMessage(resp.Body))
    }
    if out == nil || resp.StatusCode == http.StatusNoContent {
        return nil
    }
    if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
        return &APIError{Kind: KindTransient, StatusCode: resp.StatusCode,
            Message: fmt.Sprintf("decode response: %v", err)}
    }
    return nil
}

// readErrMessage pulls the backend's {"error": "..."} message out of a
// failure body, tolerating any other shape.
func readErrMessage(r io.Reader) string {
    bs, err := io.ReadAll(io.LimitReader(r, 4096))
    if err != nil {
        return ""
    }
    var payload struct {
        Error   string `json:"error"`
        Message string `json:"message"`
    }
    if json.Unmarshal(bs, &payload) == nil {
        if payload.Error != "" {
            return payload.Error
        }
        if payload.Message != "" {
            return payload.Message
        }
    }
    return strings.TrimSpace(string(bs))
}
