package client

import (
    "context"
    "net/http"
)

type loginRequest struct {
    Email    string `json:"email"`
    Password string `json:"password"`
}

type registerRequest struct {
    Name     string `json:"name"`
    Email    string `json:"email"`
    Password string `json:"password"`
}

type loginResponse struct {
    User   Profile `json:"user"`
    Access struct {
        Token string `json:"token"`
    } `json:"access"`
    Refresh struct {
        Token string `json:"token"`
    } `json:"refresh"`
}

// Login authenticates against the backend and persists the credential
// and profile snapshot together. Subscribers of the credential store
// are notified exactly once. On failure nothing is persisted.
func (c *Client) Login(ctx context.Context, email, password string) (Profile, error) {
    var resp loginResponse
    err := c.do(ctx, http.MethodPost, "/api/Auth/login", loginRequest{Email: email, Password: password}, &resp)
    if err != nil {
        return Profile{}, err
    }
    if err := c.creds.SetSession(resp.Access.Token, resp.User); err != nil {
        return Profile{}, &APIError{Kind: KindTransient, Message: "persist session: " + err.Error()}
    }
    return resp.User, nil
}

// Register creates an account. It does not sign the caller in; a
// successful registration is followed by an explicit Login.
func (c *Client) Register(ctx context.Context, name, email, password string) error {
    return c.do(ctx, http.MethodPost, "/api/Auth/register",
        registerRequest{Name: name, Email: email, Password: password}, nil)
}

// Logout clears the persisted credential and profile together and
// notifies subscribers once. The backend call is best-effort: a request
// already in flight with the old token gets Unauthorized from the
// backend, which is the designed recovery path for that race.
func (c *Client) Logout(ctx context.Context) error {
    if c.creds.Token() != "" {
        if err := c.do(ctx, http.MethodPost, "/api/Auth/logout", nil, nil); err != nil {
            c.Logf("logout: backend revoke failed: %v", err)
        }
    }
    if err := c.creds.Clear(); err != nil {
        return &APIError{Kind: KindTransient, Message: "clear session: " + err.Error()}
    }
    return nil
}

// CurrentProfile returns the persisted user snapshot, if signed in.
func (c *Client) CurrentProfile() (Profile, bool) { return c.creds.Profile() }

// OnAuthChange returns a channel signalled after every Login and
// Logout. The signal carries no payload; read the store for state.
func (c *Client) OnAuthChange() <-chan struct{} { return c.creds.Subscribe() }

// purgeCredentials drops the stored session after the backend rejected
// it, so the next render prompts for re-authentication.
func (c *Client) purgeCredentials() {
    if err := c.creds.Clear(); err != nil {
        c.Logf("auth: purge credentials failed: %v", err)
    }
}
