package client

import (
    "errors"
    "fmt"
    "net/http"
)

// ErrorKind classifies a failed backend call so callers can pick a
// recovery path without inspecting status codes themselves.
type ErrorKind string

const (
    // KindUnauthorized means the credential is missing, expired or
    // rejected. The caller should purge stored credentials and prompt
    // for re-authentication.
    KindUnauthorized ErrorKind = "unauthorized"
    // KindNotFound means the referenced flight or reservation no longer
    // exists on the backend.
    KindNotFound ErrorKind = "not_found"
    // KindConflict means the backend refused a mutation on business
    // grounds, e.g. cancelling an already-cancelled reservation. Not
    // retryable; the message is meant for the user.
    KindConflict ErrorKind = "conflict"
    // KindTransient covers every other network or server failure. Never
    // auto-retried; the user decides whether to reload.
    KindTransient ErrorKind = "transient"
)

// APIError is the classified form of any backend failure. Every error
// returned from Client methods that reached the network is an *APIError.
type APIError struct {
    Kind       ErrorKind
    StatusCode int    // zero when the request never got a response
    Message    string // backend-provided message when available
}

func (e *APIError) Error() string {
    if e.StatusCode == 0 {
        return fmt.Sprintf("%s: %s", e.Kind, e.Message)
    }
    return fmt.Sprintf("%s (%d): %s", e.Kind, e.StatusCode, e.Message)
}

// classify maps an HTTP status onto the error taxonomy.
func classify(status int, msg string) *APIError {
    kind := KindTransient
    switch status {
    case http.StatusUnauthorized, http.StatusForbidden:
        kind = KindUnauthorized
    case http.StatusNotFound:
        kind = KindNotFound
    case http.StatusConflict, http.StatusBadRequest, http.StatusUnprocessableEntity:
        kind = KindConflict
    }
    if msg == "" {
        msg = http.StatusText(status)
    }
    return &APIError{Kind: kind, StatusCode: status, Message: msg}
}

func kindIs(err error, k ErrorKind) bool {
    var ae *APIError
    return errors.As(err, &ae) && ae.Kind == k
}

// IsUnauthorized reports whether err is a credential failure.
func IsUnauthorized(err error) bool { return kindIs(err, KindUnauthorized) }

// IsNotFound reports whether err is a missing-resource failure.
func IsNotFound(err error) bool { return kindIs(err, KindNotFound) }

// IsConflict reports whether err is a business-rule rejection.
func IsConflict(err error) bool { return kindIs(err, KindConflict) }
