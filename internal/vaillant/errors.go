package vaillant

import "fmt"

// AuthError reports a failed login or token refresh. It is never retried
// here; the caller sees the operation fail and the next call starts over.
type AuthError struct {
	Op  string // "login" or "refresh"
	Err error
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("vaillant auth: %s failed: %v", e.Op, e.Err)
}

func (e *AuthError) Unwrap() error { return e.Err }

// RequestError reports a vendor-side rejection or transport failure of an
// API call after authentication succeeded.
type RequestError struct {
	Method string
	Path   string
	Status int // 0 when the request never completed
	Err    error
}

func (e *RequestError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("vaillant api: %s %s: status %d", e.Method, e.Path, e.Status)
	}
	return fmt.Sprintf("vaillant api: %s %s: %v", e.Method, e.Path, e.Err)
}

func (e *RequestError) Unwrap() error { return e.Err }
