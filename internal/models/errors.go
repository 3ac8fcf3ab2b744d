package models

import (
	"errors"
	"strings"
)

var (
	ErrNotFound           = errors.New("not found")
	ErrUserExists         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// AuthReason records why the auth gate rejected a request. A missing
// credential and a valid token pointing at a deleted user both surface as the
// same "unauthorized" response; the reason keeps the two apart in logs.
type AuthReason string

const (
	ReasonMissingCredential AuthReason = "missing_credential"
	ReasonMalformedToken    AuthReason = "malformed_token"
	ReasonUnknownSubject    AuthReason = "unknown_subject"
)

type AuthError struct {
	Reason AuthReason
}

func (e *AuthError) Error() string {
	return "auth: " + string(e.Reason)
}

// PublicMessage is the fixed client-facing message for this rejection.
func (e *AuthError) PublicMessage() string {
	if e.Reason == ReasonMalformedToken {
		return "invalid token"
	}
	return "unauthorized"
}

// ValidationError carries every violated field rule for one request.
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Messages, ", ")
}
