package auth

import (
	"github.com/goliatone/go-errors"
)

const (
	TextCodeMissingCredentials = "at_least_one_field_is_null"
	TextCodeUnknownSubject     = "no_such_username"
	TextCodeCredentialMismatch = "password_does_not_match"
	TextCodeNoSuchRefreshToken = "no_such_refresh_token"
	TextCodeTokenMalformed     = "token_malformed"
	TextCodeTokenExpired       = "token_expired"
	TextCodeBadSignature       = "token_bad_signature"
	TextCodeLoginIsTaken       = "LOGIN_IS_TAKEN"
	TextCodeEmailIsTaken       = "EMAIL_IS_TAKEN"
)

// ErrMissingCredentials is returned when the login or password is absent.
var ErrMissingCredentials = errors.New("login and password are required", errors.CategoryBadInput).
	WithTextCode(TextCodeMissingCredentials).
	WithCode(errors.CodeBadRequest)

// ErrUnknownSubject is returned when no principal exists for a login.
var ErrUnknownSubject = errors.New("no such username", errors.CategoryAuth).
	WithTextCode(TextCodeUnknownSubject).
	WithCode(errors.CodeUnauthorized)

// ErrCredentialMismatch is returned when the password does not match the stored hash.
var ErrCredentialMismatch = errors.New("password does not match", errors.CategoryAuth).
	WithTextCode(TextCodeCredentialMismatch).
	WithCode(errors.CodeUnauthorized)

// ErrNoSuchRefreshToken is returned when a (login, value) refresh pair is unknown.
var ErrNoSuchRefreshToken = errors.New("no such refresh token", errors.CategoryAuth).
	WithTextCode(TextCodeNoSuchRefreshToken).
	WithCode(errors.CodeUnauthorized)

// ErrTokenMalformed is returned when a bearer token cannot be parsed.
var ErrTokenMalformed = errors.New("token is malformed", errors.CategoryAuth).
	WithTextCode(TextCodeTokenMalformed).
	WithCode(errors.CodeUnauthorized)

// ErrTokenExpired is returned when a bearer token is outside its validity window.
var ErrTokenExpired = errors.New("token is expired", errors.CategoryAuth).
	WithTextCode(TextCodeTokenExpired).
	WithCode(errors.CodeUnauthorized)

// ErrBadSignature is returned when the signature check fails, including when
// verifier and issuer disagree on the signing key.
var ErrBadSignature = errors.New("token signature is invalid", errors.CategoryAuth).
	WithTextCode(TextCodeBadSignature).
	WithCode(errors.CodeUnauthorized)

// ErrLoginIsTaken is returned on registration when the login already exists.
var ErrLoginIsTaken = errors.New("login is taken", errors.CategoryConflict).
	WithTextCode(TextCodeLoginIsTaken).
	WithCode(errors.CodeConflict)

// ErrEmailIsTaken is returned on registration when the email already exists.
var ErrEmailIsTaken = errors.New("email is taken", errors.CategoryConflict).
	WithTextCode(TextCodeEmailIsTaken).
	WithCode(errors.CodeConflict)

// ErrNoEmptyString rejects empty input where a value is required
var ErrNoEmptyString = errors.New("value must not be empty", errors.CategoryBadInput).
	WithCode(errors.CodeBadRequest)

// IsTokenError reports whether err belongs to the token verification
// taxonomy: malformed, expired, or bad signature.
func IsTokenError(err error) bool {
	if err == nil {
		return false
	}
	return errors.Is(err, ErrTokenMalformed) ||
		errors.Is(err, ErrTokenExpired) ||
		errors.Is(err, ErrBadSignature)
}
