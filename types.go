package auth

import (
	"context"
	"fmt"
)

type Logger interface {
	Debug(format string, args ...any)
	Info(format string, args ...any)
	Warn(format string, args ...any)
	Error(format string, args ...any)
}

// Principal holds the attributes of an authenticated identity
type Principal interface {
	Login() string
	Email() string
	Role() Role
	PasswordHash() string
}

// PrincipalLookup resolves a login to a principal. It is the only thing the
// gate and the identity middleware know about user storage.
type PrincipalLookup interface {
	FindByLogin(ctx context.Context, login string) (Principal, error)
}

// PasswordVerifier checks a plaintext password against a stored hash
type PasswordVerifier interface {
	Verify(password, hash string) error
}

// PasswordAuthenticator hashes and verifies passwords
type PasswordAuthenticator interface {
	PasswordVerifier
	Hash(password string) (string, error)
}

// Authenticator is the public surface of the authentication gate
type Authenticator interface {
	Authenticate(ctx context.Context, login, password string) (*RefreshToken, error)
	Refresh(ctx context.Context, login, refreshValue string) (string, error)
	SweepExpired(ctx context.Context) error
}

// Config holds auth options
type Config interface {
	GetSigningKey() []byte
	GetIssuer() string
	GetTokenExpiration() int
	GetRefreshTokenLength() int
	GetRefreshTokenExpirationDays() int
	GetSweepInterval() int
	GetAuthScheme() string
	GetContextKey() string
	GetTokenLookup() string
	GetCookiePath() string
	GetSecureCookies() bool
}

type defLogger struct{}

func (d defLogger) Debug(format string, args ...any) {
	fmt.Printf("[DBG] AUTH "+newline(format), args...)
}

func (d defLogger) Info(format string, args ...any) {
	fmt.Printf("[INF] AUTH "+newline(format), args...)
}

func (d defLogger) Warn(format string, args ...any) {
	fmt.Printf("[WRN] AUTH "+newline(format), args...)
}

func (d defLogger) Error(format string, args ...any) {
	fmt.Printf("[ERR] AUTH "+newline(format), args...)
}

func newline(s string) string {
	if len(s) > 0 && s[len(s)-1] != '\n' {
		s += "\n"
	}
	return s
}
