package auth

import (
	"context"

	"github.com/goliatone/go-errors"
)

// Gate orchestrates login and refresh. It owns no storage or hashing: the
// principal lookup and password verification capabilities are injected, so
// the gate has zero dependency on how principals are stored or hashed.
type Gate struct {
	lookup    PrincipalLookup
	passwords PasswordVerifier
	refresh   RefreshTokens
	tokens    *TokenService
	logger    Logger
}

var _ Authenticator = (*Gate)(nil)

// NewGate returns a new authentication gate
func NewGate(lookup PrincipalLookup, passwords PasswordVerifier, refresh RefreshTokens, tokens *TokenService) *Gate {
	return &Gate{
		lookup:    lookup,
		passwords: passwords,
		refresh:   refresh,
		tokens:    tokens,
		logger:    defLogger{},
	}
}

// WithLogger sets the gate logger
func (g *Gate) WithLogger(logger Logger) *Gate {
	if logger != nil {
		g.logger = logger
	}
	return g
}

// TokenService returns the TokenService used by this gate
func (g *Gate) TokenService() *TokenService {
	return g.tokens
}

// Authenticate validates credentials and persists a new refresh token for
// login. Check order is fixed and load-bearing: missing credentials, then
// unknown subject, then credential mismatch. Each failure keeps its own
// stable reason so clients can branch on it.
func (g *Gate) Authenticate(ctx context.Context, login, password string) (*RefreshToken, error) {
	if login == "" || password == "" {
		return nil, ErrMissingCredentials
	}

	principal, err := g.lookup.FindByLogin(ctx, login)
	if err != nil {
		if errors.Is(err, ErrUnknownSubject) {
			return nil, ErrUnknownSubject
		}
		g.logger.Error("Authenticate principal lookup failed", "login", login, "error", err)
		return nil, errors.Wrap(err, errors.CategoryInternal, "principal lookup failed")
	}

	if err := g.passwords.Verify(password, principal.PasswordHash()); err != nil {
		if errors.Is(err, ErrCredentialMismatch) {
			return nil, ErrCredentialMismatch
		}
		g.logger.Error("Authenticate password verification failed", "login", login, "error", err)
		return nil, errors.Wrap(err, errors.CategoryInternal, "password verification failed")
	}

	token, err := g.refresh.Create(ctx, principal.Login())
	if err != nil {
		g.logger.Error("Authenticate refresh token creation failed", "login", login, "error", err)
		return nil, err
	}

	return token, nil
}

// Refresh exchanges a (login, value) pair for a fresh bearer token. The
// refresh value stays valid afterwards: there is no rotation or
// revocation-on-use.
func (g *Gate) Refresh(ctx context.Context, login, refreshValue string) (string, error) {
	exists, err := g.refresh.ExistsByLoginAndToken(ctx, login, refreshValue)
	if err != nil {
		g.logger.Error("Refresh existence check failed", "login", login, "error", err)
		return "", err
	}

	if !exists {
		return "", ErrNoSuchRefreshToken
	}

	return g.tokens.Issue(login)
}

// SweepExpired runs one batch deletion of expired refresh tokens. It is
// invoked by the Sweeper timer, never by request handling.
func (g *Gate) SweepExpired(ctx context.Context) error {
	deleted, err := g.refresh.DeleteExpired(ctx)
	if err != nil {
		return err
	}

	g.logger.Info("deleted expired refresh tokens", "count", deleted)
	return nil
}
