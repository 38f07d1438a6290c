package auth

import (
	"context"
	"time"

	"github.com/goliatone/go-errors"
	"github.com/uptrace/bun"
)

// DefaultRefreshTokenExpirationDays is the refresh token lifetime in days
const DefaultRefreshTokenExpirationDays = 365

// RefreshTokens persists opaque refresh token records. Records are inserted
// on login and leave the table only through the expiry sweep; presentation
// during refresh does not consume them.
type RefreshTokens interface {
	Create(ctx context.Context, login string) (*RefreshToken, error)
	ExistsByLoginAndToken(ctx context.Context, login, token string) (bool, error)
	DeleteExpired(ctx context.Context) (int64, error)
}

// RefreshTokenRepository implements RefreshTokens using Bun
type RefreshTokenRepository struct {
	db          *bun.DB
	tokenLength int
	lifetime    time.Duration
	generate    func(int) (string, error)
	now         func() time.Time
}

var _ RefreshTokens = (*RefreshTokenRepository)(nil)

type RefreshTokenRepositoryOption func(*RefreshTokenRepository)

// WithRefreshTokenLength overrides the generated value length
func WithRefreshTokenLength(n int) RefreshTokenRepositoryOption {
	return func(r *RefreshTokenRepository) {
		if n > 0 {
			r.tokenLength = n
		}
	}
}

// WithRefreshTokenLifetime overrides the refresh token lifetime
func WithRefreshTokenLifetime(d time.Duration) RefreshTokenRepositoryOption {
	return func(r *RefreshTokenRepository) {
		if d > 0 {
			r.lifetime = d
		}
	}
}

// WithRefreshTokenClock overrides the time source. Used by tests.
func WithRefreshTokenClock(now func() time.Time) RefreshTokenRepositoryOption {
	return func(r *RefreshTokenRepository) {
		if now != nil {
			r.now = now
		}
	}
}

// NewRefreshTokenRepository creates a new repository
func NewRefreshTokenRepository(db *bun.DB, opts ...RefreshTokenRepositoryOption) *RefreshTokenRepository {
	repo := &RefreshTokenRepository{
		db:          db,
		tokenLength: DefaultRefreshTokenLength,
		lifetime:    DefaultRefreshTokenExpirationDays * 24 * time.Hour,
		generate:    RandomAlphaNumeric,
		now:         time.Now,
	}

	for _, opt := range opts {
		opt(repo)
	}

	return repo
}

// NewRefreshTokenRepositoryFromConfig builds the repository from the config
// surface: value length and lifetime come from cfg, explicit options still
// win.
func NewRefreshTokenRepositoryFromConfig(db *bun.DB, cfg Config, opts ...RefreshTokenRepositoryOption) *RefreshTokenRepository {
	base := []RefreshTokenRepositoryOption{
		WithRefreshTokenLength(cfg.GetRefreshTokenLength()),
		WithRefreshTokenLifetime(time.Duration(cfg.GetRefreshTokenExpirationDays()) * 24 * time.Hour),
	}
	return NewRefreshTokenRepository(db, append(base, opts...)...)
}

// Create generates an opaque value for login, stamps the expiration date,
// and persists the record. The store assigns the numeric identity on insert.
func (r *RefreshTokenRepository) Create(ctx context.Context, login string) (*RefreshToken, error) {
	value, err := r.generate(r.tokenLength)
	if err != nil {
		return nil, err
	}

	record := &RefreshToken{
		UserLogin:      login,
		Token:          value,
		ExpirationDate: r.now().Add(r.lifetime),
	}

	if _, err := r.db.NewInsert().Model(record).Exec(ctx); err != nil {
		return nil, errors.Wrap(err, errors.CategoryInternal, "could not persist refresh token")
	}

	return record, nil
}

// ExistsByLoginAndToken checks the (login, value) compound key with an exact
// match on both fields.
func (r *RefreshTokenRepository) ExistsByLoginAndToken(ctx context.Context, login, token string) (bool, error) {
	exists, err := r.db.NewSelect().
		Model((*RefreshToken)(nil)).
		Where("user_login = ? AND token = ?", login, token).
		Exists(ctx)
	if err != nil {
		return false, errors.Wrap(err, errors.CategoryInternal, "could not check refresh token")
	}
	return exists, nil
}

// DeleteExpired removes every record whose expiration date is strictly
// before the start of the current day, in one batch. Expiry is
// date-granular: a record expiring earlier the same day survives until the
// next day's sweep. Running it again with no new expirations is a no-op.
// Concurrently inserted non-expired rows are unaffected because the delete
// matches only on the expiration predicate.
func (r *RefreshTokenRepository) DeleteExpired(ctx context.Context) (int64, error) {
	now := r.now()
	cutoff := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	res, err := r.db.NewDelete().
		Model((*RefreshToken)(nil)).
		Where("expiration_date < ?", cutoff).
		Exec(ctx)
	if err != nil {
		return 0, errors.Wrap(err, errors.CategoryInternal, "could not delete expired refresh tokens")
	}

	deleted, _ := res.RowsAffected()
	return deleted, nil
}
