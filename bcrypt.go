package auth

import (
	"github.com/goliatone/go-errors"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// BcryptAuthenticator implements PasswordAuthenticator on bcrypt
type BcryptAuthenticator struct {
	cost int
}

var _ PasswordAuthenticator = (*BcryptAuthenticator)(nil)

// NewBcryptAuthenticator returns a bcrypt authenticator. Cost values outside
// the bcrypt range fall back to the library default.
func NewBcryptAuthenticator(cost int) *BcryptAuthenticator {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &BcryptAuthenticator{cost: cost}
}

// Hash will generate a password hash
func (b *BcryptAuthenticator) Hash(password string) (string, error) {
	if password == "" {
		return "", ErrNoEmptyString
	}

	h, err := bcrypt.GenerateFromPassword([]byte(password), b.cost)
	if err != nil {
		return "", errors.Wrap(err, errors.CategoryInternal, "failed to hash password")
	}
	return string(h), nil
}

// Verify validates the given cleartext password against the hashed password
func (b *BcryptAuthenticator) Verify(password, hash string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return ErrCredentialMismatch
		}
		return errors.Wrap(err, errors.CategoryInternal, "failed to compare password hash")
	}
	return nil
}

// RandomPasswordHash is a temporary password placeholder
func (b *BcryptAuthenticator) RandomPasswordHash() string {
	pwd := uuid.New()

	h, err := b.Hash(pwd.String())
	if err != nil {
		return b.RandomPasswordHash()
	}

	return h
}
