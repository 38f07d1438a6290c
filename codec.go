package auth

import (
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/goliatone/go-errors"
)

// SchemeBearer is the scheme label prefixed to every issued token
const SchemeBearer = "Bearer "

// ClaimsCodec signs and verifies Claims with a symmetric HMAC-SHA-512 key.
// The codec is pure: it never consults a store, and verification has no side
// effects. Lifetime and issuer policy live in TokenService, not here.
type ClaimsCodec struct {
	signingKey []byte
}

// NewClaimsCodec returns a codec bound to key. The key is read-only after
// construction and safe for concurrent use.
func NewClaimsCodec(signingKey []byte) *ClaimsCodec {
	return &ClaimsCodec{signingKey: signingKey}
}

// Sign serializes and signs claims, returning the token prefixed with the
// bearer scheme label.
func (c *ClaimsCodec) Sign(claims *Claims) (string, error) {
	if claims == nil {
		return "", errors.New("claims must not be nil", errors.CategoryInternal)
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS512, claims)

	signed, err := token.SignedString(c.signingKey)
	if err != nil {
		return "", errors.Wrap(err, errors.CategoryInternal, "failed to sign token")
	}

	return SchemeBearer + signed, nil
}

// Verify parses raw, stripping the scheme label when present, and checks
// signature and validity window. Failures map onto ErrTokenMalformed,
// ErrTokenExpired, or ErrBadSignature; a mismatched key is a signature
// failure, never a crash.
func (c *ClaimsCodec) Verify(raw string) (*Claims, error) {
	if len(raw) < len(SchemeBearer) {
		return nil, ErrTokenMalformed
	}

	if strings.EqualFold(raw[:len(SchemeBearer)], SchemeBearer) {
		raw = raw[len(SchemeBearer):]
	}

	token, err := jwt.ParseWithClaims(raw, &Claims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return c.signingKey, nil
	})

	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, ErrTokenExpired
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return nil, ErrBadSignature
		default:
			return nil, ErrTokenMalformed
		}
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrTokenMalformed
	}

	return claims, nil
}
