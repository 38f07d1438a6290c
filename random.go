package auth

import (
	"crypto/rand"
	"math/big"

	"github.com/goliatone/go-errors"
)

const alphaNumericSet = "0123456789abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"

// DefaultRefreshTokenLength is the length of generated refresh token values
const DefaultRefreshTokenLength = 12

// RandomAlphaNumeric returns a cryptographically random string of length n
// drawn from [0-9a-zA-Z].
func RandomAlphaNumeric(n int) (string, error) {
	if n <= 0 {
		return "", errors.New("length must be positive", errors.CategoryBadInput)
	}

	max := big.NewInt(int64(len(alphaNumericSet)))

	out := make([]byte, n)
	for i := range out {
		idx, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", errors.Wrap(err, errors.CategoryInternal, "failed to read random bytes")
		}
		out[i] = alphaNumericSet[idx.Int64()]
	}

	return string(out), nil
}
