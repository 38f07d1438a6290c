// Package auth implements a stateless bearer/refresh authentication
// subsystem: short-lived signed bearer tokens backed by long-lived opaque
// refresh tokens, per-request identity derivation, and no server-side
// session state.
//
// Token issuance:
//   - ClaimsCodec signs and verifies compact claims (subject, issued-at,
//     expiry, issuer) with an HMAC-SHA-512 key. TokenService wraps the codec
//     with process policy: the signing key, the fixed issuer, and the default
//     ten minute lifetime.
//
// Refresh lifecycle:
//   - Gate.Authenticate validates credentials and persists an opaque twelve
//     character refresh token via the RefreshTokens repository. Gate.Refresh
//     exchanges a (login, value) pair for a fresh bearer token. Sweeper
//     deletes expired refresh rows on a daily cadence.
//
// Request identity:
//   - The identityware middleware reads the Authorization header, verifies
//     the bearer token, resolves the subject to a principal, and threads the
//     principal through the request context. Invalid tokens downgrade to an
//     anonymous request; they never produce an error response on their own.
package auth
