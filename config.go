package auth

// SimpleConfig is a plain-struct Config implementation with sane defaults
// applied by NewSimpleConfig. Zero values mean "use the default".
type SimpleConfig struct {
	// SigningKey signs bearer tokens; empty generates a per-process key
	SigningKey []byte
	// TokenExpiration is the bearer token lifetime in minutes
	TokenExpiration int
	// RefreshTokenLength is the length of generated refresh token values
	RefreshTokenLength int
	// RefreshTokenExpirationDays is the refresh token lifetime in days
	RefreshTokenExpirationDays int
	// SweepInterval is the expiry sweep cadence in hours
	SweepInterval int
	// AuthScheme is the bearer scheme label without trailing space
	AuthScheme string
	// ContextKey is where middleware stores the resolved principal
	ContextKey string
	// TokenLookup tells middleware where to find the token
	TokenLookup string
	// CookiePath scopes the refresh and login cookies
	CookiePath string
	// SecureCookies marks cookies as secure-transport only
	SecureCookies bool
}

var _ Config = (*SimpleConfig)(nil)

// NewSimpleConfig fills the zero fields of cfg with defaults
func NewSimpleConfig(cfg SimpleConfig) *SimpleConfig {
	if cfg.TokenExpiration == 0 {
		cfg.TokenExpiration = int(DefaultTokenLifetime.Minutes())
	}
	if cfg.RefreshTokenLength == 0 {
		cfg.RefreshTokenLength = DefaultRefreshTokenLength
	}
	if cfg.RefreshTokenExpirationDays == 0 {
		cfg.RefreshTokenExpirationDays = DefaultRefreshTokenExpirationDays
	}
	if cfg.SweepInterval == 0 {
		cfg.SweepInterval = 24
	}
	if cfg.AuthScheme == "" {
		cfg.AuthScheme = "Bearer"
	}
	if cfg.ContextKey == "" {
		cfg.ContextKey = "principal"
	}
	if cfg.TokenLookup == "" {
		cfg.TokenLookup = "header:Authorization"
	}
	if cfg.CookiePath == "" {
		cfg.CookiePath = "/auth"
	}
	return &cfg
}

func (c *SimpleConfig) GetSigningKey() []byte              { return c.SigningKey }
func (c *SimpleConfig) GetIssuer() string                  { return Issuer }
func (c *SimpleConfig) GetTokenExpiration() int            { return c.TokenExpiration }
func (c *SimpleConfig) GetRefreshTokenLength() int         { return c.RefreshTokenLength }
func (c *SimpleConfig) GetRefreshTokenExpirationDays() int { return c.RefreshTokenExpirationDays }
func (c *SimpleConfig) GetSweepInterval() int              { return c.SweepInterval }
func (c *SimpleConfig) GetAuthScheme() string              { return c.AuthScheme }
func (c *SimpleConfig) GetContextKey() string              { return c.ContextKey }
func (c *SimpleConfig) GetTokenLookup() string             { return c.TokenLookup }
func (c *SimpleConfig) GetCookiePath() string              { return c.CookiePath }
func (c *SimpleConfig) GetSecureCookies() bool             { return c.SecureCookies }
