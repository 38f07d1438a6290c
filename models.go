package auth

import (
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// User is the user model. Login is the sole token subject; uniqueness of
// login and email is enforced by the store.
type User struct {
	bun.BaseModel `bun:"table:users,alias:usr"`
	ID            uuid.UUID  `bun:"id,pk,nullzero,type:uuid" json:"id,omitempty"`
	UserLogin     string     `bun:"login,notnull,unique" json:"login,omitempty"`
	FullName      string     `bun:"full_name,notnull" json:"full_name,omitempty"`
	UserEmail     string     `bun:"email,notnull,unique" json:"email,omitempty"`
	UserRole      Role       `bun:"user_role,notnull" json:"user_role,omitempty"`
	Hash          string     `bun:"password_hash" json:"password_hash,omitempty"`
	CreatedAt     *time.Time `bun:"created_at,nullzero,default:current_timestamp" json:"created_at,omitempty"`
	UpdatedAt     *time.Time `bun:"updated_at,nullzero,default:current_timestamp" json:"updated_at,omitempty"`
	DeletedAt     *time.Time `bun:"deleted_at,soft_delete,nullzero" json:"deleted_at,omitempty"`
}

var _ Principal = (*User)(nil)

// Login returns the unique login used as token subject
func (u *User) Login() string {
	return u.UserLogin
}

// Email returns the user's email address
func (u *User) Email() string {
	return u.UserEmail
}

// Role returns the user's role
func (u *User) Role() Role {
	return u.UserRole
}

// PasswordHash returns the stored password hash
func (u *User) PasswordHash() string {
	return u.Hash
}

// Sanitized returns a copy safe to serialize to clients: no ID, no hash.
func (u User) Sanitized() User {
	u.ID = uuid.Nil
	u.Hash = ""
	return u
}

// RefreshToken is a long-lived opaque credential a client exchanges for
// bearer tokens. ID is assigned by the store on insert and is zero before.
// Rows are never mutated after creation; they leave the table only through
// the expiry sweep.
type RefreshToken struct {
	bun.BaseModel  `bun:"table:refresh_tokens,alias:rft"`
	ID             int64     `bun:"id,pk,autoincrement" json:"id,omitempty"`
	UserLogin      string    `bun:"user_login,notnull" json:"user_login,omitempty"`
	Token          string    `bun:"token,notnull" json:"token,omitempty"`
	ExpirationDate time.Time `bun:"expiration_date,notnull" json:"expiration_date,omitempty"`
}

// SecondsToExpiration returns the whole seconds between now and the token's
// expiration date. Used as cookie max age.
func (r *RefreshToken) SecondsToExpiration(now time.Time) int {
	return int(r.ExpirationDate.Sub(now) / time.Second)
}
