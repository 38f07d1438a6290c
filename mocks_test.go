package auth_test

import (
	"context"

	"github.com/goliatone/go-router"
	"github.com/goliatone/go-session-auth"
	"github.com/stretchr/testify/mock"
)

// routerContext lets MockContext embed the router.Context interface without
// the embedded field name colliding with the Context() method.
type routerContext = router.Context

// MockContext mocks router.Context. The embedded interface covers the
// methods a test never touches; calling one of those fails the test loudly.
type MockContext struct {
	routerContext
	mock.Mock
	NextCalled bool
}

func NewMockContext() *MockContext {
	return &MockContext{}
}

func (m *MockContext) Next() error {
	m.NextCalled = true
	return nil
}

func (m *MockContext) Context() context.Context {
	args := m.Called()
	c, ok := args.Get(0).(context.Context)
	if !ok {
		panic("arg needs to be context.Context")
	}
	return c
}

func (m *MockContext) SetContext(ctx context.Context) {
	m.Called(ctx)
}

func (m *MockContext) GetString(key string, defaultValue string) string {
	args := m.Called(key, defaultValue)
	return args.String(0)
}

func (m *MockContext) Bind(i any) error {
	args := m.Called(i)
	return args.Error(0)
}

func (m *MockContext) JSON(code int, val any) error {
	args := m.Called(code, val)
	return args.Error(0)
}

func (m *MockContext) Cookie(cookie *router.Cookie) {
	m.Called(cookie)
}

func (m *MockContext) Cookies(key string, defaultValue ...string) string {
	if len(defaultValue) > 0 {
		args := m.Called(key, defaultValue[0])
		return args.String(0)
	}
	args := m.Called(key)
	return args.String(0)
}

// MockPrincipalLookup implements auth.PrincipalLookup
type MockPrincipalLookup struct {
	mock.Mock
}

func (m *MockPrincipalLookup) FindByLogin(ctx context.Context, login string) (auth.Principal, error) {
	args := m.Called(ctx, login)
	if p, ok := args.Get(0).(auth.Principal); ok {
		return p, args.Error(1)
	}
	return nil, args.Error(1)
}

// MockPasswords implements auth.PasswordAuthenticator
type MockPasswords struct {
	mock.Mock
}

func (m *MockPasswords) Verify(password, hash string) error {
	args := m.Called(password, hash)
	return args.Error(0)
}

func (m *MockPasswords) Hash(password string) (string, error) {
	args := m.Called(password)
	return args.String(0), args.Error(1)
}

// MockRefreshTokens implements auth.RefreshTokens
type MockRefreshTokens struct {
	mock.Mock
}

func (m *MockRefreshTokens) Create(ctx context.Context, login string) (*auth.RefreshToken, error) {
	args := m.Called(ctx, login)
	if t, ok := args.Get(0).(*auth.RefreshToken); ok {
		return t, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockRefreshTokens) ExistsByLoginAndToken(ctx context.Context, login, token string) (bool, error) {
	args := m.Called(ctx, login, token)
	return args.Bool(0), args.Error(1)
}

func (m *MockRefreshTokens) DeleteExpired(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// MockGate implements auth.Authenticator
type MockGate struct {
	mock.Mock
}

func (m *MockGate) Authenticate(ctx context.Context, login, password string) (*auth.RefreshToken, error) {
	args := m.Called(ctx, login, password)
	if t, ok := args.Get(0).(*auth.RefreshToken); ok {
		return t, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockGate) Refresh(ctx context.Context, login, refreshValue string) (string, error) {
	args := m.Called(ctx, login, refreshValue)
	return args.String(0), args.Error(1)
}

func (m *MockGate) SweepExpired(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// MockUsers mocks the handful of auth.Users methods the controller touches
type MockUsers struct {
	auth.Users
	mock.Mock
}

func (m *MockUsers) GetByLogin(ctx context.Context, login string) (*auth.User, error) {
	args := m.Called(ctx, login)
	if u, ok := args.Get(0).(*auth.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUsers) FindByLogin(ctx context.Context, login string) (auth.Principal, error) {
	args := m.Called(ctx, login)
	if p, ok := args.Get(0).(auth.Principal); ok {
		return p, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUsers) Register(ctx context.Context, user *auth.User) (*auth.User, error) {
	args := m.Called(ctx, user)
	if u, ok := args.Get(0).(*auth.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUsers) DeleteByLogin(ctx context.Context, login string) error {
	args := m.Called(ctx, login)
	return args.Error(0)
}

// testPrincipal is a bare auth.Principal for gate tests
type testPrincipal struct {
	login string
	email string
	role  auth.Role
	hash  string
}

func (p testPrincipal) Login() string        { return p.login }
func (p testPrincipal) Email() string        { return p.email }
func (p testPrincipal) Role() auth.Role      { return p.role }
func (p testPrincipal) PasswordHash() string { return p.hash }
