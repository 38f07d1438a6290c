package auth

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/gofiber/fiber/v2"
	"github.com/goliatone/go-errors"
	"github.com/goliatone/go-print"
	"github.com/goliatone/go-router"
)

// CookieRefreshToken carries the opaque refresh value to the client
const CookieRefreshToken = "refresh_token"

// CookieLogin carries the plaintext login paired with the refresh value
const CookieLogin = "login"

// AuthControllerRoutes holds the route paths served by the controller
type AuthControllerRoutes struct {
	Authenticate   string
	GetAccessToken string
	SignUp         string
	Me             string
}

// AuthController serves the authentication endpoints: login (refresh token
// issuance via cookies), access token exchange, and registration.
type AuthController struct {
	Logger       Logger
	Config       Config
	Gate         Authenticator
	Users        Users
	Passwords    PasswordAuthenticator
	Validator    SignUpValidator
	Routes       *AuthControllerRoutes
	ErrorHandler router.ErrorHandler
}

type AuthControllerOption func(*AuthController) *AuthController

// WithControllerLogger sets the controller logger
func WithControllerLogger(l Logger) AuthControllerOption {
	return func(c *AuthController) *AuthController {
		c.Logger = l
		return c
	}
}

// WithControllerRoutes overrides the default route paths
func WithControllerRoutes(routes *AuthControllerRoutes) AuthControllerOption {
	return func(c *AuthController) *AuthController {
		c.Routes = routes
		return c
	}
}

// NewAuthController creates the controller. Gate, Users, Passwords, and
// Config are mandatory collaborators.
func NewAuthController(gate Authenticator, users Users, passwords PasswordAuthenticator, cfg Config, opts ...AuthControllerOption) *AuthController {
	c := &AuthController{
		Logger:    defLogger{},
		Config:    cfg,
		Gate:      gate,
		Users:     users,
		Passwords: passwords,
		Validator: NewSignUpValidator(DefaultValidationRules()),
		Routes: &AuthControllerRoutes{
			Authenticate:   "/auth/authenticate",
			GetAccessToken: "/auth/get-access-token",
			SignUp:         "/auth/sign-up",
			Me:             "/auth/me",
		},
	}

	c.ErrorHandler = c.defaultErrHandler

	for _, opt := range opts {
		c = opt(c)
	}

	if c.Gate == nil {
		panic("Missing Authenticator in auth controller...")
	}

	if c.Users == nil {
		panic("Missing Users repository in auth controller...")
	}

	return c
}

// RegisterAuthRoutes mounts the public authentication endpoints
func RegisterAuthRoutes[T any](app router.Router[T], controller *AuthController) {
	app.Post(controller.Routes.Authenticate, controller.AuthenticatePost).
		SetName("auth.authenticate")

	app.Post(controller.Routes.GetAccessToken, controller.GetAccessTokenPost).
		SetName("auth.get-access-token")

	app.Put(controller.Routes.SignUp, controller.SignUpPut).
		SetName("auth.sign-up")
}

// RegisterUserRoutes mounts the principal-gated endpoints. The identity
// middleware must wrap these so the principal context is populated.
func RegisterUserRoutes[T any](app router.Router[T], controller *AuthController, identity router.MiddlewareFunc) {
	app.Get(controller.Routes.Me, identity(controller.MeGet)).
		SetName("auth.me.get")

	app.Delete(controller.Routes.Me, identity(controller.MeDelete)).
		SetName("auth.me.delete")
}

// LoginRequest payload
type LoginRequest struct {
	Login    string `form:"login" json:"login"`
	Password string `form:"password" json:"password"`
}

// Validate will run validation rules
func (r LoginRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Login, validation.Required),
		validation.Field(&r.Password, validation.Required),
	)
}

// AuthenticatePost handles login: it runs the gate and delivers the refresh
// token and login as httpOnly cookies scoped to the auth path.
func (a *AuthController) AuthenticatePost(ctx router.Context) error {
	payload := new(LoginRequest)

	if err := ctx.Bind(payload); err != nil {
		return a.ErrorHandler(ctx, errors.Wrap(err, errors.CategoryBadInput, "could not parse login payload").
			WithCode(errors.CodeBadRequest))
	}

	if err := payload.Validate(); err != nil {
		return a.ErrorHandler(ctx, ErrMissingCredentials)
	}

	token, err := a.Gate.Authenticate(ctx.Context(), payload.Login, payload.Password)
	if err != nil {
		return a.ErrorHandler(ctx, err)
	}

	maxAge := token.SecondsToExpiration(time.Now())
	a.setAuthCookie(ctx, CookieRefreshToken, token.Token, maxAge)
	a.setAuthCookie(ctx, CookieLogin, token.UserLogin, maxAge)

	return ctx.JSON(fiber.StatusOK, map[string]any{
		"login":      token.UserLogin,
		"expires_at": token.ExpirationDate.UTC().Format(time.RFC3339),
	})
}

// GetAccessTokenPost exchanges the refresh token and login cookies for a
// fresh bearer token.
func (a *AuthController) GetAccessTokenPost(ctx router.Context) error {
	login := ctx.Cookies(CookieLogin)
	refreshValue := ctx.Cookies(CookieRefreshToken)

	if login == "" || refreshValue == "" {
		return a.ErrorHandler(ctx, ErrNoSuchRefreshToken)
	}

	bearer, err := a.Gate.Refresh(ctx.Context(), login, refreshValue)
	if err != nil {
		return a.ErrorHandler(ctx, err)
	}

	return ctx.JSON(fiber.StatusOK, map[string]string{
		"token": bearer,
	})
}

// SignUpRequest is the registration payload
type SignUpRequest struct {
	Login     string `form:"login" json:"login"`
	FullName  string `form:"full_name" json:"full_name"`
	Email     string `form:"email" json:"email"`
	Password1 string `form:"password1" json:"password1"`
	Password2 string `form:"password2" json:"password2"`
}

// SignUpPut registers a new user. Validation failures answer with the
// machine tag of the first violated rule, never a free-text message.
func (a *AuthController) SignUpPut(ctx router.Context) error {
	payload := new(SignUpRequest)

	if err := ctx.Bind(payload); err != nil {
		return a.ErrorHandler(ctx, errors.Wrap(err, errors.CategoryBadInput, "could not parse sign-up payload").
			WithCode(errors.CodeBadRequest))
	}

	result := a.Validator(SignUpInput{
		Login:     payload.Login,
		FullName:  payload.FullName,
		Email:     payload.Email,
		Password1: payload.Password1,
		Password2: payload.Password2,
	})

	if !result.IsSuccess() {
		return ctx.JSON(fiber.StatusBadRequest, map[string]string{
			"error": string(result),
		})
	}

	hash, err := a.Passwords.Hash(payload.Password1)
	if err != nil {
		return a.ErrorHandler(ctx, err)
	}

	user := &User{
		UserLogin: payload.Login,
		FullName:  payload.FullName,
		UserEmail: payload.Email,
		UserRole:  RoleUser,
		Hash:      hash,
	}

	if _, err := a.Users.Register(ctx.Context(), user); err != nil {
		return a.ErrorHandler(ctx, err)
	}

	return ctx.JSON(fiber.StatusCreated, map[string]string{
		"login": payload.Login,
	})
}

// MeGet returns the authenticated principal's own record, sanitized
func (a *AuthController) MeGet(ctx router.Context) error {
	principal, ok := PrincipalFromContext(ctx.Context())
	if !ok {
		return a.ErrorHandler(ctx, ErrUnknownSubject)
	}

	user, err := a.Users.GetByLogin(ctx.Context(), principal.Login())
	if err != nil {
		return a.ErrorHandler(ctx, err)
	}

	return ctx.JSON(fiber.StatusOK, user.Sanitized())
}

// MeDelete removes the authenticated principal's own account
func (a *AuthController) MeDelete(ctx router.Context) error {
	principal, ok := PrincipalFromContext(ctx.Context())
	if !ok {
		return a.ErrorHandler(ctx, ErrUnknownSubject)
	}

	if err := a.Users.DeleteByLogin(ctx.Context(), principal.Login()); err != nil {
		return a.ErrorHandler(ctx, err)
	}

	return ctx.JSON(fiber.StatusOK, map[string]string{
		"deleted": principal.Login(),
	})
}

func (a *AuthController) setAuthCookie(ctx router.Context, name, value string, maxAge int) {
	ctx.Cookie(&router.Cookie{
		Name:     name,
		Value:    value,
		Path:     a.Config.GetCookiePath(),
		MaxAge:   maxAge,
		HTTPOnly: true,
		Secure:   a.Config.GetSecureCookies(),
		SameSite: "Lax",
	})
}

func (a *AuthController) defaultErrHandler(c router.Context, err error) error {
	var richErr *errors.Error
	if !errors.As(err, &richErr) {
		richErr = errors.Wrap(err, errors.CategoryInternal, "An unexpected server error occurred").
			WithCode(errors.CodeInternal)
	}

	a.Logger.Info(
		"Controller error handler",
		"error", richErr.Message,
		"category", richErr.Category,
		"details", print.MaybePrettyJSON(richErr.Metadata),
	)

	status := richErr.Code
	if status == 0 {
		status = fiber.StatusInternalServerError
	}

	// only the stable machine readable reason reaches the client
	return c.JSON(status, map[string]string{
		"error": richErr.TextCode,
	})
}
