package auth

import (
	"context"
	"time"

	goerrors "github.com/goliatone/go-errors"
	"github.com/goliatone/hashid/pkg/hashid"
	"github.com/uptrace/bun"
)

type RegisterUserMessage struct {
	Login    string `json:"login"`
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Role     Role   `json:"role"`
	Password string `json:"password"`
	// UseHashid derives the user id from the email instead of letting the
	// store assign a random one, keeping ids stable across re-seeds.
	UseHashid bool `json:"use_hashid"`
}

func (e RegisterUserMessage) Type() string { return "user.register" }

// RegisterUserHandler registers a user inside a single transaction: hash the
// password, check availability, insert. Meant for programmatic registration
// paths like seeding and admin tooling; the HTTP sign-up flow runs the
// validation chain first and then the same store logic.
type RegisterUserHandler struct {
	repo      RepositoryManager
	passwords PasswordAuthenticator
}

func NewRegisterUserHandler(repo RepositoryManager, passwords PasswordAuthenticator) *RegisterUserHandler {
	return &RegisterUserHandler{
		repo:      repo,
		passwords: passwords,
	}
}

func (h *RegisterUserHandler) Execute(ctx context.Context, event RegisterUserMessage) error {
	select {
	case <-ctx.Done():
		return goerrors.Wrap(
			ctx.Err(),
			goerrors.CategoryOperation,
			"context cancelled during user registration",
		)
	default:
		return h.execute(ctx, event)
	}
}

func (h *RegisterUserHandler) execute(ctx context.Context, event RegisterUserMessage) error {
	ctx, cancel := context.WithTimeout(ctx, time.Second*10)
	defer cancel()

	role := event.Role
	if !role.IsValid() {
		role = RoleUser
	}

	err := h.repo.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		hash, err := h.passwords.Hash(event.Password)
		if err != nil {
			var richErr *goerrors.Error
			if goerrors.As(err, &richErr) {
				return goerrors.Wrap(richErr, goerrors.CategoryValidation, "invalid password provided")
			}
			return goerrors.Wrap(err, goerrors.CategoryInternal, "failed to hash password")
		}

		user := &User{
			UserLogin: event.Login,
			FullName:  event.FullName,
			UserEmail: event.Email,
			UserRole:  role,
			Hash:      hash,
		}

		if event.UseHashid {
			if id, err := hashid.NewUUID(event.Email); err == nil {
				user.ID = id
			}
		}

		if _, err := h.repo.Users().RegisterTx(ctx, tx, user); err != nil {
			return err
		}

		return nil
	})

	if err != nil {
		var richErr *goerrors.Error
		if goerrors.As(err, &richErr) {
			return richErr
		}

		return goerrors.Wrap(err, goerrors.CategoryInternal, "user registration transaction failed")
	}

	return nil
}
