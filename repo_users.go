package auth

import (
	"context"

	goerrors "github.com/goliatone/go-errors"
	"github.com/goliatone/go-repository-bun"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// Users is the user store consumed by registration, the gate, and the
// identity middleware.
type Users interface {
	repository.Repository[*User]
	PrincipalLookup

	GetByLogin(ctx context.Context, login string) (*User, error)
	ExistsByLogin(ctx context.Context, login string) (bool, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	Register(ctx context.Context, user *User) (*User, error)
	RegisterTx(ctx context.Context, tx bun.IDB, user *User) (*User, error)
	DeleteByLogin(ctx context.Context, login string) error
}

type users struct {
	repository.Repository[*User]
	db *bun.DB
}

var (
	_ Users                        = (*users)(nil)
	_ repository.Repository[*User] = (*users)(nil)
	_ PrincipalLookup              = (*users)(nil)
)

// NewUsersRepository creates the Bun backed user store
func NewUsersRepository(db *bun.DB) Users {
	repo := repository.NewRepository[*User](db, repository.ModelHandlers[*User]{
		NewRecord: func() *User { return &User{} },
		GetID: func(u *User) uuid.UUID {
			if u == nil {
				return uuid.Nil
			}
			return u.ID
		},
		SetID: func(u *User, id uuid.UUID) {
			if u != nil {
				u.ID = id
			}
		},
		GetIdentifier: func() string {
			return "login"
		},
	})

	return &users{
		Repository: repo,
		db:         db,
	}
}

func (a *users) GetByLogin(ctx context.Context, login string) (*User, error) {
	record := &User{}
	err := a.db.NewSelect().
		Model(record).
		Where("?TableAlias.login = ?", login).
		Limit(1).
		Scan(ctx)
	if err != nil {
		if repository.IsRecordNotFound(err) {
			return nil, repository.NewRecordNotFound().
				WithMetadata(map[string]any{"login": login})
		}
		return nil, err
	}
	return record, nil
}

// FindByLogin implements PrincipalLookup. An absent login surfaces as
// ErrUnknownSubject so callers never see storage details.
func (a *users) FindByLogin(ctx context.Context, login string) (Principal, error) {
	user, err := a.GetByLogin(ctx, login)
	if err != nil {
		if repository.IsRecordNotFound(err) {
			return nil, ErrUnknownSubject
		}
		return nil, err
	}
	return user, nil
}

func (a *users) ExistsByLogin(ctx context.Context, login string) (bool, error) {
	return a.db.NewSelect().
		Model((*User)(nil)).
		Where("?TableAlias.login = ?", login).
		Exists(ctx)
}

func (a *users) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	return a.db.NewSelect().
		Model((*User)(nil)).
		Where("?TableAlias.email = ?", email).
		Exists(ctx)
}

func (a *users) Register(ctx context.Context, user *User) (*User, error) {
	return a.RegisterTx(ctx, a.db, user)
}

// RegisterTx inserts user after checking login and email availability. The
// login check runs first so the reported conflict is deterministic when both
// fields collide.
func (a *users) RegisterTx(ctx context.Context, tx bun.IDB, user *User) (*User, error) {
	taken, err := tx.NewSelect().
		Model((*User)(nil)).
		Where("?TableAlias.login = ?", user.UserLogin).
		Exists(ctx)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrLoginIsTaken
	}

	taken, err = tx.NewSelect().
		Model((*User)(nil)).
		Where("?TableAlias.email = ?", user.UserEmail).
		Exists(ctx)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrEmailIsTaken
	}

	record, err := a.Repository.CreateTx(ctx, tx, user)
	if err != nil {
		return nil, goerrors.Wrap(err, goerrors.CategoryConflict, "could not create user")
	}

	return record, nil
}

func (a *users) DeleteByLogin(ctx context.Context, login string) error {
	_, err := a.db.NewDelete().
		Model((*User)(nil)).
		Where("login = ?", login).
		Exec(ctx)
	return err
}
