package auth_test

import (
	"strings"
	"testing"

	"github.com/goliatone/go-session-auth"
	"github.com/stretchr/testify/assert"
)

func validSignUpInput() auth.SignUpInput {
	return auth.SignUpInput{
		Login:     "johndoe",
		FullName:  "John Doe",
		Email:     "john@example.com",
		Password1: "password1!",
		Password2: "password1!",
	}
}

func TestSignUpValidator(t *testing.T) {
	validate := auth.NewSignUpValidator(auth.DefaultValidationRules())

	tests := []struct {
		name   string
		mutate func(*auth.SignUpInput)
		want   auth.SignUpResult
	}{
		{
			name:   "valid input passes",
			mutate: func(in *auth.SignUpInput) {},
			want:   auth.SignUpSuccess,
		},
		{
			name:   "empty login",
			mutate: func(in *auth.SignUpInput) { in.Login = "" },
			want:   auth.SignUpFieldIsNull,
		},
		{
			name:   "empty confirmation password",
			mutate: func(in *auth.SignUpInput) { in.Password2 = "" },
			want:   auth.SignUpFieldIsNull,
		},
		{
			name:   "login below minimum length",
			mutate: func(in *auth.SignUpInput) { in.Login = "ab" },
			want:   auth.SignUpLoginNotCorrect,
		},
		{
			name:   "login above maximum length",
			mutate: func(in *auth.SignUpInput) { in.Login = strings.Repeat("a", 31) },
			want:   auth.SignUpLoginNotCorrect,
		},
		{
			name:   "login with whitespace",
			mutate: func(in *auth.SignUpInput) { in.Login = "john doe" },
			want:   auth.SignUpLoginNotCorrect,
		},
		{
			name:   "full name not capitalized",
			mutate: func(in *auth.SignUpInput) { in.FullName = "john doe" },
			want:   auth.SignUpFullNameNotCorrect,
		},
		{
			name:   "full name with digits",
			mutate: func(in *auth.SignUpInput) { in.FullName = "John Do3" },
			want:   auth.SignUpFullNameNotCorrect,
		},
		{
			name:   "full name above maximum length",
			mutate: func(in *auth.SignUpInput) { in.FullName = "A" + strings.Repeat("a", 55) },
			want:   auth.SignUpFullNameNotCorrect,
		},
		{
			name:   "email above maximum length",
			mutate: func(in *auth.SignUpInput) { in.Email = strings.Repeat("a", 321) },
			want:   auth.SignUpEmailNotCorrect,
		},
		{
			name: "password below minimum length",
			mutate: func(in *auth.SignUpInput) {
				in.Password1 = "short1!"
				in.Password2 = "short1!"
			},
			want: auth.SignUpPasswordNotCorrect,
		},
		{
			name: "password with whitespace",
			mutate: func(in *auth.SignUpInput) {
				in.Password1 = "pass word123"
				in.Password2 = "pass word123"
			},
			want: auth.SignUpPasswordNotCorrect,
		},
		{
			name:   "passwords differ",
			mutate: func(in *auth.SignUpInput) { in.Password2 = "password2!" },
			want:   auth.SignUpPasswordsDifferent,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validSignUpInput()
			tt.mutate(&in)
			assert.Equal(t, tt.want, validate(in))
		})
	}
}

func TestSignUpValidatorFirstViolationWins(t *testing.T) {
	validate := auth.NewSignUpValidator(auth.DefaultValidationRules())

	t.Run("null check outranks shape checks", func(t *testing.T) {
		in := validSignUpInput()
		in.Login = "ab"
		in.Email = ""

		assert.Equal(t, auth.SignUpFieldIsNull, validate(in))
	})

	t.Run("login shape outranks password shape", func(t *testing.T) {
		in := validSignUpInput()
		in.Login = "ab"
		in.Password1 = "short"
		in.Password2 = "short"

		assert.Equal(t, auth.SignUpLoginNotCorrect, validate(in))
	})
}

func TestSignUpValidatorAndShortCircuits(t *testing.T) {
	calls := 0

	fail := auth.SignUpValidator(func(auth.SignUpInput) auth.SignUpResult {
		return auth.SignUpLoginNotCorrect
	})
	counting := auth.SignUpValidator(func(auth.SignUpInput) auth.SignUpResult {
		calls++
		return auth.SignUpSuccess
	})

	result := fail.And(counting)(auth.SignUpInput{})
	assert.Equal(t, auth.SignUpLoginNotCorrect, result)
	assert.Zero(t, calls)

	result = counting.And(counting)(auth.SignUpInput{})
	assert.Equal(t, auth.SignUpSuccess, result)
	assert.Equal(t, 2, calls)
}
