package auth

import (
	"fmt"
	"regexp"
	"strings"
)

// SignUpResult is the closed set of outcomes for a registration attempt.
// Exactly one of SignUpSuccess or a specific violation holds; the first
// violated rule in chain order wins.
type SignUpResult string

const (
	SignUpSuccess            SignUpResult = "SUCCESS"
	SignUpFieldIsNull        SignUpResult = "AT_LEAST_ONE_FIELD_IS_NULL"
	SignUpLoginNotCorrect    SignUpResult = "LOGIN_NOT_CORRECT"
	SignUpFullNameNotCorrect SignUpResult = "FULL_NAME_NOT_CORRECT"
	SignUpEmailNotCorrect    SignUpResult = "EMAIL_NOT_CORRECT"
	SignUpPasswordNotCorrect SignUpResult = "PASSWORD_NOT_CORRECT"
	SignUpPasswordsDifferent SignUpResult = "PASSWORDS_DIFFERENT"
)

// IsSuccess reports whether the result is a pass
func (r SignUpResult) IsSuccess() bool {
	return r == SignUpSuccess
}

// SignUpInput carries the fields of a registration attempt
type SignUpInput struct {
	Login     string
	FullName  string
	Email     string
	Password1 string
	Password2 string
}

// SignUpValidator is a pure function from input to a validation result
type SignUpValidator func(SignUpInput) SignUpResult

// And composes two validators with short-circuit semantics: if v fails, its
// result is returned and next never runs.
func (v SignUpValidator) And(next SignUpValidator) SignUpValidator {
	return func(in SignUpInput) SignUpResult {
		if r := v(in); !r.IsSuccess() {
			return r
		}
		return next(in)
	}
}

// ValidationRules holds the adjustable parameters of the registration chain
type ValidationRules struct {
	LoginMin    int
	LoginMax    int
	FullNameMax int
	EmailMax    int
	PasswordMin int
}

// DefaultValidationRules mirrors the documented registration constraints
func DefaultValidationRules() ValidationRules {
	return ValidationRules{
		LoginMin:    5,
		LoginMax:    30,
		FullNameMax: 50,
		EmailMax:    320,
		PasswordMin: 8,
	}
}

// credentialClass is the character class shared by login and password rules
const credentialClass = `[a-zA-Z0-9-+!@#$%^&*()]`

var namePattern = regexp.MustCompile(`^[A-Z][a-z]*$`)

// NewSignUpValidator builds the registration chain for the given rules:
// null-check, login shape, full name shape, email shape, password shape,
// passwords match. Evaluation stops at the first violation.
func NewSignUpValidator(rules ValidationRules) SignUpValidator {
	loginPattern := regexp.MustCompile(
		fmt.Sprintf(`^%s{%d,%d}$`, credentialClass, rules.LoginMin, rules.LoginMax))
	passwordPattern := regexp.MustCompile(
		fmt.Sprintf(`^%s{%d,}$`, credentialClass, rules.PasswordMin))

	nullCheck := SignUpValidator(func(in SignUpInput) SignUpResult {
		if in.Login == "" || in.FullName == "" || in.Email == "" ||
			in.Password1 == "" || in.Password2 == "" {
			return SignUpFieldIsNull
		}
		return SignUpSuccess
	})

	loginCheck := SignUpValidator(func(in SignUpInput) SignUpResult {
		if !loginPattern.MatchString(in.Login) {
			return SignUpLoginNotCorrect
		}
		return SignUpSuccess
	})

	fullNameCheck := SignUpValidator(func(in SignUpInput) SignUpResult {
		if len(in.FullName) > rules.FullNameMax {
			return SignUpFullNameNotCorrect
		}
		for _, name := range strings.Split(in.FullName, " ") {
			if !namePattern.MatchString(name) {
				return SignUpFullNameNotCorrect
			}
		}
		return SignUpSuccess
	})

	emailCheck := SignUpValidator(func(in SignUpInput) SignUpResult {
		if len(in.Email) > rules.EmailMax {
			return SignUpEmailNotCorrect
		}
		return SignUpSuccess
	})

	passwordCheck := SignUpValidator(func(in SignUpInput) SignUpResult {
		if !passwordPattern.MatchString(in.Password1) {
			return SignUpPasswordNotCorrect
		}
		return SignUpSuccess
	})

	passwordsMatch := SignUpValidator(func(in SignUpInput) SignUpResult {
		if in.Password1 != in.Password2 {
			return SignUpPasswordsDifferent
		}
		return SignUpSuccess
	})

	return nullCheck.
		And(loginCheck).
		And(fullNameCheck).
		And(emailCheck).
		And(passwordCheck).
		And(passwordsMatch)
}
