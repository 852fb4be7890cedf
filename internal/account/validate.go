package account

import (
	"errors"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
)

var ErrValidation = errors.New("invalid input")

var validate = newValidator()

func newValidator() func(any) error {
	v := validator.New(validator.WithRequiredStructEnabled())
	return func(in any) error {
		err := v.Struct(in)
		if err == nil {
			return nil
		}
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return err
		}
		out := &ValidationError{Fields: map[string]string{}}
		for _, fe := range verrs {
			if _, seen := out.Fields[fe.Field()]; seen {
				continue
			}
			out.Fields[fe.Field()] = message(fe)
		}
		return out
	}
}

// ValidationError maps each rejected field to a message for the form.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	msgs := make([]string, 0, len(keys))
	for _, k := range keys {
		msgs = append(msgs, e.Fields[k])
	}
	return strings.Join(msgs, "; ")
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

var messages = map[string]string{
	"LoginInput.Email.required":                         "Email is required",
	"LoginInput.Email.email":                            "Invalid email",
	"LoginInput.Password.required":                      "Password must be at least 6 characters",
	"LoginInput.Password.min":                           "Password must be at least 6 characters",
	"SignupInput.FirstName.required":                    "First name is required",
	"SignupInput.LastName.required":                     "Last name is required",
	"SignupInput.Email.required":                        "Email is required",
	"SignupInput.Email.email":                           "Invalid email",
	"SignupInput.Password.required":                     "Password must be at least 6 characters",
	"SignupInput.Password.min":                          "Password must be at least 6 characters",
	"SignupInput.ConfirmPassword.required":              "Confirm your password",
	"SignupInput.ConfirmPassword.eqfield":               "Passwords must match",
	"ChangePasswordInput.CurrentPassword.required":      "Current password is required",
	"ChangePasswordInput.Password.required":             "New password must be at least 6 characters",
	"ChangePasswordInput.Password.min":                  "New password must be at least 6 characters",
	"ChangePasswordInput.Password.nefield":              "New password must be different from current password",
	"ChangePasswordInput.PasswordConfirmation.required": "Password confirmation is required",
	"ChangePasswordInput.PasswordConfirmation.eqfield":  "New passwords don't match",
	"ForgotPasswordInput.Email.required":                "Email is required",
	"ForgotPasswordInput.Email.email":                   "Invalid email",
	"ResetPasswordInput.Code.required":                  "Invalid or missing reset code",
	"ResetPasswordInput.Password.required":              "Password must be at least 6 characters",
	"ResetPasswordInput.Password.min":                   "Password must be at least 6 characters",
	"ResetPasswordInput.PasswordConfirmation.required":  "Password confirmation is required",
	"ResetPasswordInput.PasswordConfirmation.eqfield":   "Passwords don't match",
}

func message(fe validator.FieldError) string {
	if msg, ok := messages[fe.StructNamespace()+"."+fe.Tag()]; ok {
		return msg
	}
	return fe.Field() + " is invalid"
}
