package auth

import (
	"errors"

	"github.com/minjaekim/sportsmate-web/internal/pkg/validator"
)

// ValidateSignupRequest mirrors the signup page's superficial checks.
// The backend re-validates everything; its response always wins.
func ValidateSignupRequest(r *SignupRequest) error {
	if !validator.IsValidEmail(r.Email) {
		return errors.New("invalid email format")
	}
	if !validator.IsValidPassword(r.Password) {
		return errors.New("password must be at least 8 characters and mix letters, digits and special characters")
	}
	if r.Password != r.ConfirmPassword {
		return errors.New("passwords do not match")
	}
	if !validator.IsValidNickname(r.Nickname) {
		return errors.New("nickname must be 2-10 hangul, latin or digit characters")
	}
	if !validator.IsValidAge(r.Age) {
		return errors.New("age must be between 14 and 100")
	}
	if !validator.IsValidUserGender(r.Gender) {
		return errors.New("gender must be MALE or FEMALE")
	}
	if !validator.IsValidSport(r.Sport) {
		return errors.New("unknown sport")
	}
	return nil
}
