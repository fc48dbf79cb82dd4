// Package validator holds the superficial input checks the mobile pages
// apply before a request leaves the gateway. They mirror the UI rules;
// the backend response always overrides them.
package validator

import (
	"regexp"
	"strings"
	"unicode"
)

var (
	emailRegex    = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	nicknameRegex = regexp.MustCompile(`^[가-힣a-zA-Z0-9]{2,10}$`)
	dateRegex     = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	timeRegex     = regexp.MustCompile(`^\d{2}:\d{2}$`)
)

// Sports the backend recognizes.
var sports = map[string]bool{
	"FOOTBALL":     true,
	"TENNIS":       true,
	"TABLE_TENNIS": true,
	"BASKETBALL":   true,
	"BADMINTON":    true,
	"VOLLEYBALL":   true,
}

// IsValidEmail checks if the email format is valid
func IsValidEmail(email string) bool {
	if strings.TrimSpace(email) == "" {
		return false
	}
	return emailRegex.MatchString(email)
}

// IsValidNickname checks the nickname: 2-10 hangul, latin or digit runes
func IsValidNickname(nickname string) bool {
	return nicknameRegex.MatchString(nickname)
}

// IsValidPassword checks if the password meets the signup requirements:
// at least 8 characters mixing a letter, a digit and a special character
func IsValidPassword(password string) bool {
	if len(password) < 8 {
		return false
	}

	var (
		hasLetter  bool
		hasNumber  bool
		hasSpecial bool
	)

	for _, char := range password {
		switch {
		case unicode.IsLetter(char):
			hasLetter = true
		case unicode.IsNumber(char):
			hasNumber = true
		default:
			hasSpecial = true
		}
	}

	return hasLetter && hasNumber && hasSpecial
}

// IsValidAge checks if the age is within the signup bounds
func IsValidAge(age int) bool {
	return age >= 14 && age <= 100
}

// IsValidDate checks if the date string is in YYYY-MM-DD format
func IsValidDate(date string) bool {
	return dateRegex.MatchString(date)
}

// IsValidTime checks if the time string is in HH:MM format
func IsValidTime(time string) bool {
	return timeRegex.MatchString(time)
}

// IsValidSport checks if the sport code is one the backend recognizes
func IsValidSport(sport string) bool {
	return sports[sport]
}

// IsValidUserGender checks a profile gender code
func IsValidUserGender(gender string) bool {
	return gender == "MALE" || gender == "FEMALE"
}

// IsValidPostGender checks a post's gender constraint
func IsValidPostGender(gender string) bool {
	return gender == "all" || gender == "male" || gender == "female"
}

// IsValidParticipants checks the participant cap a post may set
func IsValidParticipants(n int) bool {
	return n >= 1 && n <= 20
}
