package password

import (
	"errors"
	"regexp"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrHashingFailed    = errors.New("password hashing failed")
	ErrComparisonFailed = errors.New("password comparison failed")
	ErrInvalidPassword  = errors.New("invalid password")
	ErrWeakPassword     = errors.New("password does not meet policy")
)

const DefaultCost = bcrypt.DefaultCost

// MinLength and allowedChars follow the sign-up policy: at least 12
// characters from [A-Za-z0-9$%^*\-_].
const MinLength = 12

var allowedChars = regexp.MustCompile(`^[A-Za-z0-9$%^*\-_]+$`)

func ValidatePolicy(password string) error {
	if len(password) < MinLength || !allowedChars.MatchString(password) {
		return ErrWeakPassword
	}
	return nil
}

func HashPassword(password string) (string, error) {
	if password == "" {
		return "", ErrInvalidPassword
	}

	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(password), DefaultCost)
	if err != nil {
		return "", ErrHashingFailed
	}

	return string(hashedBytes), nil
}

func ComparePassword(hashedPassword, password string) error {
	if hashedPassword == "" || password == "" {
		return ErrInvalidPassword
	}

	err := bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
	if err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return ErrComparisonFailed
		}
		return err
	}

	return nil
}
