package session

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

var ErrInvalidPasscode = errors.New("invalid staff passcode")

// CheckStaffPasscode compares passcode with the configured bcrypt hash. An
// empty hash disables the check.
func CheckStaffPasscode(hash, passcode string) error {
	if hash == "" {
		return nil
	}
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(passcode)); err != nil {
		return ErrInvalidPasscode
	}
	return nil
}

func HashPasscode(passcode string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(passcode), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}
