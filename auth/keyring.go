// Package auth persists the catalog account password in the system keyring.
package auth

import (
	"errors"

	"github.com/laradl/laradl/constant"
	"github.com/zalando/go-keyring"
)

// ErrNoPassword is returned when no password is stored for the account.
var ErrNoPassword = errors.New("no password stored, run the login command first")

// SetPassword persists the password of the account identified by email.
func SetPassword(email, password string) error {
	return keyring.Set(constant.Laradl, email, password)
}

// GetPassword retrieves the password of the account identified by email.
func GetPassword(email string) (string, error) {
	password, err := keyring.Get(constant.Laradl, email)
	if errors.Is(err, keyring.ErrNotFound) {
		return "", ErrNoPassword
	}
	return password, err
}

// DeletePassword removes the stored password of the account identified by email.
func DeletePassword(email string) error {
	err := keyring.Delete(constant.Laradl, email)
	if errors.Is(err, keyring.ErrNotFound) {
		return nil
	}
	return err
}
