package service

import (
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"

	authModel "gerejaku_backend/internals/features/users/auth/model"
)

// ErrInvalidCredentials is deliberately generic: the caller must not learn
// which of email, password or role was wrong.
var ErrInvalidCredentials = errors.New("invalid email, password or role")

func HashPassword(plain string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

func CheckPasswordHash(hash, plain string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain))
}

// Authenticate checks the full credential triple against one stored account.
// All three must match; role is compared exactly, never upgraded.
func Authenticate(account *authModel.AdminAccountModel, email, password, role string) error {
	if account == nil {
		return ErrInvalidCredentials
	}
	if !strings.EqualFold(strings.TrimSpace(email), account.AdminAccountEmail) {
		return ErrInvalidCredentials
	}
	if role != account.AdminAccountRole {
		return ErrInvalidCredentials
	}
	if err := CheckPasswordHash(account.AdminAccountPasswordHash, password); err != nil {
		return ErrInvalidCredentials
	}
	return nil
}
