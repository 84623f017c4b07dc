package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"

	authModel "gerejaku_backend/internals/features/users/auth/model"
)

// Session lifetime. A token older than this is treated as unauthenticated;
// there is no refresh flow, the admin simply logs in again.
const SessionTTL = 24 * time.Hour

type SessionClaims struct {
	AccountID uuid.UUID
	Email     string
	Role      string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// IssueSessionToken signs the {email, role, issuedAt} session marker as an
// HS256 JWT expiring SessionTTL after issuedAt.
func IssueSessionToken(secret string, account *authModel.AdminAccountModel, issuedAt time.Time) (string, error) {
	if secret == "" {
		return "", errors.New("missing JWT secret")
	}
	claims := jwt.MapClaims{
		"sub":   account.AdminAccountID.String(),
		"email": account.AdminAccountEmail,
		"role":  account.AdminAccountRole,
		"iat":   issuedAt.Unix(),
		"exp":   issuedAt.Add(SessionTTL).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

// ParseSessionToken verifies signature and expiry and returns the claims.
func ParseSessionToken(secret, tokenString string) (*SessionClaims, error) {
	tok, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(secret), nil
	})
	if err != nil || !tok.Valid {
		return nil, errors.New("invalid or expired token")
	}

	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("invalid claims")
	}

	sub, _ := claims["sub"].(string)
	id, err := uuid.Parse(sub)
	if err != nil {
		return nil, errors.New("invalid subject")
	}
	email, _ := claims["email"].(string)
	role, _ := claims["role"].(string)
	iat, _ := claims["iat"].(float64)
	exp, _ := claims["exp"].(float64)

	return &SessionClaims{
		AccountID: id,
		Email:     email,
		Role:      role,
		IssuedAt:  time.Unix(int64(iat), 0),
		ExpiresAt: time.Unix(int64(exp), 0),
	}, nil
}
