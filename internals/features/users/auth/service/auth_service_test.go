package service

import (
	"testing"
	"time"

	"github.com/google/uuid"

	authModel "gerejaku_backend/internals/features/users/auth/model"
)

func testAccount(t *testing.T, email, role, password string) *authModel.AdminAccountModel {
	t.Helper()
	hash, err := HashPassword(password)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	return &authModel.AdminAccountModel{
		AdminAccountID:           uuid.New(),
		AdminAccountEmail:        email,
		AdminAccountPasswordHash: hash,
		AdminAccountRole:         role,
	}
}

func TestAuthenticate(t *testing.T) {
	acc := testAccount(t, "announcements@church.example", "announcement_admin", "s3cretpass")

	tests := []struct {
		name     string
		email    string
		password string
		role     string
		wantErr  bool
	}{
		{"all three match", "announcements@church.example", "s3cretpass", "announcement_admin", false},
		{"email is case-insensitive", "Announcements@Church.example", "s3cretpass", "announcement_admin", false},
		{"wrong password", "announcements@church.example", "wrong", "announcement_admin", true},
		{"wrong email", "other@church.example", "s3cretpass", "announcement_admin", true},
		// correct credential pair but a higher requested role must fail
		{"role escalation denied", "announcements@church.example", "s3cretpass", "full_admin", true},
		{"unknown role", "announcements@church.example", "s3cretpass", "guest", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Authenticate(acc, tt.email, tt.password, tt.role)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Authenticate() err = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && err != ErrInvalidCredentials {
				t.Fatalf("expected the generic credential error, got %v", err)
			}
		})
	}
}

func TestSessionTokenRoundTrip(t *testing.T) {
	acc := testAccount(t, "treasury@church.example", "full_admin", "s3cretpass")

	tok, err := IssueSessionToken("test-secret", acc, time.Now())
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	claims, err := ParseSessionToken("test-secret", tok)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if claims.Email != acc.AdminAccountEmail || claims.Role != acc.AdminAccountRole {
		t.Fatalf("claims mismatch: %+v", claims)
	}
	if claims.AccountID != acc.AdminAccountID {
		t.Fatalf("subject mismatch: %v", claims.AccountID)
	}
	got := claims.ExpiresAt.Sub(claims.IssuedAt)
	if got != SessionTTL {
		t.Fatalf("session ttl = %v, want %v", got, SessionTTL)
	}
}

func TestSessionTokenExpiresAfter24h(t *testing.T) {
	acc := testAccount(t, "treasury@church.example", "full_admin", "s3cretpass")

	// issued 25h ago -> exp is one hour in the past
	tok, err := IssueSessionToken("test-secret", acc, time.Now().Add(-25*time.Hour))
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if _, err := ParseSessionToken("test-secret", tok); err == nil {
		t.Fatal("expected expired token to be rejected")
	}
}

func TestSessionTokenRejectsWrongSecret(t *testing.T) {
	acc := testAccount(t, "treasury@church.example", "full_admin", "s3cretpass")

	tok, err := IssueSessionToken("test-secret", acc, time.Now())
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if _, err := ParseSessionToken("other-secret", tok); err == nil {
		t.Fatal("expected token signed with a different secret to be rejected")
	}
}
