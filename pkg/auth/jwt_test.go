package auth

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func newTestJWTService(t *testing.T) *JWTService {
	t.Helper()
	svc, err := NewJWTService(JWTConfig{
		Secret:     "test-secret-key-for-unit-tests",
		Issuer:     "coopcredit-test",
		Expiration: 15 * time.Minute,
	})
	if err != nil {
		t.Fatalf("NewJWTService() error = %v", err)
	}
	return svc
}

func TestGenerateAndValidateToken(t *testing.T) {
	svc := newTestJWTService(t)
	userID := uuid.New()
	roles := []string{RoleAnalyst, RoleAdmin}

	tokenString, err := svc.GenerateToken(userID, "1020304050", roles)
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}
	if tokenString == "" {
		t.Fatal("GenerateToken() returned empty token")
	}

	claims, err := svc.ValidateToken(tokenString)
	if err != nil {
		t.Fatalf("ValidateToken() error = %v", err)
	}

	if claims.UserID != userID {
		t.Errorf("UserID = %v, want %v", claims.UserID, userID)
	}
	if claims.DocumentNumber != "1020304050" {
		t.Errorf("DocumentNumber = %q, want %q", claims.DocumentNumber, "1020304050")
	}
	if len(claims.Roles) != 2 {
		t.Fatalf("Roles length = %d, want 2", len(claims.Roles))
	}
	if claims.Roles[0] != RoleAnalyst || claims.Roles[1] != RoleAdmin {
		t.Errorf("Roles = %v, want [%s, %s]", claims.Roles, RoleAnalyst, RoleAdmin)
	}
	if claims.Issuer != "coopcredit-test" {
		t.Errorf("Issuer = %q, want %q", claims.Issuer, "coopcredit-test")
	}
	if claims.Subject != userID.String() {
		t.Errorf("Subject = %q, want %q", claims.Subject, userID.String())
	}
}

func TestValidateToken_Expired(t *testing.T) {
	svc, err := NewJWTService(JWTConfig{
		Secret:     "test-secret-key-for-unit-tests",
		Issuer:     "coopcredit-test",
		Expiration: -1 * time.Minute, // already expired
	})
	if err != nil {
		t.Fatalf("NewJWTService() error = %v", err)
	}

	tokenString, err := svc.GenerateToken(uuid.New(), "", []string{RoleAffiliate})
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}

	if _, err := svc.ValidateToken(tokenString); err == nil {
		t.Error("ValidateToken() expected error for expired token, got nil")
	}
}

func TestValidateToken_WrongSecret(t *testing.T) {
	svc := newTestJWTService(t)
	tokenString, err := svc.GenerateToken(uuid.New(), "", []string{RoleAffiliate})
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}

	other, err := NewJWTService(JWTConfig{
		Secret:     "a-completely-different-secret",
		Issuer:     "coopcredit-test",
		Expiration: 15 * time.Minute,
	})
	if err != nil {
		t.Fatalf("NewJWTService() error = %v", err)
	}

	if _, err := other.ValidateToken(tokenString); err == nil {
		t.Error("ValidateToken() expected error for wrong secret, got nil")
	}
}

func TestNewJWTService_NoConfig(t *testing.T) {
	if _, err := NewJWTService(JWTConfig{}); err == nil {
		t.Error("NewJWTService() expected error with no key material, got nil")
	}
}

func TestHasRole(t *testing.T) {
	claims := Claims{Roles: []string{RoleAffiliate}}

	if !claims.HasRole(RoleAffiliate) {
		t.Error("expected HasRole(AFFILIATE) to be true")
	}
	if claims.HasRole(RoleAdmin) {
		t.Error("expected HasRole(ADMIN) to be false")
	}
}

func TestContextWithClaims(t *testing.T) {
	claims := &Claims{DocumentNumber: "123", Roles: []string{RoleAffiliate}}
	ctx := ContextWithClaims(t.Context(), claims)

	got, ok := ClaimsFromContext(ctx)
	if !ok {
		t.Fatal("expected claims in context")
	}
	if got.DocumentNumber != "123" {
		t.Errorf("DocumentNumber = %q, want %q", got.DocumentNumber, "123")
	}
}
