package services

import (
	"testing"
	"time"
)

func newTestJWT() *JWTService {
	return &JWTService{
		AccessTokenDuration: 24 * time.Hour,
		jwtSecretKey:        "test-secret",
	}
}

func TestJWTRoundTrip(t *testing.T) {
	svc := newTestJWT()

	token, err := svc.ToJWT("admin", "admin", "admin")
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}

	claims, err := svc.VerifyJWTToken(token)
	if err != nil {
		t.Fatalf("failed to verify token: %v", err)
	}
	if claims.UserID != "admin" || claims.Username != "admin" || claims.Role != "admin" {
		t.Errorf("unexpected claims: %+v", claims)
	}
	if claims.Issuer != "TecnoHogar" {
		t.Errorf("unexpected issuer: %q", claims.Issuer)
	}
}

func TestJWTRejectsWrongSecret(t *testing.T) {
	token, err := newTestJWT().ToJWT("admin", "admin", "admin")
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}

	other := &JWTService{AccessTokenDuration: 24 * time.Hour, jwtSecretKey: "other-secret"}
	if _, err := other.VerifyJWTToken(token); err == nil {
		t.Fatal("expected verification failure with a different secret")
	}
}

func TestJWTRejectsExpiredToken(t *testing.T) {
	svc := newTestJWT()
	svc.AccessTokenDuration = -time.Hour

	token, err := svc.ToJWT("admin", "admin", "admin")
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}

	if _, err := svc.VerifyJWTToken(token); err == nil {
		t.Fatal("expected verification failure for an expired token")
	}
}

func TestExtractTokenFromHeader(t *testing.T) {
	svc := newTestJWT()

	if _, err := svc.ExtractTokenFromHeader(""); err == nil {
		t.Error("expected error for missing header")
	}
	if _, err := svc.ExtractTokenFromHeader("Basic abc"); err == nil {
		t.Error("expected error for non-bearer header")
	}

	token, err := svc.ExtractTokenFromHeader("Bearer abc.def.ghi")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if token != "abc.def.ghi" {
		t.Errorf("unexpected token: %q", token)
	}
}
