package auth

import "testing"

func TestTokenRoundTrip(t *testing.T) {
	token, err := GenerateToken("user-123", "female")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	claims, err := ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken: %v", err)
	}

	if claims.UserID != "user-123" {
		t.Errorf("user id = %s, want user-123", claims.UserID)
	}
	if claims.Gender != "female" {
		t.Errorf("gender = %s, want female", claims.Gender)
	}
	if claims.Issuer != "stylemind" {
		t.Errorf("issuer = %s, want stylemind", claims.Issuer)
	}
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	if _, err := ValidateToken("not-a-token"); err == nil {
		t.Error("expected error for malformed token")
	}
}
