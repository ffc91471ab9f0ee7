package auth

import (
	"fmt"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims carries the device session identity through the gateway
type Claims struct {
	UserID string `json:"user_id"`
	Gender string `json:"gender,omitempty"`
	jwt.RegisteredClaims
}

const defaultTokenTTL = 30 * 24 * time.Hour

func signingKey() []byte {
	if key := os.Getenv("JWT_SECRET"); key != "" {
		return []byte(key)
	}
	return []byte("stylemind-dev-secret")
}

// GenerateToken issues a device session token for a user id.
// StyleMind users are anonymous device profiles, so there is no credential
// check here; the token only pins requests to a stable user id.
func GenerateToken(userID, gender string) (string, error) {
	claims := Claims{
		UserID: userID,
		Gender: gender,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "stylemind",
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(defaultTokenTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(signingKey())
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// ValidateToken parses and validates a device session token
func ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return signingKey(), nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}
	return claims, nil
}
