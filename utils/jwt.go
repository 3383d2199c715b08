package utils

import (
	"errors"
	"time"

	"medibook/config"

	"github.com/golang-jwt/jwt"
)

const devSecret = "medibook-dev-secret"

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrMissingRole  = errors.New("token does not carry the expected role")
)

// TokenClaims is the identity carried by an access token.
type TokenClaims struct {
	Subject string
	Role    string
}

func secretKey() ([]byte, error) {
	if s := config.AppConfig.JWTSecret; s != "" {
		return []byte(s), nil
	}
	if config.IsProduction() {
		return nil, errors.New("JWT_SECRET is not configured")
	}
	return []byte(devSecret), nil
}

// GenerateToken creates a signed JWT token for subject (a user, doctor or admin id)
// with the given role. The token expires after ttl.
func GenerateToken(subject, role string, ttl time.Duration) (string, error) {
	key, err := secretKey()
	if err != nil {
		return "", err
	}
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":  subject,
		"role": role,
		"iat":  now.Unix(),
		"exp":  now.Add(ttl).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(key)
}

// ValidateToken parses and validates a token string and returns the token if valid.
func ValidateToken(tokenString string) (*jwt.Token, error) {
	key, err := secretKey()
	if err != nil {
		return nil, err
	}
	return jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		// Ensure that the token's signing method is HMAC.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return key, nil
	})
}

// ParseToken validates tokenString and extracts its subject and role.
func ParseToken(tokenString string) (*TokenClaims, error) {
	token, err := ValidateToken(tokenString)
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}
	sub, _ := claims["sub"].(string)
	role, _ := claims["role"].(string)
	if sub == "" {
		return nil, ErrInvalidToken
	}
	return &TokenClaims{Subject: sub, Role: role}, nil
}

// ExtractIDForRole validates tokenString and returns its subject when the token was
// issued for role.
func ExtractIDForRole(tokenString, role string) (string, error) {
	claims, err := ParseToken(tokenString)
	if err != nil {
		return "", err
	}
	if claims.Role != role {
		return "", ErrMissingRole
	}
	return claims.Subject, nil
}
