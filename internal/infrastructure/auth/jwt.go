package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"libris/internal/shared/authorization"
)

// Claims is the signed token payload: subject id, display name, role, and
// account status, plus the registered expiry/issue times. Nothing is kept
// server-side; the trust boundary is the signature alone.
type Claims struct {
	UserID uint               `json:"uid"`
	Name   string             `json:"name"`
	Role   authorization.Role `json:"role"`
	Status string             `json:"status"`
	jwt.RegisteredClaims
}

// JWTCodec signs and verifies credential tokens with HS256.
type JWTCodec struct {
	secret     []byte
	expMinutes int
}

func NewJWTCodec(secret string, expMinutes int) *JWTCodec {
	if expMinutes <= 0 {
		expMinutes = 60
	}
	return &JWTCodec{
		secret:     []byte(secret),
		expMinutes: expMinutes,
	}
}

// Generate issues a signed token expiring expMinutes from now.
func (c *JWTCodec) Generate(userID uint, name string, role authorization.Role, status string) (string, error) {
	now := time.Now().UTC()

	claims := &Claims{
		UserID: userID,
		Name:   name,
		Role:   role,
		Status: status,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(c.expMinutes) * time.Minute)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(c.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// Verify parses and validates a token. Any failure (bad signature,
// malformed input, expiry) yields an error; callers treat that the same
// as a missing token.
func (c *JWTCodec) Verify(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return c.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}
	return nil, fmt.Errorf("invalid token")
}

// ExpMinutes returns the configured token lifetime in minutes.
func (c *JWTCodec) ExpMinutes() int {
	return c.expMinutes
}
