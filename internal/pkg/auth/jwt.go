// Package auth provides JWT issuance, parsing, and the HTTP middleware that
// authenticates API requests. Tokens carry the scout's id and admin flag.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// secretKey is the key used to sign the JWT. It should be kept secure.
var secretKey = []byte("troopcookiesecret")

// TokenExpiry is how long an issued token stays valid.
const TokenExpiry = 12 * time.Hour

// Claims are the custom token claims: scout id and admin flag on top of the
// registered claims.
type Claims struct {
	UserID  int32
	IsAdmin bool
	jwt.RegisteredClaims
}

// GenerateToken issues a signed token for the given scout.
func GenerateToken(userID int32, isAdmin bool) (string, error) {
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(TokenExpiry)),
		},
		UserID:  userID,
		IsAdmin: isAdmin,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secretKey)
}

// ParseToken validates a token string and returns its claims.
func ParseToken(tokenStr string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		return secretKey, nil
	})
	if err != nil {
		return nil, err
	}
	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}
	return nil, jwt.ErrSignatureInvalid
}
