package auth

import (
	"fmt"
	"time"

	"starmap-server/internal/shared/config"

	"github.com/golang-jwt/jwt/v5"
)

// Claims identify a commander. There are no accounts or roles: a
// commander name is claimed at login and scopes save access.
type Claims struct {
	Commander string `json:"commander"`
	jwt.RegisteredClaims
}

// GenerateJWT issues a signed token for the commander.
func GenerateJWT(commander string) (string, error) {
	cfg := config.GlobalConfig.Auth

	claims := Claims{
		Commander: commander,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(cfg.TokenExpiration)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Subject:   commander,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(cfg.JWTSecret))
}

// ValidateJWT parses and verifies a token, returning its claims.
func ValidateJWT(tokenString string) (*Claims, error) {
	cfg := config.GlobalConfig.Auth

	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(cfg.JWTSecret), nil
	})

	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}

	return nil, fmt.Errorf("invalid token")
}
