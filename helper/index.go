package helper

import (
	"errors"
	"fmt"
	"time"

	"cinema_statistics/model"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

func GenerateAccessToken(secret []byte, tokenClaim model.TokenClaim, ttl time.Duration) (string, error) {
	token := jwt.New(jwt.SigningMethodHS256)

	claims := token.Claims.(jwt.MapClaims)
	claims["username"] = tokenClaim.Username
	claims["accountId"] = tokenClaim.AccountId
	claims["role"] = tokenClaim.Role
	claims["exp"] = time.Now().Add(ttl).Unix()

	return token.SignedString(secret)
}

func ParseToken(secret []byte, tokenString string) (*jwt.Token, error) {
	return jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return secret, nil
	})
}

// GetInfoAccountFromToken reads the claims stored by middleware.Protected.
func GetInfoAccountFromToken(c *fiber.Ctx) (model.TokenClaim, error) {
	token, ok := c.Locals("user").(*jwt.Token)
	if !ok || token == nil {
		return model.TokenClaim{}, errors.New("no token in context")
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return model.TokenClaim{}, errors.New("invalid claims type")
	}

	var tokenClaim model.TokenClaim
	if id, ok := claims["accountId"].(float64); ok {
		tokenClaim.AccountId = uint(id)
	}
	tokenClaim.Username, _ = claims["username"].(string)
	tokenClaim.Role, _ = claims["role"].(string)
	if tokenClaim.Role == "" {
		return model.TokenClaim{}, errors.New("token has no role")
	}
	return tokenClaim, nil
}
