package utils

import (
	"fmt"
	"time"

	jwt "github.com/golang-jwt/jwt"
	"github.com/google/uuid"

	"github.com/beNeighb/backend/config"
)

type ProfileClaims struct {
	ProfileID uuid.UUID `json:"profile_id"`
	jwt.StandardClaims
}

func GenerateJWTToken(profileID uuid.UUID, cfg config.Config) (string, error) {
	expiresAt := time.Now().Add(time.Duration(cfg.JWT.ExpiredIn) * time.Second)

	claims := &ProfileClaims{
		ProfileID: profileID,
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: expiresAt.Unix(),
			IssuedAt:  time.Now().Unix(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(cfg.JWT.Secret))
}

func VerifyJWTToken(tokenStr, secret string) (uuid.UUID, error) {
	claims := &ProfileClaims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secret), nil
	})

	if err != nil {
		return uuid.Nil, err
	}
	if !token.Valid {
		return uuid.Nil, fmt.Errorf("invalid token")
	}
	return claims.ProfileID, nil
}
