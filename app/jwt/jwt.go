package jwtutil

import (
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
)

// DownloadClaims authorize one user to fetch one script's raw code for a
// short window.
type DownloadClaims struct {
	ScriptID uint `json:"sid"`
	UserID   uint `json:"uid"`
	jwt.RegisteredClaims
}

type Signer struct {
	Secret []byte
	TTL    time.Duration
}

func (s *Signer) Sign(scriptID, userID uint) (string, error) {
	now := time.Now()
	claims := DownloadClaims{
		ScriptID: scriptID,
		UserID:   userID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.TTL)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.Secret)
}

func (s *Signer) Parse(tokenStr string) (*DownloadClaims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &DownloadClaims{}, func(t *jwt.Token) (interface{}, error) { return s.Secret, nil })
	if err != nil {
		return nil, err
	}
	if claims, ok := token.Claims.(*DownloadClaims); ok && token.Valid {
		return claims, nil
	}
	return nil, jwt.ErrTokenInvalidClaims
}
