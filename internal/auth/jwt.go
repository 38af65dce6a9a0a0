package auth

import (
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/talentbridge/recruitment-backend/internal/apperr"
	"github.com/talentbridge/recruitment-backend/internal/authz"
	"github.com/talentbridge/recruitment-backend/internal/models"
)

// TokenProvider mints and parses the HS256 bearer tokens that carry the
// caller identity. The workflow core never sees tokens, only the resulting
// authz.Identity.
type TokenProvider struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenProvider(secret string, ttl time.Duration) *TokenProvider {
	return &TokenProvider{secret: []byte(secret), ttl: ttl}
}

type claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

func (p *TokenProvider) Generate(id authz.Identity) (string, time.Time, error) {
	now := time.Now().UTC()
	expiresAt := now.Add(p.ttl)
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		Role: string(id.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatUint(uint64(id.ID), 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	})
	signed, err := token.SignedString(p.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expiresAt, nil
}

func (p *TokenProvider) Parse(tokenString string) (authz.Identity, error) {
	var c claims
	token, err := jwt.ParseWithClaims(tokenString, &c, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return p.secret, nil
	})
	if err != nil || !token.Valid {
		return authz.Identity{}, apperr.Unauthenticated("invalid token")
	}
	id, err := strconv.ParseUint(c.Subject, 10, 64)
	if err != nil || id == 0 {
		return authz.Identity{}, apperr.Unauthenticated("invalid subject")
	}
	role, ok := models.ParseRole(c.Role)
	if !ok {
		return authz.Identity{}, apperr.Unauthenticated("invalid role")
	}
	return authz.Identity{ID: uint(id), Role: role}, nil
}
