package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/dangerclosesec/trainhub/internal/model"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const tokenIssuer = "trainhub"

var errTokenClaims = errors.New("invalid token claims")

// TokenManager signs and checks HS256 bearer tokens.
type TokenManager struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenManager(secret string, ttl time.Duration) *TokenManager {
	return &TokenManager{secret: []byte(secret), ttl: ttl}
}

// Claims carry the user id in the subject plus the role every route gate
// checks.
type Claims struct {
	Email string     `json:"email"`
	Role  model.Role `json:"role"`
	jwt.RegisteredClaims
}

func (c *Claims) principal() (*Principal, error) {
	uid, err := uuid.Parse(c.Subject)
	if err != nil {
		return nil, fmt.Errorf("%w: subject: %v", errTokenClaims, err)
	}
	if !c.Role.Valid() {
		return nil, fmt.Errorf("%w: role %q", errTokenClaims, c.Role)
	}
	return &Principal{UserID: uid, Email: c.Email, Role: c.Role}, nil
}

// Generate issues a token for the user that expires after the configured ttl.
func (tm *TokenManager) Generate(user *model.User) (string, error) {
	issued := time.Now()
	return jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{
		Email: user.Email,
		Role:  user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    tokenIssuer,
			Subject:   user.ID.String(),
			IssuedAt:  jwt.NewNumericDate(issued),
			ExpiresAt: jwt.NewNumericDate(issued.Add(tm.ttl)),
		},
	}).SignedString(tm.secret)
}

// Validate verifies signature, issuer and expiry and returns the caller.
func (tm *TokenManager) Validate(raw string) (*Principal, error) {
	claims := &Claims{}
	_, err := jwt.ParseWithClaims(raw, claims, tm.key,
		jwt.WithIssuer(tokenIssuer),
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	)
	if err != nil {
		return nil, fmt.Errorf("invalid token: %w", err)
	}
	return claims.principal()
}

func (tm *TokenManager) key(*jwt.Token) (interface{}, error) {
	return tm.secret, nil
}
