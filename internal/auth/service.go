// Package auth validates bearer tokens and resolves them into an explicit
// Role capability. Handlers and services depend only on the resolved
// capability set on the request context, never on the raw credential.
package auth

import (
	"fmt"
	"time"

	apperrors "realty-crm-backend/internal/errors"

	"github.com/golang-jwt/jwt/v5"
)

// Role is the resolved capability of an authenticated user.
type Role string

const (
	RoleAdmin      Role = "admin"
	RoleOperations Role = "operations"
	RoleSales      Role = "sales"
	RoleViewer     Role = "viewer"
)

// IsValid checks if the Role is valid
func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleOperations, RoleSales, RoleViewer:
		return true
	}
	return false
}

// CanManageRegistrations reports whether the role may advance registration
// stages and shift bookings.
func (r Role) CanManageRegistrations() bool {
	return r == RoleAdmin || r == RoleOperations
}

// CanManageFinancials reports whether the role may create demand notes and
// payment receipts.
func (r Role) CanManageFinancials() bool {
	return r == RoleAdmin || r == RoleOperations
}

// CanManageLeads reports whether the role may create and update leads.
func (r Role) CanManageLeads() bool {
	return r == RoleAdmin || r == RoleSales
}

// Claims is the JWT payload carried by access tokens.
type Claims struct {
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  Role   `json:"role"`
	jwt.RegisteredClaims
}

// Service validates and issues access tokens.
type Service struct {
	secret   []byte
	tokenTTL time.Duration
}

// NewService creates a new auth service
func NewService(secret string, tokenTTL time.Duration) *Service {
	if tokenTTL == 0 {
		tokenTTL = 12 * time.Hour
	}
	return &Service{secret: []byte(secret), tokenTTL: tokenTTL}
}

// ValidateToken parses and validates a bearer token and returns its claims.
// Unknown roles degrade to viewer so a forged role claim never grants
// write capability.
func (s *Service) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, apperrors.ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, apperrors.ErrInvalidToken
	}

	if !claims.Role.IsValid() {
		claims.Role = RoleViewer
	}
	return claims, nil
}

// IssueToken creates a signed access token for the given identity.
func (s *Service) IssueToken(email, name string, role Role) (string, error) {
	now := time.Now()
	claims := &Claims{
		Email: email,
		Name:  name,
		Role:  role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   email,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}
