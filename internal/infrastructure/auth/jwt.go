package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/sitedesk/sitedesk/internal/shared/biztime"
)

// AdminRole is the role of an administrator issuing requests.
type AdminRole string

const (
	RoleIndividual      AdminRole = "INDIVIDUAL"
	RoleCompanyManager  AdminRole = "COMPANY_MANAGER"
	RoleCompanyEmployee AdminRole = "COMPANY_EMPLOYEE"
	RoleSuperAdmin      AdminRole = "SUPER_ADMIN"
)

func (r AdminRole) IsValid() bool {
	switch r {
	case RoleIndividual, RoleCompanyManager, RoleCompanyEmployee, RoleSuperAdmin:
		return true
	}
	return false
}

// Claims carried by admin bearer tokens.
type Claims struct {
	AdminID uint      `json:"admin_id"`
	Role    AdminRole `json:"role"`
	jwt.RegisteredClaims
}

// JWTService signs and verifies HS256 admin tokens. Tokens are issued by the
// identity service; Generate exists for operators and tests.
type JWTService struct {
	secret []byte
	ttl    time.Duration
}

func NewJWTService(secret string, ttl time.Duration) *JWTService {
	return &JWTService{secret: []byte(secret), ttl: ttl}
}

func (s *JWTService) Generate(adminID uint, role AdminRole) (string, error) {
	if adminID == 0 {
		return "", fmt.Errorf("admin ID is required")
	}
	if !role.IsValid() {
		return "", fmt.Errorf("invalid role %q", role)
	}

	now := biztime.NowUTC()
	claims := &Claims{
		AdminID: adminID,
		Role:    role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

func (s *JWTService) Verify(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}
	if claims.AdminID == 0 || !claims.Role.IsValid() {
		return nil, fmt.Errorf("token carries no admin identity")
	}
	return claims, nil
}
