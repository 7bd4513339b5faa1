package auth

import (
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/dfranca/storefront/internal/domain"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token expired")
)

// Claims are the JWT claims carried by access tokens.
type Claims struct {
	jwt.RegisteredClaims
	Username string   `json:"username"`
	Roles    []string `json:"roles"`
}

// JWTConfig holds the signing configuration for token issuance.
type JWTConfig struct {
	SecretKey string
	Issuer    string
	Audience  string
	TokenTTL  time.Duration
}

// JWTHandler issues and validates HS256-signed access tokens.
type JWTHandler struct {
	config JWTConfig
}

func NewJWTHandler(config JWTConfig) *JWTHandler {
	return &JWTHandler{config: config}
}

// Generate builds a signed token for the user, or the empty string when the
// signing configuration is missing or signing fails. The service layer treats
// an empty token as a rejected login, so no error crosses this boundary.
func (h *JWTHandler) Generate(user domain.UserModel) string {
	if h.config.SecretKey == "" {
		return ""
	}

	now := time.Now().UTC()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    h.config.Issuer,
			Audience:  jwt.ClaimStrings{h.config.Audience},
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(h.config.TokenTTL)),
		},
		Username: user.UserName,
		Roles:    normalizeRoles(user.Roles),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(h.config.SecretKey))
	if err != nil {
		return ""
	}
	return signed
}

// Parse validates a signed token and returns its claims.
func (h *JWTHandler) Parse(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(h.config.SecretKey), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// normalizeRoles maps each entry of the comma-joined role list to the fixed
// vocabulary: only an exact case-insensitive "Admin" yields the Admin role,
// anything else yields User. Spaces are stripped before splitting.
func normalizeRoles(roles string) []string {
	entries := strings.Split(strings.ReplaceAll(roles, " ", ""), ",")
	normalized := make([]string, 0, len(entries))
	for _, role := range entries {
		if strings.EqualFold(role, domain.RoleAdmin) {
			normalized = append(normalized, domain.RoleAdmin)
		} else {
			normalized = append(normalized, domain.RoleUser)
		}
	}
	return normalized
}
