package token

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/jhoicas/directorio-admin/internal/domain/entity"
)

// Claims incluye los claims estándar JWT más el principal de la sesión.
// El rol viaja en el token para que los guards decidan sin estado extra.
type Claims struct {
	jwt.RegisteredClaims
	Username    string `json:"username"`
	Email       string `json:"email"`
	Role        string `json:"role"` // "admin" | "user"
	IsStaff     bool   `json:"is_staff"`
	IsSuperuser bool   `json:"is_superuser"`
}

// Generate genera el token de sesión del gateway firmado con HS256.
func Generate(secret string, p entity.Principal, issuer string, expMinutes int) (string, error) {
	if secret == "" {
		return "", fmt.Errorf("token: secret vacío")
	}
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   fmt.Sprintf("%d", p.ID),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(expMinutes) * time.Minute)),
		},
		Username:    p.Username,
		Email:       p.Email,
		Role:        p.Role,
		IsStaff:     p.IsStaff,
		IsSuperuser: p.IsSuperuser,
	}
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return tok.SignedString([]byte(secret))
}

// Parse valida el token y reconstruye el principal.
// Retorna error si el token es inválido, expirado o tiene firma incorrecta.
func Parse(secret, tokenString string) (*entity.Principal, error) {
	if secret == "" {
		return nil, fmt.Errorf("token: secret vacío")
	}
	tok, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de firma inesperado: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := tok.Claims.(*Claims)
	if !ok || !tok.Valid {
		return nil, fmt.Errorf("claims inválidos")
	}
	var id int
	if _, err := fmt.Sscanf(claims.Subject, "%d", &id); err != nil {
		return nil, fmt.Errorf("subject inválido: %w", err)
	}
	return &entity.Principal{
		ID:          id,
		Username:    claims.Username,
		Email:       claims.Email,
		Role:        claims.Role,
		IsStaff:     claims.IsStaff,
		IsSuperuser: claims.IsSuperuser,
	}, nil
}
