package jwt

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Identity are the claims the identity provider puts in a session token.
// Subject (sub) is the stable user key the sales_reps table links to.
type Identity struct {
	Subject   string
	Email     string
	FirstName string
	LastName  string
}

// DisplayName builds a human name from the claims, falling back to the email
// when the provider did not supply first/last name.
func (id Identity) DisplayName() string {
	if id.FirstName != "" && id.LastName != "" {
		return id.FirstName + " " + id.LastName
	}
	if id.Email != "" {
		return id.Email
	}
	return "Admin User"
}

// Claims mirrors the identity provider's session token payload.
type Claims struct {
	jwt.RegisteredClaims
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// Parse validates a session token and returns the caller's identity.
// Returns an error when the token is invalid, expired or signed incorrectly.
// issuer is optional; when non-empty the iss claim must match.
func Parse(secret, issuer, tokenString string) (*Identity, error) {
	if secret == "" {
		return nil, fmt.Errorf("jwt: empty secret")
	}
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid claims")
	}
	if claims.Subject == "" {
		return nil, fmt.Errorf("token missing sub claim")
	}
	if issuer != "" && claims.Issuer != issuer {
		return nil, fmt.Errorf("unexpected issuer %q", claims.Issuer)
	}
	return &Identity{
		Subject:   claims.Subject,
		Email:     claims.Email,
		FirstName: claims.FirstName,
		LastName:  claims.LastName,
	}, nil
}

// Generate mints a session token the way the identity provider would.
// Used by tests and local tooling only; production tokens come from the provider.
func Generate(secret, issuer, subject, email, firstName, lastName string, expMinutes int) (string, error) {
	if secret == "" {
		return "", fmt.Errorf("jwt: empty secret")
	}
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(expMinutes) * time.Minute)),
		},
		Email:     email,
		FirstName: firstName,
		LastName:  lastName,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}
