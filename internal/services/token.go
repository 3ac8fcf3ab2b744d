package services

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken covers malformed, empty, and unverifiable tokens alike.
var ErrInvalidToken = errors.New("invalid token")

// Claims is the identity carried by an issued token.
type Claims struct {
	ID    int
	Email string
}

// TokenService signs and verifies the HS256 bearer tokens used by the API.
// Issued tokens carry no expiry; Verify still rejects an expired exp claim if
// a token happens to carry one.
type TokenService struct {
	secret []byte
}

func NewTokenService(secret string) *TokenService {
	return &TokenService{secret: []byte(secret)}
}

func (s *TokenService) Issue(id int, email string) (string, error) {
	claims := jwt.MapClaims{
		"id":    id,
		"email": email,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

func (s *TokenService) Verify(tokenString string) (Claims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.secret, nil
	})
	if err != nil {
		return Claims{}, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return Claims{}, ErrInvalidToken
	}

	// Numeric JSON claims decode as float64.
	id, ok := claims["id"].(float64)
	if !ok {
		return Claims{}, ErrInvalidToken
	}
	email, _ := claims["email"].(string)

	return Claims{ID: int(id), Email: email}, nil
}
