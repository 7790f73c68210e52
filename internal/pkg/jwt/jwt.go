package jwt

import (
	"errors"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"

	"staydrive/internal/domain"
)

var (
	ErrInvalidToken  = errors.New("invalid token")
	ErrInvalidClaims = errors.New("invalid claims")
)

type Service struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// Claims carries the identity the booking pipeline needs. The subject is the
// identity provider's user id.
type Claims struct {
	FirstName      string   `json:"first_name,omitempty"`
	LastName       string   `json:"last_name,omitempty"`
	EmailAddresses []string `json:"email_addresses,omitempty"`
	PhoneNumbers   []string `json:"phone_numbers,omitempty"`
	Role           string   `json:"role,omitempty"`
	jwtlib.RegisteredClaims
}

func New(secret string, ttl time.Duration) *Service {
	return &Service{
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
	}
}

func (s *Service) GenerateToken(id *domain.Identity) (string, error) {
	if id == nil || id.ID == "" {
		return "", ErrInvalidClaims
	}
	now := s.now()
	claims := Claims{
		FirstName:      id.FirstName,
		LastName:       id.LastName,
		EmailAddresses: id.EmailAddresses,
		PhoneNumbers:   id.PhoneNumbers,
		Role:           id.Role,
		RegisteredClaims: jwtlib.RegisteredClaims{
			Subject:   id.ID,
			ExpiresAt: jwtlib.NewNumericDate(now.Add(s.ttl)),
			IssuedAt:  jwtlib.NewNumericDate(now),
		},
	}

	token := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

func (s *Service) ValidateToken(tokenStr string) (*Claims, error) {
	token, err := jwtlib.ParseWithClaims(tokenStr, &Claims{}, func(t *jwtlib.Token) (any, error) {
		return s.secret, nil
	}, jwtlib.WithValidMethods([]string{jwtlib.SigningMethodHS256.Alg()}), jwtlib.WithTimeFunc(s.now))
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || claims.Subject == "" {
		return nil, ErrInvalidClaims
	}

	return claims, nil
}

// Identity converts verified claims into the domain identity.
func (c *Claims) Identity() *domain.Identity {
	return &domain.Identity{
		ID:             c.Subject,
		FirstName:      c.FirstName,
		LastName:       c.LastName,
		EmailAddresses: c.EmailAddresses,
		PhoneNumbers:   c.PhoneNumbers,
		Role:           c.Role,
	}
}
