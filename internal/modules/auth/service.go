package auth

import (
	"context"
	"strings"
	"sync"
	"time"

	"golang.org/x/crypto/bcrypt"

	"staydrive/internal/domain"
	"staydrive/internal/pkg/logger"
)

const (
	maxFailedLoginAttempts = 5
	lockoutDuration        = 15 * time.Minute

	adminSubject = "admin"
)

type tokenIssuer interface {
	GenerateToken(id *domain.Identity) (string, error)
}

type Credentials struct {
	Email        string
	PasswordHash string
}

// Service signs in the single operator account configured through the
// environment and hands out admin tokens.
type Service struct {
	creds  Credentials
	tokens tokenIssuer
	log    logger.Logger
	now    func() time.Time

	mu       sync.Mutex
	failures int
	locked   time.Time
}

func NewService(creds Credentials, tokens tokenIssuer, log logger.Logger) *Service {
	if log == nil {
		log = logger.Nop()
	}
	creds.Email = normalizeEmail(creds.Email)
	return &Service{creds: creds, tokens: tokens, log: log, now: time.Now}
}

func (s *Service) Login(ctx context.Context, req LoginRequest) (*LoginResult, error) {
	if s.creds.Email == "" || s.creds.PasswordHash == "" {
		return nil, ErrNotConfigured
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	if s.locked.After(now) {
		return nil, ErrAccountLocked
	}

	emailOK := normalizeEmail(req.Email) == s.creds.Email
	// bcrypt runs for unknown emails too.
	pwErr := bcrypt.CompareHashAndPassword([]byte(s.creds.PasswordHash), []byte(req.Password))
	if !emailOK || pwErr != nil {
		s.failures++
		s.log.Info("admin_login_failed email=%s attempts=%d", normalizeEmail(req.Email), s.failures)
		if s.failures >= maxFailedLoginAttempts {
			s.locked = now.Add(lockoutDuration)
			s.failures = 0
			return nil, ErrAccountLocked
		}
		return nil, ErrInvalidCredentials
	}
	s.failures = 0

	admin := &domain.Identity{
		ID:             adminSubject,
		EmailAddresses: []string{s.creds.Email},
		Role:           domain.RoleAdmin,
	}
	token, err := s.tokens.GenerateToken(admin)
	if err != nil {
		return nil, err
	}

	s.log.Info("admin_login_succeeded email=%s", s.creds.Email)
	return &LoginResult{Admin: admin, Token: token}, nil
}

// HashPassword produces a value suitable for ADMIN_PASSWORD_HASH.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
