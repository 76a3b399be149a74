package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"job-portal/internal/domain"
	"job-portal/internal/repository"
)

// DefaultBcryptCost es el factor de trabajo usado al hashear passwords.
const DefaultBcryptCost = 10

// AuthMetrics registra resultados de signup y login.
type AuthMetrics interface {
	RecordAuthEvent(event, outcome string)
}

// AuthService coordina signup y login sobre el store de credenciales.
type AuthService struct {
	logger  *zap.Logger
	users   repository.UserRepository
	tokens  *JWTService
	limiter LoginRateLimiter
	metrics AuthMetrics
	cost    int

	dummyOnce sync.Once
	dummyHash []byte
}

type SignupInput struct {
	FullName    string
	Email       string
	PhoneNumber string
	Password    string
}

// AuthResult es lo que devuelve un signup o login exitoso.
type AuthResult struct {
	User  domain.User
	Token string
}

func NewAuthService(logger *zap.Logger, users repository.UserRepository, tokens *JWTService, limiter LoginRateLimiter, cost int) *AuthService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = DefaultBcryptCost
	}
	return &AuthService{
		logger:  logger,
		users:   users,
		tokens:  tokens,
		limiter: limiter,
		cost:    cost,
	}
}

// SetMetrics conecta un recolector de eventos de autenticacion.
func (s *AuthService) SetMetrics(m AuthMetrics) {
	s.metrics = m
}

func (s *AuthService) Signup(ctx context.Context, input SignupInput) (AuthResult, error) {
	if s.users == nil || s.tokens == nil {
		return AuthResult{}, errors.New("auth service not configured")
	}

	email := normalizeEmail(input.Email)
	fullName := strings.TrimSpace(input.FullName)
	phone := strings.TrimSpace(input.PhoneNumber)
	if anyBlank(fullName, email, phone, input.Password) {
		s.record("signup", "invalid")
		return AuthResult{}, ErrInvalidInput
	}

	_, err := s.users.GetByEmail(ctx, email)
	switch {
	case err == nil:
		s.record("signup", "duplicate")
		return AuthResult{}, ErrDuplicateEmail
	case !errors.Is(err, pgx.ErrNoRows):
		s.record("signup", "error")
		return AuthResult{}, fmt.Errorf("lookup user: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), s.cost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			s.record("signup", "invalid")
			return AuthResult{}, ErrInvalidInput
		}
		s.record("signup", "error")
		return AuthResult{}, fmt.Errorf("hash password: %w", err)
	}

	user := domain.User{
		ID:           uuid.NewString(),
		FullName:     fullName,
		Email:        email,
		PhoneNumber:  phone,
		PasswordHash: string(hash),
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.users.Create(ctx, user); err != nil {
		// Otro signup con el mismo email gano la carrera entre el chequeo y el insert.
		if errors.Is(err, repository.ErrDuplicate) {
			s.record("signup", "duplicate")
			return AuthResult{}, ErrDuplicateEmail
		}
		s.record("signup", "error")
		return AuthResult{}, fmt.Errorf("create user: %w", err)
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		s.record("signup", "error")
		return AuthResult{}, fmt.Errorf("issue token: %w", err)
	}

	s.record("signup", "success")
	return AuthResult{User: user, Token: token}, nil
}

// Login valida email y password. Email inexistente y password incorrecto
// devuelven el mismo ErrInvalidCredentials. El limiter cuenta intentos por
// email y clientIP juntos: intentos desde otra IP no bloquean al titular.
func (s *AuthService) Login(ctx context.Context, email, password, clientIP string) (AuthResult, error) {
	if s.users == nil || s.tokens == nil {
		return AuthResult{}, errors.New("auth service not configured")
	}

	email = normalizeEmail(email)
	if email == "" || password == "" {
		s.record("login", "invalid_credentials")
		return AuthResult{}, ErrInvalidCredentials
	}
	if s.limiter != nil && !s.limiter.Allow(loginLimiterKey(email, clientIP)) {
		s.record("login", "rate_limited")
		return AuthResult{}, ErrRateLimited
	}

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// Mismo costo que un password incorrecto para no revelar si el email existe.
			_ = bcrypt.CompareHashAndPassword(s.dummy(), []byte(password))
			s.record("login", "invalid_credentials")
			return AuthResult{}, ErrInvalidCredentials
		}
		s.record("login", "error")
		return AuthResult{}, fmt.Errorf("lookup user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		s.record("login", "invalid_credentials")
		return AuthResult{}, ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		s.record("login", "error")
		return AuthResult{}, fmt.Errorf("issue token: %w", err)
	}

	s.record("login", "success")
	return AuthResult{User: user, Token: token}, nil
}

func loginLimiterKey(email, clientIP string) string {
	clientIP = strings.TrimSpace(clientIP)
	if clientIP == "" {
		return email
	}
	return email + "|" + clientIP
}

func (s *AuthService) dummy() []byte {
	s.dummyOnce.Do(func() {
		hash, err := bcrypt.GenerateFromPassword([]byte(uuid.NewString()), s.cost)
		if err != nil {
			s.logger.Warn("dummy hash generation failed", zap.Error(err))
		}
		s.dummyHash = hash
	})
	return s.dummyHash
}

func (s *AuthService) record(event, outcome string) {
	if s.metrics != nil {
		s.metrics.RecordAuthEvent(event, outcome)
	}
}
