package auth

import (
	"context"
	"net/mail"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/simp-lee/jwt"

	"github.com/dkotelev/blogplatform/internal/domain"
)

// Service defines the authentication operations.
type Service interface {
	Login(ctx context.Context, loginOrEmail, password string) (*TokenResponse, error)
	Register(ctx context.Context, login, email, password string) (*domain.User, error)
	ConfirmEmail(ctx context.Context, code string) error
	ResendConfirmation(ctx context.Context, email string) (string, error)
}

// authService implements Service.
type authService struct {
	jwtSvc          jwt.Service
	userRepo        domain.UserRepository
	tokenExpiry     time.Duration
	confirmationTTL time.Duration
}

// NewService creates a new auth Service.
func NewService(jwtSvc jwt.Service, userRepo domain.UserRepository, tokenExpiry, confirmationTTL time.Duration) Service {
	return &authService{
		jwtSvc:          jwtSvc,
		userRepo:        userRepo,
		tokenExpiry:     tokenExpiry,
		confirmationTTL: confirmationTTL,
	}
}

// Login authenticates a user by login or email and returns a JWT token.
func (s *authService) Login(ctx context.Context, loginOrEmail, password string) (*TokenResponse, error) {
	user, err := s.userRepo.GetByLoginOrEmail(ctx, strings.TrimSpace(loginOrEmail))
	if err != nil {
		// Don't reveal whether the account exists — always return unauthorized.
		if domain.IsNotFound(err) {
			return nil, domain.ErrUnauthorized
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, domain.ErrUnauthorized
	}

	token, err := s.jwtSvc.GenerateToken(
		strconv.FormatUint(uint64(user.ID), 10),
		nil,
		s.tokenExpiry,
	)
	if err != nil {
		return nil, domain.NewAppError(domain.CodeInternal, "failed to generate token", err)
	}

	parsedToken, parseErr := s.jwtSvc.ParseToken(token)
	if parseErr != nil {
		return nil, domain.NewAppError(domain.CodeInternal, "failed to parse generated token", parseErr)
	}

	return &TokenResponse{
		Token:     token,
		ExpiresAt: parsedToken.ExpiresAt.Unix(),
	}, nil
}

// Register creates a new unconfirmed user with a fresh confirmation code.
// Delivering the code by email is an external concern; this layer only
// stores it alongside its expiry.
func (s *authService) Register(ctx context.Context, login, email, password string) (*domain.User, error) {
	login = strings.TrimSpace(login)
	email = strings.TrimSpace(email)
	if err := validateRegisterInput(login, email, password); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, domain.NewAppError(domain.CodeInternal, "failed to hash password", err)
	}

	code := uuid.NewString()
	expiration := time.Now().Add(s.confirmationTTL)

	user := domain.User{
		Login:                      login,
		Email:                      email,
		PasswordHash:               string(hash),
		ConfirmationCode:           &code,
		ConfirmationCodeExpiration: &expiration,
	}

	if err := s.userRepo.Create(ctx, &user); err != nil {
		return nil, err
	}

	return &user, nil
}

// ConfirmEmail confirms the account that holds the given confirmation code.
func (s *authService) ConfirmEmail(ctx context.Context, code string) error {
	code = strings.TrimSpace(code)
	if code == "" {
		return domain.NewAppError(domain.CodeValidation, "confirmation code is required", nil)
	}

	user, err := s.userRepo.GetByConfirmationCode(ctx, code)
	if err != nil {
		if domain.IsNotFound(err) {
			return domain.NewAppError(domain.CodeValidation, "confirmation code is invalid", nil)
		}
		return err
	}

	if user.IsEmailConfirmed {
		return domain.NewAppError(domain.CodeValidation, "email is already confirmed", nil)
	}
	if user.ConfirmationCodeExpiration == nil || user.ConfirmationCodeExpiration.Before(time.Now()) {
		return domain.NewAppError(domain.CodeValidation, "confirmation code has expired", nil)
	}

	return s.userRepo.ConfirmEmail(ctx, user.ID)
}

// ResendConfirmation replaces the confirmation code for an unconfirmed
// account and returns the new code.
func (s *authService) ResendConfirmation(ctx context.Context, email string) (string, error) {
	user, err := s.userRepo.GetByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		if domain.IsNotFound(err) {
			return "", domain.NewAppError(domain.CodeValidation, "email is not registered", nil)
		}
		return "", err
	}

	if user.IsEmailConfirmed {
		return "", domain.NewAppError(domain.CodeValidation, "email is already confirmed", nil)
	}

	code := uuid.NewString()
	expiration := time.Now().Add(s.confirmationTTL)
	if err := s.userRepo.UpdateConfirmationCode(ctx, user.ID, code, expiration); err != nil {
		return "", err
	}

	return code, nil
}

// validateRegisterInput validates registration input. login and email are
// expected to be pre-trimmed by callers.
func validateRegisterInput(login, email, password string) error {
	loginLen := utf8.RuneCountInString(login)
	if loginLen == 0 {
		return domain.NewAppError(domain.CodeValidation, "login is required", nil)
	}
	if loginLen < 3 || loginLen > 30 {
		return domain.NewAppError(domain.CodeValidation, "login must be between 3 and 30 characters", nil)
	}
	if email == "" {
		return domain.NewAppError(domain.CodeValidation, "email is required", nil)
	}
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Name != "" || addr.Address != email {
		return domain.NewAppError(domain.CodeValidation, "email must be a valid email address", nil)
	}
	if len(password) < 6 {
		return domain.NewAppError(domain.CodeValidation, "password must be at least 6 characters", nil)
	}
	if len(password) > 72 {
		return domain.NewAppError(domain.CodeValidation, "password must not exceed 72 characters", nil)
	}
	return nil
}
