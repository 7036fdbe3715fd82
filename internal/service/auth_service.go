package service

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/campusops/coe-api/internal/models"
	"github.com/campusops/coe-api/pkg/config"
	appErrors "github.com/campusops/coe-api/pkg/errors"
)

// FallbackPassword is issued when no date of birth is supplied at
// registration.
const FallbackPassword = "123456"

// Lookup failures carry HTTP 200: the wire contract reports them as
// success:false rather than an error status.
var (
	ErrInvalidLogin   = appErrors.New("INVALID_CREDENTIALS", http.StatusOK, "Invalid Email or Password!")
	ErrEmailNotFound  = appErrors.New("EMAIL_NOT_FOUND", http.StatusOK, "Email not found!")
	ErrNoMatchingUser = appErrors.New("NO_MATCHING_RECORD", http.StatusOK, "No matching record found.")
	ErrShortRoll      = appErrors.New("INVALID_ROLL", http.StatusOK, "Invalid Roll Number! Minimum 8 digits required.")
)

type authUserRepository interface {
	Create(ctx context.Context, user *models.User) error
	FindByCredentials(ctx context.Context, email, password string) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindEmailByIdentity(ctx context.Context, name, roll, course string) (string, error)
}

// AuthService implements registration, login and credential recovery.
type AuthService struct {
	repo      authUserRepository
	validator *validator.Validate
	logger    *zap.Logger
	admin     config.AdminConfig
}

// NewAuthService constructs an AuthService instance.
func NewAuthService(repo authUserRepository, validate *validator.Validate, logger *zap.Logger, admin config.AdminConfig) *AuthService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if validate == nil {
		validate = validator.New()
	}
	return &AuthService{repo: repo, validator: validate, logger: logger, admin: admin}
}

// Register creates a student account. The roll-length rule is checked
// before any database access; the initial password derives from the date of
// birth.
func (s *AuthService) Register(ctx context.Context, req models.RegisterRequest) (*models.RegisterResponse, error) {
	req.Email = strings.TrimSpace(req.Email)
	req.Roll = strings.TrimSpace(req.Roll)

	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid registration payload")
	}

	if req.Roll != models.GuestRoll && len(req.Roll) < models.MinRollLength {
		return nil, ErrShortRoll
	}

	password := DerivePassword(req.DOB)

	user := &models.User{
		Email:    req.Email,
		Password: password,
		Name:     req.Name,
		DOB:      req.DOB,
		Roll:     req.Roll,
		Course:   req.Course,
		Phone:    req.Phone,
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info("user registered", zap.String("email", req.Email), zap.String("course", req.Course))

	return &models.RegisterResponse{Success: true, UserID: req.Email, Password: password}, nil
}

// Login authenticates a user. The configured administrator credentials
// short-circuit without a database query. Empty credentials are not
// rejected up front; they fail the lookup like any wrong pair.
func (s *AuthService) Login(ctx context.Context, req models.LoginRequest) (*models.LoginResponse, error) {
	req.UserID = strings.TrimSpace(req.UserID)
	req.Password = strings.TrimSpace(req.Password)

	if s.admin.Email != "" && req.UserID == s.admin.Email && req.Password == s.admin.Password {
		return &models.LoginResponse{Success: true, UserName: "Administrator", IsAdmin: true}, nil
	}

	user, err := s.repo.FindByCredentials(ctx, req.UserID, req.Password)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrInvalidLogin
		}
		return nil, err
	}

	return &models.LoginResponse{Success: true, UserName: user.Name, IsAdmin: false}, nil
}

// ForgotPassword returns the stored password for an email.
func (s *AuthService) ForgotPassword(ctx context.Context, email string) (string, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return "", appErrors.Clone(appErrors.ErrValidation, "Email is required!")
	}

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrEmailNotFound
		}
		return "", err
	}
	return user.Password, nil
}

// ForgotUserID recovers the email for a roll/course pair, optionally
// narrowed by name. Matching is case-insensitive.
func (s *AuthService) ForgotUserID(ctx context.Context, req models.ForgotUserIDRequest) (string, error) {
	req.Name = strings.TrimSpace(req.Name)
	req.Roll = strings.TrimSpace(req.Roll)
	req.Course = strings.TrimSpace(req.Course)

	if req.Roll == "" || req.Course == "" {
		return "", appErrors.Clone(appErrors.ErrValidation, "Roll No and Course are required!")
	}

	email, err := s.repo.FindEmailByIdentity(ctx, req.Name, req.Roll, req.Course)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrNoMatchingUser
		}
		return "", err
	}
	return email, nil
}

// DerivePassword builds the initial password from the digits of a date of
// birth, falling back to a fixed value when none is given.
func DerivePassword(dob string) string {
	var sb strings.Builder
	for _, r := range dob {
		if unicode.IsDigit(r) {
			sb.WriteRune(r)
		}
	}
	if sb.Len() == 0 {
		return FallbackPassword
	}
	return sb.String()
}
