package auth

import (
	"context"
	"crypto/subtle"
	"errors"
	"strings"

	"flyease/internal/domain"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type jwtService interface {
	GenerateToken(userID int64, role string) (string, error)
}

// Service contains all business logic for authentication
type Service struct {
	users  UserRepositoryInterface
	guard  *LoginGuard
	jwt    jwtService
	logger *zap.Logger
}

type LoginResult struct {
	User        *domain.User
	AccessToken string
}

func NewService(users UserRepositoryInterface, guard *LoginGuard, jwt jwtService, logger *zap.Logger) *Service {
	return &Service{
		users:  users,
		guard:  guard,
		jwt:    jwt,
		logger: logger,
	}
}

func (s *Service) Register(ctx context.Context, req RegisterRequest) (*domain.User, string, error) {
	if err := s.validateEmailUnique(ctx, req.Email); err != nil {
		return nil, "", err
	}

	hashedPassword, err := s.hashPassword(req.Password)
	if err != nil {
		return nil, "", err
	}

	user := &domain.User{
		Email:          strings.ToLower(strings.TrimSpace(req.Email)),
		PasswordHash:   hashedPassword,
		PasswordFormat: domain.PasswordBcrypt,
		Name:           req.Name,
		Phone:          req.Phone,
		Role:           domain.RoleCustomer,
	}

	if err := s.users.Create(ctx, user); err != nil {
		return nil, "", err
	}

	token, err := s.jwt.GenerateToken(user.ID, string(user.Role))
	if err != nil {
		return nil, "", err
	}

	user.PasswordHash = ""
	return user, token, nil
}

// Login verifies credentials under the throttling guard. The lock check runs
// before anything else; unknown and banned accounts are rejected before the
// password check and do not consume the fail counter.
func (s *Service) Login(ctx context.Context, req LoginRequest) (*LoginResult, error) {
	locked, remaining, err := s.guard.Check(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if locked {
		return nil, &LockedError{Remaining: remaining}
	}

	user, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, err
	}

	if user.IsBanned {
		return nil, ErrAccountBanned
	}

	if !s.verifyPassword(user, req.Password) {
		status, gerr := s.guard.RecordFailure(ctx, req.Email)
		if gerr != nil {
			return nil, gerr
		}
		if status.Locked {
			return nil, &LockedError{Remaining: status.Remaining}
		}
		return nil, &FailedAttemptError{AttemptsLeft: status.AttemptsLeft}
	}

	if err := s.guard.Clear(ctx, req.Email); err != nil {
		return nil, err
	}

	if user.PasswordFormat != domain.PasswordBcrypt && !looksLikeBcrypt(user.PasswordHash) {
		s.upgradeLegacyPassword(ctx, user, req.Password)
	}

	token, err := s.jwt.GenerateToken(user.ID, string(user.Role))
	if err != nil {
		return nil, err
	}

	user.PasswordHash = ""
	return &LoginResult{User: user, AccessToken: token}, nil
}

func (s *Service) GetCurrentUser(ctx context.Context, userID int64) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	user.PasswordHash = ""
	return user, nil
}

func (s *Service) UpdateProfile(ctx context.Context, userID int64, req UpdateProfileRequest) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.Name != "" {
		user.Name = req.Name
	}
	if req.Phone != "" {
		user.Phone = req.Phone
	}

	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}

	user.PasswordHash = ""
	return user, nil
}

// verifyPassword compares against whichever format the row carries. Rows
// written before the format column existed are prefix-sniffed once here. A
// bcrypt comparison error other than a plain mismatch falls back to the
// legacy equality check; that path is logged because it weakens the check.
func (s *Service) verifyPassword(u *domain.User, password string) bool {
	format := u.PasswordFormat
	if format == "" {
		if looksLikeBcrypt(u.PasswordHash) {
			format = domain.PasswordBcrypt
		} else {
			format = domain.PasswordPlainLegacy
		}
	}

	if format == domain.PasswordBcrypt {
		err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password))
		if err == nil {
			return true
		}
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return false
		}
		s.logger.Warn("bcrypt comparison failed, falling back to legacy plain comparison",
			zap.Int64("user_id", u.ID),
			zap.Error(err),
		)
	}

	return subtle.ConstantTimeCompare([]byte(u.PasswordHash), []byte(password)) == 1
}

// upgradeLegacyPassword rehashes a plain-format password to bcrypt after the
// user proves it on a successful login. Best effort: the login already
// succeeded, so a failed rewrite only logs and the row stays on the legacy
// format until the next login.
func (s *Service) upgradeLegacyPassword(ctx context.Context, u *domain.User, password string) {
	hash, err := s.hashPassword(password)
	if err != nil {
		s.logger.Warn("legacy password rehash failed", zap.Int64("user_id", u.ID), zap.Error(err))
		return
	}
	if err := s.users.UpdateCredentials(ctx, u.ID, hash, domain.PasswordBcrypt); err != nil {
		s.logger.Warn("legacy password upgrade failed", zap.Int64("user_id", u.ID), zap.Error(err))
		return
	}
	s.logger.Info("legacy password upgraded to bcrypt", zap.Int64("user_id", u.ID))
}

func looksLikeBcrypt(stored string) bool {
	return strings.HasPrefix(stored, "$2a$") ||
		strings.HasPrefix(stored, "$2b$") ||
		strings.HasPrefix(stored, "$2y$")
}

func (s *Service) validateEmailUnique(ctx context.Context, email string) error {
	exists, err := s.users.ExistsByEmail(ctx, email)
	if err != nil {
		return err
	}
	if exists {
		return ErrEmailAlreadyExists
	}
	return nil
}

func (s *Service) hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
