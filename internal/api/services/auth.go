package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/bharatha-dev/brainly-server/internal/common"
	"github.com/bharatha-dev/brainly-server/internal/common/security"
	"github.com/bharatha-dev/brainly-server/internal/models"
)

const (
	minUsernameLen = 3
	minPasswordLen = 6
)

type AuthService struct {
	db     *gorm.DB
	logger zerolog.Logger
	secret []byte
	expiry time.Duration
}

func NewAuthService(db *gorm.DB, logger zerolog.Logger, secret []byte, expiry time.Duration) *AuthService {
	return &AuthService{db: db, logger: logger, secret: secret, expiry: expiry}
}

// SignUp validates credentials, hashes the password and persists the user.
// Validation failures never reach the store.
func (s *AuthService) SignUp(username, password string) error {
	fields := common.FieldErrors{}
	if len(username) < minUsernameLen {
		fields["username"] = fmt.Sprintf("Username must be at least %d characters long", minUsernameLen)
	}
	if len(password) < minPasswordLen {
		fields["password"] = fmt.Sprintf("Password must be at least %d characters long", minPasswordLen)
	}
	if len(fields) > 0 {
		return fields
	}

	var existing models.User
	err := s.db.Where("username = ?", username).First(&existing).Error
	switch {
	case err == nil:
		return common.E(common.ErrConflict, "Username already taken")
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return fmt.Errorf("look up username: %w", err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	user := models.User{Username: username, Password: string(hashed)}
	if err := s.db.Create(&user).Error; err != nil {
		// Two concurrent signups can both pass the lookup above; the unique
		// index decides the winner.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return common.E(common.ErrConflict, "Username already taken")
		}
		return fmt.Errorf("create user: %w", err)
	}

	s.logger.Info().Str("username", username).Msg("user signed up")
	return nil
}

// SignIn verifies the credentials and issues a signed bearer token. Unknown
// usernames and wrong passwords are indistinguishable to the caller.
func (s *AuthService) SignIn(username, password string) (string, error) {
	if username == "" || password == "" {
		return "", common.FieldErrors{"credentials": "Username and password are required"}
	}

	var user models.User
	err := s.db.Where("username = ?", username).First(&user).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return "", common.E(common.ErrBadCredentials, "Incorrect username or password")
	case err != nil:
		return "", fmt.Errorf("look up user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", common.E(common.ErrBadCredentials, "Incorrect username or password")
	}

	token, err := security.GenerateToken(s.secret, s.expiry, user.ID.String(), user.Username)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return token, nil
}
