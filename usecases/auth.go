package usecases

import (
	"errors"
	"realty-server/entities"
	"realty-server/repositories"
	"realty-server/utils"
	"time"

	"gorm.io/gorm"
)

var (
	ErrUsernameTaken      = errors.New("username already registered")
	ErrInvalidCredentials = errors.New("incorrect username or password")
)

type AuthUseCase struct {
	UserRepo repositories.UserRepository
	Secret   string
	TokenTTL time.Duration
}

func NewAuthUseCase(userRepo repositories.UserRepository, secret string, tokenTTL time.Duration) *AuthUseCase {
	return &AuthUseCase{
		UserRepo: userRepo,
		Secret:   secret,
		TokenTTL: tokenTTL,
	}
}

// Register creates an account with a bcrypt-hashed password. The username
// is checked first so a duplicate surfaces as ErrUsernameTaken instead of a
// raw constraint violation.
func (uc *AuthUseCase) Register(username, password string) (*entities.User, error) {
	if username == "" {
		return nil, errors.New("username is required")
	}
	if password == "" {
		return nil, errors.New("password is required")
	}

	_, err := uc.UserRepo.GetByUsername(username)
	switch {
	case err == nil:
		return nil, ErrUsernameTaken
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return nil, err
	}

	hashed, err := utils.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := &entities.User{
		Username:       username,
		HashedPassword: hashed,
	}
	if err := uc.UserRepo.Create(user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login verifies the credentials and issues a signed bearer token whose
// sub claim is the username. Unknown users and wrong passwords are
// indistinguishable to the caller.
func (uc *AuthUseCase) Login(username, password string) (string, error) {
	user, err := uc.UserRepo.GetByUsername(username)
	if err != nil {
		return "", ErrInvalidCredentials
	}
	if !utils.CheckPasswordHash(password, user.HashedPassword) {
		return "", ErrInvalidCredentials
	}

	return utils.CreateAccessToken(map[string]any{"sub": user.Username}, uc.TokenTTL, uc.Secret)
}
