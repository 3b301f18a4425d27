package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"medpipeline/internal/config"
	"medpipeline/internal/domain/entities"
	"medpipeline/internal/usecase/interfaces"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidProfile     = errors.New("invalid profile")
	ErrPasswordMismatch   = errors.New("passwords do not match")
)

// AuthClaims is the session token payload. Presence of a valid token is the
// whole access model; there are no roles.
type AuthClaims struct {
	UserID string `json:"uid"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

// IAuthUseCase covers login and profile maintenance against the user sheet.

type IAuthUseCase interface {
	Login(ctx context.Context, email, password string) (string, entities.User, error)
	GetProfile(ctx context.Context, userID string) (entities.User, error)
	UpdateProfile(ctx context.Context, userID string, name, email, password, confirmPassword string) (entities.User, error)
}

type AuthUseCase struct {
	users interfaces.IUserStore
	cfg   config.JWTConfig
}

var _ IAuthUseCase = (*AuthUseCase)(nil)

func NewAuthUseCase(users interfaces.IUserStore, cfg config.JWTConfig) *AuthUseCase {
	return &AuthUseCase{users: users, cfg: cfg}
}

// Login matches email and password against the user sheet and issues a
// session token. Email comparison is case-insensitive; passwords are the
// plain sheet values, as in the source system.
func (u *AuthUseCase) Login(ctx context.Context, email, password string) (string, entities.User, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return "", entities.User{}, ErrInvalidCredentials
	}

	users, err := u.users.FetchAll(ctx)
	if err != nil {
		return "", entities.User{}, err
	}

	for _, user := range users {
		if strings.EqualFold(user.Email, email) && user.Password == password {
			token, err := u.sign(user)
			if err != nil {
				return "", entities.User{}, err
			}
			user.Password = ""
			return token, user, nil
		}
	}
	return "", entities.User{}, ErrInvalidCredentials
}

func (u *AuthUseCase) GetProfile(ctx context.Context, userID string) (entities.User, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return entities.User{}, ErrUserNotFound
	}

	user, err := u.users.GetByID(ctx, userID)
	if err != nil {
		return entities.User{}, err
	}
	if user.ID == "" {
		return entities.User{}, ErrUserNotFound
	}
	user.Password = ""
	return user, nil
}

// UpdateProfile patches name and email, and the password when one is
// provided. The sheet row is replaced in full; the snapshot of the user
// changes only after the store confirms the update.
func (u *AuthUseCase) UpdateProfile(ctx context.Context, userID, name, email, password, confirmPassword string) (entities.User, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	if name == "" || email == "" {
		return entities.User{}, ErrInvalidProfile
	}
	if password != "" && password != confirmPassword {
		return entities.User{}, ErrPasswordMismatch
	}

	existing, err := u.users.GetByID(ctx, userID)
	if err != nil {
		return entities.User{}, err
	}
	if existing.ID == "" {
		return entities.User{}, ErrUserNotFound
	}

	updated := existing
	updated.Name = name
	updated.Email = email
	if password != "" {
		updated.Password = password
	}

	n, err := u.users.Update(ctx, userID, updated)
	if err != nil {
		return entities.User{}, err
	}
	if n == 0 {
		return entities.User{}, ErrStoreRejected
	}

	updated.Password = ""
	return updated, nil
}

func (u *AuthUseCase) sign(user entities.User) (string, error) {
	now := time.Now().UTC()
	claims := AuthClaims{
		UserID: user.ID,
		Name:   user.Name,
		Email:  user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    u.cfg.Issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(u.cfg.Expire)),
			Subject:   user.ID,
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(u.cfg.Secret))
}
