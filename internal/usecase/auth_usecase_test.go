package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/mock/gomock"

	"medpipeline/internal/config"
	"medpipeline/internal/domain/entities"
	mock_interfaces "medpipeline/internal/usecase/interfaces/mocks"
)

func testJWTConfig() config.JWTConfig {
	return config.JWTConfig{
		Secret: "test-secret",
		Expire: time.Hour,
		Issuer: "medpipeline-test",
	}
}

func TestAuthUseCase_Login(t *testing.T) {
	accounts := []entities.User{
		{ID: "u1", Name: "Admin", Email: "admin@example.com", Password: "pass123"},
		{ID: "u2", Name: "Sales", Email: "sales@example.com", Password: "other"},
	}

	t.Run("success issues a verifiable token", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		users := mock_interfaces.NewMockIUserStore(ctrl)
		uc := NewAuthUseCase(users, testJWTConfig())

		users.EXPECT().FetchAll(gomock.Any()).Return(accounts, nil)

		token, user, err := uc.Login(context.Background(), "admin@example.com", "pass123")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if user.ID != "u1" {
			t.Fatalf("unexpected user: %+v", user)
		}
		if user.Password != "" {
			t.Fatal("password leaked in login result")
		}

		claims := &AuthClaims{}
		parsed, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (any, error) {
			return []byte("test-secret"), nil
		})
		if err != nil || !parsed.Valid {
			t.Fatalf("token does not verify: %v", err)
		}
		if claims.UserID != "u1" || claims.Email != "admin@example.com" {
			t.Fatalf("unexpected claims: %+v", claims)
		}
		if claims.Issuer != "medpipeline-test" {
			t.Fatalf("unexpected issuer: %q", claims.Issuer)
		}
	})

	t.Run("email match is case-insensitive", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		users := mock_interfaces.NewMockIUserStore(ctrl)
		uc := NewAuthUseCase(users, testJWTConfig())

		users.EXPECT().FetchAll(gomock.Any()).Return(accounts, nil)

		if _, _, err := uc.Login(context.Background(), "ADMIN@Example.COM", "pass123"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("wrong password", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		users := mock_interfaces.NewMockIUserStore(ctrl)
		uc := NewAuthUseCase(users, testJWTConfig())

		users.EXPECT().FetchAll(gomock.Any()).Return(accounts, nil)

		if _, _, err := uc.Login(context.Background(), "admin@example.com", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("blank credentials skip the store", func(t *testing.T) {
		uc := NewAuthUseCase(nil, testJWTConfig())
		if _, _, err := uc.Login(context.Background(), "  ", ""); !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("store error propagates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		users := mock_interfaces.NewMockIUserStore(ctrl)
		uc := NewAuthUseCase(users, testJWTConfig())

		users.EXPECT().FetchAll(gomock.Any()).Return(nil, errors.New("sheet down"))

		if _, _, err := uc.Login(context.Background(), "admin@example.com", "pass123"); err == nil {
			t.Fatal("expected error")
		}
	})
}

func TestAuthUseCase_GetProfile(t *testing.T) {
	t.Run("strips the password", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		users := mock_interfaces.NewMockIUserStore(ctrl)
		uc := NewAuthUseCase(users, testJWTConfig())

		users.EXPECT().GetByID(gomock.Any(), "u1").Return(entities.User{ID: "u1", Name: "Admin", Password: "secret"}, nil)

		user, err := uc.GetProfile(context.Background(), "u1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if user.Password != "" {
			t.Fatal("password leaked in profile")
		}
	})

	t.Run("unknown user", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		users := mock_interfaces.NewMockIUserStore(ctrl)
		uc := NewAuthUseCase(users, testJWTConfig())

		users.EXPECT().GetByID(gomock.Any(), "ghost").Return(entities.User{}, nil)

		if _, err := uc.GetProfile(context.Background(), "ghost"); !errors.Is(err, ErrUserNotFound) {
			t.Fatalf("expected ErrUserNotFound, got %v", err)
		}
	})

	t.Run("blank id", func(t *testing.T) {
		uc := NewAuthUseCase(nil, testJWTConfig())
		if _, err := uc.GetProfile(context.Background(), "  "); !errors.Is(err, ErrUserNotFound) {
			t.Fatalf("expected ErrUserNotFound, got %v", err)
		}
	})
}

func TestAuthUseCase_UpdateProfile(t *testing.T) {
	existing := entities.User{ID: "u1", Name: "Admin", Email: "admin@example.com", Password: "old"}

	t.Run("patches name and email, keeps password", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		users := mock_interfaces.NewMockIUserStore(ctrl)
		uc := NewAuthUseCase(users, testJWTConfig())

		users.EXPECT().GetByID(gomock.Any(), "u1").Return(existing, nil)
		users.EXPECT().Update(gomock.Any(), "u1", gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, u entities.User) (int, error) {
				if u.Name != "New Name" || u.Email != "new@example.com" {
					t.Fatalf("unexpected patch: %+v", u)
				}
				if u.Password != "old" {
					t.Fatalf("password changed without a new one: %q", u.Password)
				}
				return 1, nil
			},
		)

		user, err := uc.UpdateProfile(context.Background(), "u1", "New Name", "new@example.com", "", "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if user.Password != "" {
			t.Fatal("password leaked in result")
		}
	})

	t.Run("password change requires matching confirmation", func(t *testing.T) {
		uc := NewAuthUseCase(nil, testJWTConfig())
		_, err := uc.UpdateProfile(context.Background(), "u1", "Name", "a@b.c", "new", "different")
		if !errors.Is(err, ErrPasswordMismatch) {
			t.Fatalf("expected ErrPasswordMismatch, got %v", err)
		}
	})

	t.Run("blank name or email", func(t *testing.T) {
		uc := NewAuthUseCase(nil, testJWTConfig())
		if _, err := uc.UpdateProfile(context.Background(), "u1", "  ", "a@b.c", "", ""); !errors.Is(err, ErrInvalidProfile) {
			t.Fatalf("expected ErrInvalidProfile, got %v", err)
		}
		if _, err := uc.UpdateProfile(context.Background(), "u1", "Name", "", "", ""); !errors.Is(err, ErrInvalidProfile) {
			t.Fatalf("expected ErrInvalidProfile, got %v", err)
		}
	})

	t.Run("zero updated-count is a rejected write", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		users := mock_interfaces.NewMockIUserStore(ctrl)
		uc := NewAuthUseCase(users, testJWTConfig())

		users.EXPECT().GetByID(gomock.Any(), "u1").Return(existing, nil)
		users.EXPECT().Update(gomock.Any(), "u1", gomock.Any()).Return(0, nil)

		if _, err := uc.UpdateProfile(context.Background(), "u1", "Name", "a@b.c", "", ""); !errors.Is(err, ErrStoreRejected) {
			t.Fatalf("expected ErrStoreRejected, got %v", err)
		}
	})
}
