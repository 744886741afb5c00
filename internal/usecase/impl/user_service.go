// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"log/slog"
	"time"

	deliverycontext "tourgenius/internal/delivery/context"
	"tourgenius/internal/domain/entity"
	domainerrors "tourgenius/internal/domain/errors"
	"tourgenius/internal/domain/repository"
	"tourgenius/internal/domain/service"
	"tourgenius/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// userService implements the UserUsecase interface.
type userService struct {
	txManager    repository.TransactionManager
	userRepo     repository.UserRepository
	tokenService service.TokenService
	hasher       service.PasswordHasher
	logger       *slog.Logger
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	UserRepo     repository.UserRepository
	TokenService service.TokenService
	Hasher       service.PasswordHasher
	Logger       *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		txManager:    params.TxManager,
		userRepo:     params.UserRepo,
		tokenService: params.TokenService,
		hasher:       params.Hasher,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// hashToken derives the storable hash of a refresh token string.
func hashToken(token string) string {
	sum := sha256.Sum256([]byte(token))

	return hex.EncodeToString(sum[:])
}

// RegisterUser orchestrates the complete user registration process.
func (srv *userService) RegisterUser(ctx context.Context, input *usecase.RegisterUserInput) (*usecase.RegisterOutput, error) {
	srv.log(ctx).Info("Starting user registration", slog.String("email", input.Email))

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed, "failed to hash password during registration")
	}

	var registeredUser *entity.User

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()

		// Reject the registration when the email is already taken.
		_, err := userRepo.FindByEmail(ctx, input.Email)
		if err == nil {
			return domainerrors.ErrUserAlreadyExists.WrapMessage("user registration failed")
		}
		if !errors.Is(err, repository.ErrUserNotFound) {
			return errors.Wrap(err, "failed to find user by email")
		}

		newUser := &entity.User{
			Name:         input.Name,
			Email:        input.Email,
			PasswordHash: hashedPassword,
		}
		if err := userRepo.Create(ctx, newUser); err != nil {
			return errors.WithStack(err)
		}
		registeredUser = newUser

		return nil
	})

	if err != nil {
		srv.log(ctx).Error("Failed to execute user registration transaction", slog.Any("error", err), slog.String("email", input.Email))

		return nil, errors.Wrap(err, "failed to execute user registration transaction")
	}
	srv.log(ctx).Debug("User registered successfully", slog.Any("userID", registeredUser.ID))

	return &usecase.RegisterOutput{User: registeredUser}, nil
}

// Login orchestrates the user login process.
func (srv *userService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	srv.log(ctx).Debug("Starting user login", slog.String("email", input.Email))

	var loggedInUser *entity.User
	var accessToken, refreshTokenString string

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()
		tokenRepo := repoFactory.NewRefreshTokenRepository()

		user, err := userRepo.FindByEmail(ctx, input.Email)
		if err != nil {
			// Treat a missing user the same as a wrong password.
			return errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
		}

		if !srv.hasher.Check(input.Password, user.PasswordHash) {
			return errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
		}

		accessToken, refreshTokenString, err = srv.tokenService.GenerateTokens(user.ID)
		if err != nil {
			return errors.Wrap(err, "failed to generate tokens")
		}

		newRefreshToken := &entity.RefreshToken{
			UserID:    user.ID,
			TokenHash: hashToken(refreshTokenString),
			ExpiresAt: time.Now().Add(srv.tokenService.GetRefreshTokenDuration()),
		}
		if err := tokenRepo.CreateRefreshToken(ctx, newRefreshToken); err != nil {
			return errors.WithStack(err)
		}
		loggedInUser = user

		return nil
	})

	if err != nil {
		srv.log(ctx).Warn("Login failed", slog.String("email", input.Email), slog.String("error", err.Error()))

		return nil, errors.Wrap(err, "failed to execute user login transaction")
	}
	srv.log(ctx).Debug("User logged in successfully", slog.Any("userID", loggedInUser.ID))

	return &usecase.LoginOutput{
		AccessToken:  accessToken,
		RefreshToken: refreshTokenString,
		User:         loggedInUser,
	}, nil
}

// RefreshToken handles the process of issuing a new token pair using a refresh token.
// The presented token is rotated: a new pair is issued and the old token is revoked.
func (srv *userService) RefreshToken(ctx context.Context, input *usecase.RefreshTokenInput) (*usecase.RefreshTokenOutput, error) {
	srv.log(ctx).Info("Attempting to refresh token")

	claims, err := srv.tokenService.ValidateToken(input.RefreshToken)
	if err != nil {
		return nil, domainerrors.ErrRefreshTokenInvalid.WrapMessage("invalid refresh token")
	}

	var newAccessToken, newRefreshTokenString string

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()
		tokenRepo := repoFactory.NewRefreshTokenRepository()

		tokenHash := hashToken(input.RefreshToken)
		stored, err := tokenRepo.FindRefreshTokenByHash(ctx, tokenHash)
		if err != nil {
			return domainerrors.ErrRefreshTokenInvalid.WrapMessage("refresh token not found or expired")
		}
		if time.Now().After(stored.ExpiresAt) {
			return domainerrors.ErrRefreshTokenExpired.WrapMessage("refresh token has expired")
		}

		user, err := userRepo.FindByID(ctx, claims.UserID)
		if err != nil {
			return errors.Wrap(err, "failed to find user")
		}

		newAccessToken, newRefreshTokenString, err = srv.tokenService.GenerateTokens(user.ID)
		if err != nil {
			return errors.Wrap(err, "failed to generate new tokens")
		}

		newRefreshToken := &entity.RefreshToken{
			UserID:    user.ID,
			TokenHash: hashToken(newRefreshTokenString),
			ExpiresAt: time.Now().Add(srv.tokenService.GetRefreshTokenDuration()),
		}
		if err := tokenRepo.CreateRefreshToken(ctx, newRefreshToken); err != nil {
			return errors.WithStack(err)
		}

		if err := tokenRepo.DeleteRefreshToken(ctx, stored.ID); err != nil {
			// The user already holds a new valid token, so log and move on.
			srv.log(ctx).Warn("Failed to delete old refresh token", slog.Any("error", err))
		}

		return nil
	})

	if err != nil {
		srv.log(ctx).Error("Failed to execute refresh token transaction", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute refresh token transaction")
	}

	return &usecase.RefreshTokenOutput{
		AccessToken:  newAccessToken,
		RefreshToken: newRefreshTokenString,
	}, nil
}

// Logout handles the process of invalidating a user's session by deleting their refresh token.
func (srv *userService) Logout(ctx context.Context, input *usecase.LogoutInput) error {
	srv.log(ctx).Info("Attempting to log out")

	if _, err := srv.tokenService.ValidateToken(input.RefreshToken); err != nil {
		// Even if the token is invalid, proceed to delete it from the database.
		srv.log(ctx).Warn("Logout with invalid token", slog.Any("error", err))
	}

	tokenHash := hashToken(input.RefreshToken)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		tokenRepo := repoFactory.NewRefreshTokenRepository()

		stored, err := tokenRepo.FindRefreshTokenByHash(ctx, tokenHash)
		if err != nil {
			if errors.Is(err, repository.ErrRefreshTokenNotFound) {
				return nil
			}

			return errors.Wrap(err, "failed to find refresh token")
		}
		if err := tokenRepo.DeleteRefreshToken(ctx, stored.ID); err != nil {
			return errors.Wrap(err, "failed to delete refresh token")
		}

		return nil
	})

	if err != nil {
		srv.log(ctx).Error("Failed to execute logout transaction", slog.Any("error", err))

		return errors.Wrap(err, "failed to execute logout transaction")
	}
	srv.log(ctx).Info("Successfully logged out")

	return nil
}
