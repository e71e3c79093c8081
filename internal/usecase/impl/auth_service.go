// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strconv"
	"time"

	deliverycontext "organizer/internal/delivery/context"
	"organizer/internal/domain/entity"
	domainerrors "organizer/internal/domain/errors"
	"organizer/internal/domain/repository"
	"organizer/internal/domain/service"
	"organizer/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const tokenTypeBearer = "bearer"

// authService implements the AuthUsecase interface.
type authService struct {
	txManager      repository.TransactionManager
	userRepo       repository.UserRepository
	hasher         service.PasswordHasher
	tokenService   service.TokenService
	blacklist      service.TokenBlacklist
	avatarProvider service.AvatarProvider
	emailSender    service.EmailSender
	logger         *slog.Logger
}

// AuthServiceParams holds dependencies for authService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	TxManager      repository.TransactionManager
	UserRepo       repository.UserRepository
	Hasher         service.PasswordHasher
	TokenService   service.TokenService
	Blacklist      service.TokenBlacklist
	AvatarProvider service.AvatarProvider
	EmailSender    service.EmailSender
	Logger         *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		txManager:      params.TxManager,
		userRepo:       params.UserRepo,
		hasher:         params.Hasher,
		tokenService:   params.TokenService,
		blacklist:      params.Blacklist,
		avatarProvider: params.AvatarProvider,
		emailSender:    params.EmailSender,
		logger:         params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates a new account inside a transaction and queues the
// confirmation email after the commit succeeds.
func (srv *authService) Register(ctx context.Context, input usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	srv.log(ctx).Info("Starting registration", slog.String("username", input.Username))

	var registeredUser *entity.User
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()

		// Username is checked before email so a request that collides on
		// both always reports the username conflict.
		if _, err := userRepo.FindByUsername(ctx, input.Username); err == nil {
			return domainerrors.ErrUsernameTaken
		} else if !errors.Is(err, repository.ErrUserNotFound) {
			return errors.Wrap(err, "failed to check username availability")
		}

		if _, err := userRepo.FindByEmail(ctx, input.Email); err == nil {
			return domainerrors.ErrEmailTaken
		} else if !errors.Is(err, repository.ErrUserNotFound) {
			return errors.Wrap(err, "failed to check email availability")
		}

		hashedPassword, err := srv.hasher.Hash(input.Password)
		if err != nil {
			return errors.Wrap(err, "failed to hash password during registration")
		}

		newUser := &entity.User{
			Username:     input.Username,
			Email:        input.Email,
			PasswordHash: hashedPassword,
			Role:         entity.RoleRegular,
		}

		// A default avatar is a nicety, not a requirement. Registration
		// proceeds without one if the provider fails.
		if avatarURL, avatarErr := srv.avatarProvider.Generate(input.Email); avatarErr != nil {
			srv.log(ctx).Warn("Failed to generate default avatar",
				slog.String("username", input.Username), slog.Any("error", avatarErr))
		} else {
			newUser.Avatar = &avatarURL
		}

		if err := userRepo.Create(ctx, newUser); err != nil {
			return err
		}

		registeredUser = newUser

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to execute registration transaction",
			slog.String("username", input.Username), slog.Any("error", err))

		return nil, err
	}

	dispatchConfirmationEmail(srv.log(ctx), srv.tokenService, srv.emailSender, registeredUser, input.ConfirmBaseURL)

	srv.log(ctx).Debug("Registration completed", slog.Int64("userID", registeredUser.ID))

	return &usecase.RegisterOutput{User: registeredUser}, nil
}

// Login verifies the credentials and issues a bearer access token.
func (srv *authService) Login(ctx context.Context, input usecase.LoginInput) (*usecase.LoginOutput, error) {
	user, err := srv.authenticate(ctx, input.Username, input.Password)
	if err != nil {
		return nil, err
	}

	accessToken, err := srv.tokenService.GenerateAccessToken(user.ID)
	if err != nil {
		srv.log(ctx).Error("Failed to generate access token",
			slog.Int64("userID", user.ID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to generate access token")
	}

	srv.log(ctx).Info("User logged in", slog.Int64("userID", user.ID))

	return &usecase.LoginOutput{
		AccessToken: accessToken,
		TokenType:   tokenTypeBearer,
	}, nil
}

// authenticate applies the credential checks in a fixed order: unknown
// username and wrong password share one error so account existence is not
// leaked; an unconfirmed email is rejected before the password is even
// checked, so such accounts always see the confirmation prompt.
func (srv *authService) authenticate(ctx context.Context, username, password string) (*entity.User, error) {
	user, err := srv.userRepo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrInvalidCredentials
		}

		return nil, errors.Wrap(err, "failed to look up user for login")
	}

	if !user.EmailConfirmed {
		return nil, domainerrors.ErrEmailNotConfirmed
	}

	if !srv.hasher.Check(password, user.PasswordHash) {
		return nil, domainerrors.ErrInvalidCredentials
	}

	return user, nil
}

// ResolveToken maps a presented access token to the current account.
// The denylist is consulted before the signature is checked, and a denylist
// outage rejects the request rather than letting a possibly revoked token
// through.
func (srv *authService) ResolveToken(ctx context.Context, token string) (*entity.User, error) {
	revoked, err := srv.blacklist.IsRevoked(ctx, token)
	if err != nil {
		srv.log(ctx).Error("Token blacklist unavailable", slog.Any("error", err))

		return nil, domainerrors.ErrBlacklistUnavailable
	}
	if revoked {
		return nil, domainerrors.ErrTokenRevoked
	}

	claims, err := srv.tokenService.ParseAccessToken(token)
	if err != nil {
		return nil, domainerrors.ErrTokenInvalid
	}

	userID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil {
		return nil, domainerrors.ErrCredentialsUnresolvable
	}

	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrCredentialsUnresolvable
		}

		return nil, errors.Wrap(err, "failed to look up user for token")
	}

	return user, nil
}

// RevokeToken puts the token on the denylist for its remaining lifetime.
// An already-expired token needs no record and revoking it succeeds.
func (srv *authService) RevokeToken(ctx context.Context, token string) error {
	claims, err := srv.tokenService.ParseAccessToken(token)
	if err != nil {
		return domainerrors.ErrTokenInvalid
	}

	ttl := claims.RemainingTTL(time.Now())
	if err := srv.blacklist.Revoke(ctx, token, ttl); err != nil {
		srv.log(ctx).Error("Failed to revoke token", slog.Any("error", err))

		return domainerrors.ErrBlacklistUnavailable
	}

	srv.log(ctx).Info("Token revoked", slog.String("subject", claims.Subject))

	return nil
}
