package impl

import (
	"context"
	"log/slog"

	deliverycontext "organizer/internal/delivery/context"
	"organizer/internal/domain/entity"
	domainerrors "organizer/internal/domain/errors"
	"organizer/internal/domain/repository"
	"organizer/internal/domain/service"
	"organizer/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	msgEmailConfirmed        = "Email confirmed"
	msgEmailAlreadyConfirmed = "Your email is already confirmed"
	// msgCheckEmail is returned whether or not the address is registered,
	// so the endpoint cannot be used to probe for accounts.
	msgCheckEmail = "Check your email for confirmation."
)

// userService implements the UserUsecase interface.
type userService struct {
	userRepo      repository.UserRepository
	tokenService  service.TokenService
	emailSender   service.EmailSender
	avatarStorage service.AvatarStorage
	logger        *slog.Logger
}

// UserServiceParams holds dependencies for userService, injected by Fx.
type UserServiceParams struct {
	fx.In

	UserRepo      repository.UserRepository
	TokenService  service.TokenService
	EmailSender   service.EmailSender
	AvatarStorage service.AvatarStorage
	Logger        *slog.Logger
}

// NewUserService is the constructor for userService.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		userRepo:      params.UserRepo,
		tokenService:  params.TokenService,
		emailSender:   params.EmailSender,
		avatarStorage: params.AvatarStorage,
		logger:        params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ConfirmEmail consumes a confirmation token and flips the account's
// confirmed flag. Re-using the token after confirmation is tolerated and
// reported as already confirmed.
func (srv *userService) ConfirmEmail(ctx context.Context, token string) (string, error) {
	email, err := srv.tokenService.ParseEmailToken(token)
	if err != nil {
		return "", domainerrors.ErrEmailTokenInvalid
	}

	user, err := srv.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return "", domainerrors.ErrVerificationFailed
		}

		return "", errors.Wrap(err, "failed to look up user for confirmation")
	}

	if user.EmailConfirmed {
		return msgEmailAlreadyConfirmed, nil
	}

	if err := srv.userRepo.ConfirmEmail(ctx, email); err != nil {
		return "", errors.Wrap(err, "failed to confirm email")
	}

	srv.log(ctx).Info("Email confirmed", slog.Int64("userID", user.ID))

	return msgEmailConfirmed, nil
}

// ResendConfirmation sends a fresh confirmation email. The reply for an
// unknown address is the same as for a known one.
func (srv *userService) ResendConfirmation(ctx context.Context, input usecase.ResendConfirmationInput) (string, error) {
	user, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			srv.log(ctx).Info("Resend requested for unknown address", slog.String("email", input.Email))

			return msgCheckEmail, nil
		}

		return "", errors.Wrap(err, "failed to look up user for resend")
	}

	if user.EmailConfirmed {
		return msgEmailAlreadyConfirmed, nil
	}

	dispatchConfirmationEmail(srv.log(ctx), srv.tokenService, srv.emailSender, user, input.ConfirmBaseURL)

	return msgCheckEmail, nil
}

// UpdateAvatar uploads the image to object storage and stores the public URL
// on the account.
func (srv *userService) UpdateAvatar(ctx context.Context, input usecase.UpdateAvatarInput) (*entity.User, error) {
	avatarURL, err := srv.avatarStorage.Upload(ctx, input.Username, input.ContentType, input.Body)
	if err != nil {
		srv.log(ctx).Error("Failed to upload avatar",
			slog.String("username", input.Username), slog.Any("error", err))

		return nil, domainerrors.ErrUserUpdateFailed.WrapMessage("failed to upload avatar")
	}

	user, err := srv.userRepo.UpdateAvatar(ctx, input.Email, avatarURL)
	if err != nil {
		return nil, errors.Wrap(err, "failed to store avatar url")
	}

	srv.log(ctx).Info("Avatar updated", slog.Int64("userID", user.ID))

	return user, nil
}
