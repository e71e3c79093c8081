package impl

import (
	"context"
	"strings"
	"testing"
	"time"

	"organizer/internal/domain/entity"
	domainerrors "organizer/internal/domain/errors"
	"organizer/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type userServiceFixture struct {
	userRepo    *fakeUserRepo
	tokens      *fakeTokenService
	emailSender *fakeEmailSender
	storage     *fakeAvatarStorage
	service     usecase.UserUsecase
}

func newUserServiceFixture(userRepo *fakeUserRepo, tokens *fakeTokenService) *userServiceFixture {
	fixture := &userServiceFixture{
		userRepo:    userRepo,
		tokens:      tokens,
		emailSender: newFakeEmailSender(),
		storage:     &fakeAvatarStorage{},
	}

	fixture.service = NewUserService(UserServiceParams{
		UserRepo:      userRepo,
		TokenService:  tokens,
		EmailSender:   fixture.emailSender,
		AvatarStorage: fixture.storage,
		Logger:        newDiscardLogger(),
	})

	return fixture
}

func TestUserService_ConfirmEmail_Success(t *testing.T) {
	user := confirmedUser()
	user.EmailConfirmed = false
	confirmed := false

	f := newUserServiceFixture(
		&fakeUserRepo{
			findByEmail: func(_ context.Context, email string) (*entity.User, error) {
				require.Equal(t, user.Email, email)

				return user, nil
			},
			confirmEmail: func(_ context.Context, email string) error {
				confirmed = true

				return nil
			},
		},
		&fakeTokenService{parseEmail: func(token string) (string, error) {
			require.Equal(t, "valid-token", token)

			return user.Email, nil
		}},
	)

	message, err := f.service.ConfirmEmail(context.Background(), "valid-token")

	require.NoError(t, err)
	assert.Equal(t, "Email confirmed", message)
	assert.True(t, confirmed)
}

// Replaying the token after confirmation is tolerated.
func TestUserService_ConfirmEmail_AlreadyConfirmed(t *testing.T) {
	user := confirmedUser()
	f := newUserServiceFixture(
		&fakeUserRepo{
			findByEmail: func(context.Context, string) (*entity.User, error) { return user, nil },
			confirmEmail: func(context.Context, string) error {
				t.Fatal("confirm should not be called for an already confirmed account")

				return nil
			},
		},
		&fakeTokenService{parseEmail: func(string) (string, error) { return user.Email, nil }},
	)

	message, err := f.service.ConfirmEmail(context.Background(), "valid-token")

	require.NoError(t, err)
	assert.Equal(t, "Your email is already confirmed", message)
}

func TestUserService_ConfirmEmail_BadToken(t *testing.T) {
	f := newUserServiceFixture(&fakeUserRepo{}, &fakeTokenService{})

	_, err := f.service.ConfirmEmail(context.Background(), "garbage")

	assert.ErrorIs(t, err, domainerrors.ErrEmailTokenInvalid)
}

func TestUserService_ConfirmEmail_UnknownUser(t *testing.T) {
	f := newUserServiceFixture(
		&fakeUserRepo{},
		&fakeTokenService{parseEmail: func(string) (string, error) { return "gone@example.com", nil }},
	)

	_, err := f.service.ConfirmEmail(context.Background(), "valid-token")

	assert.ErrorIs(t, err, domainerrors.ErrVerificationFailed)
}

func TestUserService_ResendConfirmation_SendsEmail(t *testing.T) {
	user := confirmedUser()
	user.EmailConfirmed = false
	f := newUserServiceFixture(
		&fakeUserRepo{findByEmail: func(context.Context, string) (*entity.User, error) { return user, nil }},
		&fakeTokenService{generateEmail: func(string) (string, error) { return "fresh-token", nil }},
	)

	message, err := f.service.ResendConfirmation(context.Background(), usecase.ResendConfirmationInput{
		Email:          user.Email,
		ConfirmBaseURL: "https://api.example.com",
	})

	require.NoError(t, err)
	assert.Equal(t, "Check your email for confirmation.", message)

	select {
	case sent := <-f.emailSender.sent:
		assert.True(t, strings.HasSuffix(sent, "/api/v1/users/confirmed_email/fresh-token"))
	case <-time.After(time.Second):
		t.Fatal("confirmation email was not sent")
	}
}

// The reply for an unknown address matches the known-address reply.
func TestUserService_ResendConfirmation_UnknownAddressNeutral(t *testing.T) {
	f := newUserServiceFixture(&fakeUserRepo{}, &fakeTokenService{})

	message, err := f.service.ResendConfirmation(context.Background(), usecase.ResendConfirmationInput{
		Email: "nobody@example.com",
	})

	require.NoError(t, err)
	assert.Equal(t, "Check your email for confirmation.", message)
	assert.Empty(t, f.emailSender.sent)
}

func TestUserService_ResendConfirmation_AlreadyConfirmed(t *testing.T) {
	user := confirmedUser()
	f := newUserServiceFixture(
		&fakeUserRepo{findByEmail: func(context.Context, string) (*entity.User, error) { return user, nil }},
		&fakeTokenService{},
	)

	message, err := f.service.ResendConfirmation(context.Background(), usecase.ResendConfirmationInput{
		Email: user.Email,
	})

	require.NoError(t, err)
	assert.Equal(t, "Your email is already confirmed", message)
	assert.Empty(t, f.emailSender.sent)
}

func TestUserService_UpdateAvatar_Success(t *testing.T) {
	user := confirmedUser()
	f := newUserServiceFixture(
		&fakeUserRepo{updateAvatar: func(_ context.Context, email, url string) (*entity.User, error) {
			require.Equal(t, user.Email, email)
			require.Equal(t, "https://storage.example.com/avatars/walter", url)
			updated := *user
			updated.Avatar = &url

			return &updated, nil
		}},
		&fakeTokenService{},
	)

	updated, err := f.service.UpdateAvatar(context.Background(), usecase.UpdateAvatarInput{
		Email:       user.Email,
		Username:    user.Username,
		ContentType: "image/png",
		Body:        strings.NewReader("not-really-a-png"),
	})

	require.NoError(t, err)
	require.NotNil(t, updated.Avatar)
	assert.Equal(t, "https://storage.example.com/avatars/walter", *updated.Avatar)
	assert.Equal(t, "walter", f.storage.uploaded)
}

func TestUserService_UpdateAvatar_UploadFailure(t *testing.T) {
	f := newUserServiceFixture(&fakeUserRepo{}, &fakeTokenService{})
	f.storage.err = assert.AnError

	_, err := f.service.UpdateAvatar(context.Background(), usecase.UpdateAvatarInput{
		Email:    "walter@example.com",
		Username: "walter",
		Body:     strings.NewReader(""),
	})

	assert.ErrorIs(t, err, domainerrors.ErrUserUpdateFailed)
}
