package impl

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"time"

	"organizer/internal/domain/entity"
	"organizer/internal/domain/repository"
	"organizer/internal/domain/service"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// --- repository fakes ---

type fakeUserRepo struct {
	findByID       func(ctx context.Context, id int64) (*entity.User, error)
	findByUsername func(ctx context.Context, username string) (*entity.User, error)
	findByEmail    func(ctx context.Context, email string) (*entity.User, error)
	create         func(ctx context.Context, user *entity.User) error
	confirmEmail   func(ctx context.Context, email string) error
	updateAvatar   func(ctx context.Context, email, url string) (*entity.User, error)
}

func (f *fakeUserRepo) FindByID(ctx context.Context, id int64) (*entity.User, error) {
	if f.findByID == nil {
		return nil, repository.ErrUserNotFound
	}

	return f.findByID(ctx, id)
}

func (f *fakeUserRepo) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	if f.findByUsername == nil {
		return nil, repository.ErrUserNotFound
	}

	return f.findByUsername(ctx, username)
}

func (f *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	if f.findByEmail == nil {
		return nil, repository.ErrUserNotFound
	}

	return f.findByEmail(ctx, email)
}

func (f *fakeUserRepo) Create(ctx context.Context, user *entity.User) error {
	if f.create == nil {
		user.ID = 1

		return nil
	}

	return f.create(ctx, user)
}

func (f *fakeUserRepo) ConfirmEmail(ctx context.Context, email string) error {
	if f.confirmEmail == nil {
		return nil
	}

	return f.confirmEmail(ctx, email)
}

func (f *fakeUserRepo) UpdateAvatar(ctx context.Context, email, url string) (*entity.User, error) {
	if f.updateAvatar == nil {
		return nil, repository.ErrUserNotFound
	}

	return f.updateAvatar(ctx, email, url)
}

type fakeContactRepo struct {
	list              func(ctx context.Context, userID int64, filter repository.ContactFilter) ([]*entity.Contact, error)
	findByID          func(ctx context.Context, userID, contactID int64) (*entity.Contact, error)
	create            func(ctx context.Context, contact *entity.Contact) error
	update            func(ctx context.Context, contact *entity.Contact) error
	delete            func(ctx context.Context, userID, contactID int64) error
	upcomingBirthdays func(ctx context.Context, userID int64, days, limit, offset int) ([]*entity.Contact, error)
}

func (f *fakeContactRepo) List(ctx context.Context, userID int64, filter repository.ContactFilter) ([]*entity.Contact, error) {
	return f.list(ctx, userID, filter)
}

func (f *fakeContactRepo) FindByID(ctx context.Context, userID, contactID int64) (*entity.Contact, error) {
	if f.findByID == nil {
		return nil, repository.ErrContactNotFound
	}

	return f.findByID(ctx, userID, contactID)
}

func (f *fakeContactRepo) Create(ctx context.Context, contact *entity.Contact) error {
	return f.create(ctx, contact)
}

func (f *fakeContactRepo) Update(ctx context.Context, contact *entity.Contact) error {
	return f.update(ctx, contact)
}

func (f *fakeContactRepo) Delete(ctx context.Context, userID, contactID int64) error {
	return f.delete(ctx, userID, contactID)
}

func (f *fakeContactRepo) UpcomingBirthdays(ctx context.Context, userID int64, days, limit, offset int) ([]*entity.Contact, error) {
	return f.upcomingBirthdays(ctx, userID, days, limit, offset)
}

// fakeTxManager runs the callback immediately against a fixed factory, with
// no transactional behavior.
type fakeTxManager struct {
	userRepo    repository.UserRepository
	contactRepo repository.ContactRepository
}

func (f *fakeTxManager) Execute(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
	return fn(f)
}

func (f *fakeTxManager) NewUserRepository() repository.UserRepository {
	return f.userRepo
}

func (f *fakeTxManager) NewContactRepository() repository.ContactRepository {
	return f.contactRepo
}

// --- service fakes ---

// fakeHasher hashes by prefixing, which keeps assertions readable.
type fakeHasher struct {
	check func(password, hash string) bool
}

func (*fakeHasher) Hash(password string) (string, error) {
	return "hashed:" + password, nil
}

func (f *fakeHasher) Check(password, hash string) bool {
	if f.check == nil {
		return hash == "hashed:"+password
	}

	return f.check(password, hash)
}

type fakeTokenService struct {
	generateAccess func(userID int64) (string, error)
	parseAccess    func(tokenString string) (*service.TokenClaims, error)
	generateEmail  func(email string) (string, error)
	parseEmail     func(tokenString string) (string, error)
}

func (f *fakeTokenService) GenerateAccessToken(userID int64) (string, error) {
	if f.generateAccess == nil {
		return "access-token", nil
	}

	return f.generateAccess(userID)
}

func (f *fakeTokenService) ParseAccessToken(tokenString string) (*service.TokenClaims, error) {
	if f.parseAccess == nil {
		return nil, service.ErrInvalidToken
	}

	return f.parseAccess(tokenString)
}

func (f *fakeTokenService) GenerateEmailToken(email string) (string, error) {
	if f.generateEmail == nil {
		return "email-token", nil
	}

	return f.generateEmail(email)
}

func (f *fakeTokenService) ParseEmailToken(tokenString string) (string, error) {
	if f.parseEmail == nil {
		return "", service.ErrInvalidToken
	}

	return f.parseEmail(tokenString)
}

type fakeBlacklist struct {
	revoked     map[string]time.Duration
	unavailable bool
}

func newFakeBlacklist() *fakeBlacklist {
	return &fakeBlacklist{revoked: make(map[string]time.Duration)}
}

func (f *fakeBlacklist) Revoke(_ context.Context, token string, ttl time.Duration) error {
	if f.unavailable {
		return service.ErrBlacklistUnavailable
	}
	if ttl <= 0 {
		return nil
	}
	f.revoked[token] = ttl

	return nil
}

func (f *fakeBlacklist) IsRevoked(_ context.Context, token string) (bool, error) {
	if f.unavailable {
		return false, service.ErrBlacklistUnavailable
	}
	_, ok := f.revoked[token]

	return ok, nil
}

type fakeAvatarProvider struct {
	err error
}

func (f *fakeAvatarProvider) Generate(email string) (string, error) {
	if f.err != nil {
		return "", f.err
	}

	return "https://avatars.example.com/" + strings.ToLower(email), nil
}

// fakeEmailSender signals each delivery on a channel so tests can wait for
// the background send.
type fakeEmailSender struct {
	sent chan string
	err  error
}

func newFakeEmailSender() *fakeEmailSender {
	return &fakeEmailSender{sent: make(chan string, 4)}
}

func (f *fakeEmailSender) SendConfirmation(_ context.Context, to, _, confirmURL string) error {
	f.sent <- to + " " + confirmURL

	return f.err
}

type fakeAvatarStorage struct {
	uploaded string
	err      error
}

func (f *fakeAvatarStorage) Upload(_ context.Context, username, _ string, _ io.Reader) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.uploaded = username

	return "https://storage.example.com/avatars/" + username, nil
}
