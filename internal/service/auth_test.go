package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stpnv0/CinemaDistrict/internal/domain"
	"github.com/stpnv0/CinemaDistrict/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
	"golang.org/x/crypto/bcrypt"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

type authDeps struct {
	users    *mocks.MockUserRepo
	tokens   *mocks.MockTokenIssuer
	notifier *mocks.MockNotifier
	svc      *AuthService
}

func newAuthService(t *testing.T) *authDeps {
	t.Helper()
	d := &authDeps{
		users:    mocks.NewMockUserRepo(t),
		tokens:   mocks.NewMockTokenIssuer(t),
		notifier: mocks.NewMockNotifier(t),
	}
	d.svc = NewAuthService(d.users, d.tokens, d.notifier, bcrypt.MinCost, newTestLogger(t))
	return d
}

func hashed(t *testing.T, password string) string {
	t.Helper()
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(h)
}

func waitFor(t *testing.T, done <-chan struct{}) {
	t.Helper()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("notification was not sent")
	}
}

func TestAuthService_Register_Success(t *testing.T) {
	d := newAuthService(t)

	var created *domain.User
	d.users.EXPECT().GetByEmail(mock.Anything, "ann@example.com").Return(nil, domain.ErrUserNotFound)
	d.users.EXPECT().Create(mock.Anything, mock.Anything).
		Run(func(_ context.Context, u *domain.User) { created = u }).
		Return(nil)
	d.tokens.EXPECT().Issue(mock.Anything, "ann@example.com").Return("tok", nil)

	notified := make(chan struct{})
	d.notifier.EXPECT().NotifyUserRegistered(mock.Anything, mock.Anything).
		Run(func(context.Context, *domain.User) { close(notified) }).
		Return()

	res, err := d.svc.Register(context.Background(), domain.RegisterInput{
		Name:     "  Ann ",
		Email:    "ann@example.com",
		Phone:    "123",
		Password: "pw123456",
	})

	require.NoError(t, err)
	waitFor(t, notified)

	assert.Equal(t, "tok", res.Token)
	assert.Equal(t, "Ann", res.User.Name)
	assert.NotEmpty(t, res.User.ID)
	assert.False(t, res.User.CreatedAt.IsZero())
	assert.Equal(t, res.User.CreatedAt, res.User.UpdatedAt)

	require.NotNil(t, created)
	assert.NotEqual(t, "pw123456", created.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(created.PasswordHash), []byte("pw123456")))
}

func TestAuthService_Register_MissingFields(t *testing.T) {
	d := newAuthService(t)

	cases := []domain.RegisterInput{
		{Email: "a@b.c", Password: "pw"},
		{Name: "Ann", Password: "pw"},
		{Name: "Ann", Email: "a@b.c"},
		{Name: "   ", Email: "a@b.c", Password: "pw"},
	}

	for _, in := range cases {
		_, err := d.svc.Register(context.Background(), in)
		assert.ErrorIs(t, err, domain.ErrValidation)
	}
}

func TestAuthService_Register_EmailTakenFastPath(t *testing.T) {
	d := newAuthService(t)

	d.users.EXPECT().GetByEmail(mock.Anything, "ann@example.com").Return(&domain.User{ID: "u0"}, nil)

	_, err := d.svc.Register(context.Background(), domain.RegisterInput{
		Name: "Ann", Email: "ann@example.com", Password: "pw",
	})

	assert.ErrorIs(t, err, domain.ErrEmailTaken)
}

func TestAuthService_Register_EmailTakenByConcurrentInsert(t *testing.T) {
	d := newAuthService(t)

	d.users.EXPECT().GetByEmail(mock.Anything, mock.Anything).Return(nil, domain.ErrUserNotFound)
	d.users.EXPECT().Create(mock.Anything, mock.Anything).Return(domain.ErrEmailTaken)

	_, err := d.svc.Register(context.Background(), domain.RegisterInput{
		Name: "Ann", Email: "ann@example.com", Password: "pw",
	})

	assert.ErrorIs(t, err, domain.ErrEmailTaken)
}

func TestAuthService_Register_PasswordTooLong(t *testing.T) {
	d := newAuthService(t)

	d.users.EXPECT().GetByEmail(mock.Anything, mock.Anything).Return(nil, domain.ErrUserNotFound)

	_, err := d.svc.Register(context.Background(), domain.RegisterInput{
		Name: "Ann", Email: "ann@example.com", Password: strings.Repeat("x", 80),
	})

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestAuthService_Register_LookupError(t *testing.T) {
	d := newAuthService(t)

	dbErr := errors.New("db down")
	d.users.EXPECT().GetByEmail(mock.Anything, mock.Anything).Return(nil, dbErr)

	_, err := d.svc.Register(context.Background(), domain.RegisterInput{
		Name: "Ann", Email: "ann@example.com", Password: "pw",
	})

	assert.ErrorIs(t, err, dbErr)
}

func TestAuthService_Login_Success(t *testing.T) {
	d := newAuthService(t)

	user := &domain.User{ID: "u1", Email: "ann@example.com", PasswordHash: hashed(t, "pw")}
	d.users.EXPECT().GetByEmail(mock.Anything, "ann@example.com").Return(user, nil)
	d.tokens.EXPECT().Issue("u1", "ann@example.com").Return("tok", nil)

	res, err := d.svc.Login(context.Background(), domain.LoginInput{Email: "ann@example.com", Password: "pw"})

	require.NoError(t, err)
	assert.Equal(t, "tok", res.Token)
	assert.Equal(t, "u1", res.User.ID)
}

func TestAuthService_Login_UniformFailure(t *testing.T) {
	d := newAuthService(t)

	user := &domain.User{ID: "u1", Email: "ann@example.com", PasswordHash: hashed(t, "pw")}
	d.users.EXPECT().GetByEmail(mock.Anything, "ann@example.com").Return(user, nil)
	d.users.EXPECT().GetByEmail(mock.Anything, "ghost@example.com").Return(nil, domain.ErrUserNotFound)

	_, wrongPw := d.svc.Login(context.Background(), domain.LoginInput{Email: "ann@example.com", Password: "nope"})
	_, unknown := d.svc.Login(context.Background(), domain.LoginInput{Email: "ghost@example.com", Password: "pw"})

	assert.ErrorIs(t, wrongPw, domain.ErrInvalidCredentials)
	assert.ErrorIs(t, unknown, domain.ErrInvalidCredentials)
	assert.Equal(t, wrongPw.Error(), unknown.Error())
}

func TestAuthService_Login_MissingFields(t *testing.T) {
	d := newAuthService(t)

	_, err := d.svc.Login(context.Background(), domain.LoginInput{Email: "ann@example.com"})

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestAuthService_Me_NotFound(t *testing.T) {
	d := newAuthService(t)

	d.users.EXPECT().GetByID(mock.Anything, "u1").Return(nil, domain.ErrUserNotFound)

	_, err := d.svc.Me(context.Background(), "u1")

	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestAuthService_UpdateProfile_TrimsName(t *testing.T) {
	d := newAuthService(t)

	phone := "555"
	d.users.EXPECT().UpdateProfile(mock.Anything, "u1", domain.ProfileUpdate{Name: "Annie", Phone: &phone}, mock.Anything).
		Return(&domain.User{ID: "u1", Name: "Annie", Phone: "555"}, nil)

	u, err := d.svc.UpdateProfile(context.Background(), "u1", domain.ProfileUpdate{Name: " Annie ", Phone: &phone})

	require.NoError(t, err)
	assert.Equal(t, "Annie", u.Name)
}

func TestAuthService_UpdateProfile_UserGone(t *testing.T) {
	d := newAuthService(t)

	d.users.EXPECT().UpdateProfile(mock.Anything, "u1", mock.Anything, mock.Anything).
		Return(nil, domain.ErrUserNotFound)

	_, err := d.svc.UpdateProfile(context.Background(), "u1", domain.ProfileUpdate{Name: "x"})

	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestAuthService_ChangePassword_Success(t *testing.T) {
	d := newAuthService(t)

	d.users.EXPECT().GetByID(mock.Anything, "u1").
		Return(&domain.User{ID: "u1", PasswordHash: hashed(t, "old")}, nil)

	var stored string
	d.users.EXPECT().UpdatePassword(mock.Anything, "u1", mock.Anything, mock.Anything).
		Run(func(_ context.Context, _ string, hash string, _ time.Time) { stored = hash }).
		Return(nil)

	err := d.svc.ChangePassword(context.Background(), "u1", domain.ChangePasswordInput{
		CurrentPassword: "old", NewPassword: "new",
	})

	require.NoError(t, err)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored), []byte("new")))
}

func TestAuthService_ChangePassword_WrongCurrent(t *testing.T) {
	d := newAuthService(t)

	d.users.EXPECT().GetByID(mock.Anything, "u1").
		Return(&domain.User{ID: "u1", PasswordHash: hashed(t, "old")}, nil)

	err := d.svc.ChangePassword(context.Background(), "u1", domain.ChangePasswordInput{
		CurrentPassword: "guess", NewPassword: "new",
	})

	assert.ErrorIs(t, err, domain.ErrWrongPassword)
}

func TestAuthService_ChangePassword_MissingFields(t *testing.T) {
	d := newAuthService(t)

	err := d.svc.ChangePassword(context.Background(), "u1", domain.ChangePasswordInput{CurrentPassword: "old"})

	assert.ErrorIs(t, err, domain.ErrValidation)
}
