package service

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/wilove/vaulten-sync-service/internal/dao"
	"github.com/wilove/vaulten-sync-service/internal/dto"
	"github.com/wilove/vaulten-sync-service/pkg/app"
	"github.com/wilove/vaulten-sync-service/pkg/code"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestUserService(t *testing.T) UserService {
	t.Helper()
	return newTestUserServiceWithConfig(t, &ServiceConfig{
		User: UserConfig{RegisterIsEnable: true},
	})
}

func newTestUserServiceWithConfig(t *testing.T, cfg *ServiceConfig) UserService {
	t.Helper()

	db, err := dao.NewDBEngineWithConfig(dao.DatabaseConfig{
		Type: "sqlite",
		Path: filepath.Join(t.TempDir(), "user_test.db"),
	})
	require.NoError(t, err)

	repo := dao.NewUserRepository(dao.New(db, zap.NewNop()))
	tm := app.NewTokenManager(app.TokenConfig{SecretKey: "test-secret", Expiry: time.Hour})
	return NewUserService(repo, tm, zap.NewNop(), cfg)
}

func registerReq(email, username string) *dto.UserCreateRequest {
	return &dto.UserCreateRequest{
		Email:           email,
		Username:        username,
		Password:        "password123",
		ConfirmPassword: "password123",
	}
}

func TestUserService_RegisterAndLogin(t *testing.T) {
	svc := newTestUserService(t)
	ctx := context.Background()

	user, err := svc.Register(ctx, registerReq("alice@example.com", "alice"))
	require.NoError(t, err)
	assert.NotZero(t, user.UID)
	assert.NotEmpty(t, user.Token)

	// login by username
	byName, err := svc.Login(ctx, &dto.UserLoginRequest{
		Credentials: "alice",
		Password:    "password123",
	}, "127.0.0.1")
	require.NoError(t, err)
	assert.Equal(t, user.UID, byName.UID)
	assert.NotEmpty(t, byName.Token)

	// login by email
	byEmail, err := svc.Login(ctx, &dto.UserLoginRequest{
		Credentials: "alice@example.com",
		Password:    "password123",
	}, "127.0.0.1")
	require.NoError(t, err)
	assert.Equal(t, user.UID, byEmail.UID)
}

func TestUserService_RegisterDisabled(t *testing.T) {
	svc := newTestUserServiceWithConfig(t, &ServiceConfig{
		User: UserConfig{RegisterIsEnable: false},
	})

	_, err := svc.Register(context.Background(), registerReq("bob@example.com", "bob"))
	assert.ErrorIs(t, err, code.ErrorUserRegisterIsDisable)
}

func TestUserService_RegisterDuplicates(t *testing.T) {
	svc := newTestUserService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, registerReq("carol@example.com", "carol"))
	require.NoError(t, err)

	_, err = svc.Register(ctx, registerReq("carol@example.com", "carol2"))
	assert.ErrorIs(t, err, code.ErrorUserEmailAlreadyExists)

	_, err = svc.Register(ctx, registerReq("carol2@example.com", "carol"))
	assert.ErrorIs(t, err, code.ErrorUserAlreadyExists)
}

func TestUserService_RegisterPasswordMismatch(t *testing.T) {
	svc := newTestUserService(t)

	_, err := svc.Register(context.Background(), &dto.UserCreateRequest{
		Email:           "dave@example.com",
		Username:        "dave",
		Password:        "password123",
		ConfirmPassword: "password456",
	})
	assert.ErrorIs(t, err, code.ErrorUserPasswordNotMatch)
}

func TestUserService_LoginUniformFailure(t *testing.T) {
	svc := newTestUserService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, registerReq("erin@example.com", "erin"))
	require.NoError(t, err)

	// unknown user and wrong password yield the same error
	// 未知用户与密码错误返回相同错误
	_, err = svc.Login(ctx, &dto.UserLoginRequest{Credentials: "nobody", Password: "x"}, "")
	assert.ErrorIs(t, err, code.ErrorUserLoginPasswordFailed)

	_, err = svc.Login(ctx, &dto.UserLoginRequest{Credentials: "erin", Password: "wrong"}, "")
	assert.ErrorIs(t, err, code.ErrorUserLoginPasswordFailed)
}

func TestUserService_ChangePassword(t *testing.T) {
	svc := newTestUserService(t)
	ctx := context.Background()

	user, err := svc.Register(ctx, registerReq("frank@example.com", "frank"))
	require.NoError(t, err)

	err = svc.ChangePassword(ctx, user.UID, &dto.UserChangePasswordRequest{
		OldPassword:     "wrong-old",
		Password:        "newpass123",
		ConfirmPassword: "newpass123",
	})
	assert.ErrorIs(t, err, code.ErrorUserOldPasswordFailed)

	err = svc.ChangePassword(ctx, user.UID, &dto.UserChangePasswordRequest{
		OldPassword:     "password123",
		Password:        "newpass123",
		ConfirmPassword: "newpass123",
	})
	require.NoError(t, err)

	_, err = svc.Login(ctx, &dto.UserLoginRequest{Credentials: "frank", Password: "newpass123"}, "")
	require.NoError(t, err)
}

func TestUserService_GetInfo(t *testing.T) {
	svc := newTestUserService(t)
	ctx := context.Background()

	user, err := svc.Register(ctx, registerReq("grace@example.com", "grace"))
	require.NoError(t, err)

	info, err := svc.GetInfo(ctx, user.UID)
	require.NoError(t, err)
	assert.Equal(t, "grace", info.Username)
	assert.Equal(t, "grace@example.com", info.Email)

	_, err = svc.GetInfo(ctx, 99999)
	assert.ErrorIs(t, err, code.ErrorUserNotFound)
}
