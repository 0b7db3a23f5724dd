package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/pquerna/otp/totp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/showpass/showpass/internal/logger"
	"github.com/showpass/showpass/internal/mock"
	"github.com/showpass/showpass/internal/store"
	"github.com/showpass/showpass/models"
)

func newTestMFAService(t *testing.T, ctrl *gomock.Controller) (MFAService, *mock.MockUserRepository) {
	t.Helper()
	mockUsers := mock.NewMockUserRepository(ctrl)
	return NewMFAService(mockUsers, testAppConfig(), logger.Nop()), mockUsers
}

func TestMFAService_Enable_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockUsers := newTestMFAService(t, ctrl)
	ctx := context.Background()

	var storedSecret string
	mockUsers.EXPECT().SetTOTPSecret(ctx, "alice", gomock.Any()).DoAndReturn(
		func(_ context.Context, _ string, secret string) error {
			storedSecret = secret
			return nil
		},
	)

	resp, err := svc.Enable(ctx, models.User{Username: "alice"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Secret)
	assert.Equal(t, storedSecret, resp.Secret, "returned secret must be the persisted one")
	assert.True(t, strings.HasPrefix(resp.TOTPURI, "otpauth://totp/"))
	assert.Contains(t, resp.TOTPURI, "alice")
	assert.Contains(t, resp.TOTPURI, "showpass-test")
}

func TestMFAService_Enable_OverwritesPreviousSecret(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockUsers := newTestMFAService(t, ctrl)
	ctx := context.Background()

	secrets := make([]string, 0, 2)
	mockUsers.EXPECT().SetTOTPSecret(ctx, "alice", gomock.Any()).Times(2).DoAndReturn(
		func(_ context.Context, _ string, secret string) error {
			secrets = append(secrets, secret)
			return nil
		},
	)

	first, err := svc.Enable(ctx, models.User{Username: "alice"})
	require.NoError(t, err)
	second, err := svc.Enable(ctx, models.User{Username: "alice"})
	require.NoError(t, err)

	require.Len(t, secrets, 2)
	assert.NotEqual(t, first.Secret, second.Secret, "re-enabling must mint a fresh secret")
}

func TestMFAService_Enable_StoreFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockUsers := newTestMFAService(t, ctrl)
	ctx := context.Background()

	mockUsers.EXPECT().SetTOTPSecret(ctx, "ghost", gomock.Any()).Return(store.ErrNoUserWasFound)

	_, err := svc.Enable(ctx, models.User{Username: "ghost"})
	assert.ErrorIs(t, err, store.ErrNoUserWasFound)
}

func TestMFAService_Verify_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockUsers := newTestMFAService(t, ctrl)
	ctx := context.Background()

	key, err := totp.Generate(totp.GenerateOpts{Issuer: "showpass-test", AccountName: "alice"})
	require.NoError(t, err)

	code, err := totp.GenerateCode(key.Secret(), time.Now())
	require.NoError(t, err)

	mockUsers.EXPECT().FindUserByUsername(ctx, "alice").
		Return(models.User{Username: "alice", TOTPSecret: key.Secret()}, nil)

	assert.NoError(t, svc.Verify(ctx, "alice", code))
}

func TestMFAService_Verify_CodeMismatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockUsers := newTestMFAService(t, ctrl)
	ctx := context.Background()

	key, err := totp.Generate(totp.GenerateOpts{Issuer: "showpass-test", AccountName: "alice"})
	require.NoError(t, err)

	mockUsers.EXPECT().FindUserByUsername(ctx, "alice").
		Return(models.User{Username: "alice", TOTPSecret: key.Secret()}, nil)

	assert.ErrorIs(t, svc.Verify(ctx, "alice", "000000"), ErrMFACodeMismatch)
}

func TestMFAService_Verify_NotEnabled(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockUsers := newTestMFAService(t, ctrl)
	ctx := context.Background()

	mockUsers.EXPECT().FindUserByUsername(ctx, "alice").
		Return(models.User{Username: "alice"}, nil)

	assert.ErrorIs(t, svc.Verify(ctx, "alice", "123456"), ErrMFANotEnabled)
}

func TestMFAService_Verify_UnknownUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockUsers := newTestMFAService(t, ctrl)
	ctx := context.Background()

	mockUsers.EXPECT().FindUserByUsername(ctx, "ghost").Return(models.User{}, store.ErrNoUserWasFound)

	assert.ErrorIs(t, svc.Verify(ctx, "ghost", "123456"), store.ErrNoUserWasFound)
}
