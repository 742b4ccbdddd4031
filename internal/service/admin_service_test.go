package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mtlprog/profilecheck/internal/domain"
	"github.com/mtlprog/profilecheck/internal/service"
)

func newAdminService(t *testing.T) (*service.AdminService, *fakeAdmins, *fakeSessions) {
	t.Helper()
	admins := newFakeAdmins()
	sessions := newFakeSessions()
	svc := service.NewAdminService(admins, sessions)
	require.NoError(t, svc.CreateAdmin(context.Background(), "admin", "s3cret"))
	return svc, admins, sessions
}

func TestAdminService_CreateAdmin_HashesPassword(t *testing.T) {
	_, admins, _ := newAdminService(t)

	admin, err := admins.GetByUsername(context.Background(), "admin")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret", admin.PasswordHash)
	assert.NotEmpty(t, admin.PasswordHash)
}

func TestAdminService_CreateAdmin_EmptyCredentials(t *testing.T) {
	svc, _, _ := newAdminService(t)
	assert.ErrorIs(t, svc.CreateAdmin(context.Background(), "", "x"), domain.ErrEmptyCredentials)
	assert.ErrorIs(t, svc.CreateAdmin(context.Background(), "x", ""), domain.ErrEmptyCredentials)
}

func TestAdminService_Login(t *testing.T) {
	testCases := []struct {
		name        string
		username    string
		password    string
		expectedErr error
	}{
		{name: "valid credentials", username: "admin", password: "s3cret"},
		{name: "wrong password", username: "admin", password: "nope", expectedErr: domain.ErrInvalidCredentials},
		{name: "unknown user", username: "root", password: "s3cret", expectedErr: domain.ErrInvalidCredentials},
		{name: "empty password", username: "admin", password: "", expectedErr: domain.ErrEmptyCredentials},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc, _, sessions := newAdminService(t)

			session, err := svc.Login(context.Background(), tc.username, tc.password)
			if tc.expectedErr != nil {
				assert.ErrorIs(t, err, tc.expectedErr)
				assert.Empty(t, sessions.sessions)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "admin", session.Username)
			assert.NotEmpty(t, session.Token)
			assert.Contains(t, sessions.sessions, session.Token)
		})
	}
}

func TestAdminService_AuthenticateAndLogout(t *testing.T) {
	svc, _, _ := newAdminService(t)
	ctx := context.Background()

	session, err := svc.Login(ctx, "admin", "s3cret")
	require.NoError(t, err)

	got, err := svc.Authenticate(ctx, session.Token)
	require.NoError(t, err)
	assert.Equal(t, "admin", got.Username)

	_, err = svc.Authenticate(ctx, "")
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)

	require.NoError(t, svc.Logout(ctx, session.Token))
	_, err = svc.Authenticate(ctx, session.Token)
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
}
