package service

import (
	"context"
	"testing"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/piadesu/attn-store/internal/account/domain"
	"github.com/piadesu/attn-store/internal/account/repository"
	"github.com/piadesu/attn-store/internal/config"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestService(t *testing.T, cfg config.Config) domain.Service {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&domain.Account{}, &domain.Session{}))

	node, err := snowflake.NewNode(1)
	require.NoError(t, err)

	return New(Params{
		Config:   cfg,
		DB:       db,
		Log:      zap.NewNop(),
		GenID:    node,
		Repo:     repository.Provide(),
		Sessions: repository.ProvideSession(),
	})
}

func signup(t *testing.T, svc domain.Service, username string) *domain.Profile {
	t.Helper()
	profile, err := svc.Signup(context.Background(), domain.SignupRequest{
		Username:  username,
		Password:  "correct horse",
		FirstName: "Maria",
		LastName:  "Cruz",
	})
	require.NoError(t, err)
	return profile
}

func TestSignupAndLogin(t *testing.T) {
	svc := newTestService(t, config.Config{SessionTTLHours: 24})
	ctx := context.Background()

	dob := "1995-06-15"
	profile, err := svc.Signup(ctx, domain.SignupRequest{
		Username:    "  Owner  ",
		Password:    "correct horse",
		FirstName:   "Maria",
		LastName:    "Cruz",
		DateOfBirth: &dob,
	})
	require.NoError(t, err)
	require.Equal(t, "owner", profile.Username)
	require.NotNil(t, profile.DateOfBirth)

	result, err := svc.Login(ctx, domain.LoginRequest{Username: "OWNER", Password: "correct horse"})
	require.NoError(t, err)
	require.NotEmpty(t, result.RawToken)
	require.True(t, result.ExpiresAt.After(time.Now()))

	account, err := svc.Authenticate(ctx, result.RawToken)
	require.NoError(t, err)
	require.Equal(t, "owner", account.Username)
}

func TestSignupValidation(t *testing.T) {
	svc := newTestService(t, config.Config{})
	ctx := context.Background()

	badDate := "15/06/1995"
	cases := []struct {
		name string
		req  domain.SignupRequest
		want error
	}{
		{"empty username", domain.SignupRequest{Password: "correct horse", FirstName: "Maria", LastName: "Cruz"}, domain.ErrInvalidUsername},
		{"short password", domain.SignupRequest{Username: "owner", Password: "short", FirstName: "Maria", LastName: "Cruz"}, domain.ErrInvalidPassword},
		{"missing last name", domain.SignupRequest{Username: "owner", Password: "correct horse", FirstName: "Maria"}, domain.ErrInvalidName},
		{"bad date", domain.SignupRequest{Username: "owner", Password: "correct horse", FirstName: "Maria", LastName: "Cruz", DateOfBirth: &badDate}, domain.ErrInvalidDate},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Signup(ctx, tc.req)
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestSignupDuplicateUsername(t *testing.T) {
	svc := newTestService(t, config.Config{})
	signup(t, svc, "owner")

	_, err := svc.Signup(context.Background(), domain.SignupRequest{
		Username:  "Owner",
		Password:  "another pass",
		FirstName: "Juan",
		LastName:  "Reyes",
	})
	require.ErrorIs(t, err, domain.ErrUsernameTaken)
}

func TestSignupSingleAccountLimit(t *testing.T) {
	svc := newTestService(t, config.Config{SingleAccount: true})
	signup(t, svc, "owner")

	_, err := svc.Signup(context.Background(), domain.SignupRequest{
		Username:  "second",
		Password:  "correct horse",
		FirstName: "Juan",
		LastName:  "Reyes",
	})
	require.ErrorIs(t, err, domain.ErrAccountLimit)
}

func TestLoginFailureIsGeneric(t *testing.T) {
	svc := newTestService(t, config.Config{})
	signup(t, svc, "owner")
	ctx := context.Background()

	_, unknownErr := svc.Login(ctx, domain.LoginRequest{Username: "nobody", Password: "correct horse"})
	_, wrongErr := svc.Login(ctx, domain.LoginRequest{Username: "owner", Password: "wrong password"})

	require.ErrorIs(t, unknownErr, domain.ErrInvalidCredentials)
	require.ErrorIs(t, wrongErr, domain.ErrInvalidCredentials)
}

func TestLogoutRevokesSession(t *testing.T) {
	svc := newTestService(t, config.Config{})
	signup(t, svc, "owner")
	ctx := context.Background()

	result, err := svc.Login(ctx, domain.LoginRequest{Username: "owner", Password: "correct horse"})
	require.NoError(t, err)

	require.NoError(t, svc.Logout(ctx, result.RawToken))

	_, err = svc.Authenticate(ctx, result.RawToken)
	require.ErrorIs(t, err, domain.ErrSessionRevoked)
}

func TestAuthenticateRejectsGarbageToken(t *testing.T) {
	svc := newTestService(t, config.Config{})

	_, err := svc.Authenticate(context.Background(), "not-a-real-token")
	require.ErrorIs(t, err, domain.ErrInvalidSession)
}

func TestUpdateProfileChangesPassword(t *testing.T) {
	svc := newTestService(t, config.Config{})
	signup(t, svc, "owner")
	ctx := context.Background()

	newPass := "fresh password"
	middle := "Santos"
	profile, err := svc.UpdateProfile(ctx, domain.UpdateProfileRequest{
		Username:   "owner",
		MiddleName: &middle,
		Password:   &newPass,
	})
	require.NoError(t, err)
	require.NotNil(t, profile.MiddleName)
	require.Equal(t, "Santos", *profile.MiddleName)

	_, err = svc.Login(ctx, domain.LoginRequest{Username: "owner", Password: "correct horse"})
	require.ErrorIs(t, err, domain.ErrInvalidCredentials)

	result, err := svc.Login(ctx, domain.LoginRequest{Username: "owner", Password: newPass})
	require.NoError(t, err)
	require.NotEmpty(t, result.RawToken)
}

func TestGetProfileNotFound(t *testing.T) {
	svc := newTestService(t, config.Config{})

	_, err := svc.GetProfile(context.Background(), "ghost")
	require.ErrorIs(t, err, domain.ErrNotFound)
}
