package auth_test

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/Kotarao21/Smart-Pg-Management-System/internal/common/database"
	"github.com/Kotarao21/Smart-Pg-Management-System/internal/common/errors"
	"github.com/Kotarao21/Smart-Pg-Management-System/internal/common/jwt"
	"github.com/Kotarao21/Smart-Pg-Management-System/internal/models"
	"github.com/Kotarao21/Smart-Pg-Management-System/internal/repository"
	"github.com/Kotarao21/Smart-Pg-Management-System/internal/service/auth"
)

func setupAuthTestDB(t *testing.T) *gorm.DB {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)

	require.NoError(t, database.Migrate(db))
	return db
}

func setupTestAuthService(t *testing.T) (*auth.AuthService, *gorm.DB, *miniredis.Miniredis) {
	db := setupAuthTestDB(t)

	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	jwtManager := jwt.NewManager(&jwt.Config{
		Secret:            "test-secret-key",
		AccessExpireTime:  time.Hour,
		RefreshExpireTime: 24 * time.Hour,
		Issuer:            "smart-pg-test",
	})

	svc := auth.NewAuthService(
		db,
		repository.NewUserRepository(db),
		jwtManager,
		auth.NewTokenStore(rdb),
	)
	return svc, db, mr
}

func registerTestUser(t *testing.T, svc *auth.AuthService) *auth.UserInfo {
	user, err := svc.Register(context.Background(), &auth.RegisterRequest{
		Name:     "Asha Verma",
		Email:    "asha@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)
	return user
}

func TestRegister_Success(t *testing.T) {
	svc, _, _ := setupTestAuthService(t)

	user := registerTestUser(t, svc)
	assert.NotZero(t, user.ID)
	assert.Equal(t, "asha@example.com", user.Email)
	assert.Equal(t, models.RoleManager, user.Role)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	svc, _, _ := setupTestAuthService(t)

	registerTestUser(t, svc)

	_, err := svc.Register(context.Background(), &auth.RegisterRequest{
		Name:     "Other",
		Email:    "asha@example.com",
		Password: "secret456",
	})
	assert.ErrorIs(t, err, errors.ErrEmailExists)
}

func TestRegister_InvalidEmail(t *testing.T) {
	svc, _, _ := setupTestAuthService(t)

	_, err := svc.Register(context.Background(), &auth.RegisterRequest{
		Name:     "Asha Verma",
		Email:    "not-an-email",
		Password: "secret123",
	})
	require.Error(t, err)
	assert.Equal(t, errors.ErrInvalidParams.Code, errors.GetAppError(err).Code)
}

func TestRegister_OwnerRoleNotSelfClaimable(t *testing.T) {
	svc, _, _ := setupTestAuthService(t)

	user, err := svc.Register(context.Background(), &auth.RegisterRequest{
		Name:     "Impostor",
		Email:    "impostor@example.com",
		Password: "secret123",
		Role:     models.RoleOwner,
	})
	require.NoError(t, err)
	assert.Equal(t, models.RoleManager, user.Role)
}

func TestLogin_Success(t *testing.T) {
	svc, _, _ := setupTestAuthService(t)
	registerTestUser(t, svc)

	resp, err := svc.Login(context.Background(), &auth.LoginRequest{
		Email:    "asha@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.TokenPair.AccessToken)
	assert.NotEmpty(t, resp.TokenPair.RefreshToken)
	assert.Equal(t, "asha@example.com", resp.User.Email)
}

func TestLogin_WrongPassword(t *testing.T) {
	svc, _, _ := setupTestAuthService(t)
	registerTestUser(t, svc)

	_, err := svc.Login(context.Background(), &auth.LoginRequest{
		Email:    "asha@example.com",
		Password: "wrong",
	})
	assert.ErrorIs(t, err, errors.ErrInvalidCredentials)
}

func TestLogin_UnknownEmail(t *testing.T) {
	svc, _, _ := setupTestAuthService(t)

	_, err := svc.Login(context.Background(), &auth.LoginRequest{
		Email:    "nobody@example.com",
		Password: "secret123",
	})
	assert.ErrorIs(t, err, errors.ErrInvalidCredentials)
}

func TestRefresh_RotatesToken(t *testing.T) {
	svc, _, _ := setupTestAuthService(t)
	registerTestUser(t, svc)
	ctx := context.Background()

	resp, err := svc.Login(ctx, &auth.LoginRequest{
		Email:    "asha@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)

	pair, err := svc.Refresh(ctx, &auth.RefreshRequest{
		RefreshToken: resp.TokenPair.RefreshToken,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, pair.AccessToken)

	// The consumed refresh token is revoked.
	_, err = svc.Refresh(ctx, &auth.RefreshRequest{
		RefreshToken: resp.TokenPair.RefreshToken,
	})
	assert.ErrorIs(t, err, errors.ErrTokenRevoked)
}

func TestLogout_RevokesRefreshToken(t *testing.T) {
	svc, _, _ := setupTestAuthService(t)
	registerTestUser(t, svc)
	ctx := context.Background()

	resp, err := svc.Login(ctx, &auth.LoginRequest{
		Email:    "asha@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)

	require.NoError(t, svc.Logout(ctx, resp.TokenPair.RefreshToken))

	_, err = svc.Refresh(ctx, &auth.RefreshRequest{
		RefreshToken: resp.TokenPair.RefreshToken,
	})
	assert.ErrorIs(t, err, errors.ErrTokenRevoked)
}

func TestRefresh_InvalidToken(t *testing.T) {
	svc, _, _ := setupTestAuthService(t)

	_, err := svc.Refresh(context.Background(), &auth.RefreshRequest{
		RefreshToken: "garbage",
	})
	assert.ErrorIs(t, err, errors.ErrTokenInvalid)
}

func TestGetProfile(t *testing.T) {
	svc, _, _ := setupTestAuthService(t)
	registered := registerTestUser(t, svc)

	profile, err := svc.GetProfile(context.Background(), registered.ID)
	require.NoError(t, err)
	assert.Equal(t, registered.Email, profile.Email)

	_, err = svc.GetProfile(context.Background(), 9999)
	assert.ErrorIs(t, err, errors.ErrUserNotFound)
}

func TestChangePassword(t *testing.T) {
	svc, _, _ := setupTestAuthService(t)
	registered := registerTestUser(t, svc)
	ctx := context.Background()

	err := svc.ChangePassword(ctx, registered.ID, &auth.ChangePasswordRequest{
		OldPassword: "wrong",
		NewPassword: "newsecret",
	})
	assert.ErrorIs(t, err, errors.ErrPasswordMismatch)

	err = svc.ChangePassword(ctx, registered.ID, &auth.ChangePasswordRequest{
		OldPassword: "secret123",
		NewPassword: "newsecret",
	})
	require.NoError(t, err)

	_, err = svc.Login(ctx, &auth.LoginRequest{
		Email:    "asha@example.com",
		Password: "newsecret",
	})
	assert.NoError(t, err)
}
