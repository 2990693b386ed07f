package tenant_test

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/Kotarao21/Smart-Pg-Management-System/internal/common/crypto"
	"github.com/Kotarao21/Smart-Pg-Management-System/internal/common/database"
	"github.com/Kotarao21/Smart-Pg-Management-System/internal/common/errors"
	"github.com/Kotarao21/Smart-Pg-Management-System/internal/models"
	"github.com/Kotarao21/Smart-Pg-Management-System/internal/repository"
	"github.com/Kotarao21/Smart-Pg-Management-System/internal/service/tenant"
)

const testAESKey = "0123456789abcdef"

func setupTenantTestDB(t *testing.T) *gorm.DB {
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

func createTestTenantService(t *testing.T, db *gorm.DB) *tenant.TenantService {
	aes, err := crypto.NewAES(testAESKey)
	require.NoError(t, err)
	return tenant.NewTenantService(db, repository.NewTenantRepository(db), aes)
}

func strPtr(s string) *string { return &s }

func TestCreateTenant_EncryptsIDNumber(t *testing.T) {
	db := setupTenantTestDB(t)
	svc := createTestTenantService(t, db)

	info, err := svc.Create(context.Background(), &tenant.CreateTenantRequest{
		Name:     "Ravi Kumar",
		Phone:    "9876543210",
		IDType:   strPtr("Aadhaar"),
		IDNumber: strPtr("123412341234"),
	})
	require.NoError(t, err)
	assert.NotZero(t, info.ID)

	// The raw number never reaches the row.
	var row models.Tenant
	require.NoError(t, db.First(&row, info.ID).Error)
	require.NotNil(t, row.IDNumberEncrypted)
	assert.NotContains(t, *row.IDNumberEncrypted, "123412341234")

	// The response carries the masked form.
	require.NotNil(t, info.IDNumber)
	assert.Equal(t, "12********34", *info.IDNumber)
}

func TestCreateTenant_InvalidPhone(t *testing.T) {
	db := setupTenantTestDB(t)
	svc := createTestTenantService(t, db)

	_, err := svc.Create(context.Background(), &tenant.CreateTenantRequest{
		Name:  "Ravi Kumar",
		Phone: "12345",
	})
	require.Error(t, err)
	assert.Equal(t, errors.ErrInvalidParams.Code, errors.GetAppError(err).Code)
}

func TestCreateTenant_InvalidEmail(t *testing.T) {
	db := setupTenantTestDB(t)
	svc := createTestTenantService(t, db)

	_, err := svc.Create(context.Background(), &tenant.CreateTenantRequest{
		Name:  "Ravi Kumar",
		Phone: "9876543210",
		Email: strPtr("broken"),
	})
	require.Error(t, err)
	assert.Equal(t, errors.ErrInvalidParams.Code, errors.GetAppError(err).Code)
}

func TestGetTenant_NotFound(t *testing.T) {
	db := setupTenantTestDB(t)
	svc := createTestTenantService(t, db)

	_, err := svc.Get(context.Background(), 9999)
	assert.ErrorIs(t, err, errors.ErrTenantNotFound)
}

func TestListTenants_MasksIDNumbers(t *testing.T) {
	db := setupTenantTestDB(t)
	svc := createTestTenantService(t, db)
	ctx := context.Background()

	_, err := svc.Create(ctx, &tenant.CreateTenantRequest{
		Name:     "Ravi Kumar",
		Phone:    "9876543210",
		IDNumber: strPtr("ABCD1234"),
	})
	require.NoError(t, err)
	_, err = svc.Create(ctx, &tenant.CreateTenantRequest{
		Name:  "Meena Iyer",
		Phone: "9876500000",
	})
	require.NoError(t, err)

	tenants, total, err := svc.List(ctx, 1, 20)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	require.Len(t, tenants, 2)

	for _, info := range tenants {
		if info.IDNumber != nil {
			assert.Contains(t, *info.IDNumber, "*")
		}
	}
}
