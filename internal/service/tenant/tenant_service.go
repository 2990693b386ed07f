// Package tenant manages the tenant registry. Identity-document numbers
// are encrypted at rest and only ever returned masked.
package tenant

import (
	"context"
	stderrors "errors"

	"gorm.io/gorm"

	"github.com/Kotarao21/Smart-Pg-Management-System/internal/common/crypto"
	"github.com/Kotarao21/Smart-Pg-Management-System/internal/common/errors"
	"github.com/Kotarao21/Smart-Pg-Management-System/internal/common/utils"
	"github.com/Kotarao21/Smart-Pg-Management-System/internal/models"
	"github.com/Kotarao21/Smart-Pg-Management-System/internal/repository"
)

// TenantService manages tenants.
type TenantService struct {
	db         *gorm.DB
	tenantRepo *repository.TenantRepository
	aes        *crypto.AES
}

// NewTenantService creates the tenant service.
func NewTenantService(db *gorm.DB, tenantRepo *repository.TenantRepository, aes *crypto.AES) *TenantService {
	return &TenantService{
		db:         db,
		tenantRepo: tenantRepo,
		aes:        aes,
	}
}

// CreateTenantRequest carries a new tenant.
type CreateTenantRequest struct {
	Name     string  `json:"name" binding:"required"`
	Phone    string  `json:"phone" binding:"required"`
	Email    *string `json:"email,omitempty"`
	IDType   *string `json:"id_type,omitempty"`
	IDNumber *string `json:"id_number,omitempty"`
	Address  *string `json:"address,omitempty"`
}

// TenantInfo is the tenant shape returned to clients. IDNumber holds the
// masked form only.
type TenantInfo struct {
	ID       int64   `json:"id"`
	Name     string  `json:"name"`
	Phone    string  `json:"phone"`
	Email    *string `json:"email,omitempty"`
	IDType   *string `json:"id_type,omitempty"`
	IDNumber *string `json:"id_number,omitempty"`
	Address  *string `json:"address,omitempty"`
}

// Create registers a tenant, encrypting the identity-document number.
func (s *TenantService) Create(ctx context.Context, req *CreateTenantRequest) (*TenantInfo, error) {
	if !utils.ValidatePhone(req.Phone) {
		return nil, errors.ErrInvalidParams.WithMessage("invalid phone number")
	}
	if req.Email != nil && !utils.ValidateEmail(*req.Email) {
		return nil, errors.ErrInvalidParams.WithMessage("invalid email address")
	}

	tenant := &models.Tenant{
		Name:    req.Name,
		Phone:   req.Phone,
		Email:   req.Email,
		IDType:  req.IDType,
		Address: req.Address,
	}

	if req.IDNumber != nil && *req.IDNumber != "" {
		encrypted, err := s.aes.Encrypt(*req.IDNumber)
		if err != nil {
			return nil, errors.ErrInternalError.WithError(err)
		}
		tenant.IDNumberEncrypted = &encrypted
	}

	if err := s.tenantRepo.Create(ctx, tenant); err != nil {
		return nil, errors.ErrDatabaseError.WithError(err)
	}

	return s.toTenantInfo(tenant), nil
}

// Get fetches one tenant.
func (s *TenantService) Get(ctx context.Context, tenantID int64) (*TenantInfo, error) {
	tenant, err := s.tenantRepo.GetByID(ctx, tenantID)
	if err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.ErrTenantNotFound
		}
		return nil, errors.ErrDatabaseError.WithError(err)
	}
	return s.toTenantInfo(tenant), nil
}

// List fetches tenants, newest first.
func (s *TenantService) List(ctx context.Context, page, pageSize int) ([]*TenantInfo, int64, error) {
	offset := (page - 1) * pageSize
	tenants, total, err := s.tenantRepo.List(ctx, offset, pageSize)
	if err != nil {
		return nil, 0, errors.ErrDatabaseError.WithError(err)
	}

	infos := make([]*TenantInfo, 0, len(tenants))
	for _, t := range tenants {
		infos = append(infos, s.toTenantInfo(t))
	}
	return infos, total, nil
}

// toTenantInfo converts a tenant row into its client shape. Decryption
// failures yield a nil IDNumber rather than an error; a listing must not
// break on one corrupt row.
func (s *TenantService) toTenantInfo(tenant *models.Tenant) *TenantInfo {
	info := &TenantInfo{
		ID:      tenant.ID,
		Name:    tenant.Name,
		Phone:   tenant.Phone,
		Email:   tenant.Email,
		IDType:  tenant.IDType,
		Address: tenant.Address,
	}
	if tenant.IDNumberEncrypted != nil {
		if plain, err := s.aes.Decrypt(*tenant.IDNumberEncrypted); err == nil {
			masked := crypto.MaskIDNumber(plain)
			info.IDNumber = &masked
		}
	}
	return info
}
