// Package tenant provides the tenant registry HTTP handlers.
package tenant

import (
	"github.com/gin-gonic/gin"

	"github.com/Kotarao21/Smart-Pg-Management-System/internal/common/handler"
	"github.com/Kotarao21/Smart-Pg-Management-System/internal/common/response"
	tenantService "github.com/Kotarao21/Smart-Pg-Management-System/internal/service/tenant"
)

// Handler handles tenant endpoints.
type Handler struct {
	tenantService *tenantService.TenantService
}

// NewHandler creates the tenant handler.
func NewHandler(tenantSvc *tenantService.TenantService) *Handler {
	return &Handler{
		tenantService: tenantSvc,
	}
}

// RegisterRoutes registers the tenant routes.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	tenants := rg.Group("/tenants")
	{
		tenants.POST("", h.Create)
		tenants.GET("", h.List)
		tenants.GET("/:id", h.Get)
	}
}

// Create registers a tenant
// @Summary Create a tenant
// @Tags tenant
// @Accept json
// @Produce json
// @Security Bearer
// @Param request body tenantService.CreateTenantRequest true "request body"
// @Success 200 {object} response.Response{data=tenantService.TenantInfo}
// @Router /tenants [post]
func (h *Handler) Create(c *gin.Context) {
	var req tenantService.CreateTenantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid parameters")
		return
	}

	tenant, err := h.tenantService.Create(c.Request.Context(), &req)
	handler.MustSucceed(c, err, tenant)
}

// List lists tenants
// @Summary List tenants
// @Tags tenant
// @Produce json
// @Security Bearer
// @Param page query int false "page"
// @Param page_size query int false "page size"
// @Success 200 {object} response.Response{data=response.PageData}
// @Router /tenants [get]
func (h *Handler) List(c *gin.Context) {
	p := handler.BindPagination(c)
	tenants, total, err := h.tenantService.List(c.Request.Context(), p.Page, p.PageSize)
	handler.MustSucceedPage(c, err, tenants, total, p.Page, p.PageSize)
}

// Get fetches one tenant
// @Summary Get a tenant
// @Tags tenant
// @Produce json
// @Security Bearer
// @Param id path int true "tenant id"
// @Success 200 {object} response.Response{data=tenantService.TenantInfo}
// @Router /tenants/{id} [get]
func (h *Handler) Get(c *gin.Context) {
	id, ok := handler.ParseID(c, "tenant")
	if !ok {
		return
	}

	tenant, err := h.tenantService.Get(c.Request.Context(), id)
	handler.MustSucceed(c, err, tenant)
}
