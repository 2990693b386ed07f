// Package property provides the property registry HTTP handlers.
package property

import (
	"github.com/gin-gonic/gin"

	"github.com/Kotarao21/Smart-Pg-Management-System/internal/common/handler"
	"github.com/Kotarao21/Smart-Pg-Management-System/internal/common/response"
	"github.com/Kotarao21/Smart-Pg-Management-System/internal/middleware"
	propertyService "github.com/Kotarao21/Smart-Pg-Management-System/internal/service/property"
)

// Handler handles property and room endpoints.
type Handler struct {
	propertyService *propertyService.PropertyService
}

// NewHandler creates the property handler.
func NewHandler(propertySvc *propertyService.PropertyService) *Handler {
	return &Handler{
		propertyService: propertySvc,
	}
}

// RegisterRoutes registers the property routes. Creation of properties is
// restricted to the Owner role; room registration to staff.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	pgs := rg.Group("/pgs")
	{
		pgs.POST("", middleware.OwnerOnly(), h.CreatePG)
		pgs.GET("", h.ListPGs)
		pgs.GET("/:id", h.GetPG)
	}

	rooms := rg.Group("/rooms")
	{
		rooms.POST("", middleware.StaffOnly(), h.CreateRoom)
		rooms.GET("", h.ListRooms)
		rooms.GET("/:id", h.GetRoom)
	}
}

// CreatePG registers a property
// @Summary Create a PG property
// @Tags property
// @Accept json
// @Produce json
// @Security Bearer
// @Param request body propertyService.CreatePGRequest true "request body"
// @Success 200 {object} response.Response{data=models.PG}
// @Router /pgs [post]
func (h *Handler) CreatePG(c *gin.Context) {
	var req propertyService.CreatePGRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid parameters")
		return
	}

	pg, err := h.propertyService.CreatePG(c.Request.Context(), &req)
	handler.MustSucceed(c, err, pg)
}

// ListPGs lists properties
// @Summary List PG properties
// @Tags property
// @Produce json
// @Security Bearer
// @Param page query int false "page"
// @Param page_size query int false "page size"
// @Success 200 {object} response.Response{data=response.PageData}
// @Router /pgs [get]
func (h *Handler) ListPGs(c *gin.Context) {
	p := handler.BindPagination(c)
	pgs, total, err := h.propertyService.ListPGs(c.Request.Context(), p.Page, p.PageSize)
	handler.MustSucceedPage(c, err, pgs, total, p.Page, p.PageSize)
}

// GetPG fetches one property with its rooms
// @Summary Get a PG property
// @Tags property
// @Produce json
// @Security Bearer
// @Param id path int true "property id"
// @Success 200 {object} response.Response{data=models.PG}
// @Router /pgs/{id} [get]
func (h *Handler) GetPG(c *gin.Context) {
	id, ok := handler.ParseID(c, "property")
	if !ok {
		return
	}

	pg, err := h.propertyService.GetPG(c.Request.Context(), id)
	handler.MustSucceed(c, err, pg)
}

// CreateRoom registers a room
// @Summary Create a room
// @Tags property
// @Accept json
// @Produce json
// @Security Bearer
// @Param request body propertyService.CreateRoomRequest true "request body"
// @Success 200 {object} response.Response{data=models.Room}
// @Router /rooms [post]
func (h *Handler) CreateRoom(c *gin.Context) {
	var req propertyService.CreateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid parameters")
		return
	}

	room, err := h.propertyService.CreateRoom(c.Request.Context(), &req)
	handler.MustSucceed(c, err, room)
}

// ListRooms lists rooms
// @Summary List rooms
// @Tags property
// @Produce json
// @Security Bearer
// @Param pg_id query int false "filter by property"
// @Param page query int false "page"
// @Param page_size query int false "page size"
// @Success 200 {object} response.Response{data=response.PageData}
// @Router /rooms [get]
func (h *Handler) ListRooms(c *gin.Context) {
	pgID, ok := handler.ParseQueryID(c, "pg_id", "property")
	if !ok {
		return
	}

	p := handler.BindPagination(c)
	rooms, total, err := h.propertyService.ListRooms(c.Request.Context(), pgID, p.Page, p.PageSize)
	handler.MustSucceedPage(c, err, rooms, total, p.Page, p.PageSize)
}

// GetRoom fetches one room
// @Summary Get a room
// @Tags property
// @Produce json
// @Security Bearer
// @Param id path int true "room id"
// @Success 200 {object} response.Response{data=models.Room}
// @Router /rooms/{id} [get]
func (h *Handler) GetRoom(c *gin.Context) {
	id, ok := handler.ParseID(c, "room")
	if !ok {
		return
	}

	room, err := h.propertyService.GetRoom(c.Request.Context(), id)
	handler.MustSucceed(c, err, room)
}
