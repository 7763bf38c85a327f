package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/naai-app/naai-api/internal/audit"
	domain "github.com/naai-app/naai-api/internal/domain/shop"
	"github.com/naai-app/naai-api/internal/httperr"
	"github.com/naai-app/naai-api/internal/middleware"
	"github.com/naai-app/naai-api/internal/models"
)

type ServiceHandler struct {
	repo  domain.Repository
	audit audit.Sink
	log   *zap.Logger
}

func NewServiceHandler(
	repo domain.Repository,
	auditD audit.Sink,
	log *zap.Logger,
) *ServiceHandler {
	return &ServiceHandler{
		repo:  repo,
		audit: auditD,
		log:   log,
	}
}

type AddServiceRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price" binding:"required,gt=0"`
	Duration    int     `json:"duration" binding:"required,min=1"`
}

func (h *ServiceHandler) Add(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	shopID, ok := parseID(c.Param("id"))
	if !ok {
		httperr.NotFound(c, "Shop not found")
		return
	}

	shop, err := h.repo.GetShopByID(c.Request.Context(), shopID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "Shop not found")
			return
		}
		failStorage(c, h.log, "get shop", err)
		return
	}

	if shop.BarberID != userID {
		httperr.Forbidden(c, "You can only add services to your own shop")
		return
	}

	var req AddServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Binding(c, err)
		return
	}

	svc := models.Service{
		ShopID:      shop.ID,
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Duration:    req.Duration,
	}

	if err := h.repo.AddService(c.Request.Context(), &svc); err != nil {
		failStorage(c, h.log, "add service", err)
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   "service.add",
		Entity:   "service",
		EntityID: &svc.ID,
		Metadata: map[string]any{"shopId": shop.ID, "name": svc.Name},
	})

	c.JSON(http.StatusCreated, gin.H{
		"service": svc,
		"message": "Service added successfully",
	})
}
