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
	ucShop "github.com/naai-app/naai-api/internal/usecase/shop"
)

type ShopHandler struct {
	repo     domain.Repository
	createUC *ucShop.CreateShop
	audit    audit.Sink
	log      *zap.Logger
}

func NewShopHandler(
	repo domain.Repository,
	createUC *ucShop.CreateShop,
	auditD audit.Sink,
	log *zap.Logger,
) *ShopHandler {
	return &ShopHandler{
		repo:     repo,
		createUC: createUC,
		audit:    auditD,
		log:      log,
	}
}

// --------- Requests ---------

type CreateServiceRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price" binding:"required,gt=0"`
	Duration    int     `json:"duration" binding:"required,min=1"`
}

type CreateShopRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Address     string `json:"address" binding:"required"`
	City        string `json:"city" binding:"required"`
	State       string `json:"state"`
	ZipCode     string `json:"zipCode"`
	Phone       string `json:"phone"`
	Email       string `json:"email" binding:"omitempty,email"`

	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
	ImageURL  string   `json:"imageUrl"`

	Services []CreateServiceRequest `json:"services" binding:"omitempty,dive"`
}

type UpdateShopRequest struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	Address     *string `json:"address,omitempty"`
	City        *string `json:"city,omitempty"`
	State       *string `json:"state,omitempty"`
	ZipCode     *string `json:"zipCode,omitempty"`
	Phone       *string `json:"phone,omitempty"`
	Email       *string `json:"email,omitempty"`

	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`
	ImageURL  *string  `json:"imageUrl,omitempty"`
	IsActive  *bool    `json:"isActive,omitempty"`
}

// --------- Handlers ---------

// List is public: active shops only, rating descending, optional city and
// free-text filters.
func (h *ShopHandler) List(c *gin.Context) {
	filter := domain.ListFilter{
		City:   c.Query("city"),
		Search: c.Query("search"),
	}

	shops, err := h.repo.ListActiveShops(c.Request.Context(), filter)
	if err != nil {
		failStorage(c, h.log, "list shops", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"shops": shops})
}

func (h *ShopHandler) Get(c *gin.Context) {
	id, ok := parseID(c.Param("id"))
	if !ok {
		httperr.NotFound(c, "Shop not found")
		return
	}

	shop, err := h.repo.GetShopByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "Shop not found")
			return
		}
		failStorage(c, h.log, "get shop", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"shop": shop})
}

func (h *ShopHandler) Create(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var req CreateShopRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Binding(c, err)
		return
	}

	services := make([]ucShop.ServiceInput, 0, len(req.Services))
	for _, s := range req.Services {
		services = append(services, ucShop.ServiceInput{
			Name:        s.Name,
			Description: s.Description,
			Price:       s.Price,
			Duration:    s.Duration,
		})
	}

	shop, err := h.createUC.Execute(c.Request.Context(), ucShop.CreateShopInput{
		BarberID:    userID,
		Name:        req.Name,
		Description: req.Description,
		Address:     req.Address,
		City:        req.City,
		State:       req.State,
		ZipCode:     req.ZipCode,
		Phone:       req.Phone,
		Email:       req.Email,
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
		ImageURL:    req.ImageURL,
		Services:    services,
	})
	if err != nil {
		switch {
		case httperr.IsBusiness(err, "user_not_found"):
			httperr.NotFound(c, "User not found")
		case httperr.IsBusiness(err, "not_a_barber"):
			httperr.Forbidden(c, "Only barbers can create shops")
		case httperr.IsBusiness(err, "shop_already_exists"):
			httperr.BadRequest(c, "You already have a shop. Use update endpoint.")
		default:
			failStorage(c, h.log, "create shop", err)
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"shop":    shop,
		"message": "Shop created successfully",
	})
}

func (h *ShopHandler) Update(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	id, ok := parseID(c.Param("id"))
	if !ok {
		httperr.NotFound(c, "Shop not found")
		return
	}

	shop, err := h.repo.GetShopByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "Shop not found")
			return
		}
		failStorage(c, h.log, "get shop", err)
		return
	}

	if shop.BarberID != userID {
		httperr.Forbidden(c, "You can only update your own shop")
		return
	}

	var req UpdateShopRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Binding(c, err)
		return
	}

	applyShopUpdate(shop, &req)

	if err := h.repo.UpdateShop(c.Request.Context(), shop); err != nil {
		failStorage(c, h.log, "update shop", err)
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   "shop.update",
		Entity:   "shop",
		EntityID: &shop.ID,
	})

	c.JSON(http.StatusOK, gin.H{
		"shop":    shop,
		"message": "Shop updated successfully",
	})
}

// MyShop returns the authenticated barber's shop, or a null shop when none
// exists yet.
func (h *ShopHandler) MyShop(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	user, err := h.repo.GetUserByID(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "User not found")
			return
		}
		failStorage(c, h.log, "my shop", err)
		return
	}

	if user.Role != models.RoleBarber {
		httperr.Forbidden(c, "Only barbers can access this endpoint")
		return
	}

	shop, err := h.repo.GetShopByBarberID(c.Request.Context(), user.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusOK, gin.H{"shop": nil})
			return
		}
		failStorage(c, h.log, "my shop", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"shop": shop})
}

func applyShopUpdate(shop *models.Shop, req *UpdateShopRequest) {
	if req.Name != nil {
		shop.Name = *req.Name
	}
	if req.Description != nil {
		shop.Description = *req.Description
	}
	if req.Address != nil {
		shop.Address = *req.Address
	}
	if req.City != nil {
		shop.City = *req.City
	}
	if req.State != nil {
		shop.State = *req.State
	}
	if req.ZipCode != nil {
		shop.ZipCode = *req.ZipCode
	}
	if req.Phone != nil {
		shop.Phone = *req.Phone
	}
	if req.Email != nil {
		shop.Email = *req.Email
	}
	if req.Latitude != nil {
		shop.Latitude = req.Latitude
	}
	if req.Longitude != nil {
		shop.Longitude = req.Longitude
	}
	if req.ImageURL != nil {
		shop.ImageURL = *req.ImageURL
	}
	if req.IsActive != nil {
		shop.IsActive = *req.IsActive
	}
}
