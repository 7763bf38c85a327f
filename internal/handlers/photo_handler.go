package handlers

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/naai-app/naai-api/internal/audit"
	domain "github.com/naai-app/naai-api/internal/domain/shop"
	"github.com/naai-app/naai-api/internal/httperr"
	"github.com/naai-app/naai-api/internal/images"
	"github.com/naai-app/naai-api/internal/middleware"
	"github.com/naai-app/naai-api/internal/storage"
)

const maxPhotoBytes = 10 << 20 // 10MB

type PhotoHandler struct {
	repo     domain.Repository
	uploader *storage.Uploader
	audit    audit.Sink
	log      *zap.Logger
}

func NewPhotoHandler(
	repo domain.Repository,
	uploader *storage.Uploader,
	auditD audit.Sink,
	log *zap.Logger,
) *PhotoHandler {
	return &PhotoHandler{
		repo:     repo,
		uploader: uploader,
		audit:    auditD,
		log:      log,
	}
}

// Upload replaces a shop's photo: decode, downscale, re-encode as webp and
// persist the public URL.
func (h *PhotoHandler) Upload(c *gin.Context) {
	if h.uploader == nil {
		httperr.Write(c, http.StatusServiceUnavailable, "Image uploads are not configured")
		return
	}

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
		httperr.Forbidden(c, "You can only update your own shop")
		return
	}

	fileHeader, err := c.FormFile("photo")
	if err != nil {
		httperr.BadRequest(c, "Photo file is required")
		return
	}
	if fileHeader.Size > maxPhotoBytes {
		httperr.BadRequest(c, "Photo must be 10MB or smaller")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		h.log.Error("photo open", zap.Error(err))
		httperr.Internal(c)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxPhotoBytes+1))
	if err != nil {
		h.log.Error("photo read", zap.Error(err))
		httperr.Internal(c)
		return
	}

	encoded, err := images.Normalize(data)
	if err != nil {
		if errors.Is(err, images.ErrUnsupported) {
			httperr.BadRequest(c, "Unsupported image format")
			return
		}
		h.log.Error("photo encode", zap.Error(err))
		httperr.Internal(c)
		return
	}

	key := fmt.Sprintf("shops/%d/%s.webp", shop.ID, uuid.NewString())
	url, err := h.uploader.Upload(c.Request.Context(), key, encoded, "image/webp")
	if err != nil {
		h.log.Error("photo upload", zap.Error(err))
		httperr.Internal(c)
		return
	}

	shop.ImageURL = url
	if err := h.repo.UpdateShop(c.Request.Context(), shop); err != nil {
		failStorage(c, h.log, "update shop", err)
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   "shop.photo",
		Entity:   "shop",
		EntityID: &shop.ID,
	})

	c.JSON(http.StatusOK, gin.H{"shop": shop})
}
