package shop

import (
	"context"
	"errors"

	"github.com/naai-app/naai-api/internal/models"
)

// ErrDuplicateShop reports a unique violation on the shop's barber id, the
// losing side of two concurrent creates for the same barber.
var ErrDuplicateShop = errors.New("barber already has a shop")

// ListFilter narrows the public shop listing. Both filters are
// case-insensitive substring matches; Search spans name, description and
// address.
type ListFilter struct {
	City   string
	Search string
}

type Repository interface {
	// -------- Users --------
	GetUserByID(
		ctx context.Context,
		id uint,
	) (*models.User, error)

	// -------- Shops --------
	GetShopByID(
		ctx context.Context,
		id uint,
	) (*models.Shop, error)

	GetShopByBarberID(
		ctx context.Context,
		barberID uint,
	) (*models.Shop, error)

	// CreateShop persists the shop and its nested services as one unit.
	CreateShop(
		ctx context.Context,
		s *models.Shop,
	) error

	UpdateShop(
		ctx context.Context,
		s *models.Shop,
	) error

	ListActiveShops(
		ctx context.Context,
		filter ListFilter,
	) ([]models.Shop, error)

	// -------- Services --------
	AddService(
		ctx context.Context,
		svc *models.Service,
	) error
}
