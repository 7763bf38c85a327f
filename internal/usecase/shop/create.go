package shop

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/naai-app/naai-api/internal/audit"
	domain "github.com/naai-app/naai-api/internal/domain/shop"
	"github.com/naai-app/naai-api/internal/httperr"
	"github.com/naai-app/naai-api/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type ServiceInput struct {
	Name        string
	Description string
	Price       float64
	Duration    int
}

type CreateShopInput struct {
	BarberID uint

	Name        string
	Description string
	Address     string
	City        string
	State       string
	ZipCode     string
	Phone       string
	Email       string

	Latitude  *float64
	Longitude *float64
	ImageURL  string

	Services []ServiceInput
}

// ======================================================
// USE CASE
// ======================================================

type CreateShop struct {
	repo  domain.Repository
	audit audit.Sink
}

func NewCreateShop(
	repo domain.Repository,
	audit audit.Sink,
) *CreateShop {
	return &CreateShop{
		repo:  repo,
		audit: audit,
	}
}

func (uc *CreateShop) Execute(
	ctx context.Context,
	in CreateShopInput,
) (*models.Shop, error) {

	// role lives in the database, not the token
	user, err := uc.repo.GetUserByID(ctx, in.BarberID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness("user_not_found")
		}
		return nil, err
	}

	if user.Role != models.RoleBarber {
		return nil, httperr.ErrBusiness("not_a_barber")
	}

	_, err = uc.repo.GetShopByBarberID(ctx, user.ID)
	switch {
	case err == nil:
		return nil, httperr.ErrBusiness("shop_already_exists")
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return nil, err
	}

	services := make([]models.Service, 0, len(in.Services))
	for _, s := range in.Services {
		services = append(services, models.Service{
			Name:        s.Name,
			Description: s.Description,
			Price:       s.Price,
			Duration:    s.Duration,
		})
	}

	s := &models.Shop{
		BarberID:    user.ID,
		Name:        in.Name,
		Description: in.Description,
		Address:     in.Address,
		City:        in.City,
		State:       in.State,
		ZipCode:     in.ZipCode,
		Phone:       in.Phone,
		Email:       in.Email,
		Latitude:    in.Latitude,
		Longitude:   in.Longitude,
		ImageURL:    in.ImageURL,
		IsActive:    true,
		Services:    services,
	}

	if err := uc.repo.CreateShop(ctx, s); err != nil {
		// pre-check raced a concurrent create for the same barber
		if errors.Is(err, domain.ErrDuplicateShop) {
			return nil, httperr.ErrBusiness("shop_already_exists")
		}
		return nil, err
	}

	s.Barber = user

	uc.audit.Dispatch(audit.Event{
		UserID:   &user.ID,
		Action:   "shop.create",
		Entity:   "shop",
		EntityID: &s.ID,
		Metadata: map[string]any{"name": s.Name, "services": len(s.Services)},
	})

	return s, nil
}
