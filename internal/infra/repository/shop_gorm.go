package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/naai-app/naai-api/internal/domain/shop"
	"github.com/naai-app/naai-api/internal/models"
)

type ShopGormRepository struct {
	db *gorm.DB
}

func NewShopGormRepository(db *gorm.DB) *ShopGormRepository {
	return &ShopGormRepository{db: db}
}

func (r *ShopGormRepository) GetUserByID(
	ctx context.Context,
	id uint,
) (*models.User, error) {

	var user models.User
	if err := r.db.WithContext(ctx).First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *ShopGormRepository) GetShopByID(
	ctx context.Context,
	id uint,
) (*models.Shop, error) {

	var s models.Shop
	err := r.db.WithContext(ctx).
		Preload("Barber").
		Preload("Services").
		First(&s, id).Error
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *ShopGormRepository) GetShopByBarberID(
	ctx context.Context,
	barberID uint,
) (*models.Shop, error) {

	var s models.Shop
	err := r.db.WithContext(ctx).
		Preload("Services").
		Where("barber_id = ?", barberID).
		First(&s).Error
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *ShopGormRepository) CreateShop(
	ctx context.Context,
	s *models.Shop,
) error {

	services := s.Services
	s.Services = nil

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(s).Error; err != nil {
			return err
		}

		for i := range services {
			services[i].ShopID = s.ID
		}
		if len(services) > 0 {
			if err := tx.Create(&services).Error; err != nil {
				return err
			}
		}
		return nil
	})

	s.Services = services

	if isUniqueViolation(err) {
		return shop.ErrDuplicateShop
	}
	return err
}

func (r *ShopGormRepository) UpdateShop(
	ctx context.Context,
	s *models.Shop,
) error {

	return r.db.WithContext(ctx).Save(s).Error
}

func (r *ShopGormRepository) ListActiveShops(
	ctx context.Context,
	filter shop.ListFilter,
) ([]models.Shop, error) {

	q := r.db.WithContext(ctx).Where("is_active = ?", true)

	if filter.City != "" {
		q = q.Where("LOWER(city) LIKE ?", "%"+likeTerm(filter.City)+"%")
	}

	if filter.Search != "" {
		like := "%" + likeTerm(filter.Search) + "%"
		q = q.Where(
			"LOWER(name) LIKE ? OR LOWER(description) LIKE ? OR LOWER(address) LIKE ?",
			like, like, like,
		)
	}

	var shops []models.Shop
	err := q.
		Preload("Barber").
		Preload("Services").
		Order("rating DESC").
		Find(&shops).Error
	if err != nil {
		return nil, err
	}
	return shops, nil
}

func (r *ShopGormRepository) AddService(
	ctx context.Context,
	svc *models.Service,
) error {

	return r.db.WithContext(ctx).Create(svc).Error
}
