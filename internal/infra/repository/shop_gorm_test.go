package repository

import (
	"context"
	"fmt"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/naai-app/naai-api/internal/domain/shop"
	"github.com/naai-app/naai-api/internal/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// the in-memory database lives on a single connection
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Shop{}, &models.Service{}))
	return db
}

func seedBarber(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()

	u := &models.User{Email: email, PasswordHash: "x", Role: models.RoleBarber}
	require.NoError(t, db.Create(u).Error)
	return u
}

func seedShop(t *testing.T, repo *ShopGormRepository, s *models.Shop) *models.Shop {
	t.Helper()

	require.NoError(t, repo.CreateShop(context.Background(), s))
	return s
}

func TestCreateShop_PersistsNestedServices(t *testing.T) {
	db := newTestDB(t)
	repo := NewShopGormRepository(db)
	barber := seedBarber(t, db, "barber@example.com")

	s := &models.Shop{
		BarberID: barber.ID,
		Name:     "Fade Factory",
		City:     "Springfield",
		IsActive: true,
		Services: []models.Service{
			{Name: "Haircut", Price: 30, Duration: 30},
			{Name: "Beard trim", Price: 15, Duration: 15},
		},
	}
	require.NoError(t, repo.CreateShop(context.Background(), s))
	require.NotZero(t, s.ID)
	require.Len(t, s.Services, 2)
	assert.Equal(t, s.ID, s.Services[0].ShopID)

	got, err := repo.GetShopByID(context.Background(), s.ID)
	require.NoError(t, err)
	assert.Len(t, got.Services, 2)
	require.NotNil(t, got.Barber)
	assert.Equal(t, barber.Email, got.Barber.Email)
}

func TestCreateShop_FailedInsertKeepsServices(t *testing.T) {
	db := newTestDB(t)
	repo := NewShopGormRepository(db)
	barber := seedBarber(t, db, "barber@example.com")

	seedShop(t, repo, &models.Shop{BarberID: barber.ID, Name: "First", IsActive: true})

	second := &models.Shop{
		BarberID: barber.ID,
		Name:     "Second",
		IsActive: true,
		Services: []models.Service{{Name: "Haircut", Price: 30, Duration: 30}},
	}
	err := repo.CreateShop(context.Background(), second)
	require.Error(t, err)

	// the caller's input is not mutated by the failed call
	require.Len(t, second.Services, 1)
	assert.Equal(t, "Haircut", second.Services[0].Name)
}

func TestListActiveShops_FiltersAndOrder(t *testing.T) {
	db := newTestDB(t)
	repo := NewShopGormRepository(db)
	ctx := context.Background()

	b1 := seedBarber(t, db, "b1@example.com")
	b2 := seedBarber(t, db, "b2@example.com")
	b3 := seedBarber(t, db, "b3@example.com")
	b4 := seedBarber(t, db, "b4@example.com")

	seedShop(t, repo, &models.Shop{
		BarberID: b1.ID, Name: "Fade Factory", City: "Springfield",
		Rating: 4.5, IsActive: true,
	})
	seedShop(t, repo, &models.Shop{
		BarberID: b2.ID, Name: "Clipper Club", City: "SPRINGVILLE",
		Description: "walk-ins welcome", Rating: 3.0, IsActive: true,
	})
	seedShop(t, repo, &models.Shop{
		BarberID: b3.ID, Name: "Sharp Cuts", City: "Shelbyville",
		Address: "12 Fadeaway Ln", Rating: 5.0, IsActive: true,
	})

	hidden := seedShop(t, repo, &models.Shop{
		BarberID: b4.ID, Name: "Closed Chair", City: "Springfield",
		Rating: 4.9, IsActive: true,
	})
	hidden.IsActive = false
	require.NoError(t, repo.UpdateShop(ctx, hidden))

	// inactive shops never appear, results come back rating-descending
	all, err := repo.ListActiveShops(ctx, shop.ListFilter{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "Sharp Cuts", all[0].Name)
	assert.Equal(t, "Fade Factory", all[1].Name)
	assert.Equal(t, "Clipper Club", all[2].Name)

	// city is a case-insensitive substring match
	bySpring, err := repo.ListActiveShops(ctx, shop.ListFilter{City: "spring"})
	require.NoError(t, err)
	require.Len(t, bySpring, 2)
	assert.Equal(t, "Fade Factory", bySpring[0].Name)
	assert.Equal(t, "Clipper Club", bySpring[1].Name)

	// search spans name, description and address
	byName, err := repo.ListActiveShops(ctx, shop.ListFilter{Search: "fade"})
	require.NoError(t, err)
	require.Len(t, byName, 2)
	assert.Equal(t, "Sharp Cuts", byName[0].Name)
	assert.Equal(t, "Fade Factory", byName[1].Name)

	byDesc, err := repo.ListActiveShops(ctx, shop.ListFilter{Search: "walk-ins"})
	require.NoError(t, err)
	require.Len(t, byDesc, 1)
	assert.Equal(t, "Clipper Club", byDesc[0].Name)
}

func TestUniqueViolationDetection(t *testing.T) {
	assert.True(t, isUniqueViolation(&pgconn.PgError{Code: "23505"}))
	assert.True(t, isUniqueViolation(fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23505"})))
	assert.False(t, isUniqueViolation(&pgconn.PgError{Code: "23503"}))
	assert.False(t, isUniqueViolation(gorm.ErrRecordNotFound))
}
