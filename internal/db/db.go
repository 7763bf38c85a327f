package db

import (
	"strings"
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/naai-app/naai-api/internal/config"
	"github.com/naai-app/naai-api/internal/models"
)

func NewDB(cfg *config.Config, log *zap.Logger) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt: true,
	})
	if err != nil {
		logConnectionHints(log, err)
		log.Fatal("failed to connect database", zap.Error(err))
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatal("failed to get sql.DB", zap.Error(err))
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := db.AutoMigrate(
		&models.User{},
		&models.Shop{},
		&models.Service{},
		&models.AuditLog{},
	); err != nil {
		log.Fatal("failed to migrate", zap.Error(err))
	}

	log.Info("database connected")
	return db
}

// logConnectionHints mirrors the remediation guidance the ops runbook gives
// for the usual local-setup failures.
func logConnectionHints(log *zap.Logger, err error) {
	msg := err.Error()
	switch {
	case strings.Contains(msg, "connection refused"):
		log.Error("postgres is not reachable; check that the server is running and DATABASE_URL points at it")
	case strings.Contains(msg, "password authentication failed"):
		log.Error("invalid database credentials; update DATABASE_URL")
	case strings.Contains(msg, "does not exist"):
		log.Error("database missing; create it with: createdb naai_db")
	}
}
