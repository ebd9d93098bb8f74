package database

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/Tom0603/SoftwareEngineering-Lecture/config"
)

// InitDB opens the configured database. sqlite keeps local runs and CI
// dependency-free; postgres is the deployment target.
func InitDB(cfg *config.Config) (*gorm.DB, error) {
	gormCfg := &gorm.Config{Logger: gormlogger.Default.LogMode(gormlogger.Silent)}

	switch cfg.Database.Driver {
	case "postgres":
		return gorm.Open(postgres.Open(cfg.Database.DSN), gormCfg)
	case "sqlite":
		return gorm.Open(sqlite.Open(cfg.Database.DSN), gormCfg)
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", cfg.Database.Driver)
	}
}
