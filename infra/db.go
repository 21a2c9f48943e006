package infra

import (
	"fmt"
	"gin-tasktracker/models"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func gormConfig(log *logrus.Logger) *gorm.Config {
	cfg := &gorm.Config{TranslateError: true, Logger: gormlogger.Discard}
	if log != nil {
		cfg.Logger = gormlogger.New(log, gormlogger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  gormlogger.Warn,
			IgnoreRecordNotFoundError: true,
		})
	}
	return cfg
}

// SetupDB connects to Postgres when DB_NAME is configured and falls back to
// an in-memory SQLite database otherwise.
func SetupDB(cfg *Config, log *logrus.Logger) (*gorm.DB, error) {
	if cfg.DB.Name != "" {
		sslmode := "disable"
		if cfg.IsProd() {
			sslmode = "require"
		}

		dsn := fmt.Sprintf(
			"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s connect_timeout=10",
			cfg.DB.Host,
			cfg.DB.User,
			cfg.DB.Password,
			cfg.DB.Name,
			cfg.DB.Port,
			sslmode,
		)

		db, err := gorm.Open(postgres.Open(dsn), gormConfig(log))
		if err != nil {
			return nil, fmt.Errorf("connect to postgres %s@%s/%s: %w", cfg.DB.User, cfg.DB.Host, cfg.DB.Name, err)
		}
		if log != nil {
			log.WithFields(logrus.Fields{"host": cfg.DB.Host, "dbname": cfg.DB.Name}).Info("Setup postgres database")
		}
		return db, nil
	}

	db, err := OpenSQLite(":memory:", log)
	if err != nil {
		return nil, err
	}
	if log != nil {
		log.Info("Setup sqlite database (in-memory)")
	}
	return db, nil
}

// SetupTokenDB opens the store backing the revocation ledger. An empty
// TOKEN_DB_PATH keeps revoked tokens in the main database.
func SetupTokenDB(cfg *Config, mainDB *gorm.DB, log *logrus.Logger) (*gorm.DB, error) {
	if cfg.TokenDBPath == "" {
		return mainDB, nil
	}

	db, err := OpenSQLite(cfg.TokenDBPath, log)
	if err != nil {
		return nil, fmt.Errorf("open token database: %w", err)
	}
	if log != nil {
		log.WithField("path", cfg.TokenDBPath).Info("Setup token revocation SQLite database")
	}
	return db, nil
}

// OpenSQLite opens a SQLite database restricted to a single connection.
// SQLite serializes writers anyway, and every connection to ":memory:"
// would otherwise see its own empty database.
func OpenSQLite(dsn string, log *logrus.Logger) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(dsn), gormConfig(log))
	if err != nil {
		return nil, fmt.Errorf("open sqlite %q: %w", dsn, err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(1)
	return db, nil
}

// Migrate creates or updates the schema. The revocation ledger may live in
// its own database.
func Migrate(db *gorm.DB, tokenDB *gorm.DB) error {
	if err := db.AutoMigrate(&models.User{}, &models.Task{}, &models.Category{}, &models.Expense{}); err != nil {
		return fmt.Errorf("migrate database: %w", err)
	}
	if err := tokenDB.AutoMigrate(&models.RevokedToken{}); err != nil {
		return fmt.Errorf("migrate token database: %w", err)
	}
	return nil
}
