package config

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// MySQLDataSource returns MYSQL_DSN, or a DSN assembled from the MYSQL_* parts.
func (c *Config) MySQLDataSource() string {
	if c.MySQLDSN != "" {
		return c.MySQLDSN
	}
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?parseTime=true&charset=utf8mb4&loc=Local",
		c.MySQLUser, c.MySQLPass, c.MySQLHost, c.MySQLPort, c.MySQLDB)
}

// NewDB opens the database selected by driver (sqlite or mysql).
func NewDB(c *Config, driver string) (*gorm.DB, error) {
	logMode := logger.Warn
	if c.Debug {
		logMode = logger.Info
	}
	if c.GormLog == "off" {
		logMode = logger.Silent
	}

	gormLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags), // Use log.Logger for Printf support
		logger.Config{
			SlowThreshold: time.Second, // Slow SQL threshold
			LogLevel:      logMode,     // Log level
			Colorful:      true,        // Enable color
		},
	)

	var dialector gorm.Dialector
	switch driver {
	case StoreMySQL:
		dialector = mysql.Open(c.MySQLDataSource())
	case StoreSQLite:
		if c.SQLitePath != ":memory:" {
			if err := os.MkdirAll(filepath.Dir(c.SQLitePath), 0o755); err != nil {
				return nil, err
			}
		}
		dialector = sqlite.Open(c.SQLitePath)
	default:
		return nil, fmt.Errorf("DB_DRIVER: unknown driver %q", driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: gormLogger,
	})
	if err != nil {
		return nil, err
	}
	return db, nil
}
