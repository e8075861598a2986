package storage

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/harshgajera101/SmartSanstha-sub001/internal/game"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// OpenAndMigrate opens the SQLite database at dataSourceName and brings the
// schema up to date. The parent directory of a file path is created when
// missing.
func OpenAndMigrate(dataSourceName string) (*gorm.DB, error) {
	if !isMemoryDSN(dataSourceName) {
		if dir := filepath.Dir(dataSourceName); dir != "" && dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, err
			}
		}
	}
	db, err := gorm.Open(sqlite.Open(dataSourceName), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, err
	}

	// Keep schema updated via AutoMigrate; removing the DB file resets all
	// sessions.
	if err := db.AutoMigrate(&game.Session{}, &game.Decision{}, &game.Result{}); err != nil {
		return nil, err
	}
	return db, nil
}

func isMemoryDSN(dsn string) bool {
	return strings.Contains(dsn, ":memory:") || strings.Contains(dsn, "mode=memory")
}
