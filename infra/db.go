package infra

import (
	"database/sql"
	"fmt"

	"github.com/cloudcopper/bytesize/ports"
	slogGorm "github.com/orandin/slog-gorm"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	_ "modernc.org/sqlite" // purego sqlite3 driver
)

const (
	DriverSqlite         = "sqlite"
	SourceSqliteInMemory = "file::memory:?cache=shared&_pragma=foreign_keys(1)"
)

// SourceSqliteFile returns source of sqlite database stored in file name
func SourceSqliteFile(name string) string {
	return fmt.Sprintf("file:%s?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)", name)
}

func NewDatabase(log ports.Logger, driver, source string) (ports.DB, func(), error) {
	sqlDB, err := sql.Open(driver, source)
	if err != nil {
		return nil, nil, err
	}
	// sqlite allows single writer only
	sqlDB.SetMaxOpenConns(1)

	dbLogger := slogGorm.New(slogGorm.WithHandler(log.Handler()))
	db, err := gorm.Open(sqlite.Dialector{Conn: sqlDB}, &gorm.Config{
		Logger: dbLogger,
	})
	if err != nil {
		sqlDB.Close()
		return nil, nil, err
	}

	return db, func() { sqlDB.Close() }, nil
}
