package config

import (
	"errors"
	"os"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// InitDB opens the relational store from the CONNECTION_SQL environment
// variable. A missing connection string is a startup error, the caller is
// expected to treat it as fatal.
func InitDB() (*gorm.DB, error) {
	dsn := os.Getenv("CONNECTION_SQL")
	if dsn == "" {
		return nil, errors.New("CONNECTION_SQL environment variable is not set")
	}

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	return db, nil
}
