package configs

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var PGDB *gorm.DB

// ConnectPSQLDatabase opens the Postgres connection backing the billing
// package catalog.
func ConnectPSQLDatabase() error {
	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		EnvDBHost(),
		EnvDBUser(),
		EnvDBPassword(),
		EnvDBName(),
		EnvDBPort(),
	)
	database, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return fmt.Errorf("failed to connect to postgres: %w", err)
	}

	PGDB = database
	return nil
}

func GetPGDB() *gorm.DB {
	return PGDB
}
