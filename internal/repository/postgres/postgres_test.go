package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aroundme-service/internal/config"
)

func TestDSN(t *testing.T) {
	got := dsn(&config.DatabaseConfig{
		Host:     "db",
		Port:     5432,
		User:     "aroundme",
		Password: "pass",
		DBName:   "aroundme",
		SSLMode:  "disable",
	})

	assert.Equal(t, "host=db port=5432 user=aroundme password=pass dbname=aroundme sslmode=disable application_name=aroundme", got)
}
