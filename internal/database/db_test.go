package database

import (
	"testing"

	"github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/cinema-ticket-booking/internal/config"
)

func TestDSN(t *testing.T) {
	dsn := DSN(config.Config{DBUser: "app", DBPass: "p@ss", DBHost: "db", DBPort: "3306", DBName: "cinema"})

	parsed, err := mysql.ParseDSN(dsn)
	require.NoError(t, err)
	assert.Equal(t, "app", parsed.User)
	assert.Equal(t, "p@ss", parsed.Passwd)
	assert.Equal(t, "db:3306", parsed.Addr)
	assert.Equal(t, "cinema", parsed.DBName)
	assert.True(t, parsed.ParseTime)
	assert.Equal(t, "utf8mb4", parsed.Params["charset"])
}
