package database

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNearlyExhausted(t *testing.T) {
	assert.False(t, nearlyExhausted(sql.DBStats{MaxOpenConnections: 0, InUse: 50}), "unlimited pool")
	assert.False(t, nearlyExhausted(sql.DBStats{MaxOpenConnections: 10, InUse: 8}))
	assert.True(t, nearlyExhausted(sql.DBStats{MaxOpenConnections: 10, InUse: 9}))
}
