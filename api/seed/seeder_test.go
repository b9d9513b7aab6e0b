package seed

import (
	"testing"

	"Pico/api/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func TestLoadIsIdempotent(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(&models.Candidate{}))

	require.NoError(t, Load(db))
	require.NoError(t, Load(db))

	var count int64
	require.NoError(t, db.Model(&models.Candidate{}).Count(&count).Error)
	assert.Equal(t, int64(len(candidates)), count)

	pool, err := models.FindCandidatePool(db, 8)
	require.NoError(t, err)
	assert.Len(t, pool, 8)
}
