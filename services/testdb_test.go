package services

import (
	"path/filepath"
	"testing"

	"foodie-backend/models"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Recipe{},
		&models.Ingredient{},
		&models.RecipeLike{},
		&models.Comment{},
		&models.CommentLike{},
		&models.RecallRecord{},
		&models.NhanesBenchmark{},
	))
	return db
}
