package seed

import (
	"testing"

	"devlink/internal/database"
	"devlink/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return db
}

func TestRunSeedsUsersProfilesAndPosts(t *testing.T) {
	db := newTestDB(t)

	require.NoError(t, Run(db, Options{Users: 3, PostsPerUser: 2}))

	var users int64
	require.NoError(t, db.Model(&models.User{}).Count(&users).Error)
	assert.EqualValues(t, 3, users)

	var profiles int64
	require.NoError(t, db.Model(&models.Profile{}).Count(&profiles).Error)
	assert.EqualValues(t, 3, profiles)

	var posts int64
	require.NoError(t, db.Model(&models.Post{}).Count(&posts).Error)
	assert.EqualValues(t, 6, posts)

	var sample models.Post
	require.NoError(t, db.First(&sample).Error)
	assert.NotEmpty(t, sample.Name)
	assert.NotEmpty(t, sample.Text)
}

func TestRunRefusesNonEmptyDatabase(t *testing.T) {
	db := newTestDB(t)
	require.NoError(t, db.Create(&models.User{Name: "X", Email: "x@example.com", Password: "p"}).Error)

	err := Run(db, DefaultOptions())
	assert.Error(t, err)
}
