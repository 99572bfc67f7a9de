package services_test

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/bharatha-dev/brainly-server/internal/api/services"
	"github.com/bharatha-dev/brainly-server/internal/common"
	"github.com/bharatha-dev/brainly-server/internal/models"
	"github.com/bharatha-dev/brainly-server/internal/repositories"
)

func setupShareService(t *testing.T) (*services.ShareService, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, repositories.Migrate(db))
	return services.NewShareService(db, zerolog.Nop()), db
}

func TestEnableReturnsExistingLink(t *testing.T) {
	svc, db := setupShareService(t)
	userID := uuid.New()

	seeded := models.ShareLink{Hash: "preexisting", UserID: userID}
	require.NoError(t, db.Create(&seeded).Error)

	hash, err := svc.Enable(userID)
	require.NoError(t, err)
	assert.Equal(t, "preexisting", hash)

	var count int64
	require.NoError(t, db.Model(&models.ShareLink{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestDisableWithoutLinkSucceeds(t *testing.T) {
	svc, _ := setupShareService(t)
	assert.NoError(t, svc.Disable(uuid.New()))
}

func TestResolveDanglingOwnerIsNotFound(t *testing.T) {
	svc, db := setupShareService(t)

	// Link whose owner row does not exist.
	link := models.ShareLink{Hash: "orphaned", UserID: uuid.New()}
	require.NoError(t, db.Create(&link).Error)

	_, _, err := svc.Resolve("orphaned")
	assert.ErrorIs(t, err, common.ErrNotFound)
}
