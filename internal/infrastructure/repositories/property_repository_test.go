package repositories

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/estospaces/realtysvc/domain"
)

func testProperty(title, country string) *domain.Property {
	return &domain.Property{
		Title:        title,
		Description:  "Two bedrooms close to the river",
		PropertyType: "apartment",
		Price:        250000,
		ManagerID:    1,
		AreaNumeric:  85,
		AreaUnit:     domain.DefaultAreaUnit,
		Status:       domain.PropertyStatusActive,
		Country:      country,
	}
}

func TestPropertyRepositoryCreateAndFind(t *testing.T) {
	repo := NewPropertyRepository(setupTestDB(t))
	ctx := context.Background()

	prop := testProperty("Riverside flat", "DE")
	require.NoError(t, repo.Create(ctx, prop))
	assert.NotZero(t, prop.ID)
	assert.False(t, prop.CreatedAt.IsZero(), "Create must backfill timestamps")

	found, err := repo.FindByID(ctx, prop.ID, "DE")
	require.NoError(t, err)
	assert.Equal(t, "Riverside flat", found.Title)
	assert.Equal(t, domain.PropertyStatusActive, found.Status)
	assert.False(t, found.IsPublished)
	assert.Nil(t, found.PublishedAt)
}

func TestPropertyRepositoryCountryScoping(t *testing.T) {
	repo := NewPropertyRepository(setupTestDB(t))
	ctx := context.Background()

	prop := testProperty("Riverside flat", "DE")
	require.NoError(t, repo.Create(ctx, prop))

	// A row under another country is indistinguishable from a missing one.
	_, err := repo.FindByID(ctx, prop.ID, "FR")
	assert.ErrorIs(t, err, domain.ErrPropertyNotFound)

	_, err = repo.FindByID(ctx, 9999, "DE")
	assert.ErrorIs(t, err, domain.ErrPropertyNotFound)
}

func TestPropertyRepositoryPatch(t *testing.T) {
	repo := NewPropertyRepository(setupTestDB(t))
	ctx := context.Background()

	prop := testProperty("Riverside flat", "DE")
	require.NoError(t, repo.Create(ctx, prop))

	title := "Renovated riverside flat"
	price := 275000.0
	updated, err := repo.Patch(ctx, prop.ID, domain.PropertyPatch{Title: &title, Price: &price})
	require.NoError(t, err)
	assert.Equal(t, "Renovated riverside flat", updated.Title)
	assert.Equal(t, 275000.0, updated.Price)
	// Fields outside the patch keep their values.
	assert.Equal(t, "Two bedrooms close to the river", updated.Description)
	assert.Equal(t, "apartment", updated.PropertyType)

	_, err = repo.Patch(ctx, 9999, domain.PropertyPatch{Title: &title})
	assert.ErrorIs(t, err, domain.ErrPropertyNotFound)
}

func TestPropertyRepositoryArchive(t *testing.T) {
	repo := NewPropertyRepository(setupTestDB(t))
	ctx := context.Background()

	prop := testProperty("Riverside flat", "DE")
	require.NoError(t, repo.Create(ctx, prop))

	archived, err := repo.Archive(ctx, prop.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.PropertyStatusArchived, archived.Status)

	// Soft delete: the row is still retrievable.
	found, err := repo.FindByID(ctx, prop.ID, "DE")
	require.NoError(t, err)
	assert.Equal(t, domain.PropertyStatusArchived, found.Status)

	_, err = repo.Archive(ctx, 9999)
	assert.ErrorIs(t, err, domain.ErrPropertyNotFound)
}

func TestPropertyRepositorySetPublished(t *testing.T) {
	repo := NewPropertyRepository(setupTestDB(t))
	ctx := context.Background()

	prop := testProperty("Riverside flat", "DE")
	require.NoError(t, repo.Create(ctx, prop))

	published, err := repo.SetPublished(ctx, prop.ID, true)
	require.NoError(t, err)
	assert.True(t, published.IsPublished)
	require.NotNil(t, published.PublishedAt)

	unpublished, err := repo.SetPublished(ctx, prop.ID, false)
	require.NoError(t, err)
	assert.False(t, unpublished.IsPublished)
	assert.Nil(t, unpublished.PublishedAt)

	// Re-publishing stamps a fresh timestamp.
	again, err := repo.SetPublished(ctx, prop.ID, true)
	require.NoError(t, err)
	assert.True(t, again.IsPublished)
	require.NotNil(t, again.PublishedAt)

	_, err = repo.SetPublished(ctx, 9999, true)
	assert.ErrorIs(t, err, domain.ErrPropertyNotFound)
}

func TestPropertyRepositorySetStatus(t *testing.T) {
	repo := NewPropertyRepository(setupTestDB(t))
	ctx := context.Background()

	prop := testProperty("Riverside flat", "DE")
	require.NoError(t, repo.Create(ctx, prop))

	updated, err := repo.SetStatus(ctx, prop.ID, "under_offer", "buyer viewing scheduled")
	require.NoError(t, err)
	assert.Equal(t, "under_offer", updated.Status)
	assert.Equal(t, "buyer viewing scheduled", updated.Note)

	_, err = repo.SetStatus(ctx, 9999, "sold", "")
	assert.ErrorIs(t, err, domain.ErrPropertyNotFound)
}
