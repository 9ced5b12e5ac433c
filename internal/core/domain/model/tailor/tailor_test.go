package tailor_test

import (
	"testing"

	"tailorshop/internal/core/domain/model/kernel"
	"tailorshop/internal/core/domain/model/tailor"
	"tailorshop/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTailor(t *testing.T) *tailor.Tailor {
	t.Helper()
	loc, err := kernel.NewGeoPoint(40.7128, -74.0060)
	require.NoError(t, err)

	p := tailor.DefaultProfile("Stitch & Co")
	p.Specialties = []string{" Suits ", "Alterations", "Suits", ""}
	p.ExperienceYears = 12

	tl, err := tailor.NewTailor(kernel.NewUUID(), kernel.NewUUID(), p, &loc)
	require.NoError(t, err)
	return tl
}

func TestNewTailor(t *testing.T) {
	t.Run("normalizes specialties and starts available", func(t *testing.T) {
		tl := newTailor(t)

		require.NoError(t, tl.Validate())
		assert.Equal(t, []string{"Suits", "Alterations"}, tl.Profile().Specialties)
		assert.True(t, tl.IsAvailable())
		assert.Zero(t, tl.Rating())
		assert.Empty(t, tl.Portfolio())
		assert.NotNil(t, tl.Location())
		assert.True(t, tl.Profile().AcceptsInPerson)
	})

	t.Run("requires shop name", func(t *testing.T) {
		_, err := tailor.NewTailor(kernel.NewUUID(), kernel.NewUUID(), tailor.Profile{}, nil)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("rejects negative experience", func(t *testing.T) {
		p := tailor.DefaultProfile("Shop")
		p.ExperienceYears = -1
		_, err := tailor.NewTailor(kernel.NewUUID(), kernel.NewUUID(), p, nil)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("location is optional", func(t *testing.T) {
		tl, err := tailor.NewTailor(kernel.NewUUID(), kernel.NewUUID(), tailor.DefaultProfile("Shop"), nil)
		require.NoError(t, err)
		assert.Nil(t, tl.Location())
	})
}

func TestRestoreTailor(t *testing.T) {
	_, err := tailor.RestoreTailor(kernel.NewUUID(), kernel.NewUUID(), tailor.DefaultProfile("Shop"), nil, 5.5, 3, true, nil)
	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)

	tl, err := tailor.RestoreTailor(kernel.NewUUID(), kernel.NewUUID(), tailor.DefaultProfile("Shop"), nil, 4.5, 10, false, []string{"https://img/1.jpg"})
	require.NoError(t, err)
	assert.InDelta(t, 4.5, tl.Rating(), 0)
	assert.Equal(t, 10, tl.ReviewCount())
	assert.False(t, tl.IsAvailable())
	assert.Len(t, tl.Portfolio(), 1)
}

func TestTailor_HasAnySpecialty(t *testing.T) {
	tl := newTailor(t)

	assert.True(t, tl.HasAnySpecialty(nil))
	assert.True(t, tl.HasAnySpecialty([]string{"suits"}))
	assert.True(t, tl.HasAnySpecialty([]string{"bridal", "alterations"}))
	assert.False(t, tl.HasAnySpecialty([]string{"bridal"}))
}

func TestTailor_AddPortfolioItem(t *testing.T) {
	tl := newTailor(t)

	require.NoError(t, tl.AddPortfolioItem("https://cdn.example.com/look.jpg"))
	require.ErrorIs(t, tl.AddPortfolioItem(""), errs.ErrValueIsRequired)
	require.ErrorIs(t, tl.AddPortfolioItem("ftp://x/y.jpg"), errs.ErrValueIsInvalid)
	require.ErrorIs(t, tl.AddPortfolioItem("/relative.jpg"), errs.ErrValueIsInvalid)

	assert.Equal(t, []string{"https://cdn.example.com/look.jpg"}, tl.Portfolio())
}

func TestTailor_AddReview(t *testing.T) {
	tl := newTailor(t)

	require.NoError(t, tl.AddReview(4))
	require.NoError(t, tl.AddReview(5))
	require.Error(t, tl.AddReview(6))

	assert.InDelta(t, 4.5, tl.Rating(), 1e-9)
	assert.Equal(t, 2, tl.ReviewCount())
}

func TestTailor_UpdateProfile(t *testing.T) {
	tl := newTailor(t)

	require.Error(t, tl.UpdateProfile(tailor.Profile{}, nil))
	assert.Equal(t, "Stitch & Co", tl.Profile().ShopName)
	assert.NotNil(t, tl.Location())

	require.NoError(t, tl.UpdateProfile(tailor.DefaultProfile("Renamed"), nil))
	assert.Equal(t, "Renamed", tl.Profile().ShopName)
	assert.Nil(t, tl.Location())
}
