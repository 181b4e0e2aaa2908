package jsondb

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kuvvetliisik/pharma-showcase/internal/domain"
	"github.com/kuvvetliisik/pharma-showcase/internal/repository"
	apperrors "github.com/kuvvetliisik/pharma-showcase/pkg/errors"
)

func TestSliderRepository_Create_AssignsSequentialOrder(t *testing.T) {
	repo := NewSliderRepository(testStore(t))
	ctx := context.Background()

	first := &domain.Slider{ID: "s1", Image: "/uploads/sliders/a.jpg", Active: true}
	second := &domain.Slider{ID: "s2", Image: "/uploads/sliders/b.jpg", Active: true}

	require.NoError(t, repo.Create(ctx, first))
	require.NoError(t, repo.Create(ctx, second))

	assert.Equal(t, 1, first.Order)
	assert.Equal(t, 2, second.Order)
}

func TestSliderRepository_Create_OrderIgnoresCallerValue(t *testing.T) {
	repo := NewSliderRepository(testStore(t))

	slider := &domain.Slider{ID: "s1", Image: "/uploads/sliders/a.jpg", Order: 99, Active: true}
	require.NoError(t, repo.Create(context.Background(), slider))

	assert.Equal(t, 1, slider.Order)
}

func TestSliderRepository_Create_OrderCanRepeatAfterDelete(t *testing.T) {
	repo := NewSliderRepository(testStore(t))
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &domain.Slider{ID: "s1", Image: "a.jpg", Active: true}))
	require.NoError(t, repo.Create(ctx, &domain.Slider{ID: "s2", Image: "b.jpg", Active: true}))

	// Deleting s1 does not renumber s2; the next create reuses order 2.
	require.NoError(t, repo.Delete(ctx, "s1"))

	third := &domain.Slider{ID: "s3", Image: "c.jpg", Active: true}
	require.NoError(t, repo.Create(ctx, third))
	assert.Equal(t, 2, third.Order)

	sliders, err := repo.List(ctx, repository.SliderFilter{IncludeInactive: true})
	require.NoError(t, err)
	require.Len(t, sliders, 2)
	assert.Equal(t, 2, sliders[0].Order)
	assert.Equal(t, 2, sliders[1].Order)
}

func TestSliderRepository_List_ExcludesInactiveByDefault(t *testing.T) {
	repo := NewSliderRepository(testStore(t))
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &domain.Slider{ID: "s1", Image: "a.jpg", Active: true}))
	require.NoError(t, repo.Create(ctx, &domain.Slider{ID: "s2", Image: "b.jpg", Active: false}))

	visible, err := repo.List(ctx, repository.SliderFilter{})
	require.NoError(t, err)
	require.Len(t, visible, 1)
	assert.Equal(t, "s1", visible[0].ID)

	all, err := repo.List(ctx, repository.SliderFilter{IncludeInactive: true})
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestSliderRepository_List_SortsByOrderAscending(t *testing.T) {
	store := testStore(t)
	repo := NewSliderRepository(store)
	ctx := context.Background()

	// Write sliders with shuffled orders directly; List must sort them.
	err := store.Update(ctx, func(doc *Document) error {
		doc.Sliders = []domain.Slider{
			{ID: "s3", Image: "c.jpg", Order: 3, Active: true},
			{ID: "s1", Image: "a.jpg", Order: 1, Active: true},
			{ID: "s2", Image: "b.jpg", Order: 2, Active: true},
		}
		return nil
	})
	require.NoError(t, err)

	sliders, err := repo.List(ctx, repository.SliderFilter{})
	require.NoError(t, err)
	require.Len(t, sliders, 3)
	assert.Equal(t, []string{"s1", "s2", "s3"}, []string{sliders[0].ID, sliders[1].ID, sliders[2].ID})
}

func TestSliderRepository_List_Empty(t *testing.T) {
	repo := NewSliderRepository(testStore(t))

	sliders, err := repo.List(context.Background(), repository.SliderFilter{})

	require.NoError(t, err)
	assert.NotNil(t, sliders)
	assert.Empty(t, sliders)
}

func TestSliderRepository_GetByID_NotFound(t *testing.T) {
	repo := NewSliderRepository(testStore(t))

	slider, err := repo.GetByID(context.Background(), "missing")

	assert.Nil(t, slider)
	assert.True(t, errors.Is(err, apperrors.ErrNotFound))
}

func TestSliderRepository_Update(t *testing.T) {
	repo := NewSliderRepository(testStore(t))
	ctx := context.Background()

	slider := &domain.Slider{ID: "s1", Image: "a.jpg", Active: true}
	require.NoError(t, repo.Create(ctx, slider))

	slider.Active = false
	require.NoError(t, repo.Update(ctx, slider))

	got, err := repo.GetByID(ctx, "s1")
	require.NoError(t, err)
	assert.False(t, got.Active)
}

func TestSliderRepository_Delete_NotFound(t *testing.T) {
	repo := NewSliderRepository(testStore(t))

	err := repo.Delete(context.Background(), "missing")

	assert.True(t, errors.Is(err, apperrors.ErrNotFound))
}
