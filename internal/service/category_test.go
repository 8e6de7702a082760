package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nagoyameshi/backend/internal/testhelpers"
	"github.com/nagoyameshi/backend/internal/types"
)

func TestCategoryServiceList(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	svc := NewCategoryService(db)
	ctx := context.Background()

	for i := 0; i < 15; i++ {
		require.NoError(t, svc.Create(ctx, types.CategoryRegisterForm{CategoryName: fmt.Sprintf("カテゴリ%02d", i)}))
	}
	require.NoError(t, svc.Create(ctx, types.CategoryRegisterForm{CategoryName: "ひつまぶし"}))

	page, err := svc.List(ctx, "", types.Pageable{})
	require.NoError(t, err)
	assert.Equal(t, CategoryPageSize, page.Size)
	assert.Len(t, page.Content, 10)
	assert.Equal(t, int64(16), page.TotalElements)

	page, err = svc.List(ctx, "  ひつまぶし ", types.Pageable{})
	require.NoError(t, err)
	require.Len(t, page.Content, 1)
	assert.Equal(t, "ひつまぶし", page.Content[0].CategoryName)
	assert.Equal(t, CategoryPageSize, page.Size)
}

func TestCategoryServiceUpdateDelete(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	svc := NewCategoryService(db)
	ctx := context.Background()

	category := testhelpers.CreateTestCategory(t, db, "和食")

	require.NoError(t, svc.Update(ctx, types.CategoryEditForm{ID: category.ID, CategoryName: "日本料理"}))
	got, err := svc.Get(ctx, category.ID)
	require.NoError(t, err)
	assert.Equal(t, "日本料理", got.CategoryName)

	assert.ErrorIs(t, svc.Update(ctx, types.CategoryEditForm{ID: 404, CategoryName: "x"}), ErrNotFound)

	require.NoError(t, svc.Delete(ctx, category.ID))
	_, err = svc.Get(ctx, category.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, svc.Delete(ctx, category.ID), "deleting twice is a no-op")
}
