package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nagoyameshi/backend/internal/testhelpers"
	"github.com/nagoyameshi/backend/internal/types"
)

func TestReviewServiceOnePerUser(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	svc := NewReviewService(db)
	ctx := context.Background()

	user := testhelpers.CreateTestUser(t, db)
	restaurant := testhelpers.CreateTestRestaurant(t, db, nil)
	form := types.ReviewForm{Score: 5, Content: "最高でした"}

	review, err := svc.Create(ctx, restaurant.ID, user.ID, form)
	require.NoError(t, err)
	assert.NotZero(t, review.ID)

	_, err = svc.Create(ctx, restaurant.ID, user.ID, form)
	assert.ErrorIs(t, err, ErrAlreadyReviewed)

	reviewed, err := svc.HasReviewed(ctx, restaurant.ID, user.ID)
	require.NoError(t, err)
	assert.True(t, reviewed)

	_, err = svc.Create(ctx, 9999, user.ID, form)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestReviewServiceAuthorOnly(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	svc := NewReviewService(db)
	ctx := context.Background()

	author := testhelpers.CreateTestUser(t, db)
	other := testhelpers.CreateTestUser(t, db)
	restaurant := testhelpers.CreateTestRestaurant(t, db, nil)
	another := testhelpers.CreateTestRestaurant(t, db, nil)
	review := testhelpers.CreateTestReview(t, db, author, restaurant, 3)

	edit := types.ReviewForm{Score: 4, Content: "再訪しました"}
	assert.ErrorIs(t, svc.Update(ctx, restaurant.ID, review.ID, other.ID, edit), ErrForbidden)
	assert.ErrorIs(t, svc.Update(ctx, another.ID, review.ID, author.ID, edit), ErrNotFound)
	require.NoError(t, svc.Update(ctx, restaurant.ID, review.ID, author.ID, edit))

	got, err := svc.GetOwn(ctx, restaurant.ID, review.ID, author.ID)
	require.NoError(t, err)
	assert.Equal(t, 4, got.Score)
	assert.Equal(t, "再訪しました", got.Content)

	assert.ErrorIs(t, svc.Delete(ctx, restaurant.ID, review.ID, other.ID), ErrForbidden)
	require.NoError(t, svc.Delete(ctx, restaurant.ID, review.ID, author.ID))
	require.NoError(t, svc.Delete(ctx, restaurant.ID, review.ID, author.ID))

	page, err := svc.ListByRestaurant(ctx, restaurant.ID, types.Pageable{})
	require.NoError(t, err)
	assert.True(t, page.IsEmpty())
}
