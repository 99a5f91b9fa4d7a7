package service

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stpnv0/CinemaDistrict/internal/domain"
	"github.com/stpnv0/CinemaDistrict/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRatingService_Rate_FirstVote(t *testing.T) {
	kv, data := newMemKV(t)
	svc := NewRatingService(kv, newTestLogger(t))

	summary, err := svc.Rate(context.Background(), domain.RatingInput{
		MovieID: 7, UserID: "u1", Rating: 8, Review: " great ", MovieTitle: "Joker",
	})

	require.NoError(t, err)
	assert.Equal(t, 1, summary.TotalRatings)
	assert.Equal(t, 8.0, summary.AverageRating)
	assert.Equal(t, 1, summary.Ratings[8])
	assert.Len(t, summary.Ratings, 10)
	assert.Contains(t, data, "ratings:7:u1")
	assert.Contains(t, data, "ratings:summary:7")

	r, err := svc.UserRating(context.Background(), 7, "u1")
	require.NoError(t, err)
	assert.Equal(t, "great", r.Review)
	assert.Equal(t, "Joker", r.MovieTitle)
}

func TestRatingService_Rate_ReplacesPreviousVote(t *testing.T) {
	kv, _ := newMemKV(t)
	svc := NewRatingService(kv, newTestLogger(t))
	ctx := context.Background()

	_, err := svc.Rate(ctx, domain.RatingInput{MovieID: 1, UserID: "u1", Rating: 4})
	require.NoError(t, err)
	_, err = svc.Rate(ctx, domain.RatingInput{MovieID: 1, UserID: "u2", Rating: 9})
	require.NoError(t, err)

	summary, err := svc.Rate(ctx, domain.RatingInput{MovieID: 1, UserID: "u1", Rating: 10})
	require.NoError(t, err)

	assert.Equal(t, 2, summary.TotalRatings)
	assert.Equal(t, 0, summary.Ratings[4])
	assert.Equal(t, 1, summary.Ratings[9])
	assert.Equal(t, 1, summary.Ratings[10])
	assert.Equal(t, 9.5, summary.AverageRating)
}

func TestRatingService_Rate_AverageRoundedToOneDecimal(t *testing.T) {
	kv, _ := newMemKV(t)
	svc := NewRatingService(kv, newTestLogger(t))
	ctx := context.Background()

	for i, score := range []int{7, 8, 8} {
		_, err := svc.Rate(ctx, domain.RatingInput{MovieID: 2, UserID: string(rune('a' + i)), Rating: score})
		require.NoError(t, err)
	}

	summary, err := svc.Summary(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, 7.7, summary.AverageRating)
}

func TestRatingService_Rate_Validation(t *testing.T) {
	svc := NewRatingService(nil, newTestLogger(t))

	tests := []domain.RatingInput{
		{MovieID: 0, UserID: "u1", Rating: 5},
		{MovieID: 1, UserID: "", Rating: 5},
		{MovieID: 1, UserID: "u1", Rating: 0},
		{MovieID: 1, UserID: "u1", Rating: 11},
	}

	for _, in := range tests {
		_, err := svc.Rate(context.Background(), in)
		assert.ErrorIs(t, err, domain.ErrValidation)
	}
}

func TestRatingService_Summary_Empty(t *testing.T) {
	kv, _ := newMemKV(t)
	svc := NewRatingService(kv, newTestLogger(t))

	summary, err := svc.Summary(context.Background(), 99)

	require.NoError(t, err)
	assert.Equal(t, 99, summary.MovieID)
	assert.Zero(t, summary.TotalRatings)
	assert.Zero(t, summary.AverageRating)
}

func TestRatingService_UserRating_NotFound(t *testing.T) {
	kv, _ := newMemKV(t)
	svc := NewRatingService(kv, newTestLogger(t))

	_, err := svc.UserRating(context.Background(), 1, "u1")

	assert.ErrorIs(t, err, domain.ErrRatingNotFound)
}

func TestRatingService_StoreError(t *testing.T) {
	kv := mocks.NewMockKVStore(t)
	svc := NewRatingService(kv, newTestLogger(t))

	storeErr := errors.New("timeout")
	kv.EXPECT().Get(mock.Anything, mock.Anything).Return(nil, storeErr)

	_, err := svc.Rate(context.Background(), domain.RatingInput{MovieID: 1, UserID: "u1", Rating: 5})

	assert.ErrorIs(t, err, storeErr)
}

func TestRatingService_ConcurrentVotesAreCounted(t *testing.T) {
	kv, _ := newMemKV(t)
	svc := NewRatingService(kv, newTestLogger(t))
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := range 20 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = svc.Rate(ctx, domain.RatingInput{MovieID: 3, UserID: string(rune('A' + i)), Rating: 5})
		}()
	}
	wg.Wait()

	summary, err := svc.Summary(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, 20, summary.TotalRatings)
	assert.Equal(t, 5.0, summary.AverageRating)
}
