package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/stpnv0/CinemaDistrict/internal/domain"
	"github.com/stpnv0/CinemaDistrict/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

const maxReviewLength = 1000

// RatingService keeps one rating per movie and user plus a per-movie
// summary. Summary updates are read-modify-write, serialised by mu.
type RatingService struct {
	kv     ports.KVStore
	mu     sync.Mutex
	logger logger.Logger
}

func NewRatingService(kv ports.KVStore, logger logger.Logger) *RatingService {
	return &RatingService{kv: kv, logger: logger}
}

// Rate stores the user's rating and returns the updated summary. A repeat
// rating replaces the earlier vote.
func (s *RatingService) Rate(ctx context.Context, input domain.RatingInput) (*domain.RatingSummary, error) {
	input.Review = strings.TrimSpace(input.Review)
	switch {
	case input.MovieID <= 0:
		return nil, fmt.Errorf("%w: movie id must be positive", domain.ErrValidation)
	case input.UserID == "":
		return nil, fmt.Errorf("%w: user id is required", domain.ErrValidation)
	case input.Rating < domain.MinRating || input.Rating > domain.MaxRating:
		return nil, fmt.Errorf("%w: rating must be between %d and %d",
			domain.ErrValidation, domain.MinRating, domain.MaxRating)
	case len(input.Review) > maxReviewLength:
		return nil, fmt.Errorf("%w: review must be at most %d characters", domain.ErrValidation, maxReviewLength)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	prev, err := s.UserRating(ctx, input.MovieID, input.UserID)
	if err != nil && !errors.Is(err, domain.ErrRatingNotFound) {
		return nil, err
	}

	summary, err := s.Summary(ctx, input.MovieID)
	if err != nil {
		return nil, err
	}

	if prev != nil && summary.Ratings[prev.Rating] > 0 {
		summary.Ratings[prev.Rating]--
		summary.TotalRatings--
	}
	summary.Ratings[input.Rating]++
	summary.TotalRatings++
	summary.AverageRating = average(summary)

	rating := &domain.Rating{
		MovieID:    input.MovieID,
		UserID:     input.UserID,
		Rating:     input.Rating,
		Review:     input.Review,
		MovieTitle: input.MovieTitle,
		RatedAt:    time.Now().UTC(),
	}

	if err = s.put(ctx, ratingKey(input.MovieID, input.UserID), rating); err != nil {
		return nil, fmt.Errorf("save rating: %w", err)
	}
	if err = s.put(ctx, summaryKey(input.MovieID), summary); err != nil {
		return nil, fmt.Errorf("save rating summary: %w", err)
	}

	s.logger.Info("movie rated",
		logger.Int("movie_id", input.MovieID),
		logger.String("user_id", input.UserID),
		logger.Int("rating", input.Rating),
	)

	return summary, nil
}

// Summary returns an empty summary for a movie nobody rated yet.
func (s *RatingService) Summary(ctx context.Context, movieID int) (*domain.RatingSummary, error) {
	summary := domain.NewRatingSummary(movieID)

	err := s.get(ctx, summaryKey(movieID), summary)
	if err != nil && !errors.Is(err, domain.ErrKeyNotFound) {
		return nil, fmt.Errorf("load rating summary: %w", err)
	}

	return summary, nil
}

func (s *RatingService) UserRating(ctx context.Context, movieID int, userID string) (*domain.Rating, error) {
	var rating domain.Rating

	if err := s.get(ctx, ratingKey(movieID, userID), &rating); err != nil {
		if errors.Is(err, domain.ErrKeyNotFound) {
			return nil, domain.ErrRatingNotFound
		}
		return nil, fmt.Errorf("load rating: %w", err)
	}

	return &rating, nil
}

func (s *RatingService) get(ctx context.Context, key string, v any) error {
	raw, err := s.kv.Get(ctx, key)
	if err != nil {
		return err
	}
	if err = json.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("decode %s: %w", key, err)
	}
	return nil
}

func (s *RatingService) put(ctx context.Context, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	return s.kv.Set(ctx, key, raw)
}

func average(summary *domain.RatingSummary) float64 {
	if summary.TotalRatings == 0 {
		return 0
	}

	sum := 0
	for score, count := range summary.Ratings {
		sum += score * count
	}

	return math.Round(float64(sum)/float64(summary.TotalRatings)*10) / 10
}

func ratingKey(movieID int, userID string) string {
	return "ratings:" + strconv.Itoa(movieID) + ":" + userID
}

func summaryKey(movieID int) string {
	return "ratings:summary:" + strconv.Itoa(movieID)
}
