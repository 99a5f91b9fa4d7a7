package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/stpnv0/CinemaDistrict/internal/domain"
	"github.com/stpnv0/CinemaDistrict/internal/service/ports"
)

const (
	maxStoredSearches = 10
	shownSearches     = 5
	maxQueryLength    = 200
)

type SearchService struct {
	kv ports.KVStore
	mu sync.Mutex
}

func NewSearchService(kv ports.KVStore) *SearchService {
	return &SearchService{kv: kv}
}

// Recent returns the user's latest searches, newest first.
func (s *SearchService) Recent(ctx context.Context, userID string) ([]string, error) {
	all, err := s.load(ctx, userID)
	if err != nil {
		return nil, err
	}
	return shown(all), nil
}

// Add records query as the newest search, dropping an older identical
// entry, and returns the updated recent list.
func (s *SearchService) Add(ctx context.Context, userID, query string) ([]string, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, fmt.Errorf("%w: search query is required", domain.ErrValidation)
	}
	if len(query) > maxQueryLength {
		return nil, fmt.Errorf("%w: search query is too long", domain.ErrValidation)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	all, err := s.load(ctx, userID)
	if err != nil {
		return nil, err
	}

	next := make([]string, 0, maxStoredSearches)
	next = append(next, query)
	for _, q := range all {
		if q != query && len(next) < maxStoredSearches {
			next = append(next, q)
		}
	}

	raw, err := json.Marshal(next)
	if err != nil {
		return nil, fmt.Errorf("encode searches: %w", err)
	}
	if err = s.kv.Set(ctx, searchKey(userID), raw); err != nil {
		return nil, fmt.Errorf("save searches: %w", err)
	}

	return shown(next), nil
}

func (s *SearchService) Clear(ctx context.Context, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.kv.Remove(ctx, searchKey(userID)); err != nil {
		return fmt.Errorf("clear searches: %w", err)
	}
	return nil
}

func (s *SearchService) load(ctx context.Context, userID string) ([]string, error) {
	raw, err := s.kv.Get(ctx, searchKey(userID))
	if err != nil {
		if errors.Is(err, domain.ErrKeyNotFound) {
			return []string{}, nil
		}
		return nil, fmt.Errorf("load searches: %w", err)
	}

	var all []string
	if err = json.Unmarshal(raw, &all); err != nil {
		return nil, fmt.Errorf("decode searches: %w", err)
	}
	return all, nil
}

func shown(all []string) []string {
	if len(all) > shownSearches {
		all = all[:shownSearches]
	}
	return append([]string{}, all...)
}

func searchKey(userID string) string {
	return "searches:recent:" + userID
}
