package service

import (
	"context"
	"sync"
	"testing"

	"github.com/stpnv0/CinemaDistrict/internal/domain"
	"github.com/stpnv0/CinemaDistrict/internal/service/ports/mocks"
	"github.com/stretchr/testify/mock"
)

// newMemKV returns a KVStore mock backed by a map.
func newMemKV(t *testing.T) (*mocks.MockKVStore, map[string][]byte) {
	t.Helper()

	var mu sync.Mutex
	data := make(map[string][]byte)
	kv := mocks.NewMockKVStore(t)

	kv.EXPECT().Get(mock.Anything, mock.Anything).RunAndReturn(func(_ context.Context, key string) ([]byte, error) {
		mu.Lock()
		defer mu.Unlock()
		v, ok := data[key]
		if !ok {
			return nil, domain.ErrKeyNotFound
		}
		return v, nil
	}).Maybe()

	kv.EXPECT().Set(mock.Anything, mock.Anything, mock.Anything).RunAndReturn(func(_ context.Context, key string, value []byte) error {
		mu.Lock()
		defer mu.Unlock()
		data[key] = value
		return nil
	}).Maybe()

	kv.EXPECT().Remove(mock.Anything, mock.Anything).RunAndReturn(func(_ context.Context, key string) error {
		mu.Lock()
		defer mu.Unlock()
		delete(data, key)
		return nil
	}).Maybe()

	return kv, data
}
