package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/stpnv0/CinemaDistrict/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchService_Recent_Empty(t *testing.T) {
	kv, _ := newMemKV(t)
	svc := NewSearchService(kv)

	got, err := svc.Recent(context.Background(), "u1")

	require.NoError(t, err)
	assert.Empty(t, got)
	assert.NotNil(t, got)
}

func TestSearchService_Add_NewestFirstAndDeduplicated(t *testing.T) {
	kv, _ := newMemKV(t)
	svc := NewSearchService(kv)
	ctx := context.Background()

	for _, q := range []string{"dune", "matrix", "joker"} {
		_, err := svc.Add(ctx, "u1", q)
		require.NoError(t, err)
	}

	got, err := svc.Add(ctx, "u1", " dune ")

	require.NoError(t, err)
	assert.Equal(t, []string{"dune", "joker", "matrix"}, got)
}

func TestSearchService_Add_CapsStoredAndShown(t *testing.T) {
	kv, data := newMemKV(t)
	svc := NewSearchService(kv)
	ctx := context.Background()

	var got []string
	for i := range 12 {
		var err error
		got, err = svc.Add(ctx, "u1", fmt.Sprintf("q%d", i))
		require.NoError(t, err)
	}

	assert.Equal(t, []string{"q11", "q10", "q9", "q8", "q7"}, got)
	assert.JSONEq(t, `["q11","q10","q9","q8","q7","q6","q5","q4","q3","q2"]`, string(data["searches:recent:u1"]))
}

func TestSearchService_Add_EmptyQuery(t *testing.T) {
	svc := NewSearchService(nil)

	_, err := svc.Add(context.Background(), "u1", "   ")

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestSearchService_PerUser(t *testing.T) {
	kv, _ := newMemKV(t)
	svc := NewSearchService(kv)
	ctx := context.Background()

	_, err := svc.Add(ctx, "u1", "dune")
	require.NoError(t, err)

	got, err := svc.Recent(ctx, "u2")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestSearchService_Clear(t *testing.T) {
	kv, _ := newMemKV(t)
	svc := NewSearchService(kv)
	ctx := context.Background()

	_, err := svc.Add(ctx, "u1", "dune")
	require.NoError(t, err)

	require.NoError(t, svc.Clear(ctx, "u1"))

	got, err := svc.Recent(ctx, "u1")
	require.NoError(t, err)
	assert.Empty(t, got)
}
