package application

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/passby/passby-backend/internal/domain/entity"
)

func TestGeoFenceServiceAppendAndFetch(t *testing.T) {
	t.Parallel()
	svc := &GeoFenceService{Repo: newMemGeoFenceRepo()}
	ctx := context.Background()

	base := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)

	// Recorded out of order; fetch sorts by timestamp.
	_, err := svc.Exit(ctx, 1, "office", base.Add(30*time.Minute))
	require.NoError(t, err)
	_, err = svc.Entry(ctx, 1, "office", base)
	require.NoError(t, err)
	_, err = svc.Entry(ctx, 2, "gym", base.Add(time.Minute))
	require.NoError(t, err)

	events, err := svc.Fetch(ctx, 1)
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, entity.GeoFenceEntry, events[0].EventType)
	assert.Equal(t, entity.GeoFenceExit, events[1].EventType)
	assert.Equal(t, "office", events[0].ZoneID)
	assert.True(t, events[0].OccurredAt.Before(events[1].OccurredAt))
}

func TestGeoFenceServiceZeroTimestampMeansNow(t *testing.T) {
	t.Parallel()
	svc := &GeoFenceService{Repo: newMemGeoFenceRepo()}

	ev, err := svc.Entry(context.Background(), 1, "park", time.Time{})
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now(), ev.OccurredAt, 2*time.Second)
}

func TestGeoFenceServiceSameTimestampKeepsInsertionOrder(t *testing.T) {
	t.Parallel()
	svc := &GeoFenceService{Repo: newMemGeoFenceRepo()}
	ctx := context.Background()

	at := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)
	_, err := svc.Entry(ctx, 1, "office", at)
	require.NoError(t, err)
	_, err = svc.Exit(ctx, 1, "office", at)
	require.NoError(t, err)

	events, err := svc.Fetch(ctx, 1)
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, entity.GeoFenceEntry, events[0].EventType)
	assert.Equal(t, entity.GeoFenceExit, events[1].EventType)
}

func TestGeoFenceServiceFetchEmpty(t *testing.T) {
	t.Parallel()
	svc := &GeoFenceService{Repo: newMemGeoFenceRepo()}

	events, err := svc.Fetch(context.Background(), 42)
	require.NoError(t, err)
	assert.Empty(t, events)
}
