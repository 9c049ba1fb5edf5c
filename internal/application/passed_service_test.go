package application

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/passby/passby-backend/internal/domain/entity"
)

func newTestPassedService() (*PassedUserService, *memPassedRepo, *memUserInfoRepo) {
	events := newMemPassedRepo()
	infos := newMemUserInfoRepo()
	svc := &PassedUserService{
		Repo:     events,
		InfoRepo: infos,
		Logger:   testLogger(),
	}
	return svc, events, infos
}

func TestPassedServiceTodayWindow(t *testing.T) {
	t.Parallel()
	svc, events, infos := newTestPassedService()
	ctx := context.Background()

	now := time.Date(2026, 3, 14, 15, 0, 0, 0, time.UTC)
	svc.Now = func() time.Time { return now }

	require.NoError(t, infos.Upsert(ctx, &entity.UserInfo{UserID: 2, Nickname: "bob", AvatarURL: "https://cdn.example.com/b.png"}))
	require.NoError(t, infos.Upsert(ctx, &entity.UserInfo{UserID: 3, Nickname: "carol"}))

	// One encounter this morning, one yesterday, one for another user.
	require.NoError(t, events.Append(ctx, &entity.PassedUserEvent{UserID: 1, OtherUserID: 2, PassedAt: now.Add(-5 * time.Hour)}))
	require.NoError(t, events.Append(ctx, &entity.PassedUserEvent{UserID: 1, OtherUserID: 3, PassedAt: now.Add(-24 * time.Hour)}))
	require.NoError(t, events.Append(ctx, &entity.PassedUserEvent{UserID: 9, OtherUserID: 2, PassedAt: now}))

	summaries, err := svc.Today(ctx, 1)
	require.NoError(t, err)
	require.Len(t, summaries, 1)
	assert.Equal(t, int64(2), summaries[0].UserID)
	assert.Equal(t, "bob", summaries[0].Nickname)
	assert.Equal(t, "https://cdn.example.com/b.png", summaries[0].AvatarURL)
	assert.True(t, summaries[0].PassedAt.Equal(now.Add(-5*time.Hour)))
}

func TestPassedServiceTodayOmitsUnknownProfiles(t *testing.T) {
	t.Parallel()
	svc, events, infos := newTestPassedService()
	ctx := context.Background()

	now := time.Date(2026, 3, 14, 15, 0, 0, 0, time.UTC)
	svc.Now = func() time.Time { return now }

	require.NoError(t, infos.Upsert(ctx, &entity.UserInfo{UserID: 2, Nickname: "bob"}))
	require.NoError(t, events.Append(ctx, &entity.PassedUserEvent{UserID: 1, OtherUserID: 2, PassedAt: now.Add(-time.Hour)}))
	// Counterpart 5 has no profile record; the encounter is dropped from the
	// summary rather than failing the whole request.
	require.NoError(t, events.Append(ctx, &entity.PassedUserEvent{UserID: 1, OtherUserID: 5, PassedAt: now.Add(-time.Minute)}))

	summaries, err := svc.Today(ctx, 1)
	require.NoError(t, err)
	require.Len(t, summaries, 1)
	assert.Equal(t, int64(2), summaries[0].UserID)
}

func TestPassedServiceTodayEmpty(t *testing.T) {
	t.Parallel()
	svc, _, _ := newTestPassedService()

	summaries, err := svc.Today(context.Background(), 1)
	require.NoError(t, err)
	assert.NotNil(t, summaries)
	assert.Empty(t, summaries)
}

func TestPassedServiceRecordEncounter(t *testing.T) {
	t.Parallel()
	svc, events, _ := newTestPassedService()
	ctx := context.Background()

	now := time.Date(2026, 3, 14, 15, 0, 0, 0, time.UTC)
	cooldown := 15 * time.Minute

	recorded, err := svc.RecordEncounter(ctx, 1, 2, now, cooldown)
	require.NoError(t, err)
	assert.True(t, recorded)

	// Both directions were written.
	mine, err := events.ListByUserBetween(ctx, 1, now.Add(-time.Minute), now.Add(time.Minute))
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, int64(2), mine[0].OtherUserID)
	theirs, err := events.ListByUserBetween(ctx, 2, now.Add(-time.Minute), now.Add(time.Minute))
	require.NoError(t, err)
	require.Len(t, theirs, 1)
	assert.Equal(t, int64(1), theirs[0].OtherUserID)

	// Within the cooldown nothing new is recorded, even from the other side.
	recorded, err = svc.RecordEncounter(ctx, 1, 2, now.Add(5*time.Minute), cooldown)
	require.NoError(t, err)
	assert.False(t, recorded)
	recorded, err = svc.RecordEncounter(ctx, 2, 1, now.Add(10*time.Minute), cooldown)
	require.NoError(t, err)
	assert.False(t, recorded)

	// After the cooldown the pair can meet again.
	recorded, err = svc.RecordEncounter(ctx, 1, 2, now.Add(20*time.Minute), cooldown)
	require.NoError(t, err)
	assert.True(t, recorded)
}

func TestPassedServiceRecordEncounterSelf(t *testing.T) {
	t.Parallel()
	svc, events, _ := newTestPassedService()
	ctx := context.Background()

	recorded, err := svc.RecordEncounter(ctx, 1, 1, time.Now(), 0)
	require.NoError(t, err)
	assert.False(t, recorded)

	all, err := events.ListByUserBetween(ctx, 1, time.Time{}, time.Now().Add(time.Hour))
	require.NoError(t, err)
	assert.Empty(t, all)
}
