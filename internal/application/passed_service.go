package application

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/passby/passby-backend/internal/domain/entity"
	repo "github.com/passby/passby-backend/internal/domain/repository"
	"github.com/passby/passby-backend/pkg/helpers"
)

// PassedUserService implements the today's-passed-users lookup and the
// encounter recording used by the live location channel.
type PassedUserService struct {
	Repo     repo.PassedUserRepository
	InfoRepo repo.UserInfoRepository
	Logger   *logrus.Logger

	// Now is swappable in tests; nil means time.Now.
	Now func() time.Time
}

func (s *PassedUserService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// Today returns the caller's encounters within the current day window,
// enriched with the counterpart's profile. Counterparts without a profile
// record are omitted. An empty result is not an error.
func (s *PassedUserService) Today(ctx context.Context, userID int64) ([]entity.PassedUserSummary, error) {
	from, to := helpers.DayWindow(s.now())
	events, err := s.Repo.ListByUserBetween(ctx, userID, from, to)
	if err != nil {
		return nil, err
	}

	summaries := make([]entity.PassedUserSummary, 0, len(events))
	for _, ev := range events {
		info, err := s.InfoRepo.GetByUserID(ctx, ev.OtherUserID)
		if err != nil {
			if errors.Is(err, repo.ErrNotFound) {
				continue
			}
			return nil, err
		}
		summaries = append(summaries, entity.PassedUserSummary{
			UserID:    ev.OtherUserID,
			Nickname:  info.Nickname,
			AvatarURL: info.AvatarURL,
			PassedAt:  ev.PassedAt,
		})
	}
	return summaries, nil
}

// RecordEncounter appends a proximity encounter for both directions of the
// pair, unless one was already recorded within the cooldown.
func (s *PassedUserService) RecordEncounter(ctx context.Context, userID, otherUserID int64, at time.Time, cooldown time.Duration) (bool, error) {
	if userID == otherUserID {
		return false, nil
	}
	if at.IsZero() {
		at = s.now()
	}
	if cooldown > 0 {
		last, err := s.Repo.LastBetweenPair(ctx, userID, otherUserID)
		switch {
		case err == nil:
			if at.Sub(last) < cooldown {
				return false, nil
			}
		case errors.Is(err, repo.ErrNotFound):
			// first encounter for the pair
		default:
			return false, err
		}
	}
	for _, pair := range [][2]int64{{userID, otherUserID}, {otherUserID, userID}} {
		ev := &entity.PassedUserEvent{UserID: pair[0], OtherUserID: pair[1], PassedAt: at}
		if err := s.Repo.Append(ctx, ev); err != nil {
			return false, err
		}
	}
	if s.Logger != nil {
		s.Logger.WithFields(logrus.Fields{"user_id": userID, "other_user_id": otherUserID}).Debug("passed encounter recorded")
	}
	return true, nil
}
