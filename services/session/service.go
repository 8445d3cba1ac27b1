package session

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"medexam/models"
	"medexam/services/availability"
	"medexam/services/booking"
	"medexam/utils"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// SessionService manages the interactive slot-picker flow: one fresh
// availability computation per session, cached client state driven by
// discrete actions, and a single terminal commit.
type SessionService interface {
	Start(ctx context.Context, examID, claimantID string, startDate time.Time, excludeBookingID string, now time.Time) (*models.PickerSession, error)
	Get(ctx context.Context, sessionID string) (*models.PickerSession, error)
	Apply(ctx context.Context, sessionID string, action models.SessionAction) (*models.PickerSession, error)
	Commit(ctx context.Context, sessionID, examinerID string) (*models.SelectedAppointment, error)
	Cancel(ctx context.Context, sessionID string) error
}

// DefaultSessionService caches picker sessions in redis under a UUID
// key, the same way booking sessions are held between matching and
// confirmation.
type DefaultSessionService struct {
	Engine        availability.AvailabilityEngine
	BookingSvc    booking.BookingService
	Cache         *redis.Client
	MaxDaysToShow int
}

func (s *DefaultSessionService) Start(ctx context.Context, examID, claimantID string, startDate time.Time, excludeBookingID string, now time.Time) (*models.PickerSession, error) {
	result, err := s.Engine.ComputeAvailability(ctx, examID, claimantID, startDate, excludeBookingID)
	if err != nil {
		return nil, err
	}

	sess := &models.PickerSession{
		ID:               uuid.New().String(),
		ExamID:           examID,
		ClaimantID:       claimantID,
		Result:           *result,
		MaxDaysToShow:    s.MaxDaysToShow,
		SelectedDayIndex: -1,
		Now:              now.UTC(),
	}
	AutoSelect(sess)

	if err := s.save(ctx, sess); err != nil {
		return nil, err
	}
	return sess, nil
}

func (s *DefaultSessionService) Get(ctx context.Context, sessionID string) (*models.PickerSession, error) {
	return s.load(ctx, sessionID)
}

func (s *DefaultSessionService) Apply(ctx context.Context, sessionID string, action models.SessionAction) (*models.PickerSession, error) {
	sess, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if err := Apply(sess, action); err != nil {
		return nil, err
	}
	if err := s.save(ctx, sess); err != nil {
		return nil, err
	}
	return sess, nil
}

// Commit converts the selected (examiner, slot, day) into a snapshot
// and hands it to the booking collaborator exactly once; the session
// is terminal afterwards.
func (s *DefaultSessionService) Commit(ctx context.Context, sessionID, examinerID string) (*models.SelectedAppointment, error) {
	logger := utils.GetLogger()

	sess, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if sess.Committed {
		return nil, fmt.Errorf("session %s: %w", sessionID, ErrSessionCommitted)
	}

	day := sess.SelectedDay()
	slot := sess.SelectedSlot()
	if day == nil || slot == nil {
		return nil, fmt.Errorf("no day and time selected")
	}
	if !slot.Start.After(sess.Now) {
		return nil, fmt.Errorf("selected slot is in the past")
	}

	var opt *models.ExaminerAvailabilityOption
	for i := range slot.Examiners {
		if slot.Examiners[i].ExaminerID == examinerID {
			opt = &slot.Examiners[i]
			break
		}
	}
	if opt == nil {
		return nil, fmt.Errorf("examiner %s is not available for the selected slot", examinerID)
	}

	appt := availability.FinalizeSelection(*day, *slot, *opt)
	if _, err := s.BookingSvc.ConfirmAppointment(ctx, sess.ExamID, appt); err != nil {
		return nil, err
	}

	sess.Committed = true
	if err := s.save(ctx, sess); err != nil {
		// The hand-off already happened; a stale cached session only
		// risks a rejected double commit later.
		logger.Warn("failed to persist committed session",
			zap.String("sessionId", sessionID), zap.Error(err))
	}
	return &appt, nil
}

func (s *DefaultSessionService) Cancel(ctx context.Context, sessionID string) error {
	// Abandoning before commit has no side effects to unwind.
	if err := s.Cache.Del(ctx, utils.SessionCachePrefix+sessionID).Err(); err != nil {
		return fmt.Errorf("failed to cancel session %s: %w", sessionID, err)
	}
	return nil
}

func (s *DefaultSessionService) load(ctx context.Context, sessionID string) (*models.PickerSession, error) {
	data, err := s.Cache.Get(ctx, utils.SessionCachePrefix+sessionID).Bytes()
	if err == redis.Nil {
		return nil, fmt.Errorf("session %s not found or expired", sessionID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load session %s: %w", sessionID, err)
	}
	var sess models.PickerSession
	if err := json.Unmarshal(data, &sess); err != nil {
		return nil, fmt.Errorf("failed to decode session %s: %w", sessionID, err)
	}
	return &sess, nil
}

func (s *DefaultSessionService) save(ctx context.Context, sess *models.PickerSession) error {
	data, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("failed to encode session %s: %w", sess.ID, err)
	}
	if err := s.Cache.Set(ctx, utils.SessionCachePrefix+sess.ID, data, utils.SessionCacheTTL).Err(); err != nil {
		return fmt.Errorf("failed to cache session %s: %w", sess.ID, err)
	}
	return nil
}
