package booking

import (
	"context"
	"fmt"

	"medexam/cron"
	bookingRepo "medexam/database/repository/booking"
	"medexam/models"
	"medexam/utils"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// BookingService is the external collaborator the availability engine
// hands committed appointments to. It owns the exclusivity check the
// engine deliberately does not make: the selected slot is re-validated
// against confirmed bookings at confirmation time.
type BookingService interface {
	ConfirmAppointment(ctx context.Context, examID string, appt models.SelectedAppointment) (*models.ExistingBooking, error)
}

// DefaultBookingService persists the booking and enqueues the
// examination-record sync.
type DefaultBookingService struct {
	Repo       bookingRepo.BookingRepository
	SyncClient *asynq.Client
}

func (s *DefaultBookingService) ConfirmAppointment(ctx context.Context, examID string, appt models.SelectedAppointment) (*models.ExistingBooking, error) {
	logger := utils.GetLogger()

	startMin := appt.SlotStart.Hour()*60 + appt.SlotStart.Minute()
	endMin := appt.SlotEnd.Hour()*60 + appt.SlotEnd.Minute()

	// Staleness check: the grid was a proposal only. Another user may
	// have taken the slot between render and commit.
	existing, err := s.Repo.GetConfirmedInRange(ctx, appt.Date, appt.Date, "")
	if err != nil {
		return nil, fmt.Errorf("failed to re-validate slot: %w", err)
	}
	for _, b := range existing {
		if b.ExaminerID == appt.ExaminerID && b.SlotStartMinutes == startMin {
			return nil, fmt.Errorf("slot %s %s is no longer available for examiner %s",
				appt.Date, utils.MinutesToClock(startMin), appt.ExaminerID)
		}
	}

	booking := models.ExistingBooking{
		ExamID:           examID,
		ExaminerID:       appt.ExaminerID,
		Date:             appt.Date,
		SlotStartMinutes: startMin,
		SlotEndMinutes:   endMin,
	}
	if err := s.Repo.Create(ctx, &booking); err != nil {
		return nil, fmt.Errorf("failed to confirm appointment: %w", err)
	}

	task, err := cron.NewAppointmentSyncTask(cron.AppointmentSyncPayload{
		ExamID:      examID,
		Appointment: appt,
		Booking:     booking,
	})
	if err != nil {
		return nil, err
	}
	if _, err := s.SyncClient.Enqueue(task); err != nil {
		// The booking itself is committed; losing the sync task only
		// delays the examination record update.
		logger.Error("failed to enqueue appointment sync",
			zap.String("examId", examID), zap.Error(err))
	}

	logger.Info("appointment confirmed",
		zap.String("examId", examID),
		zap.String("examinerId", appt.ExaminerID),
		zap.String("date", appt.Date))
	return &booking, nil
}
