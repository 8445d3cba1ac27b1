package availability

import (
	"context"
	"time"

	bookingRepo "medexam/database/repository/booking"
	examRepo "medexam/database/repository/exam"
	examinerRepo "medexam/database/repository/examiner"
	settingsRepo "medexam/database/repository/settings"
	supportRepo "medexam/database/repository/support"
	"medexam/models"
	"medexam/utils"

	"go.uber.org/zap"
)

// AvailabilityEngine computes the bookable-slot surface for one
// examination. The computation is synchronous and side-effect free:
// one immutable result per call, no exclusivity guarantee. A rendered
// slot is a proposal that the booking collaborator re-validates at
// commit time.
type AvailabilityEngine interface {
	ComputeAvailability(ctx context.Context, examID, claimantID string, startDate time.Time, excludeBookingID string) (*models.AvailableExaminersResult, error)
}

// DefaultAvailabilityEngine resolves all inputs up front through the
// repositories, then runs the pure matching pipeline.
type DefaultAvailabilityEngine struct {
	SettingsRepo settingsRepo.SettingsRepository
	ExamRepo     examRepo.ExamRepository
	ExaminerRepo examinerRepo.ExaminerRepository
	SupportRepo  supportRepo.SupportRepository
	BookingRepo  bookingRepo.BookingRepository

	// DefaultSettings is the documented fallback when no settings
	// document exists upstream.
	DefaultSettings models.AvailabilitySettings
}

// ComputeInput is the fully resolved input set of one computation.
type ComputeInput struct {
	ExamID       string
	StartDate    time.Time
	DueDate      string
	Settings     models.AvailabilitySettings
	Requirements models.ServiceRequirements
	Examiners    []models.Examiner
	Support      []models.SupportProvider
	Bookings     []models.ExistingBooking
	PriorBooking *models.ExistingBooking
}

// Compute is the pure availability pipeline: window generation, slot
// matching with requirement filtering, then prior-booking
// preservation. It performs no I/O and is deterministic in its inputs.
func Compute(in ComputeInput) models.AvailableExaminersResult {
	skeleton := BuildDayWindows(in.StartDate, in.Settings)
	days := MatchSlots(skeleton, in.Examiners, in.Support, in.Bookings, in.Requirements)
	days = PreserveBooking(days, skeleton, in.PriorBooking, in.Examiners)

	return models.AvailableExaminersResult{
		ExamID:              in.ExamID,
		StartDate:           skeleton[0].Date,
		EndDate:             skeleton[len(skeleton)-1].Date,
		DueDate:             in.DueDate,
		Days:                days,
		Settings:            in.Settings,
		ServiceRequirements: in.Requirements,
	}
}

func (e *DefaultAvailabilityEngine) ComputeAvailability(ctx context.Context, examID, claimantID string, startDate time.Time, excludeBookingID string) (*models.AvailableExaminersResult, error) {
	logger := utils.GetLogger()

	settings, err := e.resolveSettings(ctx)
	if err != nil {
		return nil, err
	}

	exam, err := e.ExamRepo.GetByID(ctx, examID)
	if err != nil {
		return nil, &UpstreamFetchError{Source: "examination record", Err: err}
	}
	if claimantID != "" && exam.ClaimantID != claimantID {
		return nil, &OwnershipError{ExamID: examID, ClaimantID: claimantID}
	}

	examiners, err := e.ExaminerRepo.GetForExamination(ctx, exam.Specialty, exam.Region)
	if err != nil {
		return nil, &UpstreamFetchError{Source: "examiner schedules", Err: err}
	}

	var support []models.SupportProvider
	reqs := exam.Requirements
	if reqs.InterpreterRequired || reqs.ChaperoneRequired || reqs.TransportRequired {
		support, err = e.SupportRepo.GetByProviderGroups(ctx, providerGroups(examiners))
		if err != nil {
			return nil, &UpstreamFetchError{Source: "support provider schedules", Err: err}
		}
	}

	start := time.Date(startDate.Year(), startDate.Month(), startDate.Day(), 0, 0, 0, 0, time.UTC)
	endDate := start.AddDate(0, 0, settings.WindowDays-1).Format(dateLayout)
	bookings, err := e.BookingRepo.GetConfirmedInRange(ctx, start.Format(dateLayout), endDate, excludeBookingID)
	if err != nil {
		return nil, &UpstreamFetchError{Source: "confirmed bookings", Err: err}
	}

	result := Compute(ComputeInput{
		ExamID:       examID,
		StartDate:    start,
		DueDate:      exam.DueDate,
		Settings:     settings,
		Requirements: reqs,
		Examiners:    examiners,
		Support:      support,
		Bookings:     bookings,
		PriorBooking: exam.Booking,
	})

	logger.Debug("computed availability",
		zap.String("examId", examID),
		zap.String("startDate", result.StartDate),
		zap.Int("examiners", len(examiners)),
		zap.Int("daysWithSlots", len(result.Days)))
	return &result, nil
}

func (e *DefaultAvailabilityEngine) resolveSettings(ctx context.Context) (models.AvailabilitySettings, error) {
	stored, err := e.SettingsRepo.Get(ctx)
	if err != nil {
		return models.AvailabilitySettings{}, &UpstreamFetchError{Source: "availability settings", Err: err}
	}
	settings := e.DefaultSettings
	if stored != nil {
		settings = *stored
	}
	if err := settings.Validate(); err != nil {
		return models.AvailabilitySettings{}, NewConfigurationError(err)
	}
	return settings, nil
}

func providerGroups(examiners []models.Examiner) []string {
	seen := make(map[string]struct{}, len(examiners))
	var ids []string
	for _, ex := range examiners {
		if _, ok := seen[ex.ProviderID]; ok {
			continue
		}
		seen[ex.ProviderID] = struct{}{}
		ids = append(ids, ex.ProviderID)
	}
	return ids
}
