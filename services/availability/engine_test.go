package availability

import (
	"context"
	"testing"
	"time"

	"medexam/models"
)

type stubSettingsRepo struct{ stored *models.AvailabilitySettings }

func (r stubSettingsRepo) Get(ctx context.Context) (*models.AvailabilitySettings, error) {
	return r.stored, nil
}

func (r stubSettingsRepo) Put(ctx context.Context, settings models.AvailabilitySettings) error {
	return nil
}

type stubExamRepo struct{ exam *models.Examination }

func (r stubExamRepo) GetByID(ctx context.Context, id string) (*models.Examination, error) {
	return r.exam, nil
}

func (r stubExamRepo) Upsert(ctx context.Context, exam models.Examination) error { return nil }

func (r stubExamRepo) SetAppointment(ctx context.Context, examID string, appt models.SelectedAppointment, booking models.ExistingBooking) error {
	return nil
}

func TestCompute_FullPipeline(t *testing.T) {
	in := ComputeInput{
		ExamID:    "EX-100",
		StartDate: time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC),
		DueDate:   "2024-06-28",
		Settings:  testSettings(),
		Examiners: []models.Examiner{testExaminer("E1", "Dr. Adams")},
	}
	result := Compute(in)

	if result.ExamID != "EX-100" {
		t.Errorf("ExamID = %s", result.ExamID)
	}
	if result.StartDate != "2024-06-03" || result.EndDate != "2024-06-09" {
		t.Errorf("window = [%s, %s]; want [2024-06-03, 2024-06-09]", result.StartDate, result.EndDate)
	}
	if result.DueDate != "2024-06-28" {
		t.Errorf("DueDate = %s", result.DueDate)
	}
	if len(result.Days) != 5 {
		t.Errorf("len(Days) = %d; want 5 working days", len(result.Days))
	}
}

func TestCompute_EmptyScheduleIsEmptyResultNotError(t *testing.T) {
	in := ComputeInput{
		ExamID:    "EX-100",
		StartDate: time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC),
		Settings:  testSettings(),
	}
	result := Compute(in)
	if len(result.Days) != 0 {
		t.Errorf("len(Days) = %d; want 0", len(result.Days))
	}
}

func TestCompute_PriorBookingSurvivesRequirementChange(t *testing.T) {
	// The booking was made before interpreters became required; with no
	// interpreter in the group, fresh matching excludes everything, but
	// the preserved triple still renders.
	prior := &models.ExistingBooking{
		ExaminerID:       "E1",
		Date:             "2024-06-05",
		SlotStartMinutes: 600,
	}
	in := ComputeInput{
		ExamID:       "EX-100",
		StartDate:    time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC),
		Settings:     testSettings(),
		Requirements: models.ServiceRequirements{InterpreterRequired: true},
		Examiners:    []models.Examiner{testExaminer("E1", "Dr. Adams")},
		PriorBooking: prior,
	}
	result := Compute(in)

	if len(result.Days) != 1 {
		t.Fatalf("len(Days) = %d; want only the preserved day", len(result.Days))
	}
	slot := result.Days[0].Slots[0]
	if len(slot.Examiners) != 1 || !slot.Examiners[0].IsPreviousBooking {
		t.Errorf("preserved card missing: %+v", slot.Examiners)
	}
}

func TestComputeAvailability_RejectsForeignClaimant(t *testing.T) {
	engine := &DefaultAvailabilityEngine{
		SettingsRepo:    stubSettingsRepo{},
		ExamRepo:        stubExamRepo{exam: &models.Examination{ID: "EX-100", ClaimantID: "C1"}},
		DefaultSettings: testSettings(),
	}

	_, err := engine.ComputeAvailability(context.Background(), "EX-100", "C2",
		time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC), "")
	if err == nil {
		t.Fatal("foreign claimant accepted")
	}
	if !IsOwnershipError(err) {
		t.Errorf("err = %v; want OwnershipError", err)
	}
	if IsUpstreamFetchError(err) || IsConfigurationError(err) {
		t.Errorf("err %v matched the wrong category", err)
	}
}
