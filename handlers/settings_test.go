package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"medexam/models"

	"github.com/gin-gonic/gin"
)

type stubSettingsRepo struct {
	stored *models.AvailabilitySettings
	put    *models.AvailabilitySettings
}

func (r *stubSettingsRepo) Get(ctx context.Context) (*models.AvailabilitySettings, error) {
	return r.stored, nil
}

func (r *stubSettingsRepo) Put(ctx context.Context, settings models.AvailabilitySettings) error {
	r.put = &settings
	return nil
}

func settingsRouter(repo *stubSettingsRepo) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewSettingsHandler(repo, models.AvailabilitySettings{
		WindowDays:               28,
		WorkingHoursPerDay:       8,
		SlotDurationMinutes:      60,
		StartOfWorkingMinutesUTC: 480,
	})
	r.GET("/api/settings/availability", h.GetSettings)
	r.PUT("/api/settings/availability", h.PutSettings)
	return r
}

func TestGetSettings_FallsBackToDefaults(t *testing.T) {
	router := settingsRouter(&stubSettingsRepo{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/settings/availability", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d; want 200", w.Code)
	}
	var body struct {
		Source              string `json:"source"`
		StartOfWorkingClock string `json:"startOfWorkingClock"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if body.Source != "default" {
		t.Errorf("source = %q; want default", body.Source)
	}
	if body.StartOfWorkingClock != "08:00" {
		t.Errorf("startOfWorkingClock = %q; want 08:00", body.StartOfWorkingClock)
	}
}

func TestPutSettings_AcceptsClockForm(t *testing.T) {
	repo := &stubSettingsRepo{}
	router := settingsRouter(repo)

	payload := `{"windowDays":14,"workingHoursPerDay":6,"slotDurationMinutes":30,"startOfWorkingClock":"09:30"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/settings/availability", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s; want 200", w.Code, w.Body.String())
	}
	if repo.put == nil {
		t.Fatal("settings not stored")
	}
	if repo.put.StartOfWorkingMinutesUTC != 570 {
		t.Errorf("startOfWorkingMinutesUtc = %d; want 570", repo.put.StartOfWorkingMinutesUTC)
	}
}

func TestPutSettings_RejectsBadClock(t *testing.T) {
	repo := &stubSettingsRepo{}
	router := settingsRouter(repo)

	payload := `{"windowDays":14,"workingHoursPerDay":6,"slotDurationMinutes":30,"startOfWorkingClock":"25:99"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/settings/availability", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d; want 422", w.Code)
	}
	if repo.put != nil {
		t.Error("invalid settings were stored")
	}
}

func TestPutSettings_RejectsInvalidValues(t *testing.T) {
	repo := &stubSettingsRepo{}
	router := settingsRouter(repo)

	payload := `{"windowDays":0,"workingHoursPerDay":8,"slotDurationMinutes":60,"startOfWorkingMinutesUtc":480}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/settings/availability", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d; want 422", w.Code)
	}
	if repo.put != nil {
		t.Error("invalid settings were stored")
	}
}
