package cron

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"medexam/config"
	examRepo "medexam/database/repository/exam"
	"medexam/models"
	"medexam/utils"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// TypeAppointmentSync propagates a committed appointment onto its
// examination record.
const TypeAppointmentSync = "appointment:sync"

// AppointmentSyncPayload is the task body for TypeAppointmentSync.
type AppointmentSyncPayload struct {
	ExamID      string                     `json:"examId"`
	Appointment models.SelectedAppointment `json:"appointment"`
	Booking     models.ExistingBooking     `json:"booking"`
}

// NewAppointmentSyncTask builds the asynq task for a committed
// appointment.
func NewAppointmentSyncTask(payload AppointmentSyncPayload) (*asynq.Task, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal appointment sync payload: %w", err)
	}
	return asynq.NewTask(TypeAppointmentSync, data), nil
}

// NewSyncClient returns an asynq client on the configured redis queue.
func NewSyncClient() *asynq.Client {
	return asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	})
}

// InitSyncWorker runs the background worker that drains committed
// appointments into the examination records.
func InitSyncWorker(exams examRepo.ExamRepository) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}

	srv := asynq.NewServer(redisOpts, asynq.Config{
		Concurrency: 5,
		Queues: map[string]int{
			"default": 1,
		},
	})

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeAppointmentSync, handleAppointmentSync(exams))

	go func() {
		log.Println("[SyncWorker] starting async worker")
		if err := srv.Run(mux); err != nil {
			log.Fatalf("[SyncWorker] failed to start worker: %v", err)
		}
	}()
}

func handleAppointmentSync(exams examRepo.ExamRepository) asynq.HandlerFunc {
	return func(ctx context.Context, t *asynq.Task) error {
		logger := utils.GetLogger()

		var payload AppointmentSyncPayload
		if err := json.Unmarshal(t.Payload(), &payload); err != nil {
			return fmt.Errorf("failed to unmarshal appointment sync payload: %w", err)
		}

		if err := exams.SetAppointment(ctx, payload.ExamID, payload.Appointment, payload.Booking); err != nil {
			logger.Error("appointment sync failed",
				zap.String("examId", payload.ExamID), zap.Error(err))
			return err
		}
		logger.Info("appointment synced to examination",
			zap.String("examId", payload.ExamID),
			zap.String("examinerId", payload.Appointment.ExaminerID),
			zap.String("date", payload.Appointment.Date))
		return nil
	}
}
