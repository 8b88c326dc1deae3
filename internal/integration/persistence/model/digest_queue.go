// Package model defines database models for persistence layer.
package model

import (
	"database/sql"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/habit-tracker/backend/internal/domain/entity"
)

// DigestQueueModel represents the digest_queue table in the database.
type DigestQueueModel struct {
	ID             uuid.UUID    `gorm:"type:uuid;primaryKey"`
	TemplateType   string       `gorm:"type:varchar(50);not null"`
	RecipientEmail string       `gorm:"type:varchar(255);not null"`
	RecipientName  string       `gorm:"type:varchar(255)"`
	Subject        string       `gorm:"type:varchar(500);not null"`
	TemplateData   string       `gorm:"type:text;not null;default:'{}'"`
	Status         string       `gorm:"type:varchar(20);not null;default:'pending'"`
	Attempts       int          `gorm:"not null;default:0"`
	MaxAttempts    int          `gorm:"not null;default:3"`
	LastError      string       `gorm:"type:text"`
	ResendID       string       `gorm:"type:varchar(100)"`
	CreatedAt      time.Time    `gorm:"not null"`
	ScheduledAt    time.Time    `gorm:"not null"`
	ProcessedAt    sql.NullTime `gorm:"type:timestamptz"`
}

// TableName returns the table name for the DigestQueueModel.
func (DigestQueueModel) TableName() string {
	return "digest_queue"
}

// ToEntity converts a DigestQueueModel to a domain DigestJob entity.
func (m *DigestQueueModel) ToEntity() *entity.DigestJob {
	var templateData map[string]interface{}
	if m.TemplateData != "" {
		if err := json.Unmarshal([]byte(m.TemplateData), &templateData); err != nil {
			slog.Warn("Failed to unmarshal digest template data", "error", err, "id", m.ID)
		}
	}
	if templateData == nil {
		templateData = make(map[string]interface{})
	}

	var processedAt *time.Time
	if m.ProcessedAt.Valid {
		processedAt = &m.ProcessedAt.Time
	}

	return &entity.DigestJob{
		ID:             m.ID,
		TemplateType:   entity.DigestTemplateType(m.TemplateType),
		RecipientEmail: m.RecipientEmail,
		RecipientName:  m.RecipientName,
		Subject:        m.Subject,
		TemplateData:   templateData,
		Status:         entity.DigestStatus(m.Status),
		Attempts:       m.Attempts,
		MaxAttempts:    m.MaxAttempts,
		LastError:      m.LastError,
		ResendID:       m.ResendID,
		CreatedAt:      m.CreatedAt,
		ScheduledAt:    m.ScheduledAt,
		ProcessedAt:    processedAt,
	}
}

// DigestQueueModelFromEntity creates a DigestQueueModel from a domain DigestJob entity.
func DigestQueueModelFromEntity(job *entity.DigestJob) *DigestQueueModel {
	templateDataJSON, err := json.Marshal(job.TemplateData)
	if err != nil {
		slog.Error("Failed to marshal digest template data", "error", err, "job_id", job.ID)
		templateDataJSON = []byte("{}")
	}

	var processedAt sql.NullTime
	if job.ProcessedAt != nil {
		processedAt = sql.NullTime{Time: *job.ProcessedAt, Valid: true}
	}

	return &DigestQueueModel{
		ID:             job.ID,
		TemplateType:   string(job.TemplateType),
		RecipientEmail: job.RecipientEmail,
		RecipientName:  job.RecipientName,
		Subject:        job.Subject,
		TemplateData:   string(templateDataJSON),
		Status:         string(job.Status),
		Attempts:       job.Attempts,
		MaxAttempts:    job.MaxAttempts,
		LastError:      job.LastError,
		ResendID:       job.ResendID,
		CreatedAt:      job.CreatedAt,
		ScheduledAt:    job.ScheduledAt,
		ProcessedAt:    processedAt,
	}
}
