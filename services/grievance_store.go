package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"grievance-api/models"
	"grievance-api/utils"
)

// GrievanceStore owns the grievances table. Records are created once, read
// many times and mutated only through SetStatus/RecordLastReply; nothing here
// deletes.
type GrievanceStore struct {
	db *gorm.DB
}

func NewGrievanceStore(db *gorm.DB) *GrievanceStore {
	return &GrievanceStore{db: db}
}

// List returns every grievance, newest submission first, attachments preloaded
// in their original order.
func (s *GrievanceStore) List(ctx context.Context) ([]models.Grievance, error) {
	var grievances []models.Grievance
	err := s.db.WithContext(ctx).
		Preload("Attachments", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		Order("timestamp DESC").
		Find(&grievances).Error
	if err != nil {
		return nil, storeUnavailable("list grievances", err)
	}
	return grievances, nil
}

// Get fetches one grievance by id.
func (s *GrievanceStore) Get(ctx context.Context, id string) (*models.Grievance, error) {
	var grievance models.Grievance
	err := s.db.WithContext(ctx).
		Preload("Attachments", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		Where("grievance_id = ?", id).
		First(&grievance).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGrievanceNotFound
		}
		return nil, storeUnavailable("get grievance", err)
	}
	return &grievance, nil
}

// CreateGrievanceInput carries the submitter-provided fields of a new record.
type CreateGrievanceInput struct {
	Name        string
	Email       string
	Phone       *string
	Category    string
	Description string
	Attachments []models.GrievanceAttachment
}

// Create stores a new grievance. Every record starts Pending with a
// store-assigned id and submission time.
func (s *GrievanceStore) Create(ctx context.Context, input CreateGrievanceInput) (*models.Grievance, error) {
	grievance := models.Grievance{
		GrievanceID: uuid.NewString(),
		Name:        strings.TrimSpace(input.Name),
		Email:       strings.TrimSpace(input.Email),
		Phone:       input.Phone,
		Category:    strings.TrimSpace(input.Category),
		Description: strings.TrimSpace(input.Description),
		Status:      utils.StatusPending,
		Timestamp:   time.Now(),
	}
	for i, att := range input.Attachments {
		att.GrievanceID = grievance.GrievanceID
		att.Position = i
		grievance.Attachments = append(grievance.Attachments, att)
	}

	if err := s.db.WithContext(ctx).Create(&grievance).Error; err != nil {
		return nil, storeUnavailable("create grievance", err)
	}
	return &grievance, nil
}

// SetStatus moves a grievance to newStatus and stamps the audit columns in a
// single UPDATE. Any enumeration member is accepted, forward or backward; the
// workflow layer decides which transitions it wants.
func (s *GrievanceStore) SetStatus(ctx context.Context, id, newStatus, actor string, occurredAt time.Time) error {
	canonical, ok := utils.CanonicalStatus(newStatus)
	if !ok {
		return ErrInvalidStatus
	}

	if err := s.exists(ctx, id); err != nil {
		return err
	}

	// MySQL reports zero affected rows when the new values equal the old ones,
	// so existence is checked above instead of via RowsAffected.
	err := s.db.WithContext(ctx).
		Model(&models.Grievance{}).
		Where("grievance_id = ?", id).
		Updates(map[string]interface{}{
			"status":          canonical,
			"last_updated":    occurredAt,
			"last_updated_by": actor,
		}).Error
	if err != nil {
		return storeUnavailable("set grievance status", err)
	}
	return nil
}

// RecordLastReply stamps the actor who most recently replied. Unlike
// SetStatus this touches neither status nor last_updated.
func (s *GrievanceStore) RecordLastReply(ctx context.Context, id, actor string) error {
	if err := s.exists(ctx, id); err != nil {
		return err
	}

	err := s.db.WithContext(ctx).
		Model(&models.Grievance{}).
		Where("grievance_id = ?", id).
		Update("last_reply_by", actor).Error
	if err != nil {
		return storeUnavailable("record last reply", err)
	}
	return nil
}

func (s *GrievanceStore) exists(ctx context.Context, id string) error {
	var count int64
	err := s.db.WithContext(ctx).
		Model(&models.Grievance{}).
		Where("grievance_id = ?", id).
		Count(&count).Error
	if err != nil {
		return storeUnavailable("check grievance", err)
	}
	if count == 0 {
		return ErrGrievanceNotFound
	}
	return nil
}

// StatusCounts holds the dashboard summary totals.
type StatusCounts struct {
	Total    int64            `json:"total"`
	ByStatus map[string]int64 `json:"by_status"`
}

// CountByStatus returns per-status totals. Every enumeration value appears in
// the map, zero or not, so the dashboard cards render consistently.
func (s *GrievanceStore) CountByStatus(ctx context.Context) (*StatusCounts, error) {
	var rows []struct {
		Status string
		Count  int64
	}
	err := s.db.WithContext(ctx).
		Model(&models.Grievance{}).
		Select("status, COUNT(*) as count").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, storeUnavailable("count grievances", err)
	}

	counts := &StatusCounts{ByStatus: make(map[string]int64, len(utils.AllStatuses))}
	for _, status := range utils.AllStatuses {
		counts.ByStatus[status] = 0
	}
	for _, row := range rows {
		counts.ByStatus[row.Status] = row.Count
		counts.Total += row.Count
	}
	return counts, nil
}
