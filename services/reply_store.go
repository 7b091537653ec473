package services

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"grievance-api/models"
)

// ReplyStore owns the grievance_replies table. Append-only: replies are never
// updated or deleted once written.
type ReplyStore struct {
	db *gorm.DB
}

func NewReplyStore(db *gorm.DB) *ReplyStore {
	return &ReplyStore{db: db}
}

// ListFor returns the reply thread for one grievance, oldest first. Ties on
// timestamp fall back to insertion order via the auto-increment sequence. A
// grievance with no replies yields an empty slice, not an error.
func (s *ReplyStore) ListFor(ctx context.Context, grievanceID string) ([]models.Reply, error) {
	replies := make([]models.Reply, 0)
	err := s.db.WithContext(ctx).
		Where("grievance_id = ?", grievanceID).
		Order("timestamp ASC, reply_seq ASC").
		Find(&replies).Error
	if err != nil {
		return nil, storeUnavailable("list replies", err)
	}
	return replies, nil
}

// Append writes one reply. The message must be non-empty after trimming, and
// the grievance must exist; the referential check and the insert run in the
// same transaction, so a reply can never land against an id that was absent
// when it was checked. The timestamp comes from the store's clock, never from
// the caller, so ordering holds even under caller clock skew.
func (s *ReplyStore) Append(ctx context.Context, grievanceID, message, senderName, senderEmail, role string) (*models.Reply, error) {
	trimmed := strings.TrimSpace(message)
	if trimmed == "" {
		return nil, ErrEmptyMessage
	}

	reply := models.Reply{
		ReplyID:     uuid.NewString(),
		GrievanceID: grievanceID,
		Message:     trimmed,
		SenderName:  senderName,
		SenderEmail: senderEmail,
		SenderRole:  role,
		Timestamp:   time.Now(),
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Grievance{}).
			Where("grievance_id = ?", grievanceID).
			Count(&count).Error; err != nil {
			return storeUnavailable("check grievance for reply", err)
		}
		if count == 0 {
			return ErrUnknownGrievance
		}
		if err := tx.Create(&reply).Error; err != nil {
			return storeUnavailable("append reply", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &reply, nil
}
