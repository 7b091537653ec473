package models

import "time"

// Grievance represents a submitted complaint tracked through the status lifecycle.
// Submitter fields are written once at creation; only status and the audit columns
// change afterwards.
type Grievance struct {
	GrievanceID   string     `gorm:"primaryKey;column:grievance_id;size:36" json:"grievance_id"`
	Name          string     `gorm:"column:name" json:"name"`
	Email         string     `gorm:"column:email" json:"email"`
	Phone         *string    `gorm:"column:phone" json:"phone,omitempty"`
	Category      string     `gorm:"column:category" json:"category"`
	Description   string     `gorm:"column:description;type:text" json:"description"`
	Status        string     `gorm:"column:status" json:"status"` // Pending|In Progress|Resolved|Closed|Rejected
	Timestamp     time.Time  `gorm:"column:timestamp" json:"timestamp"`
	LastUpdated   *time.Time `gorm:"column:last_updated" json:"last_updated,omitempty"`
	LastUpdatedBy *string    `gorm:"column:last_updated_by" json:"last_updated_by,omitempty"`
	LastReplyBy   *string    `gorm:"column:last_reply_by" json:"last_reply_by,omitempty"`

	// Relations
	Attachments []GrievanceAttachment `gorm:"foreignKey:GrievanceID;references:GrievanceID" json:"attachments,omitempty"`
}

func (Grievance) TableName() string { return "grievances" }

// GrievanceAttachment is a pre-existing file URL attached at submission time.
// Position preserves the order the submitter uploaded them in.
type GrievanceAttachment struct {
	AttachmentID uint   `gorm:"primaryKey;column:attachment_id" json:"attachment_id"`
	GrievanceID  string `gorm:"column:grievance_id;size:36" json:"grievance_id"`
	URL          string `gorm:"column:url" json:"url"`
	Name         string `gorm:"column:name" json:"name"`
	Position     int    `gorm:"column:position" json:"position"`
}

func (GrievanceAttachment) TableName() string { return "grievance_attachments" }
