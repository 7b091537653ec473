package models

import "time"

// Sender roles recorded on a reply.
const (
	RoleAdmin     = "admin"
	RoleSubmitter = "submitter"
)

// Reply is one message in a grievance's communication thread. Rows are
// append-only: never updated or deleted. The auto-increment ReplySeq doubles as
// the tie-breaker when two replies land with the same timestamp, so display
// order stays stable regardless of arrival interleaving.
type Reply struct {
	ReplySeq    uint      `gorm:"primaryKey;column:reply_seq" json:"-"`
	ReplyID     string    `gorm:"column:reply_id;size:36;uniqueIndex" json:"reply_id"`
	GrievanceID string    `gorm:"column:grievance_id;size:36;index" json:"grievance_id"`
	Message     string    `gorm:"column:message;type:text" json:"message"`
	SenderName  string    `gorm:"column:sender_name" json:"sender_name"`
	SenderEmail string    `gorm:"column:sender_email" json:"sender_email"`
	SenderRole  string    `gorm:"column:sender_role" json:"sender_role"` // admin|submitter
	Timestamp   time.Time `gorm:"column:timestamp" json:"timestamp"`
}

func (Reply) TableName() string { return "grievance_replies" }
