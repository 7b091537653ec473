package services

import (
	"context"
	"log"
	"time"

	"grievance-api/models"
	"grievance-api/utils"
)

// AdminIdentity is the actor recorded against every mutation an admin makes.
type AdminIdentity struct {
	Name  string
	Email string
}

// ReplyOutcome reports both results of an admin reply in one value so the
// caller can reflect the new status without a second read.
type ReplyOutcome struct {
	Reply         *models.Reply `json:"reply"`
	Status        string        `json:"status"`
	StatusChanged bool          `json:"status_changed"`
}

type grievanceWorkflowStore interface {
	Get(ctx context.Context, id string) (*models.Grievance, error)
	SetStatus(ctx context.Context, id, newStatus, actor string, occurredAt time.Time) error
	RecordLastReply(ctx context.Context, id, actor string) error
}

type replyAppender interface {
	Append(ctx context.Context, grievanceID, message, senderName, senderEmail, role string) (*models.Reply, error)
}

// ReplyNotifier delivers a best-effort notification to the submitter after an
// admin reply. Delivery failure never fails the request.
type ReplyNotifier interface {
	NotifyReply(grievance *models.Grievance, reply *models.Reply) error
}

// WorkflowService enforces the status side effects around the stores: replying
// to a Pending grievance advances it to In Progress, and every admin reply
// records who sent it. It holds no state of its own and takes no locks.
type WorkflowService struct {
	grievances grievanceWorkflowStore
	replies    replyAppender
	notifier   ReplyNotifier // optional
}

func NewWorkflowService(grievances grievanceWorkflowStore, replies replyAppender, notifier ReplyNotifier) *WorkflowService {
	return &WorkflowService{
		grievances: grievances,
		replies:    replies,
		notifier:   notifier,
	}
}

// ReplyAsAdmin appends a reply on behalf of admin and applies the status side
// effect: Pending moves to In Progress, anything later stays where it is —
// replying never regresses status. last_reply_by is recorded either way.
//
// If the reply lands but a follow-up grievance write fails, the reply is kept
// and the failure surfaces as *PartialSuccessError; the append is never rolled
// back.
func (s *WorkflowService) ReplyAsAdmin(ctx context.Context, grievanceID, message string, admin AdminIdentity) (*ReplyOutcome, error) {
	reply, err := s.replies.Append(ctx, grievanceID, message, admin.Name, admin.Email, models.RoleAdmin)
	if err != nil {
		return nil, err
	}

	grievance, err := s.grievances.Get(ctx, grievanceID)
	if err != nil {
		return nil, &PartialSuccessError{Reply: reply, Err: err}
	}

	outcome := &ReplyOutcome{Reply: reply, Status: grievance.Status}
	if grievance.Status == utils.StatusPending {
		if err := s.grievances.SetStatus(ctx, grievanceID, utils.StatusInProgress, admin.Name, time.Now()); err != nil {
			return nil, &PartialSuccessError{Reply: reply, Err: err}
		}
		outcome.Status = utils.StatusInProgress
		outcome.StatusChanged = true
	}

	if err := s.grievances.RecordLastReply(ctx, grievanceID, admin.Name); err != nil {
		return nil, &PartialSuccessError{Reply: reply, Err: err}
	}

	if s.notifier != nil {
		if err := s.notifier.NotifyReply(grievance, reply); err != nil {
			log.Printf("Warning: reply notification for grievance %s failed: %v", grievanceID, err)
		}
	}

	return outcome, nil
}

// SetStatusAsAdmin is the explicit admin override: any enumeration value is
// accepted and transitions may move forward or backward freely.
func (s *WorkflowService) SetStatusAsAdmin(ctx context.Context, grievanceID, newStatus string, admin AdminIdentity) error {
	return s.grievances.SetStatus(ctx, grievanceID, newStatus, admin.Name, time.Now())
}
