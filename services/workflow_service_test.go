package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"grievance-api/models"
	"grievance-api/utils"
)

type setStatusCall struct {
	id     string
	status string
	actor  string
}

type fakeGrievanceStore struct {
	grievance *models.Grievance

	getErr       error
	setStatusErr error
	recordErr    error

	setStatusCalls []setStatusCall
	recordCalls    []string
}

func (f *fakeGrievanceStore) Get(ctx context.Context, id string) (*models.Grievance, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.grievance, nil
}

func (f *fakeGrievanceStore) SetStatus(ctx context.Context, id, newStatus, actor string, occurredAt time.Time) error {
	if f.setStatusErr != nil {
		return f.setStatusErr
	}
	f.setStatusCalls = append(f.setStatusCalls, setStatusCall{id: id, status: newStatus, actor: actor})
	f.grievance.Status = newStatus
	return nil
}

func (f *fakeGrievanceStore) RecordLastReply(ctx context.Context, id, actor string) error {
	if f.recordErr != nil {
		return f.recordErr
	}
	f.recordCalls = append(f.recordCalls, actor)
	return nil
}

type appendCall struct {
	grievanceID string
	message     string
	senderName  string
	senderEmail string
	role        string
}

type fakeReplyStore struct {
	err   error
	calls []appendCall
}

func (f *fakeReplyStore) Append(ctx context.Context, grievanceID, message, senderName, senderEmail, role string) (*models.Reply, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.calls = append(f.calls, appendCall{grievanceID, message, senderName, senderEmail, role})
	return &models.Reply{
		ReplySeq:    uint(len(f.calls)),
		ReplyID:     "reply-1",
		GrievanceID: grievanceID,
		Message:     message,
		SenderName:  senderName,
		SenderEmail: senderEmail,
		SenderRole:  role,
		Timestamp:   time.Now(),
	}, nil
}

type fakeNotifier struct {
	err   error
	calls int
}

func (f *fakeNotifier) NotifyReply(grievance *models.Grievance, reply *models.Reply) error {
	f.calls++
	return f.err
}

var testAdmin = AdminIdentity{Name: "Admin User", Email: "admin@example.com"}

func pendingGrievance() *models.Grievance {
	return &models.Grievance{
		GrievanceID: "g-100",
		Name:        "Alice Mensah",
		Email:       "alice@example.com",
		Status:      utils.StatusPending,
	}
}

func TestReplyToPendingMovesToInProgress(t *testing.T) {
	grievances := &fakeGrievanceStore{grievance: pendingGrievance()}
	replies := &fakeReplyStore{}

	svc := NewWorkflowService(grievances, replies, nil)
	outcome, err := svc.ReplyAsAdmin(context.Background(), "g-100", "Please provide more details", testAdmin)
	if err != nil {
		t.Fatalf("ReplyAsAdmin returned error: %v", err)
	}

	if !outcome.StatusChanged || outcome.Status != utils.StatusInProgress {
		t.Fatalf("expected status change to %q, got %+v", utils.StatusInProgress, outcome)
	}
	if outcome.Reply == nil || outcome.Reply.SenderRole != models.RoleAdmin {
		t.Fatalf("expected admin reply, got %+v", outcome.Reply)
	}

	if len(replies.calls) != 1 {
		t.Fatalf("expected exactly one append, got %d", len(replies.calls))
	}
	if got := replies.calls[0]; got.senderName != testAdmin.Name || got.senderEmail != testAdmin.Email {
		t.Errorf("reply sender = %+v, want admin identity", got)
	}

	if len(grievances.setStatusCalls) != 1 {
		t.Fatalf("expected one status transition, got %d", len(grievances.setStatusCalls))
	}
	if got := grievances.setStatusCalls[0]; got.status != utils.StatusInProgress || got.actor != testAdmin.Name {
		t.Errorf("status call = %+v, want In Progress by %s", got, testAdmin.Name)
	}

	if len(grievances.recordCalls) != 1 || grievances.recordCalls[0] != testAdmin.Name {
		t.Errorf("last reply actor = %v, want [%s]", grievances.recordCalls, testAdmin.Name)
	}
}

func TestReplyNeverRegressesStatus(t *testing.T) {
	for _, status := range []string{utils.StatusInProgress, utils.StatusResolved, utils.StatusClosed, utils.StatusRejected} {
		grievances := &fakeGrievanceStore{grievance: &models.Grievance{GrievanceID: "g-100", Status: status}}
		replies := &fakeReplyStore{}

		svc := NewWorkflowService(grievances, replies, nil)
		outcome, err := svc.ReplyAsAdmin(context.Background(), "g-100", "Following up", testAdmin)
		if err != nil {
			t.Fatalf("status %q: unexpected error %v", status, err)
		}

		if outcome.StatusChanged || outcome.Status != status {
			t.Errorf("status %q: outcome %+v, want untouched status", status, outcome)
		}
		if len(grievances.setStatusCalls) != 0 {
			t.Errorf("status %q: unexpected status transitions %+v", status, grievances.setStatusCalls)
		}
		// last_reply_by is still recorded
		if len(grievances.recordCalls) != 1 {
			t.Errorf("status %q: expected last reply recorded, got %v", status, grievances.recordCalls)
		}
	}
}

func TestReplyValidationErrorsPropagate(t *testing.T) {
	for _, want := range []error{ErrEmptyMessage, ErrUnknownGrievance} {
		grievances := &fakeGrievanceStore{grievance: pendingGrievance()}
		replies := &fakeReplyStore{err: want}

		svc := NewWorkflowService(grievances, replies, nil)
		_, err := svc.ReplyAsAdmin(context.Background(), "g-100", "msg", testAdmin)
		if !errors.Is(err, want) {
			t.Errorf("expected %v, got %v", want, err)
		}

		var partial *PartialSuccessError
		if errors.As(err, &partial) {
			t.Errorf("append failure must not be partial success: %v", err)
		}
		if len(grievances.setStatusCalls) != 0 || len(grievances.recordCalls) != 0 {
			t.Error("no grievance writes expected when the append fails")
		}
	}
}

func TestReplyPartialSuccessWhenStatusUpdateFails(t *testing.T) {
	storeErr := &StoreUnavailableError{Op: "set grievance status", Err: errors.New("connection reset")}
	grievances := &fakeGrievanceStore{grievance: pendingGrievance(), setStatusErr: storeErr}
	replies := &fakeReplyStore{}

	svc := NewWorkflowService(grievances, replies, nil)
	_, err := svc.ReplyAsAdmin(context.Background(), "g-100", "msg", testAdmin)

	var partial *PartialSuccessError
	if !errors.As(err, &partial) {
		t.Fatalf("expected PartialSuccessError, got %v", err)
	}
	if partial.Reply == nil || partial.Reply.GrievanceID != "g-100" {
		t.Fatalf("partial success must carry the persisted reply, got %+v", partial.Reply)
	}
	if !errors.Is(err, storeErr.Err) {
		t.Errorf("partial success should wrap the store failure, got %v", err)
	}
	if len(replies.calls) != 1 {
		t.Errorf("the appended reply must be kept, calls = %d", len(replies.calls))
	}
}

func TestReplyPartialSuccessWhenReadBackFails(t *testing.T) {
	grievances := &fakeGrievanceStore{
		grievance: pendingGrievance(),
		getErr:    &StoreUnavailableError{Op: "get grievance", Err: errors.New("timeout")},
	}
	replies := &fakeReplyStore{}

	svc := NewWorkflowService(grievances, replies, nil)
	_, err := svc.ReplyAsAdmin(context.Background(), "g-100", "msg", testAdmin)

	var partial *PartialSuccessError
	if !errors.As(err, &partial) {
		t.Fatalf("expected PartialSuccessError, got %v", err)
	}
}

func TestReplyNotifierFailureDoesNotFailRequest(t *testing.T) {
	grievances := &fakeGrievanceStore{grievance: pendingGrievance()}
	replies := &fakeReplyStore{}
	notifier := &fakeNotifier{err: errors.New("smtp down")}

	svc := NewWorkflowService(grievances, replies, notifier)
	outcome, err := svc.ReplyAsAdmin(context.Background(), "g-100", "msg", testAdmin)
	if err != nil {
		t.Fatalf("notifier failure must stay best-effort, got %v", err)
	}
	if notifier.calls != 1 {
		t.Errorf("expected one notification attempt, got %d", notifier.calls)
	}
	if outcome.Reply == nil {
		t.Error("expected a reply in the outcome")
	}
}

func TestSetStatusAsAdminPassesActorThrough(t *testing.T) {
	grievances := &fakeGrievanceStore{grievance: &models.Grievance{GrievanceID: "g-100", Status: utils.StatusResolved}}

	svc := NewWorkflowService(grievances, &fakeReplyStore{}, nil)
	if err := svc.SetStatusAsAdmin(context.Background(), "g-100", utils.StatusPending, testAdmin); err != nil {
		t.Fatalf("SetStatusAsAdmin returned error: %v", err)
	}

	// backward transition is allowed for the explicit override
	if len(grievances.setStatusCalls) != 1 {
		t.Fatalf("expected one status call, got %d", len(grievances.setStatusCalls))
	}
	if got := grievances.setStatusCalls[0]; got.status != utils.StatusPending || got.actor != testAdmin.Name {
		t.Errorf("status call = %+v, want Pending by %s", got, testAdmin.Name)
	}
}
