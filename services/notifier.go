package services

import (
	"fmt"
	"html/template"
	"strings"

	"grievance-api/config"
	"grievance-api/models"
)

// MailNotifier emails the submitter when an admin replies to their grievance.
type MailNotifier struct{}

func NewMailNotifier() *MailNotifier {
	return &MailNotifier{}
}

var replyMailBody = template.Must(template.New("reply").Parse(`
<p>Dear {{.Name}},</p>
<p>There is a new response on your grievance <b>#{{.ShortID}}</b> ({{.Category}}):</p>
<blockquote>{{.Message}}</blockquote>
<p>Current status: <b>{{.Status}}</b></p>
<p>Please sign in to the grievance portal to continue the conversation.</p>
`))

// NotifyReply sends the reply notification. The submitter's address comes from
// the grievance record, never from the reply.
func (n *MailNotifier) NotifyReply(grievance *models.Grievance, reply *models.Reply) error {
	if grievance.Email == "" {
		return nil
	}

	shortID := grievance.GrievanceID
	if len(shortID) > 8 {
		shortID = shortID[:8]
	}

	var body strings.Builder
	err := replyMailBody.Execute(&body, map[string]string{
		"Name":     grievance.Name,
		"ShortID":  shortID,
		"Category": grievance.Category,
		"Message":  reply.Message,
		"Status":   grievance.Status,
	})
	if err != nil {
		return fmt.Errorf("render reply mail: %w", err)
	}

	subject := fmt.Sprintf("Update on your grievance #%s", shortID)
	return config.SendMail([]string{grievance.Email}, subject, body.String())
}
