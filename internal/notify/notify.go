// Package notify fans interview emails out to a variable recipient set.
// Delivery is fire-and-forget: invalid addresses are skipped, transport
// failures are logged, and no notification problem ever fails the
// operation that triggered it.
package notify

import (
	"context"
	"fmt"
	"net/mail"
	"sync"
	"time"

	"github.com/recruitly/talentflow/pkg/model"
	"go.uber.org/zap"
)

// Transport is the mail collaborator. Calls must be bounded by the
// context deadline; a timeout counts as a delivery failure.
type Transport interface {
	Send(ctx context.Context, to, subject, htmlBody string) error
}

type recipient struct {
	role  string
	email string
}

type Notifier struct {
	transport Transport
	log       *zap.SugaredLogger
	timeout   time.Duration
}

func New(transport Transport, log *zap.Logger, timeout time.Duration) *Notifier {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &Notifier{transport: transport, log: log.Sugar(), timeout: timeout}
}

// InterviewScheduled sends the full interview details to the candidate,
// the client and the scheduling user.
func (n *Notifier) InterviewScheduled(ctx context.Context, iv *model.Interview) {
	n.fanOut(ctx, allRecipients(iv), "Interview Scheduled", detailsBody(iv))
}

// InterviewRescheduled sends the updated details to every recipient.
func (n *Notifier) InterviewRescheduled(ctx context.Context, iv *model.Interview) {
	n.fanOut(ctx, allRecipients(iv), "Interview Details Updated", detailsBody(iv))
}

// InterviewCancelled notifies the candidate only; the full details email
// is suppressed for a cancellation.
func (n *Notifier) InterviewCancelled(ctx context.Context, iv *model.Interview) {
	rcpts := []recipient{{role: "candidate", email: iv.CandidateEmail}}
	n.fanOut(ctx, rcpts, "Interview Cancelled", cancelBody(iv))
}

// fanOut delivers the same message to each recipient concurrently.
// Recipients with no address are skipped silently, syntactically invalid
// ones are skipped with a log line, and per-recipient transport failures
// are isolated from each other.
func (n *Notifier) fanOut(ctx context.Context, rcpts []recipient, subject, body string) {
	var wg sync.WaitGroup
	for _, r := range rcpts {
		if r.email == "" {
			continue
		}
		if _, err := mail.ParseAddress(r.email); err != nil {
			n.log.Warnw("skipping invalid recipient address", "role", r.role, "email", r.email)
			continue
		}

		wg.Add(1)
		go func(r recipient) {
			defer wg.Done()
			sendCtx, cancel := context.WithTimeout(ctx, n.timeout)
			defer cancel()
			if err := n.transport.Send(sendCtx, r.email, subject, body); err != nil {
				n.log.Errorw("notification delivery failed", "role", r.role, "email", r.email, "err", err)
				return
			}
			n.log.Infow("notification sent", "role", r.role, "email", r.email, "subject", subject)
		}(r)
	}
	wg.Wait()
}

func allRecipients(iv *model.Interview) []recipient {
	return []recipient{
		{role: "candidate", email: iv.CandidateEmail},
		{role: "client", email: iv.ClientEmail},
		{role: "user", email: iv.UserEmail},
	}
}

func detailsBody(iv *model.Interview) string {
	duration := iv.Duration
	if duration == "" {
		duration = "unspecified"
	}
	body := fmt.Sprintf(
		"<h3>Interview Details</h3>"+
			"<p>Candidate: %s</p>"+
			"<p>Client: %s</p>"+
			"<p>Date &amp; Time: %s</p>"+
			"<p>Duration: %s minutes</p>"+
			"<p>Level: %s</p>",
		iv.FullName, iv.ClientName,
		iv.InterviewDateTime.Format("02 Jan 2006 15:04 MST"),
		duration, iv.InterviewLevel,
	)
	if iv.InterviewLevel == model.LevelInternal && iv.ZoomLink != "" {
		body += fmt.Sprintf("<p>Zoom Link: <a href=%q>%s</a></p>", iv.ZoomLink, iv.ZoomLink)
	}
	if iv.InterviewLevel == model.LevelExternal && iv.ExternalInterviewDetails != "" {
		body += fmt.Sprintf("<p>Details: %s</p>", iv.ExternalInterviewDetails)
	}
	return body
}

func cancelBody(iv *model.Interview) string {
	return fmt.Sprintf(
		"<h3>Interview Cancelled</h3>"+
			"<p>Hi %s,</p>"+
			"<p>Your interview with %s scheduled for %s has been cancelled.</p>",
		iv.FullName, iv.ClientName,
		iv.InterviewDateTime.Format("02 Jan 2006 15:04 MST"),
	)
}
