package notify

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/recruitly/talentflow/pkg/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type sentMail struct {
	to      string
	subject string
	body    string
}

type fakeTransport struct {
	mu      sync.Mutex
	sent    []sentMail
	failFor map[string]error
}

func (t *fakeTransport) Send(_ context.Context, to, subject, htmlBody string) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if err, ok := t.failFor[to]; ok {
		return err
	}
	t.sent = append(t.sent, sentMail{to: to, subject: subject, body: htmlBody})
	return nil
}

func (t *fakeTransport) recipients() []string {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]string, 0, len(t.sent))
	for _, m := range t.sent {
		out = append(out, m.to)
	}
	return out
}

func testInterview() *model.Interview {
	return &model.Interview{
		InterviewID:       "C1_CL1_J1",
		FullName:          "Jane Doe",
		ClientName:        "Acme",
		CandidateEmail:    "jane.doe@example.com",
		ClientEmail:       "hiring@acme.example",
		UserEmail:         "recruiter@example.com",
		InterviewLevel:    model.LevelInternal,
		ZoomLink:          "https://zoom.example/j/123",
		InterviewDateTime: time.Date(2026, 9, 2, 14, 0, 0, 0, time.UTC),
	}
}

func TestScheduledGoesToAllRecipients(t *testing.T) {
	transport := &fakeTransport{}
	n := New(transport, zap.NewNop(), time.Second)

	n.InterviewScheduled(context.Background(), testInterview())

	assert.ElementsMatch(t,
		[]string{"jane.doe@example.com", "hiring@acme.example", "recruiter@example.com"},
		transport.recipients())
}

func TestInvalidRecipientIsSkippedNotFatal(t *testing.T) {
	transport := &fakeTransport{}
	n := New(transport, zap.NewNop(), time.Second)

	iv := testInterview()
	iv.ClientEmail = "not-an-address"
	n.InterviewScheduled(context.Background(), iv)

	assert.ElementsMatch(t,
		[]string{"jane.doe@example.com", "recruiter@example.com"},
		transport.recipients())
}

func TestEmptyRecipientIsSkippedSilently(t *testing.T) {
	transport := &fakeTransport{}
	n := New(transport, zap.NewNop(), time.Second)

	iv := testInterview()
	iv.UserEmail = ""
	n.InterviewScheduled(context.Background(), iv)

	assert.ElementsMatch(t,
		[]string{"jane.doe@example.com", "hiring@acme.example"},
		transport.recipients())
}

func TestTransportFailureIsIsolated(t *testing.T) {
	transport := &fakeTransport{failFor: map[string]error{
		"hiring@acme.example": errors.New("connection refused"),
	}}
	n := New(transport, zap.NewNop(), time.Second)

	// The failed recipient must not block the others, and fan-out never
	// reports an error to the caller (it has no error to return at all).
	n.InterviewScheduled(context.Background(), testInterview())

	assert.ElementsMatch(t,
		[]string{"jane.doe@example.com", "recruiter@example.com"},
		transport.recipients())
}

func TestCancelledNotifiesCandidateOnly(t *testing.T) {
	transport := &fakeTransport{}
	n := New(transport, zap.NewNop(), time.Second)

	n.InterviewCancelled(context.Background(), testInterview())

	require.Len(t, transport.sent, 1)
	assert.Equal(t, "jane.doe@example.com", transport.sent[0].to)
	assert.Equal(t, "Interview Cancelled", transport.sent[0].subject)
}

func TestDetailsBodyDefaultsDuration(t *testing.T) {
	iv := testInterview()
	iv.Duration = ""
	assert.Contains(t, detailsBody(iv), "unspecified")

	iv.Duration = "45"
	assert.Contains(t, detailsBody(iv), "45 minutes")
}

func TestDetailsBodyLevelSections(t *testing.T) {
	iv := testInterview()
	assert.Contains(t, detailsBody(iv), iv.ZoomLink)

	iv.InterviewLevel = model.LevelExternal
	iv.ExternalInterviewDetails = "on-site at Acme HQ"
	body := detailsBody(iv)
	assert.NotContains(t, body, iv.ZoomLink)
	assert.Contains(t, body, "on-site at Acme HQ")
}
