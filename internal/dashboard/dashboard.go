// Package dashboard computes read-side views over the document register:
// documents out with a recipient, deadline urgency, and daily counts.
// Every "today" is the UTC calendar date of the injected clock.
package dashboard

import (
	"context"
	"time"
)

// NearingWindowDays is how many days past today still count as nearing
// the deadline.
const NearingWindowDays = 3

// Urgency classifies a deadline relative to today.
type Urgency string

const (
	UrgencyOverdue Urgency = "overdue"
	UrgencyNearing Urgency = "nearing_deadline"
)

// System defines the dashboard queries.
type System interface {
	DueRecalls(ctx context.Context) ([]DueRecall, error)
	Overdue(ctx context.Context) ([]DeadlineItem, error)
	Statistics(ctx context.Context) (*Statistics, error)
}

// DueRecall is a document whose latest flow action was a send.
type DueRecall struct {
	ID              int64     `json:"id"`
	SerialNumber    string    `json:"serial_number"`
	Name            string    `json:"name"`
	OriginatingUnit string    `json:"originating_unit"`
	Deadline        *string   `json:"deadline"`
	Status          string    `json:"status"`
	RecipientName   string    `json:"recipient_name"`
	FlowTime        time.Time `json:"flow_time"`
	Stage           string    `json:"stage"`
}

// DeadlineItem is an open document that is overdue or nearing its deadline.
type DeadlineItem struct {
	ID              int64   `json:"id"`
	SerialNumber    string  `json:"serial_number"`
	Name            string  `json:"name"`
	OriginatingUnit string  `json:"originating_unit"`
	Deadline        string  `json:"deadline"`
	Status          string  `json:"status"`
	Urgency         Urgency `json:"urgency"`
	DaysRemaining   int     `json:"days_remaining"`
}

// Statistics are the dashboard counters.
type Statistics struct {
	TotalPending   int64 `json:"total_pending"`
	CreatedToday   int64 `json:"created_today"`
	CompletedToday int64 `json:"completed_today"`
}

// Today truncates t to the start of its UTC calendar day.
func Today(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Classify reports the urgency of deadline relative to today, both UTC
// dates. ok is false when the deadline is further out than the window.
func Classify(deadline, today time.Time) (urgency Urgency, days int, ok bool) {
	days = int(Today(deadline).Sub(Today(today)).Hours() / 24)
	switch {
	case days < 0:
		return UrgencyOverdue, days, true
	case days <= NearingWindowDays:
		return UrgencyNearing, days, true
	default:
		return "", days, false
	}
}
