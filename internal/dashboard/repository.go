package dashboard

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/JaimeStill/file-flow/pkg/repository"
)

const (
	statusArchived = "archived"
	actionSend     = "send"
	dateLayout     = "2006-01-02"
)

type repo struct {
	db     *sql.DB
	logger *slog.Logger
	clock  func() time.Time
}

// New creates a dashboard backed by db. clock decides what "today" is.
func New(db *sql.DB, logger *slog.Logger, clock func() time.Time) System {
	return &repo{
		db:     db,
		logger: logger.With("system", "dashboard"),
		clock:  clock,
	}
}

// The lateral join picks one latest record per document; equal flow
// times resolve to the highest id.
const dueRecallsSQL = `SELECT d.id, d.serial_number, d.name, d.originating_unit, d.deadline, d.status,
	COALESCE(f.recipient_name, ''), f.flow_time, f.stage
	FROM public.documents d
	JOIN LATERAL (
		SELECT fr.action_type, fr.recipient_name, fr.flow_time, fr.stage
		FROM public.flow_records fr
		WHERE fr.document_id = d.id
		ORDER BY fr.flow_time DESC, fr.id DESC
		LIMIT 1
	) f ON true
	WHERE d.status <> $1 AND f.action_type = $2
	ORDER BY f.flow_time DESC, d.id DESC`

func (r *repo) DueRecalls(ctx context.Context) ([]DueRecall, error) {
	items, err := repository.QueryMany(ctx, r.db, dueRecallsSQL,
		[]any{statusArchived, actionSend},
		scanDueRecall,
	)
	if err != nil {
		return nil, fmt.Errorf("query due recalls: %w", err)
	}
	return items, nil
}

const deadlinesSQL = `SELECT d.id, d.serial_number, d.name, d.originating_unit, d.deadline, d.status
	FROM public.documents d
	WHERE d.status <> $1 AND d.deadline IS NOT NULL AND d.deadline <= $2::date
	ORDER BY d.deadline ASC, d.id ASC`

func (r *repo) Overdue(ctx context.Context) ([]DeadlineItem, error) {
	today := Today(r.clock())
	horizon := today.AddDate(0, 0, NearingWindowDays)

	rows, err := repository.QueryMany(ctx, r.db, deadlinesSQL,
		[]any{statusArchived, horizon.Format(dateLayout)},
		scanDeadline,
	)
	if err != nil {
		return nil, fmt.Errorf("query deadlines: %w", err)
	}

	items := make([]DeadlineItem, 0, len(rows))
	for _, row := range rows {
		urgency, days, ok := Classify(row.deadline, today)
		if !ok {
			continue
		}
		item := row.item
		item.Urgency = urgency
		item.DaysRemaining = days
		items = append(items, item)
	}
	return items, nil
}

const statisticsSQL = `SELECT
	COUNT(*) FILTER (WHERE status <> $1),
	COUNT(*) FILTER (WHERE entry_time >= $2 AND entry_time < $3),
	COUNT(*) FILTER (WHERE completion_time >= $2 AND completion_time < $3)
	FROM public.documents`

func (r *repo) Statistics(ctx context.Context) (*Statistics, error) {
	start := Today(r.clock())
	end := start.AddDate(0, 0, 1)

	var s Statistics
	err := r.db.QueryRowContext(ctx, statisticsSQL, statusArchived, start, end).
		Scan(&s.TotalPending, &s.CreatedToday, &s.CompletedToday)
	if err != nil {
		return nil, fmt.Errorf("query statistics: %w", err)
	}
	return &s, nil
}
