package dashboard

import (
	"database/sql"
	"time"

	"github.com/JaimeStill/file-flow/pkg/repository"
)

func scanDueRecall(s repository.Scanner) (DueRecall, error) {
	var (
		item     DueRecall
		deadline sql.NullTime
	)
	err := s.Scan(
		&item.ID,
		&item.SerialNumber,
		&item.Name,
		&item.OriginatingUnit,
		&deadline,
		&item.Status,
		&item.RecipientName,
		&item.FlowTime,
		&item.Stage,
	)
	if deadline.Valid {
		v := deadline.Time.Format(dateLayout)
		item.Deadline = &v
	}
	item.FlowTime = item.FlowTime.UTC()
	return item, err
}

type deadlineRow struct {
	item     DeadlineItem
	deadline time.Time
}

func scanDeadline(s repository.Scanner) (deadlineRow, error) {
	var row deadlineRow
	err := s.Scan(
		&row.item.ID,
		&row.item.SerialNumber,
		&row.item.Name,
		&row.item.OriginatingUnit,
		&row.deadline,
		&row.item.Status,
	)
	row.item.Deadline = row.deadline.Format(dateLayout)
	return row, err
}
