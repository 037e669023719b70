package documents

import (
	"database/sql"

	"github.com/JaimeStill/file-flow/pkg/repository"
)

func scanDocument(s repository.Scanner) (Document, error) {
	var (
		d              Document
		deadline       sql.NullTime
		completionTime sql.NullTime
	)
	err := s.Scan(
		&d.ID,
		&d.SerialNumber,
		&d.Name,
		&d.DocumentNumber,
		&d.OriginatingUnit,
		&deadline,
		&d.Category,
		&d.EntryTime,
		&d.Status,
		&d.LastAction,
		&d.LastStage,
		&d.LastCounterparty,
		&d.CompletedBy,
		&completionTime,
	)
	if err != nil {
		return d, err
	}

	if deadline.Valid {
		v := deadline.Time.Format(DateLayout)
		d.Deadline = &v
	}
	if completionTime.Valid {
		v := completionTime.Time.UTC()
		d.CompletionTime = &v
	}
	d.EntryTime = d.EntryTime.UTC()
	return d, nil
}

func scanFlowRecord(s repository.Scanner) (FlowRecord, error) {
	var r FlowRecord
	err := s.Scan(
		&r.ID,
		&r.DocumentID,
		&r.ActionType,
		&r.OperatorName,
		&r.RecipientName,
		&r.ReturnerName,
		&r.Stage,
		&r.FlowTime,
		&r.Notes,
	)
	r.FlowTime = r.FlowTime.UTC()
	return r, err
}
