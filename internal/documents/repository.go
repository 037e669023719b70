package documents

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/JaimeStill/file-flow/pkg/metrics"
	"github.com/JaimeStill/file-flow/pkg/query"
	"github.com/JaimeStill/file-flow/pkg/repository"
	"github.com/JaimeStill/file-flow/pkg/validation"
)

type repo struct {
	db      *sql.DB
	logger  *slog.Logger
	clock   func() time.Time
	metrics *collectors
}

// New creates a document repository. clock supplies entry, flow, and
// completion times; m may be nil to skip metric registration.
func New(db *sql.DB, logger *slog.Logger, clock func() time.Time, m *metrics.System) System {
	return &repo{
		db:      db,
		logger:  logger.With("system", "documents"),
		clock:   clock,
		metrics: newCollectors(m),
	}
}

const existsSQL = `SELECT EXISTS (SELECT 1 FROM public.documents WHERE serial_number = $1)`

const insertSQL = `INSERT INTO public.documents
	(serial_number, name, document_number, originating_unit, deadline, category, entry_time, status)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	RETURNING id`

func (r *repo) Create(ctx context.Context, cmd CreateCommand) (int64, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	now := r.clock().UTC()
	serial := cmd.SerialNumber
	if serial == "" {
		serial = GenerateSerial(now)
	}

	var deadline *time.Time
	if cmd.Deadline != "" {
		t, err := time.ParseInLocation(DateLayout, cmd.Deadline, time.UTC)
		if err != nil {
			return 0, validation.Invalid("deadline", "expected format YYYY-MM-DD")
		}
		deadline = &t
	}

	id, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (int64, error) {
		var exists bool
		if err := tx.QueryRowContext(ctx, existsSQL, serial).Scan(&exists); err != nil {
			return 0, err
		}
		if exists {
			return 0, &DuplicateSerialError{Serial: serial}
		}

		var id int64
		err := tx.QueryRowContext(ctx, insertSQL,
			serial,
			cmd.Name,
			nullable(cmd.DocumentNumber),
			cmd.OriginatingUnit,
			deadline,
			nullable(cmd.Category),
			now,
			StatusPending,
		).Scan(&id)
		return id, err
	})

	if err != nil {
		return 0, mapCreateError(err, serial)
	}

	r.metrics.created.Inc()
	r.logger.Info("document created", "id", id, "serial_number", serial)
	return id, nil
}

func (r *repo) List(ctx context.Context, filters Filters) ([]Document, error) {
	qb := query.NewBuilder(projection, defaultSort...)
	filters.Apply(qb)

	q, args := qb.BuildList()
	docs, err := repository.QueryMany(ctx, r.db, q, args, scanDocument)
	if err != nil {
		return nil, fmt.Errorf("query documents: %w", err)
	}
	return docs, nil
}

func (r *repo) Find(ctx context.Context, id int64) (*Document, error) {
	q, args := query.NewBuilder(projection).BuildSingle("Id", id)

	doc, err := repository.QueryOne(ctx, r.db, q, args, scanDocument)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}
	return &doc, nil
}

const documentExistsSQL = `SELECT EXISTS (SELECT 1 FROM public.documents WHERE id = $1)`

func (r *repo) History(ctx context.Context, id int64) ([]FlowRecord, error) {
	return repository.WithTx(ctx, r.db, func(tx *sql.Tx) ([]FlowRecord, error) {
		var exists bool
		if err := tx.QueryRowContext(ctx, documentExistsSQL, id).Scan(&exists); err != nil {
			return nil, fmt.Errorf("check document: %w", err)
		}
		if !exists {
			return nil, ErrNotFound
		}

		q, args := query.NewBuilder(flowProjection, flowSort...).
			WhereEquals("DocumentId", id).
			BuildList()

		records, err := repository.QueryMany(ctx, tx, q, args, scanFlowRecord)
		if err != nil {
			return nil, fmt.Errorf("query flow records: %w", err)
		}
		return records, nil
	})
}

func (r *repo) Send(ctx context.Context, id int64, cmd SendCommand) (*FlowRecord, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}
	return r.appendFlow(ctx, id, flowEntry{
		action:       ActionSend,
		operator:     cmd.SenderName,
		counterparty: cmd.RecipientName,
		stage:        cmd.Stage,
		notes:        cmd.Notes,
		status:       SentStatus(cmd.RecipientName, cmd.Stage),
	})
}

func (r *repo) Receive(ctx context.Context, id int64, cmd ReceiveCommand) (*FlowRecord, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}
	return r.appendFlow(ctx, id, flowEntry{
		action:       ActionReceive,
		operator:     cmd.ReceiverName,
		counterparty: cmd.ReturnerName,
		stage:        cmd.Stage,
		notes:        cmd.Notes,
		status:       ReceivedStatus(cmd.ReturnerName, cmd.Stage),
	})
}

type flowEntry struct {
	action       Action
	operator     string
	counterparty string
	stage        string
	notes        string
	status       string
}

// The counterparty lands in recipient_name for sends and returner_name for
// receives.
func (e flowEntry) names() (recipient, returner *string) {
	if e.action == ActionSend {
		return &e.counterparty, nil
	}
	return nil, &e.counterparty
}

const lockStatusSQL = `SELECT status FROM public.documents WHERE id = $1 FOR UPDATE`

// flow_time never precedes the document's latest record even if the clock
// steps backwards.
const insertFlowSQL = `INSERT INTO public.flow_records
	(document_id, action_type, operator_name, recipient_name, returner_name, stage, flow_time, notes)
	SELECT $1, $2, $3, $4, $5, $6, GREATEST($7::timestamptz, COALESCE(MAX(flow_time), $7::timestamptz)), $8
	FROM public.flow_records WHERE document_id = $1
	RETURNING id, document_id, action_type, operator_name, recipient_name, returner_name, stage, flow_time, notes`

const updateStatusSQL = `UPDATE public.documents
	SET status = $1, last_action = $2, last_stage = $3, last_counterparty = $4
	WHERE id = $5`

func (r *repo) appendFlow(ctx context.Context, id int64, e flowEntry) (*FlowRecord, error) {
	now := r.clock().UTC()
	recipient, returner := e.names()

	rec, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (FlowRecord, error) {
		var status string
		if err := tx.QueryRowContext(ctx, lockStatusSQL, id).Scan(&status); err != nil {
			return FlowRecord{}, repository.MapError(err, ErrNotFound, ErrDuplicate)
		}
		if status == StatusArchived {
			return FlowRecord{}, ErrArchived
		}

		rec, err := repository.QueryOne(ctx, tx, insertFlowSQL, []any{
			id, string(e.action), e.operator, recipient, returner, e.stage, now, nullable(e.notes),
		}, scanFlowRecord)
		if err != nil {
			return FlowRecord{}, fmt.Errorf("insert flow record: %w", err)
		}

		if err := repository.ExecExpectOne(ctx, tx, updateStatusSQL,
			e.status, string(e.action), e.stage, e.counterparty, id,
		); err != nil {
			return FlowRecord{}, fmt.Errorf("update status: %w", err)
		}

		return rec, nil
	})

	if err != nil {
		return nil, err
	}

	r.metrics.flows.WithLabelValues(string(e.action)).Inc()
	r.logger.Info("flow recorded",
		"document_id", id,
		"action", e.action,
		"stage", e.stage,
		"flow_record_id", rec.ID,
	)
	return &rec, nil
}

const completeSQL = `UPDATE public.documents d
	SET status = $1, completed_by = $2, completion_time = $3
	WHERE d.id = $4
	RETURNING `

func (r *repo) Complete(ctx context.Context, id int64, cmd CompleteCommand) (*Document, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	now := r.clock().UTC()
	lockSQL, lockArgs := query.NewBuilder(projection).BuildSingle("Id", id)
	lockSQL += " FOR UPDATE"

	doc, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (Document, error) {
		current, err := repository.QueryOne(ctx, tx, lockSQL, lockArgs, scanDocument)
		if err != nil {
			return Document{}, repository.MapError(err, ErrNotFound, ErrDuplicate)
		}
		if current.Archived() {
			return Document{}, &AlreadyCompletedError{Document: &current}
		}

		return repository.QueryOne(ctx, tx, completeSQL+projection.Columns(),
			[]any{StatusArchived, cmd.CompletedBy, now, id},
			scanDocument,
		)
	})

	if err != nil {
		var done *AlreadyCompletedError
		if errors.As(err, &done) {
			r.logger.Warn("document already archived", "id", id)
		}
		return nil, err
	}

	r.metrics.completed.Inc()
	r.logger.Info("document archived", "id", id, "completed_by", cmd.CompletedBy)
	return &doc, nil
}

func (r *repo) Export(ctx context.Context, filters Filters) ([]byte, error) {
	docs, err := r.List(ctx, filters)
	if err != nil {
		return nil, err
	}

	data, err := buildWorkbook(docs)
	if err != nil {
		return nil, fmt.Errorf("build workbook: %w", err)
	}

	r.logger.Info("documents exported", "count", len(docs))
	return data, nil
}

func mapCreateError(err error, serial string) error {
	var dup *DuplicateSerialError
	switch {
	case errors.As(err, &dup):
		return err
	case repository.IsUniqueViolation(err):
		return &DuplicateSerialError{Serial: serial}
	case repository.IsCheckViolation(err):
		return ErrInvalidCategory
	default:
		return fmt.Errorf("create document: %w", err)
	}
}
