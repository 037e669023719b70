// Package documents tracks documents and their append-only flow history.
// A document is registered once, moves between personnel through send and
// receive actions, and is archived on completion.
package documents

import (
	"fmt"
	"strings"
	"time"

	"github.com/JaimeStill/file-flow/pkg/validation"
)

// DateLayout is the wire format for deadlines and date filters.
const DateLayout = "2006-01-02"

// SerialPrefix starts every generated serial number.
const SerialPrefix = "DOC-"

const (
	StatusPending  = "pending"
	StatusArchived = "archived"
)

// Action identifies the kind of flow record.
type Action string

const (
	ActionSend    Action = "send"
	ActionReceive Action = "receive"
)

// Category classifies a document. The set is closed.
type Category string

const (
	CategoryGeneral        Category = "general"
	CategoryAdministrative Category = "administrative"
	CategoryFinancial      Category = "financial"
	CategoryPersonnel      Category = "personnel"
	CategoryLegal          Category = "legal"
	CategoryConfidential   Category = "confidential"
)

// Categories lists every accepted category in display order.
var Categories = []Category{
	CategoryGeneral,
	CategoryAdministrative,
	CategoryFinancial,
	CategoryPersonnel,
	CategoryLegal,
	CategoryConfidential,
}

// Valid reports whether c is one of Categories.
func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// Document is a tracked file and its current state.
type Document struct {
	ID               int64      `json:"id"`
	SerialNumber     string     `json:"serial_number"`
	Name             string     `json:"name"`
	DocumentNumber   *string    `json:"document_number"`
	OriginatingUnit  string     `json:"originating_unit"`
	Deadline         *string    `json:"deadline"`
	Category         *string    `json:"category"`
	EntryTime        time.Time  `json:"entry_time"`
	Status           string     `json:"status"`
	LastAction       *string    `json:"last_action"`
	LastStage        *string    `json:"last_stage"`
	LastCounterparty *string    `json:"last_counterparty"`
	CompletedBy      *string    `json:"completed_by"`
	CompletionTime   *time.Time `json:"completion_time"`
}

// Archived reports whether the document has been completed.
func (d *Document) Archived() bool {
	return d.Status == StatusArchived
}

// FlowRecord is a single send or receive event. Records are never modified.
type FlowRecord struct {
	ID            int64     `json:"id"`
	DocumentID    int64     `json:"document_id"`
	ActionType    Action    `json:"action_type"`
	OperatorName  string    `json:"operator_name"`
	RecipientName *string   `json:"recipient_name"`
	ReturnerName  *string   `json:"returner_name"`
	Stage         string    `json:"stage"`
	FlowTime      time.Time `json:"flow_time"`
	Notes         *string   `json:"notes"`
}

// CreateCommand registers a new document. A blank SerialNumber is generated.
type CreateCommand struct {
	Name            string `json:"name" validate:"notblank,max=255"`
	OriginatingUnit string `json:"originating_unit" validate:"notblank,max=255"`
	SerialNumber    string `json:"serial_number" validate:"max=100"`
	DocumentNumber  string `json:"document_number" validate:"max=100"`
	Deadline        string `json:"deadline" validate:"omitempty,datetime=2006-01-02"`
	Category        string `json:"category"`
}

// Validate trims every field and checks required values, the deadline
// format, and the category.
func (c *CreateCommand) Validate() error {
	c.Name = strings.TrimSpace(c.Name)
	c.OriginatingUnit = strings.TrimSpace(c.OriginatingUnit)
	c.SerialNumber = strings.TrimSpace(c.SerialNumber)
	c.DocumentNumber = strings.TrimSpace(c.DocumentNumber)
	c.Deadline = strings.TrimSpace(c.Deadline)
	c.Category = strings.TrimSpace(c.Category)

	if err := validation.Struct(c); err != nil {
		return err
	}
	if c.Category != "" && !Category(c.Category).Valid() {
		return invalidCategory(c.Category)
	}
	return nil
}

// SendCommand hands a document to a recipient at a stage.
type SendCommand struct {
	RecipientName string `json:"recipient_name" validate:"notblank,max=255"`
	Stage         string `json:"stage" validate:"notblank,max=255"`
	SenderName    string `json:"sender_name" validate:"notblank,max=255"`
	Notes         string `json:"notes"`
}

func (c *SendCommand) Validate() error {
	c.RecipientName = strings.TrimSpace(c.RecipientName)
	c.Stage = strings.TrimSpace(c.Stage)
	c.SenderName = strings.TrimSpace(c.SenderName)
	c.Notes = strings.TrimSpace(c.Notes)
	return validation.Struct(c)
}

// ReceiveCommand records a document coming back from a returner.
type ReceiveCommand struct {
	ReturnerName string `json:"returner_name" validate:"notblank,max=255"`
	Stage        string `json:"stage" validate:"notblank,max=255"`
	ReceiverName string `json:"receiver_name" validate:"notblank,max=255"`
	Notes        string `json:"notes"`
}

func (c *ReceiveCommand) Validate() error {
	c.ReturnerName = strings.TrimSpace(c.ReturnerName)
	c.Stage = strings.TrimSpace(c.Stage)
	c.ReceiverName = strings.TrimSpace(c.ReceiverName)
	c.Notes = strings.TrimSpace(c.Notes)
	return validation.Struct(c)
}

// CompleteCommand archives a document.
type CompleteCommand struct {
	CompletedBy string `json:"completed_by" validate:"notblank,max=255"`
}

func (c *CompleteCommand) Validate() error {
	c.CompletedBy = strings.TrimSpace(c.CompletedBy)
	return validation.Struct(c)
}

// GenerateSerial returns the serial assigned to documents created at t
// without one, e.g. DOC-20240131-154500.
func GenerateSerial(t time.Time) string {
	return SerialPrefix + t.UTC().Format("20060102-150405")
}

// SentStatus is the status text recorded after a send.
func SentStatus(recipient, stage string) string {
	return fmt.Sprintf("Sent to %s at stage %s", recipient, stage)
}

// ReceivedStatus is the status text recorded after a receive.
func ReceivedStatus(returner, stage string) string {
	return fmt.Sprintf("Received from %s at stage %s", returner, stage)
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
