package documents

import "github.com/JaimeStill/file-flow/pkg/query"

var projection = query.NewProjectionMap("public", "documents", "d").
	Project("id", "Id").
	Project("serial_number", "SerialNumber").
	Project("name", "Name").
	Project("document_number", "DocumentNumber").
	Project("originating_unit", "OriginatingUnit").
	Project("deadline", "Deadline").
	Project("category", "Category").
	Project("entry_time", "EntryTime").
	Project("status", "Status").
	Project("last_action", "LastAction").
	Project("last_stage", "LastStage").
	Project("last_counterparty", "LastCounterparty").
	Project("completed_by", "CompletedBy").
	Project("completion_time", "CompletionTime")

var defaultSort = []query.SortField{
	{Field: "EntryTime", Descending: true},
	{Field: "Id", Descending: true},
}

var flowProjection = query.NewProjectionMap("public", "flow_records", "f").
	Project("id", "Id").
	Project("document_id", "DocumentId").
	Project("action_type", "ActionType").
	Project("operator_name", "OperatorName").
	Project("recipient_name", "RecipientName").
	Project("returner_name", "ReturnerName").
	Project("stage", "Stage").
	Project("flow_time", "FlowTime").
	Project("notes", "Notes")

var flowSort = []query.SortField{
	{Field: "FlowTime"},
	{Field: "Id"},
}
