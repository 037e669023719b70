package documents

import "github.com/JaimeStill/file-flow/pkg/openapi"

type spec struct {
	List     *openapi.Operation
	Create   *openapi.Operation
	Export   *openapi.Operation
	Find     *openapi.Operation
	History  *openapi.Operation
	Send     *openapi.Operation
	Receive  *openapi.Operation
	Complete *openapi.Operation
}

var filterParams = []*openapi.Parameter{
	openapi.QueryParam("name_keyword", "string", "Name contains (case-insensitive)", false),
	openapi.QueryParam("document_number", "string", "Document number contains", false),
	openapi.QueryParam("originating_unit", "string", "Originating unit contains", false),
	openapi.QueryParam("category", "string", "Exact category", false),
	openapi.QueryParam("status", "string", "Exact status, e.g. archived", false),
	openapi.DateParam("entry_date_from", "First entry date (UTC, inclusive)"),
	openapi.DateParam("entry_date_to", "Last entry date (UTC, inclusive)"),
}

var Spec = spec{
	List: &openapi.Operation{
		Summary:     "List documents",
		Description: "List documents newest first with optional filters",
		Parameters:  filterParams,
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseSchema("Documents", openapi.ArrayOf("Document")),
			400: openapi.ResponseRef("BadRequest"),
		},
	},
	Create: &openapi.Operation{
		Summary:     "Create document",
		Description: "Register a document. A blank serial number is generated as DOC-yyyyMMdd-HHmmss (UTC).",
		RequestBody: openapi.RequestBodyJSON("CreateDocument", true),
		Responses: map[int]*openapi.Response{
			201: openapi.ResponseJSON("Document created", "Created"),
			400: openapi.ResponseRef("BadRequest"),
			409: openapi.ResponseRef("Conflict"),
		},
	},
	Export: &openapi.Operation{
		Summary:     "Export documents",
		Description: "Download the filtered register as an xlsx workbook",
		Parameters:  filterParams,
		Responses: map[int]*openapi.Response{
			200: {
				Description: "Workbook",
				Content: map[string]*openapi.MediaType{
					xlsxContentType: {Schema: &openapi.Schema{Type: "string", Format: "binary"}},
				},
			},
			400: openapi.ResponseRef("BadRequest"),
		},
	},
	Find: &openapi.Operation{
		Summary:    "Find document",
		Parameters: []*openapi.Parameter{openapi.PathParam("id", "Document ID")},
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Document", "Document"),
			400: openapi.ResponseRef("BadRequest"),
			404: openapi.ResponseRef("NotFound"),
		},
	},
	History: &openapi.Operation{
		Summary:     "Flow history",
		Description: "Flow records for a document in ascending flow time",
		Parameters:  []*openapi.Parameter{openapi.PathParam("id", "Document ID")},
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseSchema("Flow records", openapi.ArrayOf("FlowRecord")),
			404: openapi.ResponseRef("NotFound"),
		},
	},
	Send: &openapi.Operation{
		Summary:     "Send document",
		Parameters:  []*openapi.Parameter{openapi.PathParam("id", "Document ID")},
		RequestBody: openapi.RequestBodyJSON("SendDocument", true),
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Flow recorded", "FlowResult"),
			400: openapi.ResponseRef("BadRequest"),
			404: openapi.ResponseRef("NotFound"),
			409: openapi.ResponseRef("Conflict"),
		},
	},
	Receive: &openapi.Operation{
		Summary:     "Receive document",
		Parameters:  []*openapi.Parameter{openapi.PathParam("id", "Document ID")},
		RequestBody: openapi.RequestBodyJSON("ReceiveDocument", true),
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Flow recorded", "FlowResult"),
			400: openapi.ResponseRef("BadRequest"),
			404: openapi.ResponseRef("NotFound"),
			409: openapi.ResponseRef("Conflict"),
		},
	},
	Complete: &openapi.Operation{
		Summary:     "Complete document",
		Description: "Archive a document. Completing an archived document returns 409 with its current state.",
		Parameters:  []*openapi.Parameter{openapi.PathParam("id", "Document ID")},
		RequestBody: openapi.RequestBodyJSON("CompleteDocument", true),
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Document archived", "CompleteResult"),
			400: openapi.ResponseRef("BadRequest"),
			404: openapi.ResponseRef("NotFound"),
			409: openapi.ResponseJSON("Already archived", "CompleteResult"),
		},
	},
}

func str(desc string) *openapi.Schema {
	return &openapi.Schema{Type: "string", Description: desc}
}

func nullableStr(desc string) *openapi.Schema {
	return &openapi.Schema{Type: "string", Description: desc, Nullable: true}
}

func categoryEnum() []string {
	out := make([]string, len(Categories))
	for i, c := range Categories {
		out[i] = string(c)
	}
	return out
}

// Schemas are the component schemas referenced by Spec.
var Schemas = map[string]*openapi.Schema{
	"Document": {
		Type: "object",
		Properties: map[string]*openapi.Schema{
			"id":                {Type: "integer", Format: "int64"},
			"serial_number":     str("Unique serial number"),
			"name":              str("Display name"),
			"document_number":   nullableStr("External document number"),
			"originating_unit":  str("Unit that registered the document"),
			"deadline":          {Type: "string", Format: "date", Nullable: true},
			"category":          {Type: "string", Enum: categoryEnum(), Nullable: true},
			"entry_time":        {Type: "string", Format: "date-time"},
			"status":            str("pending, a flow status, or archived"),
			"last_action":       {Type: "string", Enum: []string{"send", "receive"}, Nullable: true},
			"last_stage":        nullableStr("Stage of the latest flow action"),
			"last_counterparty": nullableStr("Recipient or returner of the latest flow action"),
			"completed_by":      nullableStr("Person who archived the document"),
			"completion_time":   {Type: "string", Format: "date-time", Nullable: true},
		},
	},
	"FlowRecord": {
		Type: "object",
		Properties: map[string]*openapi.Schema{
			"id":             {Type: "integer", Format: "int64"},
			"document_id":    {Type: "integer", Format: "int64"},
			"action_type":    {Type: "string", Enum: []string{"send", "receive"}},
			"operator_name":  str("Sender or receiver"),
			"recipient_name": nullableStr("Set on send"),
			"returner_name":  nullableStr("Set on receive"),
			"stage":          str("Workflow stage"),
			"flow_time":      {Type: "string", Format: "date-time"},
			"notes":          nullableStr(""),
		},
	},
	"CreateDocument": {
		Type:     "object",
		Required: []string{"name", "originating_unit"},
		Properties: map[string]*openapi.Schema{
			"name":             str(""),
			"originating_unit": str(""),
			"serial_number":    str("Generated when blank"),
			"document_number":  str(""),
			"deadline":         {Type: "string", Format: "date"},
			"category":         {Type: "string", Enum: categoryEnum()},
		},
	},
	"SendDocument": {
		Type:     "object",
		Required: []string{"recipient_name", "stage", "sender_name"},
		Properties: map[string]*openapi.Schema{
			"recipient_name": str(""),
			"stage":          str(""),
			"sender_name":    str(""),
			"notes":          str(""),
		},
	},
	"ReceiveDocument": {
		Type:     "object",
		Required: []string{"returner_name", "stage", "receiver_name"},
		Properties: map[string]*openapi.Schema{
			"returner_name": str(""),
			"stage":         str(""),
			"receiver_name": str(""),
			"notes":         str(""),
		},
	},
	"CompleteDocument": {
		Type:       "object",
		Required:   []string{"completed_by"},
		Properties: map[string]*openapi.Schema{"completed_by": str("")},
	},
	"Created": {
		Type: "object",
		Properties: map[string]*openapi.Schema{
			"message": str(""),
			"id":      {Type: "integer", Format: "int64"},
		},
	},
	"FlowResult": {
		Type: "object",
		Properties: map[string]*openapi.Schema{
			"message":     str(""),
			"flow_record": openapi.SchemaRef("FlowRecord"),
		},
	},
	"CompleteResult": {
		Type: "object",
		Properties: map[string]*openapi.Schema{
			"message":  str(""),
			"document": openapi.SchemaRef("Document"),
		},
	},
}
