package dashboard

import "github.com/JaimeStill/file-flow/pkg/openapi"

type spec struct {
	DueRecalls *openapi.Operation
	Overdue    *openapi.Operation
	Statistics *openapi.Operation
}

var Spec = spec{
	DueRecalls: &openapi.Operation{
		Summary:     "Due recalls",
		Description: "Open documents whose latest flow action was a send, most recent first",
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseSchema("Due recalls", openapi.ArrayOf("DueRecall")),
			500: openapi.ResponseRef("InternalError"),
		},
	},
	Overdue: &openapi.Operation{
		Summary:     "Overdue and nearing deadline",
		Description: "Open documents past their deadline or due within three days (UTC), earliest deadline first",
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseSchema("Deadline items", openapi.ArrayOf("DeadlineItem")),
			500: openapi.ResponseRef("InternalError"),
		},
	},
	Statistics: &openapi.Operation{
		Summary: "Dashboard statistics",
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Counters", "Statistics"),
			500: openapi.ResponseRef("InternalError"),
		},
	},
}

var Schemas = map[string]*openapi.Schema{
	"DueRecall": {
		Type: "object",
		Properties: map[string]*openapi.Schema{
			"id":               {Type: "integer", Format: "int64"},
			"serial_number":    {Type: "string"},
			"name":             {Type: "string"},
			"originating_unit": {Type: "string"},
			"deadline":         {Type: "string", Format: "date", Nullable: true},
			"status":           {Type: "string"},
			"recipient_name":   {Type: "string"},
			"flow_time":        {Type: "string", Format: "date-time"},
			"stage":            {Type: "string"},
		},
	},
	"DeadlineItem": {
		Type: "object",
		Properties: map[string]*openapi.Schema{
			"id":               {Type: "integer", Format: "int64"},
			"serial_number":    {Type: "string"},
			"name":             {Type: "string"},
			"originating_unit": {Type: "string"},
			"deadline":         {Type: "string", Format: "date"},
			"status":           {Type: "string"},
			"urgency":          {Type: "string", Enum: []string{string(UrgencyOverdue), string(UrgencyNearing)}},
			"days_remaining":   {Type: "integer", Description: "Negative when overdue"},
		},
	},
	"Statistics": {
		Type: "object",
		Properties: map[string]*openapi.Schema{
			"total_pending":   {Type: "integer", Description: "Documents not archived"},
			"created_today":   {Type: "integer"},
			"completed_today": {Type: "integer"},
		},
	},
}
