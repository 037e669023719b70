package documents_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JaimeStill/file-flow/internal/documents"
	"github.com/JaimeStill/file-flow/pkg/routes"
	"github.com/JaimeStill/file-flow/pkg/validation"
)

type stubSystem struct {
	create   func(documents.CreateCommand) (int64, error)
	list     func(documents.Filters) ([]documents.Document, error)
	find     func(int64) (*documents.Document, error)
	history  func(int64) ([]documents.FlowRecord, error)
	send     func(int64, documents.SendCommand) (*documents.FlowRecord, error)
	receive  func(int64, documents.ReceiveCommand) (*documents.FlowRecord, error)
	complete func(int64, documents.CompleteCommand) (*documents.Document, error)
	export   func(documents.Filters) ([]byte, error)
}

func (s *stubSystem) Create(_ context.Context, cmd documents.CreateCommand) (int64, error) {
	return s.create(cmd)
}

func (s *stubSystem) List(_ context.Context, f documents.Filters) ([]documents.Document, error) {
	return s.list(f)
}

func (s *stubSystem) Find(_ context.Context, id int64) (*documents.Document, error) {
	return s.find(id)
}

func (s *stubSystem) History(_ context.Context, id int64) ([]documents.FlowRecord, error) {
	return s.history(id)
}

func (s *stubSystem) Send(_ context.Context, id int64, cmd documents.SendCommand) (*documents.FlowRecord, error) {
	return s.send(id, cmd)
}

func (s *stubSystem) Receive(_ context.Context, id int64, cmd documents.ReceiveCommand) (*documents.FlowRecord, error) {
	return s.receive(id, cmd)
}

func (s *stubSystem) Complete(_ context.Context, id int64, cmd documents.CompleteCommand) (*documents.Document, error) {
	return s.complete(id, cmd)
}

func (s *stubSystem) Export(_ context.Context, f documents.Filters) ([]byte, error) {
	return s.export(f)
}

func newMux(sys documents.System) *http.ServeMux {
	mux := http.NewServeMux()
	h := documents.NewHandler(sys, discardLogger(), 1<<10)
	routes.Register(mux, "/api", nil, h.Routes())
	return mux
}

func serve(mux http.Handler, method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestHandler_Create(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		err        error
		wantStatus int
		wantKey    string
		wantValue  any
	}{
		{
			name:       "created",
			body:       `{"name":"Budget","originating_unit":"Finance"}`,
			wantStatus: http.StatusCreated,
			wantKey:    "message",
			wantValue:  "Document created successfully",
		},
		{
			name:       "missing field",
			body:       `{"originating_unit":"Finance"}`,
			err:        validation.Required("name"),
			wantStatus: http.StatusBadRequest,
			wantKey:    "error",
			wantValue:  "Missing required field: name",
		},
		{
			name:       "duplicate serial",
			body:       `{"name":"Budget","originating_unit":"Finance","serial_number":"X-1"}`,
			err:        &documents.DuplicateSerialError{Serial: "X-1"},
			wantStatus: http.StatusConflict,
			wantKey:    "error",
			wantValue:  "Serial number 'X-1' already exists",
		},
		{
			name:       "malformed json",
			body:       `{"name":`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "storage failure",
			body:       `{"name":"Budget","originating_unit":"Finance"}`,
			err:        errors.New("connection refused"),
			wantStatus: http.StatusInternalServerError,
			wantKey:    "error",
			wantValue:  "Internal Server Error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mux := newMux(&stubSystem{
				create: func(cmd documents.CreateCommand) (int64, error) {
					if tt.err != nil {
						return 0, tt.err
					}
					return 1, nil
				},
			})

			w := serve(mux, http.MethodPost, "/documents", tt.body)

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantKey != "" {
				assert.Equal(t, tt.wantValue, decode(t, w)[tt.wantKey])
			}
		})
	}
}

func TestHandler_Create_ReturnsID(t *testing.T) {
	mux := newMux(&stubSystem{
		create: func(cmd documents.CreateCommand) (int64, error) {
			assert.Equal(t, "Budget", cmd.Name)
			return 42, nil
		},
	})

	w := serve(mux, http.MethodPost, "/documents", `{"name":"Budget","originating_unit":"Finance"}`)

	require.Equal(t, http.StatusCreated, w.Code)
	assert.JSONEq(t, `{"message":"Document created successfully","id":42}`, w.Body.String())
}

func TestHandler_List_ParsesFilters(t *testing.T) {
	var got documents.Filters
	mux := newMux(&stubSystem{
		list: func(f documents.Filters) ([]documents.Document, error) {
			got = f
			return []documents.Document{}, nil
		},
	})

	w := serve(mux, http.MethodGet, "/documents?name_keyword=bud&status=archived&entry_date_to=2024-03-15", "")

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
	require.NotNil(t, got.NameKeyword)
	assert.Equal(t, "bud", *got.NameKeyword)
	require.NotNil(t, got.Status)
	assert.Equal(t, "archived", *got.Status)
	require.NotNil(t, got.EntryDateTo)
	assert.Equal(t, "2024-03-15", got.EntryDateTo.Format(documents.DateLayout))
	assert.Nil(t, got.EntryDateFrom)
}

func TestHandler_List_BadDate(t *testing.T) {
	mux := newMux(&stubSystem{})

	w := serve(mux, http.MethodGet, "/documents?entry_date_from=15-03-2024", "")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, decode(t, w)["error"], "entry_date_from")
}

func TestHandler_PathID(t *testing.T) {
	mux := newMux(&stubSystem{})

	for _, target := range []string{"/documents/abc", "/documents/0/flow", "/documents/-3"} {
		t.Run(target, func(t *testing.T) {
			w := serve(mux, http.MethodGet, target, "")
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestHandler_Find_NotFound(t *testing.T) {
	mux := newMux(&stubSystem{
		find: func(id int64) (*documents.Document, error) {
			return nil, documents.ErrNotFound
		},
	})

	w := serve(mux, http.MethodGet, "/documents/9", "")

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"Document not found"}`, w.Body.String())
}

func TestHandler_History(t *testing.T) {
	mux := newMux(&stubSystem{
		history: func(id int64) ([]documents.FlowRecord, error) {
			return []documents.FlowRecord{{ID: 1, DocumentID: id, ActionType: documents.ActionSend}}, nil
		},
	})

	w := serve(mux, http.MethodGet, "/documents/9/flow", "")

	require.Equal(t, http.StatusOK, w.Code)
	var records []documents.FlowRecord
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &records))
	require.Len(t, records, 1)
	assert.Equal(t, int64(9), records[0].DocumentID)
}

func TestHandler_Send(t *testing.T) {
	recipient := "Bob"
	mux := newMux(&stubSystem{
		send: func(id int64, cmd documents.SendCommand) (*documents.FlowRecord, error) {
			if id == 2 {
				return nil, documents.ErrArchived
			}
			return &documents.FlowRecord{
				ID:            5,
				DocumentID:    id,
				ActionType:    documents.ActionSend,
				OperatorName:  cmd.SenderName,
				RecipientName: &recipient,
				Stage:         cmd.Stage,
			}, nil
		},
	})

	body := `{"recipient_name":"Bob","stage":"review","sender_name":"Alice"}`

	w := serve(mux, http.MethodPost, "/documents/1/send", body)
	require.Equal(t, http.StatusOK, w.Code)
	out := decode(t, w)
	assert.Equal(t, "Document sent successfully", out["message"])
	rec := out["flow_record"].(map[string]any)
	assert.Equal(t, "Bob", rec["recipient_name"])
	assert.Equal(t, "review", rec["stage"])

	w = serve(mux, http.MethodPost, "/documents/2/send", body)
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_Receive(t *testing.T) {
	mux := newMux(&stubSystem{
		receive: func(id int64, cmd documents.ReceiveCommand) (*documents.FlowRecord, error) {
			return &documents.FlowRecord{ID: 6, DocumentID: id, ActionType: documents.ActionReceive, Stage: cmd.Stage}, nil
		},
	})

	w := serve(mux, http.MethodPost, "/documents/1/receive", `{"returner_name":"Bob","stage":"review","receiver_name":"Alice"}`)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Document received successfully", decode(t, w)["message"])
}

func TestHandler_Complete(t *testing.T) {
	by := "Carol"
	archived := &documents.Document{ID: 3, Status: documents.StatusArchived, CompletedBy: &by}

	t.Run("archived", func(t *testing.T) {
		mux := newMux(&stubSystem{
			complete: func(id int64, cmd documents.CompleteCommand) (*documents.Document, error) {
				return archived, nil
			},
		})

		w := serve(mux, http.MethodPost, "/documents/3/complete", `{"completed_by":"Carol"}`)

		require.Equal(t, http.StatusOK, w.Code)
		out := decode(t, w)
		assert.Equal(t, "Document marked as completed and archived", out["message"])
		assert.Equal(t, "archived", out["document"].(map[string]any)["status"])
	})

	t.Run("already archived", func(t *testing.T) {
		mux := newMux(&stubSystem{
			complete: func(id int64, cmd documents.CompleteCommand) (*documents.Document, error) {
				return nil, &documents.AlreadyCompletedError{Document: archived}
			},
		})

		w := serve(mux, http.MethodPost, "/documents/3/complete", `{"completed_by":"Dave"}`)

		require.Equal(t, http.StatusConflict, w.Code)
		out := decode(t, w)
		assert.Equal(t, "Document is already archived", out["message"])
		assert.Equal(t, "Carol", out["document"].(map[string]any)["completed_by"])
	})
}

func TestHandler_Export(t *testing.T) {
	mux := newMux(&stubSystem{
		export: func(f documents.Filters) ([]byte, error) {
			return []byte("PK"), nil
		},
	})

	w := serve(mux, http.MethodGet, "/documents/export?status=pending", "")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "documents.xlsx")
	assert.Equal(t, "PK", w.Body.String())
}

func TestMapHTTPStatus(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{validation.Required("name"), http.StatusBadRequest},
		{documents.ErrInvalidCategory, http.StatusBadRequest},
		{documents.ErrNotFound, http.StatusNotFound},
		{&documents.DuplicateSerialError{Serial: "X"}, http.StatusConflict},
		{documents.ErrArchived, http.StatusConflict},
		{&documents.AlreadyCompletedError{}, http.StatusConflict},
		{errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			assert.Equal(t, tt.want, documents.MapHTTPStatus(tt.err))
		})
	}
}
