package documents

import "context"

// System defines the document register operations.
type System interface {
	Create(ctx context.Context, cmd CreateCommand) (int64, error)
	List(ctx context.Context, filters Filters) ([]Document, error)
	Find(ctx context.Context, id int64) (*Document, error)
	History(ctx context.Context, id int64) ([]FlowRecord, error)
	Send(ctx context.Context, id int64, cmd SendCommand) (*FlowRecord, error)
	Receive(ctx context.Context, id int64, cmd ReceiveCommand) (*FlowRecord, error)
	Complete(ctx context.Context, id int64, cmd CompleteCommand) (*Document, error)
	Export(ctx context.Context, filters Filters) ([]byte, error)
}
