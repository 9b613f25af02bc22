package domain

import "context"

// SheetReader fetches raw rows from a spreadsheet-backed endpoint.
type SheetReader interface {
	FetchRows(ctx context.Context, endpoint string) ([]map[string]interface{}, error)
}

// SheetWriter appends rows to a spreadsheet-backed endpoint and returns the
// upstream response body.
type SheetWriter interface {
	AppendRows(ctx context.Context, endpoint string, rows []map[string]string) ([]byte, error)
}

// EmailSender delivers a transactional email rendered from flat template params.
type EmailSender interface {
	Send(ctx context.Context, params map[string]string) error
}
