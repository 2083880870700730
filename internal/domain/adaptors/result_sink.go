package adaptors

import "context"

// ResultSink records one outcome string somewhere visible.
type ResultSink interface {
	Write(ctx context.Context, value string) error
	Close() error
}
