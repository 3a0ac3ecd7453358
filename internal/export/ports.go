// Package export defines the outbound port for mirroring manual records to
// an external journal.
package export

import (
	"context"

	"tripledger/internal/core"
)

// RecordAppender appends one manual record to the journal, returning a
// reference to the written row.
type RecordAppender interface {
	Append(ctx context.Context, rec core.ManualRecord) (ref string, err error)
}
