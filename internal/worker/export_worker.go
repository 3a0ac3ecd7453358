// Package worker consumes record events and mirrors them to the export
// journal.
package worker

import (
	"context"
	"fmt"
	"log/slog"

	"tripledger/internal/amqp"
	"tripledger/internal/export"
)

// ExportWorker appends created records to the journal. Clear events are
// logged and skipped: the journal is append-only, so export history
// survives an in-app bulk clear.
type ExportWorker struct {
	appender export.RecordAppender
}

func NewExportWorker(appender export.RecordAppender) *ExportWorker {
	return &ExportWorker{appender: appender}
}

// HandleEvent processes one record event from AMQP.
func (w *ExportWorker) HandleEvent(ctx context.Context, msg *amqp.RecordEventMessage) error {
	switch msg.Kind {
	case amqp.EventRecordCreated:
		if msg.Record == nil {
			slog.WarnContext(ctx, "Created event without record payload, dropping")
			return nil
		}
		ref, err := w.appender.Append(ctx, *msg.Record)
		if err != nil {
			return fmt.Errorf("append record %s: %w", msg.Record.ID, err)
		}
		slog.InfoContext(ctx, "Record exported",
			"record_id", msg.Record.ID,
			"sheet_ref", ref)
		return nil

	case amqp.EventRecordsClear:
		slog.InfoContext(ctx, "Records cleared upstream, journal kept")
		return nil

	default:
		slog.WarnContext(ctx, "Unknown record event kind, dropping", "kind", msg.Kind)
		return nil
	}
}
