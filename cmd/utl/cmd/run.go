package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/kbukum/utl/errors"
	"github.com/kbukum/utl/internal/linepipe"
	"github.com/kbukum/utl/logger"
	"github.com/kbukum/utl/observability"
)

// lineFunc applies an operation to one line. removed feeds the
// bytes_removed metric.
type lineFunc func(line linepipe.Line) (r record, removed int)

// runLines streams the input through fn and prints every record, inside one
// traced and metered operation.
func (a *app) runLines(cmd *cobra.Command, operation string, fn lineFunc) error {
	in, err := a.openInput(cmd)
	if err != nil {
		return err
	}
	defer in.Close()

	oc := observability.NewOperationContext(operation, a.runID, a.metrics)
	ctx, span := oc.Start(cmd.Context())
	log := logger.Get(componentCLI).WithContext(ctx).WithFields(logger.Fields(logger.FieldOperation, operation))

	source := linepipe.FromReader(in)
	if a.skipBlank {
		source = linepipe.Filter(source, func(l linepipe.Line) bool { return l.Text.Len() > 0 })
	}

	var lines, removed int
	records := linepipe.Map(source, func(_ context.Context, l linepipe.Line) (record, error) {
		r, n := fn(l)
		lines++
		removed += n
		if log.DebugEnabled() {
			log.Debug("line processed", logger.Fields(
				logger.FieldLine, l.Number,
				logger.FieldLength, l.Text.Len(),
				logger.FieldBytesRemoved, n,
			))
		}
		return r, nil
	})

	out := newPrinter(a.cfg.Strings.Output, cmd.OutOrStdout())
	err = linepipe.Drain(records, func(_ context.Context, r record) error {
		return out.emit(r)
	}).Run(ctx)
	if err == nil {
		err = out.flush()
	}

	oc.RecordBytesRemoved(ctx, removed)
	observability.SetSpanAttribute(ctx, observability.AttrLines, lines)
	observability.SetSpanAttribute(ctx, observability.AttrBytesRemoved, removed)

	status := observability.StatusOK
	if err != nil {
		status = observability.StatusError
		if a.metrics != nil {
			a.metrics.RecordError(ctx, string(errorCode(err)), operation)
		}
		log.Error("operation failed", logger.MergeWithError(nil, err))
	} else {
		log.Debug("operation finished", logger.MergeWithDuration(logger.Fields(
			"lines", lines,
			logger.FieldBytesRemoved, removed,
		), oc.Duration()))
	}
	oc.End(ctx, span, status, err)
	return err
}

func errorCode(err error) errors.ErrorCode {
	if appErr, ok := errors.AsAppError(err); ok {
		return appErr.Code
	}
	return errors.ErrCodeInternal
}
