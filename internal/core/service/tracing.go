package service

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/pragma/auth-service/internal/core/domain"
	"github.com/pragma/auth-service/internal/core/ports"
)

const tracerName = "github.com/pragma/auth-service/internal/core/service"

func startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	return otel.Tracer(tracerName).Start(ctx, name)
}

// endSpan closes span. Business outcomes are annotated but do not mark the span
// as failed.
func endSpan(span trace.Span, err error) {
	if err != nil {
		if domain.IsBusiness(err) {
			span.SetAttributes(attrOutcome(domain.Code(err)))
		} else {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
	}
	span.End()
}

// atomically runs fn inside tx and hands back its result only when the
// transaction committed.
func atomically[T any](ctx context.Context, tx ports.Transactor, fn func(ctx context.Context) (T, error)) (T, error) {
	var result T
	err := tx.WithinTransaction(ctx, func(ctx context.Context) error {
		var err error
		result, err = fn(ctx)
		return err
	})
	if err != nil {
		var zero T
		return zero, err
	}
	return result, nil
}
