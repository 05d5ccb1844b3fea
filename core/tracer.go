package core

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/crossline-labs/crossline-relayer/metrics"
)

const tracerName = "github.com/crossline-labs/crossline-relayer/core"

var tracer = otel.Tracer(tracerName)

func startChainSpan(qc QueryContext, name, chainID string, clientID ClientID) (context.Context, trace.Span) {
	return tracer.Start(qc.Context(), name, trace.WithAttributes(
		AttributeKeyChainID.String(chainID),
		AttributeKeyClientID.String(clientID.String()),
		AttributeKeyRevisionNumber.Int64(int64(qc.Height().GetRevisionNumber())),
		AttributeKeyRevisionHeight.Int64(int64(qc.Height().GetRevisionHeight())),
	))
}

// recordQuery closes out the observability for one chain round-trip: the
// span status and the per-kind query counters.
func recordQuery(ctx context.Context, span trace.Span, chainID, kind string, err error) {
	metrics.CountQuery(ctx, chainID, kind, err == nil)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
	}
}
