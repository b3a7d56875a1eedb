package port

import "context"

// MetricsRecorder counts business-level outcomes. Implementations must be
// safe for concurrent use; recording must never fail the operation.
type MetricsRecorder interface {
	ApplicationCreated(ctx context.Context)
	ApplicationEvaluated(ctx context.Context)
	ApplicationDecided(ctx context.Context, approved bool)
	MemberRegistered(ctx context.Context)
}
