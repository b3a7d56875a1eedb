package metrics

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Recorder counts business outcomes through OpenTelemetry. It implements
// port.MetricsRecorder. A nil Recorder is valid and records nothing, so tests
// and tools can skip metrics wiring.
type Recorder struct {
	applicationsCreated   metric.Int64Counter
	applicationsEvaluated metric.Int64Counter
	applicationsDecided   metric.Int64Counter
	membersRegistered     metric.Int64Counter
}

// NewRecorder creates the counters on the global meter provider.
func NewRecorder(serviceName string) (*Recorder, error) {
	meter := otel.Meter(serviceName)

	created, err := meter.Int64Counter("credit_applications_created_total",
		metric.WithDescription("Credit applications created"))
	if err != nil {
		return nil, err
	}
	evaluated, err := meter.Int64Counter("credit_applications_evaluated_total",
		metric.WithDescription("Risk evaluations attached"))
	if err != nil {
		return nil, err
	}
	decided, err := meter.Int64Counter("credit_applications_decided_total",
		metric.WithDescription("Decisions recorded, labelled by outcome"))
	if err != nil {
		return nil, err
	}
	registered, err := meter.Int64Counter("credit_members_registered_total",
		metric.WithDescription("Cooperative members registered"))
	if err != nil {
		return nil, err
	}

	return &Recorder{
		applicationsCreated:   created,
		applicationsEvaluated: evaluated,
		applicationsDecided:   decided,
		membersRegistered:     registered,
	}, nil
}

func (r *Recorder) ApplicationCreated(ctx context.Context) {
	if r == nil {
		return
	}
	r.applicationsCreated.Add(ctx, 1)
}

func (r *Recorder) ApplicationEvaluated(ctx context.Context) {
	if r == nil {
		return
	}
	r.applicationsEvaluated.Add(ctx, 1)
}

func (r *Recorder) ApplicationDecided(ctx context.Context, approved bool) {
	if r == nil {
		return
	}
	outcome := "rejected"
	if approved {
		outcome = "approved"
	}
	r.applicationsDecided.Add(ctx, 1, metric.WithAttributes(attribute.String("outcome", outcome)))
}

func (r *Recorder) MemberRegistered(ctx context.Context) {
	if r == nil {
		return
	}
	r.membersRegistered.Add(ctx, 1)
}
