package notification

import (
	"context"

	"tablebook/internal/usecase/readmodel"
)

// NoopPublisher is used when no brokers are configured, which is the
// default for the lambda deployment.
type NoopPublisher struct{}

func NewNoopPublisher() *NoopPublisher {
	return &NoopPublisher{}
}

func (p *NoopPublisher) ReservationCreated(context.Context, *readmodel.ReservationRM) {}
