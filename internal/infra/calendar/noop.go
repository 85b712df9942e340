package calendar

import (
	"context"

	"bookslot/internal/usecase/queries"
)

// NoopBridge is bound when no calendar bridge URL is configured. The empty
// event ID tells callers there is nothing to attach.
type NoopBridge struct{}

func NewNoopBridge() *NoopBridge {
	return &NoopBridge{}
}

func (NoopBridge) UpsertEvent(context.Context, *queries.AppointmentView) (string, error) {
	return "", nil
}

func (NoopBridge) DeleteEvent(context.Context, string) error {
	return nil
}
