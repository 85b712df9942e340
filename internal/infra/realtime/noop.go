package realtime

import "context"

// NoopBroadcaster is bound when no Redis endpoint is configured.
type NoopBroadcaster struct{}

func NewNoopBroadcaster() *NoopBroadcaster {
	return &NoopBroadcaster{}
}

func (NoopBroadcaster) Broadcast(_ context.Context, _ string, _ any) {}
