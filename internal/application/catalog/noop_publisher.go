package catalog

import "context"

// NoopPublisher is wired when no broker is configured (dev without rabbit).
type NoopPublisher struct{}

func (NoopPublisher) PublishEvent(ctx context.Context, routingKey, messageID string, body []byte) error {
	return nil
}
