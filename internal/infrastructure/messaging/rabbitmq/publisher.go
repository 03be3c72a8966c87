package rabbitmq

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

const (
	DefaultExchange = "invite.events"

	// Window to wait for a broker Return / Confirm before treating the
	// publish attempt as done.
	confirmWait = 150 * time.Millisecond
)

// Publisher sends JSON envelopes to a topic exchange with mandatory routing
// and publisher confirms. All emissions in this service are best-effort, so
// callers log and move on when PublishEvent fails.
type Publisher struct {
	url      string
	exchange string

	mu sync.Mutex

	conn *amqp.Connection
	ch   *amqp.Channel

	confirmCh <-chan amqp.Confirmation
	returnCh  <-chan amqp.Return
}

func NewPublisher(url, exchange string) (*Publisher, error) {
	if exchange == "" {
		exchange = DefaultExchange
	}

	p := &Publisher{
		url:      url,
		exchange: exchange,
	}
	if err := p.connect(); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *Publisher) connect() error {
	conn, err := amqp.Dial(p.url)
	if err != nil {
		return err
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return err
	}

	if err := ch.Confirm(false); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return err
	}

	p.conn = conn
	p.ch = ch

	p.confirmCh = ch.NotifyPublish(make(chan amqp.Confirmation, 1))
	p.returnCh = ch.NotifyReturn(make(chan amqp.Return, 1))

	return nil
}

func (p *Publisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.ch != nil {
		_ = p.ch.Close()
		p.ch = nil
	}
	if p.conn != nil {
		_ = p.conn.Close()
		p.conn = nil
	}
	return nil
}

// PublishEvent publishes a JSON-encoded envelope body to the topic exchange.
// messageID must be stable for the message so downstream consumers can
// deduplicate.
func (p *Publisher) PublishEvent(ctx context.Context, routingKey, messageID string, body []byte) error {
	if routingKey == "" {
		return errors.New("missing routingKey")
	}
	if strings.TrimSpace(messageID) == "" {
		return errors.New("missing messageID")
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if p.ch == nil {
		return errors.New("publisher channel not ready")
	}

	tag := p.ch.GetNextPublishSeqNo()

	err := p.ch.PublishWithContext(
		ctx,
		p.exchange,
		routingKey,
		true,  // mandatory
		false, // immediate
		amqp.Publishing{
			MessageId:   messageID,
			ContentType: "application/json",
			Timestamp:   time.Now().UTC(),
			Body:        body,
		},
	)
	if err != nil {
		return err
	}

	return awaitOutcome(ctx, tag, messageID, routingKey, p.confirmCh, p.returnCh, confirmWait)
}

// awaitOutcome correlates broker feedback with the publish identified by tag
// and messageID. A returned message still gets a Confirmation, and that ack
// can sit in the channel when the next publish runs, so confirmations with an
// older delivery tag and returns for other message ids are discarded instead
// of being read as ours.
func awaitOutcome(ctx context.Context, tag uint64, messageID, routingKey string, confirms <-chan amqp.Confirmation, returns <-chan amqp.Return, wait time.Duration) error {
	timeout := time.After(wait)
	returned := false
	for {
		select {
		case ret := <-returns:
			if ret.MessageId != messageID {
				continue
			}
			returned = true
			// keep looping to drain the paired confirmation
		case conf := <-confirms:
			if conf.DeliveryTag < tag {
				continue
			}
			if returned {
				return errors.New("NO_ROUTE: " + routingKey)
			}
			if !conf.Ack {
				return errors.New("publish nack")
			}
			// The broker sends basic.return before the ack, and the reader
			// goroutine buffers them in that order, so a pending return for
			// this message is already observable here.
			select {
			case ret := <-returns:
				if ret.MessageId == messageID {
					return errors.New("NO_ROUTE: " + routingKey)
				}
			default:
			}
			return nil
		case <-timeout:
			if returned {
				return errors.New("NO_ROUTE: " + routingKey)
			}
			// Neither confirm nor return in the window: treat the attempt as
			// done. Emissions are best-effort and not retried here.
			return nil
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}
