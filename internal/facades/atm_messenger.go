package facades

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/gw-touchless-atm/internal/logger"
)

// ErrWaitTimeout is returned by WaitFor when the ATM does not publish the
// awaited event before the wait timeout elapses.
var ErrWaitTimeout = errors.New("timed out waiting for atm event")

// DefaultWaitTimeout bounds WaitFor when no explicit timeout is configured.
// An unbounded wait would leak a blocked handler for every unresponsive ATM.
const DefaultWaitTimeout = 30 * time.Second

// envelope is the wire format on an ATM's channel: a named event with an
// optional JSON payload.
type envelope struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data,omitempty"`
}

// ATMMessengerFacade bridges the command/reply protocol over Redis pub/sub.
// Each ATM has one logical channel; commands are published fire-and-forget
// and replies are awaited by subscribing to the same channel.
type ATMMessengerFacade struct {
	client      *redis.Client
	waitTimeout time.Duration
}

// NewATMMessengerFacade creates a new facade. A non-positive waitTimeout
// falls back to DefaultWaitTimeout.
func NewATMMessengerFacade(client *redis.Client, waitTimeout time.Duration) *ATMMessengerFacade {
	if waitTimeout <= 0 {
		waitTimeout = DefaultWaitTimeout
	}
	return &ATMMessengerFacade{client: client, waitTimeout: waitTimeout}
}

func atmChannelName(atmID int64) string {
	return fmt.Sprintf("atm:%d", atmID)
}

// Send publishes a named command on the ATM's channel. Publish-once,
// fire-and-forget: there is no acknowledgment that a subscriber received it.
func (f *ATMMessengerFacade) Send(ctx context.Context, atmID int64, event string, data any) error {
	env := envelope{Event: event}
	if data != nil {
		raw, err := json.Marshal(data)
		if err != nil {
			logger.Log.Errorw("failed to marshal atm command payload",
				"atm_id", atmID, "event", event, "error", err)
			return err
		}
		env.Data = raw
	}

	payload, err := json.Marshal(env)
	if err != nil {
		return err
	}

	err = f.client.Publish(ctx, atmChannelName(atmID), payload).Err()

	logger.Log.Infow("atm command sent",
		"atm_id", atmID,
		"event", event,
		"error", err,
	)

	return err
}

// WaitFor subscribes to the ATM's channel and suspends the calling goroutine
// until a message with the given event name arrives, returning its payload.
// The wait is bounded by the configured timeout and by the caller's context;
// the subscription is released on every exit path.
func (f *ATMMessengerFacade) WaitFor(ctx context.Context, atmID int64, event string) (json.RawMessage, error) {
	ctx, cancel := context.WithTimeout(ctx, f.waitTimeout)
	defer cancel()

	sub := f.client.Subscribe(ctx, atmChannelName(atmID))
	defer sub.Close()

	// Confirm the subscription is active before reporting readiness;
	// messages published before this point are not delivered.
	if _, err := sub.Receive(ctx); err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, ErrWaitTimeout
		}
		return nil, err
	}

	ch := sub.Channel()
	for {
		select {
		case <-ctx.Done():
			if errors.Is(ctx.Err(), context.DeadlineExceeded) {
				logger.Log.Warnw("atm reply wait timed out", "atm_id", atmID, "event", event)
				return nil, ErrWaitTimeout
			}
			return nil, ctx.Err()
		case msg, ok := <-ch:
			if !ok {
				return nil, errors.New("atm subscription closed")
			}

			var env envelope
			if err := json.Unmarshal([]byte(msg.Payload), &env); err != nil {
				logger.Log.Warnw("discarding malformed atm message",
					"atm_id", atmID, "payload", msg.Payload, "error", err)
				continue
			}
			if env.Event != event {
				continue
			}

			logger.Log.Infow("atm reply received", "atm_id", atmID, "event", event)
			return env.Data, nil
		}
	}
}
