package notify

import "context"

// Dispatcher is the outbound port the ledgers emit notifications through.
// Implementations must not be relied on for durability: callers treat
// every publish as best-effort.
type Dispatcher interface {
	Publish(ctx context.Context, channel string, payload interface{}) error
}
