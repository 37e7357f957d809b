// Package notify owns the broadcast channel registry and the dispatcher
// port the ledgers publish through. Channel names appear here and nowhere
// else.
package notify

import "fmt"

// Channels is the closed registry of logical broadcast channel names.
// It is injected into the ledgers so mutation code never hard-codes a
// channel literal.
type Channels struct{}

// Kitchen returns the single kitchen-wide channel every kitchen display
// subscribes to.
func (Channels) Kitchen() string {
	return "kitchen"
}

// Table returns the per-table channel a customer-facing display for that
// table subscribes to.
func (Channels) Table(tableID int64) string {
	return fmt.Sprintf("table.%d", tableID)
}

// SubscriptionQueue returns the client-owned queue name for a per-table
// display subscription.
func (Channels) SubscriptionQueue(tableID int64) string {
	return fmt.Sprintf("table_display_%d", tableID)
}
