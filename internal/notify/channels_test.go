package notify

import "testing"

func TestChannels(t *testing.T) {
	var ch Channels

	if got := ch.Kitchen(); got != "kitchen" {
		t.Errorf("Kitchen() = %q, want %q", got, "kitchen")
	}
	if got := ch.Table(7); got != "table.7" {
		t.Errorf("Table(7) = %q, want %q", got, "table.7")
	}
	if got := ch.SubscriptionQueue(7); got != "table_display_7" {
		t.Errorf("SubscriptionQueue(7) = %q, want %q", got, "table_display_7")
	}
}
