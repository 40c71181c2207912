package customer

import (
	"testing"
	"time"

	"github.com/tradesift-io/tradesift/internal/domain/shipment"
)

func TestCodeSubscriptionCovers(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	future := now.AddDate(1, 0, 0)
	yesterday := now.AddDate(0, 0, -1)

	tests := []struct {
		name   string
		sub    CodeSubscription
		hsCode string
		want   bool
	}{
		{
			name:   "subscribed prefix covers longer code",
			sub:    CodeSubscription{Codes: []string{"3002"}, ValidUpto: future},
			hsCode: "300290",
			want:   true,
		},
		{
			name:   "prefix match is anchored at the start",
			sub:    CodeSubscription{Codes: []string{"0029"}, ValidUpto: future},
			hsCode: "300290",
			want:   false,
		},
		{
			name:   "expiry takes precedence over prefix match",
			sub:    CodeSubscription{Codes: []string{"3002"}, ValidUpto: yesterday},
			hsCode: "300290",
			want:   false,
		},
		{
			name:   "empty code set never covers",
			sub:    CodeSubscription{ValidUpto: future},
			hsCode: "300290",
			want:   false,
		},
		{
			name:   "expiry boundary is inclusive",
			sub:    CodeSubscription{Codes: []string{"3002"}, ValidUpto: now},
			hsCode: "3002",
			want:   true,
		},
		{
			name:   "second code in set covers",
			sub:    CodeSubscription{Codes: []string{"8501", "3002"}, ValidUpto: future},
			hsCode: "300290",
			want:   true,
		},
		{
			name:   "blank code entry is ignored",
			sub:    CodeSubscription{Codes: []string{""}, ValidUpto: future},
			hsCode: "300290",
			want:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.sub.Covers(tt.hsCode, now); got != tt.want {
				t.Errorf("Covers(%q) = %v, want %v", tt.hsCode, got, tt.want)
			}
		})
	}
}

func TestCustomerDirectionIsolation(t *testing.T) {
	now := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	future := now.AddDate(1, 0, 0)

	c, err := NewCustomer("trader@example.com", "Trader", "Acme Trading", "hash")
	if err != nil {
		t.Fatalf("NewCustomer: %v", err)
	}
	c.RenewSubscription(shipment.DirectionExport, CodeSubscription{
		Codes:             []string{"3002"},
		ValidUpto:         future,
		DownloadRemaining: 100,
	})

	if !c.IsSubscribed(shipment.DirectionExport, "300290", now) {
		t.Error("export subscription should cover export search")
	}
	if c.IsSubscribed(shipment.DirectionImport, "300290", now) {
		t.Error("export subscription must not leak into the import direction")
	}

	if got := c.Subscription(shipment.DirectionExport).DownloadRemaining; got != 100 {
		t.Errorf("export download quota = %d, want 100", got)
	}
	if got := c.Subscription(shipment.DirectionImport).DownloadRemaining; got != 0 {
		t.Errorf("import download quota = %d, want 0", got)
	}
}
