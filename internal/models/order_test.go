package models

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func price(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func TestCreateOrderRequest_TotalAmount(t *testing.T) {
	tests := []struct {
		name  string
		items []OrderItemRequest
		want  string
	}{
		{
			name: "preserves decimal places",
			items: []OrderItemRequest{
				{Quantity: 2, UnitPrice: price("45.00")},
				{Quantity: 1, UnitPrice: price("30.00")},
			},
			want: "120.00",
		},
		{
			name: "single item",
			items: []OrderItemRequest{
				{Quantity: 2, UnitPrice: price("45.00")},
			},
			want: "90.00",
		},
		{
			name: "fractional prices add exactly",
			items: []OrderItemRequest{
				{Quantity: 3, UnitPrice: price("0.10")},
			},
			want: "0.30",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := &CreateOrderRequest{TableID: 1, Items: tt.items}
			if got := req.TotalAmount().String(); got != tt.want {
				t.Errorf("TotalAmount() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestCreateOrderRequest_Validate(t *testing.T) {
	valid := &CreateOrderRequest{
		TableID: 1,
		Items:   []OrderItemRequest{{ProductID: 1, Quantity: 1, UnitPrice: price("10.00")}},
	}
	if err := valid.Validate(); err != nil {
		t.Errorf("Validate() error = %v, want nil", err)
	}

	invalid := []*CreateOrderRequest{
		{Items: []OrderItemRequest{{ProductID: 1, Quantity: 1, UnitPrice: price("10.00")}}},
		{TableID: 1},
		{TableID: 1, Items: []OrderItemRequest{{ProductID: 1, Quantity: 1}}},
		{TableID: 1, Items: []OrderItemRequest{{ProductID: 1, Quantity: -1, UnitPrice: price("10.00")}}},
	}
	for i, req := range invalid {
		if err := req.Validate(); !errors.Is(err, ErrInvalidArgument) {
			t.Errorf("invalid[%d]: Validate() error = %v, want ErrInvalidArgument", i, err)
		}
	}
}

func TestGenerateOrderNumber(t *testing.T) {
	now := time.UnixMilli(1748779200000)
	if got := GenerateOrderNumber(now); got != "ORD-1748779200000" {
		t.Errorf("GenerateOrderNumber() = %s, want ORD-1748779200000", got)
	}
}

func TestOrder_TotalAmountJSON(t *testing.T) {
	o := Order{OrderNumber: "ORD-1", Status: OrderStatusPending, TotalAmount: decimal.RequireFromString("90.00")}
	data, err := json.Marshal(o)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if want := `"total_amount":"90.00"`; !strings.Contains(string(data), want) {
		t.Errorf("marshalled order %s missing %s", data, want)
	}
}
