package entities

import "testing"

func TestOrderIsCancelled(t *testing.T) {
	cases := []struct {
		name  string
		order Order
		want  bool
	}{
		{"cancelled lifecycle", Order{Lifecycle: OrderLifecycleCancelled}, true},
		{"fully refunded lifecycle", Order{Lifecycle: OrderLifecycleFullyRefunded}, true},
		{"refunds consumed payments", Order{Lifecycle: OrderLifecycleCompleted, PaymentTotal: 100, RefundTotal: 100}, true},
		{"partial refund", Order{Lifecycle: OrderLifecyclePartiallyRefunded, PaymentTotal: 100, RefundTotal: 40}, false},
		{"live order", Order{Lifecycle: OrderLifecycleCompleted, PaymentTotal: 100}, false},
		{"unpaid pending", Order{Lifecycle: OrderLifecyclePending}, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.order.IsCancelled(); got != tc.want {
				t.Fatalf("IsCancelled() = %v, want %v", got, tc.want)
			}
		})
	}
}
