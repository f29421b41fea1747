package models

import "testing"

func TestOrderStatusTransitions(t *testing.T) {
	allowed := []struct{ from, to OrderStatus }{
		{StatusPending, StatusConfirmed},
		{StatusPending, StatusCanceled},
		{StatusConfirmed, StatusReady},
		{StatusConfirmed, StatusCanceled},
		{StatusReady, StatusCompleted},
	}
	for _, tr := range allowed {
		if err := ValidateStatusTransition(tr.from, tr.to); err != nil {
			t.Fatalf("%s -> %s should be allowed: %v", tr.from, tr.to, err)
		}
	}

	forbidden := []struct{ from, to OrderStatus }{
		{StatusPending, StatusReady},
		{StatusPending, StatusCompleted},
		{StatusConfirmed, StatusCompleted},
		{StatusReady, StatusCanceled},
		{StatusCompleted, StatusPending},
		{StatusCanceled, StatusConfirmed},
	}
	for _, tr := range forbidden {
		if err := ValidateStatusTransition(tr.from, tr.to); err == nil {
			t.Fatalf("%s -> %s should be rejected", tr.from, tr.to)
		}
	}
}
