package status

import (
	"errors"
	"testing"

	"github.com/mmeshcher/deliverus-owner/internal/apierror"
	"github.com/mmeshcher/deliverus-owner/internal/model"
)

func TestNext(t *testing.T) {
	tests := []struct {
		name   string
		status model.OrderStatus
		action string
		next   model.OrderStatus
	}{
		{
			name:   "pending confirms",
			status: model.OrderStatusPending,
			action: "confirm",
			next:   model.OrderStatusInProcess,
		},
		{
			name:   "in process sends",
			status: model.OrderStatusInProcess,
			action: "send",
			next:   model.OrderStatusSent,
		},
		{
			name:   "sent delivers",
			status: model.OrderStatusSent,
			action: "deliver",
			next:   model.OrderStatusDelivered,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr, err := Next(tt.status)
			if err != nil {
				t.Fatalf("Next(%q) error: %v", tt.status, err)
			}
			if tr.Action != tt.action {
				t.Fatalf("Next(%q).Action = %q, want %q", tt.status, tr.Action, tt.action)
			}
			if tr.Next != tt.next {
				t.Fatalf("Next(%q).Next = %q, want %q", tt.status, tr.Next, tt.next)
			}
		})
	}
}

func TestNext_Delivered(t *testing.T) {
	_, err := Next(model.OrderStatusDelivered)

	var terminal *apierror.TerminalStateError
	if !errors.As(err, &terminal) {
		t.Fatalf("expected TerminalStateError, got %v", err)
	}
	if terminal.Status != model.OrderStatusDelivered {
		t.Fatalf("terminal status = %q, want %q", terminal.Status, model.OrderStatusDelivered)
	}
}

func TestNext_UnknownStatus(t *testing.T) {
	_, err := Next(model.OrderStatus("cancelled"))
	if err == nil {
		t.Fatalf("expected error for unknown status")
	}

	var terminal *apierror.TerminalStateError
	if errors.As(err, &terminal) {
		t.Fatalf("unknown status must not be reported as terminal, got %v", err)
	}
}

func TestTransitionPath(t *testing.T) {
	path, err := TransitionPath(10, model.OrderStatusPending)
	if err != nil {
		t.Fatalf("TransitionPath error: %v", err)
	}
	if path != "orders/10/confirm" {
		t.Fatalf("path = %q, want %q", path, "orders/10/confirm")
	}

	_, err = TransitionPath(10, model.OrderStatusDelivered)
	var terminal *apierror.TerminalStateError
	if !errors.As(err, &terminal) {
		t.Fatalf("expected TerminalStateError, got %v", err)
	}
}
