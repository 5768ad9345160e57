package services

import (
	"testing"

	"garment-app/models"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		from, to string
		want     bool
	}{
		{models.JobworkStatusInProgress, models.JobworkStatusReassigned, true},
		{models.JobworkStatusInProgress, models.JobworkStatusAwaitingClose, true},
		{models.JobworkStatusReassigned, models.JobworkStatusInProgress, true},
		{models.JobworkStatusAwaitingClose, models.JobworkStatusClosed, true},
		{models.JobworkStatusClosed, models.JobworkStatusAwaitingClose, true},

		// Rows written by old clients rest at pending_return and behave
		// like in_progress.
		{models.JobworkStatusPendingReturn, models.JobworkStatusInProgress, true},
		{models.JobworkStatusPendingReturn, models.JobworkStatusAwaitingClose, true},

		// No skipping states.
		{models.JobworkStatusInProgress, models.JobworkStatusClosed, false},
		{models.JobworkStatusReassigned, models.JobworkStatusClosed, false},
		{models.JobworkStatusClosed, models.JobworkStatusInProgress, false},
		{models.JobworkStatusAwaitingClose, models.JobworkStatusInProgress, false},
		{models.JobworkStatusClosed, models.JobworkStatusClosed, false},
		{models.JobworkStatusInProgress, models.JobworkStatusInProgress, false},
		{models.JobworkStatusInProgress, "archived", false},
		{"", models.JobworkStatusInProgress, false},
	}

	for _, tt := range tests {
		if got := CanTransition(tt.from, tt.to); got != tt.want {
			t.Errorf("CanTransition(%q, %q) = %v, want %v", tt.from, tt.to, got, tt.want)
		}
	}
}

func TestReassignedIsNeverARestingState(t *testing.T) {
	// The only way out of reassigned is straight back to in_progress.
	for _, to := range []string{
		models.JobworkStatusAwaitingClose,
		models.JobworkStatusClosed,
		models.JobworkStatusReassigned,
	} {
		if CanTransition(models.JobworkStatusReassigned, to) {
			t.Errorf("reassigned -> %s allowed", to)
		}
	}
	if !CanTransition(models.JobworkStatusReassigned, models.JobworkStatusInProgress) {
		t.Error("reassigned -> in_progress blocked")
	}
}
