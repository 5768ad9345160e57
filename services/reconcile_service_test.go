package services

import (
	"errors"
	"testing"
)

func TestReceiptRowTotal(t *testing.T) {
	row := ReceiptRow{
		ItemID:             1,
		ReturnedQuantity:   40,
		PurchasedQuantity:  3,
		SupplierDamage:     2,
		RepairableDamage:   4,
		UnrepairableDamage: 1,
		PurchaseCost:       120.50,
		Wage:               800,
	}
	// Cost and wage never enter the quantity total.
	if got := row.Total(); got != 50 {
		t.Errorf("Total() = %d, want 50", got)
	}
}

func TestTotalEntered(t *testing.T) {
	rows := []ReceiptRow{
		{ItemID: 1, ReturnedQuantity: 30},
		{ItemID: 2, ReturnedQuantity: 10, SupplierDamage: 5},
		{ItemID: 3, RepairableDamage: 5},
	}
	if got := TotalEntered(rows); got != 50 {
		t.Errorf("TotalEntered() = %d, want 50", got)
	}
}

func TestValidateRows(t *testing.T) {
	tests := []struct {
		name      string
		rows      []ReceiptRow
		wantRow   int
		wantField string
	}{
		{"empty submission", nil, 0, "items"},
		{"missing item", []ReceiptRow{{ReturnedQuantity: 5}}, 1, "item_id"},
		{"negative quantity", []ReceiptRow{
			{ItemID: 1, ReturnedQuantity: 5},
			{ItemID: 2, ReturnedQuantity: -1},
		}, 2, "quantity"},
		{"all zero row", []ReceiptRow{{ItemID: 1}}, 1, "quantity"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRows(tt.rows)
			if err == nil {
				t.Fatal("expected an error")
			}
			var rowErr *RowError
			if !errors.As(err, &rowErr) {
				t.Fatalf("error type = %T, want *RowError", err)
			}
			if rowErr.Row != tt.wantRow || rowErr.Field != tt.wantField {
				t.Errorf("RowError = row %d field %q, want row %d field %q",
					rowErr.Row, rowErr.Field, tt.wantRow, tt.wantField)
			}
		})
	}
}

func TestCheckConservation(t *testing.T) {
	tests := []struct {
		name             string
		entered, pending int
		wantErr          error
	}{
		{"over-delivery rejected", 55, 50, ErrQuantityExceeded},
		{"exact total commits", 50, 50, nil},
		{"under-delivery flagged", 40, 50, ErrShortDelivery},
		{"single unit short", 49, 50, ErrShortDelivery},
		{"nothing pending", 1, 0, ErrQuantityExceeded},
		{"empty against empty", 0, 0, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckConservation(tt.entered, tt.pending)
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("CheckConservation(%d, %d) = %v, want nil", tt.entered, tt.pending, err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("CheckConservation(%d, %d) = %v, want %v", tt.entered, tt.pending, err, tt.wantErr)
			}
		})
	}
}

func TestRowsReconcileAgainstPending(t *testing.T) {
	// Mixed outcomes across rows reconcile only when the grand total
	// matches the pending quantity.
	rows := []ReceiptRow{
		{ItemID: 1, ReturnedQuantity: 38},
		{ItemID: 2, SupplierDamage: 2, RepairableDamage: 3},
		{ItemID: 3, PurchasedQuantity: 5, UnrepairableDamage: 2},
	}

	if err := CheckConservation(TotalEntered(rows), 50); err != nil {
		t.Errorf("want exact reconciliation, got %v", err)
	}
	if err := CheckConservation(TotalEntered(rows), 60); !errors.Is(err, ErrShortDelivery) {
		t.Errorf("want ErrShortDelivery, got %v", err)
	}
	if err := CheckConservation(TotalEntered(rows), 40); !errors.Is(err, ErrQuantityExceeded) {
		t.Errorf("want ErrQuantityExceeded, got %v", err)
	}
}

func TestValidateRowsAcceptsMixedOutcomes(t *testing.T) {
	rows := []ReceiptRow{
		{ItemID: 1, ReturnedQuantity: 40, Wage: 700},
		{ItemID: 2, SupplierDamage: 3},
		{ItemID: 3, PurchasedQuantity: 7, PurchaseCost: 95.0},
	}
	if err := ValidateRows(rows); err != nil {
		t.Errorf("ValidateRows() = %v, want nil", err)
	}
}
