package controllers

import (
	"strings"
	"testing"
)

func TestParseReceiptRow(t *testing.T) {
	// Column layout: ItemCode, Returned, Purchased, PurchaseCost, Wage,
	// SupplierDamage, RepairableDamage, UnrepairableDamage.
	tests := []struct {
		name    string
		row     []string
		wantErr string
	}{
		{"valid row", []string{"FAB-COT-01", "38", "5", "120.50", "650", "2", "3", "2"}, ""},
		{"whitespace tolerated", []string{"FAB-COT-01", " 38 ", "0", " 0 ", "0", "0", "0", "0"}, ""},
		{"bad quantity", []string{"FAB-COT-01", "x", "0", "0", "0", "0", "0", "0"}, "invalid quantity in column 2"},
		{"bad cost", []string{"FAB-COT-01", "38", "0", "12,50", "0", "0", "0", "0"}, "invalid purchase cost in column 4"},
		{"bad wage", []string{"FAB-COT-01", "38", "0", "0", "six", "0", "0", "0"}, "invalid wage in column 5"},
		{"empty damage cell", []string{"FAB-COT-01", "38", "0", "0", "0", "", "0", "0"}, "invalid quantity in column 6"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parsed, err := parseReceiptRow(tt.row)
			if tt.wantErr != "" {
				if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
					t.Fatalf("err = %v, want %q", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("parseReceiptRow() = %v, want nil", err)
			}
			if parsed.ItemID != 0 || parsed.ItemCode != "" {
				t.Error("item identity must be left for the caller to resolve")
			}
		})
	}
}

func TestParseReceiptRowKeepsMoneyOutOfQuantities(t *testing.T) {
	parsed, err := parseReceiptRow([]string{"FAB-COT-01", "38", "5", "120.50", "650", "2", "3", "2"})
	if err != nil {
		t.Fatalf("parseReceiptRow() = %v", err)
	}
	if parsed.Total() != 50 {
		t.Errorf("Total() = %d, want 50", parsed.Total())
	}
	if parsed.PurchaseCost != 120.50 || parsed.Wage != 650 {
		t.Errorf("cost/wage = %v/%v, want 120.50/650", parsed.PurchaseCost, parsed.Wage)
	}
}
