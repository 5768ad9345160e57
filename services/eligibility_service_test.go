package services

import (
	"reflect"
	"testing"

	"garment-app/models"
)

func ledgerWith(initial int, status string, totals map[string]models.LedgerTotals) *models.BatchLedger {
	return &models.BatchLedger{
		SerialCode:      "SAR-260829-0001",
		BatchStatus:     status,
		InitialQuantity: initial,
		Totals:          totals,
	}
}

func TestEligibleJobworkTypesFreshBatch(t *testing.T) {
	ledger := ledgerWith(100, models.BatchStatusCreated, nil)

	got := EligibleJobworkTypes(ledger)
	want := []string{models.JobworkTypeCutting}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("fresh batch eligible types = %v, want %v", got, want)
	}
}

func TestDownstreamNeedsCuttingOutput(t *testing.T) {
	// Cutting assigned but nothing returned yet: stitching and packaging
	// stay locked.
	ledger := ledgerWith(100, models.BatchStatusWip, map[string]models.LedgerTotals{
		models.JobworkTypeCutting: {Assigned: 100},
	})

	if IsEligible(ledger, models.JobworkTypeStitching) {
		t.Error("stitching eligible before any cutting return")
	}
	if IsEligible(ledger, models.JobworkTypePackaging) {
		t.Error("packaging eligible before any cutting return")
	}
	if IsEligible(ledger, models.JobworkTypeCutting) {
		t.Error("cutting eligible with zero remaining quantity")
	}
}

func TestPartialCuttingReturnOpensStitching(t *testing.T) {
	ledger := ledgerWith(100, models.BatchStatusWip, map[string]models.LedgerTotals{
		models.JobworkTypeCutting: {Assigned: 100, Returned: 40},
	})

	if !IsEligible(ledger, models.JobworkTypeStitching) {
		t.Error("stitching not eligible after cutting returned 40")
	}
	if got := AvailableQuantity(ledger, models.JobworkTypeStitching); got != 40 {
		t.Errorf("stitching available = %d, want 40", got)
	}
	// Packaging still has no stitching output to draw from.
	if got := AvailableQuantity(ledger, models.JobworkTypePackaging); got != 0 {
		t.Errorf("packaging available = %d, want 0", got)
	}
	if IsEligible(ledger, models.JobworkTypePackaging) {
		t.Error("packaging eligible with zero stitching return")
	}
}

func TestPackagingFollowsStitchingOutput(t *testing.T) {
	// Packaging draws on stitching returns, never directly on cutting.
	ledger := ledgerWith(100, models.BatchStatusWip, map[string]models.LedgerTotals{
		models.JobworkTypeCutting:   {Assigned: 100, Returned: 100},
		models.JobworkTypeStitching: {Assigned: 100, Returned: 60},
	})

	if !IsEligible(ledger, models.JobworkTypePackaging) {
		t.Error("packaging not eligible after stitching returned 60")
	}
	if got := AvailableQuantity(ledger, models.JobworkTypePackaging); got != 60 {
		t.Errorf("packaging available = %d, want 60", got)
	}

	// Once those 60 are handed to packaging, eligibility must track the
	// exhausted availability.
	ledger.Totals[models.JobworkTypePackaging] = models.LedgerTotals{Assigned: 60}
	if IsEligible(ledger, models.JobworkTypePackaging) {
		t.Error("packaging eligible with zero available quantity")
	}
}

func TestEligibilityNeverExceedsAvailability(t *testing.T) {
	// An eligible type always has strictly positive available quantity.
	ledger := ledgerWith(100, models.BatchStatusWip, map[string]models.LedgerTotals{
		models.JobworkTypeCutting:   {Assigned: 100, Returned: 50},
		models.JobworkTypeStitching: {Assigned: 50},
	})

	for _, jobworkType := range models.JobworkTypes {
		if IsEligible(ledger, jobworkType) && AvailableQuantity(ledger, jobworkType) <= 0 {
			t.Errorf("%s eligible but available quantity is %d",
				jobworkType, AvailableQuantity(ledger, jobworkType))
		}
	}
}

func TestRepairableDamageCreditsCutting(t *testing.T) {
	// Stitching reported 5 repairable: cutting reopens for exactly that
	// credit even though its own quantity is exhausted.
	ledger := ledgerWith(100, models.BatchStatusWip, map[string]models.LedgerTotals{
		models.JobworkTypeCutting:   {Assigned: 100, Returned: 100},
		models.JobworkTypeStitching: {Assigned: 100, Returned: 95, RepairableDamage: 5},
	})

	if got := CuttingAvailable(ledger); got != 5 {
		t.Errorf("cutting available = %d, want 5 (repairable credit)", got)
	}
	if !IsEligible(ledger, models.JobworkTypeCutting) {
		t.Error("cutting not eligible despite repairable credit")
	}
}

func TestStitchingClosureFormula(t *testing.T) {
	// returned + supplier damage + unrepairable + purchased == initial
	// closes the type; repairable damage does not count toward closure.
	tests := []struct {
		name   string
		totals models.LedgerTotals
		closed bool
	}{
		{"fully returned", models.LedgerTotals{Assigned: 100, Returned: 100}, true},
		{"mixed outcomes", models.LedgerTotals{Assigned: 100, Returned: 90, SupplierDamage: 4, UnrepairableDamage: 3, Purchased: 3}, true},
		{"repairable leaves gap", models.LedgerTotals{Assigned: 100, Returned: 95, RepairableDamage: 5}, false},
		{"short", models.LedgerTotals{Assigned: 100, Returned: 99}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ledger := ledgerWith(100, models.BatchStatusWip, map[string]models.LedgerTotals{
				models.JobworkTypeCutting:   {Assigned: 100, Returned: 100},
				models.JobworkTypeStitching: tt.totals,
			})
			if got := IsClosed(ledger, models.JobworkTypeStitching); got != tt.closed {
				t.Errorf("IsClosed(stitching) = %v, want %v", got, tt.closed)
			}
		})
	}
}

func TestNoEligibilityOnDeadBatches(t *testing.T) {
	for _, status := range []string{models.BatchStatusDiscarded, models.BatchStatusClosed} {
		ledger := ledgerWith(100, status, nil)
		if got := EligibleJobworkTypes(ledger); len(got) != 0 {
			t.Errorf("batch status %s: eligible types = %v, want none", status, got)
		}
	}
}

func TestZeroQuantityBatchIsInert(t *testing.T) {
	ledger := ledgerWith(0, models.BatchStatusCreated, nil)
	if got := EligibleJobworkTypes(ledger); len(got) != 0 {
		t.Errorf("zero-quantity batch eligible types = %v, want none", got)
	}
}

func TestUnknownJobworkTypeNeverEligible(t *testing.T) {
	ledger := ledgerWith(100, models.BatchStatusCreated, nil)
	if IsEligible(ledger, "dyeing") {
		t.Error("unknown jobwork type reported eligible")
	}
}
