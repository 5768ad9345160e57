package services

import (
	"garment-app/models"
	"garment-app/repositories"

	"golang.org/x/exp/slices"
	"gorm.io/gorm"
)

// EligibilityService decides which jobwork types may currently be created
// against a batch. All rules are pure functions over a BatchLedger
// snapshot so they stay deterministic and testable; the service only
// glues the snapshot to them.
type EligibilityService struct {
	db *gorm.DB
}

func NewEligibilityService(db *gorm.DB) *EligibilityService {
	return &EligibilityService{db: db}
}

// CuttingAvailable is the remaining quantity that can still be handed to
// cutting: initial stock minus everything already assigned, plus the
// repairable rework credit.
func CuttingAvailable(ledger *models.BatchLedger) int {
	return ledger.InitialQuantity - ledger.TotalsFor(models.JobworkTypeCutting).Assigned + ledger.RepairableCredit()
}

// downstreamAvailable is the quantity a stitching or packaging jobwork can
// still be assigned: accepted output of the upstream stage minus what this
// stage already holds.
func downstreamAvailable(ledger *models.BatchLedger, jobworkType string) int {
	upstream := models.JobworkTypeCutting
	if jobworkType == models.JobworkTypePackaging {
		upstream = models.JobworkTypeStitching
	}
	return ledger.TotalsFor(upstream).Returned - ledger.TotalsFor(jobworkType).Assigned
}

// AvailableQuantity is the quantity a new jobwork of the given type may be
// assigned right now.
func AvailableQuantity(ledger *models.BatchLedger, jobworkType string) int {
	if jobworkType == models.JobworkTypeCutting {
		return CuttingAvailable(ledger)
	}
	return downstreamAvailable(ledger, jobworkType)
}

// IsClosed reports whether a jobwork type is closed for the batch: no
// further jobwork of that type may ever be created. Stitching and
// packaging close once accepted quantity plus supplier damage,
// unrepairable damage and sales account for the full batch quantity.
// Cutting closes when its available quantity is exhausted; only new
// repairable-damage credit can reopen it.
func IsClosed(ledger *models.BatchLedger, jobworkType string) bool {
	if jobworkType == models.JobworkTypeCutting {
		return CuttingAvailable(ledger) <= 0
	}

	totals := ledger.TotalsFor(jobworkType)
	accounted := totals.Returned + totals.SupplierDamage + totals.UnrepairableDamage + totals.Purchased
	return accounted == ledger.InitialQuantity
}

// IsEligible applies the creation rules for one jobwork type. Boundary is
// a strict > 0 check everywhere.
func IsEligible(ledger *models.BatchLedger, jobworkType string) bool {
	// Discarded and closed batches take no new jobwork, nor does a
	// degenerate zero-quantity batch.
	if ledger.BatchStatus == models.BatchStatusDiscarded || ledger.BatchStatus == models.BatchStatusClosed {
		return false
	}
	if ledger.InitialQuantity <= 0 {
		return false
	}

	switch jobworkType {
	case models.JobworkTypeCutting:
		return CuttingAvailable(ledger) > 0
	case models.JobworkTypeStitching, models.JobworkTypePackaging:
		// Each stage draws on its own upstream stage's accepted output;
		// eligibility and available quantity must agree.
		if downstreamAvailable(ledger, jobworkType) <= 0 {
			return false
		}
		return !IsClosed(ledger, jobworkType)
	default:
		return false
	}
}

// EligibleJobworkTypes returns the sorted set of types a new jobwork may
// be created for.
func EligibleJobworkTypes(ledger *models.BatchLedger) []string {
	eligible := []string{}
	for _, jobworkType := range models.JobworkTypes {
		if IsEligible(ledger, jobworkType) {
			eligible = append(eligible, jobworkType)
		}
	}
	slices.Sort(eligible)
	return eligible
}

// Evaluate loads the batch ledger and returns the eligibility view used
// by the batch detail endpoint.
func (s *EligibilityService) Evaluate(batch *models.Batch) (*models.BatchLedger, []string, error) {
	ledger, err := repositories.NewLedgerRepository(s.db).Snapshot(batch)
	if err != nil {
		return nil, nil, err
	}
	return ledger, EligibleJobworkTypes(ledger), nil
}
