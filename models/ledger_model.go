package models

// LedgerTotals is the per-jobwork-type fold of everything committed
// against a batch: handed-out quantity plus every receipt outcome.
type LedgerTotals struct {
	Assigned           int `json:"assigned"`
	Returned           int `json:"returned"`
	Purchased          int `json:"purchased"`
	SupplierDamage     int `json:"supplier_damage"`
	RepairableDamage   int `json:"repairable_damage"`
	UnrepairableDamage int `json:"unrepairable_damage"`
}

// BatchLedger is a point-in-time read model of a batch's quantity
// movements. It is assembled by the ledger repository and consumed by the
// eligibility rules; it never mutates anything.
type BatchLedger struct {
	SerialCode      string                  `json:"serial_code"`
	BatchStatus     string                  `json:"batch_status"`
	InitialQuantity int                     `json:"initial_quantity"`
	Totals          map[string]LedgerTotals `json:"totals"`
}

func (l *BatchLedger) TotalsFor(jobworkType string) LedgerTotals {
	if l.Totals == nil {
		return LedgerTotals{}
	}
	return l.Totals[jobworkType]
}

// RepairableCredit is the rework credit: every repairable damage recorded
// anywhere in the batch's history flows back into cutting eligibility.
func (l *BatchLedger) RepairableCredit() int {
	credit := 0
	for _, totals := range l.Totals {
		credit += totals.RepairableDamage
	}
	return credit
}
