package services

import (
	"encoding/json"
	"errors"
	"reflect"
	"testing"

	"garment-app/models"
)

// The gate never interprets the payload; whatever RaiseRequest packages
// must come back out identically when ApplyApproved replays it.
func TestRequestPayloadSurvivesEscalation(t *testing.T) {
	in := requestPayload{
		JobworkNo: "JW-20260829-004",
		Rows: []ReceiptRow{
			{ItemID: 7, ItemCode: "FAB-COT-01", ReturnedQuantity: 38, Wage: 650},
			{ItemID: 9, ItemCode: "FAB-SLK-02", SupplierDamage: 2},
		},
		Total:   40,
		Pending: 45,
	}

	raw, err := json.Marshal(in)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var out requestPayload
	if err := json.Unmarshal(raw, &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if !reflect.DeepEqual(in, out) {
		t.Errorf("payload changed across escalation: %+v != %+v", out, in)
	}
	if TotalEntered(out.Rows) != in.Total {
		t.Errorf("replayed rows total %d, packaged total %d", TotalEntered(out.Rows), in.Total)
	}
}

func TestRequestResolvesExactlyOnce(t *testing.T) {
	if err := ensurePending(&models.WorkflowRequest{RequestStatus: models.RequestStatusPending}); err != nil {
		t.Errorf("pending request not resolvable: %v", err)
	}

	for _, status := range []string{models.RequestStatusApproved, models.RequestStatusRejected} {
		request := &models.WorkflowRequest{RequestStatus: status}
		if err := ensurePending(request); !errors.Is(err, ErrAlreadyResolved) {
			t.Errorf("status %s: err = %v, want ErrAlreadyResolved", status, err)
		}
	}
}

func TestCorruptPayloadIsRejected(t *testing.T) {
	var payload requestPayload
	if err := json.Unmarshal([]byte("{not json"), &payload); err == nil {
		t.Fatal("corrupt payload accepted")
	}
}
