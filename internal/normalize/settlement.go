package normalize

import (
	"encoding/json"

	"github.com/hrdash/hrdash-gateway-go/internal/domain/settlement"
	"github.com/hrdash/hrdash-gateway-go/internal/pagination"
)

// SettlementRecord normalizes one full-and-final settlement.
//
//	status        <- status, settlement_status (default "pending")
//	total_payable <- total_payable, total_earnings
//
// The detail breakdown is opaque: whatever object the backend sent is carried
// through unmodified.
func SettlementRecord(raw map[string]any) settlement.Record {
	if raw == nil {
		return settlement.Record{Status: "pending"}
	}
	rec := settlement.Record{
		ID:              pickString(raw, "id", "settlement_id"),
		EmployeeID:      pickString(raw, "employee_id"),
		Status:          pickStringDefault(raw, "pending", "status", "settlement_status"),
		TotalPayable:    pickNumber(raw, "total_payable", "total_earnings"),
		TotalDeductions: pickNumber(raw, "total_deductions", "deductions"),
	}
	rec.NetPayable = pickNumber(raw, "net_payable")
	if rec.NetPayable == 0 {
		rec.NetPayable = rec.TotalPayable - rec.TotalDeductions
	}
	if detail, ok := raw["detail"]; ok {
		if b, err := json.Marshal(detail); err == nil {
			rec.Detail = b
		}
	}
	return rec
}

// SettlementList normalizes a settlement list payload, synthesizing
// pagination meta when the backend returned only flat counters.
func SettlementList(raw map[string]any) settlement.ListResponse {
	resp := settlement.ListResponse{
		Items: []settlement.Record{},
		Meta:  pagination.Reconcile(raw),
	}
	for _, item := range pickObjects(raw, "items", "data", "settlements") {
		resp.Items = append(resp.Items, SettlementRecord(item))
	}
	return resp
}
