package settlement

import "encoding/json"

// Record is a normalized full-and-final settlement. Detail carries the
// upstream breakdown blob untouched; its internal structure varies per
// deployment and is not modeled here.
type Record struct {
	ID              string          `json:"id"`
	EmployeeID      string          `json:"employee_id,omitempty"`
	Status          string          `json:"status"` // defaults to "pending"
	TotalPayable    float64         `json:"total_payable"`
	TotalDeductions float64         `json:"total_deductions"`
	NetPayable      float64         `json:"net_payable"`
	Detail          json.RawMessage `json:"detail,omitempty"`
}
