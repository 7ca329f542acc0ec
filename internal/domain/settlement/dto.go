package settlement

import "github.com/hrdash/hrdash-gateway-go/internal/pagination"

// ListResponse is a page of settlements with reconciled pagination meta.
type ListResponse struct {
	Items []Record        `json:"items"`
	Meta  pagination.Meta `json:"meta"`
}
