package ticket

import "github.com/hrdash/hrdash-gateway-go/internal/pagination"

// Ticket is a helpdesk ticket list item as normalized from upstream.
type Ticket struct {
	ID        string `json:"id"`
	Subject   string `json:"subject"`
	Status    string `json:"status"`   // defaults to "open"
	Priority  string `json:"priority"` // defaults to "normal"
	CreatedAt string `json:"created_at,omitempty"`
}

// ListResponse is a page of tickets with reconciled pagination meta.
type ListResponse struct {
	Items []Ticket        `json:"items"`
	Meta  pagination.Meta `json:"meta"`
}
