package normalize

import (
	"github.com/hrdash/hrdash-gateway-go/internal/domain/ticket"
	"github.com/hrdash/hrdash-gateway-go/internal/pagination"
)

// TicketList normalizes a helpdesk ticket list payload.
//
//	subject  <- subject, title
//	status   <- status (default "open")
//	priority <- priority (default "normal")
func TicketList(raw map[string]any) ticket.ListResponse {
	resp := ticket.ListResponse{
		Items: []ticket.Ticket{},
		Meta:  pagination.Reconcile(raw),
	}
	for _, item := range pickObjects(raw, "items", "data", "tickets") {
		resp.Items = append(resp.Items, ticket.Ticket{
			ID:        pickString(item, "id", "ticket_id"),
			Subject:   pickString(item, "subject", "title"),
			Status:    pickStringDefault(item, "open", "status"),
			Priority:  pickStringDefault(item, "normal", "priority"),
			CreatedAt: pickString(item, "created_at"),
		})
	}
	return resp
}
