package ticket

import "context"

// TicketService serves the normalized helpdesk ticket list.
type TicketService interface {
	List(ctx context.Context, page, pageSize int) (ListResponse, error)
}
