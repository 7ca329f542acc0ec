package ticket

import (
	"context"

	ticketDomain "github.com/hrdash/hrdash-gateway-go/internal/domain/ticket"
	"github.com/hrdash/hrdash-gateway-go/internal/normalize"
	"github.com/hrdash/hrdash-gateway-go/internal/upstream"
)

type serviceImpl struct {
	client *upstream.Client
}

func NewTicketService(client *upstream.Client) ticketDomain.TicketService {
	return &serviceImpl{client: client}
}

func (s *serviceImpl) List(ctx context.Context, page, pageSize int) (ticketDomain.ListResponse, error) {
	raw, err := s.client.Tickets(ctx, page, pageSize)
	if err != nil {
		return ticketDomain.ListResponse{}, err
	}
	return normalize.TicketList(raw), nil
}
