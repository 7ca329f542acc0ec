package settlement

import (
	"context"

	settlementDomain "github.com/hrdash/hrdash-gateway-go/internal/domain/settlement"
	"github.com/hrdash/hrdash-gateway-go/internal/normalize"
	"github.com/hrdash/hrdash-gateway-go/internal/upstream"
)

type serviceImpl struct {
	client *upstream.Client
}

func NewSettlementService(client *upstream.Client) settlementDomain.SettlementService {
	return &serviceImpl{client: client}
}

func (s *serviceImpl) Get(ctx context.Context, id string) (settlementDomain.Record, error) {
	raw, err := s.client.Settlement(ctx, id)
	if err != nil {
		return settlementDomain.Record{}, err
	}
	return normalize.SettlementRecord(raw), nil
}

func (s *serviceImpl) List(ctx context.Context, page, pageSize int) (settlementDomain.ListResponse, error) {
	raw, err := s.client.Settlements(ctx, page, pageSize)
	if err != nil {
		return settlementDomain.ListResponse{}, err
	}
	return normalize.SettlementList(raw), nil
}
