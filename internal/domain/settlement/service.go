package settlement

import "context"

// SettlementService serves normalized full-and-final settlements.
type SettlementService interface {
	Get(ctx context.Context, id string) (Record, error)
	List(ctx context.Context, page, pageSize int) (ListResponse, error)
}
