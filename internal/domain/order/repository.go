package order

import "context"

type Repository interface {
	Insert(ctx context.Context, receipt *Receipt) error
	Get(ctx context.Context, id string) (*Receipt, error)
	List(ctx context.Context) ([]*Receipt, error)
}
