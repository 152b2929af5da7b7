package contest

import (
	"context"
	"time"
)

// Repository describes contest persistence needs from use cases.
type Repository interface {
	GetByID(ctx context.Context, contestID string) (Contest, bool, error)
	List(ctx context.Context) ([]Contest, error)
	ListByTournament(ctx context.Context, tournamentID string) ([]Contest, error)
	IncrementEntryCount(ctx context.Context, contestID string) error
	UpdateStatus(ctx context.Context, contestID string, status Status, settledAt *time.Time) error
	SavePrizes(ctx context.Context, contestID string, rows []PrizeRow) error
	ListPrizes(ctx context.Context, contestID string) ([]PrizeRow, error)
}
