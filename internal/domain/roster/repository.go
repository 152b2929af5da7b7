package roster

import "context"

// Repository is the persistence boundary for fantasy teams. ApplyScoreDelta
// is the aggregator's single write: it must record the event key and add the
// delta atomically, returning applied=false (and no error) when the key was
// already applied to that team.
type Repository interface {
	GetByID(ctx context.Context, teamID string) (Team, bool, error)
	GetByUserAndContest(ctx context.Context, userID, contestID string) (Team, bool, error)
	ListByContest(ctx context.Context, contestID string) ([]Team, error)
	Upsert(ctx context.Context, team Team) error
	ApplyScoreDelta(ctx context.Context, teamID, eventKey string, delta float64) (applied bool, err error)
	ReplaceTotal(ctx context.Context, teamID string, total float64) error
}
