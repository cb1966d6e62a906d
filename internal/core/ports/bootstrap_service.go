package ports

import "context"

type BootstrapService interface {
	ApplyIndexes(ctx context.Context) error
	// PopulateRegions imports region reference data from the external source
	// unless the local store already holds records (or force is set). It
	// returns the number of regions imported by this call.
	PopulateRegions(ctx context.Context, force bool) (int, error)
}
