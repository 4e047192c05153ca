package fixture

import "context"

// Provider fetches fixtures inside a date window from the sports data API.
type Provider interface {
	ListByWindow(ctx context.Context, query Query) (Batch, error)
}
