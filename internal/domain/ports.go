package domain

import "context"

// Query is a single oracle consultation. The prompt is split into a
// system instruction and user content the way the generative API expects;
// images, when present, are sent inline ahead of the user text.
type Query struct {
	System string
	User   string
	Images []Image

	// ThinkingBudget caps the model's internal reasoning tokens.
	// Zero leaves the model default in place.
	ThinkingBudget int32
}

// Oracle is the external generative text/vision service. Implementations
// perform at most one network call per invocation and never retry
// internally; any transport, auth, or quota failure is reported as (a
// wrap of) ErrOracleUnavailable. Either the complete reply text is
// returned or an error — there is no partial result.
type Oracle interface {
	Generate(ctx context.Context, q Query) (string, error)
}
