package driving

import (
	"context"

	"github.com/kvault-labs/kvault-cli/internal/core/domain"
)

// Querier answers questions grounded in the vault's indexed documents.
type Querier interface {
	// Ask runs the full retrieve-compose-generate-record pipeline for one
	// question. It never returns a Go error: every failure is folded into
	// the result with Success false and the cause in Error.
	Ask(ctx context.Context, question string) domain.QueryResult
}
