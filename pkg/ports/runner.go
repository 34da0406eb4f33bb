package ports

import (
	"context"

	"github.com/aretw0/nbserve/pkg/domain"
)

// CommandRunner executes external commands by registry name.
type CommandRunner interface {
	// Execute runs the invocation and blocks until it finishes or ctx is done.
	// A non-zero exit is reported as an error that includes the captured stderr.
	Execute(ctx context.Context, inv domain.Invocation) (domain.InvocationResult, error)
}
