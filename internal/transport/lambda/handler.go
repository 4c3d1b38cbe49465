package lambdatr

import (
	"context"
	"encoding/json"

	pipelinedomain "github.com/10Narratives/streamcheck/internal/domains/pipeline"
)

// Handler is the shape every workflow step is served with. Failures are
// reported through the response; the error return is reserved for faults the
// Lambda runtime itself should see.
type Handler func(ctx context.Context, payload json.RawMessage) (*pipelinedomain.Response, error)

type Middleware func(next Handler) Handler

// Chain wraps h so that the first middleware is the outermost one.
func Chain(h Handler, mws ...Middleware) Handler {
	for i := len(mws) - 1; i >= 0; i-- {
		h = mws[i](h)
	}
	return h
}
