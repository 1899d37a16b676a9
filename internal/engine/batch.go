package engine

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/quantarc/ta-engine/internal/types"
)

// SymbolRequest is one symbol's multi-timeframe input for a batch run.
type SymbolRequest struct {
	Symbol string
	Series map[types.Timeframe]types.PriceSeries
}

// SymbolResult is one symbol's outcome. Err is set when the whole symbol
// failed; partial per-timeframe failures live inside Result.Failures.
type SymbolResult struct {
	Symbol string
	Result *types.MultiTimeframeResult
	Err    error
}

// AnalyzeBatch fans MultiTimeframe out over several symbols with at most
// concurrency analyses in flight. Results arrive in request order and each
// symbol's failure is isolated to its own slot. Cancelling the context marks
// the not-yet-started symbols with ctx.Err().
func (e *Engine) AnalyzeBatch(ctx context.Context, requests []SymbolRequest, concurrency int) []SymbolResult {
	if concurrency < 1 {
		concurrency = 1
	}

	results := make([]SymbolResult, len(requests))
	sem := make(chan struct{}, concurrency)

	var wg sync.WaitGroup

	for i, request := range requests {
		wg.Add(1)

		go func(i int, request SymbolRequest) {
			defer wg.Done()

			if err := ctx.Err(); err != nil {
				results[i] = SymbolResult{Symbol: request.Symbol, Err: err}

				return
			}

			select {
			case sem <- struct{}{}:
				defer func() { <-sem }()
			case <-ctx.Done():
				results[i] = SymbolResult{Symbol: request.Symbol, Err: ctx.Err()}

				return
			}

			result, err := e.MultiTimeframe(request.Symbol, request.Series)
			if err != nil {
				e.logger.Warn("batch symbol failed",
					zap.String("symbol", request.Symbol),
					zap.Error(err),
				)
			}

			results[i] = SymbolResult{Symbol: request.Symbol, Result: result, Err: err}
		}(i, request)
	}

	wg.Wait()

	return results
}
