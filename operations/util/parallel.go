// Package util provides helpers which compose Tabula operations, such as
// running independent pipelines concurrently over one shared source Table.
package util

import (
	"context"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/go-tabula/tabula"
	"github.com/go-tabula/tabula/logging"
)

// RunPipelines applies each named pipeline to the same source Table
// concurrently, returning one result Table per pipeline name. Because
// Tables are immutable snapshots and operations are pure, the pipelines
// share the source without synchronization. The first pipeline failure
// cancels the context handed to the remaining ones, which stop between
// stages. A nil logger is replaced with a no-op logger.
func RunPipelines(ctx context.Context, source tabula.Table, pipelines map[string][]tabula.Operation, logger *zap.Logger) (map[string]tabula.Table, error) {
	if logger == nil {
		logger = logging.Nop()
	}
	results := make(map[string]tabula.Table, len(pipelines))
	var mu sync.Mutex
	g, ctx := errgroup.WithContext(ctx)
	for name, ops := range pipelines {
		name, ops := name, ops
		g.Go(func() error {
			t := source
			for i, op := range ops {
				if err := ctx.Err(); err != nil {
					return err
				}
				next, err := op(t)
				if err != nil {
					logger.Error("pipeline stage failed",
						zap.String("pipeline", name),
						zap.Int("stage", i),
						zap.Error(err))
					return err
				}
				t = next
			}
			logger.Debug("pipeline completed",
				zap.String("pipeline", name),
				zap.String("table", t.ID()),
				zap.Int("rows", t.NumRows()))
			mu.Lock()
			results[name] = t
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
