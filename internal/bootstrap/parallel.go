package bootstrap

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/hkn/rke2up/internal/config"
)

// forEachNode runs fn once per node, one goroutine per node. Per-node
// errors are collected, not thrown: every node in a stage gets its attempt
// before the orchestrator judges the stage. Results come back over a
// channel and are reordered to declaration order, so no shared state is
// written concurrently.
func (o *Orchestrator) forEachNode(ctx context.Context, nodes []config.Node, fn func(context.Context, config.Node) error) []StageResult {
	if len(nodes) == 0 {
		return nil
	}

	resultCh := make(chan StageResult, len(nodes))

	for _, node := range nodes {
		go func() {
			start := time.Now()
			err := fn(ctx, node)
			resultCh <- StageResult{Node: node, Err: err, Duration: time.Since(start)}
		}()
	}

	byName := make(map[string]StageResult, len(nodes))
	for range nodes {
		res := <-resultCh
		if res.Err != nil {
			o.log.Warn("node stage failed",
				zap.String("node", res.Node.Name),
				zap.Duration("after", res.Duration),
				zap.Error(res.Err))
		}
		byName[res.Node.Name] = res
	}

	results := make([]StageResult, 0, len(nodes))
	for _, node := range nodes {
		results = append(results, byName[node.Name])
	}
	return results
}
