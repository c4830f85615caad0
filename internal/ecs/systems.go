package ecs

import (
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/younwookim/spark/internal/domain/entity"
)

// Resolver advances one body by one tick
type Resolver interface {
	Resolve(body *entity.Body, dt float64) entity.StepReport
}

// Step resolves every body in w concurrently and returns each body's report.
// Every goroutine mutates only its own body; the level behind r is shared
// read-only. Step returns after all bodies are resolved.
func Step(w *World, r Resolver, dt float64) map[entity.EntityID]entity.StepReport {
	ids := w.IDs()
	reports := make([]entity.StepReport, len(ids))

	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, id := range ids {
		body := w.Bodies[id]
		g.Go(func() error {
			reports[i] = r.Resolve(body, dt)
			return nil
		})
	}
	_ = g.Wait() // resolvers never fail

	out := make(map[entity.EntityID]entity.StepReport, len(ids))
	for i, id := range ids {
		out[id] = reports[i]
	}
	return out
}
