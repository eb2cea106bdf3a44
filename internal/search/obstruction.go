package search

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/zyedidia/generic/mapset"
	"golang.org/x/sync/errgroup"

	"guard_patrol/internal/patrol"
)

// Candidate is one cell to block, paired with the baseline state the trial
// resumes from. Anchor always precedes the guard's first arrival at Cell, so
// the baseline path up to Anchor cannot have been affected by the block.
type Candidate struct {
	Cell   patrol.Position
	Anchor patrol.Guard
}

// Candidates lists every distinct cell of a recorded baseline run except the
// start cell, in first-visit order. Later visits to a cell under another
// heading do not add candidates or move the anchor.
func Candidates(baseline patrol.Result) []Candidate {
	if len(baseline.States) == 0 {
		return nil
	}
	start := baseline.States[0].Pos
	seen := mapset.New[patrol.Position]()
	seen.Put(start)

	out := make([]Candidate, 0, len(baseline.Cells))
	for i := 1; i < len(baseline.States); i++ {
		p := baseline.States[i].Pos
		if seen.Has(p) {
			continue
		}
		seen.Put(p)
		out = append(out, Candidate{Cell: p, Anchor: baseline.States[i-1]})
	}
	return out
}

type Options struct {
	// Workers bounds concurrent trials. Values <= 1 run every trial in the
	// calling goroutine.
	Workers int
	Log     logrus.FieldLogger
}

func (o Options) logger() logrus.FieldLogger {
	if o.Log == nil {
		l := logrus.New()
		l.SetLevel(logrus.WarnLevel)
		return l
	}
	return o.Log
}

// Trial blocks c.Cell on m and reports whether the guard, resumed from
// c.Anchor, is trapped.
func Trial(m patrol.GridMap, c Candidate) (bool, error) {
	blocked, err := m.WithObstacle(c.Cell)
	if err != nil {
		return false, fmt.Errorf("candidate %v: %w", c.Cell, err)
	}
	start := time.Now()
	res := patrol.Simulate(blocked, c.Anchor)
	observeTrial(res, time.Since(start))
	return res.Outcome == patrol.Looped, nil
}

// CountLoops counts the candidates of baseline whose obstacle traps the
// guard. baseline must be a recorded run (patrol.WithPath) over m.
func CountLoops(ctx context.Context, m patrol.GridMap, baseline patrol.Result, opts Options) (int, error) {
	var n atomic.Int64
	err := run(ctx, m, Candidates(baseline), opts, func(_ int, _ Candidate) { n.Add(1) })
	if err != nil {
		return 0, err
	}
	return int(n.Load()), nil
}

// LoopCells returns the trapping cells in candidate order.
func LoopCells(ctx context.Context, m patrol.GridMap, baseline patrol.Result, opts Options) ([]patrol.Position, error) {
	cands := Candidates(baseline)
	hits := make([]bool, len(cands))
	if err := run(ctx, m, cands, opts, func(i int, _ Candidate) { hits[i] = true }); err != nil {
		return nil, err
	}
	var out []patrol.Position
	for i, hit := range hits {
		if hit {
			out = append(out, cands[i].Cell)
		}
	}
	return out, nil
}

// run executes one trial per candidate and calls onLoop for each trapping
// one. onLoop may be called concurrently with distinct indexes.
func run(ctx context.Context, m patrol.GridMap, cands []Candidate, opts Options, onLoop func(int, Candidate)) error {
	log := opts.logger().WithFields(logrus.Fields{
		"candidates": len(cands),
		"workers":    opts.Workers,
	})
	begin := time.Now()

	if opts.Workers <= 1 {
		for i, c := range cands {
			if err := ctx.Err(); err != nil {
				return err
			}
			loops, err := Trial(m, c)
			if err != nil {
				return err
			}
			if loops {
				onLoop(i, c)
			}
		}
		log.WithField("elapsed", time.Since(begin)).Debug("obstruction search finished")
		return nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.Workers)
	for i, c := range cands {
		if gctx.Err() != nil {
			break
		}
		i, c := i, c // per-iteration copies for pre-Go 1.22 loop semantics
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			loops, err := Trial(m, c)
			if err != nil {
				return err
			}
			if loops {
				onLoop(i, c)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	log.WithField("elapsed", time.Since(begin)).Debug("obstruction search finished")
	return nil
}
