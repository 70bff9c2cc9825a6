// Package simulation runs a puzzle once per wrap strategy.
package simulation

import (
	"fmt"

	log "github.com/sirupsen/logrus"

	"cubewalk/pkg/engine/world"
	"cubewalk/pkg/game/puzzle"
	"cubewalk/pkg/game/walker"
	"cubewalk/pkg/game/wrap"
)

// Result is the final state of one run.
type Result struct {
	Strategy wrap.Strategy
	Position world.Point
	Facing   world.Direction
	Password int

	// Track is only filled when tracing was requested.
	Track walker.Track
}

// Options controls a simulation
type Options struct {
	CubeSize   int
	Strategies []wrap.Strategy
	Trace      bool
	Logger     *log.Entry
}

// Run walks the puzzle once for every strategy, each from a fresh start.
func Run(p *puzzle.Puzzle, opts Options) ([]Result, error) {
	logger := opts.Logger
	if logger == nil {
		logger = log.NewEntry(log.StandardLogger())
	}
	if err := p.Grid.Validate(); err != nil {
		return nil, err
	}

	results := make([]Result, 0, len(opts.Strategies))
	for _, s := range opts.Strategies {
		entry := logger.WithField("strategy", s.String())
		res, err := runOne(p, s, opts, entry)
		if err != nil {
			return nil, fmt.Errorf("%s wrap: %w", s, err)
		}
		entry.WithFields(log.Fields{
			"position": res.Position.String(),
			"facing":   res.Facing.String(),
			"password": res.Password,
		}).Info("walk finished")
		results = append(results, res)
	}
	return results, nil
}

func runOne(p *puzzle.Puzzle, s wrap.Strategy, opts Options, entry *log.Entry) (Result, error) {
	resolver, err := wrap.New(s, p.Grid, opts.CubeSize)
	if err != nil {
		return Result{}, err
	}
	if c, ok := resolver.(*wrap.CubeResolver); ok {
		for _, f := range c.Net().Faces() {
			entry.WithFields(log.Fields{
				"cell":   f.Cell.String(),
				"normal": f.Normal().String(),
			}).Debug("folded face")
		}
	}

	walkerOpts := []walker.Option{walker.WithLogger(entry)}
	var track walker.Track
	if opts.Trace {
		track = walker.NewTrack()
		walkerOpts = append(walkerOpts, walker.WithObserver(track.Observer()))
	}

	w, err := walker.New(p.Grid, resolver, walkerOpts...)
	if err != nil {
		return Result{}, err
	}
	entry.WithField("instructions", len(p.Instructions)).Debug("walk started")
	if err := w.Run(p.Instructions); err != nil {
		return Result{}, err
	}
	return Result{
		Strategy: s,
		Position: w.Position(),
		Facing:   w.Facing(),
		Password: w.Password(),
		Track:    track,
	}, nil
}
