package simulation

import (
	"errors"
	"strings"
	"testing"

	log "github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"

	"cubewalk/pkg/engine/cube"
	"cubewalk/pkg/game/puzzle"
	"cubewalk/pkg/game/wrap"
)

const sampleInput = `        ...#
        .#..
        #...
        ....
...#.......#
........#...
..#....#....
..........#.
        ...#....
        .....#..
        .#......
        ......#.

10R5L5R10L4R5L5
`

func mustPuzzle(t *testing.T, input string) *puzzle.Puzzle {
	t.Helper()
	p, err := puzzle.Read(strings.NewReader(input))
	require.NoError(t, err)
	return p
}

func TestRunSample(t *testing.T) {
	logger, hook := test.NewNullLogger()
	results, err := Run(mustPuzzle(t, sampleInput), Options{
		CubeSize:   4,
		Strategies: wrap.AllStrategies(),
		Logger:     log.NewEntry(logger),
	})
	require.NoError(t, err)
	require.Len(t, results, 2)
	require.Equal(t, wrap.Flat, results[0].Strategy)
	require.Equal(t, 6032, results[0].Password)
	require.Equal(t, wrap.Cube, results[1].Strategy)
	require.Equal(t, 5031, results[1].Password)
	require.Nil(t, results[0].Track)

	finished := 0
	for _, e := range hook.AllEntries() {
		if e.Message == "walk finished" {
			finished++
		}
	}
	require.Equal(t, 2, finished)
}

func TestRunIsDeterministic(t *testing.T) {
	p := mustPuzzle(t, sampleInput)
	opts := Options{CubeSize: 4, Strategies: []wrap.Strategy{wrap.Cube, wrap.Cube}}
	results, err := Run(p, opts)
	require.NoError(t, err)
	require.Equal(t, results[0].Password, results[1].Password)
}

func TestRunTrace(t *testing.T) {
	results, err := Run(mustPuzzle(t, sampleInput), Options{
		CubeSize:   4,
		Strategies: []wrap.Strategy{wrap.Cube},
		Trace:      true,
	})
	require.NoError(t, err)
	track := results[0].Track
	require.NotNil(t, track)
	require.True(t, track.Visited(results[0].Position))
	require.Equal(t, results[0].Facing, track[results[0].Position])
}

func TestRunMalformedNet(t *testing.T) {
	_, err := Run(mustPuzzle(t, "......\n\n3\n"), Options{
		CubeSize:   1,
		Strategies: []wrap.Strategy{wrap.Cube},
	})
	require.True(t, errors.Is(err, cube.ErrMalformedNet), "err = %v", err)
}
