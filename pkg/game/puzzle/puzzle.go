// Package puzzle loads a board and its instruction line from text.
//
// The input has two sections separated by a blank line: board rows made of
// ' ', '.' and '#', then a single line of step counts and L/R turns.
package puzzle

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"

	"cubewalk/pkg/engine/input"
	"cubewalk/pkg/engine/world"
	"cubewalk/pkg/game/walker"
)

// Errors returned while reading a puzzle
var (
	ErrMissingSection = errors.New("missing input section")
	ErrBadInstruction = errors.New("bad instruction")
)

// Puzzle is a parsed input file.
type Puzzle struct {
	Grid         *world.Grid
	Instructions []walker.Instruction
}

// Load reads a puzzle from a file, or from stdin when path is "-"
func Load(path string) (*Puzzle, error) {
	file, err := input.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return Read(file)
}

// Read parses a puzzle from r.
func Read(r io.Reader) (*Puzzle, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var rows []string
	var path string
	inBoard := true
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if inBoard {
			if strings.TrimSpace(line) == "" {
				if len(rows) > 0 {
					inBoard = false
				}
				continue
			}
			rows = append(rows, line)
			continue
		}
		if strings.TrimSpace(line) != "" {
			path = line
			break
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	if len(rows) == 0 {
		return nil, fmt.Errorf("board: %w", ErrMissingSection)
	}
	if path == "" {
		return nil, fmt.Errorf("instructions: %w", ErrMissingSection)
	}

	grid, err := world.ParseGrid(rows)
	if err != nil {
		return nil, fmt.Errorf("board: %w", err)
	}
	instructions, err := ParseInstructions(path)
	if err != nil {
		return nil, err
	}
	return &Puzzle{Grid: grid, Instructions: instructions}, nil
}

// ParseInstructions splits a path such as "10R5L5" into alternating
// forward and turn instructions.
func ParseInstructions(s string) ([]walker.Instruction, error) {
	s = strings.TrimSpace(s)
	var out []walker.Instruction
	for i := 0; i < len(s); {
		c := rune(s[i])
		switch {
		case unicode.IsDigit(c):
			j := i
			for j < len(s) && unicode.IsDigit(rune(s[j])) {
				j++
			}
			n, err := strconv.Atoi(s[i:j])
			if err != nil {
				return nil, fmt.Errorf("%q at %d: %w", s[i:j], i, ErrBadInstruction)
			}
			out = append(out, walker.Forward(n))
			i = j
		case c == 'L':
			out = append(out, walker.Rotate(walker.TurnLeft))
			i++
		case c == 'R':
			out = append(out, walker.Rotate(walker.TurnRight))
			i++
		default:
			return nil, fmt.Errorf("%q at %d: %w", c, i, ErrBadInstruction)
		}
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("empty path: %w", ErrBadInstruction)
	}
	return out, nil
}
