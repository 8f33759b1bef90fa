package main

import (
	"bufio"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/snowzach/rotatefilehook"

	"github.com/avolpe/nonogram-server/internal/nonogram"
)

var log = logrus.New()

type puzzleFile struct {
	Name  string `json:"name"`
	Clues struct {
		Row [][]int `json:"row"`
		Col [][]int `json:"col"`
	} `json:"clues"`
}

// readClues collects one clue per line, run lengths separated by spaces,
// until a blank line. A lone "0" stands for an empty line.
func readClues(in *bufio.Scanner, out io.Writer) ([][]int, error) {
	fmt.Fprintln(out, "For each clue, input the run lengths separated by spaces.")
	fmt.Fprintln(out, "Conclude clue entry by entering a new line.")
	fmt.Fprintln(out, "(Enter \"0\" for a line without any runs.)")

	var clues [][]int
	for {
		fmt.Fprint(out, "> ")
		if !in.Scan() {
			return clues, in.Err()
		}
		line := strings.TrimSpace(in.Text())
		if line == "" {
			return clues, nil
		}
		var runs []int
		for _, token := range strings.Fields(line) {
			run, err := strconv.Atoi(token)
			if err != nil {
				return nil, fmt.Errorf("bad run length %q: %w", token, err)
			}
			runs = append(runs, run)
		}
		clues = append(clues, runs)
	}
}

func promptPuzzle(in io.Reader, out io.Writer) (*puzzleFile, error) {
	scanner := bufio.NewScanner(in)

	title := "Nonogram Input"
	fmt.Fprintln(out, title)
	fmt.Fprintln(out, strings.Repeat("-", len(title)))

	fmt.Fprint(out, "Nonogram name: ")
	if !scanner.Scan() {
		return nil, fmt.Errorf("unable to read name: %w", scanner.Err())
	}

	var (
		p   puzzleFile
		err error
	)
	p.Name = strings.TrimSpace(scanner.Text())

	fmt.Fprintln(out, "Input row clues.")
	if p.Clues.Row, err = readClues(scanner, out); err != nil {
		return nil, err
	}
	fmt.Fprintln(out, "Input column clues.")
	if p.Clues.Col, err = readClues(scanner, out); err != nil {
		return nil, err
	}
	return &p, nil
}

func loadPuzzle(path string) (*puzzleFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("unable to read puzzle file: %w", err)
	}
	var p puzzleFile
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("unable to parse puzzle file: %w", err)
	}
	return &p, nil
}

func savePuzzle(path string, p *puzzleFile) error {
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(data, '\n'), 0o644)
}

func newSolver(name string, p *nonogram.Puzzle) (nonogram.Solver, error) {
	switch name {
	case "clue":
		return nonogram.NewClueSolver(p), nil
	case "exhaustive":
		return nonogram.NewExhaustiveSolver(p), nil
	default:
		return nil, fmt.Errorf("unknown solver %q (want clue or exhaustive)", name)
	}
}

func run() error {
	var (
		file       = flag.String("file", "", "read the puzzle from a JSON file instead of stdin")
		save       = flag.String("save", "", "write the puzzle to a JSON file after input")
		solverName = flag.String("solver", "clue", "solver to run (clue or exhaustive)")
		all        = flag.Bool("all", false, "find every solution, not just the first")
		debug      = flag.Bool("debug", false, "enable debug logging")
		logFile    = flag.String("log-file", "", "also log to a rotated file")
	)
	flag.Parse()

	if *debug {
		log.SetLevel(logrus.DebugLevel)
	}
	if *logFile != "" {
		hook, err := rotatefilehook.NewRotateFileHook(rotatefilehook.RotateFileConfig{
			Filename:   *logFile,
			MaxSize:    10,
			MaxBackups: 3,
			MaxAge:     28,
			Level:      log.GetLevel(),
			Formatter:  &logrus.JSONFormatter{},
		})
		if err != nil {
			return fmt.Errorf("unable to open log file: %w", err)
		}
		log.AddHook(hook)
	}

	var (
		p   *puzzleFile
		err error
	)
	if *file != "" {
		p, err = loadPuzzle(*file)
	} else {
		p, err = promptPuzzle(os.Stdin, os.Stdout)
	}
	if err != nil {
		return err
	}

	puzzle, err := nonogram.NewPuzzle(p.Clues.Row, p.Clues.Col)
	if err != nil {
		return err
	}
	log.WithFields(logrus.Fields{
		"name":   p.Name,
		"width":  puzzle.Width(),
		"height": puzzle.Height(),
	}).Debug("parsed puzzle")

	if *save != "" {
		if err := savePuzzle(*save, p); err != nil {
			return fmt.Errorf("unable to save puzzle: %w", err)
		}
		log.WithField("path", *save).Info("puzzle saved")
	}

	solver, err := newSolver(*solverName, puzzle)
	if err != nil {
		return err
	}

	start := time.Now()
	var (
		grids   []*nonogram.Grid
		failure nonogram.SolveFailure
	)
	if *all {
		grids, failure = solver.SolveAll()
	} else {
		var grid *nonogram.Grid
		grid, failure = solver.Solve()
		if grid != nil {
			grids = []*nonogram.Grid{grid}
		}
	}
	elapsed := time.Since(start)

	log.WithFields(logrus.Fields{
		"solver":    *solverName,
		"outcome":   failure.String(),
		"solutions": len(grids),
		"elapsed":   elapsed,
	}).Debug("solve finished")

	if failure != nonogram.Solved {
		fmt.Println(failure.String())
		return nil
	}

	for i, grid := range grids {
		if *all {
			fmt.Printf("solution %d of %d:\n", i+1, len(grids))
		}
		fmt.Print(grid.String())
	}
	return nil
}

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}
