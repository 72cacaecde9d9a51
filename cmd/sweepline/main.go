// Command sweepline is a small external harness around the sweep package:
// it reads a segment list, runs a scan, and prints the resulting
// intersection list. It is not part of the core library; the core has no
// CLI or I/O of its own.
package main

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/geosweep/sweepline/options"
	"github.com/geosweep/sweepline/point"
	"github.com/geosweep/sweepline/segment"
	"github.com/geosweep/sweepline/sweep"
)

func main() {
	cmd := &cli.Command{
		Name:      "sweepline",
		Usage:     "Finds all pairwise intersections among a list of line segments",
		UsageText: "sweepline --input <file>",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "input",
				Usage:    "Path to a segment list file (one 'x1,y1,x2,y2' per line); reads stdin if omitted",
				Aliases:  []string{"i"},
				OnlyOnce: true,
			},
			&cli.BoolFlag{
				Name:  "verbose",
				Usage: "Emit internal sweep diagnostics to stderr",
			},
		},
		HideVersion: true,
		Action:      run,
	}
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func run(_ context.Context, cmd *cli.Command) error {
	in := os.Stdin
	if path := cmd.String("input"); path != "" {
		f, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("sweepline: %w", err)
		}
		defer f.Close()
		in = f
	}

	segments, err := readSegments(in)
	if err != nil {
		return fmt.Errorf("sweepline: %w", err)
	}

	var opts []options.GeometryOptionsFunc
	if cmd.Bool("verbose") {
		opts = append(opts, options.WithDebugSink(func(function string, line int, format string, args ...any) {
			fmt.Fprintf(os.Stderr, "%s:%d: %s\n", function, line, fmt.Sprintf(format, args...))
		}))
	}

	driver := sweep.Create(opts...)
	defer driver.Destroy()

	if err := driver.Scan(segments); err != nil {
		return fmt.Errorf("sweepline: %w", err)
	}

	return printRecords(driver)
}

// readSegments parses "x1,y1,x2,y2" lines, skipping blanks and "#" comments.
func readSegments(f *os.File) ([]segment.Segment, error) {
	var segments []segment.Segment
	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		parts := strings.Split(line, ",")
		if len(parts) != 4 {
			return nil, fmt.Errorf("line %d: expected 4 comma-separated values, got %d", lineNo, len(parts))
		}
		coords := make([]float64, 4)
		for i, part := range parts {
			v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
			coords[i] = v
		}
		segments = append(segments, segment.New(
			point.New(coords[0], coords[1]),
			point.New(coords[2], coords[3]),
		))
	}
	return segments, scanner.Err()
}

type recordJSON struct {
	X        float64      `json:"x"`
	Y        float64      `json:"y"`
	Segments [][4]float64 `json:"segments"`
}

func printRecords(driver *sweep.Driver) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	out := make([]recordJSON, 0, driver.Size())
	rec, ok := driver.First()
	for ok {
		segs := make([][4]float64, 0, len(rec.Segments))
		for _, s := range rec.Segments {
			a, b := s.Endpoints()
			segs = append(segs, [4]float64{a.X(), a.Y(), b.X(), b.Y()})
		}
		out = append(out, recordJSON{X: rec.Point.X(), Y: rec.Point.Y(), Segments: segs})
		rec, ok = driver.Next(rec)
	}
	return enc.Encode(out)
}
