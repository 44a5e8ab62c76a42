// Command hexgrid rasterizes a polygon onto a hexagonal grid, or locates the
// cell under a point, and prints the result as JSON.
//
// Grid parameters come from HEXGRID_* environment variables and flags:
//
//	hexgrid -orientation pointy -size-x 20 -size-y 10 -polygon ring.json
//	hexgrid -at 13,666 -layers 1
package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/talgya/hexgrid/internal/config"
	"github.com/talgya/hexgrid/internal/hexgrid"
	"github.com/talgya/hexgrid/internal/shapes"
)

func main() {
	cfg, err := config.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	level := slog.LevelInfo
	if cfg.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	if err := run(cfg, os.Stdin, os.Stdout); err != nil {
		slog.Error("hexgrid failed", "error", err)
		os.Exit(1)
	}
}

// cellJSON is one cell of the output.
type cellJSON struct {
	Q    int   `json:"q"`
	R    int   `json:"r"`
	Code int64 `json:"code"`
}

type regionJSON struct {
	Strategy string     `json:"strategy"`
	Cells    []cellJSON `json:"cells"`
}

type locateJSON struct {
	Cell      cellJSON         `json:"cell"`
	Center    hexgrid.Point    `json:"center"`
	Corners   [6]hexgrid.Point `json:"corners"`
	Neighbors []cellJSON       `json:"neighbors,omitempty"`
}

func run(cfg config.Config, stdin io.Reader, stdout io.Writer) error {
	grid, err := cfg.Grid()
	if err != nil {
		return fmt.Errorf("build grid: %w", err)
	}
	slog.Debug("grid ready",
		"orientation", grid.Orientation().Name(),
		"origin", grid.Origin(),
		"size", grid.Size(),
		"strategy", grid.Rasterizer().Name(),
	)

	enc := json.NewEncoder(stdout)
	enc.SetIndent("", "  ")

	if cfg.At != "" {
		point, err := parsePoint(cfg.At)
		if err != nil {
			return err
		}
		return enc.Encode(locate(grid, point, cfg.Layers))
	}

	ring, err := loadRing(cfg, stdin)
	if err != nil {
		return err
	}

	start := time.Now()
	region := grid.MakeRegion(ring)
	slog.Info("region rasterized",
		"vertices", len(ring),
		"cells", region.Len(),
		"strategy", grid.Rasterizer().Name(),
		"elapsed", time.Since(start),
	)

	out := regionJSON{Strategy: grid.Rasterizer().Name(), Cells: cells(grid, region.Hexes())}
	return enc.Encode(out)
}

func locate(grid *hexgrid.Grid, point hexgrid.Point, layers int) locateJSON {
	h := grid.HexAt(point)
	out := locateJSON{
		Cell:    cellJSON{Q: h.Q, R: h.R, Code: grid.HexToCode(h)},
		Center:  grid.HexCenter(h),
		Corners: grid.HexCorners(h),
	}
	if layers > 0 {
		out.Neighbors = cells(grid, grid.HexNeighbors(h, layers))
	}
	return out
}

func cells(grid *hexgrid.Grid, hexes []hexgrid.Hex) []cellJSON {
	out := make([]cellJSON, len(hexes))
	for i, h := range hexes {
		out[i] = cellJSON{Q: h.Q, R: h.R, Code: grid.HexToCode(h)}
	}
	return out
}

// loadRing reads the polygon named by cfg.Polygon or builds the configured
// shape around the grid origin.
func loadRing(cfg config.Config, stdin io.Reader) ([]hexgrid.Point, error) {
	if cfg.Polygon == "" {
		center := hexgrid.Pt(cfg.OriginX, cfg.OriginY)
		switch strings.ToLower(cfg.Shape) {
		case "hexagon":
			return shapes.Regular(center, cfg.Radius, 6), nil
		case "blob":
			blob := shapes.DefaultBlobConfig()
			blob.Center = center
			blob.Radius = cfg.Radius
			blob.Seed = cfg.Seed
			return shapes.Blob(blob), nil
		default:
			return nil, fmt.Errorf("unknown shape %q", cfg.Shape)
		}
	}

	r := stdin
	if cfg.Polygon != "-" {
		f, err := os.Open(cfg.Polygon)
		if err != nil {
			return nil, fmt.Errorf("open polygon: %w", err)
		}
		defer f.Close()
		r = f
	}
	return decodeRing(r)
}

var errEmptyRing = errors.New("polygon has no vertices")

// decodeRing reads a JSON array of [x, y] pairs.
func decodeRing(r io.Reader) ([]hexgrid.Point, error) {
	var raw [][2]float64
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("decode polygon: %w", err)
	}
	if len(raw) == 0 {
		return nil, errEmptyRing
	}
	ring := make([]hexgrid.Point, len(raw))
	for i, p := range raw {
		ring[i] = hexgrid.Pt(p[0], p[1])
	}
	return ring, nil
}

func parsePoint(s string) (hexgrid.Point, error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return hexgrid.Point{}, fmt.Errorf("point %q: want x,y", s)
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(xs), 64)
	if err != nil {
		return hexgrid.Point{}, fmt.Errorf("point %q: %w", s, err)
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(ys), 64)
	if err != nil {
		return hexgrid.Point{}, fmt.Errorf("point %q: %w", s, err)
	}
	return hexgrid.Pt(x, y), nil
}
