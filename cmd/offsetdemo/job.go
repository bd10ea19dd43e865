package main

import (
	"fmt"
	"math/big"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/gogpu/offset"
	"github.com/gogpu/offset/exact"
)

// Job describes one offset computation: a polygon (optionally with holes),
// a radius, an approximation bound and the output image mapping.
// Coordinates and the radius are rational strings ("3", "-1/2", "2.5").
type Job struct {
	Polygon [][2]string   `yaml:"polygon"`
	Holes   [][][2]string `yaml:"holes,omitempty"`
	Radius  string        `yaml:"radius"`
	Eps     float64       `yaml:"eps"`
	Image   ImageConfig   `yaml:"image"`
}

// ImageConfig controls the rendered PNG.
type ImageConfig struct {
	Width  int     `yaml:"width"`
	Height int     `yaml:"height"`
	Scale  float64 `yaml:"scale"`
	// OriginX, OriginY place the world origin on the canvas, in pixels.
	OriginX float64 `yaml:"originX"`
	OriginY float64 `yaml:"originY"`
}

// LoadJob reads and validates a YAML job file.
func LoadJob(path string) (*Job, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read job file: %w", err)
	}
	var job Job
	if err := yaml.Unmarshal(data, &job); err != nil {
		return nil, fmt.Errorf("failed to parse job file: %w", err)
	}
	if len(job.Polygon) < 3 {
		return nil, fmt.Errorf("job polygon needs at least 3 vertices, got %d", len(job.Polygon))
	}
	if job.Image.Width <= 0 {
		job.Image.Width = 800
	}
	if job.Image.Height <= 0 {
		job.Image.Height = 600
	}
	if job.Image.Scale == 0 {
		job.Image.Scale = 50
	}
	if job.Image.OriginX == 0 && job.Image.OriginY == 0 {
		job.Image.OriginX = float64(job.Image.Width) / 2
		job.Image.OriginY = float64(job.Image.Height) / 2
	}
	return &job, nil
}

// ParseRadius returns the job's radius as an exact rational.
func (j *Job) ParseRadius() (*big.Rat, error) {
	r, ok := new(big.Rat).SetString(j.Radius)
	if !ok {
		return nil, fmt.Errorf("invalid radius %q", j.Radius)
	}
	return r, nil
}

// Contours returns the outer polygon followed by the holes, each as an
// exact contour.
func (j *Job) Contours() ([]offset.Polygon, error) {
	out := make([]offset.Polygon, 0, 1+len(j.Holes))
	pgn, err := parseContour(j.Polygon)
	if err != nil {
		return nil, fmt.Errorf("polygon: %w", err)
	}
	out = append(out, pgn)
	for i, h := range j.Holes {
		pgn, err := parseContour(h)
		if err != nil {
			return nil, fmt.Errorf("hole %d: %w", i, err)
		}
		out = append(out, pgn)
	}
	return out, nil
}

func parseContour(verts [][2]string) (offset.Polygon, error) {
	pgn := make(offset.Polygon, len(verts))
	for i, v := range verts {
		x, ok := new(big.Rat).SetString(v[0])
		if !ok {
			return nil, fmt.Errorf("invalid x coordinate %q at vertex %d", v[0], i)
		}
		y, ok := new(big.Rat).SetString(v[1])
		if !ok {
			return nil, fmt.Errorf("invalid y coordinate %q at vertex %d", v[1], i)
		}
		pgn[i] = exact.Pt(x, y)
	}
	return pgn, nil
}
