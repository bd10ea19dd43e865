// Command offsetdemo computes the approximate offset of a polygon described
// by a YAML job file, prints the resulting labeled curves and renders them
// to a PNG.
//
// Example job file:
//
//	polygon:
//	  - ["0", "0"]
//	  - ["4", "0"]
//	  - ["4", "3"]
//	  - ["0", "3"]
//	radius: "1"
//	eps: 0.01
//	image:
//	  width: 800
//	  height: 600
//	  scale: 80
package main

import (
	"flag"
	"fmt"
	"image/color"
	"image/png"
	"log"
	"log/slog"
	"os"
	"sort"

	"github.com/gogpu/offset"
	"github.com/gogpu/offset/render"
)

func main() {
	var (
		jobPath = flag.String("job", "job.yaml", "YAML job file")
		output  = flag.String("output", "offset.png", "output PNG file")
		quiet   = flag.Bool("quiet", false, "suppress the curve listing")
		verbose = flag.Bool("v", false, "enable debug logging to stderr")
	)
	flag.Parse()

	if *verbose {
		offset.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	job, err := LoadJob(*jobPath)
	if err != nil {
		log.Fatalf("Failed to load job: %v", err)
	}
	radius, err := job.ParseRadius()
	if err != nil {
		log.Fatalf("Invalid job: %v", err)
	}
	contours, err := job.Contours()
	if err != nil {
		log.Fatalf("Invalid job: %v", err)
	}

	off, err := offset.New(job.Eps)
	if err != nil {
		log.Fatalf("Invalid eps: %v", err)
	}

	var curves []offset.LabeledCurve
	if err := off.OffsetContours(contours, radius, 0, offset.AppendTo(&curves)); err != nil {
		log.Fatalf("Offset failed: %v", err)
	}

	cycles := groupByCycle(curves)
	if !*quiet {
		printCycles(cycles)
	}

	img := job.Image
	r := render.New(img.Width, img.Height, img.Scale, img.OriginX, img.OriginY)
	r.FillBackground(color.White)
	for _, cyc := range cycles {
		r.FillCycle(cyc, color.NRGBA{R: 0x9e, G: 0xc5, B: 0xe8, A: 0xa0})
	}
	for _, pgn := range contours {
		r.FillPolygon(pgn, color.NRGBA{R: 0x2a, G: 0x63, B: 0x9b, A: 0xff})
	}

	f, err := os.Create(*output)
	if err != nil {
		log.Fatalf("Failed to create output: %v", err)
	}
	defer f.Close()
	if err := png.Encode(f, r.Image()); err != nil {
		log.Fatalf("Failed to encode PNG: %v", err)
	}

	log.Printf("Wrote %d curves in %d cycle(s) to %s (%dx%d)",
		len(curves), len(cycles), *output, img.Width, img.Height)
}

// groupByCycle splits the flat curve stream into per-cycle slices ordered
// by curve index, sorted by cycle id.
func groupByCycle(curves []offset.LabeledCurve) [][]offset.LabeledCurve {
	byID := map[uint32][]offset.LabeledCurve{}
	for _, lc := range curves {
		byID[lc.Label.CycleID] = append(byID[lc.Label.CycleID], lc)
	}
	ids := make([]uint32, 0, len(byID))
	for id := range byID {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	out := make([][]offset.LabeledCurve, 0, len(ids))
	for _, id := range ids {
		cyc := byID[id]
		sort.Slice(cyc, func(i, j int) bool { return cyc[i].Label.Index < cyc[j].Label.Index })
		out = append(out, cyc)
	}
	return out
}

func printCycles(cycles [][]offset.LabeledCurve) {
	for _, cyc := range cycles {
		for _, lc := range cyc {
			fmt.Println(lc)
		}
	}
}
