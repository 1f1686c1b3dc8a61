package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"math/rand/v2"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/quandragoon/parallelCollisionDetection/engine"
	"github.com/quandragoon/parallelCollisionDetection/options"
	"github.com/quandragoon/parallelCollisionDetection/vec2"
)

func main() {
	cmd := &cli.Command{
		Name:      "collisionsim",
		Usage:     "Simulates 2D swept-segment collisions and reports per-step counters as JSON",
		UsageText: "collisionsim --segments <value> --steps <value> --timestep <value>",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:     "segments",
				Usage:    "Number of segments to simulate",
				Value:    64,
				Aliases:  []string{"n"},
				OnlyOnce: true,
				Validator: func(v int64) error {
					if v <= 0 {
						return fmt.Errorf("segments must be greater than zero")
					}
					return nil
				},
			},
			&cli.IntFlag{
				Name:     "steps",
				Usage:    "Number of simulation steps to run",
				Value:    10,
				OnlyOnce: true,
				Validator: func(v int64) error {
					if v <= 0 {
						return fmt.Errorf("steps must be greater than zero")
					}
					return nil
				},
			},
			&cli.FloatFlag{
				Name:     "timestep",
				Usage:    "Δt simulated by each step",
				Value:    0.5,
				OnlyOnce: true,
			},
			&cli.FloatFlag{
				Name:     "box",
				Usage:    "Side length of the square world box, starting at the origin",
				Value:    1.0,
				OnlyOnce: true,
			},
			&cli.IntFlag{
				Name:     "leaf-size",
				Usage:    "N_LEAF: segment-count threshold at or below which a cell stops subdividing",
				Value:    48,
				OnlyOnce: true,
			},
			&cli.IntFlag{
				Name:     "par-min",
				Usage:    "PAR_MIN: subtree size below which recursion runs sequentially",
				Value:    960,
				OnlyOnce: true,
			},
		},
		HideVersion: true,
		Action:      run,
	}
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

// stepResult is one entry of the JSON array printed to stdout: the new
// (per-step) collision counts, not the running totals.
type stepResult struct {
	Step               int `json:"step"`
	WallCollisions     int `json:"wall_collisions"`
	LineLineCollisions int `json:"line_line_collisions"`
}

func run(_ context.Context, cmd *cli.Command) error {
	numSegments := int(cmd.Int("segments"))
	steps := int(cmd.Int("steps"))
	dt := cmd.Float("timestep")
	box := cmd.Float("box")
	leafSize := int(cmd.Int("leaf-size"))
	parMin := int(cmd.Int("par-min"))

	e, err := engine.New(numSegments,
		options.WithWorldBox(0, box, 0, box),
		options.WithTimeStep(dt),
		options.WithLeafSize(leafSize),
		options.WithParallelThreshold(parMin),
	)
	if err != nil {
		return err
	}

	margin := box * 0.01
	for i := 0; i < numSegments; i++ {
		p1 := randomPoint(margin, box-margin)
		p2 := randomPoint(margin, box-margin)
		for p1.Equal(p2) {
			p2 = randomPoint(margin, box-margin)
		}
		v := vec2.New(rand.Float64()*2-1, rand.Float64()*2-1)
		if _, err := e.AddSegment(p1, p2, v); err != nil {
			return err
		}
	}

	results := make([]stepResult, steps)
	for i := 0; i < steps; i++ {
		wall, lineLine := e.Step()
		results[i] = stepResult{Step: i, WallCollisions: wall, LineLineCollisions: lineLine}
	}

	b, err := json.Marshal(results)
	if err != nil {
		return err
	}
	fmt.Print(string(b))
	return nil
}

func randomPoint(min, max float64) vec2.Vec2 {
	return vec2.New(min+rand.Float64()*(max-min), min+rand.Float64()*(max-min))
}
