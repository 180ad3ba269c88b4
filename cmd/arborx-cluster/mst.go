package main

import (
	"fmt"
	"time"

	"github.com/kursatyurt/ArborX"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var mstCmd = &cobra.Command{
	Use:   "mst",
	Short: "Compute the minimum spanning tree of the input points",
	RunE:  runMST,
}

func runMST(cmd *cobra.Command, args []string) error {
	logger, err := newLogger(verbose)
	if err != nil {
		return err
	}
	defer logger.Sync()

	points, err := loadPoints(inputPath)
	if err != nil {
		return err
	}
	logger.Infow("loaded points", "count", len(points), "input", inputPath)

	if verbose {
		pterm.DefaultSection.Println("Minimum Spanning Tree")
		pterm.Info.Printfln("%d points, k=%d", len(points), kNeighbors)
	}

	start := time.Now()
	edges, err := arborx.MinimumSpanningTree(points, kNeighbors)
	if err != nil {
		logger.Errorw("mst failed", "error", err)
		return err
	}
	logger.Infow("mst complete", "edges", len(edges), "elapsed", time.Since(start).String())

	if verbose {
		pterm.Success.Printfln("%d edges in %s", len(edges), time.Since(start))
	}
	for _, e := range edges {
		fmt.Printf("%d,%d,%g\n", e.Source, e.Target, e.Weight)
	}
	return nil
}
