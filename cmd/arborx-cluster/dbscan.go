package main

import (
	"fmt"
	"time"

	"github.com/kursatyurt/ArborX"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var dbscanCmd = &cobra.Command{
	Use:   "dbscan",
	Short: "Cluster the input points with DBSCAN",
	RunE:  runDBSCAN,
}

func runDBSCAN(cmd *cobra.Command, args []string) error {
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
		pterm.DefaultSection.Println("DBSCAN")
		pterm.Info.Printfln("%d points, eps=%g, core-min-size=%d, cluster-min-size=%d",
			len(points), eps, coreMinSize, clusterMinSize)
	}

	start := time.Now()
	offsets, indices, err := arborx.DBSCAN(points, eps, coreMinSize, clusterMinSize)
	if err != nil {
		logger.Errorw("dbscan failed", "error", err)
		return err
	}
	elapsed := time.Since(start)
	numClusters := len(offsets) - 1
	logger.Infow("dbscan complete", "clusters", numClusters, "clustered_points", len(indices), "elapsed", elapsed.String())

	if verify {
		ok, mismatch := arborx.VerifyClusters(points, eps, coreMinSize, clusterMinSize, offsets, indices)
		if !ok {
			logger.Errorw("verification failed", "mismatch", mismatch)
			return fmt.Errorf("verification failed: %s", mismatch)
		}
		logger.Infow("verification passed")
		if verbose {
			pterm.Success.Println("verification passed")
		}
	}

	if verbose {
		pterm.Success.Printfln("%d clusters, %d clustered points, %d noise, in %s",
			numClusters, len(indices), len(points)-len(indices), elapsed)
	}

	for k := 0; k < numClusters; k++ {
		for _, idx := range indices[offsets[k]:offsets[k+1]] {
			fmt.Printf("%d,%d\n", idx, k)
		}
	}
	return nil
}
