// Command arborx-cluster runs the MST and DBSCAN engines over a CSV point
// set from the command line.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	inputPath      string
	verbose        bool
	kNeighbors     int
	eps            float64
	coreMinSize    int
	clusterMinSize int
	verify         bool
)

var rootCmd = &cobra.Command{
	Use:   "arborx-cluster",
	Short: "Parallel EMST and DBSCAN clustering over a point set",
	Long: `arborx-cluster computes a Euclidean minimum spanning tree or a DBSCAN
clustering over a CSV point set, using a BVH-accelerated parallel Borůvka
engine and a concurrent union-find respectively.`,
}

func main() {
	rootCmd.PersistentFlags().StringVar(&inputPath, "input", "", "path to a CSV file of x,y,z rows")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "structured progress logging")
	_ = rootCmd.MarkPersistentFlagRequired("input")

	rootCmd.AddCommand(mstCmd)
	rootCmd.AddCommand(dbscanCmd)

	mstCmd.Flags().IntVar(&kNeighbors, "k", 1, "core-distance neighborhood size (k=1 is plain Euclidean MST)")

	dbscanCmd.Flags().Float64Var(&eps, "eps", 0, "neighborhood radius")
	dbscanCmd.Flags().IntVar(&coreMinSize, "core-min-size", 1, "minimum neighborhood size for a core point")
	dbscanCmd.Flags().IntVar(&clusterMinSize, "cluster-min-size", 2, "minimum cluster size; smaller clusters become noise")
	dbscanCmd.Flags().BoolVar(&verify, "verify", false, "cross-check the result with an independent brute-force recomputation")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitCodeFor(err))
	}
}

func newLogger(verbose bool) (*zap.SugaredLogger, error) {
	cfg := zap.NewProductionConfig()
	if verbose {
		cfg = zap.NewDevelopmentConfig()
	}
	cfg.DisableStacktrace = true
	logger, err := cfg.Build()
	if err != nil {
		return nil, err
	}
	return logger.Sugar(), nil
}
