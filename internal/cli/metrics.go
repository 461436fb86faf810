package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pantryops/pantryd/internal/metrics"
	"github.com/pantryops/pantryd/internal/repository"
)

var metricsCmd = &cobra.Command{
	Use:   "metrics",
	Short: "Inspect and maintain interaction metrics",
}

var metricsShowCmd = &cobra.Command{
	Use:   "show [key]",
	Short: "Show a metrics snapshot (global by default, or a UTC date)",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runMetricsShow,
}

var metricsRecomputeCmd = &cobra.Command{
	Use:   "recompute",
	Short: "Rebuild all snapshots from the interaction event log",
	Long: `Replay the append-only interaction event log into fresh snapshots.
Safe to run at any time; use it after a suspected missed fold or a manual
event-log correction.`,
	RunE: runMetricsRecompute,
}

func init() {
	metricsCmd.AddCommand(metricsShowCmd)
	metricsCmd.AddCommand(metricsRecomputeCmd)
}

func getAggregator(ctx context.Context) (*metrics.Aggregator, error) {
	client, err := getClient(ctx)
	if err != nil {
		return nil, err
	}
	metricsRepo := repository.NewMetricsRepository(client, logger)
	return metrics.NewAggregator(metricsRepo, metricsRepo, logger), nil
}

func runMetricsShow(cmd *cobra.Command, args []string) error {
	key := metrics.GlobalKey
	if len(args) == 1 {
		key = args[0]
	}
	ctx := context.Background()
	agg, err := getAggregator(ctx)
	if err != nil {
		return err
	}
	d, err := agg.Snapshot(ctx, key)
	if err != nil {
		return fmt.Errorf("load snapshot: %w", err)
	}

	fmt.Printf("snapshot %s\n", key)
	fmt.Printf("  total          %d\n", d.Total)
	if d.Total == 0 {
		return nil
	}
	fmt.Printf("  success        %d (%.1f%%)\n", d.SuccessCount, 100*float64(d.SuccessCount)/float64(d.Total))
	fmt.Printf("  fallback       %d (%.1f%%)\n", d.FallbackCount, 100*float64(d.FallbackCount)/float64(d.Total))
	fmt.Printf("  avg latency    %.0f ms\n", float64(d.LatencySumMS)/float64(d.Total))
	fmt.Printf("  latency        <2s: %d  2-5s: %d  >5s: %d\n", d.LatencyLt2s, d.Latency2s5s, d.LatencyGt5s)
	if scored := d.ConfidenceLow + d.ConfidenceMedium + d.ConfidenceHigh; scored > 0 {
		fmt.Printf("  avg confidence %.2f\n", d.ConfidenceSum/float64(scored))
		fmt.Printf("  confidence     low: %d  medium: %d  high: %d\n", d.ConfidenceLow, d.ConfidenceMedium, d.ConfidenceHigh)
	}
	return nil
}

func runMetricsRecompute(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	agg, err := getAggregator(ctx)
	if err != nil {
		return err
	}
	n, err := agg.Recompute(ctx)
	if err != nil {
		return fmt.Errorf("recompute: %w", err)
	}
	fmt.Printf("recomputed snapshots from %d events\n", n)
	return nil
}
