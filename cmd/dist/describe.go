package main

import (
	"fmt"
	"math"

	mstats "github.com/montanaflynn/stats"
	"github.com/spf13/cobra"

	"github.com/aclements/go-moredist/stats"
)

func newDescribeCmd(cfg *config) *cobra.Command {
	return &cobra.Command{
		Use:   "describe",
		Short: "Summarize newline-separated numbers read from stdin",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := readInput(cmd.InOrStdin())
			if err != nil {
				return err
			}
			f := cfg.format

			printf(cmd, "N %d  sum %s  mean %s", len(s.Xs), f(s.Sum()), f(s.Mean()))
			gmean := s.GeoMean()
			if !math.IsNaN(gmean) {
				printf(cmd, "  gmean %s", f(gmean))
			}
			printf(cmd, "  std dev %s  variance %s\n", f(s.StdDev()), f(s.Variance()))
			printf(cmd, "\n")

			// Quartiles and tails.
			data := mstats.Float64Data(s.Xs)
			for _, p := range []int{0, 1, 5, 25, 50, 75, 95, 99, 100} {
				var label string
				var v float64
				switch p {
				case 0:
					label = "min"
					v, err = mstats.Min(data)
				case 50:
					label = "median"
					v, err = mstats.Median(data)
				case 100:
					label = "max"
					v, err = mstats.Max(data)
				default:
					label = fmt.Sprintf("%d%%ile", p)
					v, err = mstats.PercentileNearestRank(data, float64(p))
				}
				if err != nil {
					return err
				}
				printf(cmd, "%8s %s\n", label, f(v))
			}
			printf(cmd, "\n")

			// Distribution-free confidence interval of the median.
			ci, err := stats.QuantileCI(len(s.Xs), 0.5, 0.95)
			if err != nil {
				return err
			}
			lo, hi := ci.FromSample(s)
			printf(cmd, "median %s%% CI [%s, %s]\n", f(ci.Confidence*100), f(lo), f(hi))
			return nil
		},
	}
}
