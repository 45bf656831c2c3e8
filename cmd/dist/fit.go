package main

import (
	"github.com/cockroachdb/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/aclements/go-moredist/stats"
)

func newFitCmd(cfg *config) *cobra.Command {
	return &cobra.Command{
		Use:   "fit <family>",
		Short: "Fit a distribution to numbers read from stdin by maximum likelihood",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := lookupFamily(args[0])
			if err != nil {
				return err
			}
			if f.fit == nil {
				return errors.Newf("%s has no maximum likelihood estimator", args[0])
			}
			s, err := readInput(cmd.InOrStdin())
			if err != nil {
				return err
			}
			log.WithField("n", len(s.Xs)).Debugf("fitting %s", args[0])
			d, err := f.fit(s.Xs)
			if err != nil {
				return err
			}
			printf(cmd, "%v\n", d)
			printMoments(cmd, cfg, d)
			if c, ok := d.(stats.Continuous); ok {
				printf(cmd, "\n")
				for _, p := range []float64{0.01, 0.05, 0.25, 0.5, 0.75, 0.95, 0.99} {
					q, err := c.Quantile(p)
					if err != nil {
						return err
					}
					printf(cmd, "%8s %s\n", cfg.format(p*100)+"%", cfg.format(q))
				}
			}
			return nil
		},
	}
}

// printMoments prints whichever moments d defines.
func printMoments(cmd *cobra.Command, cfg *config, d any) {
	switch m := d.(type) {
	case stats.Moments:
		printf(cmd, "mean %s  variance %s  skewness %s  kurtosis %s\n",
			cfg.format(m.Mean()), cfg.format(m.Variance()),
			cfg.format(m.Skewness()), cfg.format(m.Kurtosis()))
	case stats.OptionalMoments:
		opt := func(v float64, ok bool) string {
			if !ok {
				return "undefined"
			}
			return cfg.format(v)
		}
		printf(cmd, "mean %s  variance %s  skewness %s  kurtosis %s\n",
			opt(m.Mean()), opt(m.Variance()), opt(m.Skewness()), opt(m.Kurtosis()))
	}
}
