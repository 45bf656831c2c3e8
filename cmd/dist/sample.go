package main

import (
	"strconv"

	"github.com/cockroachdb/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/aclements/go-moredist/stats"
)

func newSampleCmd(cfg *config) *cobra.Command {
	var n int
	cmd := &cobra.Command{
		Use:   "sample <family> <params...>",
		Short: "Print random draws from a distribution",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, rest, err := buildDist(args)
			if err != nil {
				return err
			}
			if len(rest) > 0 {
				return errors.Newf("unexpected arguments %q", rest)
			}
			if n < 1 {
				return errors.Newf("--count must be at least 1, got %d", n)
			}
			log.WithField("n", n).Debugf("sampling %v", d)
			rng := cfg.rng()
			switch d := d.(type) {
			case stats.Sampler[float64]:
				for _, x := range d.Sample(rng, n) {
					printf(cmd, "%s\n", cfg.format(x))
				}
			case stats.Sampler[int]:
				for _, k := range d.Sample(rng, n) {
					printf(cmd, "%s\n", strconv.Itoa(k))
				}
			default:
				return errors.Newf("%v cannot be sampled", d)
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&n, "count", "n", 10, "number of draws")
	return cmd
}
