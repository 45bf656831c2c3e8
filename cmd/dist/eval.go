package main

import (
	"strconv"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/aclements/go-moredist/stats"
)

func newEvalCmd(cfg *config) *cobra.Command {
	return &cobra.Command{
		Use:   "eval <family> <params...> <x...>",
		Short: "Print the density or mass and the CDF of a distribution at each x",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, xs, err := buildDist(args)
			if err != nil {
				return err
			}
			if len(xs) == 0 {
				return errors.New("no points to evaluate")
			}
			f := cfg.format
			printf(cmd, "%v\n", d)
			printMoments(cmd, cfg, d)
			switch d := d.(type) {
			case stats.Continuous:
				vals, err := parseFloats(xs)
				if err != nil {
					return err
				}
				printf(cmd, "%12s %12s %12s\n", "x", "PDF", "CDF")
				for _, x := range vals {
					printf(cmd, "%12s %12s %12s\n", f(x), f(d.PDF(x)), f(d.CDF(x)))
				}
			case stats.Discrete[int]:
				printf(cmd, "%12s %12s %12s\n", "k", "PMF", "CDF")
				for _, a := range xs {
					k, err := strconv.Atoi(a)
					if err != nil {
						return errors.Wrapf(err, "argument %q", a)
					}
					printf(cmd, "%12d %12s %12s\n", k, f(d.PMF(k)), f(d.CDF(k)))
				}
			default:
				return errors.Newf("%v cannot be evaluated", d)
			}
			return nil
		},
	}
}
