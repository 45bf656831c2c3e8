package main

import (
	"math"
	"sort"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/aclements/go-moredist/stats"
)

// A family describes how to build one distribution family from
// command-line parameters.
type family struct {
	params []string
	// build constructs a distribution from len(params) values.
	build func(ps []float64) (any, error)
	// fit returns the maximum likelihood fit to xs, or is nil if the
	// family has no estimator.
	fit func(xs []float64) (any, error)
}

var families = map[string]family{
	"normal": {
		[]string{"mu", "sigma"},
		func(ps []float64) (any, error) { return stats.NewNormalDist(ps[0], ps[1]) },
		func(xs []float64) (any, error) { return stats.NormalDist{}.MLE(xs) },
	},
	"lognormal": {
		[]string{"mu", "sigma"},
		func(ps []float64) (any, error) { return stats.NewLogNormalDist(ps[0], ps[1]) },
		func(xs []float64) (any, error) { return stats.LogNormalDist{}.MLE(xs) },
	},
	"uniform": {
		[]string{"a", "b"},
		func(ps []float64) (any, error) { return stats.NewUniformDist(ps[0], ps[1]) },
		func(xs []float64) (any, error) { return stats.UniformDist{}.MLE(xs) },
	},
	"exponential": {
		[]string{"rate"},
		func(ps []float64) (any, error) { return stats.NewExponentialDist(ps[0]) },
		func(xs []float64) (any, error) { return stats.ExponentialDist{}.MLE(xs) },
	},
	"chisquared": {
		[]string{"k"},
		func(ps []float64) (any, error) {
			k, err := asInt("k", ps[0])
			if err != nil {
				return nil, err
			}
			return stats.NewChiSquaredDist(k)
		},
		nil,
	},
	"f": {
		[]string{"d1", "d2"},
		func(ps []float64) (any, error) { return stats.NewFDist(ps[0], ps[1]) },
		nil,
	},
	"studentt": {
		[]string{"nu"},
		func(ps []float64) (any, error) { return stats.NewStudentTDist(ps[0]) },
		nil,
	},
	"gamma": {
		[]string{"shape", "scale"},
		func(ps []float64) (any, error) { return stats.NewGammaDist(ps[0], ps[1]) },
		func(xs []float64) (any, error) { return stats.GammaDist{}.MLE(xs) },
	},
	"cauchy": {
		[]string{"loc", "scale"},
		func(ps []float64) (any, error) { return stats.NewCauchyDist(ps[0], ps[1]) },
		nil,
	},
	"beta": {
		[]string{"alpha", "beta"},
		func(ps []float64) (any, error) { return stats.NewBetaDist(ps[0], ps[1]) },
		nil,
	},
	"logistic": {
		[]string{"mu", "scale"},
		func(ps []float64) (any, error) { return stats.NewLogisticDist(ps[0], ps[1]) },
		nil,
	},
	"poisson": {
		[]string{"lambda"},
		func(ps []float64) (any, error) { return stats.NewPoissonDist(ps[0]) },
		func(xs []float64) (any, error) {
			ks, err := asInts("observation", xs)
			if err != nil {
				return nil, err
			}
			return stats.PoissonDist{}.MLE(ks)
		},
	},
	"bernoulli": {
		[]string{"p"},
		func(ps []float64) (any, error) { return stats.NewBernoulliDist(ps[0]) },
		nil,
	},
	"binomial": {
		[]string{"n", "p"},
		func(ps []float64) (any, error) {
			n, err := asInt("n", ps[0])
			if err != nil {
				return nil, err
			}
			return stats.NewBinomialDist(n, ps[1])
		},
		nil,
	},
	"geometric": {
		[]string{"p"},
		func(ps []float64) (any, error) { return stats.NewGeometricDist(ps[0]) },
		nil,
	},
	"hypergeometric": {
		[]string{"t", "m", "k"},
		func(ps []float64) (any, error) {
			tmk, err := asInts("parameter", ps)
			if err != nil {
				return nil, err
			}
			return stats.NewHypergeometricDist(tmk[0], tmk[1], tmk[2])
		},
		nil,
	},
	"negbinomial": {
		[]string{"r", "p"},
		func(ps []float64) (any, error) { return stats.NewNegativeBinomialDist(ps[0], ps[1]) },
		nil,
	},
}

func familyNames() []string {
	names := make([]string, 0, len(families))
	for name := range families {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func lookupFamily(name string) (family, error) {
	f, ok := families[strings.ToLower(name)]
	if !ok {
		return family{}, errors.Newf("unknown family %q (known: %s)", name, strings.Join(familyNames(), ", "))
	}
	return f, nil
}

// buildDist parses the family name and parameters at the start of args
// and returns the distribution and the remaining arguments.
func buildDist(args []string) (any, []string, error) {
	if len(args) == 0 {
		return nil, nil, errors.New("missing family")
	}
	name := args[0]
	f, err := lookupFamily(name)
	if err != nil {
		return nil, nil, err
	}
	args = args[1:]
	if len(args) < len(f.params) {
		return nil, nil, errors.Newf("%s takes parameters: %s", name, strings.Join(f.params, " "))
	}
	ps, err := parseFloats(args[:len(f.params)])
	if err != nil {
		return nil, nil, err
	}
	d, err := f.build(ps)
	if err != nil {
		return nil, nil, err
	}
	return d, args[len(f.params):], nil
}

func asInt(name string, x float64) (int, error) {
	if x != math.Trunc(x) || math.IsInf(x, 0) {
		return 0, errors.Newf("%s must be an integer, got %v", name, x)
	}
	return int(x), nil
}

func asInts(name string, xs []float64) ([]int, error) {
	ks := make([]int, len(xs))
	for i, x := range xs {
		k, err := asInt(name, x)
		if err != nil {
			return nil, err
		}
		ks[i] = k
	}
	return ks, nil
}

func newFamiliesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "families",
		Short: "List the supported distribution families and their parameters",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range familyNames() {
				f := families[name]
				mle := ""
				if f.fit != nil {
					mle = "  (fit)"
				}
				printf(cmd, "%-15s %s%s\n", name, strings.Join(f.params, " "), mle)
			}
		},
	}
}
