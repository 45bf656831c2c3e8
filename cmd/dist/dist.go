// Command dist evaluates, samples, and fits parametric probability
// distributions.
//
// Commands that take observations read newline-separated numbers from
// stdin. Flags may also be set with DIST_-prefixed environment
// variables or in a config file named by --config.
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/exp/rand"

	"github.com/aclements/go-moredist/stats"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}

// config holds the settings shared by all subcommands.
type config struct {
	v *viper.Viper
}

func (c *config) precision() int {
	return c.v.GetInt("precision")
}

// rng returns a generator seeded from --seed, or nil to use the
// package default if no seed was given.
func (c *config) rng() *rand.Rand {
	if !c.v.IsSet("seed") {
		return nil
	}
	seed := c.v.GetUint64("seed")
	log.WithField("seed", seed).Debug("seeding generator")
	return rand.New(rand.NewSource(seed))
}

func (c *config) format(x float64) string {
	return strconv.FormatFloat(x, 'g', c.precision(), 64)
}

func newRootCmd() *cobra.Command {
	cfg := &config{v: viper.New()}
	var cfgFile string

	root := &cobra.Command{
		Use:           "dist",
		Short:         "Evaluate, sample, and fit probability distributions",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cfgFile != "" {
				cfg.v.SetConfigFile(cfgFile)
				if err := cfg.v.ReadInConfig(); err != nil {
					return errors.Wrapf(err, "reading config %s", cfgFile)
				}
			}
			log.SetOutput(cmd.ErrOrStderr())
			log.SetFormatter(&log.TextFormatter{DisableTimestamp: true})
			if cfg.v.GetBool("verbose") {
				log.SetLevel(log.DebugLevel)
			} else {
				log.SetLevel(log.InfoLevel)
			}
			log.WithField("config", cfg.v.ConfigFileUsed()).Debug("configured")
			return nil
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "read settings from `file`")
	flags.Bool("verbose", false, "log debugging information to stderr")
	flags.Int("precision", 6, "significant `digits` to print")
	flags.Uint64("seed", 0, "seed the random generator (default: seeded from the clock)")
	cfg.v.SetEnvPrefix("DIST")
	cfg.v.AutomaticEnv()
	if err := cfg.v.BindPFlags(flags); err != nil {
		panic(err)
	}

	root.AddCommand(
		newDescribeCmd(cfg),
		newFitCmd(cfg),
		newSampleCmd(cfg),
		newEvalCmd(cfg),
		newFamiliesCmd(),
	)
	return root
}

// readInput reads newline-separated numbers from r. Blank lines are
// ignored.
func readInput(r io.Reader) (sample stats.Sample, err error) {
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		l := strings.TrimSpace(scanner.Text())
		if l == "" {
			continue
		}
		value, err := strconv.ParseFloat(l, 64)
		if err != nil {
			return stats.Sample{}, errors.Wrapf(err, "line %d", line)
		}

		sample.Xs = append(sample.Xs, value)
	}
	if err := scanner.Err(); err != nil {
		return stats.Sample{}, errors.Wrap(err, "reading input")
	}
	if len(sample.Xs) == 0 {
		return stats.Sample{}, errors.New("no input values")
	}
	return sample, nil
}

func parseFloats(args []string) ([]float64, error) {
	xs := make([]float64, len(args))
	for i, a := range args {
		x, err := strconv.ParseFloat(a, 64)
		if err != nil {
			return nil, errors.Wrapf(err, "argument %q", a)
		}
		xs[i] = x
	}
	return xs, nil
}

func printf(cmd *cobra.Command, format string, args ...interface{}) {
	fmt.Fprintf(cmd.OutOrStdout(), format, args...)
}
