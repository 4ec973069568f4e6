package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/arloliu/apportion"
	"github.com/arloliu/apportion/numeric"
)

// distributeFlags holds the flags of the distribute command.
type distributeFlags struct {
	value      string
	kind       string
	mode       string
	weights    []float64
	count      int
	configPath string
	seed       uint64
}

// result is the YAML document printed by the distribute command.
type result struct {
	Kind    string         `yaml:"kind"`
	Mode    apportion.Mode `yaml:"mode"`
	Value   string         `yaml:"value"`
	Weights []float64      `yaml:"weights,omitempty"`
	Shares  []string       `yaml:"shares"`
}

var errNoWeights = errors.New("either --weights or --count is required")

func newDistributeCmd(a *app) *cobra.Command {
	f := &distributeFlags{}

	cmd := &cobra.Command{
		Use:   "distribute",
		Short: "Distribute a value across weighted slots",
		Long: `Distributes --value across slots and prints the shares.

Weights come from --weights, or are drawn for --count slots from the source
configured in --config (or APPORTION_SOURCE_* variables).

Kinds: int32, int64, int, float32, float64, bigfloat, decimal.

Example:
  apportion distribute --value 10 --kind int32 --weights 3,1
  apportion distribute --value 100.00 --kind decimal --weights 1,1,1`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runDistribute(cmd, a, f)
		},
	}

	cmd.Flags().StringVar(&f.value, "value", "", "value to distribute (required)")
	cmd.Flags().StringVar(&f.kind, "kind", numeric.KindInt64.String(), "numeric kind of value and shares")
	cmd.Flags().StringVar(&f.mode, "mode", "", "allocation mode: exact or approximate (default from config)")
	cmd.Flags().Float64SliceVar(&f.weights, "weights", nil, "comma-separated weights")
	cmd.Flags().IntVar(&f.count, "count", 0, "number of slots to sample weights for when --weights is omitted")
	cmd.Flags().StringVar(&f.configPath, "config", "", "YAML configuration file")
	cmd.Flags().Uint64Var(&f.seed, "seed", 0, "random seed (overrides config; 0 keeps the configured seed)")
	_ = cmd.MarkFlagRequired("value")

	return cmd
}

func runDistribute(cmd *cobra.Command, a *app, f *distributeFlags) error {
	kind, err := numeric.ParseKind(f.kind)
	if err != nil {
		return err
	}

	if len(f.weights) == 0 && f.count < 1 {
		return errNoWeights
	}

	cfg, err := apportion.LoadConfig(f.configPath)
	if err != nil {
		return err
	}
	if f.mode != "" {
		cfg.Mode = apportion.Mode(f.mode)
	}
	if f.seed != 0 {
		cfg.Seed = f.seed
	}

	d, err := apportion.New(cfg, apportion.WithLogger(a.logger))
	if err != nil {
		return err
	}

	var shares []string
	if len(f.weights) > 0 {
		// weights are normalized in place; keep the flag values for output
		shares, err = d.DistributeKind(kind, f.value, append([]float64(nil), f.weights...))
	} else {
		shares, err = d.DistributeSampledKind(kind, f.value, f.count)
	}
	if err != nil {
		return fmt.Errorf("distribute %s %s: %w", kind, f.value, err)
	}

	a.logger.Debug("distributed", "kind", kind.String(), "slots", len(shares), "mode", d.Mode())

	out, err := yaml.Marshal(result{
		Kind:    kind.String(),
		Mode:    d.Mode(),
		Value:   f.value,
		Weights: f.weights,
		Shares:  shares,
	})
	if err != nil {
		return fmt.Errorf("encode result: %w", err)
	}

	_, err = cmd.OutOrStdout().Write(out)

	return err
}
