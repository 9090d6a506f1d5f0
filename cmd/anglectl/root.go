package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/tigerbot-team/angle/pkg/angle"
	"github.com/tigerbot-team/angle/pkg/config"
)

// app carries the state shared by all subcommands of one invocation.
type app struct {
	cfgFile string
	unit    config.Unit
	verbose bool

	cfg config.Config
	log *log.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{unit: config.Degrees}

	rootCmd := &cobra.Command{
		Use:   "anglectl",
		Short: "Convert, normalize and compare angles",
		Long: `anglectl works on plain numbers in the configured unit (degrees unless
--unit or the config file says otherwise).

Examples:
  anglectl normalize -- -450       270°
  anglectl normalize --delta 270   -90°
  anglectl close 1 359 --threshold 5
  anglectl between 45 0 90
  anglectl dial 30 --start 0 --end 90 --out dial.png`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}

	rootCmd.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (default is ./"+config.DefaultPath+")")
	rootCmd.PersistentFlags().Var(&a.unit, "unit", "unit for input and output: degrees or radians")
	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(
		a.convertCmd(),
		a.normalizeCmd(),
		a.trigCmd(),
		a.absCmd(),
		a.closeCmd(),
		a.betweenCmd(),
		a.dialCmd(),
		a.configCmd(),
	)
	return rootCmd
}

// setup loads the config file and applies flag overrides on top of it.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	a.log = log.NewWithOptions(cmd.ErrOrStderr(), log.Options{Prefix: "anglectl"})
	if a.verbose {
		a.log.SetLevel(log.DebugLevel)
	}

	path := a.cfgFile
	if path == "" {
		path = config.DefaultPath
	}
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("unit") {
		cfg.Unit = a.unit
	}
	a.cfg = cfg
	a.log.Debug("config loaded", "path", path, "unit", cfg.Unit, "precision", cfg.Precision)
	return nil
}

// angles reads each argument as a number in the configured unit.
func (a *app) angles(args []string) ([]angle.Angle, error) {
	out := make([]angle.Angle, 0, len(args))
	for _, arg := range args {
		v, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid number %q: %w", arg, err)
		}
		out = append(out, a.cfg.Unit.Angle(v))
	}
	return out, nil
}

func (a *app) format(v angle.Angle) string {
	return a.formatFloat(a.cfg.Unit.Value(v)) + a.cfg.Unit.Symbol()
}

func (a *app) formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', a.cfg.Precision, 64)
}

func printField(w io.Writer, key, value string) {
	fmt.Fprintln(w, keyStyle.Render(key)+valueStyle.Render(value))
}

func printBool(w io.Writer, b bool) {
	if b {
		fmt.Fprintln(w, trueStyle.Render("true"))
	} else {
		fmt.Fprintln(w, falseStyle.Render("false"))
	}
}
