package main

import (
	"errors"
	"fmt"
	"image"

	"github.com/spf13/cobra"

	"github.com/tigerbot-team/angle/pkg/config"
	"github.com/tigerbot-team/angle/pkg/dial"
)

var errNegativeThreshold = errors.New("threshold must not be negative")

func (a *app) convertCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "convert VALUE",
		Short: "Show a value in both degrees and radians",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := a.angles(args)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			printField(w, "degrees", a.formatFloat(v[0].InDegrees()))
			printField(w, "radians", a.formatFloat(v[0].InRadians()))
			return nil
		},
	}
}

func (a *app) normalizeCmd() *cobra.Command {
	var delta bool
	cmd := &cobra.Command{
		Use:   "normalize VALUE",
		Short: "Fold a value into [0, 360) or, with --delta, around zero",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := a.angles(args)
			if err != nil {
				return err
			}
			n := v[0].Normalized()
			if delta {
				n = v[0].NormalizedDelta()
			}
			a.log.Debug("normalized", "in", v[0], "out", n, "delta", delta)
			fmt.Fprintln(cmd.OutOrStdout(), valueStyle.Render(a.format(n)))
			return nil
		},
	}
	cmd.Flags().BoolVar(&delta, "delta", false, "fold into the signed range (-180, 180] instead")
	return cmd
}

func (a *app) trigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "trig VALUE",
		Short: "Show sin, cos and tan",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := a.angles(args)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			printField(w, "sin", a.formatFloat(v[0].Sin()))
			printField(w, "cos", a.formatFloat(v[0].Cos()))
			printField(w, "tan", a.formatFloat(v[0].Tan()))
			return nil
		},
	}
}

func (a *app) absCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "abs VALUE",
		Short: "Show the absolute value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := a.angles(args)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), valueStyle.Render(a.format(v[0].Absolute())))
			return nil
		},
	}
}

func (a *app) closeCmd() *cobra.Command {
	var threshold float64
	cmd := &cobra.Command{
		Use:   "close A B",
		Short: "Report whether A and B are within a threshold, allowing for wraparound",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := a.angles(args)
			if err != nil {
				return err
			}
			t := a.cfg.Threshold()
			if cmd.Flags().Changed("threshold") {
				if threshold < 0 {
					return fmt.Errorf("%w: %v", errNegativeThreshold, threshold)
				}
				t = a.cfg.Unit.Angle(threshold)
			}
			delta := v[0].Sub(v[1]).NormalizedDelta()
			a.log.Debug("comparing", "a", v[0], "b", v[1], "delta", delta, "threshold", t)
			printBool(cmd.OutOrStdout(), v[0].CloseTo(v[1], t))
			return nil
		},
	}
	cmd.Flags().Float64Var(&threshold, "threshold", 0, "largest allowed difference (default from config)")
	return cmd
}

func (a *app) betweenCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "between A START END",
		Short: "Report whether A lies on the arc from START anti-clockwise to END",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := a.angles(args)
			if err != nil {
				return err
			}
			printBool(cmd.OutOrStdout(), v[0].Between(v[1], v[2]))
			return nil
		},
	}
}

func (a *app) dialCmd() *cobra.Command {
	var (
		start, end float64
		out        string
		size       int
	)
	cmd := &cobra.Command{
		Use:   "dial VALUE",
		Short: "Draw a dial as a PNG, optionally shading the sweep from --start to --end",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sweep := cmd.Flags().Changed("start")
			if sweep != cmd.Flags().Changed("end") {
				return errors.New("--start and --end must be given together")
			}
			v, err := a.angles(args)
			if err != nil {
				return err
			}
			opts := dial.Options{Size: a.cfg.Dial.Size, Label: a.format(v[0])}
			if cmd.Flags().Changed("size") {
				if err := config.ValidateDialSize(size); err != nil {
					return err
				}
				opts.Size = size
			}

			var img image.Image
			if sweep {
				img = dial.RenderSweep(v[0], a.cfg.Unit.Angle(start), a.cfg.Unit.Angle(end), opts)
			} else {
				img = dial.Render(v[0], opts)
			}

			if out == "" {
				out = a.cfg.Dial.Output
			}
			if out == "-" {
				return dial.WritePNG(cmd.OutOrStdout(), img)
			}
			if err := dial.SavePNG(out, img); err != nil {
				return err
			}
			a.log.Info("dial written", "path", out, "size", opts.Size)
			return nil
		},
	}
	cmd.Flags().Float64Var(&start, "start", 0, "start of the sweep to shade")
	cmd.Flags().Float64Var(&end, "end", 0, "end of the sweep to shade")
	cmd.Flags().StringVarP(&out, "out", "o", "", "output file, - for stdout (default from config)")
	cmd.Flags().IntVar(&size, "size", dial.DefaultSize, "image size in pixels")
	return cmd
}

func (a *app) configCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect the configuration",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Print the configuration in use as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			data, err := a.cfg.Marshal()
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "write PATH",
		Short: "Write the configuration in use to PATH",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.cfg.Save(args[0]); err != nil {
				return err
			}
			a.log.Info("config written", "path", args[0])
			return nil
		},
	})
	return cmd
}
