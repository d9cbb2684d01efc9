package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"coordedit/coord"
)

func newLogger(verbose bool) (*zap.Logger, error) {
	level := zapcore.InfoLevel
	if verbose {
		level = zapcore.DebugLevel
	}
	config := zap.Config{
		Level:            zap.NewAtomicLevelAt(level),
		Encoding:         "json",
		EncoderConfig:    zap.NewProductionEncoderConfig(),
		OutputPaths:      []string{"stderr"},
		ErrorOutputPaths: []string{"stderr"},
		DisableCaller:    true,
	}
	return config.Build()
}

func newRootCmd() *cobra.Command {
	var raw rawFlags
	cmd := &cobra.Command{
		Use:   "coordedit",
		Short: "Edit selected components of 3D vectors",
		Example: `  coordedit --vec "1,2,3" --op add --axis xy --value 2
  coordedit --script edits.yaml --verbose`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			raw.valueSet = cmd.Flags().Changed("value")
			flags, err := newFlags(raw)
			if err != nil {
				_ = cmd.Usage()
				return err
			}
			logger, err := newLogger(flags.Verbose())
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			return run(cmd.OutOrStdout(), logger, flags)
		},
	}
	raw.register(cmd.Flags())
	return cmd
}

func run(out io.Writer, logger *zap.Logger, flags *flags) error {
	if flags.Script() == "" {
		result, err := flags.Edit().Apply(flags.Vec())
		if err != nil {
			return err
		}
		logger.Debug("applied edit",
			zap.Stringer("edit", flags.Edit()),
			zap.Stringer("from", flags.Vec()),
			zap.Stringer("to", result))
		_, err = fmt.Fprintln(out, result)
		return err
	}

	s, err := loadScript(flags.Script())
	if err != nil {
		return err
	}
	logger.Debug("loaded edit script",
		zap.String("path", flags.Script()),
		zap.Int("points", len(s.Points)),
		zap.Int("edits", len(s.Edits)))

	for _, p := range s.Points {
		v, err := coord.ApplyAll(p.Value, s.Edits...)
		if err != nil {
			return fmt.Errorf("point %q: %w", p.Key, err)
		}
		logger.Debug("edited point",
			zap.String("point", p.Key),
			zap.Stringer("from", p.Value),
			zap.Stringer("to", v))
		if _, err := fmt.Fprintf(out, "%s: %s\n", p.Key, v); err != nil {
			return err
		}
	}
	return nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", err.Error())
		os.Exit(1)
	}
}
