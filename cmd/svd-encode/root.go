package main

import (
	"context"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"omibyte.io/svdenc/config"
	"omibyte.io/svdenc/encoder"
	"omibyte.io/svdenc/svd"
)

type options struct {
	config  string
	output  string
	indent  string
	verbose bool
}

func newRootCmd() *cobra.Command {
	opts := options{}

	cmd := &cobra.Command{
		Use:          "svd-encode [flags] model.yaml",
		Short:        "Encode a peripheral model as CMSIS-SVD",
		Long:         "Read peripherals from a YAML model and write them as CMSIS-SVD markup, formatted according to a YAML configuration.",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), cmd.OutOrStdout(), cmd.ErrOrStderr(), &opts, args[0])
		},
	}

	cmd.Flags().StringVarP(&opts.config, "config", "c", "", "formatting configuration. Default: built-in")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "-", "output file")
	cmd.Flags().StringVar(&opts.indent, "indent", "  ", "indentation for nested elements")
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging")
	return cmd
}

// openOutput creates the file the document is written to.
var openOutput = func(path string) (io.WriteCloser, error) {
	return os.Create(path)
}

// run returns errors to cobra, which prints them; only progress is logged.
func run(ctx context.Context, stdout, stderr io.Writer, opts *options, model string) (err error) {
	level := slog.LevelInfo
	if opts.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	cfg := config.Default()
	if opts.config != "" {
		if cfg, err = config.Load(opts.config); err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		logger.Debug("loaded config", "path", opts.config)
	}

	data, err := os.ReadFile(model)
	if err != nil {
		return fmt.Errorf("reading model: %w", err)
	}
	peripherals, err := svd.LoadPeripherals(data)
	if err != nil {
		return fmt.Errorf("loading model %s: %w", model, err)
	}
	logger.Debug("loaded model", "path", model, "peripherals", len(peripherals))

	elems, err := encoder.EncodePeripherals(ctx, peripherals, cfg)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", model, err)
	}

	w := stdout
	if opts.output != "-" {
		var out io.WriteCloser
		if out, err = openOutput(opts.output); err != nil {
			return fmt.Errorf("creating output: %w", err)
		}
		defer func() {
			err = errors.Join(err, out.Close())
		}()
		w = out
	}

	if err = writeDocument(w, encoder.NewPeripherals(elems), opts.indent); err != nil {
		return fmt.Errorf("writing %s: %w", opts.output, err)
	}
	logger.Info("encoded", "peripherals", len(elems), "output", opts.output)
	return nil
}

func writeDocument(w io.Writer, root *encoder.Element, indent string) error {
	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}
	if err := root.WriteXML(w, indent); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\n")
	return err
}
