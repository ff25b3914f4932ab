package main

import (
	"fmt"
	"io"

	"github.com/earthboundkid/versioninfo/v2"
	"github.com/ironsheep/image-binarize/internal/binarize"
	"github.com/ironsheep/image-binarize/internal/config"
	"github.com/ironsheep/image-binarize/internal/sink"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

func version() string {
	if Version != "dev" {
		return Version
	}
	return versioninfo.Short()
}

func newRootCmd(cfg config.Config, log zerolog.Logger, stdout io.Writer) *cobra.Command {
	var (
		threshold int
		save      bool
	)

	rootCmd := &cobra.Command{
		Use:     "binarize <image> [--threshold <n>] [--save]",
		Short:   "Show an image next to its binary thresholds",
		Long:    `Converts an image to grayscale, blurs it, and arranges the blurred image, its binary threshold, the inverse threshold, and the masked original in a 2x2 grid. The grid is shown in a window or saved to ` + cfg.OutputPath + `.

The preview window needs OpenCV and is only available in builds made with -tags gocv. Other builds can only use --save.`,
		Args:    cobra.ExactArgs(1),
		Version: version(),
		Run: func(_ *cobra.Command, args []string) {
			opts := binarize.DefaultOptions(cfg)
			opts.Threshold = threshold
			run(args[0], opts, sink.New(save, cfg, stdout), log, stdout)
		},
	}

	rootCmd.Flags().IntVarP(&threshold, "threshold", "t", cfg.Threshold, "Binarization threshold")
	rootCmd.Flags().BoolVarP(&save, "save", "s", false, "Save the result to "+cfg.OutputPath+" instead of displaying it")
	rootCmd.SetOut(stdout)

	return rootCmd
}

// run processes one image and prints any failure to stdout.
// Failures are logged at debug level; stdout carries the report for the user.
func run(path string, opts binarize.Options, out sink.Sink, log zerolog.Logger, stdout io.Writer) {
	proc := binarize.NewProcessor(log)
	if _, err := proc.Process(path, opts, out); err != nil {
		log.Debug().Err(err).Str("path", path).Msg("processing failed")
		fmt.Fprintln(stdout, err)
	}
}
