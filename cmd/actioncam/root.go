package main

import (
	"github.com/ayusman/actioncam/internal/app"
	"github.com/ayusman/actioncam/internal/display"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// Version is the application version.
const Version = "0.1.0"

// options holds the command line flags.
type options struct {
	camera          int
	device          string
	cascade         string
	maxReadFailures int
	debug           bool
}

func newRootCmd(log *logrus.Logger) *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:           "actioncam",
		Short:         "Classify webcam frames as Working or Using Phone",
		Version:       Version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.debug {
				log.SetLevel(logrus.DebugLevel)
			}
			return run(cmd, log, opts)
		},
	}

	cmd.SetVersionTemplate(`{{printf "%s\n" .Version}}`)

	flags := cmd.Flags()
	flags.IntVar(&opts.camera, "camera", 0, "OpenCV camera index")
	flags.StringVar(&opts.device, "device", "", "V4L2 device path (Linux); overrides --camera")
	flags.StringVar(&opts.cascade, "cascade", "", "frontal face cascade file (default: search the OpenCV install)")
	flags.IntVar(&opts.maxReadFailures, "max-read-failures", 0, "stop after this many consecutive failed reads (0 retries forever)")
	flags.BoolVar(&opts.debug, "debug", false, "log detector failures")

	return cmd
}

func run(cmd *cobra.Command, log *logrus.Logger, opts options) error {
	a, err := app.New(app.Config{
		CameraID:        opts.camera,
		Device:          opts.device,
		CascadePath:     opts.cascade,
		WindowTitle:     display.DefaultTitle,
		MaxReadFailures: opts.maxReadFailures,
		Logger:          log,
	})
	if err != nil {
		return err
	}
	defer a.Close()

	if err := a.Run(cmd.Context()); err != nil {
		return err
	}

	stats := a.Stats()
	log.WithFields(logrus.Fields{
		"frames":       stats.Frames,
		"failed_reads": stats.FailedReads,
	}).Debug("Session finished")
	return nil
}
