package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"golang.org/x/term"
)

func main() {
	log := newLogger()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd(log).ExecuteContext(ctx); err != nil {
		log.WithError(err).Error("actioncam failed")
		stop()
		os.Exit(1)
	}
}

// newLogger writes human-readable status lines to stdout.
func newLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(os.Stdout)
	log.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
		DisableColors: !term.IsTerminal(int(os.Stdout.Fd())),
	})
	return log
}
