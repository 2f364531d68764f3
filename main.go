package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"go-linkedlist/config"
	"go-linkedlist/driver"
	"go-linkedlist/pkg/linkedlist"
	"go-linkedlist/services/executor"
	"go-linkedlist/util/logger"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

func main() {
	configs := config.New()

	rootCmd := &cobra.Command{
		Use:   "linkedlist [script]",
		Short: "Run a list command script, read from a file or stdin",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in := io.Reader(os.Stdin)
			if len(args) == 1 {
				f, err := os.Open(args[0])
				if err != nil {
					return err
				}
				defer f.Close()
				in = f
			}
			return run(cmd.Context(), configs.DriverConfig, in, cmd.OutOrStdout())
		},
	}
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true
	bindFlags(rootCmd.Flags(), configs.DriverConfig)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		fatal(err)
	}
}

func bindFlags(fs *pflag.FlagSet, cfg *config.DriverConfig) {
	fs.BoolVar(&cfg.Echo, "echo", cfg.Echo, "print every statement before its result")
	fs.BoolVar(&cfg.StopOnError, "stop-on-error", cfg.StopOnError, "abort on the first failed command")
	fs.BoolVar(&cfg.FailFast, "fail-fast", cfg.FailFast, "fail cursors used after a modification they did not make")
	fs.BoolVar(&cfg.Debug, "debug", cfg.Debug, "log rejected list operations")
}

func run(ctx context.Context, cfg *config.DriverConfig, in io.Reader, out io.Writer) error {
	if cfg.Debug {
		logger.L.SetLevel(logrus.DebugLevel)
	}

	es := executor.New(&linkedlist.Options{
		Logger:   logger.Prefixed("list"),
		FailFast: cfg.FailFast,
	})
	return driver.New(cfg, es, logger.Prefixed("driver")).Run(ctx, in, out)
}

func fatal(val interface{}) {
	fmt.Fprintln(os.Stderr, val)
	os.Exit(1)
}
