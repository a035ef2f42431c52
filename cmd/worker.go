package cmd

import (
	"lever/core"
	"lever/pkg/sysversion"
	"lever/worker"
	"lever/worker/accrual"

	"github.com/drone/signal"
	"github.com/fox-one/pkg/logger"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

var workerCmd = &cobra.Command{
	Use:   "worker",
	Short: "lever job worker",
	Run: func(cmd *cobra.Command, args []string) {
		ctx := cmd.Context()
		log := logger.FromContext(ctx)
		ctx = logger.WithContext(ctx, log)

		database := provideDatabase()
		defer database.Close()

		if err := sysversion.Ensure(ctx, providePropertyStore(database), core.SysVersion); err != nil {
			logrus.WithError(err).Fatal("sysversion check failed")
		}

		marketService := provideMarketService(database)

		workers := []worker.IJob{
			accrual.New(provideConfig(), marketService),
		}

		ctx = signal.WithContext(ctx)

		g, ctx := errgroup.WithContext(ctx)
		for _, w := range workers {
			w := w
			g.Go(func() error {
				if err := w.Start(); err != nil {
					return err
				}

				<-ctx.Done()
				return w.Stop()
			})
		}

		if err := g.Wait(); err != nil {
			logrus.WithError(err).Fatal("worker aborted")
		}
	},
}

func init() {
	rootCmd.AddCommand(workerCmd)
}
