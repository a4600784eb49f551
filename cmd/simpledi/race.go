package main

import (
	"errors"
	"fmt"
	"sync"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/centraunit/simpledi"
	"github.com/centraunit/simpledi/mock"
)

func newRaceCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "race",
		Short: "Resolve the singleton EventDAO from many goroutines at once",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := a.container()
			if err != nil {
				return err
			}
			p, err := simpledi.GetProvider[mock.EventDAO](c)
			if err != nil {
				return fmt.Errorf("event dao provider: %w", err)
			}
			if p == nil {
				return errors.New("event dao is not bound")
			}

			workers := a.cfg.Workers
			instances := make([]mock.EventDAO, workers)
			errs := make([]error, workers)
			start := make(chan struct{})

			var wg sync.WaitGroup
			for i := 0; i < workers; i++ {
				wg.Add(1)
				go func(i int) {
					defer wg.Done()
					<-start
					instances[i], errs[i] = p.Get()
				}(i)
			}
			close(start)
			wg.Wait()

			if err := errors.Join(errs...); err != nil {
				return err
			}

			distinct := make(map[mock.EventDAO]struct{}, 1)
			for _, dao := range instances {
				distinct[dao] = struct{}{}
			}
			a.log.Info("race finished", zap.Int("workers", workers), zap.Int("instances", len(distinct)))

			fmt.Fprintf(cmd.OutOrStdout(), "workers: %d\ninstances: %d\n", workers, len(distinct))
			if len(distinct) != 1 {
				return fmt.Errorf("expected one EventDAO instance, got %d", len(distinct))
			}
			return nil
		},
	}

	cmd.Flags().IntP("workers", "w", defaults().Workers, "number of concurrent resolvers")
	_ = a.v.BindPFlag("workers", cmd.Flags().Lookup("workers"))
	return cmd
}
