package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/centraunit/simpledi"
	"github.com/centraunit/simpledi/mock"
)

func newWireCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "wire",
		Short: "Resolve EventService and check that its EventDAO is the bound singleton",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := a.container()
			if err != nil {
				return err
			}

			svc, err := simpledi.Resolve[*mock.EventService](c)
			if err != nil {
				return fmt.Errorf("resolving event service: %w", err)
			}
			p, err := simpledi.GetProvider[mock.EventDAO](c)
			if err != nil {
				return fmt.Errorf("event dao provider: %w", err)
			}
			if p == nil {
				return errors.New("event dao is not bound")
			}
			dao, err := p.Get()
			if err != nil {
				return fmt.Errorf("resolving event dao: %w", err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "injected: %p\n", svc.DAO())
			fmt.Fprintf(out, "provider: %p\n", dao)
			if svc.DAO() != dao {
				return errors.New("event service holds a different EventDAO than the provider")
			}
			fmt.Fprintln(out, "same instance")
			return nil
		},
	}
}
