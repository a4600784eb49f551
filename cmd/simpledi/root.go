package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/centraunit/simpledi"
	"github.com/centraunit/simpledi/internal/logger"
	"github.com/centraunit/simpledi/mock"
)

type config struct {
	Log      logger.Config `mapstructure:"log"`
	Workers  int           `mapstructure:"workers"`
	SlowInit bool          `mapstructure:"slow_init"`
}

func defaults() config {
	return config{
		Log:      logger.Config{Level: "info", Format: "console"},
		Workers:  8,
		SlowInit: true,
	}
}

// app carries state shared by the subcommands once PersistentPreRunE ran.
type app struct {
	v       *viper.Viper
	cfgFile string
	cfg     config
	log     *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{v: viper.New()}

	root := &cobra.Command{
		Use:               "simpledi",
		Short:             "Wire the sample event graph with the simpledi container",
		Version:           version,
		SilenceUsage:      true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error { return a.init() },
		PersistentPostRun: func(cmd *cobra.Command, _ []string) {
			if a.log != nil {
				_ = a.log.Sync()
			}
		},
	}

	d := defaults()
	flags := root.PersistentFlags()
	flags.StringVarP(&a.cfgFile, "config", "c", "", "config file (yaml)")
	flags.String("log-level", d.Log.Level, "log level: debug, info, warn, error")
	flags.String("log-format", d.Log.Format, "log format: console or json")
	flags.Bool("slow-init", d.SlowInit, "use the slow zero-argument EventDAO constructor")

	// Bind flags to viper
	_ = a.v.BindPFlag("log.level", flags.Lookup("log-level"))
	_ = a.v.BindPFlag("log.format", flags.Lookup("log-format"))
	_ = a.v.BindPFlag("slow_init", flags.Lookup("slow-init"))

	root.AddCommand(newWireCmd(a), newRaceCmd(a))
	return root
}

func (a *app) init() error {
	d := defaults()
	a.v.SetDefault("log.level", d.Log.Level)
	a.v.SetDefault("log.format", d.Log.Format)
	a.v.SetDefault("workers", d.Workers)
	a.v.SetDefault("slow_init", d.SlowInit)

	a.v.SetEnvPrefix("SIMPLEDI")
	a.v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	a.v.AutomaticEnv()

	if a.cfgFile != "" {
		a.v.SetConfigFile(a.cfgFile)
		if err := a.v.ReadInConfig(); err != nil {
			return fmt.Errorf("reading config %s: %w", a.cfgFile, err)
		}
	}

	if err := a.v.Unmarshal(&a.cfg); err != nil {
		return fmt.Errorf("decoding config: %w", err)
	}
	if a.cfg.Workers < 1 {
		return errors.New("workers must be at least 1")
	}

	log, err := logger.New(a.cfg.Log)
	if err != nil {
		return fmt.Errorf("building logger: %w", err)
	}
	a.log = log
	return nil
}

// container builds a container holding the singleton event graph.
func (a *app) container() (*simpledi.Container, error) {
	c := simpledi.New(simpledi.WithLogger(a.log))

	if err := mock.DeclareAll(c); err != nil {
		return nil, err
	}
	if !a.cfg.SlowInit {
		err := simpledi.Declare[*mock.InMemoryEventDAO](c, simpledi.Constructor(func() *mock.InMemoryEventDAO {
			return mock.NewInMemoryEventDAOWithTests(nil)
		}))
		if err != nil {
			return nil, err
		}
	}
	if err := mock.BindEventGraph(c); err != nil {
		return nil, err
	}

	a.log.Debug("container ready", zap.String("container", c.ID()), zap.Bool("slow_init", a.cfg.SlowInit))
	return c, nil
}
