package main

import (
	"fmt"
	"os"

	"github.com/frizinak/inbetween-go-swipe/config"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type app struct {
	file string
	conf config.Config
	l    *zap.Logger
}

func newLogger(c config.Log) (*zap.Logger, error) {
	level := zap.NewAtomicLevel()
	if err := level.UnmarshalText([]byte(c.Level)); err != nil {
		level.SetLevel(zap.InfoLevel)
	}

	zc := zap.NewDevelopmentConfig()
	if c.Format == "json" {
		zc = zap.NewProductionConfig()
	}
	zc.Level = level
	zc.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	return zc.Build()
}

func (a *app) load(cmd *cobra.Command, args []string) error {
	if a.file == "" {
		var err error
		if a.file, err = config.DefaultConfigFile(); err != nil {
			return err
		}
	}

	conf, err := config.LoadConfig(a.file)
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	a.conf = conf

	if a.l, err = newLogger(conf.Log); err != nil {
		return fmt.Errorf("logger: %w", err)
	}
	return nil
}

func main() {
	a := &app{l: zap.NewNop()}
	root := &cobra.Command{
		Use:               "swipe",
		Short:             "Swipe gesture recognition",
		SilenceUsage:      true,
		PersistentPreRunE: a.load,
	}
	root.PersistentFlags().StringVarP(&a.file, "config", "c", "", "config file (default ~/.config/swipe/config.json)")

	root.AddCommand(
		a.viewCmd(),
		a.watchCmd(),
		a.classifyCmd(),
		a.configCmd(),
	)

	err := root.Execute()
	a.l.Sync()
	if err != nil {
		os.Exit(1)
	}
}
