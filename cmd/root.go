/*
Copyright © 2025 Valentyn Solomko <valentyn.solomko@gmail.com>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/valpere/lingobuddy/internal/config"
	"github.com/valpere/lingobuddy/internal/logger"
)

var version = "0.1.0"

var (
	cfgFile string

	v      = viper.New()
	appCfg *config.Config
	log    = zerolog.Nop()
)

var rootCmd = &cobra.Command{
	Use:   "lingobuddy",
	Short: "Language learning translation buddy",
	Long: `Translate words and phrases between languages, keep a history of the
session and copy or save the results.

Supported services: gtranslate (default, no key), google, mymemory, systran

Use "lingobuddy gui" for the desktop window or "lingobuddy shell" for an
interactive session.`,
	Version:       version,
	SilenceUsage:  true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := config.Setup(v, cfgFile); err != nil {
			return err
		}

		cfg, err := config.Load(v)
		if err != nil {
			return err
		}
		appCfg = cfg

		l, err := logger.NewConsole(cfg.Log.Level)
		if err != nil {
			return err
		}
		log = l
		log.Debug().Str("provider", cfg.Provider).Str("config", v.ConfigFileUsed()).Msg("configuration loaded")
		return nil
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "Config file (default $HOME/.config/lingobuddy/config.yaml)")
	flags.String("provider", config.DefaultProvider, "Translation service: gtranslate, google, mymemory, systran")
	flags.StringP("source", "s", config.DefaultSource, "Source language code or name")
	flags.StringP("target", "t", config.DefaultTarget, "Target language code or name")
	flags.Bool("check", false, "Warn when the translation does not look like the target language")
	flags.Bool("cache", false, "Use the SQLite translation memory")
	flags.String("db", "", "Translation memory database path")
	flags.String("log-level", config.DefaultLogLevel, "Log level: debug, info, warn, error")

	mustBind("provider", "provider")
	mustBind("source", "source")
	mustBind("target", "target")
	mustBind("check", "check")
	mustBind("cache.enabled", "cache")
	mustBind("cache.db", "db")
	mustBind("log.level", "log-level")
}

func mustBind(key, flag string) {
	if err := v.BindPFlag(key, rootCmd.PersistentFlags().Lookup(flag)); err != nil {
		panic(err)
	}
}
