package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"runtime/debug"
	"strings"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	pflag "github.com/spf13/pflag"

	"github.com/bft-labs/logshim/internal/cliconfig"
	"github.com/bft-labs/logshim/internal/pipe"
	"github.com/bft-labs/logshim/pkg/log"
)

const longHelp = `Print leveled, tagged log lines the way a platform log facility would,
in the fixed format used by unit tests that run without the platform:

  <LEVEL>: <tag>: <message>

Output goes to stdout; diagnostics go to stderr.`

var exampleUsage = strings.TrimSpace(`
  logshim debug MainActivity "onCreate called"
  logshim e Net timeout after 30s
  printf 'i - game started\nw Cache low\n' | logshim pipe --tag MatchGame
  logshim pipe --config ./logshim.toml --watch < records.txt
`)

func getVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" && info.Main.Version != "(devel)" {
		return info.Main.Version
	}
	return log.Version
}

// app carries resolved configuration between cobra hooks.
type app struct {
	cfg     cliconfig.Config
	cfgPath string
	diag    zerolog.Logger
	logger  log.Logger
}

// resolve applies config file, then LOGSHIM_* env, under explicitly set flags.
func (a *app) resolve(cmd *cobra.Command) error {
	cfgFile := a.cfgPath
	if cfgFile == "" {
		cfgFile = cliconfig.DefaultConfigPath()
	}

	changed := map[string]bool{}
	cmd.Flags().Visit(func(f *pflag.Flag) { changed[f.Name] = true })

	if cfgFile != "" && cliconfig.FileExists(cfgFile) {
		fc, err := cliconfig.LoadFileConfig(cfgFile)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cliconfig.ApplyFileConfig(&a.cfg, fc, changed)
		a.cfgPath = cfgFile
	}

	cliconfig.ApplyEnvConfig(&a.cfg, changed)

	if err := a.cfg.Validate(); err != nil {
		return err
	}

	if a.cfg.Backend == log.BackendPlain {
		a.logger = log.NewShimWriter(cmd.OutOrStdout())
	} else {
		logger, err := log.NewBackend(a.cfg.Backend)
		if err != nil {
			return err
		}
		a.logger = logger
	}
	a.diag.Debug().Str("backend", a.cfg.Backend).Str("tag", a.cfg.Tag).Str("config", a.cfgPath).Msg("configuration")
	return nil
}

func newLevelCommand(a *app, level log.Level) *cobra.Command {
	name := strings.ToLower(level.String())
	return &cobra.Command{
		Use:     name + " <tag> <message...>",
		Aliases: []string{name[:1]},
		Short:   fmt.Sprintf("Print a %s line", level),
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tag := args[0]
			if tag == pipe.DefaultTagMarker {
				tag = a.cfg.Tag
			}
			log.Log(a.logger, level, tag, strings.Join(args[1:], " "))
			return nil
		},
	}
}

func newPipeCommand(a *app) *cobra.Command {
	var watch bool

	cmd := &cobra.Command{
		Use:   "pipe",
		Short: "Read '<LEVEL> <tag> <message>' records from stdin and print them",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer cancel()

			p := pipe.New(a.logger, a.cfg.Tag, a.diag)

			if watch {
				if a.cfgPath == "" {
					return fmt.Errorf("--watch needs a config file")
				}
				w := pipe.NewWatcher(a.cfgPath, p, a.diag)
				go func() {
					if err := w.Run(ctx); err != nil {
						a.diag.Error().Err(err).Msg("config watcher stopped")
					}
				}()
			}

			n, err := p.Run(ctx, cmd.InOrStdin())
			a.diag.Debug().Int("records", n).Msg("pipe finished")
			if err == context.Canceled {
				return nil
			}
			return err
		},
	}
	cmd.Flags().BoolVar(&watch, "watch", false, "reload the default tag when the config file changes")
	return cmd
}

func newRootCommand(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:           "logshim",
		Short:         "Stand-in for a platform log facility that prints to stdout",
		Long:          longHelp,
		Example:       exampleUsage,
		Version:       fmt.Sprintf("%s %s/%s", getVersion(), runtime.GOOS, runtime.GOARCH),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.resolve(cmd)
		},
	}

	root.PersistentFlags().StringVar(&a.cfgPath, "config", "", "path to config file (default: $HOME/.logshim/config.toml)")
	root.PersistentFlags().StringVar(&a.cfg.Backend, "backend", a.cfg.Backend, "output backend: "+strings.Join(log.Backends(), ", "))
	root.PersistentFlags().StringVar(&a.cfg.Tag, "tag", a.cfg.Tag, "tag used for '-'")

	for _, level := range log.Levels() {
		root.AddCommand(newLevelCommand(a, level))
	}
	root.AddCommand(newPipeCommand(a))
	return root
}

func newApp() *app {
	return &app{
		cfg:  cliconfig.DefaultConfig(),
		diag: cliconfig.Logger(),
	}
}

func main() {
	a := newApp()
	if err := newRootCommand(a).Execute(); err != nil {
		a.diag.Error().Err(err).Msg("logshim")
		os.Exit(1)
	}
}
