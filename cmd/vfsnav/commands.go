package main

import (
	"fmt"
	"io"
	"strings"

	apppkg "github.com/kk-code-lab/vfsnav/internal/app"
	"github.com/kk-code-lab/vfsnav/internal/config"
	fsutil "github.com/kk-code-lab/vfsnav/internal/fs"
	"github.com/kk-code-lab/vfsnav/internal/logging"
	statepkg "github.com/kk-code-lab/vfsnav/internal/state"
	"github.com/kk-code-lab/vfsnav/internal/textutil"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const version = "0.1.0"

func newRootCommand() *cobra.Command {
	var configFile string

	root := &cobra.Command{
		Use:   "vfsnav",
		Short: "Browse a virtual directory tree in the terminal",
		Long: `vfsnav is a terminal file browser over a declared, in-memory directory tree.

Files can be opened, created and deleted; changes only live for the session.
Without a subcommand it starts the interactive browser.

Configuration is read from --config, then VFSNAV_* environment variables,
then flags.`,
		Version:       version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, configFile)
			if err != nil {
				return err
			}
			return runBrowser(cfg)
		},
	}

	root.PersistentFlags().StringVarP(&configFile, "config", "c", "", "config file (yaml, toml or json)")
	config.RegisterFlags(root.PersistentFlags())

	root.AddCommand(newListCommand(&configFile), newTreeCommand(&configFile))
	return root
}

// loadConfig reads configuration and installs the global logger.
func loadConfig(cmd *cobra.Command, configFile string) (*config.Config, error) {
	cfg, err := config.Load(configFile, cmd.Flags())
	if err != nil {
		return nil, err
	}
	if err := logging.Init(cfg.Log); err != nil {
		return nil, fmt.Errorf("init logging: %w", err)
	}
	logging.L().Debug("config loaded",
		zap.String("file", cfg.File),
		zap.String("start", cfg.StartPath),
		zap.Bool("retain_mutations", cfg.RetainMutations),
	)
	return cfg, nil
}

func runBrowser(cfg *config.Config) error {
	defer func() { _ = logging.Sync() }()

	app, err := apppkg.NewApplication(cfg)
	if err != nil {
		return fmt.Errorf("initializing application: %w", err)
	}
	defer func() {
		_ = app.Close()
	}()

	app.Run()
	return nil
}

func newListCommand(configFile *string) *cobra.Command {
	var term string

	cmd := &cobra.Command{
		Use:   "ls [path]",
		Short: "Print the listing of a directory",
		Long: `Print a directory listing the way the browser composes it.

Examples:
  vfsnav ls                        # root directory
  vfsnav ls /documents/work        # a nested directory
  vfsnav ls /downloads --search P  # names containing "p", any case`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, *configFile)
			if err != nil {
				return err
			}
			defer func() { _ = logging.Sync() }()

			path := cfg.StartPath
			if len(args) == 1 {
				path = args[0]
			}
			return runList(cmd.OutOrStdout(), cfg, path, term)
		},
	}

	cmd.Flags().StringVarP(&term, "search", "s", "", "only list names containing this text")
	return cmd
}

func runList(out io.Writer, cfg *config.Config, path, term string, opts ...statepkg.Option) error {
	store, err := cfg.Store()
	if err != nil {
		return err
	}

	opts = append([]statepkg.Option{statepkg.WithStartPath(path)}, opts...)
	session, err := statepkg.NewSession(store, opts...)
	if err != nil {
		return err
	}
	if term != "" {
		if res := session.Dispatch(statepkg.SearchAction{Term: term}); res.Err != nil {
			return res.Err
		}
	}

	items := session.Listing()
	if len(items) == 0 {
		_, err := fmt.Fprintf(out, "%s: no items\n", session.State().CurrentPath)
		return err
	}

	rows := [][]string{{"NAME", "SIZE", "MODIFIED"}}
	for _, item := range items {
		name := textutil.SanitizeTerminalText(item.Name)
		if item.IsDir() {
			name += "/"
		}
		rows = append(rows, []string{name, item.SizeLabel, item.ModifiedLabel})
	}
	_, err = io.WriteString(out, textutil.Table(rows))
	return err
}

func newTreeCommand(configFile *string) *cobra.Command {
	return &cobra.Command{
		Use:   "tree",
		Short: "Print the declared directory tree",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, *configFile)
			if err != nil {
				return err
			}
			store, err := cfg.Store()
			if err != nil {
				return err
			}
			return writeTree(cmd.OutOrStdout(), store)
		},
	}
}

// writeTree prints every declared directory below the root, depth first.
// Names that look like directories but are not declared print without
// children.
func writeTree(out io.Writer, store *fsutil.Store) error {
	var b strings.Builder
	b.WriteString(fsutil.Root + "\n")

	var walk func(dir, indent string)
	walk = func(dir, indent string) {
		children, err := store.ListChildren(dir)
		if err != nil {
			return
		}
		for i, name := range children {
			branch, next := "├── ", "│   "
			if i == len(children)-1 {
				branch, next = "└── ", "    "
			}
			label := textutil.SanitizeTerminalText(name)
			if fsutil.IsDirectoryName(name) {
				label += "/"
			}
			b.WriteString(indent + branch + label + "\n")
			walk(fsutil.ChildPath(dir, name), indent+next)
		}
	}
	walk(fsutil.Root, "")

	_, err := io.WriteString(out, b.String())
	return err
}
