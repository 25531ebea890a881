package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/aretw0/jadof"
	"github.com/aretw0/jadof/pkg/core"
)

var (
	verbose bool
	cfgFile string

	// cfg is rebuilt on every execution from flags, JADOF_* variables and the config file.
	cfg *viper.Viper
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "jadof",
	Short: "Query and render a directory of text files as pages",
	Long: `jadof reads a directory tree of text files with optional YAML headers
and exposes them as pages you can list, filter, show and render.

Settings come from flags, JADOF_* environment variables and a jadof.yaml
file found in the working directory or any parent.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}

		opts := &slog.HandlerOptions{
			Level: level,
		}
		logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), opts))
		slog.SetDefault(logger)

		return loadConfig(cmd)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main().
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	flags.StringVar(&cfgFile, "config", "", "config file (default is jadof.yaml in the working directory or a parent)")
	flags.StringP("dir", "d", "", "pages directory (default ./pages, ./posts for --kind post)")
	flags.String("kind", "page", "page kind: page or post")
	flags.StringSlice("ignore", nil, "glob patterns to skip, relative to the pages directory")
	flags.Bool("safe", false, "drop raw HTML from markdown")
	flags.Bool("sanitize", false, "sanitize rendered markdown")
	flags.Bool("hard-wraps", false, "render markdown soft line breaks as <br>")
	flags.StringSlice("markdown-ext", nil, "goldmark extensions (default gfm, linkify, tasklist)")
}

// loadConfig resolves the configuration for this run.
// Precedence: flags, JADOF_* environment variables, config file, defaults.
func loadConfig(cmd *cobra.Command) error {
	cfg = viper.New()
	if err := cfg.BindPFlags(cmd.Root().PersistentFlags()); err != nil {
		return err
	}

	cfg.SetEnvPrefix("JADOF")
	cfg.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	cfg.AutomaticEnv()

	file := cfgFile
	if file == "" {
		file = os.Getenv("JADOF_CONFIG")
	}
	if file == "" {
		wd, err := os.Getwd()
		if err != nil {
			return err
		}
		root, err := jadof.FindRoot(wd)
		if err != nil {
			slog.Debug("no config file found", "from", wd)
			return nil
		}
		file = configIn(root)
		if file == "" {
			return nil
		}
	}

	cfg.SetConfigFile(file)
	if err := cfg.ReadInConfig(); err != nil {
		return fmt.Errorf("failed to read config %s: %w", file, err)
	}
	slog.Debug("using config file", "path", cfg.ConfigFileUsed())

	// A relative dir in a config file is relative to the file.
	if dir := cfg.GetString("dir"); dir != "" && !filepath.IsAbs(dir) && !cmd.Root().PersistentFlags().Changed("dir") && os.Getenv("JADOF_DIR") == "" {
		cfg.Set("dir", filepath.Join(filepath.Dir(file), dir))
	}
	return nil
}

// configIn returns the config file inside root, or "" for a bare .jadof marker directory.
func configIn(root string) string {
	for _, name := range []string{"jadof.yaml", "jadof.yml", filepath.Join(".jadof", "config.yaml")} {
		path := filepath.Join(root, name)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path
		}
	}
	return ""
}

// openService builds the page source described by the configuration.
func openService() (*core.Service, error) {
	opts := []jadof.Option{
		jadof.WithLogger(slog.Default()),
		jadof.WithMemoryCache(),
		jadof.WithIgnore(cfg.GetStringSlice("ignore")...),
		jadof.WithMarkdownOptions(jadof.MarkdownOptions{
			Extensions: cfg.GetStringSlice("markdown-ext"),
			HardWraps:  cfg.GetBool("hard-wraps"),
			Safe:       cfg.GetBool("safe"),
			Sanitize:   cfg.GetBool("sanitize"),
		}),
	}

	dir := cfg.GetString("dir")
	switch kind := strings.ToLower(cfg.GetString("kind")); kind {
	case "", "page", "pages":
		return jadof.New(dir, opts...)
	case "post", "posts":
		return jadof.NewPosts(dir, opts...)
	default:
		return nil, fmt.Errorf("unknown kind %q (want page or post)", kind)
	}
}
