// Command glint renders syntax-highlighted source in the terminal: a
// watching pager (view), a batch renderer (render), and a language
// listing (langs). It is also the reference consumer of the glint
// library's session API.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"glint"
	"glint/internal/lang"
	"glint/internal/log"
	"glint/internal/theme"
)

func init() {
	// Force lipgloss/termenv to query terminal background color BEFORE
	// any Bubble Tea program starts. This prevents the terminal's OSC 11
	// response from racing with Bubble Tea's input loop.
	//
	// See: https://github.com/charmbracelet/bubbletea/issues/1036
	_ = lipgloss.HasDarkBackground()
}

var (
	version    = "dev"
	cfgFile    string
	cfg        appConfig
	palette    theme.Palette
	overrides  lang.Overrides
	logCleanup func()
)

type appConfig struct {
	Theme              string `mapstructure:"theme"`
	Debug              bool   `mapstructure:"debug"`
	LogFile            string `mapstructure:"log_file"`
	WatchDebounceMS    int    `mapstructure:"watch_debounce_ms"`
	MaxScanLines       int    `mapstructure:"max_scan_lines"`
	MaxStructuralBytes int    `mapstructure:"max_structural_bytes"`
	RenderWorkers      int    `mapstructure:"render_workers"`
}

var rootCmd = &cobra.Command{
	Use:               "glint",
	Short:             "Incremental syntax highlighting for the terminal",
	Long:              "Glint highlights source files with an incremental engine: a structural parse tree where a grammar exists, line-pattern passes elsewhere. Edits re-highlight only the lines they touch.",
	Version:           version,
	PersistentPreRunE: setup,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "",
		"config file (default: ~/.config/glint/config.yaml)")
	rootCmd.PersistentFlags().StringP("theme", "t", "",
		"chroma style name for colors")
	rootCmd.PersistentFlags().Bool("debug", false,
		"write debug logs")

	_ = viper.BindPFlag("theme", rootCmd.PersistentFlags().Lookup("theme"))
	_ = viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
}

func initConfig() {
	viper.SetDefault("theme", "nord")
	viper.SetDefault("debug", false)
	viper.SetDefault("log_file", "glint.log")
	viper.SetDefault("watch_debounce_ms", 200)
	viper.SetDefault("max_scan_lines", 100_000)
	viper.SetDefault("max_structural_bytes", 4<<20)
	viper.SetDefault("render_workers", 0)

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		// Config lookup order:
		// 1. .glint/config.yaml (current directory)
		// 2. ~/.config/glint/config.yaml (user config)
		if _, err := os.Stat(".glint/config.yaml"); err == nil {
			viper.SetConfigFile(".glint/config.yaml")
		} else {
			home, _ := os.UserHomeDir()
			viper.AddConfigPath(filepath.Join(home, ".config", "glint"))
			viper.SetConfigName("config")
			viper.SetConfigType("yaml")
		}
	}

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			fmt.Fprintln(os.Stderr, "config:", err)
		}
	}
	_ = viper.Unmarshal(&cfg)

	if os.Getenv("GLINT_DEBUG") != "" {
		cfg.Debug = true
	}
}

func setup(cmd *cobra.Command, args []string) error {
	if cfg.Debug {
		cleanup, err := log.InitWithTeaLog(cfg.LogFile, "glint")
		if err != nil {
			return fmt.Errorf("opening log file: %w", err)
		}
		logCleanup = cleanup
		log.Info(log.CatConfig, "logging enabled", "file", cfg.LogFile, "theme", cfg.Theme)
	}

	p, err := theme.Load(cfg.Theme)
	if err != nil {
		return err
	}
	palette = p

	ov, err := lang.LoadOverrides(overridesPath())
	if err != nil {
		log.ErrorErr(log.CatConfig, "language overrides ignored", err)
		ov = lang.Overrides{}
	}
	overrides = ov
	return nil
}

// overridesPath mirrors the config lookup order for languages.yaml.
func overridesPath() string {
	if cfgFile != "" {
		return filepath.Join(filepath.Dir(cfgFile), "languages.yaml")
	}
	if _, err := os.Stat(".glint/languages.yaml"); err == nil {
		return ".glint/languages.yaml"
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "glint", "languages.yaml")
}

// detectLanguage applies user overrides before the built-in tables.
func detectLanguage(path, content string) string {
	if id, ok := overrides.Resolve(path); ok {
		return string(id)
	}
	return glint.DetectLanguage(path, content)
}

func sessionOptions() []glint.Option {
	return []glint.Option{
		glint.WithMaxScanLines(cfg.MaxScanLines),
		glint.WithMaxStructuralBytes(cfg.MaxStructuralBytes),
	}
}

func main() {
	err := rootCmd.Execute()
	if logCleanup != nil {
		logCleanup()
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
