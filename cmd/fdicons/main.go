package main

import (
	"fmt"
	"image/color"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/tuxlif/fdicons"
	"github.com/tuxlif/fdicons/renderer"
)

var (
	size     int
	scale    int
	theme    string
	vector   bool
	useCache bool
	output   string
)

var rootCmd = &cobra.Command{
	Use:   "fdicons NAME",
	Short: "fdicons – resolve freedesktop icon names to file paths",
	Long: "fdicons resolves a logical icon name to a file path, walking the\n" +
		"configured theme, its parents, hicolor and the legacy pixmaps directories.",
	Args: cobra.ExactArgs(1),
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return validateFlags(size, scale)
	},
	RunE: runLookup,
}

// validateFlags rejects non-positive size and scale before they reach the
// query builder, which treats them as a programming error and panics.
func validateFlags(size, scale int) error {
	if size <= 0 {
		return fmt.Errorf("--size must be positive, got %d", size)
	}
	if scale <= 0 {
		return fmt.Errorf("--scale must be positive, got %d", scale)
	}
	return nil
}

var themesCmd = &cobra.Command{
	Use:   "themes",
	Short: "List installed icon themes",
	Run: func(cmd *cobra.Command, args []string) {
		for _, name := range fdicons.DefaultRegistry().ListThemes() {
			fmt.Println(name)
		}
	},
}

var renderCmd = &cobra.Command{
	Use:   "render NAME",
	Short: "Resolve an icon and rasterize it to a PNG file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		img, path, err := renderer.RenderNamed(args[0:1], size, color.Black)
		if err != nil {
			return err
		}
		if path == "" {
			fmt.Fprintf(os.Stderr, "icon %q not found, writing placeholder\n", args[0])
		}
		return renderer.SavePNG(img, output)
	},
}

func runLookup(cmd *cobra.Command, args []string) error {
	log := newLogger()

	if theme == "" {
		theme = fdicons.DefaultTheme()
	}

	query := fdicons.Lookup(args[0]).
		WithTheme(theme).
		WithSize(size).
		WithScale(scale).
		WithRegistry(fdicons.NewRegistry(fdicons.DefaultBasePaths(), log))
	if vector {
		query = query.ForceVector()
	}
	if useCache {
		query = query.WithCache()
	}

	start := time.Now()
	icon, ok := query.Find()
	log.Debug().Dur("took", time.Since(start)).Str("icon", args[0]).Str("theme", theme).
		Msg("lookup done")

	if !ok {
		return fmt.Errorf("icon %q not found", args[0])
	}
	fmt.Println(icon.Path)
	return nil
}

// newLogger builds a console logger from FDICONS_LOG_LEVEL and
// FDICONS_LOG_FORMAT (json or console).
func newLogger() zerolog.Logger {
	level := zerolog.WarnLevel
	if l, err := zerolog.ParseLevel(os.Getenv("FDICONS_LOG_LEVEL")); err == nil && l != zerolog.NoLevel {
		level = l
	}

	out := zerolog.New(os.Stderr)
	if os.Getenv("FDICONS_LOG_FORMAT") != "json" {
		out = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	}
	return out.Level(level).With().Timestamp().Logger()
}

func main() {
	rootCmd.PersistentFlags().IntVar(&size, "size", 24, "requested unscaled icon size")
	rootCmd.PersistentFlags().IntVar(&scale, "scale", 1, "requested display scale")
	rootCmd.Flags().StringVar(&theme, "theme", "", "theme to search (default: desktop setting)")
	rootCmd.Flags().BoolVar(&vector, "svg", false, "prefer SVG candidates over PNG")
	rootCmd.Flags().BoolVar(&useCache, "cache", false, "memoize results in the process cache")
	renderCmd.Flags().StringVarP(&output, "output", "o", "icon.png", "output PNG path")

	rootCmd.AddCommand(themesCmd, renderCmd)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
