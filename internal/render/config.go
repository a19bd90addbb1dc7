package render

import (
	"os"

	"github.com/ananth/nexchat/internal/config"
)

// OptionsFromConfig derives render options from an in-memory configuration.
// The active theme picks the glamour style and the markdown section drives
// the remaining knobs.
func OptionsFromConfig(cfg config.Config) Options {
	opts := DefaultOptions()
	opts.Style = NormalizeStyle(cfg.Theme)

	md := cfg.Markdown
	opts.EnableEmoji = md.EnableEmoji
	opts.PreserveNewLines = md.PreserveNewLines
	opts.TableWrap = md.TableWrap
	opts.InlineTableLinks = md.InlineTableLinks
	return opts
}

// LoadOptionsFromConfig loads render options from the user configuration.
// The GLAMOUR_STYLE environment variable takes precedence over the theme.
func LoadOptionsFromConfig() Options {
	opts := DefaultOptions()

	if cfg, err := config.LoadConfig(); err == nil {
		opts = OptionsFromConfig(cfg)
	}

	if style := os.Getenv("GLAMOUR_STYLE"); style != "" {
		opts.Style = style
	}

	return opts
}

// LoadOptionsFromConfigWithWidth is LoadOptionsFromConfig with the wrap
// width replaced, for callers that size output to the terminal.
func LoadOptionsFromConfigWithWidth(width int) Options {
	opts := LoadOptionsFromConfig()
	opts.Width = width
	return opts
}
