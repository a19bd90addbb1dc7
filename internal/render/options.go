// Package render turns markdown into styled terminal text and carries
// the light and dark theme definitions shared by the TUI and the CLI.
package render

// Options selects the glamour style and feature knobs for one render.
// Identical option sets share a renderer pool, so derive variants with
// the With helpers instead of mutating a shared value.
type Options struct {
	// Width is the wrap width in terminal cells.
	Width int

	// Style is a glamour built-in style name or a path to a style file.
	Style string

	// EnableEmoji replaces :emoji: shortcodes with unicode.
	EnableEmoji bool

	// PreserveNewLines keeps single line breaks instead of reflowing.
	PreserveNewLines bool

	// TableWrap wraps long cell content inside tables.
	TableWrap bool

	// InlineTableLinks renders link targets inline inside table cells.
	InlineTableLinks bool
}

// DefaultOptions returns the standard render configuration.
func DefaultOptions() Options {
	return Options{
		Width:            80,
		Style:            ThemeLight,
		EnableEmoji:      true,
		PreserveNewLines: true,
		TableWrap:        true,
	}
}

// WithWidth returns a copy of o with the wrap width replaced.
func (o Options) WithWidth(width int) Options {
	o.Width = width
	return o
}

// WithStyle returns a copy of o with the glamour style replaced.
func (o Options) WithStyle(style string) Options {
	o.Style = style
	return o
}
