package output

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-runewidth"
	"github.com/mj1618/openwindows/internal/model"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"
)

// Format represents the output format.
type Format string

const (
	FormatHuman Format = "human"
	FormatDebug Format = "debug"
)

// OutputFormat is the current output format, set by the root command's --format flag.
var OutputFormat = FormatHuman

// AppColumnWidth is the display width of the App column in human output.
const AppColumnWidth = 20

const humanPrefix = "App: "
const humanSeparator = " | Window: "

// ParseFormat converts a --format flag value to a Format.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatHuman, FormatDebug:
		return Format(s), nil
	default:
		return "", fmt.Errorf("unsupported format: %s (use human or debug)", s)
	}
}

// Options controls rendering.
type Options struct {
	Format Format
	// Width truncates human-style titles to fit this many columns (0 = no limit).
	Width int
}

// PrintWindows writes windows to w. Nothing is written for an empty list.
func PrintWindows(w io.Writer, windows []model.Window, opts Options) error {
	if len(windows) == 0 {
		return nil
	}
	switch opts.Format {
	case FormatDebug:
		return PrintYAML(w, windows)
	case FormatHuman, "":
		for _, win := range windows {
			if _, err := fmt.Fprintln(w, HumanLine(win, opts.Width)); err != nil {
				return err
			}
		}
		return nil
	default:
		return fmt.Errorf("unsupported output format: %s", opts.Format)
	}
}

// HumanLine renders "App: <app> | Window: <title>" with the app padded
// or truncated to AppColumnWidth. A positive width truncates the title.
func HumanLine(win model.Window, width int) string {
	app := runewidth.FillRight(runewidth.Truncate(win.App, AppColumnWidth, ""), AppColumnWidth)
	title := win.Title
	if width > 0 {
		room := width - runewidth.StringWidth(humanPrefix) - AppColumnWidth - runewidth.StringWidth(humanSeparator)
		if room < 1 {
			room = 1
		}
		title = runewidth.Truncate(title, room, "…")
	}
	return humanPrefix + app + humanSeparator + title
}

// PrintYAML serializes v to w as YAML.
func PrintYAML(w io.Writer, v interface{}) error {
	enc := yaml.NewEncoder(w)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("yaml encode: %w", err)
	}
	return enc.Close()
}

// IsOutputPiped reports whether stdout is not a terminal.
func IsOutputPiped() bool {
	return !term.IsTerminal(int(os.Stdout.Fd()))
}

// TerminalWidth returns the width of the stdout terminal, or 0 when
// stdout is piped or the size cannot be read.
func TerminalWidth() int {
	if IsOutputPiped() {
		return 0
	}
	w, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return 0
	}
	return w
}
