package xlwrite

import (
	"log/slog"
	"time"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/japanese"
)

const (
	// DefaultFontName is applied to every emitted sheet.
	DefaultFontName = "Meiryo UI"
	// DefaultPlaceholderSheet is the sheet the engine creates with every new
	// workbook; it is deleted once the real sheets exist.
	DefaultPlaceholderSheet = "Sheet1"
)

// Options holds configuration for a Workbook.
type Options struct {
	logger           *slog.Logger
	engine           Engine
	desktopDir       string
	now              func() time.Time
	encoding         encoding.Encoding
	fontName         string
	placeholderSheet string
	status           *Status
}

func defaultOptions() *Options {
	return &Options{
		engine:           PowerShell{},
		now:              time.Now,
		encoding:         japanese.ShiftJIS,
		fontName:         DefaultFontName,
		placeholderSheet: DefaultPlaceholderSheet,
	}
}

// Option configures a Workbook.
type Option func(*Options)

// WithLogger sets the structured logger (default: slog.Default()).
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) { o.logger = l }
}

// WithEngine sets the engine that runs the generated script (default: PowerShell{}).
func WithEngine(e Engine) Option {
	return func(o *Options) { o.engine = e }
}

// WithDesktopDir sets the directory used for the default output path.
// Without it the directory is resolved by DesktopDir.
func WithDesktopDir(dir string) Option {
	return func(o *Options) { o.desktopDir = dir }
}

// WithClock sets the clock used to stamp the default output path.
func WithClock(now func() time.Time) Option {
	return func(o *Options) { o.now = now }
}

// WithScriptEncoding sets the script file encoding (default: Shift_JIS).
func WithScriptEncoding(enc encoding.Encoding) Option {
	return func(o *Options) { o.encoding = enc }
}

// WithFontName sets the font applied to each sheet (default: "Meiryo UI").
func WithFontName(name string) Option {
	return func(o *Options) { o.fontName = name }
}

// WithPlaceholderSheet sets the name of the engine's auto-created sheet that
// is deleted after the real sheets are added (default: "Sheet1").
func WithPlaceholderSheet(name string) Option {
	return func(o *Options) { o.placeholderSheet = name }
}

// WithStatus shares an existing Status with the workbook, e.g. one owned by a UI.
func WithStatus(s *Status) Option {
	return func(o *Options) { o.status = s }
}

func (o *Options) emitter() *Emitter {
	return &Emitter{FontName: o.fontName, PlaceholderSheet: o.placeholderSheet}
}
