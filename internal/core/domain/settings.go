package domain

import "runtime"

const unknownDescription = "Unknown"

// LineBreakMode selects the sequence written between sentence, paragraph
// and chunk boundaries.
type LineBreakMode string

// Available line break modes.
const (
	// LineBreakCRLF writes "\r\n".
	LineBreakCRLF LineBreakMode = "crlf"

	// LineBreakLF writes "\n".
	LineBreakLF LineBreakMode = "lf"
)

// IsValid returns true if the line break mode is recognised.
func (m LineBreakMode) IsValid() bool {
	switch m {
	case LineBreakCRLF, LineBreakLF:
		return true
	default:
		return false
	}
}

// Sequence returns the characters written for the mode.
func (m LineBreakMode) Sequence() string {
	if m == LineBreakLF {
		return "\n"
	}
	return DefaultLineBreak
}

// String returns the string representation.
func (m LineBreakMode) String() string {
	return string(m)
}

// Description returns a human-readable description of the mode.
func (m LineBreakMode) Description() string {
	switch m {
	case LineBreakCRLF:
		return "CR LF (Windows style)"
	case LineBreakLF:
		return "LF (Unix style)"
	default:
		return unknownDescription
	}
}

// ExtractSettings holds extraction behaviour configuration.
type ExtractSettings struct {
	// MaxLength is the soft output cap in UTF-16 code units. Zero is unbounded.
	MaxLength int

	// LineBreak is written between sentence, paragraph and chunk boundaries.
	LineBreak LineBreakMode

	// Jobs is the number of files extracted concurrently by batch runs.
	Jobs int
}

// FilterSettings holds filter selection configuration.
type FilterSettings struct {
	// Disabled lists filter names that are not registered.
	Disabled []string

	// Sniff enables MIME sniffing when no filter matches the extension.
	Sniff bool

	// Readability enables docconv's readability pass for HTML-like content.
	Readability bool
}

// IsDisabled reports whether the named filter is disabled.
func (f FilterSettings) IsDisabled(name string) bool {
	for _, d := range f.Disabled {
		if d == name {
			return true
		}
	}
	return false
}

// WatchSettings holds directory watch configuration.
type WatchSettings struct {
	// EventsPerSecond is the sustained re-extraction rate.
	EventsPerSecond float64

	// Burst is the maximum number of back-to-back re-extractions.
	Burst int
}

// AppSettings holds all application settings.
type AppSettings struct {
	// Extract holds extraction settings.
	Extract ExtractSettings

	// Filters holds filter registry settings.
	Filters FilterSettings

	// Watch holds watch mode settings.
	Watch WatchSettings
}

// DefaultAppSettings returns settings with sensible defaults.
func DefaultAppSettings() AppSettings {
	return AppSettings{
		Extract: ExtractSettings{
			MaxLength: 0,
			LineBreak: LineBreakCRLF,
			Jobs:      runtime.NumCPU(),
		},
		Filters: FilterSettings{
			Sniff: true,
		},
		Watch: WatchSettings{
			EventsPerSecond: 4.0,
			Burst:           8,
		},
	}
}

// AllLineBreakModes returns all available line break modes.
func AllLineBreakModes() []LineBreakMode {
	return []LineBreakMode{
		LineBreakCRLF,
		LineBreakLF,
	}
}
