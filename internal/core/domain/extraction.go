package domain

import "time"

// Extraction is the result of one text extraction.
type Extraction struct {
	// ID is the unique identifier for this extraction run.
	ID string

	// Path is the file the text was extracted from.
	Path string

	// Filter names the filter that produced the text.
	Filter string

	// Text is the normalised text.
	Text string

	// Status is StatusOK, or StatusTruncated when the length cap was reached.
	Status Status

	// Truncated is true when the length cap stopped extraction early.
	Truncated bool

	// Chunks is the number of text chunks read.
	Chunks int

	// Skipped is the number of non-text or unavailable chunks passed over.
	Skipped int

	// Units is the length of Text in UTF-16 code units.
	Units int

	// Duration is how long the extraction took.
	Duration time.Duration

	// ExtractedAt is when the extraction finished.
	ExtractedAt time.Time
}

// BatchResult pairs a path with its extraction or failure.
type BatchResult struct {
	// Path is the requested file.
	Path string

	// Extraction is set on success or truncation.
	Extraction *Extraction

	// Err is set when extraction failed.
	Err error
}
