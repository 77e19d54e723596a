// Package html filters HTML documents.
//
// Readable text is pulled out by stripping scripts, styles and markup and
// decoding entities. Frames and embedded objects cannot be filtered, so
// each one is reported as an unavailable link chunk.
package html
