// Package folding simplifies UTF-16 text into a parser-friendly character set.
//
// Each code unit is looked up in a static table of typographic punctuation,
// then matched against ordered range rules for digit, letter and symbol
// blocks, and finally checked against the characters XML 1.0 allows.
// Anything that survives none of these becomes a space, so the output
// length always equals the input length.
//
// All state is immutable and safe for concurrent use.
package folding
