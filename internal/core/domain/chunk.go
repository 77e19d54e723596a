package domain

// TextBufferSize is the capacity, in UTF-16 code units, of the buffer
// handed to Filter.GetText on every call.
const TextBufferSize = 4096

// DefaultLineBreak separates chunks that end a sentence, paragraph or chunk.
const DefaultLineBreak = "\r\n"

// BreakType describes how a chunk is separated from the text before it.
type BreakType int

// Chunk break types.
const (
	// BreakNone joins the chunk directly to the previous text.
	BreakNone BreakType = iota

	// BreakEndOfWord separates the chunk by a word boundary.
	BreakEndOfWord

	// BreakEndOfSentence separates the chunk by a sentence boundary.
	BreakEndOfSentence

	// BreakEndOfParagraph separates the chunk by a paragraph boundary.
	BreakEndOfParagraph

	// BreakEndOfChunk separates the chunk by a chapter or page boundary.
	BreakEndOfChunk
)

// String returns the break type name.
func (b BreakType) String() string {
	switch b {
	case BreakNone:
		return "none"
	case BreakEndOfWord:
		return "end-of-word"
	case BreakEndOfSentence:
		return "end-of-sentence"
	case BreakEndOfParagraph:
		return "end-of-paragraph"
	case BreakEndOfChunk:
		return "end-of-chunk"
	default:
		return unknownDescription
	}
}

// Separator returns the text emitted before a chunk with this break type.
// lineBreak is used for sentence, paragraph and chunk boundaries.
func (b BreakType) Separator(lineBreak string) string {
	switch b {
	case BreakEndOfWord:
		return " "
	case BreakEndOfSentence, BreakEndOfParagraph, BreakEndOfChunk:
		return lineBreak
	default:
		return ""
	}
}

// ChunkFlags describes the content of a chunk.
type ChunkFlags uint32

// Chunk content flags.
const (
	// ChunkText marks a chunk that carries text for GetText.
	ChunkText ChunkFlags = 1 << iota

	// ChunkValue marks a chunk that carries a property value.
	ChunkValue
)

// IsText reports whether the chunk carries text.
func (f ChunkFlags) IsText() bool {
	return f&ChunkText == ChunkText
}

// ChunkDescriptor is the metadata for one unit of filter content.
// It is produced by Filter.NextChunk and consumed immediately.
type ChunkDescriptor struct {
	// ID identifies the chunk within one filter pass.
	ID uint32

	// BreakType separates this chunk from the previous one.
	BreakType BreakType

	// Flags describes whether the chunk is text or a property value.
	Flags ChunkFlags

	// Attribute names the property the chunk belongs to (e.g. "content", "title").
	Attribute string
}

// InitFlags are the normalisation requests passed to Filter.Init.
type InitFlags uint32

// Filter initialisation flags.
const (
	// InitCanonParagraphs marks paragraph breaks with U+2029.
	InitCanonParagraphs InitFlags = 1 << iota

	// InitHardLineBreaks marks soft line breaks with U+2028.
	InitHardLineBreaks

	// InitCanonHyphens nulls optional hyphens and plains non-breaking hyphens.
	InitCanonHyphens

	// InitCanonSpaces converts special spaces to U+0020.
	InitCanonSpaces

	// InitApplyIndexAttributes emits property value chunks.
	InitApplyIndexAttributes

	// InitIndexingOnly tells the filter its output is only used for indexing.
	InitIndexingOnly
)

// DefaultInitFlags is the flag set used by the extractor.
const DefaultInitFlags = InitCanonParagraphs |
	InitCanonHyphens |
	InitCanonSpaces |
	InitApplyIndexAttributes |
	InitIndexingOnly

// Has reports whether all bits in flag are set.
func (f InitFlags) Has(flag InitFlags) bool {
	return f&flag == flag
}

// FilterFlags are returned by Filter.Init to describe the filter.
// No filter in this module reports properties out of band, so every
// filter returns zero.
type FilterFlags uint32
