package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"runtime"
	"time"
	"unicode/utf16"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/custodia-labs/extracttext/internal/core/domain"
	"github.com/custodia-labs/extracttext/internal/core/ports/driven"
	"github.com/custodia-labs/extracttext/internal/core/ports/driving"
	"github.com/custodia-labs/extracttext/internal/folding"
	"github.com/custodia-labs/extracttext/internal/logger"
)

// Ensure ExtractorService implements the interface.
var _ driving.TextExtractor = (*ExtractorService)(nil)

// ExtractorService drives content filters and folds their text.
type ExtractorService struct {
	loader    driven.FilterLoader
	lineBreak string
	initFlags domain.InitFlags
	now       func() time.Time
}

// ExtractorOption configures an ExtractorService.
type ExtractorOption func(*ExtractorService)

// WithLineBreak sets the sequence written for sentence, paragraph and
// chunk breaks. An empty sequence keeps the default.
func WithLineBreak(lineBreak string) ExtractorOption {
	return func(s *ExtractorService) {
		if lineBreak != "" {
			s.lineBreak = lineBreak
		}
	}
}

// WithInitFlags overrides the flags passed to Filter.Init.
func WithInitFlags(flags domain.InitFlags) ExtractorOption {
	return func(s *ExtractorService) {
		s.initFlags = flags
	}
}

// NewExtractorService creates a new extractor service.
func NewExtractorService(loader driven.FilterLoader, opts ...ExtractorOption) *ExtractorService {
	s := &ExtractorService{
		loader:    loader,
		lineBreak: domain.DefaultLineBreak,
		initFlags: domain.DefaultInitFlags,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Extract returns the normalised text of path.
// The context is passed to the filter loader; once a filter is loaded the
// extraction runs to completion.
func (s *ExtractorService) Extract(
	ctx context.Context, path string, maxLength int,
) (result *domain.Extraction, err error) {
	logger.Section("Text Extraction")
	logger.Debug("Path: %s, max length: %d", path, maxLength)

	if path == "" {
		return nil, domain.NewExtractError(
			domain.OpExtractText, domain.ErrInvalidInput, "file path is required", domain.StatusInvalidArg)
	}
	if maxLength < 0 {
		return nil, domain.NewExtractError(
			domain.OpExtractText, domain.ErrInvalidInput,
			fmt.Sprintf("max length must not be negative, got %d", maxLength), domain.StatusInvalidArg)
	}

	defer func() {
		if r := recover(); r != nil {
			logger.Warn("Extraction of %s panicked: %v", path, r)
			result = nil
			err = domain.NewExtractError(
				domain.OpExtractText, domain.ErrUnexpected, "unexpected failure", fmt.Errorf("panic: %v", r))
		}
	}()

	start := s.now()

	filter, err := s.loader.Load(ctx, path)
	if err != nil {
		logger.Debug("Load failed: %v", err)
		return nil, loadError(err)
	}
	defer func() {
		if cerr := filter.Close(); cerr != nil {
			logger.Warn("Closing filter for %s: %v", path, cerr)
		}
	}()

	name := "unknown"
	if named, ok := filter.(driven.NamedFilter); ok {
		name = named.Name()
	}
	logger.Debug("Filter: %s", name)

	if _, err := filter.Init(s.initFlags); err != nil {
		logger.Debug("Init failed: %v", err)
		return nil, initError(err)
	}

	r := newChunkReader(filter, maxLength, s.lineBreak)
	if err := r.run(); err != nil {
		return nil, err
	}

	status := domain.StatusOK
	if r.truncated {
		status = domain.StatusTruncated
	}

	finished := s.now()
	result = &domain.Extraction{
		ID:          uuid.NewString(),
		Path:        path,
		Filter:      name,
		Text:        string(utf16.Decode(r.out)),
		Status:      status,
		Truncated:   r.truncated,
		Chunks:      r.chunks,
		Skipped:     r.skipped,
		Units:       len(r.out),
		Duration:    finished.Sub(start),
		ExtractedAt: finished,
	}

	logger.Debug("Extracted %d units from %d chunks (%d skipped), status %q",
		result.Units, result.Chunks, result.Skipped, result.Status)

	return result, nil
}

// ExtractTo extracts path and writes the text to w.
func (s *ExtractorService) ExtractTo(
	ctx context.Context, path string, maxLength int, w io.Writer,
) (*domain.Extraction, error) {
	if w == nil {
		return nil, domain.NewExtractError(
			domain.OpExtractText, domain.ErrInvalidInput, "output destination is required", domain.StatusPointer)
	}

	result, err := s.Extract(ctx, path, maxLength)
	if err != nil {
		return nil, err
	}

	if _, err := io.WriteString(w, result.Text); err != nil {
		return nil, domain.NewExtractError(
			domain.OpExtractText, domain.ErrUnexpected, "unable to write output", err)
	}

	return result, nil
}

// ExtractAll extracts paths concurrently, at most jobs at a time.
// Each file gets its own filter. Per-file failures are reported in the
// results; the returned error is only set when ctx is cancelled.
func (s *ExtractorService) ExtractAll(
	ctx context.Context, paths []string, maxLength, jobs int,
) ([]domain.BatchResult, error) {
	if jobs <= 0 {
		jobs = runtime.NumCPU()
	}
	logger.Debug("Extracting %d files with %d jobs", len(paths), jobs)

	results := make([]domain.BatchResult, len(paths))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)

	for i, path := range paths {
		results[i].Path = path
		if gctx.Err() != nil {
			results[i].Err = gctx.Err()
			continue
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				results[i].Err = err
				return nil
			}
			ext, err := s.Extract(gctx, path, maxLength)
			results[i].Extraction = ext
			results[i].Err = err
			return nil
		})
	}

	// Workers never return an error; failures live in the results.
	_ = g.Wait()

	return results, ctx.Err()
}

// chunkReader accumulates the text of one filter pass.
type chunkReader struct {
	filter    driven.Filter
	maxLength int
	seps      map[domain.BreakType][]uint16

	buf []uint16
	out []uint16

	chunks    int
	skipped   int
	truncated bool
}

func newChunkReader(filter driven.Filter, maxLength int, lineBreak string) *chunkReader {
	seps := make(map[domain.BreakType][]uint16)
	for _, b := range []domain.BreakType{
		domain.BreakEndOfWord, domain.BreakEndOfSentence, domain.BreakEndOfParagraph, domain.BreakEndOfChunk,
	} {
		seps[b] = utf16.Encode([]rune(b.Separator(lineBreak)))
	}
	return &chunkReader{
		filter:    filter,
		maxLength: maxLength,
		seps:      seps,
		buf:       make([]uint16, domain.TextBufferSize),
	}
}

// overCap reports whether the accumulated text exceeds a positive cap.
func (r *chunkReader) overCap() bool {
	return r.maxLength > 0 && len(r.out) > r.maxLength
}

func (r *chunkReader) run() error {
	for {
		if r.overCap() {
			r.truncated = true
			logger.Debug("Length cap %d reached at %d units", r.maxLength, len(r.out))
			return nil
		}

		desc, err := r.filter.NextChunk()
		if err != nil {
			switch domain.StatusOf(err) {
			case domain.StatusEndOfChunks:
				return nil
			case domain.StatusEmbeddingUnavailable, domain.StatusLinkUnavailable:
				logger.Debug("Skipping unavailable chunk: %v", err)
				r.skipped++
				continue
			default:
				return chunkError(err)
			}
		}

		if !desc.Flags.IsText() {
			logger.Debug("Skipping value chunk %d (%s)", desc.ID, desc.Attribute)
			r.skipped++
			continue
		}

		r.chunks++
		r.out = append(r.out, r.seps[desc.BreakType]...)

		if err := r.drain(desc); err != nil {
			return err
		}
	}
}

// drain reads the current chunk until it reports its last text or the
// cap is exceeded.
func (r *chunkReader) drain(desc domain.ChunkDescriptor) error {
	for {
		n, err := r.filter.GetText(r.buf)
		if n < 0 || n > len(r.buf) {
			return domain.NewExtractError(domain.OpGetText, domain.ErrProtocolViolation,
				fmt.Sprintf("filter reported %d units for a %d unit buffer", n, len(r.buf)), domain.StatusFail)
		}
		if n > 0 {
			r.out = append(r.out, folding.Normalise(r.buf, n)...)
			if r.overCap() {
				return nil
			}
		}

		switch status := domain.StatusOf(err); status {
		case domain.StatusOK:
			if n == 0 {
				return domain.NewExtractError(domain.OpGetText, domain.ErrProtocolViolation,
					fmt.Sprintf("chunk %d returned no text and no status", desc.ID), domain.StatusFail)
			}
		case domain.StatusLastText, domain.StatusNoMoreText:
			return nil
		default:
			return textError(err)
		}
	}
}

func loadError(err error) error {
	var kind error
	var reason string
	switch domain.StatusOf(err) {
	case domain.StatusAccessDenied:
		kind, reason = domain.ErrAccessDenied, "access denied"
	case domain.StatusHandle, domain.StatusOutOfMemory:
		kind, reason = domain.ErrResourceExhausted, "insufficient resources to load filter"
	case domain.StatusInvalidArg:
		kind, reason = domain.ErrInvalidInput, "invalid file path"
	case domain.StatusFilterNotFound:
		kind, reason = domain.ErrFilterUnavailable, "no filter available for file type"
	case domain.StatusFail:
		kind, reason = domain.ErrUnexpected, "unknown error"
	case domain.StatusPassword:
		kind, reason = domain.ErrPasswordProtected, "file is password protected"
	case domain.StatusAccess:
		kind, reason = domain.ErrAccessDenied, "unable to access file"
	default:
		kind, reason = domain.ErrUnexpected, "unexpected error"
	}
	return domain.NewExtractError(domain.OpLoadFilter, kind, reason, err)
}

func initError(err error) error {
	var kind error
	var reason string
	switch domain.StatusOf(err) {
	case domain.StatusFail, domain.StatusFilterNotFound:
		kind, reason = domain.ErrFilterUnavailable, "filter could not be initialised"
	case domain.StatusInvalidArg:
		kind, reason = domain.ErrConfigRejected, "filter rejected its configuration"
	case domain.StatusPassword:
		kind, reason = domain.ErrPasswordProtected, "file is password protected"
	case domain.StatusAccess:
		kind, reason = domain.ErrAccessDenied, "unable to access file"
	default:
		kind, reason = domain.ErrUnexpected, "unexpected error"
	}
	return domain.NewExtractError(domain.OpInit, kind, reason, err)
}

func chunkError(err error) error {
	var kind error
	var reason string
	switch domain.StatusOf(err) {
	case domain.StatusPassword:
		kind, reason = domain.ErrPasswordProtected, "file is password protected"
	case domain.StatusAccess:
		kind, reason = domain.ErrAccessDenied, "unable to access file"
	default:
		kind, reason = domain.ErrUnexpected, "unexpected error"
	}
	return domain.NewExtractError(domain.OpGetChunk, kind, reason, err)
}

func textError(err error) error {
	if errors.Is(err, domain.StatusNoText) {
		return domain.NewExtractError(domain.OpGetText, domain.ErrProtocolViolation,
			"text chunk contains no text", err)
	}
	return domain.NewExtractError(domain.OpGetText, domain.ErrUnexpected, "unexpected error", err)
}
