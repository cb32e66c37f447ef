package services

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/kvault-labs/kvault-cli/internal/core/domain"
	"github.com/kvault-labs/kvault-cli/internal/core/ports/driven"
	"github.com/kvault-labs/kvault-cli/internal/core/ports/driving"
	"github.com/kvault-labs/kvault-cli/internal/logger"
)

// Ensure IngestService implements the interface.
var _ driving.Ingestor = (*IngestService)(nil)

// IngestService runs the document ingestion pipeline: parse the file
// type, load, split, then hand the chunks to the vector index. Files are
// processed sequentially in submission order and failures stay isolated
// to their file.
type IngestService struct {
	registry driven.LoaderRegistry
	splitter driven.Splitter
	index    Indexer
	ingest   domain.IngestSettings
}

// NewIngestService creates a new ingestion service.
func NewIngestService(
	registry driven.LoaderRegistry,
	splitter driven.Splitter,
	index Indexer,
	ingest domain.IngestSettings,
) *IngestService {
	return &IngestService{
		registry: registry,
		splitter: splitter,
		index:    index,
		ingest:   ingest,
	}
}

// AddDocuments ingests the given files. Per-file failures never abort
// the batch; they are reported in the returned report in submission
// order. The error return covers context cancellation only.
func (s *IngestService) AddDocuments(ctx context.Context, paths []string) (*domain.IngestReport, error) {
	logger.Section("Ingestion")
	logger.Debug("Adding %d files", len(paths))

	report := &domain.IngestReport{}

	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			return report, err
		}

		if err := s.addOne(ctx, path); err != nil {
			if errors.Is(err, domain.ErrUnsupportedFileType) {
				report.AddFailure(fmt.Sprintf("unsupported file type: %s", path))
			} else {
				report.AddFailure(fmt.Sprintf("processing %s: %v", path, err))
			}
			logger.Warn("Failed to ingest %s: %v", path, err)
			continue
		}
		report.AddSuccess()
	}

	logger.Info("Ingestion complete: %d processed, %d failed", report.Processed, report.Failed)
	return report, nil
}

// addOne runs the pipeline for a single file.
func (s *IngestService) addOne(ctx context.Context, path string) error {
	ft, err := domain.ParseFileType(path)
	if err != nil {
		return err
	}

	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrDocumentLoad, err)
	}
	if info.Size() > s.ingest.MaxFileBytes() {
		return fmt.Errorf("%w: %d bytes exceeds the %d MB limit",
			domain.ErrFileTooLarge, info.Size(), s.ingest.MaxFileMB)
	}

	loader, ok := s.registry.LoaderFor(ft)
	if !ok {
		return fmt.Errorf("%w: no loader for %s", domain.ErrUnsupportedFileType, ft)
	}

	docs, err := loader.Load(ctx, path)
	if err != nil {
		return err
	}

	name := filepath.Base(path)
	now := time.Now()

	var chunks []domain.Chunk
	for i := range docs {
		docs[i].Name = name
		docs[i].FileType = ft
		docs[i].AddedAt = now
		chunks = append(chunks, s.splitter.Split(docs[i])...)
	}

	logger.Info("Split %s into %d chunks", name, len(chunks))

	// A file with no extractable text still counts as processed.
	if len(chunks) == 0 {
		return nil
	}

	return s.index.Add(ctx, chunks)
}
