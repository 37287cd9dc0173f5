package ingestor

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/samber/lo"
	"github.com/supplyhub/yml-feed-parser/internal/platform/models"
)

//go:generate mockery --name Fetcher --filename fetcher.go
//go:generate mockery --name Decoder --filename decoder.go
//go:generate mockery --name Normalizer --filename normalizer.go
//go:generate mockery --name Projector --filename projector.go
//go:generate mockery --name Storage --filename storage.go

// Fetcher resolves feed format and fetches the feed document.
type Fetcher interface {
	FetchFeed(ctx context.Context, feedURL string) (io.ReadCloser, models.FeedFormat, error)
}

// Decoder decodes feed documents into parsed structures.
type Decoder interface {
	Decode(format models.FeedFormat, content []byte) (*models.ParsedStructure, error)
}

// Normalizer flattens parsed structures into ordered parameter lists.
type Normalizer interface {
	Normalize(structure *models.ParsedStructure) []models.ParsedParameter
}

// Projector builds preview trees and statistics from parsed structures.
type Projector interface {
	Project(structure *models.ParsedStructure) models.PreviewNode
	Stats(tree *models.PreviewNode) models.PreviewStats
}

// Clock provides times.
type Clock interface {
	// Timestamp returns UTC unix timestamp.
	Timestamp() int64
	// Now returns current UTC time.
	Now() *time.Time
}

// Storage is feeds, runs and parameters storage.
type Storage interface {
	// StartRun creates new run if there is no run for provided feed running.
	StartRun(ctx context.Context, feedURL string, version int64) (run *models.Run, err error)
	// FinishRun finishes provided run and updates its statistics.
	FinishRun(ctx context.Context, run *models.Run) error
	// UpsertParameters creates new parameters and updates existing ones in one batch write.
	// Returns number of created and updated parameters.
	UpsertParameters(
		ctx context.Context,
		parameters []models.ParsedParameter,
		feedID int,
		version int64,
		templateID string,
		storeID string,
	) (newParameters int32, updatedParameters int32, err error)
	// DeleteOldParameters deletes all not-deleted parameters of the feed with version lower than provided.
	// Returns number of deleted parameters.
	DeleteOldParameters(
		ctx context.Context,
		feedID int,
		version int64,
		batchSize uint,
	) (deletedParameters int32, err error)
}

// Option is custom configuration of Ingestor.
type Option func(p *Ingestor)

// Ingestor fetches, decodes and normalizes feed documents and persists
// the normalized parameters with run bookkeeping. Each ingestion is
// self-contained and shares no mutable state, independent feeds are safe
// to ingest concurrently.
type Ingestor struct {
	fetcher    Fetcher
	decoder    Decoder
	normalizer Normalizer
	projector  Projector
	storage    Storage
	batchSize  uint
	clock      Clock
}

// NewIngestor returns new Ingestor.
func NewIngestor(
	fetcher Fetcher,
	decoder Decoder,
	normalizer Normalizer,
	projector Projector,
	storage Storage,
	batchSize uint,
	ops ...Option,
) *Ingestor {
	ing := &Ingestor{
		fetcher:    fetcher,
		decoder:    decoder,
		normalizer: normalizer,
		projector:  projector,
		storage:    storage,
		batchSize:  batchSize,
		clock:      systemClock{},
	}

	for _, op := range ops {
		op(ing)
	}

	return ing
}

// Ingest parses the feed document from the command and persists its
// normalized parameters. The normalizer hands over a complete list or
// nothing, a structural failure leaves no partial writes.
func (p Ingestor) Ingest(ctx context.Context, cmd models.ParseCommand) error {
	version := p.clock.Timestamp()

	run, err := p.storage.StartRun(ctx, cmd.FeedURL, version)
	if err != nil {
		return fmt.Errorf("can't start ingestion: %w", err)
	}

	structure, err := p.loadStructure(ctx, cmd.FeedURL)
	if err != nil {
		return p.finishIngestion(ctx, run, err)
	}

	parameters := p.normalizer.Normalize(structure)

	created, updated, err := p.storage.UpsertParameters(
		ctx, parameters, run.FeedID, version, cmd.TemplateID, cmd.StoreID,
	)
	run.CreatedParameters = &created
	run.UpdatedParameters = &updated

	if err != nil {
		return p.finishIngestion(ctx, run, fmt.Errorf("can't persist parameters: %w", err))
	}

	deleted, err := p.storage.DeleteOldParameters(ctx, run.FeedID, version, p.batchSize)
	run.DeletedParameters = &deleted

	if err != nil {
		return p.finishIngestion(ctx, run, fmt.Errorf("can't delete outdated parameters: %w", err))
	}

	return p.finishIngestion(ctx, run, nil)
}

// Preview fetches and decodes the feed and projects it into a display
// tree with aggregate statistics. Nothing is persisted, cancelling at
// this stage leaves zero side effects.
func (p Ingestor) Preview(ctx context.Context, feedURL string) (*models.PreviewNode, *models.PreviewStats, error) {
	structure, err := p.loadStructure(ctx, feedURL)
	if err != nil {
		return nil, nil, err
	}

	tree := p.projector.Project(structure)
	stats := p.projector.Stats(&tree)

	return &tree, &stats, nil
}

func (p Ingestor) loadStructure(ctx context.Context, feedURL string) (*models.ParsedStructure, error) {
	feedFile, format, err := p.fetcher.FetchFeed(ctx, feedURL)
	if err != nil {
		return nil, fmt.Errorf("can't fetch feed file: %w", err)
	}
	defer feedFile.Close()

	content, err := io.ReadAll(feedFile)
	if err != nil {
		return nil, fmt.Errorf("can't read feed file: %w", err)
	}

	structure, err := p.decoder.Decode(format, content)
	if err != nil {
		return nil, fmt.Errorf("can't decode feed file: %w", err)
	}

	return structure, nil
}

func (p Ingestor) finishIngestion(ctx context.Context, run *models.Run, status error) error {
	if status != nil {
		run.StatusMessage = lo.ToPtr(status.Error())
	}
	run.IsSuccess = lo.ToPtr(status == nil)
	run.FinishedAt = p.clock.Now()

	err := p.storage.FinishRun(ctx, run)
	if err != nil && status == nil {
		return fmt.Errorf("can't finish ingestion: %w", err)
	}

	if err != nil && status != nil {
		return fmt.Errorf("can't finish failed ingestion: %w (fail reason: %w)", err, status)
	}

	return status
}

// WithClock sets Ingestor's custom Clock.
func WithClock(c Clock) Option {
	return func(p *Ingestor) {
		p.clock = c
	}
}
