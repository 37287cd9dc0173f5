package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/samber/lo"
	"github.com/supplyhub/yml-feed-parser/internal/platform"
	"github.com/supplyhub/yml-feed-parser/internal/platform/models"
	"github.com/supplyhub/yml-feed-parser/internal/platform/storage/gen/postgres/public/table"
	"golang.org/x/sync/errgroup"

	pg "github.com/go-jet/jet/v2/postgres"
	"github.com/go-jet/jet/v2/qrm"
	pgmodels "github.com/supplyhub/yml-feed-parser/internal/platform/storage/gen/postgres/public/model"
)

// Postgres is storage for feeds, runs and parameters.
type Postgres struct {
	db *sql.DB
}

// NewPostgres returns new Postgres.
func NewPostgres(db *sql.DB) Postgres {
	return Postgres{
		db: db,
	}
}

// StartRun creates new unfinished run in database and returns it.
// It returns ErrAlreadyRunning if previous run is not finished yet.
func (p Postgres) StartRun(ctx context.Context, feedURL string, version int64) (*models.Run, error) {
	run := &models.Run{
		ParametersVersion: version,
	}

	err := runInTransaction(ctx, p.db, func(tx *sql.Tx) error {
		feed, err := getFeed(ctx, tx, feedURL)
		if err != nil {
			return fmt.Errorf("can't get feed from database: %w", err)
		}

		run.FeedID = int(feed.ID)

		lastRun, err := getLastRun(ctx, tx, int64(feed.ID))

		if err != nil && !errors.Is(err, qrm.ErrNoRows) {
			return fmt.Errorf("can't get last run from database: %w", err)
		}

		if lastRun != nil && lastRun.FinishedAt == nil && lastRun.Success == nil {
			return platform.ErrAlreadyRunning
		}

		newRun := toDBRun(run)
		err = table.Run.INSERT(
			table.Run.ParametersVersion,
			table.Run.FeedID,
		).
			MODEL(newRun).
			RETURNING(table.Run.ID).
			QueryContext(ctx, tx, newRun)
		if err != nil {
			return fmt.Errorf("can't insert run into database: %w", err)
		}

		run.ID = int(newRun.ID)

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("can't add run: %w", err)
	}

	return run, nil
}

// FinishRun sets run as finished and updates run's statistics.
func (p Postgres) FinishRun(ctx context.Context, run *models.Run) error {
	columnList := table.Run.AllColumns.Except(table.Run.ID, table.Run.CreatedAt, table.Run.ParametersVersion)

	result, err := table.Run.UPDATE(columnList).
		MODEL(toDBRun(run)).
		WHERE(table.Run.ID.EQ(pg.Int32(int32(run.ID)))).
		ExecContext(ctx, p.db)
	if err != nil {
		return fmt.Errorf("can't update run: %w", err)
	}

	if rowsAffected, err := result.RowsAffected(); rowsAffected == 0 || err != nil {
		return fmt.Errorf("can't update run: %w", err)
	}

	return nil
}

// UpsertParameters upserts the whole parameter list in one transaction,
// keyed by (feed, name, xml path). Returns number of new parameters and
// number of updated parameters or error.
func (p Postgres) UpsertParameters(
	ctx context.Context,
	parameters []models.ParsedParameter,
	feedID int,
	version int64,
	templateID string,
	storeID string,
) (int32, int32, error) {
	if len(parameters) == 0 {
		return 0, 0, nil
	}

	createdNumber := lo.ToPtr(int32(0))
	updatedNumber := lo.ToPtr(int32(0))

	err := runInTransaction(ctx, p.db, func(tx *sql.Tx) error {
		existing, err := getExistingParameterKeys(ctx, tx, int64(feedID))
		if err != nil {
			return fmt.Errorf("can't get existing parameters: %w", err)
		}

		dbParameters := make([]pgmodels.Parameter, 0, len(parameters))
		for ix := range parameters {
			dbParam, err := ToDBParameter(&parameters[ix], int32(feedID), version, templateID, storeID)
			if err != nil {
				return err
			}
			dbParameters = append(dbParameters, *dbParam)

			if _, ok := existing[parameterKey(parameters[ix].Name, parameters[ix].XMLPath)]; ok {
				*updatedNumber++
			} else {
				*createdNumber++
			}
		}

		if err := upsertParameters(ctx, tx, dbParameters); err != nil {
			return fmt.Errorf("can't upsert parameters: %w", err)
		}

		return nil
	})
	if err != nil {
		return 0, 0, err
	}

	return *createdNumber, *updatedNumber, nil
}

// DeleteOldParameters updates DeletedAt field of feed parameters with version lower than provided.
// Returns number of deleted parameters or error.
func (p Postgres) DeleteOldParameters(ctx context.Context, feedID int, version int64, batchSize uint) (int32, error) {
	deletedNumber := int32(0)

	err := runInTransaction(ctx, p.db, func(tx *sql.Tx) error {
		toDelete := make(chan []int32)

		errGroup, egCtx := errgroup.WithContext(ctx)

		errGroup.Go(func() error {
			return getOutdatedParametersAsync(egCtx, p.db, int32(feedID), version, batchSize, toDelete)
		})

		errGroup.Go(func() error {
			deletedCount, err := deleteParametersAsync(egCtx, p.db, toDelete)
			if err == nil {
				atomic.AddInt32(&deletedNumber, int32(deletedCount))
			}
			return err
		})

		return errGroup.Wait()
	})
	if err != nil {
		return 0, err
	}

	return deletedNumber, nil
}

func parameterKey(name, xmlPath string) string {
	return name + "\x00" + xmlPath
}

func getExistingParameterKeys(ctx context.Context, db qrm.DB, feedID int64) (map[string]struct{}, error) {
	var parameters []pgmodels.Parameter
	err := table.Parameter.SELECT(table.Parameter.Name, table.Parameter.XMLPath).
		WHERE(table.Parameter.FeedID.EQ(pg.Int(feedID))).
		QueryContext(ctx, db, &parameters)
	if err != nil && !errors.Is(err, qrm.ErrNoRows) {
		return nil, err
	}

	existing := make(map[string]struct{}, len(parameters))
	for ix := range parameters {
		existing[parameterKey(parameters[ix].Name, parameters[ix].XMLPath)] = struct{}{}
	}

	return existing, nil
}

func upsertParameters(ctx context.Context, db qrm.DB, parameters []pgmodels.Parameter) error {
	if len(parameters) == 0 {
		return nil
	}

	columnList := table.Parameter.AllColumns.Except(table.Parameter.ID, table.Parameter.CreatedAt)

	excludedExpressions := make([]pg.Expression, 0, len(columnList)) // converting to expression
	for _, col := range table.Parameter.EXCLUDED.AllColumns.Except(table.Parameter.ID, table.Parameter.CreatedAt) {
		excludedExpressions = append(excludedExpressions, col)
	}

	_, err := table.Parameter.INSERT(columnList).
		MODELS(parameters).
		ON_CONFLICT(table.Parameter.FeedID, table.Parameter.Name, table.Parameter.XMLPath).
		DO_UPDATE(
			pg.SET(
				columnList.SET(pg.ROW(excludedExpressions...)),
			),
		).
		ExecContext(ctx, db)
	if err != nil {
		return fmt.Errorf("can't upsert parameters into database: %w", err)
	}

	return nil
}

func getFeed(ctx context.Context, db qrm.DB, url string) (*pgmodels.Feed, error) {
	var feed pgmodels.Feed
	err := table.Feed.SELECT(table.Feed.AllColumns).
		WHERE(table.Feed.URL.EQ(pg.String(url))).
		QueryContext(ctx, db, &feed)

	if errors.Is(err, qrm.ErrNoRows) {
		return insertFeed(ctx, db, url)
	}

	if err != nil {
		return nil, err
	}

	return &feed, nil
}

func insertFeed(ctx context.Context, db qrm.DB, url string) (*pgmodels.Feed, error) {
	feed := pgmodels.Feed{
		URL: url,
	}
	_, err := table.Feed.INSERT(table.Feed.URL).
		MODEL(pgmodels.Feed{
			URL: url,
		}).
		ExecContext(ctx, db)
	if err != nil {
		return nil, fmt.Errorf("can't add feed: %w", err)
	}

	err = table.Feed.SELECT(table.Feed.AllColumns).
		WHERE(table.Feed.URL.EQ(pg.String(url))).
		QueryContext(ctx, db, &feed)
	if err != nil {
		return nil, fmt.Errorf("can't get added feed: %w", err)
	}

	return &feed, nil
}

func getLastRun(ctx context.Context, db qrm.DB, feedID int64) (*pgmodels.Run, error) {
	var run pgmodels.Run
	err := table.Run.SELECT(
		table.Run.CreatedAt,
		table.Run.FinishedAt,
		table.Run.Success,
		table.Run.StatusMessage,
	).
		WHERE(table.Run.FeedID.EQ(pg.Int(feedID))).
		ORDER_BY(table.Run.CreatedAt.DESC()).
		LIMIT(1).
		QueryContext(ctx, db, &run)
	if err != nil {
		return nil, err
	}

	return &run, nil
}

func getOutdatedParametersAsync(
	ctx context.Context,
	db qrm.DB,
	feedID int32,
	version int64,
	batchSize uint,
	toDelete chan []int32,
) error {
	defer close(toDelete)
	previousID := int32(0)
	for {
		var parameters []pgmodels.Parameter
		err := table.Parameter.SELECT(table.Parameter.ID, table.Parameter.Version).
			WHERE(pg.AND(
				table.Parameter.FeedID.EQ(pg.Int32(feedID)),
				table.Parameter.Version.LT(pg.Int64(version)),
				table.Parameter.DeletedAt.IS_NULL(),
				table.Parameter.ID.GT(pg.Int64(int64(previousID))),
			)).
			ORDER_BY(table.Parameter.ID.ASC()).
			LIMIT(int64(batchSize)).
			QueryContext(ctx, db, &parameters)

		if errors.Is(err, qrm.ErrNoRows) || len(parameters) == 0 {
			return nil
		}

		if err != nil && !errors.Is(err, qrm.ErrNoRows) {
			return err
		}

		ids := make([]int32, 0, len(parameters))
		for ix := range parameters {
			ids = append(ids, parameters[ix].ID)
		}

		previousID = parameters[len(parameters)-1].ID

		select {
		case <-ctx.Done():
			return ctx.Err()
		case toDelete <- ids:
		}
	}
}

func deleteParametersAsync(ctx context.Context, db qrm.DB, toDelete chan []int32) (int, error) {
	deletedCount := 0
	now := time.Now()
	for batch := range toDelete {
		ids := make([]pg.Expression, 0, len(batch))
		for _, id := range batch {
			ids = append(ids, pg.Int32(id))
		}

		_, err := table.Parameter.UPDATE().
			SET(
				table.Parameter.DeletedAt.SET(pg.TimestampzT(now)),
			).
			WHERE(table.Parameter.ID.IN(ids...)).
			ExecContext(ctx, db)
		if err != nil {
			return deletedCount, err
		}
		deletedCount += len(batch)
	}
	return deletedCount, nil
}

func runInTransaction(ctx context.Context, db *sql.DB, fn func(tx *sql.Tx) error) error {
	var (
		tx  *sql.Tx
		err error
	)

	if tx, err = db.BeginTx(ctx, nil); err != nil {
		return fmt.Errorf("can't begin transaction: %w", err)
	}

	if err = fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("can't rollback transaction: %w (rollback reason: %w)", rbErr, err)
		}
		return err
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("can't commit transaction: %w", err)
	}

	return nil
}
