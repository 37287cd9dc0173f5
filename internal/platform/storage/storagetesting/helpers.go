package storagetesting

import (
	"database/sql"
	"errors"
	"os"
	"testing"

	pgmodels "github.com/supplyhub/yml-feed-parser/internal/platform/storage/gen/postgres/public/model"
	"github.com/supplyhub/yml-feed-parser/internal/platform/models"
	"github.com/supplyhub/yml-feed-parser/internal/platform/storage/gen/postgres/public/table"
	pg "github.com/go-jet/jet/v2/postgres"
	"github.com/go-jet/jet/v2/qrm"

	_ "github.com/lib/pq"
)

// Open opens connection to DB.
func Open(t *testing.T) *sql.DB {
	t.Helper()

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		t.Fatal("please provide database URL via DATABASE_URL environment variable")
	}

	db, err := sql.Open("postgres", dbURL)
	if err != nil {
		t.Fatalf("can't open connection to %q: %s", dbURL, err)
	}

	return db
}

// BeginTx begins DB transaction. Returns function to roll it back.
func BeginTx(t *testing.T, db *sql.DB) (*sql.Tx, func()) {
	t.Helper()

	tx, err := db.Begin()
	if err != nil {
		t.Fatal("begin transaction", err)
	}

	rollback := func() {
		if err := tx.Rollback(); err != nil {
			t.Fatal("can't rollback transaction", err)
		}
	}

	return tx, rollback
}

// InsertFeeds is a helper test function to insert feeds.
func InsertFeeds(t *testing.T, exc qrm.Executable, feeds ...pgmodels.Feed) {
	t.Helper()

	if len(feeds) == 0 {
		return
	}

	toInsert := make([]pgmodels.Feed, 0, len(feeds))
	toInsert = append(toInsert, feeds...)

	_, err := table.Feed.INSERT(table.Feed.AllColumns).MODELS(toInsert).Exec(exc)
	if err != nil {
		t.Fatal("can't insert feeds", err)
	}
}

// InsertRuns is a helper test function to insert runs.
func InsertRuns(t *testing.T, exc qrm.Executable, runs ...pgmodels.Run) {
	t.Helper()

	if len(runs) == 0 {
		return
	}

	toInsert := make([]pgmodels.Run, 0, len(runs))
	toInsert = append(toInsert, runs...)

	_, err := table.Run.INSERT(table.Run.AllColumns).MODELS(toInsert).Exec(exc)
	if err != nil {
		t.Fatal("can't insert runs", err)
	}
}

// InsertParameters is a helper test function to insert parameters.
func InsertParameters(t *testing.T, exc qrm.Executable, parameters ...pgmodels.Parameter) {
	t.Helper()

	if len(parameters) == 0 {
		return
	}

	toInsert := make([]pgmodels.Parameter, 0, len(parameters))
	toInsert = append(toInsert, parameters...)

	_, err := table.Parameter.INSERT(table.Parameter.AllColumns.Except(table.Parameter.ID)).MODELS(toInsert).Exec(exc)
	if err != nil {
		t.Fatal("can't insert parameters", err)
	}
}

// GetRuns is a helper test function to get all runs.
func GetRuns(t *testing.T, queryable qrm.Queryable) []pgmodels.Run {
	t.Helper()

	runs := []pgmodels.Run{}
	err := table.Run.SELECT(table.Run.AllColumns).
		WHERE(table.Run.ID.IS_NOT_NULL()).
		Query(queryable, &runs)
	if err != nil {
		t.Fatal("can't get runs", err)
	}

	return runs
}

// GetFeedID is a helper test function to get feed ID by feed URL.
func GetFeedID(t *testing.T, queryable qrm.Queryable, feedURL string) int {
	t.Helper()

	var feed pgmodels.Feed
	err := table.Feed.SELECT(table.Feed.ID).
		WHERE(table.Feed.URL.EQ(pg.String(feedURL))).
		Query(queryable, &feed)

	if err != nil && !errors.Is(err, qrm.ErrNoRows) {
		t.Fatal("can't get feed ID", err)
	}

	return int(feed.ID)
}

// GetLatestRun is a helper test function to get latest run by feed ID.
func GetLatestRun(t *testing.T, queryable qrm.Queryable, feedID int) *models.Run {
	t.Helper()

	var runs []pgmodels.Run
	err := table.Run.SELECT(table.Run.AllColumns).
		WHERE(table.Run.FeedID.EQ(pg.Int32(int32(feedID)))).
		ORDER_BY(table.Run.CreatedAt.DESC()).
		LIMIT(1).
		Query(queryable, &runs)

	if err != nil || len(runs) == 0 {
		t.Fatal("can't get latest run", err)
	}

	return &models.Run{
		ID:                int(runs[0].ID),
		FeedID:            int(runs[0].FeedID),
		CreatedAt:         runs[0].CreatedAt,
		FinishedAt:        runs[0].FinishedAt,
		IsSuccess:         runs[0].Success,
		StatusMessage:     runs[0].StatusMessage,
		CreatedParameters: runs[0].CreatedParameters,
		UpdatedParameters: runs[0].UpdatedParameters,
		DeletedParameters: runs[0].DeletedParameters,
		ParametersVersion: runs[0].ParametersVersion,
	}
}

// GetParametersByFeedID is a helper test function to get parameters by feed ID.
func GetParametersByFeedID(t *testing.T, queryable qrm.Queryable, feedID int) []pgmodels.Parameter {
	t.Helper()

	parameters := []pgmodels.Parameter{}
	err := table.Parameter.SELECT(table.Parameter.AllColumns).
		WHERE(pg.AND(
			table.Parameter.ID.IS_NOT_NULL(),
			table.Parameter.FeedID.EQ(pg.Int32(int32(feedID))),
		)).
		Query(queryable, &parameters)
	if err != nil {
		t.Fatal("can't get parameters", err)
	}

	return parameters
}

// CleanupData is a helper test function to delete all rows.
func CleanupData(t *testing.T, exc qrm.Executable) {
	t.Helper()

	_, err := table.Parameter.DELETE().WHERE(table.Parameter.ID.IS_NOT_NULL()).Exec(exc)
	if err != nil {
		t.Fatal("can't delete parameters data", err)
	}

	_, err = table.Run.DELETE().WHERE(table.Run.ID.IS_NOT_NULL()).Exec(exc)
	if err != nil {
		t.Fatal("can't delete runs data", err)
	}

	_, err = table.Feed.DELETE().WHERE(table.Feed.ID.IS_NOT_NULL()).Exec(exc)
	if err != nil {
		t.Fatal("can't delete feeds data", err)
	}
}
