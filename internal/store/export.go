package store

import (
	"context"
	"database/sql"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/FocuswithJustin/Versicle/core/canon"
	"github.com/FocuswithJustin/Versicle/core/errors"
	"github.com/FocuswithJustin/Versicle/core/locale"
	"github.com/FocuswithJustin/Versicle/internal/logging"
)

const schema = `
CREATE TABLE IF NOT EXISTS meta (
	key TEXT PRIMARY KEY,
	value TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS books (
	ordinal INTEGER PRIMARY KEY,
	osis TEXT NOT NULL UNIQUE,
	name TEXT NOT NULL,
	testament TEXT NOT NULL,
	chapters INTEGER NOT NULL
);
CREATE TABLE IF NOT EXISTS verses (
	book INTEGER NOT NULL,
	chapter INTEGER NOT NULL,
	verse INTEGER NOT NULL,
	position INTEGER NOT NULL,
	PRIMARY KEY (book, chapter, verse),
	FOREIGN KEY (book) REFERENCES books(ordinal)
);
CREATE TABLE IF NOT EXISTS names (
	book INTEGER NOT NULL,
	lang TEXT NOT NULL,
	form TEXT NOT NULL,
	rank INTEGER NOT NULL,
	name TEXT NOT NULL,
	PRIMARY KEY (book, lang, form, rank),
	FOREIGN KEY (book) REFERENCES books(ordinal)
);
CREATE INDEX IF NOT EXISTS idx_verses_position ON verses(position);
CREATE INDEX IF NOT EXISTS idx_names_lookup ON names(lang, name);
`

// ExportSQLite writes the canon and the named locales to a SQLite database
// at path, creating it when absent. Passing no codes exports every
// registered language. It returns the run ID recorded in the meta table.
func ExportSQLite(ctx context.Context, path string, codes []string) (string, error) {
	db, err := Open(path)
	if err != nil {
		return "", errors.Wrap(err, "opening database")
	}
	defer db.Close()
	return Export(ctx, db, codes)
}

// Export writes the canon and locale tables through an open handle. Rows
// are written with INSERT OR REPLACE inside one transaction, so exporting
// into an existing database refreshes it.
func Export(ctx context.Context, db *sql.DB, codes []string) (string, error) {
	if len(codes) == 0 {
		codes = locale.Codes()
	}
	langs := make([]*locale.Language, 0, len(codes))
	for _, code := range codes {
		lang, err := locale.Lookup(code)
		if err != nil {
			return "", err
		}
		langs = append(langs, lang)
	}

	if _, err := db.ExecContext(ctx, schema); err != nil {
		return "", errors.Wrap(err, "creating schema")
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return "", errors.Wrap(err, "beginning transaction")
	}
	defer tx.Rollback()

	if err := insertBooks(ctx, tx); err != nil {
		return "", err
	}
	if err := insertVerses(ctx, tx); err != nil {
		return "", err
	}
	if err := insertNames(ctx, tx, langs); err != nil {
		return "", err
	}

	runID := uuid.NewString()
	if err := insertMeta(ctx, tx, runID); err != nil {
		return "", err
	}

	if err := tx.Commit(); err != nil {
		return "", errors.Wrap(err, "committing export")
	}
	logging.Info("export_complete",
		"target", "sqlite",
		"run_id", runID,
		"languages", len(langs),
	)
	return runID, nil
}

func insertBooks(ctx context.Context, tx *sql.Tx) error {
	stmt, err := tx.PrepareContext(ctx,
		"INSERT OR REPLACE INTO books (ordinal, osis, name, testament, chapters) VALUES (?, ?, ?, ?, ?)")
	if err != nil {
		return errors.Wrap(err, "preparing books insert")
	}
	defer stmt.Close()

	for _, b := range canon.Books() {
		chapters, _ := canon.ChapterCount(b)
		if _, err := stmt.ExecContext(ctx, b.Ordinal(), b.OSIS(), b.String(), b.Testament().String(), chapters); err != nil {
			return errors.Wrapf(err, "inserting book %s", b.OSIS())
		}
	}
	return nil
}

func insertVerses(ctx context.Context, tx *sql.Tx) error {
	stmt, err := tx.PrepareContext(ctx,
		"INSERT OR REPLACE INTO verses (book, chapter, verse, position) VALUES (?, ?, ?, ?)")
	if err != nil {
		return errors.Wrap(err, "preparing verses insert")
	}
	defer stmt.Close()

	for i, b := range canon.Books() {
		chapters, _ := canon.ChapterCount(b)
		for c := 1; c <= chapters; c++ {
			verses, _ := canon.VerseCount(b, c)
			for v := 1; v <= verses; v++ {
				pos := canon.VersePosition(b, c, v)
				if _, err := stmt.ExecContext(ctx, b.Ordinal(), c, v, pos); err != nil {
					return errors.Wrapf(err, "inserting %s.%d.%d", b.OSIS(), c, v)
				}
			}
		}
		logging.ExportProgress("sqlite", b.String(), i+1, canon.BookCount)
	}
	return nil
}

func insertNames(ctx context.Context, tx *sql.Tx, langs []*locale.Language) error {
	stmt, err := tx.PrepareContext(ctx,
		"INSERT OR REPLACE INTO names (book, lang, form, rank, name) VALUES (?, ?, ?, ?, ?)")
	if err != nil {
		return errors.Wrap(err, "preparing names insert")
	}
	defer stmt.Close()

	for _, lang := range langs {
		for _, b := range canon.Books() {
			for rank, name := range lang.Long[b] {
				if _, err := stmt.ExecContext(ctx, b.Ordinal(), lang.Code, locale.FormLong.String(), rank, name); err != nil {
					return errors.Wrapf(err, "inserting %s name for %s", lang.Code, b.OSIS())
				}
			}
			for rank, name := range lang.Short[b] {
				if _, err := stmt.ExecContext(ctx, b.Ordinal(), lang.Code, locale.FormShort.String(), rank, name); err != nil {
					return errors.Wrapf(err, "inserting %s name for %s", lang.Code, b.OSIS())
				}
			}
		}
	}
	return nil
}

func insertMeta(ctx context.Context, tx *sql.Tx, runID string) error {
	stmt, err := tx.PrepareContext(ctx,
		"INSERT OR REPLACE INTO meta (key, value) VALUES (?, ?)")
	if err != nil {
		return errors.Wrap(err, "preparing meta insert")
	}
	defer stmt.Close()

	rows := [][2]string{
		{"schema_version", "1"},
		{"run_id", runID},
		{"created_at", time.Now().UTC().Format(time.RFC3339)},
		{"canon_fingerprint", canon.Fingerprint()},
		{"books", strconv.Itoa(canon.BookCount)},
		{"chapters", strconv.Itoa(canon.TotalChapters())},
		{"verses", strconv.Itoa(canon.TotalVerses())},
	}
	for _, kv := range rows {
		if _, err := stmt.ExecContext(ctx, kv[0], kv[1]); err != nil {
			return errors.Wrapf(err, "inserting meta %s", kv[0])
		}
	}
	return nil
}
