package store

import (
	"encoding/json"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/ulikunitz/xz"

	"github.com/FocuswithJustin/Versicle/core/canon"
	"github.com/FocuswithJustin/Versicle/core/errors"
	"github.com/FocuswithJustin/Versicle/internal/logging"
)

// jsonlMeta is the first line of a JSONL export.
type jsonlMeta struct {
	Type        string `json:"type"`
	RunID       string `json:"run_id"`
	CreatedAt   string `json:"created_at"`
	Fingerprint string `json:"canon_fingerprint"`
	Books       int    `json:"books"`
	Chapters    int    `json:"chapters"`
	Verses      int    `json:"verses"`
}

// jsonlVerse is one verse line of a JSONL export.
type jsonlVerse struct {
	Type     string `json:"type"`
	Book     string `json:"book"`
	Ordinal  int    `json:"ordinal"`
	Chapter  int    `json:"chapter"`
	Verse    int    `json:"verse"`
	Position int    `json:"position"`
}

// ExportJSONL streams the canon as one JSON object per line: a meta header
// followed by every verse in canonical order. With compress set the whole
// stream is xz-encoded. It returns the run ID written to the meta line.
func ExportJSONL(w io.Writer, compress bool) (string, error) {
	out := w
	var xzw *xz.Writer
	if compress {
		var err error
		xzw, err = xz.NewWriter(w)
		if err != nil {
			return "", errors.Wrap(err, "starting xz stream")
		}
		out = xzw
	}

	runID := uuid.NewString()
	enc := json.NewEncoder(out)
	if err := enc.Encode(jsonlMeta{
		Type:        "meta",
		RunID:       runID,
		CreatedAt:   time.Now().UTC().Format(time.RFC3339),
		Fingerprint: canon.Fingerprint(),
		Books:       canon.BookCount,
		Chapters:    canon.TotalChapters(),
		Verses:      canon.TotalVerses(),
	}); err != nil {
		return "", errors.Wrap(err, "writing meta line")
	}

	for i, b := range canon.Books() {
		chapters, _ := canon.ChapterCount(b)
		for c := 1; c <= chapters; c++ {
			verses, _ := canon.VerseCount(b, c)
			for v := 1; v <= verses; v++ {
				line := jsonlVerse{
					Type:     "verse",
					Book:     b.OSIS(),
					Ordinal:  b.Ordinal(),
					Chapter:  c,
					Verse:    v,
					Position: canon.VersePosition(b, c, v),
				}
				if err := enc.Encode(line); err != nil {
					return "", errors.Wrapf(err, "writing %s.%d.%d", b.OSIS(), c, v)
				}
			}
		}
		logging.ExportProgress("jsonl", b.String(), i+1, canon.BookCount)
	}

	if xzw != nil {
		if err := xzw.Close(); err != nil {
			return "", errors.Wrap(err, "closing xz stream")
		}
	}
	return runID, nil
}
