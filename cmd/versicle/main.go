// Command versicle is the CLI tool for the Versicle reference engine.
// It parses, formats, translates, and expands Bible references across
// languages, exports the canon to SQLite or JSON lines, and serves the
// REST API.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/FocuswithJustin/Versicle/core/canon"
	"github.com/FocuswithJustin/Versicle/core/locale"
	"github.com/FocuswithJustin/Versicle/core/ref"
	"github.com/FocuswithJustin/Versicle/core/reftext"
	"github.com/FocuswithJustin/Versicle/internal/logging"
	"github.com/FocuswithJustin/Versicle/internal/server"
	"github.com/FocuswithJustin/Versicle/internal/store"
)

const version = "0.1.0"

// CLI defines the command-line interface for versicle.
var CLI struct {
	// Global flags
	Lang      string `help:"Working language code (wins over the config file)" short:"l"`
	Config    string `help:"Config file path" type:"path"`
	LogLevel  string `name:"log-level" help:"Log level" enum:"debug,info,warn,error" default:"info"`
	LogFormat string `name:"log-format" help:"Log output format" enum:"text,json" default:"text"`
	JSON      bool   `help:"Output results as JSON" short:"j"`

	// Command groups (noun-first organization)
	Parse     ParseCmd       `cmd:"" help:"Parse a reference and print its canonical form"`
	Format    FormatCmd      `cmd:"" help:"Format a dotted OSIS reference in a language"`
	Translate TranslateCmd   `cmd:"" help:"Reformat a reference from one language in another"`
	Validate  ValidateCmd    `cmd:"" help:"Check whether text is a valid reference"`
	Expand    ExpandCmd      `cmd:"" help:"Enumerate the points a reference covers"`
	Books     BooksCmd       `cmd:"" help:"List the canonical books with their names"`
	Languages LanguagesGroup `cmd:"" help:"Language registry operations"`
	Canon     CanonGroup     `cmd:"" help:"Canonical index information"`
	Export    ExportGroup    `cmd:"" help:"Export the canon to external formats"`
	Serve     ServeCmd       `cmd:"" help:"Start the REST API server"`
	Version   VersionCmd     `cmd:"" help:"Print version information"`
}

// LanguagesGroup contains language registry operations.
type LanguagesGroup struct {
	List   LanguagesListCmd   `cmd:"" help:"List registered languages"`
	Import LanguagesImportCmd `cmd:"" help:"Import book names from a Zefania XML document"`
}

// CanonGroup contains canonical index operations.
type CanonGroup struct {
	Info        CanonInfoCmd        `cmd:"" help:"Show the shape of the canon"`
	Fingerprint CanonFingerprintCmd `cmd:"" help:"Print the canon fingerprint"`
}

// ExportGroup contains canon export operations.
type ExportGroup struct {
	Sqlite ExportSQLiteCmd `cmd:"" help:"Export canon and locales to a SQLite database"`
	Jsonl  ExportJSONLCmd  `cmd:"" help:"Export the canon as JSON lines"`
}

// ParseCmd parses reference text and prints its canonical form.
type ParseCmd struct {
	Text []string `arg:"" required:"" help:"Reference text, e.g. \"John 3:16-18\""`
}

func (c *ParseCmd) Run() error {
	cfg, err := getConfig()
	if err != nil {
		return err
	}
	text := strings.Join(c.Text, " ")

	r, err := reftext.Parse(text, getLang(cfg))
	if err != nil {
		return err
	}

	if CLI.JSON {
		return printJSON(struct {
			Text        string    `json:"text"`
			OSIS        string    `json:"osis"`
			Granularity string    `json:"granularity"`
			Points      int       `json:"points"`
			Range       ref.Range `json:"range"`
		}{text, r.String(), r.Granularity().String(), r.Count(), r})
	}

	fmt.Printf("Parsed: %s\n", text)
	fmt.Printf("  OSIS: %s\n", r)
	fmt.Printf("  Granularity: %s\n", r.Granularity())
	fmt.Printf("  Points: %d\n", r.Count())
	return nil
}

// FormatCmd formats a dotted OSIS reference in a target language.
type FormatCmd struct {
	Ref   string `arg:"" help:"Dotted OSIS reference, e.g. John.3.16-John.3.18"`
	Short bool   `short:"s" help:"Use abbreviated book names"`
}

func (c *FormatCmd) Run() error {
	cfg, err := getConfig()
	if err != nil {
		return err
	}

	r, err := ref.ParseOSIS(c.Ref)
	if err != nil {
		return err
	}
	text, err := renderRange(r, getLang(cfg), c.Short)
	if err != nil {
		return err
	}

	if CLI.JSON {
		return printJSON(struct {
			Text string `json:"text"`
			OSIS string `json:"osis"`
		}{text, r.String()})
	}

	fmt.Println(text)
	return nil
}

// TranslateCmd reparses reference text from one language and reformats it
// in another.
type TranslateCmd struct {
	Text  []string `arg:"" required:"" help:"Reference text in the source language"`
	From  string   `required:"" help:"Source language code"`
	To    string   `required:"" help:"Target language code"`
	Short bool     `short:"s" help:"Use abbreviated book names"`
}

func (c *TranslateCmd) Run() error {
	text := strings.Join(c.Text, " ")

	var out string
	var err error
	if c.Short {
		r, perr := reftext.Parse(text, c.From)
		if perr != nil {
			return perr
		}
		out, err = reftext.FormatShort(r, c.To)
	} else {
		out, err = reftext.Translate(text, c.From, c.To)
	}
	if err != nil {
		return err
	}

	if CLI.JSON {
		return printJSON(struct {
			Text string `json:"text"`
			From string `json:"from"`
			To   string `json:"to"`
		}{out, c.From, c.To})
	}

	fmt.Println(out)
	return nil
}

// ValidateCmd checks whether text parses as a reference. A failure is
// reported through the exit status.
type ValidateCmd struct {
	Text []string `arg:"" required:"" help:"Reference text to check"`
}

func (c *ValidateCmd) Run() error {
	cfg, err := getConfig()
	if err != nil {
		return err
	}
	text := strings.Join(c.Text, " ")

	r, err := reftext.Parse(text, getLang(cfg))
	if err != nil {
		return err
	}

	if CLI.JSON {
		return printJSON(struct {
			Valid bool   `json:"valid"`
			OSIS  string `json:"osis"`
		}{true, r.String()})
	}

	fmt.Printf("Valid: %s\n", r)
	return nil
}

// ExpandCmd enumerates the points a reference covers, one per line.
type ExpandCmd struct {
	Text   []string `arg:"" required:"" help:"Reference text, or a dotted OSIS reference"`
	Verses bool     `help:"Expand to verse granularity first"`
	Limit  int      `help:"Print at most this many points (0 = all)"`
}

func (c *ExpandCmd) Run() error {
	cfg, err := getConfig()
	if err != nil {
		return err
	}
	text := strings.Join(c.Text, " ")

	r, err := parseAny(text, getLang(cfg))
	if err != nil {
		return err
	}
	if c.Verses {
		r = r.VerseRange()
	}
	total := r.Count()

	if CLI.JSON {
		points := make([]string, 0, limitOrAll(c.Limit, total))
		for p := range r.Points() {
			if c.Limit > 0 && len(points) == c.Limit {
				break
			}
			points = append(points, p.String())
		}
		return printJSON(struct {
			OSIS        string   `json:"osis"`
			Granularity string   `json:"granularity"`
			Total       int      `json:"total"`
			Points      []string `json:"points"`
		}{r.String(), r.Granularity().String(), total, points})
	}

	printed := 0
	for p := range r.Points() {
		if c.Limit > 0 && printed == c.Limit {
			break
		}
		fmt.Println(p)
		printed++
	}
	if printed < total {
		fmt.Printf("... %d more\n", total-printed)
	}
	fmt.Printf("Total: %d %s point(s)\n", total, r.Granularity())
	return nil
}

// parseAny parses reference text in the given language, accepting the
// dotted OSIS form as a fallback.
func parseAny(text, code string) (ref.Range, error) {
	r, err := reftext.Parse(text, code)
	if err == nil {
		return r, nil
	}
	if osisRange, oerr := ref.ParseOSIS(text); oerr == nil {
		return osisRange, nil
	}
	return ref.Range{}, err
}

func limitOrAll(limit, total int) int {
	if limit > 0 && limit < total {
		return limit
	}
	return total
}

// BooksCmd lists the canonical books with their localized names.
type BooksCmd struct{}

func (c *BooksCmd) Run() error {
	cfg, err := getConfig()
	if err != nil {
		return err
	}
	lang, err := locale.Lookup(getLang(cfg))
	if err != nil {
		return err
	}

	type bookRow struct {
		Ordinal   int    `json:"ordinal"`
		OSIS      string `json:"osis"`
		Name      string `json:"name"`
		Short     string `json:"short"`
		Testament string `json:"testament"`
		Chapters  int    `json:"chapters"`
	}
	rows := make([]bookRow, 0, canon.BookCount)
	for _, b := range canon.Books() {
		long, err := lang.DisplayName(b, locale.FormLong)
		if err != nil {
			return err
		}
		short, err := lang.DisplayName(b, locale.FormShort)
		if err != nil {
			return err
		}
		chapters, err := canon.ChapterCount(b)
		if err != nil {
			return err
		}
		rows = append(rows, bookRow{b.Ordinal(), b.OSIS(), long, short, b.Testament().String(), chapters})
	}

	if CLI.JSON {
		return printJSON(rows)
	}

	fmt.Printf("%-4s %-8s %-28s %-12s %-3s %s\n", "ORD", "OSIS", "NAME", "SHORT", "TST", "CHAPTERS")
	for _, row := range rows {
		fmt.Printf("%-4d %-8s %-28s %-12s %-3s %d\n", row.Ordinal, row.OSIS, row.Name, row.Short, row.Testament, row.Chapters)
	}
	fmt.Printf("\nTotal: %d books\n", len(rows))
	return nil
}

// LanguagesListCmd lists the registered languages and their delimiters.
type LanguagesListCmd struct{}

func (c *LanguagesListCmd) Run() error {
	if _, err := getConfig(); err != nil {
		return err
	}

	type langRow struct {
		Code             string   `json:"code"`
		ChapterVerseSeps []string `json:"chapter_verse_separators"`
		RangeSeps        []string `json:"range_separators"`
		SpaceAfterBook   bool     `json:"space_after_book"`
	}
	rows := make([]langRow, 0, len(locale.Codes()))
	for _, code := range locale.Codes() {
		l, err := locale.Lookup(code)
		if err != nil {
			return err
		}
		rows = append(rows, langRow{l.Code, l.ChapterVerseSeps, l.RangeSeps, l.SpaceAfterBook})
	}

	if CLI.JSON {
		return printJSON(rows)
	}

	fmt.Printf("%-8s %-16s %-12s %s\n", "CODE", "CHAPTER:VERSE", "RANGE", "BOOK SPACE")
	for _, row := range rows {
		space := "yes"
		if !row.SpaceAfterBook {
			space = "no"
		}
		fmt.Printf("%-8s %-16s %-12s %s\n", row.Code, strings.Join(row.ChapterVerseSeps, " "), strings.Join(row.RangeSeps, " "), space)
	}
	fmt.Printf("\nTotal: %d languages\n", len(rows))
	return nil
}

// LanguagesImportCmd imports book names from a Zefania XML document,
// registering a new language or extending an existing one with aliases.
type LanguagesImportCmd struct {
	Path string `arg:"" help:"Zefania XML book names document" type:"existingfile"`
	Code string `required:"" help:"Language code to register or extend"`
	Base string `default:"en" help:"Language whose delimiters a new registration copies"`
}

func (c *LanguagesImportCmd) Run() error {
	if _, err := getConfig(); err != nil {
		return err
	}

	f, err := os.Open(c.Path)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := locale.LoadNamesXML(f, c.Code, c.Base); err != nil {
		return err
	}
	logging.LocaleLoaded(c.Code, c.Path)

	if CLI.JSON {
		return printJSON(struct {
			Code   string `json:"code"`
			Source string `json:"source"`
		}{c.Code, c.Path})
	}

	fmt.Printf("Imported: %s\n", c.Path)
	fmt.Printf("  Language: %s\n", c.Code)
	return nil
}

// CanonInfoCmd shows the shape of the canonical index.
type CanonInfoCmd struct{}

func (c *CanonInfoCmd) Run() error {
	if CLI.JSON {
		return printJSON(struct {
			Books       int    `json:"books"`
			Chapters    int    `json:"chapters"`
			Verses      int    `json:"verses"`
			Fingerprint string `json:"fingerprint"`
		}{canon.BookCount, canon.TotalChapters(), canon.TotalVerses(), canon.Fingerprint()})
	}

	fmt.Printf("Canon:\n")
	fmt.Printf("  Books: %d\n", canon.BookCount)
	fmt.Printf("  Chapters: %d\n", canon.TotalChapters())
	fmt.Printf("  Verses: %d\n", canon.TotalVerses())
	fmt.Printf("  Fingerprint: %s\n", canon.Fingerprint())
	return nil
}

// CanonFingerprintCmd prints the bare canon fingerprint.
type CanonFingerprintCmd struct{}

func (c *CanonFingerprintCmd) Run() error {
	fmt.Println(canon.Fingerprint())
	return nil
}

// ExportSQLiteCmd exports the canon and locales to a SQLite database.
type ExportSQLiteCmd struct {
	Out   string   `help:"Database path (default: config database)" type:"path"`
	Langs []string `help:"Language codes to include (default: all registered)"`
}

func (c *ExportSQLiteCmd) Run() error {
	cfg, err := getConfig()
	if err != nil {
		return err
	}
	path := c.Out
	if path == "" {
		path = cfg.Database
	}

	runID, err := store.ExportSQLite(context.Background(), path, c.Langs)
	if err != nil {
		return err
	}

	if CLI.JSON {
		return printJSON(struct {
			Path   string `json:"path"`
			Driver string `json:"driver"`
			Run    string `json:"run"`
		}{path, store.DriverName(), runID})
	}

	fmt.Printf("Exported: %s\n", path)
	fmt.Printf("  Driver: %s\n", store.DriverName())
	fmt.Printf("  Run: %s\n", runID)
	return nil
}

// ExportJSONLCmd exports the canon as JSON lines, optionally xz-compressed.
type ExportJSONLCmd struct {
	Out      string `help:"Output path (default: stdout)" type:"path"`
	Compress bool   `short:"z" help:"Compress the stream with xz"`
}

func (c *ExportJSONLCmd) Run() error {
	if _, err := getConfig(); err != nil {
		return err
	}

	w := os.Stdout
	if c.Out != "" {
		f, err := os.Create(c.Out)
		if err != nil {
			return err
		}
		defer f.Close()
		w = f
	}

	runID, err := store.ExportJSONL(w, c.Compress)
	if err != nil {
		return err
	}

	// Keep stdout clean when the stream itself went there.
	if c.Out != "" {
		fmt.Printf("Exported: %s\n", c.Out)
		fmt.Printf("  Run: %s\n", runID)
	}
	return nil
}

// ServeCmd starts the REST API server.
type ServeCmd struct {
	Port    int      `help:"HTTP server port (default: config listen address)"`
	Origins []string `help:"Allowed CORS origins (default: allow all)"`
}

func (c *ServeCmd) Run() error {
	cfg, err := getConfig()
	if err != nil {
		return err
	}
	port := c.Port
	if port == 0 {
		port = listenPort(cfg.Listen)
	}

	return server.Start(server.Config{
		Port:           port,
		AllowedOrigins: c.Origins,
	})
}

// VersionCmd prints version information.
type VersionCmd struct{}

func (c *VersionCmd) Run() error {
	fmt.Printf("versicle version %s\n", version)
	return nil
}

// Helper functions

// renderRange formats r in the named language, abbreviated when short is set.
func renderRange(r ref.Range, code string, short bool) (string, error) {
	if short {
		return reftext.FormatShort(r, code)
	}
	return reftext.Format(r, code)
}

func printJSON(v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}

func parseLogLevel(s string) logging.Level {
	switch s {
	case "debug":
		return logging.LevelDebug
	case "warn":
		return logging.LevelWarn
	case "error":
		return logging.LevelError
	default:
		return logging.LevelInfo
	}
}

func parseLogFormat(s string) logging.Format {
	if s == "json" {
		return logging.FormatJSON
	}
	return logging.FormatText
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("versicle"),
		kong.Description("Versicle - Bible reference parsing, formatting, and translation"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
	)
	logging.InitLogger(parseLogLevel(CLI.LogLevel), parseLogFormat(CLI.LogFormat))
	err := ctx.Run(ctx)
	ctx.FatalIfErrorf(err)
}
