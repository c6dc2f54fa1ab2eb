package anki

import (
	"archive/zip"
	"crypto/sha1"
	"database/sql"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"codeberg.org/snonux/fonemas/internal"
)

const (
	// fieldSeparator joins note fields in the flds column
	fieldSeparator = "\x1f"
	// schemaVersion is the collection schema understood by Anki 2.1
	schemaVersion = 11
	// deckDescription is shown in Anki's deck overview
	deckDescription = "Spanish transcription cards created by fonemas"
)

// templates are the card types generated for every note
var templates = []struct {
	name  string
	front string
	back  string
}{
	{
		name: "Transcribe",
		front: `<div class="front">
<div class="sentence">{{Sentence}}</div>
</div>`,
		back: `{{FrontSide}}

<hr id="answer">

<div class="back">
<div class="phonology">/{{Phonology}}/</div>
<div class="phonetics">[{{Phonetics}}]</div>
<div class="sampa">{{SAMPA}}</div>
{{#Syllables}}
<div class="syllables">{{Syllables}}</div>
{{/Syllables}}
{{#Notes}}
<div class="notes">{{Notes}}</div>
{{/Notes}}
</div>`,
	},
	{
		name: "Read",
		front: `<div class="front">
<div class="phonetics">[{{Phonetics}}]</div>
</div>`,
		back: `{{FrontSide}}

<hr id="answer">

<div class="back">
<div class="sentence">{{Sentence}}</div>
{{#Notes}}
<div class="notes">{{Notes}}</div>
{{/Notes}}
</div>`,
	},
}

const cardCSS = `.card {
  font-family: "Noto Sans", "Doulos SIL", "Charis SIL", sans-serif;
  font-size: 22px;
  text-align: center;
  color: #333;
  background-color: white;
}

.front, .back {
  padding: 20px;
}

.sentence {
  font-size: 28px;
  font-weight: bold;
  color: #2c3e50;
  margin: 20px 0;
}

.phonology, .phonetics {
  font-size: 30px;
  color: #c0392b;
  margin: 12px 0;
}

.sampa, .syllables {
  font-family: monospace;
  font-size: 18px;
  color: #555;
  margin: 8px 0;
}

.notes {
  font-size: 16px;
  color: #7f8c8d;
  margin-top: 20px;
  font-style: italic;
}

hr#answer {
  margin: 30px 0;
  border: 0;
  border-top: 1px solid #ecf0f1;
}`

// APKGGenerator creates Anki package files (.apkg)
type APKGGenerator struct {
	deckName string
	deckID   int64
	modelID  int64
	cards    []Card
	now      func() time.Time
}

// NewAPKGGenerator creates a new APKG generator
func NewAPKGGenerator(deckName string) *APKGGenerator {
	now := time.Now().UnixMilli()
	return &APKGGenerator{
		deckName: deckName,
		deckID:   now,
		modelID:  now + 1,
		cards:    make([]Card, 0),
		now:      time.Now,
	}
}

// AddCard adds a card to the generator
func (g *APKGGenerator) AddCard(card Card) {
	g.cards = append(g.cards, card)
}

// GenerateAPKG writes the collection database and an empty media map into
// an .apkg zip file at outputPath.
func (g *APKGGenerator) GenerateAPKG(outputPath string) error {
	tempDir, err := os.MkdirTemp("", "fonemas_anki_*")
	if err != nil {
		return fmt.Errorf("failed to create temp directory: %w", err)
	}
	defer os.RemoveAll(tempDir)

	dbPath := filepath.Join(tempDir, "collection.anki2")
	if err := g.createDatabase(dbPath); err != nil {
		return fmt.Errorf("failed to create database: %w", err)
	}

	if dir := filepath.Dir(outputPath); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	if err := g.createZipPackage(dbPath, outputPath); err != nil {
		return fmt.Errorf("failed to create zip package: %w", err)
	}
	return nil
}

func (g *APKGGenerator) createDatabase(dbPath string) error {
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return err
	}
	defer db.Close()

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := createTables(tx); err != nil {
		return fmt.Errorf("failed to create tables: %w", err)
	}
	if err := g.insertCollection(tx); err != nil {
		return fmt.Errorf("failed to insert collection: %w", err)
	}
	if err := g.insertNotesAndCards(tx); err != nil {
		return fmt.Errorf("failed to insert notes and cards: %w", err)
	}
	return tx.Commit()
}

var schema = []string{
	`CREATE TABLE col (
		id integer PRIMARY KEY,
		crt integer NOT NULL,
		mod integer NOT NULL,
		scm integer NOT NULL,
		ver integer NOT NULL,
		dty integer NOT NULL,
		usn integer NOT NULL,
		ls integer NOT NULL,
		conf text NOT NULL,
		models text NOT NULL,
		decks text NOT NULL,
		dconf text NOT NULL,
		tags text NOT NULL
	)`,
	`CREATE TABLE notes (
		id integer PRIMARY KEY,
		guid text NOT NULL,
		mid integer NOT NULL,
		mod integer NOT NULL,
		usn integer NOT NULL,
		tags text NOT NULL,
		flds text NOT NULL,
		sfld text NOT NULL,
		csum integer NOT NULL,
		flags integer NOT NULL,
		data text NOT NULL
	)`,
	`CREATE TABLE cards (
		id integer PRIMARY KEY,
		nid integer NOT NULL,
		did integer NOT NULL,
		ord integer NOT NULL,
		mod integer NOT NULL,
		usn integer NOT NULL,
		type integer NOT NULL,
		queue integer NOT NULL,
		due integer NOT NULL,
		ivl integer NOT NULL,
		factor integer NOT NULL,
		reps integer NOT NULL,
		lapses integer NOT NULL,
		left integer NOT NULL,
		odue integer NOT NULL,
		odid integer NOT NULL,
		flags integer NOT NULL,
		data text NOT NULL
	)`,
	`CREATE TABLE revlog (
		id integer PRIMARY KEY,
		cid integer NOT NULL,
		usn integer NOT NULL,
		ease integer NOT NULL,
		ivl integer NOT NULL,
		lastIvl integer NOT NULL,
		factor integer NOT NULL,
		time integer NOT NULL,
		type integer NOT NULL
	)`,
	`CREATE TABLE graves (
		usn integer NOT NULL,
		oid integer NOT NULL,
		type integer NOT NULL
	)`,
	`CREATE INDEX ix_notes_csum ON notes (csum)`,
	`CREATE INDEX ix_notes_usn ON notes (usn)`,
	`CREATE INDEX ix_cards_usn ON cards (usn)`,
	`CREATE INDEX ix_cards_nid ON cards (nid)`,
	`CREATE INDEX ix_cards_sched ON cards (did, queue, due)`,
	`CREATE INDEX ix_revlog_usn ON revlog (usn)`,
	`CREATE INDEX ix_revlog_cid ON revlog (cid)`,
}

func createTables(tx *sql.Tx) error {
	for _, query := range schema {
		if _, err := tx.Exec(query); err != nil {
			return fmt.Errorf("failed to execute query: %w", err)
		}
	}
	return nil
}

// deckConfig describes a deck entry of the col.decks column
func deckConfig(id int64, name, desc string, mod int64) map[string]any {
	return map[string]any{
		"id":               id,
		"name":             name,
		"mod":              mod,
		"desc":             desc,
		"collapsed":        false,
		"dyn":              0,
		"conf":             1,
		"usn":              0,
		"newToday":         []int{0, 0},
		"revToday":         []int{0, 0},
		"lrnToday":         []int{0, 0},
		"timeToday":        []int{0, 0},
		"browserCollapsed": false,
		"extendNew":        10,
		"extendRev":        50,
	}
}

func (g *APKGGenerator) insertCollection(tx *sql.Tx) error {
	now := g.now().Unix()

	decks := map[string]any{
		"1":                             deckConfig(1, "Default", "", now),
		strconv.FormatInt(g.deckID, 10): deckConfig(g.deckID, g.deckName, deckDescription, now),
	}
	models := map[string]any{
		strconv.FormatInt(g.modelID, 10): g.noteType(now),
	}
	conf := map[string]any{
		"nextPos":       1,
		"estTimes":      true,
		"activeDecks":   []int64{1},
		"sortType":      "noteFld",
		"sortBackwards": false,
		"addToCur":      true,
		"curDeck":       1,
		"newSpread":     0,
		"dueCounts":     true,
		"collapseTime":  1200,
		"timeLim":       0,
		"schedVer":      1,
		"curModel":      strconv.FormatInt(g.modelID, 10),
		"dayLearnFirst": false,
	}
	dconf := map[string]any{
		"1": map[string]any{
			"id":   1,
			"name": "Default",
			"dyn":  0,
			"new": map[string]any{
				"delays":        []int{1, 10},
				"ints":          []int{1, 4, 7},
				"initialFactor": 2500,
				"perDay":        20,
				"order":         1,
				"bury":          true,
				"separate":      true,
			},
			"lapse": map[string]any{
				"delays":      []int{10},
				"mult":        0,
				"minInt":      1,
				"leechFails":  8,
				"leechAction": 0,
			},
			"rev": map[string]any{
				"perDay":   100,
				"ease4":    1.3,
				"fuzz":     0.05,
				"maxIvl":   36500,
				"ivlFct":   1,
				"bury":     true,
				"minSpace": 1,
			},
			"timer":    0,
			"maxTaken": 60,
			"usn":      0,
			"mod":      now,
			"autoplay": false,
			"replayq":  false,
		},
	}

	columns := make([]string, 0, 4)
	for _, v := range []any{conf, models, decks, dconf} {
		data, err := json.Marshal(v)
		if err != nil {
			return fmt.Errorf("failed to encode collection metadata: %w", err)
		}
		columns = append(columns, string(data))
	}

	_, err := tx.Exec(`INSERT INTO col VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		1,             // id
		now,           // crt
		now*1000,      // mod
		now*1000,      // scm
		schemaVersion, // ver
		0,             // dty
		0,             // usn
		0,             // ls
		columns[0],    // conf
		columns[1],    // models
		columns[2],    // decks
		columns[3],    // dconf
		"{}",          // tags
	)
	return err
}

// noteType returns the model entry of the col.models column
func (g *APKGGenerator) noteType(mod int64) map[string]any {
	flds := make([]map[string]any, len(fieldNames))
	for i, name := range fieldNames {
		size := 20
		if name == "Notes" || name == "SAMPA" || name == "Syllables" {
			size = 16
		}
		flds[i] = map[string]any{
			"name":   name,
			"ord":    i,
			"sticky": false,
			"rtl":    false,
			"font":   "Arial",
			"size":   size,
			"media":  []string{},
		}
	}

	tmpls := make([]map[string]any, len(templates))
	req := make([][]any, len(templates))
	for i, t := range templates {
		tmpls[i] = map[string]any{
			"name":  t.name,
			"ord":   i,
			"qfmt":  t.front,
			"afmt":  t.back,
			"did":   nil,
			"bqfmt": "",
			"bafmt": "",
		}
	}
	// Transcribe needs Sentence, Read needs Phonetics.
	req[0] = []any{0, "all", []int{0}}
	req[1] = []any{1, "all", []int{2}}

	return map[string]any{
		"id":    g.modelID,
		"name":  "Spanish transcription (fonemas)",
		"type":  0,
		"mod":   mod,
		"usn":   -1,
		"sortf": 0,
		"did":   g.deckID,
		"req":   req,
		"vers":  []int{},
		"tags":  []string{},
		"latexPre": `\documentclass[12pt]{article}
\special{papersize=3in,5in}
\usepackage[utf8]{inputenc}
\usepackage{amssymb,amsmath}
\pagestyle{empty}
\setlength{\parindent}{0in}
\begin{document}`,
		"latexPost": `\end{document}`,
		"flds":      flds,
		"tmpls":     tmpls,
		"css":       cardCSS,
	}
}

// checksum is Anki's duplicate detection value: the first 8 hex digits of
// the SHA1 of the sort field.
func checksum(sortField string) int64 {
	sum := sha1.Sum([]byte(sortField))
	return int64(binary.BigEndian.Uint32(sum[:4]))
}

func (g *APKGGenerator) insertNotesAndCards(tx *sql.Tx) error {
	noteStmt, err := tx.Prepare(`INSERT INTO notes VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare note statement: %w", err)
	}
	defer noteStmt.Close()

	cardStmt, err := tx.Prepare(`INSERT INTO cards VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare card statement: %w", err)
	}
	defer cardStmt.Close()

	now := g.now()
	stride := int64(len(templates) + 1)

	for i, card := range g.cards {
		noteID := now.UnixMilli() + int64(i)*stride
		guid := fmt.Sprintf("fn_%s_%d", internal.GenerateCardID(card.Sentence), i)

		_, err := noteStmt.Exec(
			noteID,     // id
			guid,       // guid
			g.modelID,  // mid
			now.Unix(), // mod
			-1,         // usn
			"",         // tags
			strings.Join(card.fields(), fieldSeparator), // flds
			card.Sentence,           // sfld
			checksum(card.Sentence), // csum
			0,                       // flags
			"",                      // data
		)
		if err != nil {
			return fmt.Errorf("failed to insert note for %q: %w", card.Sentence, err)
		}

		for ord, t := range templates {
			cardID := noteID + int64(ord) + 1
			_, err := cardStmt.Exec(
				cardID,     // id
				noteID,     // nid
				g.deckID,   // did
				ord,        // ord
				now.Unix(), // mod
				-1,         // usn
				0,          // type (new)
				0,          // queue (new)
				cardID,     // due (position for new cards)
				0,          // ivl
				0,          // factor
				0,          // reps
				0,          // lapses
				0,          // left
				0,          // odue
				0,          // odid
				0,          // flags
				"",         // data
			)
			if err != nil {
				return fmt.Errorf("failed to insert %s card for %q: %w", t.name, card.Sentence, err)
			}
		}
	}
	return nil
}

// createZipPackage writes the collection and the media map into the .apkg
func (g *APKGGenerator) createZipPackage(dbPath, outputPath string) error {
	zipFile, err := os.Create(outputPath)
	if err != nil {
		return err
	}
	defer zipFile.Close()

	archive := zip.NewWriter(zipFile)

	db, err := os.Open(dbPath)
	if err != nil {
		return err
	}
	defer db.Close()

	w, err := archive.Create(filepath.Base(dbPath))
	if err != nil {
		return err
	}
	if _, err := io.Copy(w, db); err != nil {
		return err
	}

	// No media is shipped, Anki still expects the mapping file.
	w, err = archive.Create("media")
	if err != nil {
		return err
	}
	if _, err := w.Write([]byte("{}")); err != nil {
		return err
	}

	return archive.Close()
}
