// Package anki exports Spanish transcriptions as Anki flashcards, either as
// a CSV import file or as an .apkg package containing a SQLite collection.
package anki
