// Package sampa transliterates phonetic transcriptions into SAMPA, an
// ASCII-only phonetic alphabet.
package sampa
