// Package phonetics derives the phonetic transcription of a sentence from its
// phonological one. It applies spirantization of voiced stops, voicing and
// nasal place assimilation across syllable and word boundaries.
package phonetics
