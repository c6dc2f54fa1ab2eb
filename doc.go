// Package fonemas transcribes written Spanish into phonological, phonetic
// and SAMPA form, with syllable boundaries and stress.
//
// A sentence is normalized, rewritten into phonemes, syllabified word by
// word with the stressed syllable marked, turned into its phonetic
// realization across word boundaries and finally transliterated into
// ASCII:
//
//	r, err := fonemas.Transcribe("rápidamente", nil)
//	// r.Phonology.Syllables: ˈra pi da ˌmen te
//	// r.SAMPA.Words:         "rapiDa%mente
//
// Transcriptions are pure functions of their input and options, so
// independent sentences can be processed concurrently with TranscribeAll.
package fonemas
