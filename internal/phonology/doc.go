// Package phonology maps normalized Spanish text onto its phonological
// transcription and splits every word into syllables with the stressed
// syllable marked. Adverbs in -mente keep the stress of their stem and get a
// secondary stress on the suffix.
package phonology
