// Package syllable splits a single Spanish word into syllables and finds its
// stressed syllable. It works on ordinary spelling as well as on the
// phonological transcriptions produced by the phonology package.
package syllable
