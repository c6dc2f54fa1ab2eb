// Package normalize prepares raw Spanish text for transcription. It lower-cases
// the input, replaces punctuation with spaces, folds foreign diacritics onto
// Spanish letters, spells out standalone letters and can optionally apply
// s-cluster epenthesis to loanwords.
package normalize
