// Package archive moves a previous output directory of Anki exports and
// saved explanations aside, so the next run starts from an empty one.
package archive
