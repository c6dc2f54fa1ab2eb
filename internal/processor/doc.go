// Package processor contains the command-line workflow of fonemas. It runs
// single sentences or batch files through the transcription pipeline,
// formats the results as text, JSON or CSV, and optionally exports them as
// an Anki deck and asks an LLM provider to explain them. This package
// serves as the coordinator between the CLI and all other components.
package processor
