// Package models lists the OpenAI chat models that can be used with the
// --openai-model flag when explaining transcriptions.
package models
