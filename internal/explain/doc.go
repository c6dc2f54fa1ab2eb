// Package explain asks a large language model to explain a computed
// Spanish transcription to language learners. It provides OpenAI and Gemini
// providers, a fallback wrapper and a circuit breaker that stops calling a
// provider after repeated failures.
package explain
