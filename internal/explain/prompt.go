package explain

import "fmt"

const systemPrompt = "You are a Spanish phonetics teacher helping language learners understand pronunciation. " +
	"You are given a sentence together with its phonological and phonetic transcription in the International " +
	"Phonetic Alphabet (IPA) and in SAMPA. Do not change the transcription; explain it."

// buildPrompt renders the user prompt for a request.
func buildPrompt(req Request) string {
	return fmt.Sprintf(`For the Spanish sentence '%s':
Phonological transcription: /%s/
Phonetic transcription: [%s]
SAMPA: %s

1. Break down EACH phonetic symbol used in the phonetic transcription
2. For EVERY symbol, explain how it's pronounced:
   - If similar to an English sound, give English word examples
   - If not in English, describe tongue/mouth position or compare to similar sounds
3. Point out where the phonetic form differs from the phonological one and why
   (spirantization, voicing or nasal assimilation)
4. Explain the stress marks: ˈ is primary and ˌ secondary stress

Example format:
• [β] - like 'b' but with the lips not fully closed
• [ˈ] - stress mark (following syllable is stressed)`,
		req.Sentence, req.Phonology, req.Phonetics, req.SAMPA)
}
