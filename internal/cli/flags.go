package cli

// Flags holds all command-line flag values
type Flags struct {
	// General flags
	CfgFile   string
	Verbose   bool
	LogFormat string
	Format    string
	OutputDir string
	BatchFile string
	Workers   int
	Archive   bool

	// Transcription flags
	Mono        bool
	Epenthesis  bool
	Aspiration  bool
	Rehash      bool
	Exceptions  int
	StressGlyph string

	// Anki flags
	GenerateAnki bool
	AnkiCSV      bool
	DeckName     string

	// Explanation flags
	Explain         bool
	ExplainProvider string
	OpenAIModel     string
	GeminiModel     string
	ListModels      bool
}

// NewFlags creates a new Flags instance with default values
func NewFlags() *Flags {
	return &Flags{
		LogFormat:       "text",
		Format:          "text",
		Workers:         4,
		Exceptions:      1,
		StressGlyph:     `"`,
		DeckName:        "Spanish Pronunciation",
		ExplainProvider: "openai",
		OpenAIModel:     "gpt-4o-mini",
		GeminiModel:     "gemini-2.5-flash",
	}
}
