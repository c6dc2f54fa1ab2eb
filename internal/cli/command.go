package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"codeberg.org/snonux/fonemas"
	"codeberg.org/snonux/fonemas/internal"
	"codeberg.org/snonux/fonemas/internal/explain"
)

// CreateRootCommand creates and configures the root cobra command
func CreateRootCommand(flags *Flags) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "fonemas [sentence]",
		Short: "Spanish phonological and phonetic transcriber",
		Long: `fonemas transcribes Spanish sentences into phonological IPA,
phonetic IPA and SAMPA, syllable by syllable with stress marks.

Examples:
  fonemas "el perro de San Roque"     # Transcribe one sentence
  fonemas --format json "¿Qué tal?"   # Machine readable output
  fonemas --batch frases.txt --anki   # Transcribe a file into an Anki deck
  fonemas --explain "hierba"          # Ask an LLM to explain the transcription`,
		Args:    cobra.MaximumNArgs(1),
		Version: internal.Version,
	}

	setupFlags(rootCmd, flags)

	return rootCmd
}

// DefaultOutputDir is where Anki exports and archives go unless --output is
// given. Explanations are only saved when --output is set.
func DefaultOutputDir() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".local", "state", "fonemas")
}

func setupFlags(cmd *cobra.Command, flags *Flags) {
	// Global flags
	cmd.PersistentFlags().StringVar(&flags.CfgFile, "config", "", "config file (default is $HOME/.fonemas.yaml)")
	cmd.PersistentFlags().BoolVarP(&flags.Verbose, "verbose", "v", false, "Enable debug logging")
	cmd.PersistentFlags().StringVar(&flags.LogFormat, "log-format", flags.LogFormat, "Log format: text or json")

	// Local flags
	cmd.Flags().StringVarP(&flags.Format, "format", "f", flags.Format, "Output format: text, json or csv")
	cmd.Flags().StringVarP(&flags.OutputDir, "output", "o", "", "Output directory for Anki exports (default ~/.local/state/fonemas) and saved explanations")
	cmd.Flags().StringVar(&flags.BatchFile, "batch", "", "Process sentences from file (one per line, optional '= note')")
	cmd.Flags().IntVarP(&flags.Workers, "workers", "w", flags.Workers, "Number of sentences transcribed in parallel in batch mode")
	cmd.Flags().BoolVar(&flags.Archive, "archive", false, "Move the output directory into an archive and exit")

	// Transcription flags
	cmd.Flags().BoolVar(&flags.Mono, "mono", false, "Unstressed-monosyllable mode: drop the stress mark from one-syllable words (default keeps it)")
	cmd.Flags().BoolVar(&flags.Epenthesis, "epenthesis", false, "Prefix 'e' to words starting with s plus consonant")
	cmd.Flags().BoolVar(&flags.Aspiration, "aspiration", false, "Pronounce a word-initial h as aspirated")
	cmd.Flags().BoolVar(&flags.Rehash, "rehash", false, "Move a consonant before a glide into a closed preceding syllable")
	cmd.Flags().IntVar(&flags.Exceptions, "exceptions", flags.Exceptions, "Syllabification exceptions: 0 none, 1 prefixes, 2 prefixes and clitics")
	cmd.Flags().StringVar(&flags.StressGlyph, "stress-glyph", flags.StressGlyph, "Primary stress mark used in SAMPA")

	// Anki flags
	cmd.Flags().BoolVar(&flags.GenerateAnki, "anki", false, "Generate Anki import file (APKG format by default, use --anki-csv for CSV)")
	cmd.Flags().BoolVar(&flags.AnkiCSV, "anki-csv", false, "Generate CSV format instead of APKG when using --anki")
	cmd.Flags().StringVar(&flags.DeckName, "deck-name", flags.DeckName, "Deck name for APKG export")

	// Explanation flags
	cmd.Flags().BoolVar(&flags.Explain, "explain", false, "Ask an LLM to explain the transcription")
	cmd.Flags().StringVar(&flags.ExplainProvider, "explain-provider", flags.ExplainProvider, "Explanation provider: openai or gemini")
	cmd.Flags().StringVar(&flags.OpenAIModel, "openai-model", flags.OpenAIModel, "OpenAI chat model for explanations")
	cmd.Flags().StringVar(&flags.GeminiModel, "gemini-model", flags.GeminiModel, "Gemini model for explanations")
	cmd.Flags().BoolVar(&flags.ListModels, "list-models", false, "List available OpenAI chat models for the current API key")

	bindFlagsToViper(cmd)
}

func bindFlagsToViper(cmd *cobra.Command) {
	viper.BindPFlag("transcription.mono", cmd.Flags().Lookup("mono"))
	viper.BindPFlag("transcription.epenthesis", cmd.Flags().Lookup("epenthesis"))
	viper.BindPFlag("transcription.aspiration", cmd.Flags().Lookup("aspiration"))
	viper.BindPFlag("transcription.rehash", cmd.Flags().Lookup("rehash"))
	viper.BindPFlag("transcription.exceptions", cmd.Flags().Lookup("exceptions"))
	viper.BindPFlag("transcription.stress_glyph", cmd.Flags().Lookup("stress-glyph"))
	viper.BindPFlag("output.directory", cmd.Flags().Lookup("output"))
	viper.BindPFlag("output.format", cmd.Flags().Lookup("format"))
	viper.BindPFlag("output.workers", cmd.Flags().Lookup("workers"))
	viper.BindPFlag("anki.deck_name", cmd.Flags().Lookup("deck-name"))
	viper.BindPFlag("explain.provider", cmd.Flags().Lookup("explain-provider"))
	viper.BindPFlag("explain.openai_model", cmd.Flags().Lookup("openai-model"))
	viper.BindPFlag("explain.gemini_model", cmd.Flags().Lookup("gemini-model"))
}

// InitConfig initializes viper configuration
func InitConfig(cfgFile string) {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error getting home directory: %v\n", err)
			return
		}

		// Search config in home directory with name ".fonemas" (without extension)
		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".fonemas")
	}

	viper.SetEnvPrefix("FONEMAS")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// TranscriptionOptions builds the transcription options from the bound
// flags, which take precedence over the config file when set.
func TranscriptionOptions() *fonemas.Options {
	opts := fonemas.DefaultOptions()
	opts.Mono = viper.GetBool("transcription.mono")
	opts.Epenthesis = viper.GetBool("transcription.epenthesis")
	opts.Aspiration = viper.GetBool("transcription.aspiration")
	opts.Rehash = viper.GetBool("transcription.rehash")
	if viper.IsSet("transcription.exceptions") {
		opts.Exceptions = viper.GetInt("transcription.exceptions")
	}
	if glyph := viper.GetString("transcription.stress_glyph"); glyph != "" {
		opts.StressGlyph = glyph
	}
	return opts
}

// ExplainConfig builds the explanation provider configuration
func ExplainConfig() *explain.Config {
	cfg := explain.DefaultConfig()
	if p := viper.GetString("explain.provider"); p != "" {
		cfg.Provider = p
	}
	if m := viper.GetString("explain.openai_model"); m != "" {
		cfg.OpenAIModel = m
	}
	if m := viper.GetString("explain.gemini_model"); m != "" {
		cfg.GeminiModel = m
	}
	if d := viper.GetDuration("explain.timeout"); d > 0 {
		cfg.Timeout = d
	}
	cfg.OpenAIKey = GetOpenAIKey()
	cfg.GeminiKey = GetGeminiKey()
	return cfg
}

// GetOpenAIKey retrieves the OpenAI API key from environment or config
func GetOpenAIKey() string {
	if key := os.Getenv("OPENAI_API_KEY"); key != "" {
		return key
	}
	return viper.GetString("explain.openai_key")
}

// GetGeminiKey retrieves the Gemini API key from environment or config
func GetGeminiKey() string {
	for _, env := range []string{"GEMINI_API_KEY", "GOOGLE_API_KEY"} {
		if key := os.Getenv(env); key != "" {
			return key
		}
	}
	return viper.GetString("explain.gemini_key")
}
