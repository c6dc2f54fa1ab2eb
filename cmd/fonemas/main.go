package main

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"codeberg.org/snonux/fonemas/internal/archive"
	"codeberg.org/snonux/fonemas/internal/cli"
	"codeberg.org/snonux/fonemas/internal/logging"
	"codeberg.org/snonux/fonemas/internal/models"
	"codeberg.org/snonux/fonemas/internal/processor"
)

func main() {
	flags := cli.NewFlags()
	rootCmd := cli.CreateRootCommand(flags)

	cobra.OnInitialize(func() {
		cli.InitConfig(flags.CfgFile)
	})

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		return logging.Init(os.Stderr, flags.Verbose, flags.LogFormat)
	}
	rootCmd.RunE = func(cmd *cobra.Command, args []string) error {
		return runCommand(cmd, args, flags)
	}

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runCommand(cmd *cobra.Command, args []string, flags *cli.Flags) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Config file values apply where the flags were left unchanged
	flags.OutputDir = viper.GetString("output.directory")
	flags.Format = viper.GetString("output.format")
	flags.Workers = viper.GetInt("output.workers")
	flags.DeckName = viper.GetString("anki.deck_name")

	if flags.Archive {
		dir := flags.OutputDir
		if dir == "" {
			dir = cli.DefaultOutputDir()
		}
		target, err := archive.Dir(dir)
		if err != nil {
			return fmt.Errorf("failed to archive output: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Output directory archived to: %s\n", target)
		return nil
	}

	if flags.ListModels {
		lister := models.NewLister(cli.GetOpenAIKey())
		return lister.ListAvailableModels(ctx, cmd.OutOrStdout())
	}

	if flags.BatchFile == "" && len(args) == 0 {
		return errors.New("no input: pass a sentence or --batch FILE")
	}

	proc, err := processor.NewProcessor(flags, cli.TranscriptionOptions(), cmd.OutOrStdout())
	if err != nil {
		return err
	}

	if flags.BatchFile != "" {
		err = proc.ProcessBatch(ctx)
	} else {
		err = proc.ProcessSentence(ctx, args[0])
	}
	if flushErr := proc.Flush(); err == nil {
		err = flushErr
	}
	if err != nil {
		return err
	}

	if flags.GenerateAnki {
		outputPath, err := proc.GenerateAnkiFile()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: Failed to generate Anki file: %v\n", err)
		} else {
			fmt.Fprintf(os.Stderr, "Anki package created: %s\n", outputPath)
		}
	}
	return nil
}
