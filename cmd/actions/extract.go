package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-actions/internal/domain/entities"
	"github.com/johnquangdev/meeting-actions/internal/infrastructure/cache"
	"github.com/johnquangdev/meeting-actions/internal/usecase/extraction"
	pkgai "github.com/johnquangdev/meeting-actions/pkg/ai"
	"github.com/johnquangdev/meeting-actions/pkg/config"
)

var (
	rawOutput bool
	useGroq   bool
	verbose   bool
)

func init() {
	extractCmd.Flags().BoolVar(&rawOutput, "raw", false, "Skip the final cleaning pass")
	extractCmd.Flags().BoolVar(&useGroq, "groq", false, "Detect people with Groq (needs GROQ_API_KEY)")
	extractCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Log pipeline details to stderr")
	rootCmd.AddCommand(extractCmd)
}

var extractCmd = &cobra.Command{
	Use:   "extract [file]",
	Short: "Extract action items from a transcript file or stdin",
	Long: `Extract action items from a transcript and print them as JSON.

Examples:
  # Extract from a file
  actions extract notes.txt

  # Extract from stdin
  cat notes.txt | actions extract -

  # Keep owner and task text exactly as parsed
  actions extract --raw notes.txt`,
	Args: cobra.MaximumNArgs(1),
	RunE: runExtract,
}

func runExtract(cmd *cobra.Command, args []string) error {
	text, err := readInput(cmd, args)
	if err != nil {
		return err
	}

	logger := zap.NewNop()
	if verbose {
		if logger, err = zap.NewDevelopment(); err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		defer logger.Sync()
	}

	var detector extraction.PersonDetector = extraction.NewLexiconDetector()
	if useGroq {
		cfg, err := config.FromEnv()
		if err != nil {
			return err
		}
		if cfg.Groq.APIKey == "" {
			return fmt.Errorf("GROQ_API_KEY is required with --groq")
		}
		store := cache.NewMemoryStore()
		defer store.Close()
		detector = extraction.NewRemoteDetector(pkgai.NewGroqClient(&cfg.Groq), detector, store, 10*time.Second, time.Hour, logger)
	}

	extractor := extraction.NewExtractor(detector, logger)

	var items []entities.ActionItem
	if rawOutput {
		items = extractor.ExtractRaw(text)
	} else {
		items = extractor.ExtractActions(text)
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(items)
}

func readInput(cmd *cobra.Command, args []string) (string, error) {
	var r io.Reader = cmd.InOrStdin()
	if len(args) == 1 && args[0] != "-" {
		f, err := os.Open(args[0])
		if err != nil {
			return "", fmt.Errorf("failed to open transcript: %w", err)
		}
		defer f.Close()
		r = f
	}
	b, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("failed to read transcript: %w", err)
	}
	return string(b), nil
}
