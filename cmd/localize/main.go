package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/unicostudio/b-ai-localization/internal/app"
	"github.com/unicostudio/b-ai-localization/internal/config"
	"github.com/unicostudio/b-ai-localization/internal/constants"
	"github.com/unicostudio/b-ai-localization/internal/domain"
	"github.com/unicostudio/b-ai-localization/internal/input"
	"github.com/unicostudio/b-ai-localization/internal/output"
	"github.com/unicostudio/b-ai-localization/internal/service"
	"github.com/unicostudio/b-ai-localization/internal/util"
)

type cliFlags struct {
	csvPath    string
	imageDir   string
	charsPath  string
	model      string
	languages  []string
	game       string
	format     string
	outputDir  string
	prompt     string
}

func newRootCmd() *cobra.Command {
	flags := &cliFlags{}

	root := &cobra.Command{
		Use:   "localize",
		Short: "Batch game text localization via OpenRouter vision and chat models",
		Long: `localize reads a semicolon-delimited source table (IDS;EN;LOCID), groups
rows by screenshot, describes each screenshot with a vision model, asks a
chat model for translations in every requested language, standardizes
character names from a per-language table, and writes either a full JSON
report or flat per-language string files.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(flags)
		},
	}

	root.Flags().StringVar(&flags.csvPath, "csv", "", "Path to the source table (required)")
	root.Flags().StringVar(&flags.imageDir, "images", "", "Directory of screenshots matched by row image ID")
	root.Flags().StringVar(&flags.charsPath, "chars", "", "Character name table JSON (defaults to embedded data)")
	root.Flags().StringVar(&flags.model, "model", "", "Localization model short name (grok3, gpt-4o, claude-3-7-sonnet, gemini-1.5-pro)")
	root.Flags().StringSliceVar(&flags.languages, "languages", nil, "Target language codes, e.g. TR,FR,DE")
	root.Flags().StringVar(&flags.game, "game", "", "Game persona for the localization prompt")
	root.Flags().StringVar(&flags.format, "format", "", `Output format: "full" or "language"`)
	root.Flags().StringVar(&flags.outputDir, "output", "", "Output directory")
	root.Flags().StringVar(&flags.prompt, "prompt", "", "Custom system prompt overriding the game persona")
	_ = root.MarkFlagRequired("csv")

	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(flags *cliFlags) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	mergeFlags(cfg, flags)
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, err := util.NewLogger(cfg.Logging.Level, cfg.Logging.File)
	if err != nil {
		return fmt.Errorf("initializing logger: %w", err)
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	buildCtx, buildCancel := context.WithTimeout(ctx, 30*time.Second)
	container, err := app.Build(buildCtx, cfg, flags.charsPath, logger)
	buildCancel()
	if err != nil {
		return fmt.Errorf("assembling services: %w", err)
	}

	rows, err := input.ReadSourceRows(flags.csvPath)
	if err != nil {
		return err
	}
	images, err := input.ReadImages(flags.imageDir, logger)
	if err != nil {
		return err
	}

	groups := domain.GroupByImage(rows)
	logger.Info("starting localization run",
		zap.Int("rows", len(rows)),
		zap.Int("groups", len(groups)),
		zap.String("model", cfg.Run.Model),
		zap.Strings("languages", cfg.Run.Languages),
	)

	job := service.NewRun(groups)
	results, err := container.Scheduler.Process(ctx, job, images, service.RunOptions{
		ModelID:       constants.ResolveModelID(cfg.Run.Model),
		LanguageCodes: cfg.Run.Languages,
		Game:          cfg.Run.Game,
		CustomPrompt:  cfg.Run.CustomPrompt,
		Progress: func(processed, total int) {
			fmt.Fprintf(os.Stderr, "Processed %d/%d image groups\n", processed, total)
		},
	})
	if err != nil {
		return err
	}

	writer := output.NewWriter(cfg.Run.OutputDir, logger)
	switch cfg.Run.OutputFormat {
	case "language":
		names := make([]string, 0, len(cfg.Run.Languages))
		for _, code := range cfg.Run.Languages {
			names = append(names, domain.LanguageName(code))
		}
		tables := container.Projector.LanguageTables(results, names)
		paths, err := writer.WriteLanguageTables(tables)
		if err != nil {
			return err
		}
		fmt.Printf("Wrote %d language files:\n  %s\n", len(paths), strings.Join(paths, "\n  "))
	default:
		data, err := container.Projector.FullJSON(results)
		if err != nil {
			return fmt.Errorf("encoding results: %w", err)
		}
		path, err := writer.WriteFull(data)
		if err != nil {
			return err
		}
		fmt.Printf("Wrote localization output: %s\n", path)
	}

	return nil
}

// mergeFlags overlays explicitly set CLI flags onto the environment config.
func mergeFlags(cfg *config.Config, flags *cliFlags) {
	if flags.model != "" {
		cfg.Run.Model = flags.model
	}
	if len(flags.languages) > 0 {
		cfg.Run.Languages = flags.languages
	}
	if flags.game != "" {
		cfg.Run.Game = flags.game
	}
	if flags.format != "" {
		cfg.Run.OutputFormat = flags.format
	}
	if flags.outputDir != "" {
		cfg.Run.OutputDir = flags.outputDir
	}
	if flags.prompt != "" {
		cfg.Run.CustomPrompt = flags.prompt
	}
}
