package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/m-mizutani/goerr/v2"

	"github.com/secmon-lab/hearsight/pkg/cli/config"
	"github.com/secmon-lab/hearsight/pkg/domain/model"
	"github.com/secmon-lab/hearsight/pkg/domain/types"
	"github.com/secmon-lab/hearsight/pkg/usecase"
	"github.com/secmon-lab/hearsight/pkg/utils/logging"
	"github.com/secmon-lab/hearsight/pkg/utils/safe"
	"github.com/urfave/cli/v3"
)

func cmdAnalyze() *cli.Command {
	var audioPath string
	var dryRun bool
	var appCfg config.AppConfig
	var openaiCfg config.OpenAI
	var geminiCfg config.Gemini
	var claudeCfg config.Claude
	var websearchCfg config.WebSearch
	var githubCfg config.GitHub
	var notionCfg config.Notion
	var slackCfg config.Slack

	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "audio",
			Usage:       "Transcribe an audio file instead of reading a transcript file",
			Sources:     cli.EnvVars("HEARSIGHT_ANALYZE_AUDIO"),
			Destination: &audioPath,
		},
		&cli.BoolFlag{
			Name:        "dry-run",
			Usage:       "Extract and enrich insights without creating issues",
			Destination: &dryRun,
		},
	}
	flags = append(flags, appCfg.Flags()...)
	flags = append(flags, openaiCfg.Flags()...)
	flags = append(flags, geminiCfg.Flags()...)
	flags = append(flags, claudeCfg.Flags()...)
	flags = append(flags, websearchCfg.Flags()...)
	flags = append(flags, githubCfg.Flags()...)
	flags = append(flags, notionCfg.Flags()...)
	flags = append(flags, slackCfg.Flags()...)

	return &cli.Command{
		Name:      "analyze",
		Aliases:   []string{"a"},
		Usage:     "Run the pipeline once for a transcript or audio file",
		ArgsUsage: "[transcript file]",
		Flags:     flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			if err := appCfg.Configure(); err != nil {
				return goerr.Wrap(err, "failed to load pipeline configuration")
			}

			ucOpts, err := buildUseCaseOptions(ctx, &appCfg, &openaiCfg, &geminiCfg, &claudeCfg, &websearchCfg, &githubCfg, &notionCfg, &slackCfg)
			if err != nil {
				return err
			}
			uc := usecase.New(ucOpts...)

			transcript, err := loadTranscript(ctx, uc, audioPath, c.Args().First())
			if err != nil {
				return err
			}

			if dryRun {
				return runDryRun(ctx, uc, transcript)
			}

			result, err := uc.RunPipeline(ctx, transcript.RawText)
			if err != nil {
				return goerr.Wrap(err, "pipeline failed")
			}

			printBatchResult(result)
			return nil
		},
	}
}

// loadTranscript reads the pipeline input from either an audio file or a
// plain text transcript file
func loadTranscript(ctx context.Context, uc *usecase.UseCases, audioPath, textPath string) (*model.Transcript, error) {
	if audioPath != "" {
		f, err := os.Open(audioPath)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to open audio file", goerr.V("path", audioPath))
		}
		defer safe.Close(ctx, f)

		return uc.TranscribeAudio(ctx, audioPath, f)
	}

	if textPath == "" {
		return nil, goerr.New("transcript file or --audio is required")
	}

	data, err := os.ReadFile(textPath)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read transcript file", goerr.V("path", textPath))
	}

	return uc.TranscribeText(ctx, string(data))
}

// runDryRun extracts and enriches insights, then prints the issue drafts
// without creating anything
func runDryRun(ctx context.Context, uc *usecase.UseCases, transcript *model.Transcript) error {
	analysis, err := uc.Analyze(ctx, transcript.RawText)
	if err != nil {
		return goerr.Wrap(err, "failed to extract insights")
	}

	enriched := uc.Enrich(ctx, analysis.Insights)

	bold := color.New(color.Bold)
	faint := color.New(color.Faint)

	bold.Printf("Context: %s\n\n", analysis.ProductContext)
	for _, item := range enriched {
		fmt.Println(usecase.RenderIssueTitle(item.Insight))
		faint.Printf("  category=%s severity=%s docs=%d\n", item.Insight.Category, item.Insight.Severity, len(item.Docs))
	}
	faint.Printf("\n%d insights extracted (dry run, no issues created)\n", len(enriched))

	return nil
}

// printBatchResult prints a one-line colored record per materialized issue
func printBatchResult(result *usecase.PipelineResult) {
	green := color.New(color.FgGreen)
	red := color.New(color.FgRed)

	for _, issue := range result.Batch.Created {
		if issue.Status == types.IssueStatusCreated {
			green.Printf("✓ %s: %s\n", issue.Title, issue.URL)
		} else {
			red.Printf("✗ %s: %s\n", issue.Title, issue.Error)
		}
	}

	logging.Default().Info("pipeline completed",
		"insights", len(result.Analysis.Insights),
		"successful", result.Batch.Successful,
		"failed", result.Batch.Failed,
	)
}
