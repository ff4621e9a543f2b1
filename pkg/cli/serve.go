package cli

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/m-mizutani/goerr/v2"

	"github.com/secmon-lab/hearsight/pkg/cli/config"
	httpctrl "github.com/secmon-lab/hearsight/pkg/controller/http"
	"github.com/secmon-lab/hearsight/pkg/service/analysis"
	"github.com/secmon-lab/hearsight/pkg/service/guide"
	"github.com/secmon-lab/hearsight/pkg/usecase"
	"github.com/secmon-lab/hearsight/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

func cmdServe() *cli.Command {
	var addr string
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
			Name:        "addr",
			Usage:       "HTTP server address",
			Value:       ":8080",
			Sources:     cli.EnvVars("HEARSIGHT_ADDR"),
			Destination: &addr,
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
		Name:    "serve",
		Aliases: []string{"s"},
		Usage:   "Start HTTP server",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := logging.Default()

			if err := appCfg.Configure(); err != nil {
				return goerr.Wrap(err, "failed to load pipeline configuration")
			}

			ucOpts, err := buildUseCaseOptions(ctx, &appCfg, &openaiCfg, &geminiCfg, &claudeCfg, &websearchCfg, &githubCfg, &notionCfg, &slackCfg)
			if err != nil {
				return err
			}

			uc := usecase.New(ucOpts...)

			srv, err := httpctrl.New(uc)
			if err != nil {
				return goerr.Wrap(err, "failed to create http server")
			}
			server := &http.Server{
				Addr:              addr,
				Handler:           srv,
				ReadHeaderTimeout: 30 * time.Second,
			}

			// Setup signal handling for graceful shutdown
			sigCh := make(chan os.Signal, 1)
			signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

			errCh := make(chan error, 1)
			go func() {
				logger.Info("Starting HTTP server", "addr", addr)
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					errCh <- goerr.Wrap(err, "failed to start server")
				}
			}()

			select {
			case err := <-errCh:
				return err
			case sig := <-sigCh:
				logger.Info("Received shutdown signal", "signal", sig)

				shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
				defer cancel()

				if err := server.Shutdown(shutdownCtx); err != nil {
					return goerr.Wrap(err, "failed to shutdown server gracefully")
				}

				logger.Info("Server shutdown completed")
				return nil
			}
		},
	}
}

// buildUseCaseOptions assembles pipeline providers from the configured
// flags. Providers that are not configured are skipped with a log line;
// the affected operations fail per request instead of at startup.
func buildUseCaseOptions(
	ctx context.Context,
	appCfg *config.AppConfig,
	openaiCfg *config.OpenAI,
	geminiCfg *config.Gemini,
	claudeCfg *config.Claude,
	websearchCfg *config.WebSearch,
	githubCfg *config.GitHub,
	notionCfg *config.Notion,
	slackCfg *config.Slack,
) ([]usecase.Option, error) {
	logger := logging.Default()

	var opts []usecase.Option

	transcriber, err := openaiCfg.Configure()
	if err != nil {
		return nil, goerr.Wrap(err, "failed to configure transcription")
	}
	if transcriber != nil {
		opts = append(opts, usecase.WithTranscriber(transcriber))
		logger.Info("Audio transcription enabled")
	} else {
		logger.Info("OpenAI API key not configured, audio upload will be unavailable")
	}

	geminiClient, err := geminiCfg.Configure(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to configure Gemini")
	}
	if geminiClient != nil {
		analyzer, err := analysis.New(geminiClient)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to create analysis service")
		}
		summarizer, err := guide.New(geminiClient)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to create guide service")
		}
		opts = append(opts, usecase.WithAnalyzer(analyzer), usecase.WithSummarizer(summarizer))
		logger.Info("Insight extraction enabled")
	} else {
		logger.Warn("Gemini not configured, insight extraction will be unavailable")
	}

	buildLLM, err := claudeCfg.Configure(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to configure Claude")
	}
	if buildLLM != nil {
		opts = append(opts, usecase.WithBuildLLM(buildLLM))
		logger.Info("Build jobs enabled")
	} else {
		logger.Info("Claude API key not configured, build jobs will be unavailable")
	}

	searcher, err := websearchCfg.Configure()
	if err != nil {
		return nil, goerr.Wrap(err, "failed to configure web search")
	}
	if searcher != nil {
		opts = append(opts, usecase.WithSearcher(searcher))
		logger.Info("Documentation search enabled")
	} else {
		logger.Info("Web search API key not configured, issues will have no documentation links")
	}

	primary, err := githubCfg.Configure()
	if err != nil {
		return nil, goerr.Wrap(err, "failed to configure GitHub")
	}
	if primary != nil {
		opts = append(opts, usecase.WithPrimaryTracker(primary))
		logger.Info("GitHub issue tracker enabled")
	} else {
		logger.Warn("GitHub App not configured, issue materialization will be unavailable")
	}

	fallback, err := notionCfg.Configure()
	if err != nil {
		return nil, goerr.Wrap(err, "failed to configure Notion")
	}
	if fallback != nil {
		opts = append(opts, usecase.WithFallbackTracker(fallback))
		logger.Info("Notion fallback tracker enabled")
	} else {
		logger.Info("Notion not configured, no fallback on GitHub failure")
	}

	notifier, err := slackCfg.Configure()
	if err != nil {
		return nil, goerr.Wrap(err, "failed to configure Slack")
	}
	if notifier != nil {
		opts = append(opts, usecase.WithNotifier(notifier))
		logger.Info("Slack batch notifications enabled")
	} else {
		logger.Info("Slack not configured, batch summaries are only logged")
	}

	if len(appCfg.Issue.ExtraLabels) > 0 {
		opts = append(opts, usecase.WithExtraLabels(appCfg.Issue.ExtraLabels))
	}
	if appCfg.Enrichment.Concurrency > 0 {
		opts = append(opts, usecase.WithEnrichConcurrency(appCfg.Enrichment.Concurrency))
	}
	if appCfg.Timeout() > 0 {
		opts = append(opts, usecase.WithCallTimeout(appCfg.Timeout()))
	}

	return opts, nil
}
