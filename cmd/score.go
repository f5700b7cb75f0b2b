package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/sednabcn/job-search-automation/internal/advisor"
	"github.com/sednabcn/job-search-automation/internal/advisor/gemini"
	"github.com/sednabcn/job-search-automation/internal/keywords"
	"github.com/sednabcn/job-search-automation/internal/logger"
	"github.com/sednabcn/job-search-automation/internal/posting"
	"github.com/sednabcn/job-search-automation/internal/report"
	"github.com/sednabcn/job-search-automation/internal/scoring"
	"github.com/sednabcn/job-search-automation/internal/secrets"
)

const (
	PromptTopMatches      = "Show top matches"
	PromptReportByCompany = "Report by company"
	PromptDumpResults     = "Dump merged results to file"
	PromptAIAdvisor       = "Ask the AI advisor about top matches"
	PromptQuit            = "Quit"
)

var errExit = errors.New("exit requested")

var prompt = promptui.Select{
	Label: "What next?",
	Items: []string{PromptTopMatches, PromptReportByCompany, PromptDumpResults, PromptAIAdvisor, PromptQuit},
}

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score scraped postings against your CV and preferences",
	Run: func(cmd *cobra.Command, _ []string) {
		score(cmd)
	},
}

func init() {
	rootCmd.AddCommand(scoreCmd)

	scoreCmd.Flags().StringP("cv", "c", "", "plain-text CV file to extract the candidate profile from")
	scoreCmd.Flags().StringP("postings", "p", "", "postings JSON file from the scraper side")
	scoreCmd.Flags().StringP("output", "o", "", "path for the merged results file. Default is a temp file.")
	scoreCmd.Flags().Float64("min-score", 0, "drop postings scoring below this total")
	scoreCmd.Flags().IntP("top", "t", 10, "how many postings the top-matches views show")
	scoreCmd.Flags().BoolP("yes", "y", false, "skip the menu: dump merged results and exit")

	viper.BindPFlag("cv-file", scoreCmd.Flags().Lookup("cv"))
	viper.BindPFlag("postings-file", scoreCmd.Flags().Lookup("postings"))
	viper.BindPFlag("output-file", scoreCmd.Flags().Lookup("output"))
}

// score is the main command for the cli.
func score(cmd *cobra.Command) {
	ctx := context.Background()

	logger, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := loadConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}
	if configLoadErr != nil {
		logger.Warn("config file not loaded, using built-in defaults", zap.Error(configLoadErr))
	}

	logger.Info("starting the jobsearch scorer", zap.String("version", version))

	// do not bother error since there is a valid parseable config
	pretty, _ := json.MarshalIndent(config, "", "  ")
	logger.Debug(fmt.Sprintf("starting with config: \n %s", pretty))

	batch, profile, err := runPipeline(config, logger)
	if err != nil {
		logger.Fatal("scoring pipeline failed", zap.Error(err))
	}

	if minScore, _ := cmd.Flags().GetFloat64("min-score"); minScore > 0 {
		kept := batch.MinScore(minScore)
		logger.Info("applied minimum score threshold",
			zap.Float64("min_score", minScore),
			zap.Int("kept", len(kept)),
			zap.Int("dropped", batch.Len()-len(kept)),
		)
		batch.Items = kept
	}

	if batch.Len() == 0 {
		logger.Info("exiting", zap.String("reason", "no postings left to review"))
		return
	}

	topN, _ := cmd.Flags().GetInt("top")

	if yes, _ := cmd.Flags().GetBool("yes"); yes {
		if err := handleAction(ctx, PromptDumpResults, logger, config, batch, profile, topN); err != nil {
			logger.Fatal("exiting", zap.Error(err))
		}
		return
	}

	for {
		_, action, err := prompt.Run()
		if err != nil {
			logger.Fatal("exiting", zap.Error(err))
		}

		logger.Info("current list of postings", zap.Int("count", batch.Len()))

		if err := handleAction(ctx, action, logger, config, batch, profile, topN); err != nil {
			if errors.Is(err, errExit) {
				return
			}
			logger.Fatal("exiting", zap.Error(err))
		}
	}
}

// runPipeline loads the candidate profile and postings, scores the batch and
// logs the step summaries. Shared between score and watch.
func runPipeline(config *Config, logger *zap.Logger) (*scoring.BatchResult, *keywords.Profile, error) {
	profile, err := buildProfile(config, logger)
	if err != nil {
		return nil, nil, err
	}

	if config.PostingsFile == "" {
		return nil, nil, errors.New("postings file is required: set --postings or the 'postings-file' config key")
	}

	postings, skipped, err := posting.LoadFromFile(config.PostingsFile)
	if err != nil {
		return nil, nil, err
	}
	logger.Info("loaded postings",
		zap.String("file", config.PostingsFile),
		zap.Int("count", postings.Len()),
		zap.Int("skipped", skipped),
	)

	scorer := scoring.New(profile, scoring.NewPreferences(config.Preferences))
	batch := scorer.ScoreAll(postings, skipped)

	logger.Info("scored postings",
		zap.String("run_id", batch.RunID),
		zap.Int("count", batch.Len()),
		zap.Int("skipped", batch.Skipped),
	)

	return batch, profile, nil
}

// buildProfile derives the candidate keyword set: from the CV file when one
// is configured, otherwise from the skills listed in preferences. An empty
// profile is valid and scores keywords neutral.
func buildProfile(config *Config, logger *zap.Logger) (*keywords.Profile, error) {
	var profile *keywords.Profile

	switch {
	case config.CVFile != "":
		data, err := os.ReadFile(config.CVFile)
		if err != nil {
			return nil, fmt.Errorf("reading cv file: %w", err)
		}
		profile = keywords.NewProfile(string(data))
	default:
		skills := append(append([]string(nil), config.Preferences.RequiredSkills...), config.Preferences.PreferredSkills...)
		profile = keywords.ProfileFromKeywords(skills)
	}

	logger.Info("extracted candidate profile",
		zap.Int("keywords", profile.Len()),
		zap.Strings("sample", profile.Sample(10)),
	)

	return profile, nil
}

func handleAction(ctx context.Context, action string, logger *zap.Logger, config *Config, batch *scoring.BatchResult, profile *keywords.Profile, topN int) error {
	switch action {
	case PromptTopMatches:
		lines := report.TopLines(batch.Items, topN)
		logger.Info(fmt.Sprintf("top matches:\n%s", strings.Join(lines, "\n")), zap.Int("shown", len(lines)))
		return nil
	case PromptReportByCompany:
		summary := report.ByCompany(batch.Items)
		pretty, _ := json.MarshalIndent(summary, "", "  ")
		logger.Info(string(pretty), zap.Int("companies", len(summary)))
		return nil
	case PromptDumpResults:
		filename, err := batch.DumpToFile(config.OutputFile)
		if err != nil {
			return fmt.Errorf("dump results to file: %w", err)
		}
		logger.Info("dumping results to file", zap.String("filename", filename))
		return nil
	case PromptAIAdvisor:
		return adviseTop(ctx, logger, config, batch, profile, topN)
	case PromptQuit:
		logger.Info("exiting", zap.String("reason", "quit requested"))
		return errExit
	default:
		return nil
	}
}

// adviseTop runs the optional Gemini second opinion over the current top
// matches. Rule-based scores are never changed here.
func adviseTop(ctx context.Context, log *zap.Logger, config *Config, batch *scoring.BatchResult, profile *keywords.Profile, topN int) error {
	if config.AI == nil || !config.AI.Enabled {
		log.Warn("ai advisor is not enabled", zap.String("hint", "set ai.enabled: true in the configuration file"))
		return nil
	}

	geminiCfg := config.AI.Gemini
	if geminiCfg == nil {
		geminiCfg = &GeminiConfig{}
	}

	key, err := secrets.Load(secrets.Source{
		Name:  "gemini api key",
		Value: geminiCfg.APIKey,
		File:  geminiCfg.APIKeyFile,
		Env:   "GEMINI_API_KEY",
	})
	if err != nil {
		return fmt.Errorf("loading gemini api key: %w", err)
	}

	generator, err := gemini.NewGenerator(ctx, key, geminiCfg.Model, log)
	if err != nil {
		return fmt.Errorf("creating gemini generator: %w", err)
	}

	var adv advisor.Advisor = gemini.NewMatcher(
		generator,
		logger.WithProvider(log, "gemini", generator.Model()),
		config.AI.MinScore,
	)

	for _, item := range batch.Top(topN) {
		assessment, err := adv.Assess(ctx, profile, item)
		if err != nil {
			log.Error("advisor assessment failed",
				zap.String("job_title", item.Result.JobTitle),
				zap.Error(err),
			)
			continue
		}

		log.Info("advisor verdict",
			zap.String("job_title", item.Result.JobTitle),
			zap.String("company", item.Result.Company),
			zap.Float64("rule_score", item.Result.TotalScore),
			zap.Bool("fit", assessment.Fit),
			zap.Float64("score", assessment.Score),
			zap.String("reason", assessment.Reason),
		)
	}

	return nil
}
