package cmd

import (
	"fmt"
	"log"
	"path/filepath"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/sednabcn/job-search-automation/internal/logger"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Re-score the postings file on a cron schedule",
	Long: "watch runs the scoring pipeline on the schedule configured under watch.schedule " +
		"and writes one merged results file per run. Useful when a scraper refreshes the " +
		"postings file in the background.",
	Run: func(cmd *cobra.Command, _ []string) {
		watch(cmd)
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)

	watchCmd.Flags().String("schedule", "", "cron expression overriding watch.schedule from the config")
	viper.BindPFlag("watch.schedule", watchCmd.Flags().Lookup("schedule"))
}

func watch(_ *cobra.Command) {
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

	if config.Watch == nil || config.Watch.Schedule == "" {
		logger.Fatal("watch schedule is required",
			zap.String("hint", "set the 'watch.schedule' config key or the --schedule flag"),
		)
	}

	outputDir := config.Watch.OutputDir
	if outputDir == "" {
		outputDir = "."
	}

	runner := cron.New()
	_, err = runner.AddFunc(config.Watch.Schedule, func() {
		batch, _, err := runPipeline(config, logger)
		if err != nil {
			logger.Error("scheduled scoring run failed", zap.Error(err))
			return
		}

		out := filepath.Join(outputDir, fmt.Sprintf("scored_%s.json", time.Now().Format("20060102_150405")))
		filename, err := batch.DumpToFile(out)
		if err != nil {
			logger.Error("writing scheduled results failed", zap.Error(err))
			return
		}

		logger.Info("scheduled run complete",
			zap.String("run_id", batch.RunID),
			zap.Int("count", batch.Len()),
			zap.String("filename", filename),
		)
	})
	if err != nil {
		logger.Fatal("invalid watch schedule",
			zap.String("schedule", config.Watch.Schedule),
			zap.Error(err),
		)
	}

	logger.Info("starting watch", zap.String("schedule", config.Watch.Schedule))
	runner.Run()
}
