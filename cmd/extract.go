package cmd

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/sednabcn/job-search-automation/internal/keywords"
	"github.com/sednabcn/job-search-automation/internal/logger"
)

var extractCmd = &cobra.Command{
	Use:   "extract <file>",
	Short: "Extract technical keywords from a CV or posting text file",
	Args:  cobra.ExactArgs(1),
	Run: func(_ *cobra.Command, args []string) {
		extract(args[0])
	},
}

func init() {
	rootCmd.AddCommand(extractCmd)
}

func extract(path string) {
	logger, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		logger.Fatal("reading input file", zap.String("file", path), zap.Error(err))
	}

	profile := keywords.NewProfile(string(data))

	logger.Info("extracted keywords",
		zap.String("file", path),
		zap.Int("count", profile.Len()),
	)

	// Keywords go to stdout so the command can feed scripts.
	for _, kw := range profile.Keywords() {
		fmt.Println(kw)
	}
}
