package bodymetrics

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/saadjs/bodymetrics-cli/internal/app"
	"github.com/spf13/cobra"
)

var (
	outputFlag string

	outputFormat = "text"
	logger       = slog.Default()
)

var rootCmd = &cobra.Command{
	Use:           "bodymetrics",
	Short:         "bodymetrics computes body and nutrition metrics from your terminal",
	Long:          "bodymetrics calculates BMR, BMI, body fat, ideal weight, calorie needs, TDEE, macro splits and blood alcohol content. Heights are in cm, weights in kg.",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := app.LoadConfig()
		if err != nil {
			return err
		}
		logger = app.NewLogger(cfg, cmd.ErrOrStderr())

		outputFormat = cfg.Output
		if flag := strings.ToLower(strings.TrimSpace(outputFlag)); flag != "" {
			outputFormat = flag
		}
		return app.ValidateOutput(outputFormat)
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&outputFlag, "output", "", "Output format: text or json (default from BODYMETRICS_OUTPUT, else text)")
}
