package bodymetrics

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"
)

// render prints v as indented JSON or, for text output, through writeText.
func render(cmd *cobra.Command, formula string, v any, writeText func(io.Writer)) error {
	logger.Debug("computed formula", slog.String("formula", formula), slog.Any("result", v))
	out := cmd.OutOrStdout()
	if outputFormat == "json" {
		b, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal %s json: %w", formula, err)
		}
		fmt.Fprintln(out, string(b))
		return nil
	}
	writeText(out)
	return nil
}

func optionalMeasurement(v float64) *float64 {
	if v < 0 {
		return nil
	}
	return &v
}
