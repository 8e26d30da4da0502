package bodymetrics

import (
	"fmt"
	"io"

	"github.com/saadjs/bodymetrics-cli/internal/model"
	"github.com/saadjs/bodymetrics-cli/internal/service"
	"github.com/spf13/cobra"
)

var (
	bodyGender string
	bodyHeight float64
	bodyWeight float64
	bodyNeck   float64
	bodyWaist  float64
	bodyHip    float64
)

type bmiResult struct {
	BMI      float64           `json:"bmi"`
	Category model.BMICategory `json:"category"`
}

var bmiCmd = &cobra.Command{
	Use:   "bmi",
	Short: "Body Mass Index",
	RunE: func(cmd *cobra.Command, args []string) error {
		bmi, err := service.BMI(bodyHeight, bodyWeight)
		if err != nil {
			return err
		}
		res := bmiResult{BMI: bmi, Category: service.BMICategory(bmi)}
		return render(cmd, "bmi", res, func(w io.Writer) {
			fmt.Fprintf(w, "BMI: %.2f (%s)\n", res.BMI, res.Category)
		})
	},
}

var bfpCmd = &cobra.Command{
	Use:   "bfp",
	Short: "Body fat percentage (US Navy method)",
	RunE: func(cmd *cobra.Command, args []string) error {
		pct, err := service.BFP(service.BodyFatInput{
			Gender:   bodyGender,
			HeightCm: bodyHeight,
			WeightKg: bodyWeight,
			NeckCm:   bodyNeck,
			WaistCm:  bodyWaist,
			HipCm:    optionalMeasurement(bodyHip),
		})
		if err != nil {
			return err
		}
		return render(cmd, "bfp", map[string]float64{"bodyFatPct": pct}, func(w io.Writer) {
			fmt.Fprintf(w, "Body fat: %.2f%%\n", pct)
		})
	},
}

var idealWeightCmd = &cobra.Command{
	Use:   "ideal-weight",
	Short: "Ideal body weight in kg",
	RunE: func(cmd *cobra.Command, args []string) error {
		kg, err := service.IdealBodyWeight(bodyGender, bodyHeight)
		if err != nil {
			return err
		}
		return render(cmd, "ideal-weight", map[string]float64{"idealWeightKg": kg}, func(w io.Writer) {
			fmt.Fprintf(w, "Ideal weight: %.2f kg\n", kg)
		})
	},
}

func init() {
	rootCmd.AddCommand(bmiCmd, bfpCmd, idealWeightCmd)

	for _, c := range []*cobra.Command{bmiCmd, bfpCmd, idealWeightCmd} {
		c.Flags().Float64Var(&bodyHeight, "height", 0, "Height in cm")
	}
	for _, c := range []*cobra.Command{bmiCmd, bfpCmd} {
		c.Flags().Float64Var(&bodyWeight, "weight", 0, "Weight in kg")
	}
	for _, c := range []*cobra.Command{bfpCmd, idealWeightCmd} {
		c.Flags().StringVar(&bodyGender, "gender", "", "male or female")
	}
	bfpCmd.Flags().Float64Var(&bodyNeck, "neck", 0, "Neck circumference in cm")
	bfpCmd.Flags().Float64Var(&bodyWaist, "waist", 0, "Waist circumference in cm")
	bfpCmd.Flags().Float64Var(&bodyHip, "hip", -1, "Hip circumference in cm (required for female)")
}
