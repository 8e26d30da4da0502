package bodymetrics

import (
	"fmt"
	"io"

	"github.com/saadjs/bodymetrics-cli/internal/model"
	"github.com/saadjs/bodymetrics-cli/internal/service"
	"github.com/spf13/cobra"
)

var (
	bacGender   string
	bacWeight   float64
	bacHours    float64
	bacBeer     float64
	bacWine     float64
	bacLiquor   float64
	bacOtherML  float64
	bacOtherABV float64
)

var bacCmd = &cobra.Command{
	Use:   "bac",
	Short: "Blood alcohol content estimate in percent",
	RunE: func(cmd *cobra.Command, args []string) error {
		bac, err := service.BAC(service.BACInput{
			Gender:              bacGender,
			WeightKg:            bacWeight,
			HoursSinceLastDrink: bacHours,
			Consumption: &model.Consumption{
				BeerML:   bacBeer,
				WineML:   bacWine,
				LiquorML: bacLiquor,
				Other:    []float64{bacOtherML, bacOtherABV},
			},
		})
		if err != nil {
			return err
		}
		return render(cmd, "bac", map[string]float64{"bac": bac}, func(w io.Writer) {
			fmt.Fprintf(w, "BAC: %.2f%%\n", bac)
		})
	},
}

func init() {
	rootCmd.AddCommand(bacCmd)

	bacCmd.Flags().StringVar(&bacGender, "gender", "", "male or female")
	bacCmd.Flags().Float64Var(&bacWeight, "weight", 0, "Weight in kg")
	bacCmd.Flags().Float64Var(&bacHours, "hours", 0, "Hours since last drink")
	bacCmd.Flags().Float64Var(&bacBeer, "beer", 0, "Beer consumed in mL (5%)")
	bacCmd.Flags().Float64Var(&bacWine, "wine", 0, "Wine consumed in mL (12%)")
	bacCmd.Flags().Float64Var(&bacLiquor, "liquor", 0, "Liquor consumed in mL (40%)")
	bacCmd.Flags().Float64Var(&bacOtherML, "other-ml", 0, "Other drink consumed in mL")
	bacCmd.Flags().Float64Var(&bacOtherABV, "other-abv", 0, "Other drink strength in percent")
}
