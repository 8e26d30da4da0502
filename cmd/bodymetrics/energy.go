package bodymetrics

import (
	"fmt"
	"io"

	"github.com/saadjs/bodymetrics-cli/internal/model"
	"github.com/saadjs/bodymetrics-cli/internal/service"
	"github.com/spf13/cobra"
)

var (
	personGender   string
	personAge      float64
	personHeight   float64
	personWeight   float64
	personActivity string
	macroGoal      string
)

func personInput() service.BMRInput {
	return service.BMRInput{Gender: personGender, Age: personAge, HeightCm: personHeight, WeightKg: personWeight}
}

func energyInput() service.EnergyInput {
	return service.EnergyInput{BMRInput: personInput(), Activity: personActivity}
}

var bmrCmd = &cobra.Command{
	Use:   "bmr",
	Short: "Basal metabolic rate (Harris-Benedict)",
	RunE: func(cmd *cobra.Command, args []string) error {
		bmr, err := service.BMR(personInput())
		if err != nil {
			return err
		}
		return render(cmd, "bmr", map[string]float64{"bmr": bmr}, func(w io.Writer) {
			fmt.Fprintf(w, "BMR: %.2f kcal/day\n", bmr)
		})
	},
}

var caloriesCmd = &cobra.Command{
	Use:   "calories",
	Short: "Daily calorie needs per weight goal",
	RunE: func(cmd *cobra.Command, args []string) error {
		plan, err := service.CalorieNeeds(energyInput())
		if err != nil {
			return err
		}
		return render(cmd, "calories", plan, func(w io.Writer) {
			fmt.Fprintln(w, "GOAL\tKCAL")
			for _, goal := range model.Goals {
				kcal, _ := plan.For(goal)
				fmt.Fprintf(w, "%s\t%.2f\n", goal, kcal)
			}
		})
	},
}

var tdeeCmd = &cobra.Command{
	Use:   "tdee",
	Short: "Total daily energy expenditure",
	RunE: func(cmd *cobra.Command, args []string) error {
		tdee, err := service.TDEE(energyInput())
		if err != nil {
			return err
		}
		return render(cmd, "tdee", map[string]float64{"tdee": tdee}, func(w io.Writer) {
			fmt.Fprintf(w, "TDEE: %.2f kcal/day\n", tdee)
		})
	},
}

var macrosCmd = &cobra.Command{
	Use:   "macros",
	Short: "Macro-nutrient grams for six diet plans",
	RunE: func(cmd *cobra.Command, args []string) error {
		plans, err := service.Macros(service.MacroInput{EnergyInput: energyInput(), Goal: macroGoal})
		if err != nil {
			return err
		}
		return render(cmd, "macros", plans, func(w io.Writer) {
			fmt.Fprintln(w, "PLAN\tCARB_G\tPROTEIN_G\tFAT_G\tSUGAR_G")
			for _, name := range model.DietPlans {
				p, _ := plans.For(name)
				fmt.Fprintf(w, "%s\t%.2f\t%.2f\t%.2f\t%.2f\n", name, p.CarbG, p.ProteinG, p.FatG, p.SugarG)
			}
		})
	},
}

func init() {
	rootCmd.AddCommand(bmrCmd, caloriesCmd, tdeeCmd, macrosCmd)

	for _, c := range []*cobra.Command{bmrCmd, caloriesCmd, tdeeCmd, macrosCmd} {
		c.Flags().StringVar(&personGender, "gender", "", "male or female")
		c.Flags().Float64Var(&personAge, "age", 0, "Age in years")
		c.Flags().Float64Var(&personHeight, "height", 0, "Height in cm")
		c.Flags().Float64Var(&personWeight, "weight", 0, "Weight in kg")
	}
	for _, c := range []*cobra.Command{caloriesCmd, tdeeCmd, macrosCmd} {
		c.Flags().StringVar(&personActivity, "activity", "", "sedentary, light, moderate, active or extreme")
	}
	macrosCmd.Flags().StringVar(&macroGoal, "goal", string(model.GoalBalance), "balance, mild-weight-loss, mild-weight-gain, heavy-weight-loss or heavy-weight-gain")
}
