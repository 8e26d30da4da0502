package service

import (
	"github.com/saadjs/bodymetrics-cli/internal/model"
)

// kcal per gram
const (
	carbKcalPerG    = 4.0
	proteinKcalPerG = 4.0
	fatKcalPerG     = 9.0
	sugarKcalPerG   = 4.0
)

// macroShares are fractions of daily calories. Sugar is a sub-budget of
// carbohydrate, so carb+protein+fat sums to 1 and sugar is on top.
type macroShares struct {
	carb    float64
	protein float64
	fat     float64
	sugar   float64
}

var dietPlanTable = map[model.DietPlan]macroShares{
	model.DietBalanced:    {carb: 0.4, protein: 0.3, fat: 0.3, sugar: 0.1},
	model.DietLowCarb:     {carb: 0.3, protein: 0.4, fat: 0.3, sugar: 0.1},
	model.DietHighCarb:    {carb: 0.5, protein: 0.3, fat: 0.2, sugar: 0.1},
	model.DietHighProtein: {carb: 0.35, protein: 0.45, fat: 0.2, sugar: 0.1},
	model.DietLowFat:      {carb: 0.45, protein: 0.4, fat: 0.15, sugar: 0.1},
	model.DietLowSugar:    {carb: 0.4, protein: 0.4, fat: 0.2, sugar: 0.05},
}

type MacroInput struct {
	EnergyInput
	Goal string `json:"goal"`
}

// Macros splits the calories for the chosen goal into six diet plans, in grams.
func Macros(in MacroInput) (model.MacroPlans, error) {
	needs, err := CalorieNeeds(in.EnergyInput)
	if err != nil {
		return model.MacroPlans{}, err
	}
	if in.Goal == "" {
		return model.MacroPlans{}, invalidInput("goal not provided")
	}
	goal, err := model.ParseGoal(in.Goal)
	if err != nil {
		return model.MacroPlans{}, err
	}
	calories, ok := needs.For(goal)
	if !ok {
		return model.MacroPlans{}, invalidInput("invalid goal provided")
	}

	var out model.MacroPlans
	for _, plan := range model.DietPlans {
		out.Set(plan, splitCalories(calories, dietPlanTable[plan]))
	}
	return out, nil
}

func splitCalories(calories float64, s macroShares) model.MacroSplit {
	return model.MacroSplit{
		CarbG:    roundToTwoDecimal((s.carb * calories) / carbKcalPerG),
		ProteinG: roundToTwoDecimal((s.protein * calories) / proteinKcalPerG),
		FatG:     roundToTwoDecimal((s.fat * calories) / fatKcalPerG),
		SugarG:   roundToTwoDecimal((s.sugar * calories) / sugarKcalPerG),
	}
}
