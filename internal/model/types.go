package model

type CaloriePlan struct {
	Balance         float64 `json:"balance"`
	MildWeightLoss  float64 `json:"mildWeightLoss"`
	MildWeightGain  float64 `json:"mildWeightGain"`
	HeavyWeightLoss float64 `json:"heavyWeightLoss"`
	HeavyWeightGain float64 `json:"heavyWeightGain"`
}

// For returns the daily calories for goal.
func (p CaloriePlan) For(goal Goal) (float64, bool) {
	switch goal {
	case GoalBalance:
		return p.Balance, true
	case GoalMildWeightLoss:
		return p.MildWeightLoss, true
	case GoalMildWeightGain:
		return p.MildWeightGain, true
	case GoalHeavyWeightLoss:
		return p.HeavyWeightLoss, true
	case GoalHeavyWeightGain:
		return p.HeavyWeightGain, true
	default:
		return 0, false
	}
}

// MacroSplit holds daily grams per macro-nutrient.
type MacroSplit struct {
	CarbG    float64 `json:"carb"`
	ProteinG float64 `json:"protein"`
	FatG     float64 `json:"fat"`
	SugarG   float64 `json:"sugar"`
}

type MacroPlans struct {
	Balanced    MacroSplit `json:"balanced"`
	LowCarb     MacroSplit `json:"lowCarb"`
	HighCarb    MacroSplit `json:"highCarb"`
	HighProtein MacroSplit `json:"highProtein"`
	LowFat      MacroSplit `json:"lowFat"`
	LowSugar    MacroSplit `json:"lowSugar"`
}

func (p MacroPlans) For(plan DietPlan) (MacroSplit, bool) {
	switch plan {
	case DietBalanced:
		return p.Balanced, true
	case DietLowCarb:
		return p.LowCarb, true
	case DietHighCarb:
		return p.HighCarb, true
	case DietHighProtein:
		return p.HighProtein, true
	case DietLowFat:
		return p.LowFat, true
	case DietLowSugar:
		return p.LowSugar, true
	default:
		return MacroSplit{}, false
	}
}

// Set stores split under plan; unknown plans are ignored.
func (p *MacroPlans) Set(plan DietPlan, split MacroSplit) {
	switch plan {
	case DietBalanced:
		p.Balanced = split
	case DietLowCarb:
		p.LowCarb = split
	case DietHighCarb:
		p.HighCarb = split
	case DietHighProtein:
		p.HighProtein = split
	case DietLowFat:
		p.LowFat = split
	case DietLowSugar:
		p.LowSugar = split
	}
}

// Consumption is the drinks input for BAC, volumes in mL. Other is
// [volume mL, strength %] for any drink not covered by the fixed strengths.
type Consumption struct {
	BeerML   float64   `json:"beer" validate:"finite,gte=0"`
	WineML   float64   `json:"wine" validate:"finite,gte=0"`
	LiquorML float64   `json:"liquor" validate:"finite,gte=0"`
	Other    []float64 `json:"other" validate:"required,len=2,dive,finite,gte=0"`
}
