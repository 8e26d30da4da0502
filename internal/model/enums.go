package model

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidInput is wrapped by every validation failure in the formula library.
var ErrInvalidInput = errors.New("invalid input")

type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

func ParseGender(s string) (Gender, error) {
	switch Gender(normalize(s)) {
	case GenderMale:
		return GenderMale, nil
	case GenderFemale:
		return GenderFemale, nil
	default:
		return "", fmt.Errorf("%w: gender can be male or female", ErrInvalidInput)
	}
}

type ActivityLevel string

const (
	ActivitySedentary ActivityLevel = "sedentary"
	ActivityLight     ActivityLevel = "light"
	ActivityModerate  ActivityLevel = "moderate"
	ActivityActive    ActivityLevel = "active"
	ActivityExtreme   ActivityLevel = "extreme"
)

var ActivityLevels = []ActivityLevel{
	ActivitySedentary,
	ActivityLight,
	ActivityModerate,
	ActivityActive,
	ActivityExtreme,
}

func ParseActivityLevel(s string) (ActivityLevel, error) {
	a := ActivityLevel(normalize(s))
	for _, known := range ActivityLevels {
		if a == known {
			return a, nil
		}
	}
	return "", fmt.Errorf("%w: invalid activity provided", ErrInvalidInput)
}

// Multiplier is the TDEE factor applied to BMR for the level.
func (a ActivityLevel) Multiplier() (float64, bool) {
	switch a {
	case ActivitySedentary:
		return 1.2, true
	case ActivityLight:
		return 1.365, true
	case ActivityModerate:
		return 1.45, true
	case ActivityActive:
		return 1.715, true
	case ActivityExtreme:
		return 1.8, true
	default:
		return 0, false
	}
}

type Goal string

const (
	GoalBalance         Goal = "balance"
	GoalMildWeightLoss  Goal = "mildWeightLoss"
	GoalMildWeightGain  Goal = "mildWeightGain"
	GoalHeavyWeightLoss Goal = "heavyWeightLoss"
	GoalHeavyWeightGain Goal = "heavyWeightGain"
)

var Goals = []Goal{
	GoalBalance,
	GoalMildWeightLoss,
	GoalMildWeightGain,
	GoalHeavyWeightLoss,
	GoalHeavyWeightGain,
}

// ParseGoal accepts the camelCase goal names in any case, and also the
// kebab-case spelling used by CLI flags (mild-weight-loss).
func ParseGoal(s string) (Goal, error) {
	key := strings.ReplaceAll(normalize(s), "-", "")
	for _, known := range Goals {
		if key == strings.ToLower(string(known)) {
			return known, nil
		}
	}
	return "", fmt.Errorf("%w: invalid goal provided", ErrInvalidInput)
}

type DietPlan string

const (
	DietBalanced    DietPlan = "balanced"
	DietLowCarb     DietPlan = "lowCarb"
	DietHighCarb    DietPlan = "highCarb"
	DietHighProtein DietPlan = "highProtein"
	DietLowFat      DietPlan = "lowFat"
	DietLowSugar    DietPlan = "lowSugar"
)

var DietPlans = []DietPlan{
	DietBalanced,
	DietLowCarb,
	DietHighCarb,
	DietHighProtein,
	DietLowFat,
	DietLowSugar,
}

type BMICategory string

const (
	BMIUnderweight BMICategory = "underweight"
	BMINormal      BMICategory = "normal"
	BMIOverweight  BMICategory = "overweight"
	BMIObeseI      BMICategory = "obese class I"
	BMIObeseII     BMICategory = "obese class II"
	BMIObeseIII    BMICategory = "obese class III"
)

func normalize(s string) string {
	return strings.TrimSpace(strings.ToLower(s))
}
