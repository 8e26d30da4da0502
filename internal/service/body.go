package service

import (
	"math"

	"github.com/saadjs/bodymetrics-cli/internal/model"
)

// BodyFatInput holds US Navy circumference measurements in cm. HipCm is only
// used, and then required, for women.
type BodyFatInput struct {
	Gender   string   `json:"gender" validate:"required"`
	HeightCm float64  `json:"height" validate:"finite,gt=0"`
	WeightKg float64  `json:"weight" validate:"finite,gt=0"`
	NeckCm   float64  `json:"neck" validate:"finite,gt=0"`
	WaistCm  float64  `json:"waist" validate:"finite,gt=0"`
	HipCm    *float64 `json:"hip" validate:"omitempty,finite,gt=0"`
}

// BMI returns weight / height(m)^2 rounded to two decimals.
func BMI(heightCm, weightKg float64) (float64, error) {
	if err := validatePositive("height", heightCm); err != nil {
		return 0, err
	}
	if err := validatePositive("weight", weightKg); err != nil {
		return 0, err
	}
	h := heightCm / 100
	return roundToTwoDecimal(weightKg / (h * h)), nil
}

func BMICategory(bmi float64) model.BMICategory {
	switch {
	case bmi < 18.5:
		return model.BMIUnderweight
	case bmi < 25:
		return model.BMINormal
	case bmi < 30:
		return model.BMIOverweight
	case bmi < 35:
		return model.BMIObeseI
	case bmi < 40:
		return model.BMIObeseII
	default:
		return model.BMIObeseIII
	}
}

// BFP estimates body fat percentage with the US Navy method.
func BFP(in BodyFatInput) (float64, error) {
	if err := validateInput(in); err != nil {
		return 0, err
	}
	gender, err := model.ParseGender(in.Gender)
	if err != nil {
		return 0, err
	}

	var fat float64
	switch gender {
	case model.GenderMale:
		girth := in.WaistCm - in.NeckCm
		if girth <= 0 {
			return 0, invalidInput("waist must be larger than neck")
		}
		fat = 495/(1.0324-0.19077*math.Log10(girth)+0.15456*math.Log10(in.HeightCm)) - 450
	case model.GenderFemale:
		if in.HipCm == nil {
			return 0, invalidInput("hip not provided")
		}
		girth := in.WaistCm + *in.HipCm - in.NeckCm
		if girth <= 0 {
			return 0, invalidInput("waist plus hip must be larger than neck")
		}
		fat = 495/(1.29579-0.35004*math.Log10(girth)+0.221*math.Log10(in.HeightCm)) - 450
	}
	if !isFinite(fat) {
		return 0, invalidInput("measurements out of range")
	}
	return roundToTwoDecimal(fat), nil
}

// IdealBodyWeight returns the Devine ideal weight in kg for heightCm.
func IdealBodyWeight(gender string, heightCm float64) (float64, error) {
	if err := validatePositive("height", heightCm); err != nil {
		return 0, err
	}
	if gender == "" {
		return 0, invalidInput("gender not provided")
	}
	g, err := model.ParseGender(gender)
	if err != nil {
		return 0, err
	}
	base := 50.0
	if g == model.GenderFemale {
		base = 45.5
	}
	return base + 0.91*(heightCm-152.4), nil
}
