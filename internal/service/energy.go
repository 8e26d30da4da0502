package service

import (
	"github.com/saadjs/bodymetrics-cli/internal/model"
)

type BMRInput struct {
	Gender   string  `json:"gender" validate:"required"`
	Age      float64 `json:"age" validate:"finite,gt=0"`
	HeightCm float64 `json:"height" validate:"finite,gt=0"`
	WeightKg float64 `json:"weight" validate:"finite,gt=0"`
}

type EnergyInput struct {
	BMRInput
	Activity string `json:"activity"`
}

// BMR returns resting kcal/day with the revised Harris-Benedict equation.
func BMR(in BMRInput) (float64, error) {
	if err := validateInput(in); err != nil {
		return 0, err
	}
	gender, err := model.ParseGender(in.Gender)
	if err != nil {
		return 0, err
	}
	switch gender {
	case model.GenderMale:
		return 88.362 + 13.397*in.WeightKg + 4.799*in.HeightCm - 5.677*in.Age, nil
	default:
		return 447.593 + 9.247*in.WeightKg + 3.098*in.HeightCm - 4.330*in.Age, nil
	}
}

// CalorieNeeds scales BMR by the activity multiplier for each goal.
// Loss and gain goals shift BMR by 10% (mild) or 20% (heavy) before scaling.
func CalorieNeeds(in EnergyInput) (model.CaloriePlan, error) {
	bmr, err := BMR(in.BMRInput)
	if err != nil {
		return model.CaloriePlan{}, err
	}
	if in.Activity == "" {
		return model.CaloriePlan{}, invalidInput("activity not provided")
	}
	activity, err := model.ParseActivityLevel(in.Activity)
	if err != nil {
		return model.CaloriePlan{}, err
	}
	m, ok := activity.Multiplier()
	if !ok {
		return model.CaloriePlan{}, invalidInput("invalid activity provided")
	}
	return model.CaloriePlan{
		Balance:         roundToTwoDecimal(bmr * m),
		MildWeightLoss:  roundToTwoDecimal((bmr - 0.1*bmr) * m),
		MildWeightGain:  roundToTwoDecimal((bmr + 0.1*bmr) * m),
		HeavyWeightLoss: roundToTwoDecimal((bmr - 0.2*bmr) * m),
		HeavyWeightGain: roundToTwoDecimal((bmr + 0.2*bmr) * m),
	}, nil
}

// TDEE is the maintenance entry of CalorieNeeds.
func TDEE(in EnergyInput) (float64, error) {
	plan, err := CalorieNeeds(in)
	if err != nil {
		return 0, err
	}
	return plan.Balance, nil
}
