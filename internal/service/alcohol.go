package service

import (
	"github.com/saadjs/bodymetrics-cli/internal/model"
)

// Alcohol by volume, percent.
const (
	beerABV   = 5.0
	wineABV   = 12.0
	liquorABV = 40.0
)

// Widmark body water ratios.
const (
	maleBodyWater   = 0.68
	femaleBodyWater = 0.55
)

// eliminationPerHour is the BAC percentage points metabolised per hour.
const eliminationPerHour = 0.015

type BACInput struct {
	Gender              string             `json:"gender" validate:"required"`
	WeightKg            float64            `json:"weight" validate:"finite,gt=0"`
	HoursSinceLastDrink float64            `json:"timeSinceLastDrink" validate:"finite,gte=0"`
	Consumption         *model.Consumption `json:"consumptionData" validate:"required"`
}

// BAC estimates blood alcohol content in percent. The result is not clamped
// at zero, so long elapsed times yield negative values.
func BAC(in BACInput) (float64, error) {
	if err := validateInput(in); err != nil {
		return 0, err
	}
	gender, err := model.ParseGender(in.Gender)
	if err != nil {
		return 0, err
	}
	c := in.Consumption
	otherML, otherABV := c.Other[0], c.Other[1]
	if otherABV > 100 {
		return 0, invalidInput("other strength must be <= 100")
	}

	alcoholML := c.BeerML*(beerABV/100) +
		c.WineML*(wineABV/100) +
		c.LiquorML*(liquorABV/100) +
		otherML*(otherABV/100)

	ratio := maleBodyWater
	if gender == model.GenderFemale {
		ratio = femaleBodyWater
	}
	bac := (alcoholML/(in.WeightKg*1000*ratio))*100 - in.HoursSinceLastDrink*eliminationPerHour
	return roundToTwoDecimal(bac), nil
}
