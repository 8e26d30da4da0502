package service_test

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/saadjs/bodymetrics-cli/internal/model"
	"github.com/saadjs/bodymetrics-cli/internal/service"
)

var samplePerson = service.BMRInput{Gender: "male", Age: 22, HeightCm: 176, WeightKg: 73}

func TestBMRHarrisBenedict(t *testing.T) {
	t.Parallel()
	male, err := service.BMR(samplePerson)
	if err != nil {
		t.Fatalf("male bmr: %v", err)
	}
	if math.Abs(male-1786.073) > 0.001 {
		t.Fatalf("expected male bmr 1786.073, got %.4f", male)
	}

	female, err := service.BMR(service.BMRInput{Gender: "female", Age: 30, HeightCm: 165, WeightKg: 60})
	if err != nil {
		t.Fatalf("female bmr: %v", err)
	}
	if math.Abs(female-1383.683) > 0.001 {
		t.Fatalf("expected female bmr 1383.683, got %.4f", female)
	}
}

func TestBMRReportsFirstMissingField(t *testing.T) {
	t.Parallel()
	cases := []struct {
		in   service.BMRInput
		want string
	}{
		{service.BMRInput{Age: 22, HeightCm: 176, WeightKg: 73}, "gender not provided"},
		{service.BMRInput{Gender: "male", HeightCm: 176, WeightKg: 73}, "age not provided"},
		{service.BMRInput{Gender: "male", Age: 22, WeightKg: 73}, "height not provided"},
		{service.BMRInput{Gender: "male", Age: 22, HeightCm: 176}, "weight not provided"},
		{service.BMRInput{Gender: "male", Age: -3, HeightCm: 176, WeightKg: 73}, "age must be > 0"},
		{service.BMRInput{Gender: "robot", Age: 22, HeightCm: 176, WeightKg: 73}, "gender can be male or female"},
	}
	for _, tc := range cases {
		_, err := service.BMR(tc.in)
		if !errors.Is(err, service.ErrInvalidInput) {
			t.Fatalf("expected invalid input for %+v, got %v", tc.in, err)
		}
		if !strings.Contains(err.Error(), tc.want) {
			t.Fatalf("expected %q in error, got %q", tc.want, err.Error())
		}
	}
}

func TestCalorieNeedsOrderingForEveryActivity(t *testing.T) {
	t.Parallel()
	for _, activity := range model.ActivityLevels {
		plan, err := service.CalorieNeeds(service.EnergyInput{BMRInput: samplePerson, Activity: string(activity)})
		if err != nil {
			t.Fatalf("calorie needs %s: %v", activity, err)
		}
		if !(plan.HeavyWeightLoss < plan.MildWeightLoss &&
			plan.MildWeightLoss < plan.Balance &&
			plan.Balance < plan.MildWeightGain &&
			plan.MildWeightGain < plan.HeavyWeightGain) {
			t.Fatalf("unexpected goal ordering for %s: %+v", activity, plan)
		}

		tdee, err := service.TDEE(service.EnergyInput{BMRInput: samplePerson, Activity: string(activity)})
		if err != nil {
			t.Fatalf("tdee %s: %v", activity, err)
		}
		if tdee != plan.Balance {
			t.Fatalf("expected tdee %v to equal balance %v", tdee, plan.Balance)
		}
	}
}

func TestCalorieNeedsActiveValues(t *testing.T) {
	t.Parallel()
	plan, err := service.CalorieNeeds(service.EnergyInput{BMRInput: samplePerson, Activity: "Active"})
	if err != nil {
		t.Fatalf("calorie needs: %v", err)
	}
	want := model.CaloriePlan{
		Balance:         3063.12,
		MildWeightLoss:  2756.8,
		MildWeightGain:  3369.43,
		HeavyWeightLoss: 2450.49,
		HeavyWeightGain: 3675.74,
	}
	for _, goal := range model.Goals {
		got, _ := plan.For(goal)
		expected, _ := want.For(goal)
		if math.Abs(got-expected) > 0.005 {
			t.Fatalf("%s: expected %.2f, got %.2f", goal, expected, got)
		}
	}
}

func TestCalorieNeedsRejectsInvalidActivity(t *testing.T) {
	t.Parallel()
	for _, activity := range []string{"", "couch"} {
		_, err := service.CalorieNeeds(service.EnergyInput{BMRInput: samplePerson, Activity: activity})
		if !errors.Is(err, service.ErrInvalidInput) {
			t.Fatalf("activity %q: expected invalid input, got %v", activity, err)
		}
	}
}

func TestTDEEPropagatesBMRFailure(t *testing.T) {
	t.Parallel()
	_, err := service.TDEE(service.EnergyInput{BMRInput: service.BMRInput{Gender: "male"}, Activity: "light"})
	if !errors.Is(err, service.ErrInvalidInput) {
		t.Fatalf("expected invalid input, got %v", err)
	}
	if !strings.Contains(err.Error(), "age not provided") {
		t.Fatalf("expected bmr error to be forwarded, got %q", err.Error())
	}
}
