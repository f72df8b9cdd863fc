package services

import (
	"errors"
	"math"
	"strings"

	"foodie-backend/models"
)

// ---------- Daily calorie calculator ----------

type CalorieInput struct {
	Age           int     `json:"age" binding:"required"`
	Gender        string  `json:"gender" binding:"required"`
	Weight        float64 `json:"weight" binding:"required"` // kg
	Height        float64 `json:"height" binding:"required"` // cm
	ActivityLevel string  `json:"activityLevel" binding:"required"`
	Goal          string  `json:"goal"` // "lose" | "gain" | anything else = maintain
}

type MacroDetail struct {
	Grams      int `json:"grams"`
	Calories   int `json:"calories"`
	Percentage int `json:"percentage"`
}

type CalorieResult struct {
	BMR             int     `json:"bmr"`
	TDEE            int     `json:"tdee"`
	DailyCalories   int     `json:"dailyCalories"`
	GoalDescription string  `json:"goalDescription"`
	BMI             float64 `json:"bmi"`
	BMICategory     string  `json:"bmiCategory"`
	Macros          struct {
		Protein int `json:"protein"`
		Carbs   int `json:"carbs"`
		Fat     int `json:"fat"`
	} `json:"macros"`
	Breakdown map[string]MacroDetail `json:"breakdown"`
}

var activityMultipliers = map[string]float64{
	"sedentary":  1.2,   // little or no exercise
	"lightly":    1.375, // light exercise 1-3 days/week
	"moderately": 1.55,  // moderate exercise 3-5 days/week
	"very":       1.725, // hard exercise 6-7 days/week
	"extremely":  1.9,   // very hard exercise, physical job
}

// CalculateDailyCalories applies the Mifflin-St Jeor equation, an activity
// multiplier and a fixed 25/45/30 protein/carb/fat split. Unknown activity
// levels fall back to sedentary.
func CalculateDailyCalories(in CalorieInput) (*CalorieResult, error) {
	if in.Age <= 0 || in.Weight <= 0 || in.Height <= 0 {
		return nil, errors.New("age, weight and height must be positive")
	}

	var bmr float64
	if strings.ToLower(in.Gender) == "male" {
		bmr = 10*in.Weight + 6.25*in.Height - 5*float64(in.Age) + 5
	} else {
		bmr = 10*in.Weight + 6.25*in.Height - 5*float64(in.Age) - 161
	}

	mult, ok := activityMultipliers[in.ActivityLevel]
	if !ok {
		mult = activityMultipliers["sedentary"]
	}
	tdee := bmr * mult

	dailyCalories := tdee
	goalDescription := "Maintain weight"
	switch in.Goal {
	case "lose":
		dailyCalories = tdee - 500 // ~1 lb/week loss
		goalDescription = "Lose weight (0.5-1 lb/week)"
	case "gain":
		dailyCalories = tdee + 300 // ~0.5 lb/week gain
		goalDescription = "Gain weight (0.5 lb/week)"
	}

	res := &CalorieResult{
		BMR:             int(math.Round(bmr)),
		TDEE:            int(math.Round(tdee)),
		DailyCalories:   int(math.Round(dailyCalories)),
		GoalDescription: goalDescription,
	}

	res.BMI = round1(in.Weight / math.Pow(in.Height/100, 2))
	res.BMICategory = bmiCategory(res.BMI)

	res.Macros.Protein = int(math.Round(dailyCalories * 0.25 / 4))
	res.Macros.Carbs = int(math.Round(dailyCalories * 0.45 / 4))
	res.Macros.Fat = int(math.Round(dailyCalories * 0.30 / 9))

	res.Breakdown = map[string]MacroDetail{
		"protein": {Grams: res.Macros.Protein, Calories: res.Macros.Protein * 4, Percentage: 25},
		"carbs":   {Grams: res.Macros.Carbs, Calories: res.Macros.Carbs * 4, Percentage: 45},
		"fat":     {Grams: res.Macros.Fat, Calories: res.Macros.Fat * 9, Percentage: 30},
	}
	return res, nil
}

func bmiCategory(bmi float64) string {
	switch {
	case bmi < 18.5:
		return "Underweight"
	case bmi < 25.0:
		return "Normal weight"
	case bmi < 30.0:
		return "Overweight"
	default:
		return "Obese"
	}
}

// ---------- Recipe nutrition estimate ----------

type NutritionFacts struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
	Fiber    float64 `json:"fiber"`
	Sugar    float64 `json:"sugar"`
	Sodium   float64 `json:"sodium"`
}

// Per-100g reference values for common ingredients. Lookup is substring
// overlap in either direction against the lowercased ingredient name; the
// first table entry that overlaps wins, so the order is fixed.
var nutritionTable = []struct {
	Name  string
	Facts NutritionFacts
}{
	{"chicken breast", NutritionFacts{165, 31, 0, 3.6, 0, 0, 74}},
	{"beef", NutritionFacts{250, 26, 0, 15, 0, 0, 72}},
	{"salmon", NutritionFacts{208, 25, 0, 12, 0, 0, 59}},
	{"rice", NutritionFacts{130, 2.7, 28, 0.3, 0.4, 0.1, 1}},
	{"pasta", NutritionFacts{131, 5, 25, 1.1, 1.8, 0.8, 6}},
	{"tomato", NutritionFacts{22, 1.1, 4.8, 0.2, 1.2, 2.6, 5}},
	{"onion", NutritionFacts{40, 1.1, 9.3, 0.1, 1.7, 4.7, 4}},
	{"garlic", NutritionFacts{149, 6.4, 33, 0.5, 2.1, 1, 17}},
	{"olive oil", NutritionFacts{884, 0, 0, 100, 0, 0, 2}},
	{"butter", NutritionFacts{717, 0.9, 0.1, 81, 0, 0.1, 643}},
	{"egg", NutritionFacts{155, 13, 1.1, 11, 0, 1.1, 124}},
	{"milk", NutritionFacts{42, 3.4, 5, 1, 0, 5, 44}},
	{"cheese", NutritionFacts{402, 25, 1.3, 33, 0, 0.5, 621}},
	{"bread", NutritionFacts{265, 9, 49, 3.2, 2.7, 5, 491}},
	{"lettuce", NutritionFacts{15, 1.4, 2.9, 0.1, 1.3, 0.8, 28}},
	{"cucumber", NutritionFacts{16, 0.7, 3.6, 0.1, 0.5, 1.7, 2}},
	{"carrot", NutritionFacts{41, 0.9, 9.6, 0.2, 2.8, 4.7, 69}},
	{"potato", NutritionFacts{77, 2, 17, 0.1, 2.2, 0.8, 6}},
	{"broccoli", NutritionFacts{34, 2.8, 7, 0.4, 2.6, 1.5, 33}},
	{"spinach", NutritionFacts{23, 2.9, 3.6, 0.4, 2.2, 0.4, 79}},
}

type RecipeNutrition struct {
	Total      NutritionFacts `json:"total"`
	PerServing NutritionFacts `json:"perServing"`
	Servings   int            `json:"servings"`
}

// CalculateRecipeNutrition sums reference values for every recognized
// ingredient, assuming 100g each, and divides by servings. Ingredients
// without a table entry contribute nothing — a rough estimate by design.
func CalculateRecipeNutrition(ingredients []models.Ingredient, servings int) (*RecipeNutrition, error) {
	if servings <= 0 {
		return nil, errors.New("servings must be positive")
	}

	var total NutritionFacts
	for _, ing := range ingredients {
		name := strings.ToLower(strings.TrimSpace(ing.Name))
		for _, entry := range nutritionTable {
			if strings.Contains(name, entry.Name) || strings.Contains(entry.Name, name) {
				total.Calories += entry.Facts.Calories
				total.Protein += entry.Facts.Protein
				total.Carbs += entry.Facts.Carbs
				total.Fat += entry.Facts.Fat
				total.Fiber += entry.Facts.Fiber
				total.Sugar += entry.Facts.Sugar
				total.Sodium += entry.Facts.Sodium
				break
			}
		}
	}

	n := float64(servings)
	perServing := NutritionFacts{
		Calories: math.Round(total.Calories / n),
		Protein:  round1(total.Protein / n),
		Carbs:    round1(total.Carbs / n),
		Fat:      round1(total.Fat / n),
		Fiber:    round1(total.Fiber / n),
		Sugar:    round1(total.Sugar / n),
		Sodium:   math.Round(total.Sodium / n),
	}

	return &RecipeNutrition{Total: total, PerServing: perServing, Servings: servings}, nil
}

func round1(f float64) float64 {
	return math.Round(f*10) / 10
}
