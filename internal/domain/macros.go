package domain

import "fmt"

const (
	kcalPerGramProtein = 4.0
	kcalPerGramCarb    = 4.0
	kcalPerGramFat     = 9.0

	fatShare     = 0.35
	carbShare    = 0.65
	fiberPerKcal = 13.0 / 1000
)

// Grams of protein per kg of fat-free mass, per program.
var proteinFactors = map[Program]float64{
	ProgramWeightLoss: 2.5,
	ProgramWeightGain: 2.0,
}

// MacroGoals are the daily targets in grams.
type MacroGoals struct {
	Proteins      float64 `json:"proteins"`
	Fats          float64 `json:"fats"`
	Carbohydrates float64 `json:"carbohydrates"`
	Fibers        float64 `json:"fibers"`
}

// AllocateMacroGoals splits calorieGoal into macro targets. Protein calories
// are taken off the budget first; the remainder is split 35/65 between fat
// and carbohydrate.
func AllocateMacroGoals(calorieGoal, fatFreeMass float64, p Program) (MacroGoals, error) {
	factor, ok := proteinFactors[p]
	if !ok {
		return MacroGoals{}, fmt.Errorf("%w: %q", ErrUnknownProgramCategory, string(p))
	}

	protein := fatFreeMass * factor
	remaining := calorieGoal - protein*kcalPerGramProtein
	return MacroGoals{
		Proteins:      protein,
		Fats:          remaining * (fatShare / kcalPerGramFat),
		Carbohydrates: remaining * (carbShare / kcalPerGramCarb),
		Fibers:        calorieGoal * fiberPerKcal,
	}, nil
}
