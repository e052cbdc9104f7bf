package domain

import (
	"cmp"
	"slices"
)

// AggregateIntake sums the scaled macros of every line. Contributions are
// summed in a canonical order so the totals do not depend on line order.
func AggregateIntake(lines []IntakeLine) Macros {
	contributions := make([]Macros, 0, len(lines))
	for _, l := range lines {
		contributions = append(contributions, l.Per100.Scale(l.Quantity/100))
	}
	slices.SortFunc(contributions, compareMacros)

	var total Macros
	for _, c := range contributions {
		total = total.Add(c)
	}
	return total
}

func compareMacros(a, b Macros) int {
	return cmp.Or(
		cmp.Compare(a.Calories, b.Calories),
		cmp.Compare(a.Proteins, b.Proteins),
		cmp.Compare(a.Fats, b.Fats),
		cmp.Compare(a.Carbohydrates, b.Carbohydrates),
		cmp.Compare(a.Fibers, b.Fibers),
		cmp.Compare(a.Sodium, b.Sodium),
	)
}
