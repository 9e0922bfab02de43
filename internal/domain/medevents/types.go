package medevents

import "sort"

// Nombres de las categorías estándar que se siembran al crear un animal.
const (
	CategoryVaccine    = "vaccine"
	CategoryPrevention = "prevention"
	CategoryCheckUp    = "check up"
	CategoryOther      = "other"
)

// StandardCategories en su orden de presentación fijo.
func StandardCategories() []string {
	return []string{CategoryVaccine, CategoryPrevention, CategoryCheckUp, CategoryOther}
}

var categoryRank = map[string]int{
	CategoryVaccine:    0,
	CategoryPrevention: 1,
	CategoryCheckUp:    2,
	CategoryOther:      3,
}

// Rank da la posición de presentación de una categoría.
// Nombres fuera del set conocido van después de los cuatro estándar.
func Rank(categoryName string) int {
	if r, ok := categoryRank[categoryName]; ok {
		return r
	}
	return len(categoryRank)
}

// SortCategories ordena in-place: vaccine < prevention < check up < other,
// desconocidas al final (estable, para que empaten por orden de llegada).
func SortCategories(cats []CategoryDetail) {
	sort.SliceStable(cats, func(i, j int) bool {
		return Rank(cats[i].CategoryName) < Rank(cats[j].CategoryName)
	})
}
