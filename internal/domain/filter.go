package domain

import (
	"strconv"
	"strings"
)

// FilterAll es el valor centinela que deja pasar todos los productos.
const FilterAll = "all"

// FilterState es la selección de filtros de una sesión de catálogo.
// Se crea con todo en "all"/vacío y se pasa explícitamente por el
// pipeline; nunca se persiste.
type FilterState struct {
	Category  string `json:"category"`
	Series    string `json:"series"`
	Condition string `json:"condition"`
	Search    string `json:"search"`
}

func NewFilterState() FilterState {
	return FilterState{Category: FilterAll, Series: FilterAll, Condition: FilterAll}
}

// IsDefault indica si ningún filtro está activo.
func (f FilterState) IsDefault() bool {
	return (f.Category == FilterAll || f.Category == "") &&
		(f.Series == FilterAll || f.Series == "") &&
		(f.Condition == FilterAll || f.Condition == "") &&
		strings.TrimSpace(f.Search) == ""
}

// ApplyFilters compone las cuatro etapas en orden fijo, cada una sobre la
// salida de la anterior (AND entre etapas). Las comparaciones baratas van
// antes que la búsqueda por substring. Ninguna etapa muta su entrada.
func ApplyFilters(products []Product, f FilterState) []Product {
	out := filterCategory(products, f.Category)
	out = filterSeries(out, f.Series)
	out = filterCondition(out, f.Condition)
	out = filterSearch(out, f.Search)
	return out
}

func filterCategory(products []Product, sel string) []Product {
	if sel == "" || sel == FilterAll {
		return products
	}
	out := make([]Product, 0, len(products))
	for _, p := range products {
		if p.Category == Category(sel) {
			out = append(out, p)
		}
	}
	return out
}

// filterSeries convierte la selección a entero. Si no es numérica no
// coincide con ninguna serie y el resultado queda vacío, sin error.
func filterSeries(products []Product, sel string) []Product {
	if sel == "" || sel == FilterAll {
		return products
	}
	want, err := strconv.Atoi(strings.TrimSpace(sel))
	out := make([]Product, 0, len(products))
	if err != nil {
		return out
	}
	for _, p := range products {
		if p.Series != nil && *p.Series == want {
			out = append(out, p)
		}
	}
	return out
}

func filterCondition(products []Product, sel string) []Product {
	if sel == "" || sel == FilterAll {
		return products
	}
	out := make([]Product, 0, len(products))
	for _, p := range products {
		if p.Condition == Condition(sel) {
			out = append(out, p)
		}
	}
	return out
}

// filterSearch retiene productos cuyo nombre o alguna spec contiene la
// consulta como substring, sin distinguir mayúsculas. Consulta en blanco
// deja pasar todo. Sin tokenización ni ranking.
func filterSearch(products []Product, query string) []Product {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return products
	}
	out := make([]Product, 0, len(products))
	for _, p := range products {
		if matchesQuery(p, q) {
			out = append(out, p)
		}
	}
	return out
}

func matchesQuery(p Product, q string) bool {
	if strings.Contains(strings.ToLower(p.Name), q) {
		return true
	}
	for _, s := range p.Specs {
		if strings.Contains(strings.ToLower(s), q) {
			return true
		}
	}
	return false
}
