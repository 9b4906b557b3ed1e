package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func series(n int) *int { return &n }

func testProducts() []Product {
	return []Product{
		{ID: "iphone-16-pro-max", Name: "iPhone 16 Pro Max", Category: CategoryIPhone, Series: series(16), Condition: ConditionNew, Specs: []string{"A18 Pro", "256 GB"}, Gallery: []string{"a.webp"}},
		{ID: "iphone-16", Name: "iPhone 16", Category: CategoryIPhone, Series: series(16), Condition: ConditionNew, Specs: []string{"A18"}, Gallery: []string{"b.webp"}},
		{ID: "iphone-15-pro", Name: "iPhone 15 Pro", Category: CategoryIPhone, Series: series(15), Condition: ConditionCertified, Specs: []string{"A17 Pro"}, Gallery: []string{"c.webp"}},
		{ID: "iphone-13", Name: "iPhone 13", Category: CategoryIPhone, Series: series(13), Condition: ConditionCertified, Specs: []string{"A15 Bionic"}, Gallery: []string{"d.webp"}},
		{ID: "cargador-magsafe", Name: "Cargador MagSafe", Category: CategoryAccessory, Condition: ConditionNew, Specs: []string{"15W"}, Gallery: []string{"e.webp"}},
		{ID: "bateria-iphone-12", Name: "Batería iPhone 12", Category: CategoryPart, Condition: ConditionNew, Specs: []string{"Instalación incluida"}, Gallery: []string{"f.webp"}},
	}
}

func ids(list []Product) []string {
	out := make([]string, 0, len(list))
	for _, p := range list {
		out = append(out, p.ID)
	}
	return out
}

func TestApplyFilters_DefaultStateReturnsFullCatalogInOrder(t *testing.T) {
	cat := testProducts()
	got := ApplyFilters(cat, NewFilterState())
	assert.Equal(t, ids(cat), ids(got))
}

func TestApplyFilters_OutputIsSubsetWithoutDuplicates(t *testing.T) {
	cat := testProducts()
	states := []FilterState{
		{Category: "iphone", Series: FilterAll, Condition: FilterAll},
		{Category: FilterAll, Series: "16", Condition: FilterAll},
		{Category: FilterAll, Series: FilterAll, Condition: "certificado"},
		{Category: FilterAll, Series: FilterAll, Condition: FilterAll, Search: "pro"},
		{Category: "iphone", Series: "16", Condition: "nuevo", Search: "a18"},
	}
	inCatalog := map[string]struct{}{}
	for _, p := range cat {
		inCatalog[p.ID] = struct{}{}
	}
	for _, f := range states {
		got := ApplyFilters(cat, f)
		seen := map[string]struct{}{}
		for _, p := range got {
			_, ok := inCatalog[p.ID]
			assert.True(t, ok, "producto %s no estaba en el catálogo", p.ID)
			_, dup := seen[p.ID]
			assert.False(t, dup, "producto %s duplicado", p.ID)
			seen[p.ID] = struct{}{}
		}
	}
}

func TestApplyFilters_Idempotent(t *testing.T) {
	cat := testProducts()
	f := FilterState{Category: "iphone", Series: FilterAll, Condition: "certificado", Search: "pro"}
	first := ApplyFilters(cat, f)
	second := ApplyFilters(cat, f)
	assert.Equal(t, ids(first), ids(second))
}

func TestApplyFilters_StagesAreConjunctive(t *testing.T) {
	cat := testProducts()
	narrow := ApplyFilters(cat, FilterState{Category: "iphone", Series: FilterAll, Condition: "nuevo"})
	wide := ApplyFilters(cat, FilterState{Category: "iphone", Series: FilterAll, Condition: FilterAll})
	require.NotEmpty(t, narrow)
	wideIDs := map[string]struct{}{}
	for _, p := range wide {
		wideIDs[p.ID] = struct{}{}
	}
	for _, p := range narrow {
		_, ok := wideIDs[p.ID]
		assert.True(t, ok, "%s filtrado angosto debería estar en el ancho", p.ID)
	}
	assert.LessOrEqual(t, len(narrow), len(wide))
	assert.LessOrEqual(t, len(wide), len(cat))
}

func TestApplyFilters_SearchIsCaseInsensitiveSubstring(t *testing.T) {
	cat := testProducts()

	t.Run("matchea nombre", func(t *testing.T) {
		got := ApplyFilters(cat, FilterState{Category: FilterAll, Series: FilterAll, Condition: FilterAll, Search: "PRO"})
		assert.Contains(t, ids(got), "iphone-16-pro-max")
		assert.Contains(t, ids(got), "iphone-15-pro")
	})

	t.Run("matchea specs", func(t *testing.T) {
		got := ApplyFilters(cat, FilterState{Category: FilterAll, Series: FilterAll, Condition: FilterAll, Search: "a18 pro"})
		assert.Equal(t, []string{"iphone-16-pro-max"}, ids(got))
	})

	t.Run("consulta en blanco pasa todo", func(t *testing.T) {
		got := ApplyFilters(cat, FilterState{Category: FilterAll, Series: FilterAll, Condition: FilterAll, Search: "   "})
		assert.Len(t, got, len(cat))
	})

	t.Run("sin coincidencias devuelve vacío", func(t *testing.T) {
		got := ApplyFilters(cat, FilterState{Category: FilterAll, Series: FilterAll, Condition: FilterAll, Search: "galaxy"})
		assert.Empty(t, got)
	})
}

func TestApplyFilters_SeriesSelection(t *testing.T) {
	cat := testProducts()

	t.Run("serie concreta", func(t *testing.T) {
		got := ApplyFilters(cat, FilterState{Category: FilterAll, Series: "16", Condition: FilterAll})
		assert.Equal(t, []string{"iphone-16-pro-max", "iphone-16"}, ids(got))
	})

	t.Run("serie no numérica degrada a vacío sin error", func(t *testing.T) {
		got := ApplyFilters(cat, FilterState{Category: FilterAll, Series: "dieciseis", Condition: FilterAll})
		assert.Empty(t, got)
	})

	t.Run("serie sobre categoría sin serie queda vacío", func(t *testing.T) {
		got := ApplyFilters(cat, FilterState{Category: "accesorio", Series: "16", Condition: FilterAll})
		assert.Empty(t, got)
	})
}

func TestFilterState_IsDefault(t *testing.T) {
	assert.True(t, NewFilterState().IsDefault())
	f := NewFilterState()
	f.Search = "  "
	assert.True(t, f.IsDefault())
	f.Category = "iphone"
	assert.False(t, f.IsDefault())
}
