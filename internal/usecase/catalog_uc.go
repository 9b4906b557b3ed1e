package usecase

import (
	"sort"

	"github.com/phenrril/newmobile/internal/domain"
)

const relatedLimit = 4

type CatalogUC struct {
	Products domain.CatalogSource
}

// List aplica el pipeline de filtros sobre el catálogo completo.
func (uc *CatalogUC) List(f domain.FilterState) []domain.Product {
	return domain.ApplyFilters(uc.Products.All(), f)
}

// FindByID busca por identificador exacto. Devuelve domain.ErrNotFound si
// no existe; el llamador decide el fallback (en la web, redirigir al
// listado).
func (uc *CatalogUC) FindByID(id string) (domain.Product, error) {
	if id == "" {
		return domain.Product{}, domain.ErrNotFound
	}
	for _, p := range uc.Products.All() {
		if p.ID == id {
			return p, nil
		}
	}
	return domain.Product{}, domain.ErrNotFound
}

// Related arma el set de relacionados: todo producto distinto que comparta
// serie (cuando ambos la tienen) o categoría, en orden de catálogo,
// cortado en limit. Sin ranking; la coincidencia de serie no pesa más que
// la de categoría.
func (uc *CatalogUC) Related(ref domain.Product, limit int) []domain.Product {
	if limit <= 0 {
		limit = relatedLimit
	}
	out := make([]domain.Product, 0, limit)
	for _, p := range uc.Products.All() {
		if p.ID == ref.ID {
			continue
		}
		sameSeries := p.Series != nil && ref.Series != nil && *p.Series == *ref.Series
		if !sameSeries && p.Category != ref.Category {
			continue
		}
		out = append(out, p)
		if len(out) == limit {
			break
		}
	}
	return out
}

// Featured devuelve los primeros n iphones, para la portada.
func (uc *CatalogUC) Featured(n int) []domain.Product {
	f := domain.NewFilterState()
	f.Category = string(domain.CategoryIPhone)
	list := uc.List(f)
	if len(list) > n {
		list = list[:n]
	}
	return list
}

// Series lista las generaciones presentes en el catálogo, ascendente,
// para armar el selector de serie.
func (uc *CatalogUC) Series() []int {
	seen := map[int]struct{}{}
	out := []int{}
	for _, p := range uc.Products.All() {
		if p.Series == nil {
			continue
		}
		if _, ok := seen[*p.Series]; ok {
			continue
		}
		seen[*p.Series] = struct{}{}
		out = append(out, *p.Series)
	}
	sort.Ints(out)
	return out
}
