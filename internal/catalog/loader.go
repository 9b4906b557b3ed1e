package catalog

import (
	_ "embed"
	"fmt"
	"os"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/phenrril/newmobile/internal/domain"
)

//go:embed catalog.yaml
var embeddedSeed []byte

// catalogFile es la estructura de nivel superior del YAML.
type catalogFile struct {
	Products []domain.Product `yaml:"products"`
}

// Catalog mantiene el snapshot inmutable del catálogo. La única mutación
// posible es el reemplazo atómico completo que hace el watcher; los
// lectores siempre ven una vista consistente y en orden de declaración.
type Catalog struct {
	mu       sync.RWMutex
	products []domain.Product
}

// Load construye el catálogo desde el seed embebido en el binario.
func Load() (*Catalog, error) {
	products, err := parse(embeddedSeed)
	if err != nil {
		return nil, err
	}
	return &Catalog{products: products}, nil
}

// LoadFile construye el catálogo desde un YAML externo (CATALOG_PATH).
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("catalog: leer %s: %w", path, err)
	}
	products, err := parse(data)
	if err != nil {
		return nil, err
	}
	return &Catalog{products: products}, nil
}

// All devuelve una copia de todos los productos, en orden de catálogo.
func (c *Catalog) All() []domain.Product {
	c.mu.RLock()
	defer c.mu.RUnlock()
	cp := make([]domain.Product, len(c.products))
	copy(cp, c.products)
	return cp
}

func (c *Catalog) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.products)
}

// replace intercambia el snapshot completo. Sólo lo usa el watcher.
func (c *Catalog) replace(products []domain.Product) {
	c.mu.Lock()
	c.products = products
	c.mu.Unlock()
}

// parse decodifica y valida el YAML. La buena formación del catálogo es
// una precondición del resto del sistema, así que se verifica acá, en la
// frontera de carga, y nunca más en runtime.
func parse(data []byte) ([]domain.Product, error) {
	var f catalogFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("catalog: parse yaml: %w", err)
	}
	if len(f.Products) == 0 {
		return nil, fmt.Errorf("catalog: sin productos")
	}
	seen := make(map[string]struct{}, len(f.Products))
	for i, p := range f.Products {
		if p.ID == "" {
			return nil, fmt.Errorf("catalog: producto %d sin id", i)
		}
		if _, dup := seen[p.ID]; dup {
			return nil, fmt.Errorf("catalog: id duplicado %q", p.ID)
		}
		seen[p.ID] = struct{}{}
		if len(p.Gallery) == 0 {
			return nil, fmt.Errorf("catalog: %s sin imágenes", p.ID)
		}
		switch p.Category {
		case domain.CategoryIPhone:
			if p.Series == nil || *p.Series <= 0 {
				return nil, fmt.Errorf("catalog: %s es iphone sin serie", p.ID)
			}
		case domain.CategoryAccessory, domain.CategoryPart:
			if p.Series != nil {
				return nil, fmt.Errorf("catalog: %s no es iphone y tiene serie", p.ID)
			}
		default:
			return nil, fmt.Errorf("catalog: %s con categoría inválida %q", p.ID, p.Category)
		}
		switch p.Condition {
		case domain.ConditionNew, domain.ConditionCertified:
		default:
			return nil, fmt.Errorf("catalog: %s con condición inválida %q", p.ID, p.Condition)
		}
	}
	return f.Products, nil
}
