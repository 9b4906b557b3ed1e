package domain

import "errors"

var ErrNotFound = errors.New("no encontrado")

type Category string

const (
	CategoryIPhone    Category = "iphone"
	CategoryAccessory Category = "accesorio"
	CategoryPart      Category = "repuesto"
)

type Condition string

const (
	ConditionNew       Condition = "nuevo"
	ConditionCertified Condition = "certificado"
)

// Product es un registro inmutable del catálogo. Series sólo aplica a
// iphones (número de generación); para accesorios y repuestos queda en nil.
type Product struct {
	ID             string    `yaml:"id" json:"id"`
	Name           string    `yaml:"name" json:"name"`
	Category       Category  `yaml:"category" json:"category"`
	Series         *int      `yaml:"series,omitempty" json:"series,omitempty"`
	Condition      Condition `yaml:"condition" json:"condition"`
	Specs          []string  `yaml:"specs" json:"specs"`
	Gallery        []string  `yaml:"gallery" json:"gallery"`
	Description    string    `yaml:"description" json:"description"`
	ContactMessage string    `yaml:"contact_message" json:"contact_message"`
}

// HeroImage devuelve la imagen principal (primera de la galería).
func (p Product) HeroImage() string {
	if len(p.Gallery) == 0 {
		return ""
	}
	return p.Gallery[0]
}

// CatalogSource expone la vista ordenada, de sólo lectura, del catálogo.
type CatalogSource interface {
	All() []Product
	Len() int
}
