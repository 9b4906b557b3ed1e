package domain

// Badge es la etiqueta de estado que se muestra sobre la tarjeta de un
// producto. Class es la clase CSS, Label el texto visible.
type Badge struct {
	Class string `json:"class"`
	Label string `json:"label"`
}

// Warranty es el bloque de garantía de la página de detalle.
type Warranty struct {
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
}

// ResolveBadge deriva la etiqueta de un producto. Los iphones se
// subclasifican por condición; el resto mapea directo por categoría.
func ResolveBadge(p Product) Badge {
	if p.Category == CategoryIPhone {
		if p.Condition == ConditionCertified {
			return Badge{Class: "badge-certificado", Label: "Certificado"}
		}
		return Badge{Class: "badge-nuevo", Label: "Nuevo"}
	}
	if p.Category == CategoryPart {
		return Badge{Class: "badge-repuesto", Label: "Repuesto"}
	}
	return Badge{Class: "badge-accesorio", Label: "Accesorio"}
}

// ResolveWarranty deriva el texto de garantía: 60 días para iphones,
// 30 días (producto e instalación) para todo lo demás.
func ResolveWarranty(p Product) Warranty {
	if p.Category == CategoryIPhone {
		return Warranty{
			Title:    "Garantía de 60 días",
			Subtitle: "Cobertura por fallas de fábrica y funcionamiento",
		}
	}
	return Warranty{
		Title:    "Garantía de 30 días",
		Subtitle: "Cubre el producto y la instalación",
	}
}
