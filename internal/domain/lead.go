package domain

import (
	"time"

	"github.com/google/uuid"
)

// Lead es una consulta mayorista (B2B). No se persiste: se registra en el
// log y se deriva al canal de mensajería con un código de referencia.
type Lead struct {
	Ref       uuid.UUID
	Name      string
	Business  string
	Email     string
	Phone     string
	TaxID     string // CUIT
	Quantity  string
	Message   string
	CreatedAt time.Time
}
