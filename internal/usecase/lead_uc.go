package usecase

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/phenrril/newmobile/internal/domain"
)

var emailRe = regexp.MustCompile(`^[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)

type LeadUC struct{}

// Register valida la consulta mayorista, le asigna referencia y la deja
// registrada en el log. No hay persistencia: el seguimiento sigue por el
// canal de mensajería.
func (uc *LeadUC) Register(l *domain.Lead) error {
	if l == nil {
		return errors.New("lead nil")
	}
	l.Name = strings.TrimSpace(l.Name)
	l.Business = strings.TrimSpace(l.Business)
	l.Email = strings.TrimSpace(l.Email)
	l.Phone = strings.TrimSpace(l.Phone)
	if l.Name == "" || l.Business == "" {
		return errors.New("nombre y comercio son obligatorios")
	}
	if l.Email != "" && !emailRe.MatchString(l.Email) {
		return errors.New("email inválido")
	}
	if l.Ref == uuid.Nil {
		l.Ref = uuid.New()
	}
	if l.CreatedAt.IsZero() {
		l.CreatedAt = time.Now()
	}
	log.Info().
		Str("ref", l.Ref.String()).
		Str("business", l.Business).
		Str("email", l.Email).
		Msg("consulta mayorista")
	return nil
}

// WhatsAppText compone el mensaje de WhatsApp de una consulta mayorista.
func (uc *LeadUC) WhatsAppText(l *domain.Lead) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Hola! Soy %s de %s y quiero acceder a precios mayoristas.", l.Name, l.Business)
	if l.Quantity != "" {
		fmt.Fprintf(&b, " Volumen estimado: %s.", l.Quantity)
	}
	if l.TaxID != "" {
		fmt.Fprintf(&b, " CUIT: %s.", l.TaxID)
	}
	if l.Message != "" {
		fmt.Fprintf(&b, " %s", l.Message)
	}
	fmt.Fprintf(&b, " [ref %s]", l.Ref.String()[:8])
	return b.String()
}
