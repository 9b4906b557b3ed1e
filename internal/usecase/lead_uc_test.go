package usecase_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phenrril/newmobile/internal/domain"
	"github.com/phenrril/newmobile/internal/usecase"
)

func TestLeadRegister(t *testing.T) {
	uc := &usecase.LeadUC{}

	t.Run("asigna referencia y fecha", func(t *testing.T) {
		l := &domain.Lead{Name: " Ana ", Business: "Celulares del Sur", Email: "ana@sur.com"}
		require.NoError(t, uc.Register(l))
		assert.NotEqual(t, uuid.Nil, l.Ref)
		assert.False(t, l.CreatedAt.IsZero())
		assert.Equal(t, "Ana", l.Name)
	})

	t.Run("rechaza sin nombre o comercio", func(t *testing.T) {
		assert.Error(t, uc.Register(&domain.Lead{Name: "Ana"}))
		assert.Error(t, uc.Register(&domain.Lead{Business: "Tienda"}))
	})

	t.Run("rechaza email inválido", func(t *testing.T) {
		l := &domain.Lead{Name: "Ana", Business: "Tienda", Email: "no-es-mail"}
		assert.Error(t, uc.Register(l))
	})

	t.Run("email vacío es opcional", func(t *testing.T) {
		assert.NoError(t, uc.Register(&domain.Lead{Name: "Ana", Business: "Tienda"}))
	})
}

func TestLeadWhatsAppText(t *testing.T) {
	uc := &usecase.LeadUC{}
	l := &domain.Lead{Name: "Ana", Business: "Celulares del Sur", Quantity: "5-20 equipos", TaxID: "30-11111111-9"}
	require.NoError(t, uc.Register(l))
	text := uc.WhatsAppText(l)
	assert.Contains(t, text, "Ana")
	assert.Contains(t, text, "Celulares del Sur")
	assert.Contains(t, text, "5-20 equipos")
	assert.Contains(t, text, "ref "+l.Ref.String()[:8])
}
