package dbmodels

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	"talento-backend/models"
)

func TestNewKnowledge(t *testing.T) {
	t.Run("habilidad blanda", func(t *testing.T) {
		rec, err := NewKnowledge(7, KnowledgeRef{Kind: models.KnowledgeKindSoft, RefID: 5})
		require.NoError(t, err)
		require.Equal(t, uint(7), rec.CandidatoID)
		require.NotNil(t, rec.HabilidadBlandaID)
		require.Equal(t, uint(5), *rec.HabilidadBlandaID)
		require.Nil(t, rec.HabilidadTecnicaID)
		require.Nil(t, rec.HerramientaID)
	})
	t.Run("herramienta", func(t *testing.T) {
		rec, err := NewKnowledge(7, KnowledgeRef{Kind: models.KnowledgeKindTool, RefID: 2})
		require.NoError(t, err)
		require.NotNil(t, rec.HerramientaID)
		require.Nil(t, rec.HabilidadBlandaID)
	})
	t.Run("tipo desconocido", func(t *testing.T) {
		_, err := NewKnowledge(7, KnowledgeRef{Kind: "otro", RefID: 5})
		require.True(t, errors.Is(err, models.ErrValidation))
	})
	t.Run("sin referencia", func(t *testing.T) {
		_, err := NewKnowledge(7, KnowledgeRef{Kind: models.KnowledgeKindSoft})
		require.True(t, errors.Is(err, models.ErrValidation))
	})
}

func TestKnowledgeRef(t *testing.T) {
	id := uint(5)
	other := uint(2)
	t.Run("ida y vuelta", func(t *testing.T) {
		rec, err := NewKnowledge(1, KnowledgeRef{Kind: models.KnowledgeKindTechnical, RefID: id})
		require.NoError(t, err)
		ref, err := rec.Ref()
		require.NoError(t, err)
		require.Equal(t, models.KnowledgeKindTechnical, ref.Kind)
		require.Equal(t, id, ref.RefID)
	})
	t.Run("dos FKs presentes", func(t *testing.T) {
		rec := Knowledge{
			Tipo:              models.KnowledgeKindSoft,
			HabilidadBlandaID: &id,
			HerramientaID:     &other,
		}
		_, err := rec.Ref()
		require.True(t, errors.Is(err, models.ErrValidation))
	})
	t.Run("ninguna FK presente", func(t *testing.T) {
		rec := Knowledge{Tipo: models.KnowledgeKindSoft}
		_, err := rec.Ref()
		require.True(t, errors.Is(err, models.ErrValidation))
	})
	t.Run("FK no corresponde al tipo", func(t *testing.T) {
		rec := Knowledge{
			Tipo:          models.KnowledgeKindSoft,
			HerramientaID: &id,
		}
		_, err := rec.Ref()
		require.True(t, errors.Is(err, models.ErrValidation))
	})
}
