package helpers

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIsOtherLabel(t *testing.T) {
	for _, label := range []string{"otro", "Otros", " OTRA ", "otras"} {
		require.True(t, IsOtherLabel(label), label)
	}
	for _, label := range []string{"Bogotá", "otrora", ""} {
		require.False(t, IsOtherLabel(label), label)
	}
}

func TestLabelLess(t *testing.T) {
	t.Run("alfabético sin distinguir mayúsculas", func(t *testing.T) {
		require.True(t, LabelLess("armenia", "Bogotá"))
		require.False(t, LabelLess("Cali", "bogotá"))
	})
	t.Run("otro siempre al final", func(t *testing.T) {
		require.True(t, LabelLess("Zulia", "Otro"))
		require.False(t, LabelLess("Otro", "Armenia"))
	})
	t.Run("dos comodines entre sí", func(t *testing.T) {
		require.True(t, LabelLess("otra", "otro"))
	})
}

func TestSortLabelsOtherLast(t *testing.T) {
	labels := []string{"Otro", "Cali", "Armenia", "otros", "Bogotá"}
	SortLabelsOtherLast(labels)
	require.Equal(t, []string{"Armenia", "Bogotá", "Cali", "Otro", "otros"}, labels)
}

func TestDedup(t *testing.T) {
	t.Run("conserva la primera aparición", func(t *testing.T) {
		require.Equal(t, []string{"Go", "SQL", "Docker"}, Dedup([]string{"Go", "SQL", "Go", "Docker", "SQL"}))
	})
	t.Run("vacío", func(t *testing.T) {
		require.Empty(t, Dedup(nil))
	})
}

func TestIsContextDone(t *testing.T) {
	t.Run("contexto vivo", func(t *testing.T) {
		require.False(t, IsContextDone(context.Background()))
	})
	t.Run("contexto cancelado", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		require.True(t, IsContextDone(ctx))
	})
	t.Run("contexto nulo", func(t *testing.T) {
		require.True(t, IsContextDone(nil))
	})
}
