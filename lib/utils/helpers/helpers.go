package helpers

import (
	"context"
	"sort"
	"strings"
)

func IsContextDone(ctx context.Context) bool {
	if ctx == nil {
		return true
	}
	select {
	case <-ctx.Done():
		return true
	default:
	}
	return false
}

// IsOtherLabel reconoce las entradas comodín de los catálogos.
func IsOtherLabel(label string) bool {
	normalized := strings.ToLower(strings.TrimSpace(label))
	return normalized == "otro" || normalized == "otros" || normalized == "otra" || normalized == "otras"
}

// SortLabelsOtherLast ordena alfabéticamente dejando "otro"/"otros" siempre
// al final, sin importar su orden natural.
func SortLabelsOtherLast(labels []string) {
	sort.SliceStable(labels, func(a, b int) bool {
		return LabelLess(labels[a], labels[b])
	})
}

// LabelLess es la comparación de dos claves: (es_otro, etiqueta).
func LabelLess(a, b string) bool {
	aOther := IsOtherLabel(a)
	bOther := IsOtherLabel(b)
	if aOther != bOther {
		return bOther
	}
	return strings.ToLower(a) < strings.ToLower(b)
}

// Dedup conserva la primera aparición de cada valor manteniendo el orden.
func Dedup(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	result := make([]string, 0, len(values))
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		result = append(result, v)
	}
	return result
}
