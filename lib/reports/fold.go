package reports

import (
	"sort"
	"strings"
	"time"

	reportstore "talento-backend/lib/reports/store"
	reportapimodels "talento-backend/models/api/report"
)

// annualTop suma los meses por etiqueta y devuelve las topN más frecuentes;
// empates por etiqueta ascendente. topN <= 0 devuelve todas.
func annualTop(rows []reportstore.Row, topN int) []reportapimodels.LabelCount {
	totals := map[string]int64{}
	for _, row := range rows {
		totals[row.Etiqueta] += row.Total
	}
	result := make([]reportapimodels.LabelCount, 0, len(totals))
	for label, total := range totals {
		result = append(result, reportapimodels.LabelCount{Etiqueta: label, Total: total})
	}
	sort.Slice(result, func(a, b int) bool {
		if result[a].Total != result[b].Total {
			return result[a].Total > result[b].Total
		}
		return result[a].Etiqueta < result[b].Etiqueta
	})
	if topN > 0 && len(result) > topN {
		result = result[:topN]
	}
	return result
}

// monthlyTop1 elige la etiqueta más frecuente de cada mes; los meses sin
// datos no se emiten. Empates por etiqueta ascendente.
func monthlyTop1(rows []reportstore.Row) []reportapimodels.MonthlyTop {
	return monthlyTop1By(rows, func(candidate, current reportstore.Row) bool {
		if candidate.Total != current.Total {
			return candidate.Total > current.Total
		}
		return candidate.Etiqueta < current.Etiqueta
	})
}

// monthlyTop1YesNo es el corte mensual de los agregados si/no: en empate
// gana "si".
func monthlyTop1YesNo(rows []reportstore.Row) []reportapimodels.MonthlyTop {
	return monthlyTop1By(rows, func(candidate, current reportstore.Row) bool {
		if candidate.Total != current.Total {
			return candidate.Total > current.Total
		}
		return candidate.Etiqueta == "si"
	})
}

func monthlyTop1By(rows []reportstore.Row, wins func(candidate, current reportstore.Row) bool) []reportapimodels.MonthlyTop {
	best := map[int]reportstore.Row{}
	for _, row := range rows {
		current, ok := best[row.Mes]
		if !ok || wins(row, current) {
			best[row.Mes] = row
		}
	}
	months := make([]int, 0, len(best))
	for month := range best {
		months = append(months, month)
	}
	sort.Ints(months)
	result := make([]reportapimodels.MonthlyTop, 0, len(months))
	for _, month := range months {
		row := best[month]
		result = append(result, reportapimodels.MonthlyTop{
			Mes:      month,
			Etiqueta: row.Etiqueta,
			Total:    row.Total,
		})
	}
	return result
}

const ageBandOrderKey = "<25,25-34,35-44,45+"

// ageBand clasifica por edad cumplida a la fecha de referencia.
func ageBand(birth, on time.Time) string {
	years := on.Year() - birth.Year()
	if on.Month() < birth.Month() || (on.Month() == birth.Month() && on.Day() < birth.Day()) {
		years--
	}
	switch {
	case years < 25:
		return "<25"
	case years < 35:
		return "25-34"
	case years < 45:
		return "35-44"
	default:
		return "45+"
	}
}

// durationBucket clasifica la duración de un empleo; fin nulo cuenta hasta
// hoy. Divisor fijo de 365 días.
func durationBucket(start time.Time, end *time.Time, today time.Time) string {
	until := today
	if end != nil {
		until = *end
	}
	days := until.Sub(start).Hours() / 24
	years := days / 365
	switch {
	case years < 1:
		return "<1 año"
	case years < 3:
		return "1-3 años"
	case years < 5:
		return "3-5 años"
	default:
		return ">5 años"
	}
}

// orderedCounts pliega filas etiquetadas respetando el orden fijo dado
// (bandas de edad, cubetas de duración).
func orderedCounts(rows []reportstore.Row, orderKey string) []reportapimodels.LabelCount {
	totals := map[string]int64{}
	for _, row := range rows {
		totals[row.Etiqueta] += row.Total
	}
	result := []reportapimodels.LabelCount{}
	for _, label := range strings.Split(orderKey, ",") {
		if total, ok := totals[label]; ok {
			result = append(result, reportapimodels.LabelCount{Etiqueta: label, Total: total})
		}
	}
	return result
}
