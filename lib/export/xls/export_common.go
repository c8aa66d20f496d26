package xlsexport

import "github.com/xuri/excelize/v2"

const (
	exportFont     = "Times New Roman"
	exportFontSize = 11
	exportColWidth = 25
)

// sheetWriter agrupa el archivo y la hoja activa; las filas son 1-based como
// en excelize.
type sheetWriter struct {
	file  *excelize.File
	sheet string
}

func (w sheetWriter) setCell(col, row int, value interface{}) error {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return err
	}
	return w.file.SetCellValue(w.sheet, cell, value)
}

// writeHeaderRow escribe los encabezados en la fila dada, en negrilla y
// centrados, y fija el ancho de todas las columnas usadas.
func (w sheetWriter) writeHeaderRow(row int, headers []string) error {
	style, err := w.file.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{Horizontal: "center"},
		Font: &excelize.Font{
			Bold:   true,
			Family: exportFont,
			Size:   exportFontSize,
		},
	})
	if err != nil {
		return err
	}
	if err = w.styleRange(style, 1, row, len(headers), row); err != nil {
		return err
	}
	lastCol, err := excelize.ColumnNumberToName(len(headers))
	if err != nil {
		return err
	}
	if err = w.file.SetColWidth(w.sheet, "A", lastCol, exportColWidth); err != nil {
		return err
	}
	for idx, value := range headers {
		if err = w.setCell(idx+1, row, value); err != nil {
			return err
		}
	}
	return nil
}

func (w sheetWriter) writeRow(row int, values []interface{}) error {
	for idx, value := range values {
		if err := w.setCell(idx+1, row, value); err != nil {
			return err
		}
	}
	return nil
}

// styleDataRange aplica el estilo de celdas de datos a un bloque rectangular.
func (w sheetWriter) styleDataRange(colFrom, rowFrom, colTo, rowTo int) error {
	style, err := w.file.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{
			Horizontal: "left",
			Vertical:   "center",
		},
		Font: &excelize.Font{
			Family: exportFont,
			Size:   exportFontSize,
		},
	})
	if err != nil {
		return err
	}
	return w.styleRange(style, colFrom, rowFrom, colTo, rowTo)
}

func (w sheetWriter) styleRange(style, colFrom, rowFrom, colTo, rowTo int) error {
	cellFirst, err := excelize.CoordinatesToCellName(colFrom, rowFrom)
	if err != nil {
		return err
	}
	cellLast, err := excelize.CoordinatesToCellName(colTo, rowTo)
	if err != nil {
		return err
	}
	return w.file.SetCellStyle(w.sheet, cellFirst, cellLast, style)
}
