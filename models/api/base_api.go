package apimodels

type Response struct {
	Status  string      `json:"status"`            //resultado fail/success
	Message string      `json:"message,omitempty"` //mensaje de error
	Data    interface{} `json:"data,omitempty"`    //datos de la respuesta
}

type ScrollerResponse struct {
	Response
	RowCount int64 `json:"row_count"` //total de registros bajo el filtro, sin paginar
}

func NewError(message string) Response {
	return Response{
		Status:  "fail",
		Message: message,
	}
}

func NewResponse(data interface{}) Response {
	return Response{
		Status: "success",
		Data:   data,
	}
}

func NewScrollerResponse(data interface{}, rowCount int64) ScrollerResponse {
	return ScrollerResponse{
		Response: Response{
			Status: "success",
			Data:   data,
		},
		RowCount: rowCount,
	}
}

type Pagination struct {
	Skip  int `json:"skip" query:"skip"`   // Registros a omitir
	Limit int `json:"limit" query:"limit"` // Registros por página
}

func (r Pagination) GetPage() (skip, limit int) {
	skip = r.Skip
	if skip < 0 {
		skip = 0
	}
	limit = r.Limit
	if limit <= 0 {
		limit = 10
	}
	if limit > 100 {
		limit = 100
	}
	return skip, limit
}
