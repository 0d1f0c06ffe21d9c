package requests

type ReportQuery struct {
	DataInicial  string `json:"data_inicial"`
	DataFinal    string `json:"data_final"`
	Visualizacao string `json:"visualizacao" validate:"omitempty,oneof=sintetico analitico"`
}
