package responses

// ReportRow is one synthetic-view table row.
type ReportRow struct {
	Dia        string `json:"dia"`
	Quantidade int64  `json:"quantidade"`
}

// ChartBar is one analytic-view bar.
type ChartBar struct {
	Label string `json:"label"`
	Value int64  `json:"value"`
}

type Report struct {
	Visualizacao string      `json:"visualizacao"`
	DataInicial  string      `json:"data_inicial"`
	DataFinal    string      `json:"data_final"`
	Total        int64       `json:"total"`
	Linhas       []ReportRow `json:"linhas,omitempty"`
	Grafico      []ChartBar  `json:"grafico,omitempty"`
}
