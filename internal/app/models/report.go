package models

import "time"

// ReportBucket is one aggregation row: appointments counted within one day.
type ReportBucket struct {
	Dia        string `json:"dia"`
	Quantidade int64  `json:"quantidade"`
}

// ExportRecord is the audit entry persisted for every generated report export.
type ExportRecord struct {
	ID           string    `bson:"_id" json:"id"`
	FileName     string    `bson:"file_name" json:"file_name"`
	DataInicial  string    `bson:"data_inicial" json:"data_inicial"`
	DataFinal    string    `bson:"data_final" json:"data_final"`
	Visualizacao string    `bson:"visualizacao" json:"visualizacao"`
	RowCount     int       `bson:"row_count" json:"row_count"`
	Total        int64     `bson:"total" json:"total"`
	ExportedAt   time.Time `bson:"exported_at" json:"exported_at"`
}
