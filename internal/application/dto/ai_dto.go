package dto

import "github.com/shopspring/decimal"

// LineItemAnalysisRequest entrada de POST /api/ai/analyze-line-item.
type LineItemAnalysisRequest struct {
	ItemDescription      string          `json:"item_description"`
	ItemAmount           decimal.Decimal `json:"item_amount"`
	CustomerName         string          `json:"customer_name"`
	CustomerSalesHistory string          `json:"customer_sales_history"`
}

// LineItemAnalysisDTO veredicto del clasificador.
type LineItemAnalysisDTO struct {
	// IsPotentiallyProblematic true si la línea amerita revisión manual.
	IsPotentiallyProblematic bool `json:"is_potentially_problematic"`
	// Reason motivo de la marca; cadena vacía si no hay problema.
	Reason string `json:"reason"`
}
