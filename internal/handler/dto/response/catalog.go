package response

import "pos-api/internal/usecase/queries"

type ProductResponse struct {
	ProductID int64  `json:"prd_id"`
	Code      string `json:"code"`
	Name      string `json:"name"`
	Price     int64  `json:"price"`
}

type TaxResponse struct {
	TaxID   int64   `json:"tax_id"`
	TaxRate float64 `json:"tax_rate"`
}

func FromProductView(v *queries.ProductView) *ProductResponse {
	return &ProductResponse{
		ProductID: v.ProductID,
		Code:      v.Code,
		Name:      v.Name,
		Price:     v.Price,
	}
}

func FromTaxView(v *queries.TaxView) *TaxResponse {
	return &TaxResponse{
		TaxID:   v.TaxID,
		TaxRate: v.TaxRate,
	}
}
