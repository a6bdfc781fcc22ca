package response

import "pos-api/internal/usecase/commands"

type PurchaseResponse struct {
	TransactionID int64 `json:"trd_id"`
	TotalAmt      int64 `json:"total_amt"`
	TtlAmtExTax   int64 `json:"ttl_amt_ex_tax"`
	TaxAmt        int64 `json:"tax_amt"`
}

func FromPurchaseResult(r *commands.PurchaseResult) *PurchaseResponse {
	return &PurchaseResponse{
		TransactionID: r.TransactionID,
		TotalAmt:      r.Total,
		TtlAmtExTax:   r.SubtotalExTax,
		TaxAmt:        r.Tax,
	}
}
