package request

import (
	"strings"

	"pos-api/internal/domain/purchase"
)

type PurchaseItemRequest struct {
	ProductID int64  `json:"prd_id" binding:"required"`
	Code      string `json:"code" binding:"required"`
	Name      string `json:"name" binding:"required"`
	Price     int64  `json:"price"`
	Quantity  int    `json:"quantity" binding:"required"`
}

type PurchaseRequest struct {
	Items      []PurchaseItemRequest `json:"items" binding:"required,min=1,dive"`
	EmployeeCD *string               `json:"emp_cd,omitempty"`
}

// GetEmployeeCD returns the trimmed employee code, or empty when absent so
// the workflow substitutes the unknown-employee sentinel.
func (r PurchaseRequest) GetEmployeeCD() string {
	if r.EmployeeCD == nil {
		return ""
	}
	return strings.TrimSpace(*r.EmployeeCD)
}

func (r PurchaseRequest) ToDomain() []purchase.CartItem {
	items := make([]purchase.CartItem, 0, len(r.Items))
	for _, item := range r.Items {
		items = append(items, purchase.CartItem{
			ProductID: item.ProductID,
			Code:      item.Code,
			Name:      item.Name,
			Price:     item.Price,
			Quantity:  item.Quantity,
		})
	}
	return items
}
