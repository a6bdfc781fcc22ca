package purchase

import "errors"

var ErrInvalidCartItem = errors.New("invalid cart item")

const (
	// DefaultEmployeeCode is stamped on a transaction when the request
	// carries no employee code.
	DefaultEmployeeCode = "9999999999"

	// TaxCategoryStandard tags every detail row. The calculator does not
	// consult it; all items are taxed at the flat rate.
	TaxCategoryStandard = "10"
)

// CartItem is a transient purchase line supplied by the caller.
// Price is in minor currency units per unit of quantity.
type CartItem struct {
	ProductID int64
	Code      string
	Name      string
	Price     int64
	Quantity  int
}

func (i CartItem) Validate() error {
	if i.Quantity <= 0 {
		return ErrInvalidCartItem
	}
	if i.Price < 0 {
		return ErrInvalidCartItem
	}
	return nil
}
