package cart

import (
	"slices"

	"github.com/azaliaz/ruboni/internal/domain/models"
)

type ActionKind int

const (
	ActAdd ActionKind = iota
	ActRemove
	ActUpdateQuantity
	ActClear
)

type Action struct {
	Kind      ActionKind
	Product   models.Product
	ProductID int64
	Quantity  int
}

// Reduce returns the next cart for the action. The input slice is not modified.
// Quantity updates to zero or below remove the line item.
func Reduce(items []models.CartItem, a Action) []models.CartItem {
	switch a.Kind {
	case ActAdd:
		next := slices.Clone(items)
		for i := range next {
			if next[i].ProductID == a.Product.ID {
				next[i].Quantity++
				return next
			}
		}
		return append(next, models.CartItem{
			ProductID: a.Product.ID,
			Title:     a.Product.Title,
			UnitPrice: a.Product.Price,
			Quantity:  1,
		})
	case ActRemove:
		return slices.DeleteFunc(slices.Clone(items), func(it models.CartItem) bool {
			return it.ProductID == a.ProductID
		})
	case ActUpdateQuantity:
		if a.Quantity <= 0 {
			return Reduce(items, Action{Kind: ActRemove, ProductID: a.ProductID})
		}
		next := slices.Clone(items)
		for i := range next {
			if next[i].ProductID == a.ProductID {
				next[i].Quantity = a.Quantity
			}
		}
		return next
	case ActClear:
		return []models.CartItem{}
	}
	return items
}

func TotalItems(items []models.CartItem) int {
	n := 0
	for _, it := range items {
		n += it.Quantity
	}
	return n
}

func TotalPrice(items []models.CartItem) float64 {
	var sum float64
	for _, it := range items {
		sum += it.Subtotal()
	}
	return sum
}
