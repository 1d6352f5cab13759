package entities

import "errors"

// CustomerBalance - текущий баланс покупателя.
// Debit - сколько покупатель должен магазину, Credit - его предоплата.
type CustomerBalance struct {
	CustomerID string
	Debit      float64
	Credit     float64
	TotalSales float64
}

var ErrCustomerNotFound = errors.New("customer not found")
