package entities

import (
	"bytes"
	"encoding/gob"
	"errors"
	"time"
)

// Статусы заказа. Жизненный цикл: Unsettled -> settled (терминальный).
const (
	StatusUnsettled = "Unsettled"
	StatusSettled   = "settled"
)

// Способы расчёта по заказу.
const (
	MethodCash    = "Cash"
	MethodBankUPI = "Bank/UPI"
	MethodDebt    = "Debt"
)

// Действия в истории расчётов.
const (
	ActionCreated   = "Created"
	ActionDiscarded = "Discarded"
	ActionSettled   = "Settled"
)

type OrderItem struct {
	ProductID   string
	ProductName string
	Quantity    float64
	Unit        string
}

type QuantitySummary struct {
	Piece float64
	Box   float64
	Kg    float64
	Litre float64
	Gm    float64
	Ml    float64
}

// SettlementEntry - запись в журнале расчётов, только добавляется, никогда не переписывается.
type SettlementEntry struct {
	Action     string
	Method     string
	AmountPaid float64
	At         time.Time
}

type Order struct {
	OrderID      string
	UserID       string
	SerialNumber string

	ShopName        string
	CustomerID      string
	CustomerName    string
	CustomerAddress string
	CustomerContact string

	Items     []OrderItem
	FreeItems []OrderItem

	// Сводка по единицам измерения приходит от клиента как есть и сервером не пересчитывается
	QuantitySummary QuantitySummary

	Subtotal           float64
	DiscountPercentage float64
	Total              float64
	Remarks            string

	Status           string
	SettlementMethod string
	SettlementAmount float64
	SettledAt        time.Time
	DiscardedAt      time.Time

	SettlementHistory []SettlementEntry

	CreatedAt time.Time
}

// StockMovements возвращает позиции заказа (включая бесплатные), которые
// двигают складской остаток: привязаны к товару и имеют положительное количество.
func (o *Order) StockMovements() []OrderItem {
	movements := make([]OrderItem, 0, len(o.Items)+len(o.FreeItems))
	for _, it := range append(append([]OrderItem{}, o.Items...), o.FreeItems...) {
		if it.ProductID != "" && it.Quantity > 0 {
			movements = append(movements, it)
		}
	}
	return movements
}

var (
	ErrOrderNotFound           = errors.New("order not found")
	ErrOrderSettled            = errors.New("only Unsettled orders can be modified")
	ErrInvalidSettlementMethod = errors.New("invalid settlement method")
)

func (o *Order) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	enc := gob.NewEncoder(&buf)
	if err := enc.Encode(o); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (o *Order) Unmarshal(data []byte) error {
	buf := bytes.NewBuffer(data)
	dec := gob.NewDecoder(buf)
	return dec.Decode(o)
}

func init() {
	gob.Register(Order{})
	gob.Register(OrderItem{})
	gob.Register(SettlementEntry{})
}
