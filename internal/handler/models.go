package handler

import (
	"time"

	"github.com/shopkhata/billing-service/internal/entities"
)

// OrderItem позиция заказа
type OrderItem struct {
	ProductID   string  `json:"productId,omitempty"`
	ProductName string  `json:"productName" validate:"required"`
	Quantity    float64 `json:"quantity" validate:"gte=0"`
	Unit        string  `json:"unit" validate:"required,oneof=piece box kg litre gm ml"`
}

// QuantitySummary сводка количества по единицам измерения
type QuantitySummary struct {
	Piece float64 `json:"piece"`
	Box   float64 `json:"box"`
	Kg    float64 `json:"kg"`
	Litre float64 `json:"litre"`
	Gm    float64 `json:"gm"`
	Ml    float64 `json:"ml"`
}

// SettlementEntry запись истории расчётов
type SettlementEntry struct {
	Action     string    `json:"action"`
	Method     string    `json:"method,omitempty"`
	AmountPaid float64   `json:"amountPaid"`
	At         time.Time `json:"at"`
}

// CreateOrderRequest запрос на создание заказа
type CreateOrderRequest struct {
	UserID       string `json:"userId" validate:"required"`
	OrderID      string `json:"orderId" validate:"required"`
	SerialNumber string `json:"serialNumber" validate:"required"`

	ShopName        string `json:"shopName" validate:"required"`
	CustomerID      string `json:"customerId" validate:"required"`
	CustomerName    string `json:"customerName" validate:"required"`
	CustomerAddress string `json:"customerAddress" validate:"required"`
	CustomerContact string `json:"customerContact" validate:"required"`

	Items     []OrderItem `json:"items" validate:"required,min=1,dive"`
	FreeItems []OrderItem `json:"freeItems,omitempty" validate:"omitempty,dive"`

	QuantitySummary QuantitySummary `json:"quantitySummary"`

	Subtotal           float64 `json:"subtotal" validate:"gte=0"`
	DiscountPercentage float64 `json:"discountPercentage" validate:"gte=0"`
	Total              float64 `json:"total" validate:"gte=0"`
	Remarks            string  `json:"remarks,omitempty"`
}

// UpdateOrderRequest запрос на расчёт или отмену заказа
type UpdateOrderRequest struct {
	Action  string  `json:"action" validate:"required,oneof=discard settle"`
	OrderID string  `json:"orderId" validate:"required"`
	UserID  string  `json:"userId" validate:"required"`
	Method  string  `json:"method,omitempty"`
	Amount  float64 `json:"amount,omitempty"`
}

// Order представляет заказ
type Order struct {
	OrderID      string `json:"orderId"`
	UserID       string `json:"userId"`
	SerialNumber string `json:"serialNumber"`

	ShopName        string `json:"shopName"`
	CustomerID      string `json:"customerId,omitempty"`
	CustomerName    string `json:"customerName"`
	CustomerAddress string `json:"customerAddress"`
	CustomerContact string `json:"customerContact"`

	Items     []OrderItem `json:"items"`
	FreeItems []OrderItem `json:"freeItems"`

	QuantitySummary QuantitySummary `json:"quantitySummary"`

	Subtotal           float64 `json:"subtotal"`
	DiscountPercentage float64 `json:"discountPercentage"`
	Total              float64 `json:"total"`
	Remarks            string  `json:"remarks,omitempty"`

	Status           string     `json:"status"`
	SettlementMethod string     `json:"settlementMethod,omitempty"`
	SettlementAmount float64    `json:"settlementAmount"`
	SettledAt        *time.Time `json:"settledAt,omitempty"`
	DiscardedAt      *time.Time `json:"discardedAt,omitempty"`

	SettlementHistory []SettlementEntry `json:"settlementHistory"`

	CreatedAt time.Time `json:"createdAt"`
}

// OrderResponse ответ с заказом
type OrderResponse struct {
	Success bool  `json:"success"`
	Order   Order `json:"order"`
}

// NoteItem позиция черновика
type NoteItem struct {
	ProductID   string  `json:"productId,omitempty"`
	ProductName string  `json:"productName"`
	Quantity    float64 `json:"quantity"`
	Unit        string  `json:"unit,omitempty"`
}

// CreateNoteRequest запрос на создание черновика
type CreateNoteRequest struct {
	UserID       string     `json:"userId" validate:"required"`
	CustomerID   string     `json:"customerId,omitempty"`
	CustomerName string     `json:"customerName" validate:"required"`
	ShopName     string     `json:"shopName" validate:"required"`
	Items        []NoteItem `json:"items" validate:"required,min=1"`
}

// UpdateNoteRequest запрос на обновление черновика
type UpdateNoteRequest struct {
	ID           string     `json:"id" validate:"required"`
	UserID       string     `json:"userId" validate:"required"`
	CustomerID   string     `json:"customerId,omitempty"`
	CustomerName string     `json:"customerName" validate:"required"`
	ShopName     string     `json:"shopName" validate:"required"`
	Items        []NoteItem `json:"items" validate:"required,min=1"`
}

// DeleteNoteRequest запрос на удаление черновика
type DeleteNoteRequest struct {
	ID     string `json:"id" validate:"required"`
	UserID string `json:"userId" validate:"required"`
}

// StickyNote черновик заказа
type StickyNote struct {
	ID            string     `json:"id"`
	UserID        string     `json:"userId"`
	CustomerID    string     `json:"customerId,omitempty"`
	CustomerName  string     `json:"customerName"`
	ShopName      string     `json:"shopName"`
	Items         []NoteItem `json:"items"`
	TotalQuantity float64    `json:"totalQuantity"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     time.Time  `json:"updatedAt"`
}

// DeleteNoteResponse подтверждение удаления черновика
type DeleteNoteResponse struct {
	Success bool   `json:"success"`
	ID      string `json:"id"`
}

// UpdatePartnerRequest запрос на изменение партнёра доставки.
// adminEmail одновременно и идентификатор запрашивающего, и изменяемое поле.
type UpdatePartnerRequest struct {
	PartnerID string `json:"partnerId" validate:"required"`

	Name   *string `json:"name,omitempty"`
	Email  *string `json:"email,omitempty"`
	Phone  *string `json:"phone,omitempty"`
	Status *string `json:"status,omitempty"`

	UserID     string  `json:"userId,omitempty"`
	AdminID    string  `json:"adminId,omitempty"`
	AdminEmail *string `json:"adminEmail,omitempty"`
}

// DeletePartnerRequest запрос на удаление партнёра доставки
type DeletePartnerRequest struct {
	PartnerID  string `json:"partnerId" validate:"required"`
	UserID     string `json:"userId,omitempty"`
	AdminID    string `json:"adminId,omitempty"`
	AdminEmail string `json:"adminEmail,omitempty"`
}

// DeliveryPartner партнёр доставки
type DeliveryPartner struct {
	ID            string     `json:"id"`
	Name          string     `json:"name"`
	Email         string     `json:"email,omitempty"`
	Phone         string     `json:"phone,omitempty"`
	Avatar        string     `json:"avatar,omitempty"`
	Status        string     `json:"status"`
	CreatedByUser string     `json:"createdByUser,omitempty"`
	AdminEmail    string     `json:"adminEmail,omitempty"`
	CreatedAt     time.Time  `json:"createdAt"`
	NotifiedAt    *time.Time `json:"notifiedAt,omitempty"`
}

// UpdatePartnerResponse ответ на изменение партнёра
type UpdatePartnerResponse struct {
	Message string          `json:"message"`
	Partner DeliveryPartner `json:"partner"`
}

// DeletePartnerResponse ответ на удаление партнёра
type DeletePartnerResponse struct {
	Message   string `json:"message"`
	PartnerID string `json:"partnerId"`
}

func OrderItemsJSONToEntity(items []OrderItem) []entities.OrderItem {
	if len(items) == 0 {
		return nil
	}
	result := make([]entities.OrderItem, 0, len(items))
	for _, it := range items {
		result = append(result, entities.OrderItem{
			ProductID:   it.ProductID,
			ProductName: it.ProductName,
			Quantity:    it.Quantity,
			Unit:        it.Unit,
		})
	}
	return result
}

func OrderItemsEntityToJSON(items []entities.OrderItem) []OrderItem {
	result := make([]OrderItem, 0, len(items))
	for _, it := range items {
		result = append(result, OrderItem{
			ProductID:   it.ProductID,
			ProductName: it.ProductName,
			Quantity:    it.Quantity,
			Unit:        it.Unit,
		})
	}
	return result
}

func CreateOrderRequestToEntity(r CreateOrderRequest) entities.Order {
	return entities.Order{
		OrderID:      r.OrderID,
		UserID:       r.UserID,
		SerialNumber: r.SerialNumber,

		ShopName:        r.ShopName,
		CustomerID:      r.CustomerID,
		CustomerName:    r.CustomerName,
		CustomerAddress: r.CustomerAddress,
		CustomerContact: r.CustomerContact,

		Items:     OrderItemsJSONToEntity(r.Items),
		FreeItems: OrderItemsJSONToEntity(r.FreeItems),

		QuantitySummary: entities.QuantitySummary{
			Piece: r.QuantitySummary.Piece,
			Box:   r.QuantitySummary.Box,
			Kg:    r.QuantitySummary.Kg,
			Litre: r.QuantitySummary.Litre,
			Gm:    r.QuantitySummary.Gm,
			Ml:    r.QuantitySummary.Ml,
		},

		Subtotal:           r.Subtotal,
		DiscountPercentage: r.DiscountPercentage,
		Total:              r.Total,
		Remarks:            r.Remarks,
	}
}

func OrderEntityToJSON(o entities.Order) Order {
	history := make([]SettlementEntry, 0, len(o.SettlementHistory))
	for _, h := range o.SettlementHistory {
		history = append(history, SettlementEntry{
			Action:     h.Action,
			Method:     h.Method,
			AmountPaid: h.AmountPaid,
			At:         h.At,
		})
	}

	return Order{
		OrderID:      o.OrderID,
		UserID:       o.UserID,
		SerialNumber: o.SerialNumber,

		ShopName:        o.ShopName,
		CustomerID:      o.CustomerID,
		CustomerName:    o.CustomerName,
		CustomerAddress: o.CustomerAddress,
		CustomerContact: o.CustomerContact,

		Items:     OrderItemsEntityToJSON(o.Items),
		FreeItems: OrderItemsEntityToJSON(o.FreeItems),

		QuantitySummary: QuantitySummary{
			Piece: o.QuantitySummary.Piece,
			Box:   o.QuantitySummary.Box,
			Kg:    o.QuantitySummary.Kg,
			Litre: o.QuantitySummary.Litre,
			Gm:    o.QuantitySummary.Gm,
			Ml:    o.QuantitySummary.Ml,
		},

		Subtotal:           o.Subtotal,
		DiscountPercentage: o.DiscountPercentage,
		Total:              o.Total,
		Remarks:            o.Remarks,

		Status:           o.Status,
		SettlementMethod: o.SettlementMethod,
		SettlementAmount: o.SettlementAmount,
		SettledAt:        timeOrNil(o.SettledAt),
		DiscardedAt:      timeOrNil(o.DiscardedAt),

		SettlementHistory: history,

		CreatedAt: o.CreatedAt,
	}
}

func NoteItemsJSONToEntity(items []NoteItem) []entities.NoteItem {
	result := make([]entities.NoteItem, 0, len(items))
	for _, it := range items {
		result = append(result, entities.NoteItem{
			ProductID:   it.ProductID,
			ProductName: it.ProductName,
			Quantity:    it.Quantity,
			Unit:        it.Unit,
		})
	}
	return result
}

func NoteEntityToJSON(n entities.StickyNote) StickyNote {
	items := make([]NoteItem, 0, len(n.Items))
	for _, it := range n.Items {
		items = append(items, NoteItem{
			ProductID:   it.ProductID,
			ProductName: it.ProductName,
			Quantity:    it.Quantity,
			Unit:        it.Unit,
		})
	}

	return StickyNote{
		ID:            n.ID,
		UserID:        n.UserID,
		CustomerID:    n.CustomerID,
		CustomerName:  n.CustomerName,
		ShopName:      n.ShopName,
		Items:         items,
		TotalQuantity: n.TotalQuantity,
		CreatedAt:     n.CreatedAt,
		UpdatedAt:     n.UpdatedAt,
	}
}

func PartnerEntityToJSON(p entities.DeliveryPartner) DeliveryPartner {
	return DeliveryPartner{
		ID:            p.ID,
		Name:          p.Name,
		Email:         p.Email,
		Phone:         p.Phone,
		Avatar:        p.Avatar,
		Status:        p.Status,
		CreatedByUser: p.CreatedByUser,
		AdminEmail:    p.AdminEmail,
		CreatedAt:     p.CreatedAt,
		NotifiedAt:    timeOrNil(p.NotifiedAt),
	}
}

func timeOrNil(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}
