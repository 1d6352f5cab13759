package repo

import (
	"database/sql"
	"time"

	"github.com/shopkhata/billing-service/internal/entities"
)

type Order struct {
	OrderID            string         `db:"order_id"`
	UserID             string         `db:"user_id"`
	SerialNumber       string         `db:"serial_number"`
	ShopName           string         `db:"shop_name"`
	CustomerID         sql.NullString `db:"customer_id"`
	CustomerName       string         `db:"customer_name"`
	CustomerAddress    string         `db:"customer_address"`
	CustomerContact    string         `db:"customer_contact"`
	QtyPiece           float64        `db:"qty_piece"`
	QtyBox             float64        `db:"qty_box"`
	QtyKg              float64        `db:"qty_kg"`
	QtyLitre           float64        `db:"qty_litre"`
	QtyGm              float64        `db:"qty_gm"`
	QtyMl              float64        `db:"qty_ml"`
	Subtotal           float64        `db:"subtotal"`
	DiscountPercentage float64        `db:"discount_percentage"`
	Total              float64        `db:"total"`
	Remarks            sql.NullString `db:"remarks"`
	Status             string         `db:"status"`
	SettlementMethod   sql.NullString `db:"settlement_method"`
	SettlementAmount   float64        `db:"settlement_amount"`
	SettledAt          sql.NullTime   `db:"settled_at"`
	DiscardedAt        sql.NullTime   `db:"discarded_at"`
	CreatedAt          time.Time      `db:"created_at"`
}

type OrderItem struct {
	OrderID     string         `db:"order_id"`
	Position    int            `db:"position"`
	ProductID   sql.NullString `db:"product_id"`
	ProductName string         `db:"product_name"`
	Quantity    float64        `db:"quantity"`
	Unit        string         `db:"unit"`
	IsFree      bool           `db:"is_free"`
}

type SettlementEntry struct {
	OrderID    string         `db:"order_id"`
	Action     string         `db:"action"`
	Method     sql.NullString `db:"method"`
	AmountPaid float64        `db:"amount_paid"`
	At         time.Time      `db:"at"`
}

type StickyNote struct {
	NoteID        string         `db:"note_id"`
	UserID        string         `db:"user_id"`
	CustomerID    sql.NullString `db:"customer_id"`
	CustomerName  string         `db:"customer_name"`
	ShopName      string         `db:"shop_name"`
	TotalQuantity float64        `db:"total_quantity"`
	CreatedAt     time.Time      `db:"created_at"`
	UpdatedAt     time.Time      `db:"updated_at"`
}

type StickyNoteItem struct {
	NoteID      string         `db:"note_id"`
	Position    int            `db:"position"`
	ProductID   sql.NullString `db:"product_id"`
	ProductName string         `db:"product_name"`
	Quantity    float64        `db:"quantity"`
	Unit        sql.NullString `db:"unit"`
}

type DeliveryPartner struct {
	PartnerID     string         `db:"partner_id"`
	Name          string         `db:"name"`
	Email         sql.NullString `db:"email"`
	Phone         sql.NullString `db:"phone"`
	Avatar        sql.NullString `db:"avatar"`
	Status        string         `db:"status"`
	CreatedByUser sql.NullString `db:"created_by_user"`
	AdminEmail    sql.NullString `db:"admin_email"`
	CreatedAt     time.Time      `db:"created_at"`
	NotifiedAt    sql.NullTime   `db:"notified_at"`
}

type CustomerBalance struct {
	CustomerID string  `db:"customer_id"`
	Debit      float64 `db:"debit"`
	Credit     float64 `db:"credit"`
	TotalSales float64 `db:"total_sales"`
}

func OrderToEntity(o Order, items []OrderItem, history []SettlementEntry) entities.Order {
	order := entities.Order{
		OrderID:      o.OrderID,
		UserID:       o.UserID,
		SerialNumber: o.SerialNumber,

		ShopName:        o.ShopName,
		CustomerID:      nullStringToString(o.CustomerID),
		CustomerName:    o.CustomerName,
		CustomerAddress: o.CustomerAddress,
		CustomerContact: o.CustomerContact,

		QuantitySummary: entities.QuantitySummary{
			Piece: o.QtyPiece,
			Box:   o.QtyBox,
			Kg:    o.QtyKg,
			Litre: o.QtyLitre,
			Gm:    o.QtyGm,
			Ml:    o.QtyMl,
		},

		Subtotal:           o.Subtotal,
		DiscountPercentage: o.DiscountPercentage,
		Total:              o.Total,
		Remarks:            nullStringToString(o.Remarks),

		Status:           o.Status,
		SettlementMethod: nullStringToString(o.SettlementMethod),
		SettlementAmount: o.SettlementAmount,
		SettledAt:        nullTimeToTime(o.SettledAt),
		DiscardedAt:      nullTimeToTime(o.DiscardedAt),

		CreatedAt: o.CreatedAt,
	}

	for _, it := range items {
		item := entities.OrderItem{
			ProductID:   nullStringToString(it.ProductID),
			ProductName: it.ProductName,
			Quantity:    it.Quantity,
			Unit:        it.Unit,
		}
		if it.IsFree {
			order.FreeItems = append(order.FreeItems, item)
		} else {
			order.Items = append(order.Items, item)
		}
	}

	for _, h := range history {
		order.SettlementHistory = append(order.SettlementHistory, entities.SettlementEntry{
			Action:     h.Action,
			Method:     nullStringToString(h.Method),
			AmountPaid: h.AmountPaid,
			At:         h.At,
		})
	}

	return order
}

func NoteToEntity(n StickyNote, items []StickyNoteItem) entities.StickyNote {
	note := entities.StickyNote{
		ID:            n.NoteID,
		UserID:        n.UserID,
		CustomerID:    nullStringToString(n.CustomerID),
		CustomerName:  n.CustomerName,
		ShopName:      n.ShopName,
		TotalQuantity: n.TotalQuantity,
		CreatedAt:     n.CreatedAt,
		UpdatedAt:     n.UpdatedAt,
	}

	for _, it := range items {
		note.Items = append(note.Items, entities.NoteItem{
			ProductID:   nullStringToString(it.ProductID),
			ProductName: it.ProductName,
			Quantity:    it.Quantity,
			Unit:        nullStringToString(it.Unit),
		})
	}

	return note
}

func PartnerToEntity(p DeliveryPartner) entities.DeliveryPartner {
	return entities.DeliveryPartner{
		ID:            p.PartnerID,
		Name:          p.Name,
		Email:         nullStringToString(p.Email),
		Phone:         nullStringToString(p.Phone),
		Avatar:        nullStringToString(p.Avatar),
		Status:        p.Status,
		CreatedByUser: nullStringToString(p.CreatedByUser),
		AdminEmail:    nullStringToString(p.AdminEmail),
		CreatedAt:     p.CreatedAt,
		NotifiedAt:    nullTimeToTime(p.NotifiedAt),
	}
}

func nullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

func nullTime(t time.Time) sql.NullTime {
	if t.IsZero() {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: t, Valid: true}
}

func nullStringToString(ns sql.NullString) string {
	if ns.Valid {
		return ns.String
	}
	return ""
}

func nullTimeToTime(nt sql.NullTime) time.Time {
	if nt.Valid {
		return nt.Time
	}
	return time.Time{}
}
