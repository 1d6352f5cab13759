package entities

import (
	"errors"
	"time"
)

type NoteItem struct {
	ProductID   string
	ProductName string
	Quantity    float64
	Unit        string
}

// StickyNote - черновик заказа. Не влияет ни на остатки, ни на балансы.
type StickyNote struct {
	ID            string
	UserID        string
	CustomerID    string
	CustomerName  string
	ShopName      string
	Items         []NoteItem
	TotalQuantity float64
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

var (
	// Не найдено и не принадлежит пользователю намеренно не различаются
	ErrNoteNotFound = errors.New("sticky note not found or not authorized")
	ErrNoValidItems = errors.New("valid items are required")
)
