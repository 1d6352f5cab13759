package repo

import (
	"context"
	"fmt"

	"github.com/shopkhata/billing-service/internal/entities"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
	"golang.org/x/sync/errgroup"
)

var orderColumns = []string{
	"order_id", "user_id", "serial_number", "shop_name",
	"customer_id", "customer_name", "customer_address", "customer_contact",
	"qty_piece", "qty_box", "qty_kg", "qty_litre", "qty_gm", "qty_ml",
	"subtotal", "discount_percentage", "total", "remarks",
	"status", "settlement_method", "settlement_amount",
	"settled_at", "discarded_at", "created_at",
}

type orderRepo struct {
	base
}

func NewOrderRepo(db *sqlx.DB) *orderRepo {
	return &orderRepo{base: newBase(db)}
}

func (r *orderRepo) SaveOrder(ctx context.Context, o entities.Order) error {
	query, args := r.qb.Insert("orders").
		Columns(orderColumns...).
		Values(
			o.OrderID, o.UserID, o.SerialNumber, o.ShopName,
			nullString(o.CustomerID), o.CustomerName, o.CustomerAddress, o.CustomerContact,
			o.QuantitySummary.Piece, o.QuantitySummary.Box, o.QuantitySummary.Kg,
			o.QuantitySummary.Litre, o.QuantitySummary.Gm, o.QuantitySummary.Ml,
			o.Subtotal, o.DiscountPercentage, o.Total, nullString(o.Remarks),
			o.Status, nullString(o.SettlementMethod), o.SettlementAmount,
			nullTime(o.SettledAt), nullTime(o.DiscardedAt), o.CreatedAt,
		).
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to save order: %w", err)
	}

	if err := r.saveItems(ctx, o.OrderID, o.Items, false); err != nil {
		return err
	}
	if err := r.saveItems(ctx, o.OrderID, o.FreeItems, true); err != nil {
		return err
	}

	for _, entry := range o.SettlementHistory {
		if err := r.appendHistory(ctx, o.OrderID, entry); err != nil {
			return err
		}
	}

	return nil
}

func (r *orderRepo) saveItems(ctx context.Context, orderID string, items []entities.OrderItem, free bool) error {
	if len(items) == 0 {
		return nil
	}

	q := r.qb.Insert("order_items").
		Columns("order_id", "position", "product_id", "product_name", "quantity", "unit", "is_free")

	for i, it := range items {
		q = q.Values(orderID, i, nullString(it.ProductID), it.ProductName, it.Quantity, it.Unit, free)
	}

	query, args := q.MustSql()
	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to save order items: %w", err)
	}
	return nil
}

func (r *orderRepo) appendHistory(ctx context.Context, orderID string, entry entities.SettlementEntry) error {
	query, args := r.qb.Insert("settlement_history").
		Columns("order_id", "action", "method", "amount_paid", "at").
		Values(orderID, entry.Action, nullString(entry.Method), entry.AmountPaid, entry.At).
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to append settlement history: %w", err)
	}
	return nil
}

func (r *orderRepo) OrderByID(ctx context.Context, orderID, userID string) (entities.Order, error) {
	query, args := r.qb.Select(orderColumns...).
		From("orders").
		Where(sq.Eq{"order_id": orderID, "user_id": userID}).
		MustSql()

	var order Order
	err := r.getContext(ctx, &order, query, args...)
	if isNoRows(err) {
		return entities.Order{}, entities.ErrOrderNotFound
	}
	if err != nil {
		return entities.Order{}, fmt.Errorf("failed to get order: %w", err)
	}

	// Позиции и история независимы, читаем параллельно.
	// Чтения идут вне транзакций, *sqlx.DB безопасен для конкурентных запросов.
	var (
		items   []OrderItem
		history []SettlementEntry
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		query, args := r.qb.Select("order_id", "position", "product_id", "product_name", "quantity", "unit", "is_free").
			From("order_items").
			Where(sq.Eq{"order_id": orderID}).
			OrderBy("is_free", "position").
			MustSql()
		return r.db.SelectContext(gctx, &items, query, args...)
	})
	g.Go(func() error {
		query, args := r.qb.Select("order_id", "action", "method", "amount_paid", "at").
			From("settlement_history").
			Where(sq.Eq{"order_id": orderID}).
			OrderBy("id").
			MustSql()
		return r.db.SelectContext(gctx, &history, query, args...)
	})
	if err := g.Wait(); err != nil {
		return entities.Order{}, fmt.Errorf("failed to get order details: %w", err)
	}

	return OrderToEntity(order, items, history), nil
}

func (r *orderRepo) OrdersByUser(ctx context.Context, userID, status string) ([]entities.Order, error) {
	q := r.qb.Select(orderColumns...).
		From("orders").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at DESC")

	if status != "" {
		q = q.Where(sq.Eq{"status": status})
	}

	query, args := q.MustSql()

	var orders []Order
	if err := r.selectContext(ctx, &orders, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select orders: %w", err)
	}

	if len(orders) == 0 {
		return []entities.Order{}, nil
	}

	ids := make([]string, len(orders))
	for i, order := range orders {
		ids[i] = order.OrderID
	}

	var (
		items   []OrderItem
		history []SettlementEntry
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		query, args := r.qb.Select("order_id", "position", "product_id", "product_name", "quantity", "unit", "is_free").
			From("order_items").
			Where(sq.Eq{"order_id": ids}).
			OrderBy("order_id", "is_free", "position").
			MustSql()
		return r.db.SelectContext(gctx, &items, query, args...)
	})
	g.Go(func() error {
		query, args := r.qb.Select("order_id", "action", "method", "amount_paid", "at").
			From("settlement_history").
			Where(sq.Eq{"order_id": ids}).
			OrderBy("order_id", "id").
			MustSql()
		return r.db.SelectContext(gctx, &history, query, args...)
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to select order details: %w", err)
	}

	itemsMap := make(map[string][]OrderItem, len(ids))
	for _, it := range items {
		itemsMap[it.OrderID] = append(itemsMap[it.OrderID], it)
	}
	historyMap := make(map[string][]SettlementEntry, len(ids))
	for _, h := range history {
		historyMap[h.OrderID] = append(historyMap[h.OrderID], h)
	}

	result := make([]entities.Order, 0, len(orders))
	for _, order := range orders {
		result = append(result, OrderToEntity(order, itemsMap[order.OrderID], historyMap[order.OrderID]))
	}

	return result, nil
}

// ApplySettlement записывает терминальное состояние заказа и добавляет
// запись в историю. Вызывается внутри транзакции вместе с корректировками
// остатков и баланса.
func (r *orderRepo) ApplySettlement(ctx context.Context, o entities.Order, entry entities.SettlementEntry) error {
	query, args := r.qb.Update("orders").
		Set("status", o.Status).
		Set("settlement_method", nullString(o.SettlementMethod)).
		Set("settlement_amount", o.SettlementAmount).
		Set("settled_at", nullTime(o.SettledAt)).
		Set("discarded_at", nullTime(o.DiscardedAt)).
		Where(sq.Eq{"order_id": o.OrderID, "user_id": o.UserID}).
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to update order settlement: %w", err)
	}

	return r.appendHistory(ctx, o.OrderID, entry)
}

// AdjustStock атомарно сдвигает остаток товара. Отсутствующий товар
// молча пропускается: позиция заказа могла быть свободным текстом.
func (r *orderRepo) AdjustStock(ctx context.Context, productID, userID string, delta float64) error {
	query, args := r.qb.Update("products").
		Set("quantity", sq.Expr("quantity + ?", delta)).
		Where(sq.Eq{"product_id": productID, "user_id": userID}).
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to adjust stock: %w", err)
	}
	return nil
}

// AdjustCustomerBalance атомарно инкрементирует балансы покупателя.
// Отсутствующий покупатель молча пропускается.
func (r *orderRepo) AdjustCustomerBalance(ctx context.Context, customerID string, debit, credit, sales float64) error {
	query, args := r.qb.Update("customers").
		Set("debit", sq.Expr("debit + ?", debit)).
		Set("credit", sq.Expr("credit + ?", credit)).
		Set("total_sales", sq.Expr("total_sales + ?", sales)).
		Where(sq.Eq{"customer_id": customerID}).
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to adjust customer balance: %w", err)
	}
	return nil
}

func (r *orderRepo) CustomerBalance(ctx context.Context, customerID string) (entities.CustomerBalance, error) {
	query, args := r.qb.Select("customer_id", "debit", "credit", "total_sales").
		From("customers").
		Where(sq.Eq{"customer_id": customerID}).
		MustSql()

	var balance CustomerBalance
	err := r.getContext(ctx, &balance, query, args...)
	if isNoRows(err) {
		return entities.CustomerBalance{}, entities.ErrCustomerNotFound
	}
	if err != nil {
		return entities.CustomerBalance{}, fmt.Errorf("failed to get customer balance: %w", err)
	}

	return entities.CustomerBalance{
		CustomerID: balance.CustomerID,
		Debit:      balance.Debit,
		Credit:     balance.Credit,
		TotalSales: balance.TotalSales,
	}, nil
}
