package repo

import (
	"context"
	"fmt"
	"time"

	"github.com/shopkhata/billing-service/internal/entities"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
)

type noteRepo struct {
	base
}

func NewNoteRepo(db *sqlx.DB) *noteRepo {
	return &noteRepo{base: newBase(db)}
}

func (r *noteRepo) SaveNote(ctx context.Context, n entities.StickyNote) error {
	query, args := r.qb.Insert("sticky_notes").
		Columns("note_id", "user_id", "customer_id", "customer_name", "shop_name", "total_quantity", "created_at", "updated_at").
		Values(n.ID, n.UserID, nullString(n.CustomerID), n.CustomerName, n.ShopName, n.TotalQuantity, n.CreatedAt, n.UpdatedAt).
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to save sticky note: %w", err)
	}

	return r.saveNoteItems(ctx, n.ID, n.Items)
}

func (r *noteRepo) saveNoteItems(ctx context.Context, noteID string, items []entities.NoteItem) error {
	if len(items) == 0 {
		return nil
	}

	q := r.qb.Insert("sticky_note_items").
		Columns("note_id", "position", "product_id", "product_name", "quantity", "unit")

	for i, it := range items {
		q = q.Values(noteID, i, nullString(it.ProductID), it.ProductName, it.Quantity, nullString(it.Unit))
	}

	query, args := q.MustSql()
	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to save sticky note items: %w", err)
	}
	return nil
}

func (r *noteRepo) NotesByUser(ctx context.Context, userID string) ([]entities.StickyNote, error) {
	query, args := r.qb.Select("note_id", "user_id", "customer_id", "customer_name", "shop_name", "total_quantity", "created_at", "updated_at").
		From("sticky_notes").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at DESC").
		MustSql()

	var notes []StickyNote
	if err := r.selectContext(ctx, &notes, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select sticky notes: %w", err)
	}

	if len(notes) == 0 {
		return []entities.StickyNote{}, nil
	}

	ids := make([]string, len(notes))
	for i, n := range notes {
		ids[i] = n.NoteID
	}

	query, args = r.qb.Select("note_id", "position", "product_id", "product_name", "quantity", "unit").
		From("sticky_note_items").
		Where(sq.Eq{"note_id": ids}).
		OrderBy("note_id", "position").
		MustSql()

	var items []StickyNoteItem
	if err := r.selectContext(ctx, &items, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select sticky note items: %w", err)
	}

	itemsMap := make(map[string][]StickyNoteItem, len(ids))
	for _, it := range items {
		itemsMap[it.NoteID] = append(itemsMap[it.NoteID], it)
	}

	result := make([]entities.StickyNote, 0, len(notes))
	for _, n := range notes {
		result = append(result, NoteToEntity(n, itemsMap[n.NoteID]))
	}

	return result, nil
}

// UpdateNote переписывает заметку и её позиции целиком.
// Вызывается внутри транзакции, иначе между delete и insert позиций окно.
func (r *noteRepo) UpdateNote(ctx context.Context, n entities.StickyNote) (entities.StickyNote, error) {
	query, args := r.qb.Update("sticky_notes").
		Set("customer_id", nullString(n.CustomerID)).
		Set("customer_name", n.CustomerName).
		Set("shop_name", n.ShopName).
		Set("total_quantity", n.TotalQuantity).
		Set("updated_at", n.UpdatedAt).
		Where(sq.Eq{"note_id": n.ID, "user_id": n.UserID}).
		Suffix("RETURNING created_at").
		MustSql()

	var createdAt time.Time
	err := r.getContext(ctx, &createdAt, query, args...)
	if isNoRows(err) {
		return entities.StickyNote{}, entities.ErrNoteNotFound
	}
	if err != nil {
		return entities.StickyNote{}, fmt.Errorf("failed to update sticky note: %w", err)
	}
	n.CreatedAt = createdAt

	query, args = r.qb.Delete("sticky_note_items").
		Where(sq.Eq{"note_id": n.ID}).
		MustSql()
	if _, err := r.execContext(ctx, query, args...); err != nil {
		return entities.StickyNote{}, fmt.Errorf("failed to clear sticky note items: %w", err)
	}

	if err := r.saveNoteItems(ctx, n.ID, n.Items); err != nil {
		return entities.StickyNote{}, err
	}

	return n, nil
}

func (r *noteRepo) DeleteNote(ctx context.Context, id, userID string) error {
	query, args := r.qb.Delete("sticky_notes").
		Where(sq.Eq{"note_id": id, "user_id": userID}).
		MustSql()

	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to delete sticky note: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete sticky note: %w", err)
	}
	if affected == 0 {
		return entities.ErrNoteNotFound
	}
	return nil
}
