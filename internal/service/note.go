package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/shopkhata/billing-service/internal/entities"
	"github.com/shopkhata/billing-service/pkg/trm"

	"github.com/google/uuid"
)

type NoteRepo interface {
	SaveNote(ctx context.Context, n entities.StickyNote) error
	NotesByUser(ctx context.Context, userID string) ([]entities.StickyNote, error)
	UpdateNote(ctx context.Context, n entities.StickyNote) (entities.StickyNote, error)
	DeleteNote(ctx context.Context, id, userID string) error
}

type noteService struct {
	logger    *slog.Logger
	txManager trm.Manager
	repo      NoteRepo
}

func NewNoteService(logger *slog.Logger, txManager trm.Manager, repo NoteRepo) *noteService {
	return &noteService{
		logger:    logger.With(slog.String("service", "sticky_note")),
		txManager: txManager,
		repo:      repo,
	}
}

func (s *noteService) CreateNote(ctx context.Context, note entities.StickyNote) (entities.StickyNote, error) {
	cleaned := cleanNoteItems(note.Items)
	if len(cleaned) == 0 {
		return entities.StickyNote{}, entities.ErrNoValidItems
	}

	now := time.Now()
	note.ID = uuid.NewString()
	note.CustomerName = strings.TrimSpace(note.CustomerName)
	note.ShopName = strings.TrimSpace(note.ShopName)
	note.Items = cleaned
	note.TotalQuantity = totalQuantity(cleaned)
	note.CreatedAt = now
	note.UpdatedAt = now

	if err := s.repo.SaveNote(ctx, note); err != nil {
		return entities.StickyNote{}, fmt.Errorf("failed to create sticky note: %w", err)
	}

	s.logger.Debug("sticky note created", "note_id", note.ID, "user_id", note.UserID)
	return note, nil
}

func (s *noteService) NotesByUser(ctx context.Context, userID string) ([]entities.StickyNote, error) {
	return s.repo.NotesByUser(ctx, userID)
}

func (s *noteService) UpdateNote(ctx context.Context, note entities.StickyNote) (entities.StickyNote, error) {
	cleaned := cleanNoteItems(note.Items)
	if len(cleaned) == 0 {
		return entities.StickyNote{}, entities.ErrNoValidItems
	}

	note.CustomerName = strings.TrimSpace(note.CustomerName)
	note.ShopName = strings.TrimSpace(note.ShopName)
	note.Items = cleaned
	note.TotalQuantity = totalQuantity(cleaned)
	note.UpdatedAt = time.Now()

	var updated entities.StickyNote
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		var err error
		updated, err = s.repo.UpdateNote(ctx, note)
		return err
	})
	if err != nil {
		return entities.StickyNote{}, err
	}

	return updated, nil
}

func (s *noteService) DeleteNote(ctx context.Context, id, userID string) error {
	return s.repo.DeleteNote(ctx, id, userID)
}

// cleanNoteItems молча отбрасывает позиции без названия или с
// неположительным количеством, ошибкой считается только пустой результат.
func cleanNoteItems(items []entities.NoteItem) []entities.NoteItem {
	cleaned := make([]entities.NoteItem, 0, len(items))
	for _, it := range items {
		name := strings.TrimSpace(it.ProductName)
		if name == "" || it.Quantity <= 0 {
			continue
		}
		cleaned = append(cleaned, entities.NoteItem{
			ProductID:   it.ProductID,
			ProductName: name,
			Quantity:    it.Quantity,
			Unit:        it.Unit,
		})
	}
	return cleaned
}

func totalQuantity(items []entities.NoteItem) float64 {
	var total float64
	for _, it := range items {
		total += it.Quantity
	}
	return total
}
