package repo

import (
	"context"
	"fmt"

	"github.com/shopkhata/billing-service/internal/entities"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
)

type partnerRepo struct {
	base
}

func NewPartnerRepo(db *sqlx.DB) *partnerRepo {
	return &partnerRepo{base: newBase(db)}
}

func (r *partnerRepo) PartnerByID(ctx context.Context, id string) (entities.DeliveryPartner, error) {
	query, args := r.qb.Select(
		"partner_id", "name", "email", "phone", "avatar",
		"status", "created_by_user", "admin_email", "created_at", "notified_at").
		From("delivery_partners").
		Where(sq.Eq{"partner_id": id}).
		MustSql()

	var partner DeliveryPartner
	err := r.getContext(ctx, &partner, query, args...)
	if isNoRows(err) {
		return entities.DeliveryPartner{}, entities.ErrPartnerNotFound
	}
	if err != nil {
		return entities.DeliveryPartner{}, fmt.Errorf("failed to get partner: %w", err)
	}

	return PartnerToEntity(partner), nil
}

// EmailTaken проверяет уникальность email среди партнёров того же магазина.
func (r *partnerRepo) EmailTaken(ctx context.Context, email, createdByUser, excludeID string) (bool, error) {
	where := sq.Eq{"email": email}
	if createdByUser == "" {
		where["created_by_user"] = nil
	} else {
		where["created_by_user"] = createdByUser
	}

	query, args := r.qb.Select("1").
		From("delivery_partners").
		Where(where).
		Where(sq.NotEq{"partner_id": excludeID}).
		Limit(1).
		MustSql()

	var one int
	err := r.getContext(ctx, &one, query, args...)
	if isNoRows(err) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to check partner email: %w", err)
	}
	return true, nil
}

func (r *partnerRepo) UpdatePartner(ctx context.Context, p entities.DeliveryPartner) error {
	query, args := r.qb.Update("delivery_partners").
		Set("name", p.Name).
		Set("email", nullString(p.Email)).
		Set("phone", nullString(p.Phone)).
		Set("status", p.Status).
		Set("admin_email", nullString(p.AdminEmail)).
		Where(sq.Eq{"partner_id": p.ID}).
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to update partner: %w", err)
	}
	return nil
}

func (r *partnerRepo) DeletePartner(ctx context.Context, id string) error {
	query, args := r.qb.Delete("delivery_partners").
		Where(sq.Eq{"partner_id": id}).
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to delete partner: %w", err)
	}
	return nil
}
