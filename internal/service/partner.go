package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/shopkhata/billing-service/internal/config"
	"github.com/shopkhata/billing-service/internal/entities"
)

type PartnerRepo interface {
	PartnerByID(ctx context.Context, id string) (entities.DeliveryPartner, error)
	EmailTaken(ctx context.Context, email, createdByUser, excludeID string) (bool, error)
	UpdatePartner(ctx context.Context, p entities.DeliveryPartner) error
	DeletePartner(ctx context.Context, id string) error
}

type partnerService struct {
	logger *slog.Logger
	repo   PartnerRepo
	admin  config.Admin
}

func NewPartnerService(logger *slog.Logger, repo PartnerRepo, admin config.Admin) *partnerService {
	return &partnerService{
		logger: logger.With(slog.String("service", "delivery_partner")),
		repo:   repo,
		admin:  admin,
	}
}

// grants - какие именно правила авторизации сработали для запроса.
type grants struct {
	owner        bool // userId совпал с создателем партнёра
	adminAsOwner bool // adminId совпал с создателем партнёра
	adminEmail   bool // adminEmail совпал с adminEmail партнёра
	envEmail     bool // сработал глобальный админский email
	envID        bool // сработал глобальный админский id
}

func (g grants) any() bool {
	return g.owner || g.adminAsOwner || g.adminEmail || g.envEmail || g.envID
}

// adminGrade - право менять adminEmail. Владение через userId сюда
// намеренно не входит.
func (g grants) adminGrade() bool {
	return g.adminAsOwner || g.adminEmail || g.envEmail || g.envID
}

func (s *partnerService) authorize(id entities.PartnerIdentity, p entities.DeliveryPartner) grants {
	creator := p.CreatedByUser
	providedEmail := strings.ToLower(id.AdminEmail)
	partnerEmail := strings.ToLower(p.AdminEmail)
	envEmail := strings.ToLower(s.admin.Email)

	return grants{
		owner:        id.UserID != "" && creator != "" && id.UserID == creator,
		adminAsOwner: id.AdminID != "" && creator != "" && id.AdminID == creator,
		adminEmail:   providedEmail != "" && partnerEmail != "" && providedEmail == partnerEmail,
		envEmail:     envEmail != "" && (providedEmail == envEmail || partnerEmail == envEmail),
		envID:        s.admin.ID != "" && id.AdminID != "" && id.AdminID == s.admin.ID,
	}
}

func (s *partnerService) identitySupplied(id entities.PartnerIdentity) bool {
	return id.UserID != "" || id.AdminID != "" || id.AdminEmail != "" ||
		s.admin.Email != "" || s.admin.ID != ""
}

func (s *partnerService) UpdatePartner(ctx context.Context, upd entities.PartnerUpdate) (entities.DeliveryPartner, error) {
	if !s.identitySupplied(upd.Identity) {
		return entities.DeliveryPartner{}, entities.ErrIdentityRequired
	}

	partner, err := s.repo.PartnerByID(ctx, upd.PartnerID)
	if err != nil {
		return entities.DeliveryPartner{}, err
	}

	g := s.authorize(upd.Identity, partner)
	if !g.any() {
		return entities.DeliveryPartner{}, entities.ErrNotAuthorized
	}

	if upd.Status != nil {
		status := strings.ToLower(*upd.Status)
		switch status {
		case entities.PartnerStatusPending, entities.PartnerStatusApproved, entities.PartnerStatusRejected:
			partner.Status = status
		default:
			return entities.DeliveryPartner{}, entities.ErrInvalidPartnerStatus
		}
	}

	if upd.Email != nil && strings.TrimSpace(*upd.Email) != "" {
		email := strings.ToLower(strings.TrimSpace(*upd.Email))

		taken, err := s.repo.EmailTaken(ctx, email, partner.CreatedByUser, partner.ID)
		if err != nil {
			return entities.DeliveryPartner{}, fmt.Errorf("failed to check email uniqueness: %w", err)
		}
		if taken {
			return entities.DeliveryPartner{}, entities.ErrPartnerEmailTaken
		}

		partner.Email = email
	}

	if upd.Name != nil {
		partner.Name = strings.TrimSpace(*upd.Name)
	}
	if upd.Phone != nil {
		partner.Phone = *upd.Phone
	}

	if upd.AdminEmail != nil {
		if !g.adminGrade() {
			return entities.DeliveryPartner{}, entities.ErrAdminEmailForbidden
		}
		partner.AdminEmail = strings.ToLower(*upd.AdminEmail)
	}

	if err := s.repo.UpdatePartner(ctx, partner); err != nil {
		return entities.DeliveryPartner{}, err
	}

	s.logger.Debug("partner updated", "partner_id", partner.ID)
	return partner, nil
}

func (s *partnerService) DeletePartner(ctx context.Context, partnerID string, id entities.PartnerIdentity) (string, error) {
	if !s.identitySupplied(id) {
		return "", entities.ErrIdentityRequired
	}

	partner, err := s.repo.PartnerByID(ctx, partnerID)
	if err != nil {
		return "", err
	}

	if !s.authorize(id, partner).any() {
		return "", entities.ErrNotAuthorized
	}

	if err := s.repo.DeletePartner(ctx, partner.ID); err != nil {
		return "", err
	}

	s.logger.Debug("partner deleted", "partner_id", partner.ID)
	return partner.ID, nil
}
