package entities

import (
	"errors"
	"time"
)

const (
	PartnerStatusPending  = "pending"
	PartnerStatusApproved = "approved"
	PartnerStatusRejected = "rejected"
)

type DeliveryPartner struct {
	ID            string
	Name          string
	Email         string
	Phone         string
	Avatar        string
	Status        string
	CreatedByUser string
	AdminEmail    string
	CreatedAt     time.Time
	NotifiedAt    time.Time
}

// PartnerIdentity - кто делает запрос. Любое из полей может быть пустым.
type PartnerIdentity struct {
	UserID     string
	AdminID    string
	AdminEmail string
}

// PartnerUpdate - изменения партнёра. nil означает "поле не трогать".
type PartnerUpdate struct {
	PartnerID string
	Identity  PartnerIdentity

	Name       *string
	Email      *string
	Phone      *string
	Status     *string
	AdminEmail *string
}

var (
	ErrPartnerNotFound      = errors.New("partner not found")
	ErrNotAuthorized        = errors.New("not authorized")
	ErrAdminEmailForbidden  = errors.New("not authorized to update adminEmail")
	ErrPartnerEmailTaken    = errors.New("partner email already in use for this shop")
	ErrInvalidPartnerStatus = errors.New("invalid status")
	ErrIdentityRequired     = errors.New("userId, adminId or adminEmail required for authorization")
)
