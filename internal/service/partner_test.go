package service_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/shopkhata/billing-service/internal/config"
	"github.com/shopkhata/billing-service/internal/entities"
	"github.com/shopkhata/billing-service/internal/service"
	mocks "github.com/shopkhata/billing-service/internal/service/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestPartnerService_UpdatePartner_Authorization(t *testing.T) {
	partner := entities.DeliveryPartner{
		ID:            "dp-1",
		Name:          "Raju",
		Status:        entities.PartnerStatusPending,
		CreatedByUser: "user-1",
		AdminEmail:    "boss@shop.com",
	}

	testCases := []struct {
		name     string
		admin    config.Admin
		identity entities.PartnerIdentity
		wantErr  error
	}{
		{
			name:     "creator via userId",
			identity: entities.PartnerIdentity{UserID: "user-1"},
		},
		{
			name:     "creator via adminId",
			identity: entities.PartnerIdentity{AdminID: "user-1"},
		},
		{
			name:     "matching adminEmail, case insensitive",
			identity: entities.PartnerIdentity{AdminEmail: "BOSS@shop.com"},
		},
		{
			name:     "global admin email matches partner",
			admin:    config.Admin{Email: "boss@shop.com"},
			identity: entities.PartnerIdentity{UserID: "stranger"},
		},
		{
			name:     "global admin id matches caller",
			admin:    config.Admin{ID: "root-1"},
			identity: entities.PartnerIdentity{AdminID: "root-1"},
		},
		{
			name:     "stranger rejected",
			identity: entities.PartnerIdentity{UserID: "stranger", AdminEmail: "other@shop.com"},
			wantErr:  entities.ErrNotAuthorized,
		},
		{
			name:    "no identity at all",
			wantErr: entities.ErrIdentityRequired,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo := mocks.NewMockPartnerRepo(t)
			logger := slog.New(slog.NewTextHandler(io.Discard, nil))

			if tc.wantErr != entities.ErrIdentityRequired {
				repo.EXPECT().PartnerByID(mock.Anything, "dp-1").Return(partner, nil)
			}
			if tc.wantErr == nil {
				repo.EXPECT().UpdatePartner(mock.Anything, mock.Anything).Return(nil)
			}

			svc := service.NewPartnerService(logger, repo, tc.admin)

			_, err := svc.UpdatePartner(context.Background(), entities.PartnerUpdate{
				PartnerID: "dp-1",
				Identity:  tc.identity,
				Name:      strPtr("Raju Kumar"),
			})

			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestPartnerService_UpdatePartner_AdminEmailGrant(t *testing.T) {
	partner := entities.DeliveryPartner{
		ID:            "dp-1",
		CreatedByUser: "user-1",
		Status:        entities.PartnerStatusPending,
		AdminEmail:    "boss@shop.com",
	}

	testCases := []struct {
		name     string
		admin    config.Admin
		identity entities.PartnerIdentity
		wantErr  error
	}{
		{
			// владение через userId открывает обычные поля, но не adminEmail
			name:     "plain owner cannot change adminEmail",
			identity: entities.PartnerIdentity{UserID: "user-1"},
			wantErr:  entities.ErrAdminEmailForbidden,
		},
		{
			name:     "creator via adminId can",
			identity: entities.PartnerIdentity{AdminID: "user-1"},
		},
		{
			name:     "matching adminEmail can",
			identity: entities.PartnerIdentity{AdminEmail: "boss@shop.com"},
		},
		{
			name:     "global admin id can",
			admin:    config.Admin{ID: "root-1"},
			identity: entities.PartnerIdentity{AdminID: "root-1"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo := mocks.NewMockPartnerRepo(t)
			logger := slog.New(slog.NewTextHandler(io.Discard, nil))

			repo.EXPECT().PartnerByID(mock.Anything, "dp-1").Return(partner, nil)
			if tc.wantErr == nil {
				repo.EXPECT().
					UpdatePartner(mock.Anything, mock.Anything).
					RunAndReturn(func(_ context.Context, p entities.DeliveryPartner) error {
						assert.Equal(t, "new@shop.com", p.AdminEmail)
						return nil
					})
			}

			svc := service.NewPartnerService(logger, repo, tc.admin)

			_, err := svc.UpdatePartner(context.Background(), entities.PartnerUpdate{
				PartnerID:  "dp-1",
				Identity:   tc.identity,
				AdminEmail: strPtr("New@Shop.com"),
			})

			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestPartnerService_UpdatePartner_Fields(t *testing.T) {
	partner := entities.DeliveryPartner{
		ID:            "dp-1",
		Name:          "Raju",
		Email:         "raju@shop.com",
		Status:        entities.PartnerStatusPending,
		CreatedByUser: "user-1",
	}
	owner := entities.PartnerIdentity{UserID: "user-1"}

	t.Run("status normalized to lowercase", func(t *testing.T) {
		repo := mocks.NewMockPartnerRepo(t)
		logger := slog.New(slog.NewTextHandler(io.Discard, nil))

		repo.EXPECT().PartnerByID(mock.Anything, "dp-1").Return(partner, nil)
		repo.EXPECT().
			UpdatePartner(mock.Anything, mock.Anything).
			RunAndReturn(func(_ context.Context, p entities.DeliveryPartner) error {
				assert.Equal(t, entities.PartnerStatusApproved, p.Status)
				return nil
			})

		svc := service.NewPartnerService(logger, repo, config.Admin{})
		_, err := svc.UpdatePartner(context.Background(), entities.PartnerUpdate{
			PartnerID: "dp-1",
			Identity:  owner,
			Status:    strPtr("Approved"),
		})
		require.NoError(t, err)
	})

	t.Run("unknown status rejected", func(t *testing.T) {
		repo := mocks.NewMockPartnerRepo(t)
		logger := slog.New(slog.NewTextHandler(io.Discard, nil))

		repo.EXPECT().PartnerByID(mock.Anything, "dp-1").Return(partner, nil)

		svc := service.NewPartnerService(logger, repo, config.Admin{})
		_, err := svc.UpdatePartner(context.Background(), entities.PartnerUpdate{
			PartnerID: "dp-1",
			Identity:  owner,
			Status:    strPtr("fired"),
		})
		assert.ErrorIs(t, err, entities.ErrInvalidPartnerStatus)
	})

	t.Run("email conflict", func(t *testing.T) {
		repo := mocks.NewMockPartnerRepo(t)
		logger := slog.New(slog.NewTextHandler(io.Discard, nil))

		repo.EXPECT().PartnerByID(mock.Anything, "dp-1").Return(partner, nil)
		repo.EXPECT().EmailTaken(mock.Anything, "taken@shop.com", "user-1", "dp-1").Return(true, nil)

		svc := service.NewPartnerService(logger, repo, config.Admin{})
		_, err := svc.UpdatePartner(context.Background(), entities.PartnerUpdate{
			PartnerID: "dp-1",
			Identity:  owner,
			Email:     strPtr("Taken@Shop.com"),
		})
		assert.ErrorIs(t, err, entities.ErrPartnerEmailTaken)
	})

	t.Run("blank email ignored", func(t *testing.T) {
		repo := mocks.NewMockPartnerRepo(t)
		logger := slog.New(slog.NewTextHandler(io.Discard, nil))

		repo.EXPECT().PartnerByID(mock.Anything, "dp-1").Return(partner, nil)
		repo.EXPECT().
			UpdatePartner(mock.Anything, mock.Anything).
			RunAndReturn(func(_ context.Context, p entities.DeliveryPartner) error {
				assert.Equal(t, "raju@shop.com", p.Email)
				return nil
			})

		svc := service.NewPartnerService(logger, repo, config.Admin{})
		_, err := svc.UpdatePartner(context.Background(), entities.PartnerUpdate{
			PartnerID: "dp-1",
			Identity:  owner,
			Email:     strPtr("   "),
		})
		require.NoError(t, err)
	})
}

func TestPartnerService_DeletePartner(t *testing.T) {
	partner := entities.DeliveryPartner{
		ID:            "dp-1",
		CreatedByUser: "user-1",
		AdminEmail:    "boss@shop.com",
	}

	testCases := []struct {
		name     string
		admin    config.Admin
		identity entities.PartnerIdentity
		wantErr  error
	}{
		{
			name:     "creator deletes",
			identity: entities.PartnerIdentity{UserID: "user-1"},
		},
		{
			name:     "stranger rejected",
			identity: entities.PartnerIdentity{UserID: "stranger"},
			wantErr:  entities.ErrNotAuthorized,
		},
		{
			name:    "no identity",
			wantErr: entities.ErrIdentityRequired,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo := mocks.NewMockPartnerRepo(t)
			logger := slog.New(slog.NewTextHandler(io.Discard, nil))

			if tc.wantErr != entities.ErrIdentityRequired {
				repo.EXPECT().PartnerByID(mock.Anything, "dp-1").Return(partner, nil)
			}
			if tc.wantErr == nil {
				repo.EXPECT().DeletePartner(mock.Anything, "dp-1").Return(nil)
			}

			svc := service.NewPartnerService(logger, repo, tc.admin)

			id, err := svc.DeletePartner(context.Background(), "dp-1", tc.identity)

			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "dp-1", id)
		})
	}
}
