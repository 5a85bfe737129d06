package seed

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/retriever-essentials/pantry/internal/app/models"
	"github.com/retriever-essentials/pantry/internal/app/repositories"
	"github.com/retriever-essentials/pantry/internal/pkg/auth"
	"github.com/retriever-essentials/pantry/internal/pkg/logger"
)

const (
	defaultAdminEmail    = "admin@pantry.edu"
	defaultAdminPassword = "ChangeMe123!"
	defaultVendorName    = "Campus Dining Services"
)

// CreateDefaultData seeds the default admin account and a starter vendor so
// a fresh deployment is usable immediately. Existing rows are left alone.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool) error {
	userRepo := repositories.NewUserRepository(dbPool)
	vendorRepo := repositories.NewVendorRepository(dbPool)

	var finalErr error

	exists, err := userRepo.EmailExists(ctx, defaultAdminEmail)
	if err != nil {
		logger.Error().Err(err).Msg("Error checking if admin user exists")
		finalErr = errors.Join(finalErr, err)
	} else if !exists {
		logger.Info().Msg("Creating default admin user...")

		hashed, err := auth.HashPassword(defaultAdminPassword)
		if err != nil {
			logger.Error().Err(err).Msg("Error hashing admin password")
			finalErr = errors.Join(finalErr, err)
		} else {
			admin := &models.User{
				UserID:    "PA00001",
				FirstName: "Pantry",
				LastName:  "Admin",
				Email:     defaultAdminEmail,
				Password:  hashed,
				Status:    models.StatusGraduate,
				Role:      models.RoleAdmin,
			}
			if err := userRepo.CreateUser(ctx, admin); err != nil {
				logger.Error().Err(err).Msg("Error creating default admin user")
				finalErr = errors.Join(finalErr, err)
			} else {
				logger.Info().Str("userID", admin.UserID).Msg("Default admin user created")
			}
		}
	}

	vendors, err := vendorRepo.GetAllVendors(ctx)
	if err != nil {
		logger.Error().Err(err).Msg("Error listing vendors during seed")
		finalErr = errors.Join(finalErr, err)
	} else if len(vendors) == 0 {
		logger.Info().Msg("Creating default vendor...")
		contact := "Pantry Coordinator"
		vendor := &models.Vendor{
			VendorName:    defaultVendorName,
			ContactPerson: &contact,
		}
		if _, err := vendorRepo.CreateVendor(ctx, vendor); err != nil {
			logger.Error().Err(err).Msg("Error creating default vendor")
			finalErr = errors.Join(finalErr, err)
		}
	}

	return finalErr
}
