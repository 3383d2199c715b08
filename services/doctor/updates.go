package doctor

import (
	"context"
	"errors"

	"medibook/database"
	"medibook/models"
	"medibook/utils"

	"go.uber.org/zap"
)

func (s *DefaultDoctorService) UpdateProfile(ctx context.Context, docID string, update models.DoctorProfileUpdate) (*models.Doctor, error) {
	if update.Fees != nil && *update.Fees <= 0 {
		return nil, utils.NewAppError(utils.KindValidation, "Fees must be positive", nil)
	}
	doc, err := s.Repo.UpdateProfile(ctx, docID, update)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, utils.NewAppError(utils.KindNotFound, "Doctor not found", nil)
		}
		s.Logger.Error("UpdateProfile: failed to update doctor", zap.String("docId", docID), zap.Error(err))
		return nil, utils.NewAppError(utils.KindPersistence, "Failed to update profile", err)
	}
	s.invalidateList(ctx)
	return doc, nil
}

// ToggleAvailability flips the bookable flag. Existing appointments are untouched.
func (s *DefaultDoctorService) ToggleAvailability(ctx context.Context, docID string) (bool, error) {
	available, err := s.Repo.ToggleAvailability(ctx, docID)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return false, utils.NewAppError(utils.KindNotFound, "Doctor not found", nil)
		}
		return false, utils.NewAppError(utils.KindPersistence, "Failed to change availability", err)
	}
	s.invalidateList(ctx)
	s.Logger.Info("Doctor availability changed", zap.String("docId", docID), zap.Bool("available", available))
	return available, nil
}
