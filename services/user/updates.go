package user

import (
	"context"
	"errors"
	"io"
	"strings"

	"medibook/database"
	"medibook/models"
	"medibook/services/storage"
	"medibook/utils"

	"go.uber.org/zap"
)

func (s *DefaultUserService) GetProfile(ctx context.Context, userID string) (*models.User, error) {
	u, err := s.Repo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, utils.NewAppError(utils.KindNotFound, "User not found", nil)
		}
		return nil, utils.NewAppError(utils.KindPersistence, "Failed to load profile", err)
	}
	return u, nil
}

// UpdateProfile stores the editable fields; image, when given, is uploaded first and
// only its URL is kept. Existing appointments keep the snapshot taken at booking.
func (s *DefaultUserService) UpdateProfile(ctx context.Context, userID string, update models.UserProfileUpdate, image io.Reader) (*models.User, error) {
	update.Name = strings.TrimSpace(update.Name)
	update.Phone = strings.TrimSpace(update.Phone)
	if update.Name == "" || update.Phone == "" || update.DOB == "" || update.Gender == "" {
		return nil, utils.NewAppError(utils.KindValidation, "Data missing", nil)
	}

	if image != nil {
		uploaded, err := s.Images.UploadImage(ctx, image, storage.UserImagesFolder)
		if err != nil {
			s.Logger.Error("UpdateProfile: image upload failed", zap.String("userId", userID), zap.Error(err))
			return nil, utils.NewAppError(utils.KindUpstream, "Image upload failed", err)
		}
		update.Image = uploaded.URL
	}

	u, err := s.Repo.UpdateProfile(ctx, userID, update)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, utils.NewAppError(utils.KindNotFound, "User not found", nil)
		}
		s.Logger.Error("UpdateProfile: failed to update user", zap.String("userId", userID), zap.Error(err))
		return nil, utils.NewAppError(utils.KindPersistence, "Failed to update profile", err)
	}
	return u, nil
}
