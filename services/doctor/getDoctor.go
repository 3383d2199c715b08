package doctor

import (
	"context"
	"encoding/json"
	"errors"

	"medibook/database"
	"medibook/models"
	"medibook/utils"

	"go.uber.org/zap"
)

// ListPublic returns every doctor without email or credentials. The listing is
// cached and dropped whenever a doctor or a slot map changes.
func (s *DefaultDoctorService) ListPublic(ctx context.Context) ([]models.PublicDoctor, error) {
	if raw, ok, err := s.Cache.Get(ctx, utils.DoctorListCacheKey); err == nil && ok {
		var cached []models.PublicDoctor
		if json.Unmarshal(raw, &cached) == nil {
			return cached, nil
		}
	}

	doctors, err := s.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]models.PublicDoctor, 0, len(doctors))
	for i := range doctors {
		out = append(out, doctors[i].Public())
	}
	if raw, err := json.Marshal(out); err == nil {
		if err := s.Cache.Set(ctx, utils.DoctorListCacheKey, raw, s.CacheTTL); err != nil {
			s.Logger.Warn("Doctor list cache write failed", zap.Error(err))
		}
	}
	return out, nil
}

// ListAll returns full doctor documents for the admin console.
func (s *DefaultDoctorService) ListAll(ctx context.Context) ([]models.Doctor, error) {
	doctors, err := s.Repo.GetAll(ctx)
	if err != nil {
		s.Logger.Error("ListAll: failed to fetch doctors", zap.Error(err))
		return nil, utils.NewAppError(utils.KindPersistence, "Failed to list doctors", err)
	}
	return doctors, nil
}

func (s *DefaultDoctorService) GetProfile(ctx context.Context, docID string) (*models.Doctor, error) {
	doc, err := s.Repo.GetByID(ctx, docID)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, utils.NewAppError(utils.KindNotFound, "Doctor not found", nil)
		}
		return nil, utils.NewAppError(utils.KindPersistence, "Failed to load doctor", err)
	}
	return doc, nil
}

func (s *DefaultDoctorService) invalidateList(ctx context.Context) {
	if err := s.Cache.Delete(ctx, utils.DoctorListCacheKey); err != nil {
		s.Logger.Warn("Doctor list cache invalidation failed", zap.Error(err))
	}
}
