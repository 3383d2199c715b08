package doctor

import (
	"context"
	"errors"
	"io"
	"strings"
	"time"

	"medibook/database"
	"medibook/models"
	"medibook/services/storage"
	"medibook/utils"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

var validate = validator.New()

// Create onboards a doctor. New doctors start available with an empty slot map.
func (s *DefaultDoctorService) Create(ctx context.Context, req CreateDoctorRequest, image io.Reader) (*models.Doctor, error) {
	if err := validateCreate(&req); err != nil {
		return nil, err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		s.Logger.Error("Create: failed to hash password", zap.Error(err))
		return nil, utils.NewAppError(utils.KindPersistence, "Failed to add doctor", err)
	}

	imageURL := req.Image
	if image != nil {
		uploaded, err := s.Images.UploadImage(ctx, image, storage.DoctorImagesFolder)
		if err != nil {
			s.Logger.Error("Create: image upload failed", zap.Error(err))
			return nil, utils.NewAppError(utils.KindUpstream, "Image upload failed", err)
		}
		imageURL = uploaded.URL
	}

	doc := &models.Doctor{
		ID:           uuid.New().String(),
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: string(hashedPassword),
		Image:        imageURL,
		Speciality:   req.Speciality,
		Degree:       req.Degree,
		Experience:   req.Experience,
		About:        req.About,
		Fees:         req.Fees,
		Address:      req.Address,
		Available:    true,
		SlotsBooked:  models.SlotsBooked{},
		Date:         time.Now().UTC(),
	}
	if err := s.Repo.Create(ctx, doc); err != nil {
		if errors.Is(err, database.ErrConflict) {
			return nil, utils.NewAppError(utils.KindConflict, "Doctor with this email already exists", nil)
		}
		s.Logger.Error("Create: failed to insert doctor", zap.Error(err))
		return nil, utils.NewAppError(utils.KindPersistence, "Failed to add doctor", err)
	}
	s.invalidateList(ctx)
	s.Logger.Info("Doctor added", zap.String("docId", doc.ID))
	return doc, nil
}

func validateCreate(req *CreateDoctorRequest) error {
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if req.Name == "" || req.Email == "" || req.Password == "" || req.Speciality == "" ||
		req.Degree == "" || req.Experience == "" || req.About == "" {
		return utils.NewAppError(utils.KindValidation, "Missing details", nil)
	}
	if err := validate.Var(req.Email, "email"); err != nil {
		return utils.NewAppError(utils.KindValidation, "Please enter a valid email", err)
	}
	if len(req.Password) < 8 {
		return utils.NewAppError(utils.KindValidation, "Please enter a strong password", nil)
	}
	if req.Fees <= 0 {
		return utils.NewAppError(utils.KindValidation, "Fees must be positive", nil)
	}
	return nil
}
