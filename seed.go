package main

import (
	"context"
	"fmt"
	"time"

	"medibook/models"
	"medibook/services/doctor"
	"medibook/utils"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// demoDoctors is the catalogue loaded by `medibook seed`.
var demoDoctors = []doctor.CreateDoctorRequest{
	{
		Name: "Dr. Richard James", Email: "richard.james@medibook.dev", Speciality: "General physician",
		Degree: "MBBS", Experience: "4 Years", Fees: 50,
		About:   "Focuses on preventive medicine, early diagnosis and effective treatment strategies.",
		Address: models.Address{Line1: "17th Cross, Richmond", Line2: "Circle, Ring Road, London"},
	},
	{
		Name: "Dr. Emily Larson", Email: "emily.larson@medibook.dev", Speciality: "Gynecologist",
		Degree: "MBBS", Experience: "3 Years", Fees: 60,
		About:   "Provides comprehensive care for women's reproductive health.",
		Address: models.Address{Line1: "27th Cross, Richmond", Line2: "Circle, Ring Road, London"},
	},
	{
		Name: "Dr. Sarah Patel", Email: "sarah.patel@medibook.dev", Speciality: "Dermatologist",
		Degree: "MBBS", Experience: "1 Years", Fees: 30,
		About:   "Treats skin, hair and nail conditions for patients of every age.",
		Address: models.Address{Line1: "37th Cross, Richmond", Line2: "Circle, Ring Road, London"},
	},
	{
		Name: "Dr. Christopher Lee", Email: "christopher.lee@medibook.dev", Speciality: "Pediatricians",
		Degree: "MBBS", Experience: "2 Years", Fees: 40,
		About:   "Looks after the health of infants, children and adolescents.",
		Address: models.Address{Line1: "47th Cross, Richmond", Line2: "Circle, Ring Road, London"},
	},
	{
		Name: "Dr. Jennifer Garcia", Email: "jennifer.garcia@medibook.dev", Speciality: "Neurologist",
		Degree: "MBBS", Experience: "4 Years", Fees: 50,
		About:   "Diagnoses and manages disorders of the brain and nervous system.",
		Address: models.Address{Line1: "57th Cross, Richmond", Line2: "Circle, Ring Road, London"},
	},
	{
		Name: "Dr. Andrew Williams", Email: "andrew.williams@medibook.dev", Speciality: "Gastroenterologist",
		Degree: "MBBS", Experience: "4 Years", Fees: 50,
		About:   "Specialises in the digestive tract and liver.",
		Address: models.Address{Line1: "57th Cross, Richmond", Line2: "Circle, Ring Road, London"},
	},
}

func seedCmd() *cobra.Command {
	var password string

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Insert the demo doctor catalogue",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := bootstrap()
			if err != nil {
				return err
			}
			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()

			inserted := 0
			for _, req := range demoDoctors {
				req.Password = password
				doc, err := a.services.Doctors.Create(ctx, req, nil)
				if err != nil {
					if utils.KindOf(err) == utils.KindConflict {
						a.logger.Info("seed: doctor already present", zap.String("email", req.Email))
						continue
					}
					return fmt.Errorf("seed: failed to add %s: %w", req.Email, err)
				}
				inserted++
				a.logger.Info("seed: doctor added", zap.String("docId", doc.ID), zap.String("email", doc.Email))
			}
			a.logger.Sugar().Infof("seed: %d of %d doctors inserted", inserted, len(demoDoctors))
			return nil
		},
	}
	cmd.Flags().StringVar(&password, "password", "changeme123", "password assigned to every seeded doctor")
	return cmd
}
