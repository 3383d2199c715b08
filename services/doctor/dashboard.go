package doctor

import (
	"context"

	"medibook/models"
	"medibook/utils"
)

const latestAppointments = 5

// Dashboard totals the doctor's appointments. Earnings count every appointment that
// was completed or paid.
func (s *DefaultDoctorService) Dashboard(ctx context.Context, docID string) (*models.DoctorDashboard, error) {
	appts, err := s.Appointments.ListByDoctor(ctx, docID)
	if err != nil {
		return nil, utils.NewAppError(utils.KindPersistence, "Failed to load appointments", err)
	}

	dash := &models.DoctorDashboard{Appointments: len(appts), LatestAppointments: []models.Appointment{}}
	patients := make(map[string]struct{})
	for _, a := range appts {
		if a.IsCompleted || a.Payment {
			dash.Earnings += a.Amount
		}
		patients[a.UserID] = struct{}{}
	}
	dash.Patients = len(patients)
	for i := len(appts) - 1; i >= 0 && len(dash.LatestAppointments) < latestAppointments; i-- {
		dash.LatestAppointments = append(dash.LatestAppointments, appts[i])
	}
	return dash, nil
}
