package db

import (
	"github.com/rs/zerolog/log"

	"github.com/Solace-Health-LLC/beacon/internal/model"
)

const patientColumns = `id, device_id, ticket_no, display_name, department, room, status, called_at, created_at, updated_at`

func (s *pgStore) CreatePatient(deviceID, ticketNo int, displayName string, department, room *string) (model.Patient, error) {
	var p model.Patient
	err := s.db.Get(&p, `
		INSERT INTO patients (device_id, ticket_no, display_name, department, room, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, 'waiting', now(), now())
		RETURNING `+patientColumns+`;`,
		deviceID, ticketNo, displayName, department, room)
	if err != nil {
		log.Error().Err(err).Msg("CreatePatient failed")
		return model.Patient{}, err
	}
	return p, nil
}

func (s *pgStore) GetPatientByID(id int) (model.Patient, error) {
	var p model.Patient
	err := s.db.Get(&p, `SELECT `+patientColumns+` FROM patients WHERE id = $1;`, id)
	return p, err
}

func (s *pgStore) ListPatientsForDevice(deviceID int) ([]model.Patient, error) {
	var out []model.Patient
	err := s.db.Select(&out, `
		SELECT `+patientColumns+`
		FROM patients
		WHERE device_id = $1 AND status <> 'done'
		ORDER BY ticket_no;`, deviceID)
	if err != nil {
		log.Error().Err(err).Int("device_id", deviceID).Msg("ListPatientsForDevice failed")
		return nil, err
	}
	return out, nil
}

func (s *pgStore) SetPatientStatus(id int, status string) error {
	_, err := s.db.Exec(`
		UPDATE patients
		SET status = $2,
		    called_at = CASE WHEN $2 = 'called' THEN now() ELSE called_at END,
		    updated_at = now()
		WHERE id = $1;`, id, status)
	if err != nil {
		log.Error().Err(err).Int("patient_id", id).Msg("SetPatientStatus failed")
	}
	return err
}

func (s *pgStore) DeletePatient(id int) error {
	_, err := s.db.Exec(`DELETE FROM patients WHERE id = $1;`, id)
	if err != nil {
		log.Error().Err(err).Int("patient_id", id).Msg("DeletePatient failed")
	}
	return err
}
