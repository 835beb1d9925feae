package db

import (
	"database/sql"
	"errors"

	"github.com/rs/zerolog/log"

	"github.com/Solace-Health-LLC/beacon/internal/model"
)

const deviceColumns = `id, hardware_id, name, location, department, paired, created_by, created_at, updated_at`

func (s *pgStore) CreateDevice(name string, location, department *string, createdBy int) (model.Device, error) {
	var d model.Device
	err := s.db.Get(&d, `
		INSERT INTO devices (name, location, department, paired, created_by, created_at, updated_at)
		VALUES ($1, $2, $3, false, $4, now(), now())
		RETURNING `+deviceColumns+`;`,
		name, location, department, createdBy)
	if err != nil {
		log.Error().Err(err).Msg("CreateDevice failed")
		return model.Device{}, err
	}
	return d, nil
}

func (s *pgStore) GetDeviceByID(id int) (model.Device, error) {
	var d model.Device
	err := s.db.Get(&d, `SELECT `+deviceColumns+` FROM devices WHERE id = $1;`, id)
	return d, err
}

func (s *pgStore) GetDeviceByHardwareID(hardwareID string) (model.Device, error) {
	var d model.Device
	err := s.db.Get(&d, `SELECT `+deviceColumns+` FROM devices WHERE hardware_id = $1;`, hardwareID)
	return d, err
}

func (s *pgStore) IsDevicePairedByHardwareID(hardwareID string) (bool, error) {
	var paired bool
	err := s.db.Get(&paired, `SELECT paired FROM devices WHERE hardware_id = $1;`, hardwareID)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	return paired, err
}

func (s *pgStore) ListDevices() ([]model.Device, error) {
	var out []model.Device
	err := s.db.Select(&out, `SELECT `+deviceColumns+` FROM devices ORDER BY id;`)
	if err != nil {
		log.Error().Err(err).Msg("ListDevices failed")
		return nil, err
	}
	return out, nil
}

func (s *pgStore) UpdateDevice(id int, name, location, department *string) error {
	_, err := s.db.Exec(`
		UPDATE devices
		SET name = COALESCE($2, name),
		    location = COALESCE($3, location),
		    department = COALESCE($4, department),
		    updated_at = now()
		WHERE id = $1;`, id, name, location, department)
	if err != nil {
		log.Error().Err(err).Int("device_id", id).Msg("UpdateDevice failed")
	}
	return err
}

func (s *pgStore) DeleteDevice(id int) error {
	_, err := s.db.Exec(`DELETE FROM devices WHERE id = $1;`, id)
	if err != nil {
		log.Error().Err(err).Int("device_id", id).Msg("DeleteDevice failed")
	}
	return err
}

func (s *pgStore) AssignHardwareIDToDevice(deviceID int, hardwareID string) error {
	_, err := s.db.Exec(`
		UPDATE devices
		SET hardware_id = $2,
		    updated_at = now()
		WHERE id = $1;`, deviceID, hardwareID)
	if err != nil {
		log.Error().Err(err).Int("device_id", deviceID).Msg("AssignHardwareIDToDevice failed")
	}
	return err
}

func (s *pgStore) PairDevice(id int) error {
	_, err := s.db.Exec(`
		UPDATE devices
		SET paired = TRUE,
		    updated_at = now()
		WHERE id = $1;`, id)
	if err != nil {
		log.Error().Err(err).Int("device_id", id).Msg("PairDevice failed")
	}
	return err
}
