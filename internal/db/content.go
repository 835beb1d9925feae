package db

import (
	"database/sql"
	"errors"

	"github.com/rs/zerolog/log"

	"github.com/Solace-Health-LLC/beacon/internal/model"
)

const contentColumns = `id, device_id, name, type, url, position, active, duration_ms,
	schedule_kind, specific_date, days_of_week, start_date, end_date, start_time, end_time,
	created_by, created_at, updated_at`

func (s *pgStore) CreateContent(c model.Content) (model.Content, error) {
	var out model.Content
	err := s.db.Get(&out, `
		INSERT INTO content
		(device_id, name, type, url, position, active, duration_ms,
		 schedule_kind, specific_date, days_of_week, start_date, end_date, start_time, end_time,
		 created_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, now(), now())
		RETURNING `+contentColumns+`;`,
		c.DeviceID, c.Name, c.Type, c.URL, c.Position, c.Active, c.DurationMs,
		c.ScheduleKind, c.SpecificDate, c.DaysOfWeek, c.StartDate, c.EndDate, c.StartTime, c.EndTime,
		c.CreatedBy)
	if err != nil {
		log.Error().Err(err).Msg("CreateContent failed")
		return model.Content{}, err
	}
	return out, nil
}

func (s *pgStore) GetContentByID(id int) (model.Content, error) {
	var c model.Content
	err := s.db.Get(&c, `SELECT `+contentColumns+` FROM content WHERE id = $1;`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Content{}, sql.ErrNoRows
	}
	return c, err
}

// ListContentForDevice returns the device's items in position order; ties
// keep insertion (id) order so the schedule evaluator's stable sort sees the
// original sequence.
func (s *pgStore) ListContentForDevice(deviceID int) ([]model.Content, error) {
	var out []model.Content
	err := s.db.Select(&out, `
		SELECT `+contentColumns+`
		FROM content
		WHERE device_id = $1
		ORDER BY id;`, deviceID)
	if err != nil {
		log.Error().Err(err).Int("device_id", deviceID).Msg("ListContentForDevice failed")
		return nil, err
	}
	return out, nil
}

func (s *pgStore) UpdateContent(id int, patch ContentUpdate) error {
	_, err := s.db.Exec(`
		UPDATE content
		SET name          = COALESCE($2, name),
		    url           = COALESCE($3, url),
		    position      = COALESCE($4, position),
		    active        = COALESCE($5, active),
		    duration_ms   = COALESCE($6, duration_ms),
		    schedule_kind = COALESCE($7, schedule_kind),
		    specific_date = COALESCE($8, specific_date),
		    days_of_week  = COALESCE($9, days_of_week),
		    start_date    = COALESCE($10, start_date),
		    end_date      = COALESCE($11, end_date),
		    start_time    = COALESCE($12, start_time),
		    end_time      = COALESCE($13, end_time),
		    updated_at    = now()
		WHERE id = $1;`,
		id, patch.Name, patch.URL, patch.Position, patch.Active, patch.DurationMs,
		patch.ScheduleKind, patch.SpecificDate, patch.DaysOfWeek,
		patch.StartDate, patch.EndDate, patch.StartTime, patch.EndTime)
	if err != nil {
		log.Error().Err(err).Int("content_id", id).Msg("UpdateContent failed")
	}
	return err
}

func (s *pgStore) DeleteContent(id int) error {
	_, err := s.db.Exec(`DELETE FROM content WHERE id = $1;`, id)
	if err != nil {
		log.Error().Err(err).Int("content_id", id).Msg("DeleteContent failed")
	}
	return err
}
