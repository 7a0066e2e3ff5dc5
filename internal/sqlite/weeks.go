// This file implements CRUD over weeks: the named delivery periods that
// orders are batched under.
package sqlite

import (
	"database/sql"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/tasteops/mealweek/pkg/types"
)

// AddWeek inserts a new week and returns its ID. Returns ErrDuplicateName
// if a week with the same name exists.
func (s *Store) AddWeek(name string, start, end *time.Time) (int64, error) {
	res, err := s.db.Exec(
		"INSERT INTO semanas(nome_semana, data_inicio, data_fim) VALUES(?,?,?)",
		name, nullDate(start), nullDate(end),
	)
	if isUniqueViolation(err, "semanas.nome_semana") {
		return 0, types.ErrDuplicateName
	}
	if err != nil {
		return 0, fmt.Errorf("adding week: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("reading week ID: %w", err)
	}
	s.logger.Debug("week added", zap.Int64("week_id", id), zap.String("name", name))
	return id, nil
}

// UpdateWeek rewrites a week's name and dates. Returns ErrDuplicateName on
// a name collision and ErrNotFound if the ID matches no row.
func (s *Store) UpdateWeek(id int64, name string, start, end *time.Time) error {
	if id <= 0 {
		return types.ErrInvalidID
	}
	res, err := s.db.Exec(
		"UPDATE semanas SET nome_semana = ?, data_inicio = ?, data_fim = ? WHERE id = ?",
		name, nullDate(start), nullDate(end), id,
	)
	if isUniqueViolation(err, "semanas.nome_semana") {
		return types.ErrDuplicateName
	}
	if err != nil {
		return fmt.Errorf("updating week %d: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("updating week %d: %w", id, err)
	}
	if n == 0 {
		return types.ErrNotFound
	}
	return nil
}

// ListWeeks returns all weeks, most recent start date first, then by name.
func (s *Store) ListWeeks() ([]types.Week, error) {
	rows, err := s.db.Query(
		"SELECT id, nome_semana, data_inicio, data_fim FROM semanas ORDER BY data_inicio DESC, nome_semana",
	)
	if err != nil {
		return nil, fmt.Errorf("listing weeks: %w", err)
	}
	defer rows.Close()

	var weeks []types.Week
	for rows.Next() {
		var (
			w          types.Week
			start, end sql.NullString
		)
		if err := rows.Scan(&w.WeekID, &w.Name, &start, &end); err != nil {
			return nil, fmt.Errorf("scanning week: %w", err)
		}
		if w.StartDate, err = parseNullDate(start); err != nil {
			return nil, err
		}
		if w.EndDate, err = parseNullDate(end); err != nil {
			return nil, err
		}
		weeks = append(weeks, w)
	}
	return weeks, rows.Err()
}

// DeleteWeek removes a week. Orders referencing it keep their history with
// a nulled week reference (ON DELETE SET NULL in the schema).
func (s *Store) DeleteWeek(id int64) error {
	if id <= 0 {
		return types.ErrInvalidID
	}
	res, err := s.db.Exec("DELETE FROM semanas WHERE id=?", id)
	if err != nil {
		return fmt.Errorf("deleting week %d: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting week %d: %w", id, err)
	}
	if n == 0 {
		return types.ErrNotFound
	}
	s.logger.Debug("week deleted", zap.Int64("week_id", id))
	return nil
}
