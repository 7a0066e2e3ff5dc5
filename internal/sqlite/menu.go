// This file implements CRUD over menu items. The availability flag gates
// which items a new order may draw from; price validation (positive
// values) is the caller's responsibility, matching where form validation
// lives in the presentation layer.
package sqlite

import (
	"database/sql"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/tasteops/mealweek/pkg/types"
)

// AddMenuItem inserts a menu item and returns its ID. Returns
// ErrDuplicateName if an item with the same name exists.
func (s *Store) AddMenuItem(m types.MenuItem) (int64, error) {
	res, err := s.db.Exec(
		"INSERT INTO marmitas(nome, descricao, preco, categoria, disponivel_semana, imagem_path) VALUES(?,?,?,?,?,?)",
		m.Name, m.Description, m.Price, m.Category, m.Available, nullString(m.ImagePath),
	)
	if isUniqueViolation(err, "marmitas.nome") {
		return 0, types.ErrDuplicateName
	}
	if err != nil {
		return 0, fmt.Errorf("adding menu item: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("reading menu item ID: %w", err)
	}
	s.logger.Debug("menu item added", zap.Int64("item_id", id), zap.String("name", m.Name))
	return id, nil
}

// UpdateMenuItem rewrites all fields of a menu item.
func (s *Store) UpdateMenuItem(m types.MenuItem) error {
	if m.MenuItemID <= 0 {
		return types.ErrInvalidID
	}
	res, err := s.db.Exec(
		"UPDATE marmitas SET nome = ?, descricao = ?, preco = ?, categoria = ?, disponivel_semana = ?, imagem_path = ? WHERE id = ?",
		m.Name, m.Description, m.Price, m.Category, m.Available, nullString(m.ImagePath), m.MenuItemID,
	)
	if isUniqueViolation(err, "marmitas.nome") {
		return types.ErrDuplicateName
	}
	if err != nil {
		return fmt.Errorf("updating menu item %d: %w", m.MenuItemID, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("updating menu item %d: %w", m.MenuItemID, err)
	}
	if n == 0 {
		return types.ErrNotFound
	}
	return nil
}

// GetMenuItem looks up one menu item by ID.
func (s *Store) GetMenuItem(id int64) (types.MenuItem, error) {
	if id <= 0 {
		return types.MenuItem{}, types.ErrInvalidID
	}
	row := s.db.QueryRow(
		"SELECT id, nome, descricao, preco, categoria, disponivel_semana, imagem_path FROM marmitas WHERE id=?", id,
	)
	m, err := scanMenuItem(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return types.MenuItem{}, types.ErrNotFound
	}
	if err != nil {
		return types.MenuItem{}, fmt.Errorf("getting menu item %d: %w", id, err)
	}
	return m, nil
}

// ListMenuItems returns the full menu ordered by name.
func (s *Store) ListMenuItems() ([]types.MenuItem, error) {
	return s.listMenu(
		"SELECT id, nome, descricao, preco, categoria, disponivel_semana, imagem_path FROM marmitas ORDER BY nome",
	)
}

// ListAvailableMenuItems returns only items flagged available this week,
// ordered by name. This is the set a new order is allowed to draw from.
func (s *Store) ListAvailableMenuItems() ([]types.MenuItem, error) {
	return s.listMenu(
		"SELECT id, nome, descricao, preco, categoria, disponivel_semana, imagem_path FROM marmitas WHERE disponivel_semana = TRUE ORDER BY nome",
	)
}

func (s *Store) listMenu(query string) ([]types.MenuItem, error) {
	rows, err := s.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("listing menu items: %w", err)
	}
	defer rows.Close()

	var items []types.MenuItem
	for rows.Next() {
		m, err := scanMenuItem(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scanning menu item: %w", err)
		}
		items = append(items, m)
	}
	return items, rows.Err()
}

// scanMenuItem hydrates one marmitas row through any Scan-shaped function.
func scanMenuItem(scan func(dest ...any) error) (types.MenuItem, error) {
	var (
		m                              types.MenuItem
		description, category, imgPath sql.NullString
		price                          sql.NullFloat64
	)
	if err := scan(&m.MenuItemID, &m.Name, &description, &price, &category, &m.Available, &imgPath); err != nil {
		return types.MenuItem{}, err
	}
	m.Description = description.String
	m.Price = price.Float64
	m.Category = category.String
	m.ImagePath = imgPath.String
	return m, nil
}

// DeleteMenuItem removes a menu item unconditionally. Historical order
// lines keep their quantity and price snapshot with a nulled item
// reference.
func (s *Store) DeleteMenuItem(id int64) error {
	if id <= 0 {
		return types.ErrInvalidID
	}
	res, err := s.db.Exec("DELETE FROM marmitas WHERE id=?", id)
	if err != nil {
		return fmt.Errorf("deleting menu item %d: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting menu item %d: %w", id, err)
	}
	if n == 0 {
		return types.ErrNotFound
	}
	s.logger.Debug("menu item deleted", zap.Int64("item_id", id))
	return nil
}
