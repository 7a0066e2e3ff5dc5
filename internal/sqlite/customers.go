// This file implements CRUD over customers. Phone numbers are unique when
// present; the conflict surfaces as ErrDuplicatePhone rather than a
// generic failure so callers can re-prompt.
package sqlite

import (
	"database/sql"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/tasteops/mealweek/pkg/types"
)

// AddCustomer inserts a customer and returns its ID.
func (s *Store) AddCustomer(c types.Customer) (int64, error) {
	res, err := s.db.Exec(
		"INSERT INTO clientes(nome, endereco, complemento, telefone) VALUES(?,?,?,?)",
		c.Name, c.Address, c.Complement, nullString(c.Phone),
	)
	if isUniqueViolation(err, "clientes.telefone") {
		return 0, types.ErrDuplicatePhone
	}
	if err != nil {
		return 0, fmt.Errorf("adding customer: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("reading customer ID: %w", err)
	}
	s.logger.Debug("customer added", zap.Int64("customer_id", id), zap.String("name", c.Name))
	return id, nil
}

// UpdateCustomer rewrites all customer fields. Returns ErrDuplicatePhone
// if the phone now collides with another customer, ErrNotFound for an
// unknown ID.
func (s *Store) UpdateCustomer(c types.Customer) error {
	if c.CustomerID <= 0 {
		return types.ErrInvalidID
	}
	res, err := s.db.Exec(
		"UPDATE clientes SET nome = ?, endereco = ?, complemento = ?, telefone = ? WHERE id = ?",
		c.Name, c.Address, c.Complement, nullString(c.Phone), c.CustomerID,
	)
	if isUniqueViolation(err, "clientes.telefone") {
		return types.ErrDuplicatePhone
	}
	if err != nil {
		return fmt.Errorf("updating customer %d: %w", c.CustomerID, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("updating customer %d: %w", c.CustomerID, err)
	}
	if n == 0 {
		return types.ErrNotFound
	}
	return nil
}

// GetCustomer looks up one customer by ID.
func (s *Store) GetCustomer(id int64) (types.Customer, error) {
	if id <= 0 {
		return types.Customer{}, types.ErrInvalidID
	}
	var (
		c                          types.Customer
		address, complement, phone sql.NullString
	)
	err := s.db.QueryRow(
		"SELECT id, nome, endereco, complemento, telefone FROM clientes WHERE id=?", id,
	).Scan(&c.CustomerID, &c.Name, &address, &complement, &phone)
	if errors.Is(err, sql.ErrNoRows) {
		return types.Customer{}, types.ErrNotFound
	}
	if err != nil {
		return types.Customer{}, fmt.Errorf("getting customer %d: %w", id, err)
	}
	c.Address = address.String
	c.Complement = complement.String
	c.Phone = phone.String
	return c, nil
}

// ListCustomers returns all customers ordered by name.
func (s *Store) ListCustomers() ([]types.Customer, error) {
	rows, err := s.db.Query(
		"SELECT id, nome, endereco, complemento, telefone FROM clientes ORDER BY nome",
	)
	if err != nil {
		return nil, fmt.Errorf("listing customers: %w", err)
	}
	defer rows.Close()

	var customers []types.Customer
	for rows.Next() {
		var (
			c                          types.Customer
			address, complement, phone sql.NullString
		)
		if err := rows.Scan(&c.CustomerID, &c.Name, &address, &complement, &phone); err != nil {
			return nil, fmt.Errorf("scanning customer: %w", err)
		}
		c.Address = address.String
		c.Complement = complement.String
		c.Phone = phone.String
		customers = append(customers, c)
	}
	return customers, rows.Err()
}

// DeleteCustomer removes a customer unconditionally. Their orders keep
// their history with a nulled customer reference.
func (s *Store) DeleteCustomer(id int64) error {
	if id <= 0 {
		return types.ErrInvalidID
	}
	res, err := s.db.Exec("DELETE FROM clientes WHERE id=?", id)
	if err != nil {
		return fmt.Errorf("deleting customer %d: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting customer %d: %w", id, err)
	}
	if n == 0 {
		return types.ErrNotFound
	}
	s.logger.Debug("customer deleted", zap.Int64("customer_id", id))
	return nil
}
