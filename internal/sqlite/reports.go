// This file implements the reporting queries: read-only aggregates over
// orders and order lines, each optionally scoped to one week. A zero
// weekID means "all history". Grouping is by the underlying reference
// column, so rows pointing at deleted customers or items collapse into a
// single placeholder bucket.
package sqlite

import (
	"fmt"

	"github.com/tasteops/mealweek/pkg/types"
)

// SalesByCustomer returns order count and total spent per customer,
// ordered by total spent descending.
func (s *Store) SalesByCustomer(weekID int64) ([]types.CustomerSales, error) {
	query := `
    SELECT COALESCE(c.nome, ?) as cliente, COUNT(p.id), SUM(p.valor_total)
    FROM pedidos p
    LEFT JOIN clientes c ON p.cliente_id = c.id`
	args := []any{types.DeletedCustomerName}
	if weekID > 0 {
		query += " WHERE p.semana_id = ?"
		args = append(args, weekID)
	}
	query += " GROUP BY p.cliente_id ORDER BY SUM(p.valor_total) DESC"

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("sales by customer: %w", err)
	}
	defer rows.Close()

	var result []types.CustomerSales
	for rows.Next() {
		var r types.CustomerSales
		if err := rows.Scan(&r.CustomerName, &r.OrderCount, &r.TotalSpent); err != nil {
			return nil, fmt.Errorf("scanning sales row: %w", err)
		}
		result = append(result, r)
	}
	return result, rows.Err()
}

// ItemsByCustomer returns total quantities per item across one customer's
// orders, ordered by quantity descending.
func (s *Store) ItemsByCustomer(customerID, weekID int64) ([]types.ItemQuantity, error) {
	if customerID <= 0 {
		return nil, types.ErrInvalidID
	}
	query := `
    SELECT COALESCE(m.nome, ?) as marmita, SUM(ip.quantidade)
    FROM itens_pedido ip
    JOIN pedidos p ON ip.pedido_id = p.id
    LEFT JOIN marmitas m ON ip.marmita_id = m.id
    WHERE p.cliente_id = ?`
	args := []any{types.DeletedItemName, customerID}
	if weekID > 0 {
		query += " AND p.semana_id = ?"
		args = append(args, weekID)
	}
	query += " GROUP BY ip.marmita_id ORDER BY SUM(ip.quantidade) DESC"

	return s.queryItemQuantities(query, args...)
}

// DailySales returns order count and sales total per calendar day of
// order creation, most recent day first.
func (s *Store) DailySales(weekID int64) ([]types.DailySales, error) {
	query := `
    SELECT
        strftime('%Y-%m-%d', p.data_hora) as dia,
        COUNT(p.id),
        SUM(p.valor_total)
    FROM pedidos p`
	var args []any
	if weekID > 0 {
		query += " WHERE p.semana_id = ?"
		args = append(args, weekID)
	}
	query += " GROUP BY dia ORDER BY dia DESC"

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("daily sales: %w", err)
	}
	defer rows.Close()

	var result []types.DailySales
	for rows.Next() {
		var r types.DailySales
		if err := rows.Scan(&r.Day, &r.OrderCount, &r.TotalSales); err != nil {
			return nil, fmt.Errorf("scanning daily sales row: %w", err)
		}
		result = append(result, r)
	}
	return result, rows.Err()
}

// BestSellingItems returns total quantities per item across all order
// lines, ordered by quantity descending. The orders table only enters the
// query when a week filter is active; the bare aggregate does not need it.
func (s *Store) BestSellingItems(weekID int64) ([]types.ItemQuantity, error) {
	query := `
    SELECT COALESCE(m.nome, ?) as marmita, SUM(ip.quantidade)
    FROM itens_pedido ip`
	args := []any{types.DeletedItemName}
	if weekID > 0 {
		query += " JOIN pedidos p ON ip.pedido_id = p.id"
	}
	query += " LEFT JOIN marmitas m ON ip.marmita_id = m.id"
	if weekID > 0 {
		query += " WHERE p.semana_id = ?"
		args = append(args, weekID)
	}
	query += " GROUP BY ip.marmita_id ORDER BY SUM(ip.quantidade) DESC"

	return s.queryItemQuantities(query, args...)
}

func (s *Store) queryItemQuantities(query string, args ...any) ([]types.ItemQuantity, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("item quantities: %w", err)
	}
	defer rows.Close()

	var result []types.ItemQuantity
	for rows.Next() {
		var r types.ItemQuantity
		if err := rows.Scan(&r.ItemName, &r.TotalQuantity); err != nil {
			return nil, fmt.Errorf("scanning item quantity row: %w", err)
		}
		result = append(result, r)
	}
	return result, rows.Err()
}
