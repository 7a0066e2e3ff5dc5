// This file implements order creation and the order read/update paths.
// Order creation is the one multi-row write in the system: the header and
// every line commit in a single transaction or not at all.
package sqlite

import (
	"database/sql"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/tasteops/mealweek/pkg/types"
)

// CreateOrder inserts an order header and all of its lines atomically and
// returns the new order ID. The total is stored exactly as supplied; the
// caller is expected to have summed quantity*unit price over the lines
// (session.Session.Total does this for the CLI). Each line's unit price
// is captured as given, a snapshot independent of the menu item's current
// price. If any insert fails the whole order is rolled back and no rows
// persist.
func (s *Store) CreateOrder(customerID, weekID int64, total float64, paymentMethod, paymentStatus, deliveryStatus string, lines []types.NewOrderLine) (int64, error) {
	if len(lines) == 0 {
		return 0, types.ErrEmptyOrder
	}
	if paymentStatus == "" {
		paymentStatus = types.PaymentPending
	}
	if deliveryStatus == "" {
		deliveryStatus = types.DeliveryPending
	}

	tx, err := s.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("beginning order transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.Exec(
		"INSERT INTO pedidos(cliente_id, semana_id, valor_total, forma_pagamento, status_pagamento, status_entrega) VALUES(?,?,?,?,?,?)",
		customerID, weekID, total, paymentMethod, paymentStatus, deliveryStatus,
	)
	if err != nil {
		return 0, fmt.Errorf("inserting order header: %w", err)
	}
	orderID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("reading order ID: %w", err)
	}

	for _, line := range lines {
		_, err := tx.Exec(
			"INSERT INTO itens_pedido(pedido_id, marmita_id, quantidade, preco_unitario) VALUES(?,?,?,?)",
			orderID, line.MenuItemID, line.Quantity, line.UnitPrice,
		)
		if err != nil {
			return 0, fmt.Errorf("inserting order line for item %d: %w", line.MenuItemID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("committing order: %w", err)
	}
	s.logger.Info("order created",
		zap.Int64("order_id", orderID),
		zap.Int("lines", len(lines)),
		zap.Float64("total", total))
	return orderID, nil
}

// ListOrders returns order summaries, most recent first. Customer and
// week names resolve through outer joins; deleted references show the
// fixed placeholder names. A positive weekID restricts the result to one
// week.
func (s *Store) ListOrders(weekID int64) ([]types.OrderSummary, error) {
	query := `
    SELECT
        p.id, p.data_hora,
        COALESCE(c.nome, ?) as nome_cliente,
        COALESCE(s.nome_semana, ?) as nome_semana,
        p.valor_total, p.forma_pagamento, p.status_pagamento, p.status_entrega
    FROM pedidos p
    LEFT JOIN clientes c ON p.cliente_id = c.id
    LEFT JOIN semanas s ON p.semana_id = s.id`
	args := []any{types.DeletedCustomerName, types.DeletedWeekName}
	if weekID > 0 {
		query += " WHERE p.semana_id = ?"
		args = append(args, weekID)
	}
	query += " ORDER BY p.data_hora DESC"

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing orders: %w", err)
	}
	defer rows.Close()

	var orders []types.OrderSummary
	for rows.Next() {
		var (
			o         types.OrderSummary
			createdAt string
			total     sql.NullFloat64
			method    sql.NullString
		)
		if err := rows.Scan(&o.OrderID, &createdAt, &o.CustomerName, &o.WeekName,
			&total, &method, &o.PaymentStatus, &o.DeliveryStatus); err != nil {
			return nil, fmt.Errorf("scanning order: %w", err)
		}
		o.CreatedAt, err = time.Parse(dateTimeLayout, createdAt)
		if err != nil {
			return nil, fmt.Errorf("parsing order timestamp %q: %w", createdAt, err)
		}
		o.Total = total.Float64
		o.PaymentMethod = method.String
		orders = append(orders, o)
	}
	return orders, rows.Err()
}

// GetOrderLines returns the lines of one order with item names resolved,
// substituting the deleted-item placeholder when the menu item is gone.
func (s *Store) GetOrderLines(orderID int64) ([]types.OrderLineView, error) {
	if orderID <= 0 {
		return nil, types.ErrInvalidID
	}
	rows, err := s.db.Query(`
    SELECT
        ip.quantidade, COALESCE(m.nome, ?) as nome_marmita, ip.preco_unitario
    FROM itens_pedido ip
    LEFT JOIN marmitas m ON ip.marmita_id = m.id
    WHERE ip.pedido_id = ?
    ORDER BY ip.id`,
		types.DeletedItemName, orderID,
	)
	if err != nil {
		return nil, fmt.Errorf("listing lines for order %d: %w", orderID, err)
	}
	defer rows.Close()

	var lines []types.OrderLineView
	for rows.Next() {
		var l types.OrderLineView
		if err := rows.Scan(&l.Quantity, &l.ItemName, &l.UnitPrice); err != nil {
			return nil, fmt.Errorf("scanning order line: %w", err)
		}
		lines = append(lines, l)
	}
	return lines, rows.Err()
}

// UpdateOrderStatus sets the payment and delivery status of an order.
// This is the only permitted post-creation mutation; line contents and
// totals are immutable once the order exists.
func (s *Store) UpdateOrderStatus(orderID int64, paymentStatus, deliveryStatus string) error {
	if orderID <= 0 {
		return types.ErrInvalidID
	}
	res, err := s.db.Exec(
		"UPDATE pedidos SET status_pagamento = ?, status_entrega = ? WHERE id = ?",
		paymentStatus, deliveryStatus, orderID,
	)
	if err != nil {
		return fmt.Errorf("updating order %d status: %w", orderID, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("updating order %d status: %w", orderID, err)
	}
	if n == 0 {
		return types.ErrNotFound
	}
	return nil
}

// DeleteOrder removes an order. Its lines are deleted by the ON DELETE
// CASCADE rule; no orphaned lines remain.
func (s *Store) DeleteOrder(orderID int64) error {
	if orderID <= 0 {
		return types.ErrInvalidID
	}
	res, err := s.db.Exec("DELETE FROM pedidos WHERE id=?", orderID)
	if err != nil {
		return fmt.Errorf("deleting order %d: %w", orderID, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting order %d: %w", orderID, err)
	}
	if n == 0 {
		return types.ErrNotFound
	}
	s.logger.Debug("order deleted", zap.Int64("order_id", orderID))
	return nil
}
