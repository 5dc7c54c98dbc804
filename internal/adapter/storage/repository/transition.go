package repository

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/tucano1306/CRM-sub005/internal/core/domain"
	"github.com/tucano1306/CRM-sub005/internal/core/port"
)

// statusTimestampColumn maps a target status to the orders column stamped on
// entry. Statuses without a column only update "status".
var statusTimestampColumn = map[domain.OrderStatus]string{
	domain.OrderStatusReviewing: "review_started_at",
	domain.OrderStatusConfirmed: "confirmed_at",
	domain.OrderStatusDelivered: "delivered_at",
	domain.OrderStatusCompleted: "completed_at",
	domain.OrderStatusCanceled:  "canceled_at",
}

// ApplyTransition serializes on the order row with SELECT ... FOR UPDATE and
// applies the plan returned by fn in the same transaction: conditional stock
// decrements, status and timestamp update, history insert, idempotency-key
// insert. The key check runs after the row lock is held, so a retry that
// lost a race against its own first attempt observes the recorded key and
// replays instead of re-applying side effects.
func (r *Repository) ApplyTransition(ctx context.Context, orderID uint64, idemKey string,
	fn port.TransitionFn) (*domain.Order, bool, error) {

	var result *domain.Order
	var replayed bool

	err := pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		lockSt := r.db.QueryBuilder.
			Select(orderColumns).
			From("orders").
			Where(sq.Eq{"id": orderID}).
			Suffix("FOR UPDATE")

		sql, args, err := lockSt.ToSql()
		if err != nil {
			return err
		}

		order, err := scanOrder(tx.QueryRow(ctx, sql, args...))
		if err != nil {
			return err
		}

		if idemKey != "" {
			var keyOrderID uint64
			err := tx.QueryRow(ctx,
				`SELECT order_id FROM order_transition_keys WHERE key = $1`,
				idemKey).Scan(&keyOrderID)
			switch {
			case err == nil:
				if keyOrderID != orderID {
					return domain.ErrConflictingData
				}
				order.Items, err = r.readOrderItems(ctx, tx, orderID)
				if err != nil {
					return err
				}
				result = order
				replayed = true
				return nil
			case err != pgx.ErrNoRows:
				return err
			}
		}

		order.Items, err = r.readOrderItems(ctx, tx, orderID)
		if err != nil {
			return err
		}

		plan, err := fn(order)
		if err != nil {
			return err
		}

		for _, dec := range plan.Decrements {
			if err := decrementStock(ctx, tx, dec); err != nil {
				return err
			}
		}

		updateSt := r.db.QueryBuilder.
			Update("orders").
			Set("status", plan.Target).
			Where(sq.Eq{"id": orderID})
		if column, ok := statusTimestampColumn[plan.Target]; ok {
			updateSt = updateSt.Set(column, plan.StampAt)
		}

		sql, args, err = updateSt.ToSql()
		if err != nil {
			return err
		}
		if _, err := tx.Exec(ctx, sql, args...); err != nil {
			return err
		}

		change := plan.Change
		historySt := r.db.QueryBuilder.
			Insert("order_status_history").
			Columns("id", "order_id", "prev_status", "new_status",
				"actor_id", "actor_role", "note", "created_at").
			Values(change.ID, change.OrderID, change.PrevStatus, change.NewStatus,
				change.ActorID, change.ActorRole, change.Note, change.CreatedAt)

		sql, args, err = historySt.ToSql()
		if err != nil {
			return err
		}
		if _, err := tx.Exec(ctx, sql, args...); err != nil {
			return err
		}

		if idemKey != "" {
			keySt := r.db.QueryBuilder.
				Insert("order_transition_keys").
				Columns("key", "order_id", "target_status").
				Values(idemKey, orderID, plan.Target)

			sql, args, err = keySt.ToSql()
			if err != nil {
				return err
			}
			if _, err := tx.Exec(ctx, sql, args...); err != nil {
				if isUniqueViolation(err) {
					return domain.ErrStaleData
				}
				return err
			}
		}

		order.StampStatus(plan.Target, plan.StampAt)
		result = order
		return nil
	})
	if err != nil {
		return nil, false, err
	}

	return result, replayed, nil
}

// decrementStock only succeeds when enough stock remains. The conditional
// UPDATE serializes concurrent completions on the product row, so two orders
// can never both pass the sufficiency check against a stale figure.
func decrementStock(ctx context.Context, tx pgx.Tx, dec domain.StockDecrement) error {
	tag, err := tx.Exec(ctx,
		`UPDATE products SET stock_qty = stock_qty - $1 WHERE id = $2 AND stock_qty >= $1`,
		dec.Quantity, dec.ProductID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() > 0 {
		return nil
	}

	var name string
	var available int64
	err = tx.QueryRow(ctx,
		`SELECT name, stock_qty FROM products WHERE id = $1`,
		dec.ProductID).Scan(&name, &available)
	if err != nil {
		if err == pgx.ErrNoRows {
			return fmt.Errorf("product %d: %w", dec.ProductID, domain.ErrDataNotFound)
		}
		return err
	}

	return &domain.InsufficientStockError{
		ProductID:   dec.ProductID,
		ProductName: name,
		Required:    dec.Quantity,
		Available:   available,
	}
}
