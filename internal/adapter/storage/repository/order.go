package repository

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/tucano1306/CRM-sub005/internal/core/domain"
)

const orderColumns = "id, client_id, seller_id, total, status, created_at, " +
	"review_started_at, confirmed_at, delivered_at, completed_at, canceled_at"

func scanOrder(row pgx.Row) (*domain.Order, error) {
	order := domain.Order{}
	err := row.Scan(
		&order.ID,
		&order.ClientID,
		&order.SellerID,
		&order.Total,
		&order.Status,
		&order.CreatedAt,
		&order.ReviewStartedAt,
		&order.ConfirmedAt,
		&order.DeliveredAt,
		&order.CompletedAt,
		&order.CanceledAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.ErrDataNotFound
		}
		return nil, err
	}
	return &order, nil
}

func (r *Repository) CreateOrder(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	err := pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		orderSt := r.db.QueryBuilder.
			Insert("orders").
			Columns("client_id", "seller_id", "total", "status", "created_at").
			Values(order.ClientID, order.SellerID, order.Total, order.Status, order.CreatedAt).
			Suffix("RETURNING id")

		sql, args, err := orderSt.ToSql()
		if err != nil {
			return err
		}

		err = tx.QueryRow(ctx, sql, args...).Scan(&order.ID)
		if err != nil {
			return err
		}

		for i := range order.Items {
			item := &order.Items[i]
			item.OrderID = order.ID

			itemSt := r.db.QueryBuilder.
				Insert("order_items").
				Columns("order_id", "product_id", "product_name", "quantity",
					"unit_price", "confirmed", "available_qty", "note").
				Values(item.OrderID, item.ProductID, item.ProductName, item.Quantity,
					item.UnitPrice, item.Confirmed, item.AvailableQty, item.Note).
				Suffix("RETURNING id")

			sql, args, err := itemSt.ToSql()
			if err != nil {
				return err
			}

			err = tx.QueryRow(ctx, sql, args...).Scan(&item.ID)
			if err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domain.ErrConflictingData
		}
		return nil, err
	}

	return order, nil
}

func (r *Repository) readOrderItems(ctx context.Context, q interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}, orderID uint64) ([]domain.OrderItem, error) {
	statement := r.db.QueryBuilder.
		Select("id", "order_id", "product_id", "product_name", "quantity",
			"unit_price", "confirmed", "available_qty", "note").
		From("order_items").
		Where(sq.Eq{"order_id": orderID}).
		OrderBy("id")

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]domain.OrderItem, 0)
	for rows.Next() {
		item := domain.OrderItem{}
		err := rows.Scan(
			&item.ID,
			&item.OrderID,
			&item.ProductID,
			&item.ProductName,
			&item.Quantity,
			&item.UnitPrice,
			&item.Confirmed,
			&item.AvailableQty,
			&item.Note,
		)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return items, rows.Err()
}

func (r *Repository) ReadOrder(ctx context.Context, orderID uint64) (*domain.Order, error) {
	statement := r.db.QueryBuilder.
		Select(orderColumns).
		From("orders").
		Where(sq.Eq{"id": orderID})

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	order, err := scanOrder(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, err
	}

	order.Items, err = r.readOrderItems(ctx, r.db, orderID)
	if err != nil {
		return nil, err
	}

	return order, nil
}

func (r *Repository) listOrders(ctx context.Context, cond sq.Eq) ([]*domain.Order, error) {
	statement := r.db.QueryBuilder.
		Select(orderColumns).
		From("orders").
		Where(cond).
		OrderBy("created_at DESC")

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := make([]*domain.Order, 0)
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, order)
	}

	return list, rows.Err()
}

func (r *Repository) ListOrdersBySeller(ctx context.Context, sellerID uint64) ([]*domain.Order, error) {
	return r.listOrders(ctx, sq.Eq{"seller_id": sellerID})
}

func (r *Repository) ListOrdersByClient(ctx context.Context, clientID uint64) ([]*domain.Order, error) {
	return r.listOrders(ctx, sq.Eq{"client_id": clientID})
}

func (r *Repository) ListOrderHistory(ctx context.Context, orderID uint64) ([]*domain.StatusChange, error) {
	statement := r.db.QueryBuilder.
		Select("id", "order_id", "prev_status", "new_status",
			"actor_id", "actor_role", "note", "created_at").
		From("order_status_history").
		Where(sq.Eq{"order_id": orderID}).
		OrderBy("created_at")

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := make([]*domain.StatusChange, 0)
	for rows.Next() {
		change := domain.StatusChange{}
		err := rows.Scan(
			&change.ID,
			&change.OrderID,
			&change.PrevStatus,
			&change.NewStatus,
			&change.ActorID,
			&change.ActorRole,
			&change.Note,
			&change.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		list = append(list, &change)
	}

	return list, rows.Err()
}
