package repository

import (
	"context"
	"time"

	"github.com/tucano1306/CRM-sub005/internal/core/domain"
)

// Reporting runs raw SQL: window functions and percentiles are awkward to
// express through the query builder. All queries are plain reads.

const activityQuery = `
SELECT date_trunc('day', created_at) AS day, new_status, COUNT(*)
FROM order_status_history
WHERE created_at >= $1
GROUP BY 1, 2
ORDER BY 1, 2`

func (r *Repository) CountTransitionsByDay(ctx context.Context, since time.Time) ([]domain.ActivityBucket, error) {
	rows, err := r.db.Query(ctx, activityQuery, since)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	buckets := make([]domain.ActivityBucket, 0)
	for rows.Next() {
		bucket := domain.ActivityBucket{}
		err := rows.Scan(&bucket.Day, &bucket.Status, &bucket.Count)
		if err != nil {
			return nil, err
		}
		buckets = append(buckets, bucket)
	}

	return buckets, rows.Err()
}

const dwellQuery = `
WITH pairs AS (
    SELECT order_id,
           new_status AS from_status,
           created_at,
           LEAD(new_status) OVER w AS to_status,
           LEAD(created_at) OVER w AS next_at
    FROM order_status_history
    WINDOW w AS (PARTITION BY order_id ORDER BY created_at)
)
SELECT from_status,
       to_status,
       COUNT(*),
       AVG(EXTRACT(EPOCH FROM (next_at - created_at)) / 60),
       PERCENTILE_CONT(0.5) WITHIN GROUP (ORDER BY EXTRACT(EPOCH FROM (next_at - created_at)) / 60)
FROM pairs
WHERE to_status IS NOT NULL AND next_at >= $1
GROUP BY from_status, to_status
ORDER BY from_status, to_status`

func (r *Repository) TransitionDwellStats(ctx context.Context, since time.Time) ([]domain.DwellStats, error) {
	rows, err := r.db.Query(ctx, dwellQuery, since)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	stats := make([]domain.DwellStats, 0)
	for rows.Next() {
		stat := domain.DwellStats{}
		err := rows.Scan(&stat.From, &stat.To, &stat.Count, &stat.AvgMinutes, &stat.MedianMinutes)
		if err != nil {
			return nil, err
		}
		stats = append(stats, stat)
	}

	return stats, rows.Err()
}

// An order's time-in-status starts at its last history record, or at
// creation when it never transitioned.
const stuckQuery = `
SELECT o.id,
       o.seller_id,
       o.status,
       COALESCE(h.last_at, o.created_at) AS since,
       EXTRACT(EPOCH FROM (now() - COALESCE(h.last_at, o.created_at))) / 60 AS stuck_minutes
FROM orders o
LEFT JOIN (
    SELECT order_id, MAX(created_at) AS last_at
    FROM order_status_history
    GROUP BY order_id
) h ON h.order_id = o.id
WHERE o.status NOT IN ('COMPLETED', 'CANCELED')
  AND COALESCE(h.last_at, o.created_at) < now() - $1 * interval '1 minute'
ORDER BY stuck_minutes DESC`

func (r *Repository) ListStuckOrders(ctx context.Context, threshold time.Duration) ([]domain.StuckOrder, error) {
	rows, err := r.db.Query(ctx, stuckQuery, threshold.Minutes())
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	stuck := make([]domain.StuckOrder, 0)
	for rows.Next() {
		order := domain.StuckOrder{}
		err := rows.Scan(&order.OrderID, &order.SellerID, &order.Status, &order.Since, &order.StuckMinutes)
		if err != nil {
			return nil, err
		}
		stuck = append(stuck, order)
	}

	return stuck, rows.Err()
}
