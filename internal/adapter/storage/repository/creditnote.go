package repository

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/tucano1306/CRM-sub005/internal/core/domain"
	"github.com/tucano1306/CRM-sub005/internal/core/port"
)

const returnColumns = "id, order_id, client_id, seller_id, reason, status, created_at, resolved_at"
const creditNoteColumns = "id, return_id, client_id, seller_id, amount, balance, active, issued_at, expires_at"

func scanReturn(row pgx.Row) (*domain.Return, error) {
	rtn := domain.Return{}
	err := row.Scan(
		&rtn.ID,
		&rtn.OrderID,
		&rtn.ClientID,
		&rtn.SellerID,
		&rtn.Reason,
		&rtn.Status,
		&rtn.CreatedAt,
		&rtn.ResolvedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.ErrDataNotFound
		}
		return nil, err
	}
	return &rtn, nil
}

func scanCreditNote(row pgx.Row) (*domain.CreditNote, error) {
	note := domain.CreditNote{}
	err := row.Scan(
		&note.ID,
		&note.ReturnID,
		&note.ClientID,
		&note.SellerID,
		&note.Amount,
		&note.Balance,
		&note.Active,
		&note.IssuedAt,
		&note.ExpiresAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.ErrDataNotFound
		}
		return nil, err
	}
	return &note, nil
}

func (r *Repository) CreateReturn(ctx context.Context, rtn *domain.Return) (*domain.Return, error) {
	statement := r.db.QueryBuilder.
		Insert("returns").
		Columns("id", "order_id", "client_id", "seller_id", "reason", "status", "created_at").
		Values(rtn.ID, rtn.OrderID, rtn.ClientID, rtn.SellerID, rtn.Reason, rtn.Status, rtn.CreatedAt)

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domain.ErrConflictingData
		}
		return nil, err
	}

	return rtn, nil
}

func (r *Repository) ReadReturn(ctx context.Context, returnID uuid.UUID) (*domain.Return, error) {
	statement := r.db.QueryBuilder.
		Select(returnColumns).
		From("returns").
		Where(sq.Eq{"id": returnID})

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	return scanReturn(r.db.QueryRow(ctx, sql, args...))
}

// ApproveReturn locks the return row, hands it to fn together with its
// order, then persists the resolved return and the issued credit note in
// one transaction.
func (r *Repository) ApproveReturn(ctx context.Context, returnID uuid.UUID,
	fn port.ApproveReturnFn) (*domain.CreditNote, error) {

	var note *domain.CreditNote

	err := pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		lockSt := r.db.QueryBuilder.
			Select(returnColumns).
			From("returns").
			Where(sq.Eq{"id": returnID}).
			Suffix("FOR UPDATE")

		sql, args, err := lockSt.ToSql()
		if err != nil {
			return err
		}

		rtn, err := scanReturn(tx.QueryRow(ctx, sql, args...))
		if err != nil {
			return err
		}

		orderSt := r.db.QueryBuilder.
			Select(orderColumns).
			From("orders").
			Where(sq.Eq{"id": rtn.OrderID})

		sql, args, err = orderSt.ToSql()
		if err != nil {
			return err
		}

		order, err := scanOrder(tx.QueryRow(ctx, sql, args...))
		if err != nil {
			return err
		}

		issued, err := fn(rtn, order)
		if err != nil {
			return err
		}

		updateSt := r.db.QueryBuilder.
			Update("returns").
			Set("status", rtn.Status).
			Set("resolved_at", rtn.ResolvedAt).
			Where(sq.Eq{"id": rtn.ID})

		sql, args, err = updateSt.ToSql()
		if err != nil {
			return err
		}
		if _, err := tx.Exec(ctx, sql, args...); err != nil {
			return err
		}

		noteSt := r.db.QueryBuilder.
			Insert("credit_notes").
			Columns("id", "return_id", "client_id", "seller_id",
				"amount", "balance", "active", "issued_at", "expires_at").
			Values(issued.ID, issued.ReturnID, issued.ClientID, issued.SellerID,
				issued.Amount, issued.Balance, issued.Active, issued.IssuedAt, issued.ExpiresAt)

		sql, args, err = noteSt.ToSql()
		if err != nil {
			return err
		}
		if _, err := tx.Exec(ctx, sql, args...); err != nil {
			return err
		}

		note = issued
		return nil
	})
	if err != nil {
		return nil, err
	}

	return note, nil
}

func (r *Repository) ListCreditNotesByClient(ctx context.Context, clientID uint64) ([]*domain.CreditNote, error) {
	statement := r.db.QueryBuilder.
		Select(creditNoteColumns).
		From("credit_notes").
		Where(sq.Eq{"client_id": clientID}).
		OrderBy("issued_at DESC")

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := make([]*domain.CreditNote, 0)
	for rows.Next() {
		note, err := scanCreditNote(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, note)
	}

	return list, rows.Err()
}

// UpdateCreditNoteBalance runs fn against the note locked FOR UPDATE, so
// concurrent redemptions serialize and the balance never goes negative.
func (r *Repository) UpdateCreditNoteBalance(ctx context.Context, noteID uuid.UUID,
	fn port.UpdateCreditNoteFn) (*domain.CreditNote, error) {

	var result *domain.CreditNote

	err := pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		lockSt := r.db.QueryBuilder.
			Select(creditNoteColumns).
			From("credit_notes").
			Where(sq.Eq{"id": noteID}).
			Suffix("FOR UPDATE")

		sql, args, err := lockSt.ToSql()
		if err != nil {
			return err
		}

		note, err := scanCreditNote(tx.QueryRow(ctx, sql, args...))
		if err != nil {
			return err
		}

		if err := fn(note); err != nil {
			return err
		}

		updateSt := r.db.QueryBuilder.
			Update("credit_notes").
			Set("balance", note.Balance).
			Set("active", note.Active).
			Where(sq.Eq{"id": note.ID})

		sql, args, err = updateSt.ToSql()
		if err != nil {
			return err
		}
		if _, err := tx.Exec(ctx, sql, args...); err != nil {
			return err
		}

		result = note
		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}
