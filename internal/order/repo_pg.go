package order

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PGRepo is the swappable PostgreSQL ledger, selected when
// POSTGRES_DSN is configured. Order and items go in one transaction.
type PGRepo struct{ db *pgxpool.Pool }

func NewPGRepo(db *pgxpool.Pool) *PGRepo { return &PGRepo{db: db} }

func (r *PGRepo) Create(ctx context.Context, o *Order) error {
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if o.Status == "" {
		o.Status = StatusNew
	}
	err = tx.QueryRow(ctx, `
    INSERT INTO orders (customer_name, email, mobile, billing_address, shipping_address, pincode, total, status, payment_status, created_at)
    VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,NOW())
    RETURNING id
  `, o.Name, o.Email, o.Mobile, o.BillingAddress, o.ShippingAddress, o.Pincode, o.Total, o.Status, o.PaymentStatus).Scan(&o.ID)
	if err != nil {
		return err
	}

	for _, it := range o.Items {
		if _, err := tx.Exec(ctx, `
      INSERT INTO order_items (order_id, product_id, name, quantity, price)
      VALUES ($1,$2,$3,$4,$5)
    `, o.ID, it.ProductID, it.Name, it.Quantity, it.Price); err != nil {
			return err
		}
	}
	return tx.Commit(ctx)
}

func (r *PGRepo) GetByID(ctx context.Context, id int64) (*Order, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var o Order
	if err := r.db.QueryRow(ctx, `
    SELECT id, customer_name, email, mobile, billing_address, shipping_address, pincode, total, status, payment_status
    FROM orders WHERE id=$1
  `, id).Scan(&o.ID, &o.Name, &o.Email, &o.Mobile, &o.BillingAddress, &o.ShippingAddress, &o.Pincode, &o.Total, &o.Status, &o.PaymentStatus); err != nil {
		return nil, ErrNotFound
	}
	items, err := r.items(ctx, id)
	if err != nil {
		return nil, err
	}
	o.Items = items
	return &o, nil
}

func (r *PGRepo) List(ctx context.Context) ([]Order, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	rows, err := r.db.Query(ctx, `
    SELECT id, customer_name, email, mobile, billing_address, shipping_address, pincode, total, status, payment_status
    FROM orders ORDER BY id
  `)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Order
	for rows.Next() {
		var o Order
		if err := rows.Scan(&o.ID, &o.Name, &o.Email, &o.Mobile, &o.BillingAddress, &o.ShippingAddress, &o.Pincode, &o.Total, &o.Status, &o.PaymentStatus); err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for i := range out {
		items, err := r.items(ctx, out[i].ID)
		if err != nil {
			return nil, err
		}
		out[i].Items = items
	}
	return out, nil
}

// UpdateStatus re-checks the transition inside the row lock so two
// concurrent updates cannot both win.
func (r *PGRepo) UpdateStatus(ctx context.Context, id int64, status Status) (*Order, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var cur Status
	if err := tx.QueryRow(ctx, `SELECT status FROM orders WHERE id=$1 FOR UPDATE`, id).Scan(&cur); err != nil {
		return nil, ErrNotFound
	}
	if !CanTransition(cur, status) {
		return nil, fmt.Errorf("%w: %s -> %s", ErrBadTransition, cur, status)
	}
	if _, err := tx.Exec(ctx, `UPDATE orders SET status=$2 WHERE id=$1`, id, status); err != nil {
		return nil, err
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return r.GetByID(ctx, id)
}

func (r *PGRepo) items(ctx context.Context, orderID int64) ([]Item, error) {
	rows, err := r.db.Query(ctx, `
    SELECT product_id, name, quantity, price
    FROM order_items WHERE order_id=$1 ORDER BY id
  `, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []Item
	for rows.Next() {
		var it Item
		if err := rows.Scan(&it.ProductID, &it.Name, &it.Quantity, &it.Price); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, rows.Err()
}
