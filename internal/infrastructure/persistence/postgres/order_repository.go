package postgres

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	domain "backoffice/internal/domain/order"
)

// OrderRepository stores sales orders in the sales_orders table. The seq
// column keeps insertion order so List can return newest first; an upsert
// keeps the seq of the first insert.
type OrderRepository struct {
	pool *pgxpool.Pool

	schemaMu    sync.Mutex
	schemaReady bool
}

func NewOrderRepository(pool *pgxpool.Pool) *OrderRepository {
	return &OrderRepository{pool: pool}
}

func (r *OrderRepository) Save(ctx context.Context, order *domain.Order) error {
	if order == nil {
		return fmt.Errorf("order is nil")
	}
	if err := r.ensureTable(ctx); err != nil {
		return err
	}

	const query = `
		INSERT INTO sales_orders (id, customer_name, order_date, total, status, payment_method, created_at)
		VALUES ($1, $2, $3, $4::numeric, $5, $6, $7)
		ON CONFLICT (id) DO UPDATE
		SET customer_name = EXCLUDED.customer_name,
			order_date = EXCLUDED.order_date,
			total = EXCLUDED.total,
			status = EXCLUDED.status,
			payment_method = EXCLUDED.payment_method,
			created_at = EXCLUDED.created_at;
	`

	_, err := r.pool.Exec(ctx, query,
		order.ID,
		order.CustomerName,
		order.Date,
		order.Total.String(),
		string(order.Status),
		string(order.PaymentMethod),
		order.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("upsert order %s: %w", order.ID, err)
	}
	return nil
}

const selectColumns = `id, customer_name, order_date, total::text, status, payment_method, created_at`

func (r *OrderRepository) FindByID(ctx context.Context, id string) (*domain.Order, error) {
	if err := r.ensureTable(ctx); err != nil {
		return nil, err
	}

	row := r.pool.QueryRow(ctx, `SELECT `+selectColumns+` FROM sales_orders WHERE id = $1;`, id)
	o, err := scanOrder(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return o, nil
}

func (r *OrderRepository) List(ctx context.Context) ([]domain.Order, error) {
	if err := r.ensureTable(ctx); err != nil {
		return nil, err
	}

	rows, err := r.pool.Query(ctx, `SELECT `+selectColumns+` FROM sales_orders ORDER BY seq DESC;`)
	if err != nil {
		return nil, fmt.Errorf("query orders: %w", err)
	}
	defer rows.Close()

	var out []domain.Order
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate orders: %w", err)
	}
	return out, nil
}

func scanOrder(row pgx.Row) (*domain.Order, error) {
	var (
		o       domain.Order
		total   string
		status  string
		payment string
	)
	if err := row.Scan(&o.ID, &o.CustomerName, &o.Date, &total, &status, &payment, &o.CreatedAt); err != nil {
		return nil, err
	}

	amount, err := decimal.NewFromString(total)
	if err != nil {
		return nil, fmt.Errorf("parse total of %s: %w", o.ID, err)
	}
	o.Total = amount
	o.Status = domain.Status(status)
	o.PaymentMethod = domain.PaymentMethod(payment)
	return &o, nil
}

func (r *OrderRepository) ensureTable(ctx context.Context) error {
	r.schemaMu.Lock()
	defer r.schemaMu.Unlock()
	if r.schemaReady {
		return nil
	}

	const stmt = `
		CREATE TABLE IF NOT EXISTS sales_orders (
			seq BIGSERIAL,
			id TEXT PRIMARY KEY,
			customer_name TEXT NOT NULL,
			order_date TEXT NOT NULL,
			total NUMERIC NOT NULL CHECK (total >= 0),
			status TEXT NOT NULL,
			payment_method TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL
		);
	`
	if _, err := r.pool.Exec(ctx, stmt); err != nil {
		return fmt.Errorf("ensure sales_orders table: %w", err)
	}
	r.schemaReady = true
	return nil
}
