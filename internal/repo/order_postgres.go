package repo

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"github.com/pkg/errors"
	"github.com/rogerio-castellano/storefront/internal/models"
	"github.com/shopspring/decimal"
)

type PostgresOrderRepository struct {
	db *sql.DB
}

func NewPostgresOrderRepository(db *sql.DB) *PostgresOrderRepository {
	return &PostgresOrderRepository{db: db}
}

func (r *PostgresOrderRepository) Create(ctx context.Context, o models.Order) (models.Order, error) {
	customer, err := json.Marshal(o.Customer)
	if err != nil {
		return models.Order{}, errors.Wrap(err, "marshal customer failed")
	}
	items, err := json.Marshal(o.Items)
	if err != nil {
		return models.Order{}, errors.Wrap(err, "marshal order items failed")
	}

	query := `INSERT INTO orders (id, session_id, email, customer, items, item_count, total, created_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	_, err = r.db.ExecContext(ctx, query, o.ID, o.SessionID, o.Customer.Email, string(customer), string(items), o.ItemCount, o.Total, o.CreatedAt)
	if err != nil {
		return models.Order{}, errors.Wrap(err, "insert order failed")
	}
	return o, nil
}

func (r *PostgresOrderRepository) GetByID(ctx context.Context, id string) (models.Order, error) {
	query := `SELECT id, session_id, customer, items, item_count, total, created_at FROM orders WHERE id = $1`
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	var (
		o        models.Order
		customer []byte
		items    []byte
	)
	err := r.db.QueryRowContext(ctx, query, id).
		Scan(&o.ID, &o.SessionID, &customer, &items, &o.ItemCount, &o.Total, &o.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Order{}, ErrOrderNotFound
	}
	if err != nil {
		return models.Order{}, errors.Wrap(err, "select order failed")
	}

	if err := json.Unmarshal(customer, &o.Customer); err != nil {
		return models.Order{}, errors.Wrap(err, "unmarshal customer failed")
	}
	if err := json.Unmarshal(items, &o.Items); err != nil {
		return models.Order{}, errors.Wrap(err, "unmarshal order items failed")
	}
	return o, nil
}

func (r *PostgresOrderRepository) GetDashboardMetrics(ctx context.Context) (Metrics, error) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	m := Metrics{}
	var revenue decimal.NullDecimal
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*), COALESCE(SUM(item_count), 0), SUM(total) FROM orders`).
		Scan(&m.TotalOrders, &m.ItemsSold, &revenue)
	if err != nil {
		return m, errors.Wrap(err, "select order totals failed")
	}
	m.Revenue = decimal.Zero
	if revenue.Valid {
		m.Revenue = revenue.Decimal
	}

	query := `
		SELECT item->>'title' AS title, SUM((item->>'quantity')::int) AS units
		FROM orders, jsonb_array_elements(items) AS item
		GROUP BY title
		ORDER BY units DESC, title
		LIMIT 1`
	err = r.db.QueryRowContext(ctx, query).Scan(&m.BestSellingProduct.Title, &m.BestSellingProduct.UnitsSold)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return m, errors.Wrap(err, "select best selling product failed")
	}

	return m, nil
}
