package repo_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rogerio-castellano/storefront/internal/db"
	"github.com/rogerio-castellano/storefront/internal/models"
	"github.com/rogerio-castellano/storefront/internal/repo"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

func setupTestDB(t *testing.T) *repo.PostgresOrderRepository {
	if testing.Short() {
		t.Skip("skipping postgres integration test in short mode")
	}
	ctx := context.Background()

	pgContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("storefront"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := pgContainer.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %s", err)
		}
	})

	dsn, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	database, err := db.Connect(dsn)
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })

	require.NoError(t, db.Migrate(database))
	require.NoError(t, db.Migrate(database), "migrating twice is a no-op")

	return repo.NewPostgresOrderRepository(database)
}

func TestPostgresOrderRepository(t *testing.T) {
	r := setupTestDB(t)
	ctx := context.Background()

	m, err := r.GetDashboardMetrics(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, m.TotalOrders)
	assert.True(t, m.Revenue.IsZero())

	order := models.Order{
		ID:        uuid.NewString(),
		SessionID: "s1",
		Customer:  models.Customer{Email: "ada@example.com", FirstName: "Ada", LastName: "Lovelace", City: "London"},
		Items: []models.CartLineItem{
			{Product: models.Product{ID: 1, Title: "Blue Shirt", Price: decimal.RequireFromString("20.00")}, Quantity: 2},
			{Product: models.Product{ID: 2, Title: "Gold Ring", Price: decimal.RequireFromString("100.00")}, Quantity: 1},
		},
		ItemCount: 3,
		Total:     decimal.RequireFromString("140.00"),
		CreatedAt: time.Now().UTC().Truncate(time.Millisecond),
	}
	_, err = r.Create(ctx, order)
	require.NoError(t, err)

	got, err := r.GetByID(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, order.ID, got.ID)
	assert.Equal(t, "London", got.Customer.City)
	require.Len(t, got.Items, 2)
	assert.Equal(t, 2, got.Items[0].Quantity)
	assert.True(t, got.Total.Equal(order.Total))
	assert.True(t, got.CreatedAt.Equal(order.CreatedAt))

	_, err = r.GetByID(ctx, uuid.NewString())
	assert.ErrorIs(t, err, repo.ErrOrderNotFound)

	m, err = r.GetDashboardMetrics(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, m.TotalOrders)
	assert.Equal(t, 3, m.ItemsSold)
	assert.Equal(t, "140.00", m.Revenue.StringFixed(2))
	assert.Equal(t, repo.BestSellingProduct{Title: "Blue Shirt", UnitsSold: 2}, m.BestSellingProduct)
}
