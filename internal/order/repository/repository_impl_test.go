package repository

import (
	"context"
	"testing"

	"github.com/bwmarrin/snowflake"
	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/shushruth21/estre/internal/order/domain"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	conn, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, conn.AutoMigrate(&domain.SaleOrder{}, &domain.LineItem{}))
	return conn
}

func TestRepository_CreateAndFindPreloadsItems(t *testing.T) {
	conn := newTestDB(t)
	repo := NewRepository(conn)
	node, err := snowflake.NewNode(1)
	require.NoError(t, err)

	ctx := context.Background()
	orderID := node.Generate()
	order := &domain.SaleOrder{
		ID:           orderID,
		Number:       "SO-" + orderID.String(),
		CustomerName: "Asha",
		Status:       domain.StatusDraft,
		Items: []domain.LineItem{
			{ID: uuid.NewString(), SaleOrderID: orderID, ProductID: node.Generate()},
			{ID: uuid.NewString(), SaleOrderID: orderID, ProductID: node.Generate()},
		},
	}
	require.NoError(t, repo.Create(ctx, order))

	found, err := repo.FindByID(ctx, orderID)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, order.Number, found.Number)
	assert.Len(t, found.Items, 2)
}

func TestRepository_FindByID_NotFoundReturnsNil(t *testing.T) {
	conn := newTestDB(t)
	repo := NewRepository(conn)

	found, err := repo.FindByID(context.Background(), snowflake.ID(12345))
	require.NoError(t, err)
	assert.Nil(t, found)
}

func TestRepository_ListFiltersByStatus(t *testing.T) {
	conn := newTestDB(t)
	repo := NewRepository(conn)
	node, err := snowflake.NewNode(1)
	require.NoError(t, err)

	ctx := context.Background()
	for _, status := range []domain.OrderStatus{domain.StatusDraft, domain.StatusConfirmed, domain.StatusDraft} {
		id := node.Generate()
		require.NoError(t, repo.Create(ctx, &domain.SaleOrder{
			ID:     id,
			Number: "SO-" + id.String(),
			Status: status,
		}))
	}

	drafts, err := repo.List(ctx, domain.StatusDraft)
	require.NoError(t, err)
	assert.Len(t, drafts, 2)

	all, err := repo.List(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestRepository_UpdateItemPersistsSnapshot(t *testing.T) {
	conn := newTestDB(t)
	repo := NewRepository(conn)
	node, err := snowflake.NewNode(1)
	require.NoError(t, err)

	ctx := context.Background()
	orderID := node.Generate()
	itemID := uuid.NewString()
	require.NoError(t, repo.Create(ctx, &domain.SaleOrder{
		ID:     orderID,
		Number: "SO-" + orderID.String(),
		Status: domain.StatusDraft,
		Items: []domain.LineItem{
			{ID: itemID, SaleOrderID: orderID, ProductID: node.Generate()},
		},
	}))

	found, err := repo.FindByID(ctx, orderID)
	require.NoError(t, err)
	require.Len(t, found.Items, 1)

	item := found.Items[0]
	item.TotalRs = 23000
	item.JobCardNumber = "SO1-00AB"
	require.NoError(t, repo.UpdateItem(ctx, &item))

	again, err := repo.FindByID(ctx, orderID)
	require.NoError(t, err)
	require.Len(t, again.Items, 1)
	assert.Equal(t, 23000.0, again.Items[0].TotalRs)
	assert.Equal(t, "SO1-00AB", again.Items[0].JobCardNumber)
}
