package integration_test

import (
	"testing"
	"time"

	"nsbridge/internal/config"
	"nsbridge/internal/integration"
	"nsbridge/internal/logger"
	"nsbridge/internal/models"
	"nsbridge/internal/netsuite"
	"nsbridge/internal/netsuite/netsuitetest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestQueryInventory(t *testing.T) {
	ns := new(netsuitetest.MockAPI)
	ns.On("FindInventoryItemBySKU", "A").
		Return(&netsuite.InventoryItem{InternalID: "12", ItemID: "A", QuantityAvailable: 53}, nil)

	result, err := newCoordinator(ns).QueryInventory(models.InventoryQuery{SKU: "A"})
	require.NoError(t, err)

	require.Len(t, result.Messages, 1)
	assert.Equal(t, "stock:actual", result.Messages[0].Topic)
	stock := result.Messages[0].Payload.(*models.StockMessage)
	assert.Equal(t, "A", stock.SKU)
	assert.Equal(t, 53.0, stock.Quantity)

	require.Len(t, result.Notices, 1)
	assert.Equal(t, "info", result.Notices[0].Type)
	assert.Equal(t, "53 units available of A according to NetSuite", result.Notices[0].Message)
}

func TestQueryInventoryUnknownSKUIsBenign(t *testing.T) {
	ns := new(netsuitetest.MockAPI)
	ns.On("FindInventoryItemBySKU", "GHOST").Return(nil, netsuite.ErrNotFound)

	result, err := newCoordinator(ns).QueryInventory(models.InventoryQuery{SKU: "GHOST"})
	require.NoError(t, err)
	assert.Empty(t, result.Messages)
	assert.Empty(t, result.Summary)
}

func TestPullProducts(t *testing.T) {
	cfg := testConfig()
	cfg.LastUpdatedAfter = "2014-02-01T00:00:00Z"

	items := []netsuite.InventoryItem{
		{ItemID: "A", DisplayName: "Widget", BasePrice: 10, LastModifiedDate: "2014-02-03T10:00:00Z"},
		{ItemID: "B", DisplayName: "Gadget", BasePrice: 15, LastModifiedDate: "2014-02-02T10:00:00Z"},
	}

	ns := new(netsuitetest.MockAPI)
	ns.On("SearchInventoryItems", time.Date(2014, 2, 1, 0, 0, 0, 0, time.UTC)).Return(items, nil)

	coordinator := integration.NewCoordinator(cfg, ns, logger.New("error"))
	result, err := coordinator.PullProducts()
	require.NoError(t, err)

	require.Len(t, result.Messages, 2)
	assert.Equal(t, "product:import", result.Messages[0].Topic)
	product := result.Messages[0].Payload.(models.ProductMessage)
	assert.Equal(t, "A", product.SKU)
	assert.Equal(t, "Widget", product.Name)
	assert.Equal(t, 10.0, product.Price)

	// The watermark advances past the newest item.
	assert.Equal(t, "2014-02-03T10:00:01Z",
		result.Parameters[integration.WatermarkParameter])

	require.Len(t, result.Notices, 1)
	assert.Equal(t, "2 items found in NetSuite", result.Notices[0].Message)
}

func TestPullProductsEmptyCatalog(t *testing.T) {
	ns := new(netsuitetest.MockAPI)
	ns.On("SearchInventoryItems", mock.AnythingOfType("time.Time")).
		Return([]netsuite.InventoryItem{}, nil)

	result, err := newCoordinator(ns).PullProducts()
	require.NoError(t, err)
	assert.Empty(t, result.Messages)
	assert.Empty(t, result.Parameters)
}

func TestPullProductsBadWatermarkStartsFromZero(t *testing.T) {
	cfg := &config.Config{LastUpdatedAfter: "last tuesday"}

	ns := new(netsuitetest.MockAPI)
	ns.On("SearchInventoryItems", time.Time{}).Return([]netsuite.InventoryItem{}, nil)

	coordinator := integration.NewCoordinator(cfg, ns, logger.New("error"))
	_, err := coordinator.PullProducts()
	require.NoError(t, err)
	ns.AssertExpectations(t)
}
