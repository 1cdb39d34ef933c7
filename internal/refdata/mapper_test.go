package refdata_test

import (
	"testing"

	"nsbridge/internal/config"
	"nsbridge/internal/netsuite"
	"nsbridge/internal/netsuite/netsuitetest"
	"nsbridge/internal/refdata"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	return &config.Config{
		ShippingMethods: map[string]int{"UPS Ground": 3},
		PaymentMethods:  map[string]int{"Check": 7},
	}
}

func TestShippingID(t *testing.T) {
	mapper := refdata.NewMapper(testConfig(), new(netsuitetest.MockAPI))

	id, err := mapper.ShippingID("UPS Ground")
	require.NoError(t, err)
	assert.Equal(t, "3", id)
}

func TestShippingIDUnknownMethodNamesMethodAndMapping(t *testing.T) {
	mapper := refdata.NewMapper(testConfig(), new(netsuitetest.MockAPI))

	_, err := mapper.ShippingID("ExpressMoon")
	require.Error(t, err)

	var cfgErr *refdata.ConfigurationError
	require.ErrorAs(t, err, &cfgErr)
	assert.Contains(t, err.Error(), "ExpressMoon")
	assert.Contains(t, err.Error(), "UPS Ground")
}

func TestPaymentMethodID(t *testing.T) {
	mapper := refdata.NewMapper(testConfig(), new(netsuitetest.MockAPI))

	id, err := mapper.PaymentMethodID("Check")
	require.NoError(t, err)
	assert.Equal(t, "7", id)

	_, err = mapper.PaymentMethodID("Barter")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Barter")
	assert.Contains(t, err.Error(), "Check")
}

func TestItemForFindsExistingItem(t *testing.T) {
	ns := new(netsuitetest.MockAPI)
	ns.On("FindNonInventoryItemByName", "Spree Tax").
		Return(&netsuite.NonInventoryItem{InternalID: "77"}, nil)

	mapper := refdata.NewMapper(testConfig(), ns)

	id, err := mapper.ItemFor("tax")
	require.NoError(t, err)
	assert.Equal(t, "77", id)
	ns.AssertNotCalled(t, "AddNonInventoryItem", mock.Anything)
}

func TestItemForCreatesMissingItem(t *testing.T) {
	ns := new(netsuitetest.MockAPI)
	ns.On("FindNonInventoryItemByName", "Spree Discount").
		Return(nil, netsuite.ErrNotFound)
	ns.On("AddNonInventoryItem", mock.AnythingOfType("*netsuite.NonInventoryItem")).
		Run(func(args mock.Arguments) {
			args.Get(0).(*netsuite.NonInventoryItem).InternalID = "88"
		}).
		Return(nil)

	mapper := refdata.NewMapper(testConfig(), ns)

	id, err := mapper.ItemFor("discount")
	require.NoError(t, err)
	assert.Equal(t, "88", id)
	ns.AssertExpectations(t)
}

func TestItemForHonoursConfiguredName(t *testing.T) {
	cfg := testConfig()
	cfg.ItemForDiscounts = "Store Adjustments"

	ns := new(netsuitetest.MockAPI)
	ns.On("FindNonInventoryItemByName", "Store Adjustments").
		Return(&netsuite.NonInventoryItem{InternalID: "99"}, nil)

	mapper := refdata.NewMapper(cfg, ns)

	id, err := mapper.ItemFor("tax")
	require.NoError(t, err)
	assert.Equal(t, "99", id)
}
