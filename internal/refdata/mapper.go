package refdata

import (
	"fmt"
	"strconv"
	"strings"

	"nsbridge/internal/config"
	"nsbridge/internal/netsuite"
)

// ConfigurationError reports a storefront method that has no NetSuite mapping
// configured. The message names both the method and the full mapping so the
// operator can see what is actually deployed.
type ConfigurationError struct {
	Kind    string
	Method  string
	Mapping map[string]int
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("%s method %q not found in %s", e.Kind, e.Method, formatMapping(e.Mapping))
}

func formatMapping(mapping map[string]int) string {
	pairs := make([]string, 0, len(mapping))
	for method, id := range mapping {
		pairs = append(pairs, fmt.Sprintf("%q: %d", method, id))
	}
	return "{" + strings.Join(pairs, ", ") + "}"
}

// Mapper translates storefront enums into NetSuite internal ids. It is
// stateless apart from the configuration tables it is built from.
type Mapper struct {
	cfg *config.Config
	ns  netsuite.API
}

func NewMapper(cfg *config.Config, ns netsuite.API) *Mapper {
	return &Mapper{cfg: cfg, ns: ns}
}

// ShippingID resolves a storefront shipping method to its NetSuite internal
// id.
func (m *Mapper) ShippingID(method string) (string, error) {
	id, ok := m.cfg.ShippingMethods[method]
	if !ok {
		return "", &ConfigurationError{Kind: "Shipping", Method: method, Mapping: m.cfg.ShippingMethods}
	}
	return strconv.Itoa(id), nil
}

// PaymentMethodID resolves a storefront payment method to its NetSuite
// internal id.
func (m *Mapper) PaymentMethodID(method string) (string, error) {
	id, ok := m.cfg.PaymentMethods[method]
	if !ok {
		return "", &ConfigurationError{Kind: "Payment", Method: method, Mapping: m.cfg.PaymentMethods}
	}
	return strconv.Itoa(id), nil
}

// ItemFor finds or creates the non-inventory item that backs a synthetic
// tax or discount sales-order line and returns its internal id.
func (m *Mapper) ItemFor(kind string) (string, error) {
	name := m.cfg.ItemForDiscounts
	if name == "" && kind != "" {
		name = "Spree " + strings.ToUpper(kind[:1]) + kind[1:]
	}

	item, err := m.ns.FindNonInventoryItemByName(name)
	if err == nil {
		return item.InternalID, nil
	}
	if err != netsuite.ErrNotFound {
		return "", fmt.Errorf("failed to look up item %q: %w", name, err)
	}

	created := &netsuite.NonInventoryItem{ItemID: name, DisplayName: name}
	if err := m.ns.AddNonInventoryItem(created); err != nil {
		return "", fmt.Errorf("failed to create item %q: %w", name, err)
	}
	return created.InternalID, nil
}
