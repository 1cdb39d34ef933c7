package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// NetSuite web services are pinned to the 2013_2 WSDL.
const (
	APIVersion  = "2013_2"
	WSDLURL     = "https://webservices.na1.netsuite.com/wsdl/v2013_2_0/netsuite.wsdl"
	ReadTimeout = 175 // seconds
)

type Config struct {
	// NetSuite credentials
	NetSuiteEmail    string
	NetSuitePassword string
	NetSuiteAccount  string

	// Storefront method name -> NetSuite internal id
	ShippingMethods map[string]int
	PaymentMethods  map[string]int

	// Overrides the non-inventory item name used for tax/discount lines
	ItemForDiscounts string

	// Watermark for the product pull, RFC3339
	LastUpdatedAfter string

	// API Configuration
	APIPort string
	APIHost string

	// Kafka
	KafkaBrokers  string
	ShipmentTopic string

	// Worker
	PollInterval int

	// Environment
	Env      string
	LogLevel string
}

func Load() (*Config, error) {
	// Load .env file
	godotenv.Load()

	cfg := &Config{
		NetSuiteEmail:    os.Getenv("NETSUITE_EMAIL"),
		NetSuitePassword: os.Getenv("NETSUITE_PASSWORD"),
		NetSuiteAccount:  os.Getenv("NETSUITE_ACCOUNT"),
		ItemForDiscounts: getEnv("NETSUITE_ITEM_FOR_DISCOUNTS", ""),
		LastUpdatedAfter: getEnv("NETSUITE_LAST_UPDATED_AFTER", ""),
		APIPort:          getEnv("API_PORT", "8080"),
		APIHost:          getEnv("API_HOST", "0.0.0.0"),
		KafkaBrokers:     getEnv("KAFKA_BROKERS", "localhost:9092"),
		ShipmentTopic:    getEnv("KAFKA_SHIPMENT_TOPIC", "shipment-events"),
		PollInterval:     getEnvAsInt("WORKER_POLL_INTERVAL", 300),
		Env:              getEnv("ENV", "development"),
		LogLevel:         getEnv("LOG_LEVEL", "info"),
	}

	required := map[string]string{
		"NETSUITE_EMAIL":    cfg.NetSuiteEmail,
		"NETSUITE_PASSWORD": cfg.NetSuitePassword,
		"NETSUITE_ACCOUNT":  cfg.NetSuiteAccount,
	}
	for key, value := range required {
		if value == "" {
			return nil, fmt.Errorf("missing required configuration %s", key)
		}
	}

	var err error
	if cfg.ShippingMethods, err = getEnvAsMapping("NETSUITE_SHIPPING_METHODS_MAPPING"); err != nil {
		return nil, err
	}
	if cfg.PaymentMethods, err = getEnvAsMapping("NETSUITE_PAYMENT_METHODS_MAPPING"); err != nil {
		return nil, err
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvAsMapping parses a JSON object of method name -> internal id,
// e.g. {"UPS Ground": 3, "Check": 7}.
func getEnvAsMapping(key string) (map[string]int, error) {
	value := os.Getenv(key)
	if value == "" {
		return nil, fmt.Errorf("missing required configuration %s", key)
	}
	mapping := map[string]int{}
	if err := json.Unmarshal([]byte(value), &mapping); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", key, err)
	}
	return mapping, nil
}
