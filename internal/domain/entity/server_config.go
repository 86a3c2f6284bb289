package entity

import (
	"time"

	errs "github.com/whitecat-hosting/whitecat/internal/domain/error"
	coreport "github.com/whitecat-hosting/whitecat/internal/domain/port/core"
)

// ServerConfig is a purchasable hosting tier. Once referenced by a purchase
// it only changes through administrative edits.
type ServerConfig struct {
	ID           uint64
	Name         string   // Unique tier name
	CPUCores     int
	RAMGB        float64
	StorageGB    int
	StorageType  string
	BandwidthGB  int // 0 = unlimited
	PriceMonthly int64
	MaxWebsites  int      // 0 = unlimited
	Features     []string // Ordered marketing feature list
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NewServerConfig creates a tier definition with basic validation
func NewServerConfig(name string, cpuCores int, ramGB float64, storageGB int, storageType string,
	bandwidthGB int, priceMonthly int64, maxWebsites int, features []string,
	timeProvider coreport.TimeProvider) (*ServerConfig, error) {
	fields := map[string]string{}
	if name == "" {
		fields["name"] = "name is required"
	}
	if cpuCores <= 0 {
		fields["cpu_cores"] = "cpu_cores must be positive"
	}
	if ramGB <= 0 {
		fields["ram_gb"] = "ram_gb must be positive"
	}
	if storageGB <= 0 {
		fields["storage_gb"] = "storage_gb must be positive"
	}
	if priceMonthly <= 0 {
		fields["price_monthly"] = "price_monthly must be positive"
	}
	if len(fields) > 0 {
		return nil, errs.NewValidationError(fields)
	}

	now := timeProvider.Now()
	return &ServerConfig{
		Name:         name,
		CPUCores:     cpuCores,
		RAMGB:        ramGB,
		StorageGB:    storageGB,
		StorageType:  storageType,
		BandwidthGB:  bandwidthGB,
		PriceMonthly: priceMonthly,
		MaxWebsites:  maxWebsites,
		Features:     features,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}, nil
}

// TotalPrice returns the cost of renting this tier for the given months
func (c *ServerConfig) TotalPrice(months int) int64 {
	return c.PriceMonthly * int64(months)
}
