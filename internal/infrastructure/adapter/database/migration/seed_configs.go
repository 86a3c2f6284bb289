package migration

import (
	"context"
	"errors"

	"github.com/whitecat-hosting/whitecat/internal/domain/entity"
	errs "github.com/whitecat-hosting/whitecat/internal/domain/error"
	coreport "github.com/whitecat-hosting/whitecat/internal/domain/port/core"
	"github.com/whitecat-hosting/whitecat/internal/domain/port/persistence"
)

// seedConfig describes one default tier
type seedConfig struct {
	name         string
	cpuCores     int
	ramGB        float64
	storageGB    int
	storageType  string
	bandwidthGB  int
	priceMonthly int64
	maxWebsites  int
	features     []string
}

// Default catalog. Prices are VND per month; 0 bandwidth or websites means
// unlimited. Feature strings are the marketing copy shown on the site.
var defaultConfigs = []seedConfig{
	{
		name:         "Kitten",
		cpuCores:     1,
		ramGB:        1,
		storageGB:    2,
		storageType:  "NVMe SSD Gen 3",
		bandwidthGB:  50,
		priceMonthly: 50000,
		maxWebsites:  1,
		features:     []string{"SSL miễn phí", "Backup hàng tuần"},
	},
	{
		name:         "Cat",
		cpuCores:     2,
		ramGB:        2,
		storageGB:    10,
		storageType:  "NVMe SSD Gen 3",
		bandwidthGB:  200,
		priceMonthly: 100000,
		maxWebsites:  5,
		features:     []string{"SSL miễn phí", "Backup tự động hàng ngày", "Email hosting"},
	},
	{
		name:         "Lion",
		cpuCores:     4,
		ramGB:        4,
		storageGB:    50,
		storageType:  "NVMe SSD Gen 3",
		bandwidthGB:  0,
		priceMonthly: 200000,
		maxWebsites:  0,
		features:     []string{"SSL miễn phí", "Backup tự động hàng ngày", "Email hosting", "Hỗ trợ ưu tiên", "CDN miễn phí"},
	},
}

// SeedServerConfigs inserts the default tier catalog. Existing tiers are left
// untouched so administrative edits survive restarts.
func SeedServerConfigs(ctx context.Context, configRepo persistence.ServerConfigRepository,
	timeProvider coreport.TimeProvider, logger coreport.Logger) error {
	for _, seed := range defaultConfigs {
		_, err := configRepo.GetByName(ctx, seed.name)
		if err == nil {
			continue
		}
		if !errors.Is(err, errs.ErrConfigNotFound) {
			return err
		}

		config, err := entity.NewServerConfig(seed.name, seed.cpuCores, seed.ramGB, seed.storageGB,
			seed.storageType, seed.bandwidthGB, seed.priceMonthly, seed.maxWebsites, seed.features,
			timeProvider)
		if err != nil {
			return err
		}

		if err := configRepo.Create(ctx, config); err != nil {
			return err
		}

		logger.Info("Seeded server config", map[string]any{
			"name":          seed.name,
			"price_monthly": seed.priceMonthly,
		})
	}

	return nil
}
