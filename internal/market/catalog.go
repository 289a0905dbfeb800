package market

import (
	"github.com/shopspring/decimal"

	"github.com/guttosm/brvmsim/internal/domain/models"
)

// defaultCatalog returns the built-in snapshot of the main BRVM listings:
// symbol, reference price (FCFA), last session change (%), average daily
// volume (shares) and sector.
func defaultCatalog() []models.Instrument {
	mk := func(symbol string, price int64, change float64, volume int64, sector string) models.Instrument {
		return models.Instrument{
			Symbol:             symbol,
			ReferencePrice:     decimal.NewFromInt(price),
			DailyChangePercent: change,
			AverageDailyVolume: volume,
			Sector:             sector,
		}
	}

	return []models.Instrument{
		mk("BICC", 8500, 2.5, 15000, "Construction"),
		mk("BOAB", 4200, -1.2, 8500, "Banque"),
		mk("BOABF", 4150, 0.8, 12000, "Banque"),
		mk("BOAC", 3950, 1.5, 9500, "Banque"),
		mk("BOCIG", 6200, -0.5, 7200, "Assurance"),
		mk("CFAC", 850, 3.2, 25000, "Automobile"),
		mk("CGBC", 1250, -2.1, 18000, "Commerce"),
		mk("EIBC", 5800, 1.8, 11000, "Industrie"),
		mk("ETIT", 18, 4.5, 45000, "Telecom"),
		mk("NEIC", 4950, -1.8, 6800, "Assurance"),
		mk("NTLC", 950, 2.2, 32000, "Textile"),
		mk("ORAC", 2800, 0.5, 14500, "Mining"),
		mk("PALC", 2950, -3.1, 8900, "Agro"),
		mk("PRSC", 350, 1.9, 55000, "Distribution"),
		mk("SAFC", 2450, -0.8, 16700, "Agro"),
		mk("SGBC", 11500, 2.8, 5400, "Banque"),
		mk("SHEC", 2750, 1.1, 19800, "Energie"),
		mk("SIBC", 4800, -2.5, 7650, "Banque"),
		mk("SICC", 1850, 0.9, 28500, "Ciment"),
		mk("SLBC", 1950, 1.4, 13200, "Banque"),
		mk("SMBC", 8200, -1.6, 4200, "Banque"),
		mk("SNTS", 4650, 2.1, 9800, "Transport"),
		mk("SOGC", 4950, 0.7, 15600, "Commerce"),
		mk("STAC", 650, -1.9, 38000, "Agro"),
		mk("STBC", 950, 3.5, 24500, "Banque"),
		mk("TTLC", 350, 1.2, 65000, "Textile"),
		mk("UNLC", 2850, -0.3, 11900, "Logistique"),
	}
}
