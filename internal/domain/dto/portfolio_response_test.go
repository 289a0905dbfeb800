package dto

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/guttosm/brvmsim/internal/domain/models"
)

func TestNewPortfolioResponse(t *testing.T) {
	takenAt := time.Date(2026, 3, 2, 9, 15, 0, 0, time.UTC)
	snap := models.PortfolioSnapshot{
		Cash: decimal.NewFromInt(910_000),
		Positions: []models.PositionValuation{
			{
				Position: models.Position{
					Symbol:      "BICC",
					Quantity:    10,
					AverageCost: decimal.NewFromInt(8500),
					Sector:      "Construction",
				},
				ReferencePrice: decimal.NewFromInt(8500),
				MarketValue:    decimal.NewFromInt(85_000),
				Invested:       decimal.NewFromInt(85_000),
				UnrealizedGain: decimal.Zero,
			},
		},
		MarketValue: decimal.NewFromInt(85_000),
		TotalWealth: decimal.NewFromInt(995_000),
		TakenAt:     takenAt,
	}

	resp := NewPortfolioResponse(snap)

	require.True(t, resp.Cash.Equal(snap.Cash), "cash")
	require.True(t, resp.MarketValue.Equal(snap.MarketValue), "market value")
	require.True(t, resp.TotalWealth.Equal(snap.TotalWealth), "total wealth")
	require.Equal(t, takenAt, resp.TakenAt)

	require.Len(t, resp.Positions, 1)
	p := resp.Positions[0]
	require.Equal(t, "BICC", p.Symbol)
	require.Equal(t, int64(10), p.Quantity)
	require.Equal(t, "Construction", p.Sector)
	require.True(t, p.AverageCost.Equal(decimal.NewFromInt(8500)), "average cost")
	require.True(t, p.UnrealizedGain.IsZero(), "unrealized gain")
}

func TestNewPortfolioResponse_EmptyAccount(t *testing.T) {
	resp := NewPortfolioResponse(models.PortfolioSnapshot{
		Cash:        decimal.NewFromInt(1_000_000),
		TotalWealth: decimal.NewFromInt(1_000_000),
	})

	require.NotNil(t, resp.Positions, "positions must encode as [] not null")
	require.Empty(t, resp.Positions)
	require.True(t, resp.MarketValue.IsZero())
}
