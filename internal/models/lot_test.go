package models

import (
	"testing"
)

func TestHoldingBuy(t *testing.T) {
	t.Run("creates_one_lot_per_share", func(t *testing.T) {
		h := NewHolding()
		h.Buy("AAPL", "Apple Inc", 190.50, 3)

		if got := h.Quantity("AAPL"); got != 3 {
			t.Errorf("expected quantity 3, got %d", got)
		}
		lots := h.Lots()
		if len(lots) != 3 {
			t.Fatalf("expected 3 lots, got %d", len(lots))
		}
		for _, lot := range lots {
			if lot.AcquisitionPrice != 190.50 {
				t.Errorf("expected acquisition price 190.50, got %v", lot.AcquisitionPrice)
			}
			if lot.PriceHint != 190.50 {
				t.Errorf("expected price hint 190.50, got %v", lot.PriceHint)
			}
		}
	})

	t.Run("symbols_are_case_sensitive", func(t *testing.T) {
		h := NewHolding()
		h.Buy("AAPL", "Apple Inc", 190.50, 2)
		h.Buy("aapl", "Apple Inc", 190.50, 1)

		if got := h.Quantity("AAPL"); got != 2 {
			t.Errorf("expected 2 shares of AAPL, got %d", got)
		}
		if got := h.Quantity("aapl"); got != 1 {
			t.Errorf("expected 1 share of aapl, got %d", got)
		}
	})
}

func TestHoldingSell(t *testing.T) {
	t.Run("removes_earliest_lots_first", func(t *testing.T) {
		h := NewHolding()
		h.Buy("AAPL", "Apple Inc", 100.00, 2)
		h.Buy("AAPL", "Apple Inc", 200.00, 2)

		if !h.Sell("AAPL", 3) {
			t.Fatal("expected sell to succeed")
		}
		lots := h.Lots()
		if len(lots) != 1 {
			t.Fatalf("expected 1 remaining lot, got %d", len(lots))
		}
		// The two 100.00 lots and one 200.00 lot go; the newest 200.00 lot stays.
		if lots[0].AcquisitionPrice != 200.00 {
			t.Errorf("expected remaining lot at 200.00, got %v", lots[0].AcquisitionPrice)
		}
	})

	t.Run("insufficient_shares_removes_nothing", func(t *testing.T) {
		h := NewHolding()
		h.Buy("AAPL", "Apple Inc", 190.50, 2)

		if h.Sell("AAPL", 3) {
			t.Fatal("expected sell to fail")
		}
		if got := h.Quantity("AAPL"); got != 2 {
			t.Errorf("expected quantity unchanged at 2, got %d", got)
		}
	})

	t.Run("unknown_symbol_fails", func(t *testing.T) {
		h := NewHolding()
		h.Buy("AAPL", "Apple Inc", 190.50, 2)

		if h.Sell("MSFT", 1) {
			t.Fatal("expected sell of unheld symbol to fail")
		}
	})

	t.Run("does_not_touch_other_symbols", func(t *testing.T) {
		h := NewHolding()
		h.Buy("AAPL", "Apple Inc", 190.50, 2)
		h.Buy("MSFT", "Microsoft Corporation", 425.00, 1)
		h.Buy("AAPL", "Apple Inc", 195.00, 1)

		if !h.Sell("AAPL", 3) {
			t.Fatal("expected sell to succeed")
		}
		if got := h.Quantity("AAPL"); got != 0 {
			t.Errorf("expected 0 shares of AAPL, got %d", got)
		}
		if got := h.Quantity("MSFT"); got != 1 {
			t.Errorf("expected MSFT untouched at 1 share, got %d", got)
		}
	})
}

func TestHoldingSymbols(t *testing.T) {
	h := NewHolding()
	h.Buy("MSFT", "Microsoft Corporation", 425.00, 1)
	h.Buy("AAPL", "Apple Inc", 190.50, 2)
	h.Buy("MSFT", "Microsoft Corporation", 430.00, 1)

	symbols := h.Symbols()
	if len(symbols) != 2 {
		t.Fatalf("expected 2 symbols, got %d", len(symbols))
	}
	if symbols[0] != "MSFT" || symbols[1] != "AAPL" {
		t.Errorf("expected first-seen order [MSFT AAPL], got %v", symbols)
	}
}

func TestAggregate(t *testing.T) {
	t.Run("collapses_lots_per_symbol", func(t *testing.T) {
		h := NewHolding()
		h.Buy("AAPL", "Apple Inc", 190.50, 3)

		rows := h.Aggregate(map[string]float64{"AAPL": 200.00})
		if len(rows) != 1 {
			t.Fatalf("expected 1 row, got %d", len(rows))
		}
		row := rows[0]
		if row.Quantity != 3 {
			t.Errorf("expected quantity 3, got %d", row.Quantity)
		}
		if row.AvgPurchasePrice != 190.50 {
			t.Errorf("expected avg purchase price 190.50, got %v", row.AvgPurchasePrice)
		}
		if row.TotalAcquisitionCost != 571.50 {
			t.Errorf("expected total cost 571.50, got %v", row.TotalAcquisitionCost)
		}
		if row.CurrentPrice != 200.00 {
			t.Errorf("expected current price 200.00, got %v", row.CurrentPrice)
		}
		if row.CurrentValue != 600.00 {
			t.Errorf("expected current value 600.00, got %v", row.CurrentValue)
		}
		if row.Gain != 28.50 {
			t.Errorf("expected gain 28.50, got %v", row.Gain)
		}
	})

	t.Run("averages_mixed_acquisition_prices", func(t *testing.T) {
		h := NewHolding()
		h.Buy("AAPL", "Apple Inc", 100.00, 1)
		h.Buy("AAPL", "Apple Inc", 200.00, 1)

		rows := h.Aggregate(map[string]float64{"AAPL": 150.00})
		if rows[0].AvgPurchasePrice != 150.00 {
			t.Errorf("expected avg purchase price 150.00, got %v", rows[0].AvgPurchasePrice)
		}
		if rows[0].Gain != 0.00 {
			t.Errorf("expected gain 0.00, got %v", rows[0].Gain)
		}
	})

	t.Run("missing_price_falls_back_to_hints", func(t *testing.T) {
		h := NewHolding()
		h.AddLots("AAPL", "Apple Inc", 180.00, 190.00, 1)
		h.AddLots("AAPL", "Apple Inc", 180.00, 200.00, 1)

		rows := h.Aggregate(map[string]float64{})
		if rows[0].CurrentPrice != 195.00 {
			t.Errorf("expected hint average 195.00, got %v", rows[0].CurrentPrice)
		}
		if rows[0].CurrentValue != 390.00 {
			t.Errorf("expected current value 390.00, got %v", rows[0].CurrentValue)
		}
	})

	t.Run("rows_in_first_seen_order", func(t *testing.T) {
		h := NewHolding()
		h.Buy("TSLA", "Tesla Inc", 240.00, 1)
		h.Buy("AAPL", "Apple Inc", 190.50, 1)
		h.Buy("TSLA", "Tesla Inc", 250.00, 1)

		rows := h.Aggregate(nil)
		if len(rows) != 2 {
			t.Fatalf("expected 2 rows, got %d", len(rows))
		}
		if rows[0].Symbol != "TSLA" || rows[1].Symbol != "AAPL" {
			t.Errorf("expected [TSLA AAPL], got [%s %s]", rows[0].Symbol, rows[1].Symbol)
		}
	})

	t.Run("empty_holding_yields_no_rows", func(t *testing.T) {
		h := NewHolding()
		if rows := h.Aggregate(map[string]float64{"AAPL": 200.00}); len(rows) != 0 {
			t.Errorf("expected no rows, got %d", len(rows))
		}
	})

	t.Run("sold_out_symbol_not_emitted", func(t *testing.T) {
		h := NewHolding()
		h.Buy("AAPL", "Apple Inc", 190.50, 2)
		h.Buy("MSFT", "Microsoft Corporation", 425.00, 1)
		if !h.Sell("AAPL", 2) {
			t.Fatal("expected sell to succeed")
		}

		rows := h.Aggregate(nil)
		if len(rows) != 1 {
			t.Fatalf("expected 1 row, got %d", len(rows))
		}
		if rows[0].Symbol != "MSFT" {
			t.Errorf("expected only MSFT, got %s", rows[0].Symbol)
		}
	})
}

func TestTotals(t *testing.T) {
	h := NewHolding()
	h.Buy("AAPL", "Apple Inc", 190.50, 2)
	h.Buy("MSFT", "Microsoft Corporation", 425.00, 1)

	rows := h.Aggregate(map[string]float64{"AAPL": 200.00, "MSFT": 400.00})
	totalValue, totalGain := Totals(rows)

	if totalValue != 800.00 {
		t.Errorf("expected total value 800.00, got %v", totalValue)
	}
	// AAPL gains 2*9.50, MSFT loses 25.00.
	if totalGain != -6.00 {
		t.Errorf("expected total gain -6.00, got %v", totalGain)
	}
}
