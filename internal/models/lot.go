package models

// Lot is a single purchased share of a symbol. A buy of N shares produces N
// lots, which keeps average-cost accounting a plain sum-and-divide. Lots are
// immutable after creation and removed only by selling.
type Lot struct {
	// Symbol is the ticker and the identity key. Matching is exact and
	// case-sensitive.
	Symbol string `json:"symbol"`
	// CompanyName is the display name carried for rendering.
	CompanyName string `json:"name"`
	// AcquisitionPrice is the per-share price paid at purchase time. Fixed
	// at creation.
	AcquisitionPrice float64 `json:"purchasePrice"`
	// PriceHint is the market price known when the lot was created. It is
	// informational only and superseded by resolved prices at render time.
	PriceHint float64 `json:"price"`
}

// Holding is the ordered multiset of lots owned by one user. The number of
// lots carrying a symbol is, by construction, the number of shares owned of
// that symbol. Callers must serialize mutations to the same holding; methods
// do no internal locking.
type Holding struct {
	lots []Lot
}

// NewHolding returns an empty holding.
func NewHolding() *Holding {
	return &Holding{}
}

// HoldingFromLots builds a holding that takes ownership of the given lots.
func HoldingFromLots(lots []Lot) *Holding {
	return &Holding{lots: lots}
}

// AddLots appends quantity lots with the given acquisition price and price
// hint. Used both by purchases (hint == acquisition price) and when rebuilding
// a holding from persisted rows (hint == last saved market price).
func (h *Holding) AddLots(symbol, name string, acquisitionPrice, priceHint float64, quantity int) {
	for i := 0; i < quantity; i++ {
		h.lots = append(h.lots, Lot{
			Symbol:           symbol,
			CompanyName:      name,
			AcquisitionPrice: acquisitionPrice,
			PriceHint:        priceHint,
		})
	}
}

// Buy appends quantity lots purchased at unitPrice.
func (h *Holding) Buy(symbol, name string, unitPrice float64, quantity int) {
	h.AddLots(symbol, name, unitPrice, unitPrice, quantity)
}

// Sell removes exactly quantity lots matching symbol, earliest-inserted first.
// The removal is all-or-nothing: if fewer than quantity matching lots exist,
// no lot is removed and Sell reports false. Removal order is FIFO regardless
// of the prices the lots carry.
func (h *Holding) Sell(symbol string, quantity int) bool {
	if quantity > h.Quantity(symbol) {
		return false
	}

	kept := h.lots[:0]
	removed := 0
	for _, lot := range h.lots {
		if removed < quantity && lot.Symbol == symbol {
			removed++
			continue
		}
		kept = append(kept, lot)
	}
	h.lots = kept
	return true
}

// Quantity returns the number of lots (shares) held for symbol.
func (h *Holding) Quantity(symbol string) int {
	n := 0
	for _, lot := range h.lots {
		if lot.Symbol == symbol {
			n++
		}
	}
	return n
}

// Lots returns a copy of the lots in insertion order.
func (h *Holding) Lots() []Lot {
	out := make([]Lot, len(h.lots))
	copy(out, h.lots)
	return out
}

// Symbols returns the distinct symbols held, in first-seen order.
func (h *Holding) Symbols() []string {
	seen := make(map[string]struct{}, len(h.lots))
	var symbols []string
	for _, lot := range h.lots {
		if _, ok := seen[lot.Symbol]; ok {
			continue
		}
		seen[lot.Symbol] = struct{}{}
		symbols = append(symbols, lot.Symbol)
	}
	return symbols
}

// AggregatedRow is the per-symbol summary derived from a holding plus current
// prices. Rows are recomputed on every read and never stored in this shape;
// the persisted holdings table carries a reduced projection of them.
type AggregatedRow struct {
	Symbol               string  `json:"symbol"`
	Name                 string  `json:"name"`
	Quantity             int     `json:"quantity"`
	AvgPurchasePrice     float64 `json:"purchasePrice"`
	TotalAcquisitionCost float64 `json:"totalPurchasePrice"`
	CurrentPrice         float64 `json:"currentPrice"`
	CurrentValue         float64 `json:"currentValue"`
	Gain                 float64 `json:"gain"`
}

// Aggregate collapses the holding into one row per symbol, in first-seen
// order. The current price for a group is taken from prices when the symbol is
// present; a group whose symbol is absent from the map falls back to the mean
// of its own price hints rather than a silent zero. Symbols with no lots are
// never emitted.
func (h *Holding) Aggregate(prices map[string]float64) []AggregatedRow {
	index := make(map[string]int, len(h.lots))
	var rows []AggregatedRow

	for _, lot := range h.lots {
		i, ok := index[lot.Symbol]
		if !ok {
			index[lot.Symbol] = len(rows)
			rows = append(rows, AggregatedRow{Symbol: lot.Symbol, Name: lot.CompanyName})
			i = len(rows) - 1
		}
		rows[i].Quantity++
		rows[i].TotalAcquisitionCost += lot.AcquisitionPrice
		// Reuse CurrentPrice to accumulate hints; resolved below.
		rows[i].CurrentPrice += lot.PriceHint
	}

	for i := range rows {
		row := &rows[i]
		hintAvg := row.CurrentPrice / float64(row.Quantity)
		price, ok := prices[row.Symbol]
		if !ok {
			price = hintAvg
		}
		row.AvgPurchasePrice = row.TotalAcquisitionCost / float64(row.Quantity)
		row.CurrentPrice = price
		row.CurrentValue = price * float64(row.Quantity)
		row.Gain = row.CurrentValue - row.TotalAcquisitionCost
	}

	return rows
}

// Totals sums the per-row current values and gains for the portfolio header.
func Totals(rows []AggregatedRow) (totalValue, totalGain float64) {
	for _, row := range rows {
		totalValue += row.CurrentValue
		totalGain += row.Gain
	}
	return totalValue, totalGain
}
