package core

// Asset is a typed amount of value moving across the vault boundary.
// Inbound assets arrive as trusted call arguments; outbound assets leave
// through staged transfers handled by the cashier.
type Asset struct {
	AssetType string `json:"asset_type"`
	Amount    uint64 `json:"amount"`
}

// IsZero ...
func (a Asset) IsZero() bool {
	return a.Amount == 0
}

// PriceFunc values an amount of assetType in units of quoteType.
type PriceFunc func(assetType, quoteType string, amount uint64) uint64

// IdentityPrice values every asset pair 1:1. The ledger ships with no
// oracle; substitute a real price source here without touching ledger logic.
func IdentityPrice(assetType, quoteType string, amount uint64) uint64 {
	return amount
}
