package model

// PoolKind distinguishes the two pool families a router owns.
type PoolKind string

const (
	PoolKindSwap     PoolKind = "swap"
	PoolKindBackstop PoolKind = "backstop"
)

// PoolSnapshot is the state of one pool at an indexed block. Integer amounts
// are kept as base-unit strings; *Decimal fields have token decimals applied.
type PoolSnapshot struct {
	RouterID            string   `json:"router_id"`
	PoolID              string   `json:"pool_id"`
	Kind                PoolKind `json:"kind"`
	TokenID             string   `json:"token_id"`
	TokenSymbol         string   `json:"token_symbol"`
	TokenDecimals       uint8    `json:"token_decimals"`
	LPTokenDecimals     uint8    `json:"lp_token_decimals"`
	Paused              bool     `json:"paused"`
	Reserve             string   `json:"reserve"`
	ReserveWithSlippage *string  `json:"reserve_with_slippage,omitempty"`
	TotalLiabilities    *string  `json:"total_liabilities,omitempty"`
	TotalSupply         string   `json:"total_supply"`
	APR                 string   `json:"apr"`
	InsuranceFeeBps     *string  `json:"insurance_fee_bps,omitempty"`
	ReserveDecimal      string   `json:"reserve_decimal"`
	LiabilitiesDecimal  *string  `json:"total_liabilities_decimal,omitempty"`
	CoverageRatio       *string  `json:"coverage_ratio,omitempty"`
	BlockHeight         uint64   `json:"block_height"`
}

// RouterSnapshot groups the pool snapshots of a router taken at one block.
type RouterSnapshot struct {
	RouterID    string         `json:"router_id"`
	BlockID     string         `json:"block_id"`
	BlockHeight uint64         `json:"block_height"`
	BlockTime   string         `json:"block_time"`
	TakenAt     string         `json:"taken_at"`
	Pools       []PoolSnapshot `json:"pools"`
}
