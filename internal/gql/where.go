package gql

// Filter mirrors of the indexer *WhereInput types. Unset fields are omitted
// from the request so the server treats them as unconstrained.

type BlockWhereInput struct {
	IDIsNull        *bool             `json:"id_isNull,omitempty"`
	IDEq            *string           `json:"id_eq,omitempty"`
	IDNotEq         *string           `json:"id_not_eq,omitempty"`
	IDGt            *string           `json:"id_gt,omitempty"`
	IDGte           *string           `json:"id_gte,omitempty"`
	IDLt            *string           `json:"id_lt,omitempty"`
	IDLte           *string           `json:"id_lte,omitempty"`
	IDIn            []string          `json:"id_in,omitempty"`
	IDNotIn         []string          `json:"id_not_in,omitempty"`
	IDContains      *string           `json:"id_contains,omitempty"`
	IDNotContains   *string           `json:"id_not_contains,omitempty"`
	IDStartsWith    *string           `json:"id_startsWith,omitempty"`
	IDEndsWith      *string           `json:"id_endsWith,omitempty"`
	HeightIsNull    *bool             `json:"height_isNull,omitempty"`
	HeightEq        *int64            `json:"height_eq,omitempty"`
	HeightNotEq     *int64            `json:"height_not_eq,omitempty"`
	HeightGt        *int64            `json:"height_gt,omitempty"`
	HeightGte       *int64            `json:"height_gte,omitempty"`
	HeightLt        *int64            `json:"height_lt,omitempty"`
	HeightLte       *int64            `json:"height_lte,omitempty"`
	HeightIn        []int64           `json:"height_in,omitempty"`
	HeightNotIn     []int64           `json:"height_not_in,omitempty"`
	HashEq          *string           `json:"hash_eq,omitempty"`
	HashNotEq       *string           `json:"hash_not_eq,omitempty"`
	HashIn          []string          `json:"hash_in,omitempty"`
	TimestampIsNull *bool             `json:"timestamp_isNull,omitempty"`
	TimestampEq     *DateTime         `json:"timestamp_eq,omitempty"`
	TimestampNotEq  *DateTime         `json:"timestamp_not_eq,omitempty"`
	TimestampGt     *DateTime         `json:"timestamp_gt,omitempty"`
	TimestampGte    *DateTime         `json:"timestamp_gte,omitempty"`
	TimestampLt     *DateTime         `json:"timestamp_lt,omitempty"`
	TimestampLte    *DateTime         `json:"timestamp_lte,omitempty"`
	And             []BlockWhereInput `json:"AND,omitempty"`
	Or              []BlockWhereInput `json:"OR,omitempty"`
}

type RouterWhereInput struct {
	IDIsNull       *bool               `json:"id_isNull,omitempty"`
	IDEq           *string             `json:"id_eq,omitempty"`
	IDNotEq        *string             `json:"id_not_eq,omitempty"`
	IDIn           []string            `json:"id_in,omitempty"`
	IDNotIn        []string            `json:"id_not_in,omitempty"`
	IDStartsWith   *string             `json:"id_startsWith,omitempty"`
	PausedIsNull   *bool               `json:"paused_isNull,omitempty"`
	PausedEq       *bool               `json:"paused_eq,omitempty"`
	PausedNotEq    *bool               `json:"paused_not_eq,omitempty"`
	SwapPoolsEvery *SwapPoolWhereInput `json:"swapPools_every,omitempty"`
	SwapPoolsSome  *SwapPoolWhereInput `json:"swapPools_some,omitempty"`
	SwapPoolsNone  *SwapPoolWhereInput `json:"swapPools_none,omitempty"`
	And            []RouterWhereInput  `json:"AND,omitempty"`
	Or             []RouterWhereInput  `json:"OR,omitempty"`
}

type NablaTokenWhereInput struct {
	IDIsNull                  *bool                  `json:"id_isNull,omitempty"`
	IDEq                      *string                `json:"id_eq,omitempty"`
	IDNotEq                   *string                `json:"id_not_eq,omitempty"`
	IDIn                      []string               `json:"id_in,omitempty"`
	IDNotIn                   []string               `json:"id_not_in,omitempty"`
	DecimalsEq                *int64                 `json:"decimals_eq,omitempty"`
	DecimalsGt                *int64                 `json:"decimals_gt,omitempty"`
	DecimalsLt                *int64                 `json:"decimals_lt,omitempty"`
	NameEq                    *string                `json:"name_eq,omitempty"`
	NameContains              *string                `json:"name_contains,omitempty"`
	NameContainsInsensitive   *string                `json:"name_containsInsensitive,omitempty"`
	SymbolEq                  *string                `json:"symbol_eq,omitempty"`
	SymbolIn                  []string               `json:"symbol_in,omitempty"`
	SymbolContains            *string                `json:"symbol_contains,omitempty"`
	SymbolContainsInsensitive *string                `json:"symbol_containsInsensitive,omitempty"`
	And                       []NablaTokenWhereInput `json:"AND,omitempty"`
	Or                        []NablaTokenWhereInput `json:"OR,omitempty"`
}

type SwapPoolWhereInput struct {
	IDIsNull                      *bool                   `json:"id_isNull,omitempty"`
	IDEq                          *string                 `json:"id_eq,omitempty"`
	IDNotEq                       *string                 `json:"id_not_eq,omitempty"`
	IDIn                          []string                `json:"id_in,omitempty"`
	IDNotIn                       []string                `json:"id_not_in,omitempty"`
	IDStartsWith                  *string                 `json:"id_startsWith,omitempty"`
	NameEq                        *string                 `json:"name_eq,omitempty"`
	NameContains                  *string                 `json:"name_contains,omitempty"`
	SymbolEq                      *string                 `json:"symbol_eq,omitempty"`
	SymbolIn                      []string                `json:"symbol_in,omitempty"`
	RouterIsNull                  *bool                   `json:"router_isNull,omitempty"`
	Router                        *RouterWhereInput       `json:"router,omitempty"`
	BackstopIsNull                *bool                   `json:"backstop_isNull,omitempty"`
	Backstop                      *BackstopPoolWhereInput `json:"backstop,omitempty"`
	TokenIsNull                   *bool                   `json:"token_isNull,omitempty"`
	Token                         *NablaTokenWhereInput   `json:"token,omitempty"`
	ReserveEq                     *BigInt                 `json:"reserve_eq,omitempty"`
	ReserveGt                     *BigInt                 `json:"reserve_gt,omitempty"`
	ReserveGte                    *BigInt                 `json:"reserve_gte,omitempty"`
	ReserveLt                     *BigInt                 `json:"reserve_lt,omitempty"`
	ReserveLte                    *BigInt                 `json:"reserve_lte,omitempty"`
	TotalLiabilitiesEq            *BigInt                 `json:"totalLiabilities_eq,omitempty"`
	TotalLiabilitiesGt            *BigInt                 `json:"totalLiabilities_gt,omitempty"`
	TotalLiabilitiesGte           *BigInt                 `json:"totalLiabilities_gte,omitempty"`
	TotalLiabilitiesLt            *BigInt                 `json:"totalLiabilities_lt,omitempty"`
	TotalLiabilitiesLte           *BigInt                 `json:"totalLiabilities_lte,omitempty"`
	TotalSupplyGt                 *BigInt                 `json:"totalSupply_gt,omitempty"`
	TotalSupplyLt                 *BigInt                 `json:"totalSupply_lt,omitempty"`
	AprGt                         *BigInt                 `json:"apr_gt,omitempty"`
	AprLt                         *BigInt                 `json:"apr_lt,omitempty"`
	PausedIsNull                  *bool                   `json:"paused_isNull,omitempty"`
	PausedEq                      *bool                   `json:"paused_eq,omitempty"`
	PausedNotEq                   *bool                   `json:"paused_not_eq,omitempty"`
	ProtocolTreasuryAddressIsNull *bool                   `json:"protocolTreasuryAddress_isNull,omitempty"`
	ProtocolTreasuryAddressEq     *Bytes                  `json:"protocolTreasuryAddress_eq,omitempty"`
	ProtocolTreasuryAddressNotEq  *Bytes                  `json:"protocolTreasuryAddress_not_eq,omitempty"`
	LastUpdatedIsNull             *bool                   `json:"lastUpdated_isNull,omitempty"`
	LastUpdatedGt                 *DateTime               `json:"lastUpdated_gt,omitempty"`
	LastUpdatedLt                 *DateTime               `json:"lastUpdated_lt,omitempty"`
	And                           []SwapPoolWhereInput    `json:"AND,omitempty"`
	Or                            []SwapPoolWhereInput    `json:"OR,omitempty"`
}

type BackstopPoolWhereInput struct {
	IDIsNull              *bool                    `json:"id_isNull,omitempty"`
	IDEq                  *string                  `json:"id_eq,omitempty"`
	IDNotEq               *string                  `json:"id_not_eq,omitempty"`
	IDIn                  []string                 `json:"id_in,omitempty"`
	IDNotIn               []string                 `json:"id_not_in,omitempty"`
	RouterIsNull          *bool                    `json:"router_isNull,omitempty"`
	Router                *RouterWhereInput        `json:"router,omitempty"`
	TokenIsNull           *bool                    `json:"token_isNull,omitempty"`
	Token                 *NablaTokenWhereInput    `json:"token,omitempty"`
	ReservesEq            *BigInt                  `json:"reserves_eq,omitempty"`
	ReservesGt            *BigInt                  `json:"reserves_gt,omitempty"`
	ReservesLt            *BigInt                  `json:"reserves_lt,omitempty"`
	TotalSupplyGt         *BigInt                  `json:"totalSupply_gt,omitempty"`
	TotalSupplyLt         *BigInt                  `json:"totalSupply_lt,omitempty"`
	PausedIsNull          *bool                    `json:"paused_isNull,omitempty"`
	PausedEq              *bool                    `json:"paused_eq,omitempty"`
	CoveredSwapPoolsEvery *SwapPoolWhereInput      `json:"coveredSwapPools_every,omitempty"`
	CoveredSwapPoolsSome  *SwapPoolWhereInput      `json:"coveredSwapPools_some,omitempty"`
	CoveredSwapPoolsNone  *SwapPoolWhereInput      `json:"coveredSwapPools_none,omitempty"`
	And                   []BackstopPoolWhereInput `json:"AND,omitempty"`
	Or                    []BackstopPoolWhereInput `json:"OR,omitempty"`
}

// Ptr returns a pointer to v, for filling optional filter fields inline.
func Ptr[T any](v T) *T {
	return &v
}
