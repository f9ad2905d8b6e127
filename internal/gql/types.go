package gql

// Entity mirrors of the indexer schema. JSON tags carry the GraphQL field
// names. Non-null fields are values, nullable fields are pointers. Queries
// select a subset of fields, so a decoded value only populates what its
// document asked for.

type Block struct {
	ID              string   `json:"id"`
	Height          int64    `json:"height"`
	Hash            string   `json:"hash,omitempty"`
	ParentHash      string   `json:"parentHash,omitempty"`
	Timestamp       DateTime `json:"timestamp"`
	SpecVersion     int32    `json:"specVersion,omitempty"`
	ExtrinsicsCount int32    `json:"extrinsicsCount,omitempty"`
	CallsCount      int32    `json:"callsCount,omitempty"`
	EventsCount     int32    `json:"eventsCount,omitempty"`
}

type Router struct {
	ID           string         `json:"id"`
	Paused       bool           `json:"paused,omitempty"`
	SwapPools    []SwapPool     `json:"swapPools"`
	BackstopPool []BackstopPool `json:"backstopPool"`
}

type NablaToken struct {
	ID       string `json:"id"`
	Decimals int32  `json:"decimals"`
	Name     string `json:"name,omitempty"`
	Symbol   string `json:"symbol,omitempty"`
}

type SwapPool struct {
	ID                      string        `json:"id"`
	Name                    string        `json:"name,omitempty"`
	Symbol                  string        `json:"symbol,omitempty"`
	Router                  *Router       `json:"router,omitempty"`
	Backstop                *BackstopPool `json:"backstop,omitempty"`
	Token                   NablaToken    `json:"token"`
	Reserve                 BigInt        `json:"reserve"`
	ReserveWithSlippage     BigInt        `json:"reserveWithSlippage"`
	TotalLiabilities        BigInt        `json:"totalLiabilities"`
	TotalSupply             BigInt        `json:"totalSupply"`
	LpTokenDecimals         int32         `json:"lpTokenDecimals"`
	Apr                     BigInt        `json:"apr"`
	Paused                  bool          `json:"paused"`
	InsuranceFeeBps         BigInt        `json:"insuranceFeeBps"`
	ProtocolTreasuryAddress *Bytes        `json:"protocolTreasuryAddress,omitempty"`
	ProtocolFeeBps          *BigInt       `json:"protocolFeeBps,omitempty"`
	BackstopFeeBps          *BigInt       `json:"backstopFeeBps,omitempty"`
	LpFeeBps                *BigInt       `json:"lpFeeBps,omitempty"`
	LastUpdated             *DateTime     `json:"lastUpdated,omitempty"`
}

type BackstopPool struct {
	ID               string     `json:"id"`
	Name             string     `json:"name,omitempty"`
	Symbol           string     `json:"symbol,omitempty"`
	Router           *Router    `json:"router,omitempty"`
	Token            NablaToken `json:"token"`
	CoveredSwapPools []SwapPool `json:"coveredSwapPools,omitempty"`
	Reserves         BigInt     `json:"reserves"`
	TotalSupply      BigInt     `json:"totalSupply"`
	LpTokenDecimals  int32      `json:"lpTokenDecimals"`
	Apr              BigInt     `json:"apr"`
	Paused           bool       `json:"paused"`
	LastUpdated      *DateTime  `json:"lastUpdated,omitempty"`
}

type SquidStatus struct {
	Height *int64 `json:"height"`
}
