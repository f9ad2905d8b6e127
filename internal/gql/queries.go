package gql

import "fmt"

// Operation documents sent to the indexer. The text is part of the wire
// contract; keep it byte-stable.

const GetLatestBlockDocument = `query getLatestBlock {
  blocks(limit: 1, orderBy: timestamp_DESC) {
    id
    timestamp
    height
  }
}`

const GetRouterDocument = `query getRouter($id: String!) {
  routerById(id: $id) {
    id
    swapPools {
      id
      paused
      reserve
      reserveWithSlippage
      totalLiabilities
      totalSupply
      lpTokenDecimals
      apr
      insuranceFeeBps
      protocolTreasuryAddress
      token {
        id
        decimals
        name
        symbol
      }
    }
    backstopPool {
      id
      paused
      reserves
      totalSupply
      lpTokenDecimals
      apr
      token {
        id
        decimals
        name
        symbol
      }
    }
  }
}`

const GetSquidStatusDocument = `query getSquidStatus {
  squidStatus {
    height
  }
}`

const GetSwapPoolsDocument = `query getSwapPools($where: SwapPoolWhereInput, $orderBy: [SwapPoolOrderByInput!], $limit: Int, $offset: Int) {
  swapPools(where: $where, orderBy: $orderBy, limit: $limit, offset: $offset) {
    id
    name
    symbol
    paused
    reserve
    reserveWithSlippage
    totalLiabilities
    totalSupply
    lpTokenDecimals
    apr
    insuranceFeeBps
    lastUpdated
    router {
      id
    }
    token {
      id
      decimals
      symbol
    }
  }
}`

const (
	GetLatestBlockOperation = "getLatestBlock"
	GetRouterOperation      = "getRouter"
	GetSquidStatusOperation = "getSquidStatus"
	GetSwapPoolsOperation   = "getSwapPools"
)

// Documents maps operation names to their document text.
var Documents = map[string]string{
	GetLatestBlockOperation: GetLatestBlockDocument,
	GetRouterOperation:      GetRouterDocument,
	GetSquidStatusOperation: GetSquidStatusDocument,
	GetSwapPoolsOperation:   GetSwapPoolsDocument,
}

type GetLatestBlockQuery struct {
	Blocks []Block `json:"blocks"`
}

type GetRouterQueryVariables struct {
	ID string `json:"id"`
}

type GetRouterQuery struct {
	RouterByID *Router `json:"routerById"`
}

type GetSquidStatusQuery struct {
	SquidStatus *SquidStatus `json:"squidStatus"`
}

type GetSwapPoolsQueryVariables struct {
	Where   *SwapPoolWhereInput    `json:"where,omitempty"`
	OrderBy []SwapPoolOrderByInput `json:"orderBy,omitempty"`
	Limit   *int                   `json:"limit,omitempty"`
	Offset  *int                   `json:"offset,omitempty"`
}

type GetSwapPoolsQuery struct {
	SwapPools []SwapPool `json:"swapPools"`
}

// ValidateDocuments checks every bundled document against the schema.
func ValidateDocuments() error {
	for _, name := range []string{GetLatestBlockOperation, GetRouterOperation, GetSquidStatusOperation, GetSwapPoolsOperation} {
		if _, err := ValidateDocument(Documents[name]); err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
	}
	return nil
}
