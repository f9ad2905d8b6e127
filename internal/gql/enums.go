package gql

type BlockOrderByInput string

const (
	BlockOrderByIDAsc           BlockOrderByInput = "id_ASC"
	BlockOrderByIDDesc          BlockOrderByInput = "id_DESC"
	BlockOrderByHeightAsc       BlockOrderByInput = "height_ASC"
	BlockOrderByHeightDesc      BlockOrderByInput = "height_DESC"
	BlockOrderByHashAsc         BlockOrderByInput = "hash_ASC"
	BlockOrderByHashDesc        BlockOrderByInput = "hash_DESC"
	BlockOrderByParentHashAsc   BlockOrderByInput = "parentHash_ASC"
	BlockOrderByParentHashDesc  BlockOrderByInput = "parentHash_DESC"
	BlockOrderByTimestampAsc    BlockOrderByInput = "timestamp_ASC"
	BlockOrderByTimestampDesc   BlockOrderByInput = "timestamp_DESC"
	BlockOrderBySpecVersionAsc  BlockOrderByInput = "specVersion_ASC"
	BlockOrderBySpecVersionDesc BlockOrderByInput = "specVersion_DESC"
)

var AllBlockOrderByInput = []BlockOrderByInput{
	BlockOrderByIDAsc, BlockOrderByIDDesc,
	BlockOrderByHeightAsc, BlockOrderByHeightDesc,
	BlockOrderByHashAsc, BlockOrderByHashDesc,
	BlockOrderByParentHashAsc, BlockOrderByParentHashDesc,
	BlockOrderByTimestampAsc, BlockOrderByTimestampDesc,
	BlockOrderBySpecVersionAsc, BlockOrderBySpecVersionDesc,
}

func (e BlockOrderByInput) IsValid() bool {
	for _, v := range AllBlockOrderByInput {
		if v == e {
			return true
		}
	}
	return false
}

type RouterOrderByInput string

const (
	RouterOrderByIDAsc      RouterOrderByInput = "id_ASC"
	RouterOrderByIDDesc     RouterOrderByInput = "id_DESC"
	RouterOrderByPausedAsc  RouterOrderByInput = "paused_ASC"
	RouterOrderByPausedDesc RouterOrderByInput = "paused_DESC"
)

var AllRouterOrderByInput = []RouterOrderByInput{
	RouterOrderByIDAsc, RouterOrderByIDDesc,
	RouterOrderByPausedAsc, RouterOrderByPausedDesc,
}

func (e RouterOrderByInput) IsValid() bool {
	for _, v := range AllRouterOrderByInput {
		if v == e {
			return true
		}
	}
	return false
}

type NablaTokenOrderByInput string

const (
	NablaTokenOrderByIDAsc        NablaTokenOrderByInput = "id_ASC"
	NablaTokenOrderByIDDesc       NablaTokenOrderByInput = "id_DESC"
	NablaTokenOrderByDecimalsAsc  NablaTokenOrderByInput = "decimals_ASC"
	NablaTokenOrderByDecimalsDesc NablaTokenOrderByInput = "decimals_DESC"
	NablaTokenOrderByNameAsc      NablaTokenOrderByInput = "name_ASC"
	NablaTokenOrderByNameDesc     NablaTokenOrderByInput = "name_DESC"
	NablaTokenOrderBySymbolAsc    NablaTokenOrderByInput = "symbol_ASC"
	NablaTokenOrderBySymbolDesc   NablaTokenOrderByInput = "symbol_DESC"
)

var AllNablaTokenOrderByInput = []NablaTokenOrderByInput{
	NablaTokenOrderByIDAsc, NablaTokenOrderByIDDesc,
	NablaTokenOrderByDecimalsAsc, NablaTokenOrderByDecimalsDesc,
	NablaTokenOrderByNameAsc, NablaTokenOrderByNameDesc,
	NablaTokenOrderBySymbolAsc, NablaTokenOrderBySymbolDesc,
}

func (e NablaTokenOrderByInput) IsValid() bool {
	for _, v := range AllNablaTokenOrderByInput {
		if v == e {
			return true
		}
	}
	return false
}

type SwapPoolOrderByInput string

const (
	SwapPoolOrderByIDAsc                SwapPoolOrderByInput = "id_ASC"
	SwapPoolOrderByIDDesc               SwapPoolOrderByInput = "id_DESC"
	SwapPoolOrderByNameAsc              SwapPoolOrderByInput = "name_ASC"
	SwapPoolOrderByNameDesc             SwapPoolOrderByInput = "name_DESC"
	SwapPoolOrderBySymbolAsc            SwapPoolOrderByInput = "symbol_ASC"
	SwapPoolOrderBySymbolDesc           SwapPoolOrderByInput = "symbol_DESC"
	SwapPoolOrderByRouterIDAsc          SwapPoolOrderByInput = "router_id_ASC"
	SwapPoolOrderByRouterIDDesc         SwapPoolOrderByInput = "router_id_DESC"
	SwapPoolOrderByTokenIDAsc           SwapPoolOrderByInput = "token_id_ASC"
	SwapPoolOrderByTokenIDDesc          SwapPoolOrderByInput = "token_id_DESC"
	SwapPoolOrderByTokenSymbolAsc       SwapPoolOrderByInput = "token_symbol_ASC"
	SwapPoolOrderByTokenSymbolDesc      SwapPoolOrderByInput = "token_symbol_DESC"
	SwapPoolOrderByReserveAsc           SwapPoolOrderByInput = "reserve_ASC"
	SwapPoolOrderByReserveDesc          SwapPoolOrderByInput = "reserve_DESC"
	SwapPoolOrderByTotalLiabilitiesAsc  SwapPoolOrderByInput = "totalLiabilities_ASC"
	SwapPoolOrderByTotalLiabilitiesDesc SwapPoolOrderByInput = "totalLiabilities_DESC"
	SwapPoolOrderByTotalSupplyAsc       SwapPoolOrderByInput = "totalSupply_ASC"
	SwapPoolOrderByTotalSupplyDesc      SwapPoolOrderByInput = "totalSupply_DESC"
	SwapPoolOrderByAprAsc               SwapPoolOrderByInput = "apr_ASC"
	SwapPoolOrderByAprDesc              SwapPoolOrderByInput = "apr_DESC"
	SwapPoolOrderByPausedAsc            SwapPoolOrderByInput = "paused_ASC"
	SwapPoolOrderByPausedDesc           SwapPoolOrderByInput = "paused_DESC"
	SwapPoolOrderByLastUpdatedAsc       SwapPoolOrderByInput = "lastUpdated_ASC"
	SwapPoolOrderByLastUpdatedDesc      SwapPoolOrderByInput = "lastUpdated_DESC"
)

var AllSwapPoolOrderByInput = []SwapPoolOrderByInput{
	SwapPoolOrderByIDAsc, SwapPoolOrderByIDDesc,
	SwapPoolOrderByNameAsc, SwapPoolOrderByNameDesc,
	SwapPoolOrderBySymbolAsc, SwapPoolOrderBySymbolDesc,
	SwapPoolOrderByRouterIDAsc, SwapPoolOrderByRouterIDDesc,
	SwapPoolOrderByTokenIDAsc, SwapPoolOrderByTokenIDDesc,
	SwapPoolOrderByTokenSymbolAsc, SwapPoolOrderByTokenSymbolDesc,
	SwapPoolOrderByReserveAsc, SwapPoolOrderByReserveDesc,
	SwapPoolOrderByTotalLiabilitiesAsc, SwapPoolOrderByTotalLiabilitiesDesc,
	SwapPoolOrderByTotalSupplyAsc, SwapPoolOrderByTotalSupplyDesc,
	SwapPoolOrderByAprAsc, SwapPoolOrderByAprDesc,
	SwapPoolOrderByPausedAsc, SwapPoolOrderByPausedDesc,
	SwapPoolOrderByLastUpdatedAsc, SwapPoolOrderByLastUpdatedDesc,
}

func (e SwapPoolOrderByInput) IsValid() bool {
	for _, v := range AllSwapPoolOrderByInput {
		if v == e {
			return true
		}
	}
	return false
}

type BackstopPoolOrderByInput string

const (
	BackstopPoolOrderByIDAsc           BackstopPoolOrderByInput = "id_ASC"
	BackstopPoolOrderByIDDesc          BackstopPoolOrderByInput = "id_DESC"
	BackstopPoolOrderByNameAsc         BackstopPoolOrderByInput = "name_ASC"
	BackstopPoolOrderByNameDesc        BackstopPoolOrderByInput = "name_DESC"
	BackstopPoolOrderByRouterIDAsc     BackstopPoolOrderByInput = "router_id_ASC"
	BackstopPoolOrderByRouterIDDesc    BackstopPoolOrderByInput = "router_id_DESC"
	BackstopPoolOrderByTokenIDAsc      BackstopPoolOrderByInput = "token_id_ASC"
	BackstopPoolOrderByTokenIDDesc     BackstopPoolOrderByInput = "token_id_DESC"
	BackstopPoolOrderByReservesAsc     BackstopPoolOrderByInput = "reserves_ASC"
	BackstopPoolOrderByReservesDesc    BackstopPoolOrderByInput = "reserves_DESC"
	BackstopPoolOrderByTotalSupplyAsc  BackstopPoolOrderByInput = "totalSupply_ASC"
	BackstopPoolOrderByTotalSupplyDesc BackstopPoolOrderByInput = "totalSupply_DESC"
	BackstopPoolOrderByAprAsc          BackstopPoolOrderByInput = "apr_ASC"
	BackstopPoolOrderByAprDesc         BackstopPoolOrderByInput = "apr_DESC"
	BackstopPoolOrderByPausedAsc       BackstopPoolOrderByInput = "paused_ASC"
	BackstopPoolOrderByPausedDesc      BackstopPoolOrderByInput = "paused_DESC"
)

var AllBackstopPoolOrderByInput = []BackstopPoolOrderByInput{
	BackstopPoolOrderByIDAsc, BackstopPoolOrderByIDDesc,
	BackstopPoolOrderByNameAsc, BackstopPoolOrderByNameDesc,
	BackstopPoolOrderByRouterIDAsc, BackstopPoolOrderByRouterIDDesc,
	BackstopPoolOrderByTokenIDAsc, BackstopPoolOrderByTokenIDDesc,
	BackstopPoolOrderByReservesAsc, BackstopPoolOrderByReservesDesc,
	BackstopPoolOrderByTotalSupplyAsc, BackstopPoolOrderByTotalSupplyDesc,
	BackstopPoolOrderByAprAsc, BackstopPoolOrderByAprDesc,
	BackstopPoolOrderByPausedAsc, BackstopPoolOrderByPausedDesc,
}

func (e BackstopPoolOrderByInput) IsValid() bool {
	for _, v := range AllBackstopPoolOrderByInput {
		if v == e {
			return true
		}
	}
	return false
}
