package snapshot

import (
	"fmt"
	"time"

	"rebalancer/internal/gql"
	"rebalancer/internal/model"
)

// Build projects a getRouter result at block into a RouterSnapshot.
func Build(block gql.Block, router gql.Router, takenAt time.Time) (model.RouterSnapshot, error) {
	if router.ID == "" {
		return model.RouterSnapshot{}, fmt.Errorf("router id is empty")
	}
	if block.Height < 0 {
		return model.RouterSnapshot{}, fmt.Errorf("negative block height: %d", block.Height)
	}
	height := uint64(block.Height)

	pools := make([]model.PoolSnapshot, 0, len(router.SwapPools)+len(router.BackstopPool))
	for _, pool := range router.SwapPools {
		snap, err := swapPoolSnapshot(router.ID, height, pool)
		if err != nil {
			return model.RouterSnapshot{}, fmt.Errorf("swap pool %s: %w", pool.ID, err)
		}
		pools = append(pools, snap)
	}
	for _, pool := range router.BackstopPool {
		snap, err := backstopPoolSnapshot(router.ID, height, pool)
		if err != nil {
			return model.RouterSnapshot{}, fmt.Errorf("backstop pool %s: %w", pool.ID, err)
		}
		pools = append(pools, snap)
	}

	return model.RouterSnapshot{
		RouterID:    router.ID,
		BlockID:     block.ID,
		BlockHeight: height,
		BlockTime:   block.Timestamp.String(),
		TakenAt:     takenAt.UTC().Format(time.RFC3339Nano),
		Pools:       pools,
	}, nil
}

func swapPoolSnapshot(routerID string, height uint64, pool gql.SwapPool) (model.PoolSnapshot, error) {
	decimals, err := toDecimals(pool.Token.Decimals)
	if err != nil {
		return model.PoolSnapshot{}, err
	}
	lpDecimals, err := toDecimals(pool.LpTokenDecimals)
	if err != nil {
		return model.PoolSnapshot{}, err
	}

	reserve := pool.Reserve.Int()
	liabilities := pool.TotalLiabilities.Int()

	reserveWithSlippage := pool.ReserveWithSlippage.String()
	totalLiabilities := liabilities.String()
	insuranceFee := pool.InsuranceFeeBps.String()
	liabilitiesDecimal := formatTokenAmount(liabilities, decimals)

	snap := model.PoolSnapshot{
		RouterID:            routerID,
		PoolID:              pool.ID,
		Kind:                model.PoolKindSwap,
		TokenID:             pool.Token.ID,
		TokenSymbol:         pool.Token.Symbol,
		TokenDecimals:       decimals,
		LPTokenDecimals:     lpDecimals,
		Paused:              pool.Paused,
		Reserve:             reserve.String(),
		ReserveWithSlippage: &reserveWithSlippage,
		TotalLiabilities:    &totalLiabilities,
		TotalSupply:         pool.TotalSupply.String(),
		APR:                 pool.Apr.String(),
		InsuranceFeeBps:     &insuranceFee,
		ReserveDecimal:      formatTokenAmount(reserve, decimals),
		LiabilitiesDecimal:  &liabilitiesDecimal,
		BlockHeight:         height,
	}
	if ratio := computeRatio(reserve, liabilities); ratio != "" {
		snap.CoverageRatio = &ratio
	}
	return snap, nil
}

func backstopPoolSnapshot(routerID string, height uint64, pool gql.BackstopPool) (model.PoolSnapshot, error) {
	decimals, err := toDecimals(pool.Token.Decimals)
	if err != nil {
		return model.PoolSnapshot{}, err
	}
	lpDecimals, err := toDecimals(pool.LpTokenDecimals)
	if err != nil {
		return model.PoolSnapshot{}, err
	}

	reserves := pool.Reserves.Int()
	return model.PoolSnapshot{
		RouterID:        routerID,
		PoolID:          pool.ID,
		Kind:            model.PoolKindBackstop,
		TokenID:         pool.Token.ID,
		TokenSymbol:     pool.Token.Symbol,
		TokenDecimals:   decimals,
		LPTokenDecimals: lpDecimals,
		Paused:          pool.Paused,
		Reserve:         reserves.String(),
		TotalSupply:     pool.TotalSupply.String(),
		APR:             pool.Apr.String(),
		ReserveDecimal:  formatTokenAmount(reserves, decimals),
		BlockHeight:     height,
	}, nil
}
