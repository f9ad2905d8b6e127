package model

import (
	"encoding/json"
	"testing"
)

func TestPoolSnapshotJSONStringAmounts(t *testing.T) {
	ratio := "1.028806584362139917"
	liabilities := "120000000000000000000000000000"
	payload := PoolSnapshot{
		RouterID:         "router-1",
		PoolID:           "pool-1",
		Kind:             PoolKindSwap,
		Reserve:          "123456789012345678901234567890",
		TotalLiabilities: &liabilities,
		TotalSupply:      "119000000000000000000000000000",
		CoverageRatio:    &ratio,
		BlockHeight:      42,
	}

	data, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}

	var decoded map[string]interface{}
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}

	for _, key := range []string{"reserve", "total_liabilities", "total_supply", "coverage_ratio"} {
		if _, ok := decoded[key].(string); !ok {
			t.Fatalf("%s should be string", key)
		}
	}
	if decoded["kind"] != "swap" {
		t.Fatalf("kind mismatch: %v", decoded["kind"])
	}
	if _, ok := decoded["insurance_fee_bps"]; ok {
		t.Fatalf("unset insurance_fee_bps should be omitted")
	}
}
