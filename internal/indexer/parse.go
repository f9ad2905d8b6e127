package indexer

import (
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common"
)

// ParseRouterIDs trims and deduplicates router ids. Hex ids must be valid
// 20-byte addresses and are lower-cased, which is how the indexer keys them.
// Other ids (for example SS58 account ids) pass through unchanged.
func ParseRouterIDs(inputs []string) ([]string, error) {
	ids := make([]string, 0, len(inputs))
	seen := make(map[string]struct{}, len(inputs))
	for _, input := range inputs {
		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}
		if strings.HasPrefix(input, "0x") || strings.HasPrefix(input, "0X") {
			if !common.IsHexAddress(input) {
				return nil, fmt.Errorf("invalid router address: %s", input)
			}
			input = strings.ToLower(common.HexToAddress(input).Hex())
		}
		if _, ok := seen[input]; ok {
			continue
		}
		seen[input] = struct{}{}
		ids = append(ids, input)
	}
	return ids, nil
}
