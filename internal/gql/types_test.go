package gql

import (
	"encoding/json"
	"reflect"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vektah/gqlparser/v2/ast"
)

const routerPayload = `{
  "routerById": {
    "id": "6mYwT4yRrrMK8Xe6mR4qAsD5y7z9xQn7H3b1GdA2kq7ZmR8C",
    "swapPools": [
      {
        "id": "6h6JMHYBV7P6uQekZXzMmmUGjYQCEXpsTXrWdVqbj9bUjzPr",
        "paused": false,
        "reserve": "123456789012345678901234567890",
        "reserveWithSlippage": "123456789012345678901234560000",
        "totalLiabilities": "120000000000000000000000000000",
        "totalSupply": "119000000000000000000000000000",
        "lpTokenDecimals": 12,
        "apr": "531",
        "insuranceFeeBps": "20",
        "protocolTreasuryAddress": "0x1a2b",
        "token": {"id": "6f3tQYcKQZkW3Bn2nkz1KUXc7Y2f3MHbHi2X8n1mJxNRwMd", "decimals": 12, "name": "USD Coin", "symbol": "USDC"}
      }
    ],
    "backstopPool": [
      {
        "id": "6kzVPJw1WkJkX6Q1rcHqL3e4hW1d9JmR2tTqYd7pXJ6iS4uN",
        "paused": false,
        "reserves": "5000000000000000",
        "totalSupply": "4900000000000000",
        "lpTokenDecimals": 12,
        "apr": "0",
        "token": {"id": "6f3tQYcKQZkW3Bn2nkz1KUXc7Y2f3MHbHi2X8n1mJxNRwMd", "decimals": 12, "name": "USD Coin", "symbol": "USDC"}
      }
    ]
  }
}`

var bigIntCmp = cmp.Comparer(func(a, b BigInt) bool { return a.Cmp(b) == 0 })

func TestGetRouterResponseRoundTrip(t *testing.T) {
	var first GetRouterQuery
	require.NoError(t, json.Unmarshal([]byte(routerPayload), &first))
	require.NotNil(t, first.RouterByID)

	encoded, err := json.Marshal(first)
	require.NoError(t, err)

	var second GetRouterQuery
	require.NoError(t, json.Unmarshal(encoded, &second))

	if diff := cmp.Diff(first, second, bigIntCmp); diff != "" {
		t.Fatalf("round-trip mismatch (-first +second):\n%s", diff)
	}

	router := second.RouterByID
	require.Len(t, router.SwapPools, 1)
	require.Len(t, router.BackstopPool, 1)

	pool := router.SwapPools[0]
	assert.Equal(t, "123456789012345678901234567890", pool.Reserve.String())
	assert.Equal(t, "120000000000000000000000000000", pool.TotalLiabilities.String())
	assert.Equal(t, int32(12), pool.LpTokenDecimals)
	assert.Equal(t, "USDC", pool.Token.Symbol)
	require.NotNil(t, pool.ProtocolTreasuryAddress)
	assert.Equal(t, []byte{0x1a, 0x2b}, []byte(*pool.ProtocolTreasuryAddress))
	assert.Equal(t, "5000000000000000", router.BackstopPool[0].Reserves.String())
}

func TestGetLatestBlockResponseDecode(t *testing.T) {
	payload := `{"blocks":[{"id":"0004567890-4f2a1","timestamp":"2024-05-06T07:08:09.000000Z","height":4567890}]}`

	var res GetLatestBlockQuery
	require.NoError(t, json.Unmarshal([]byte(payload), &res))
	require.Len(t, res.Blocks, 1)
	assert.Equal(t, int64(4567890), res.Blocks[0].Height)
	assert.Equal(t, "2024-05-06T07:08:09Z", res.Blocks[0].Timestamp.String())
}

func TestWhereInputOmitsUnsetFields(t *testing.T) {
	where := SwapPoolWhereInput{
		PausedEq: Ptr(false),
		Router:   &RouterWhereInput{IDEq: Ptr("router-1")},
		Or: []SwapPoolWhereInput{
			{ReserveGt: Ptr(BigIntFromInt64(0))},
		},
	}
	data, err := json.Marshal(where)
	require.NoError(t, err)
	assert.JSONEq(t, `{"paused_eq":false,"router":{"id_eq":"router-1"},"OR":[{"reserve_gt":"0"}]}`, string(data))
}

func jsonName(f reflect.StructField) string {
	tag := f.Tag.Get("json")
	if tag == "" || tag == "-" {
		return ""
	}
	return strings.Split(tag, ",")[0]
}

func TestMirrorsMatchSchema(t *testing.T) {
	schema, err := LoadSchema()
	require.NoError(t, err)

	mirrors := map[string]any{
		"Block":                  Block{},
		"Router":                 Router{},
		"NablaToken":             NablaToken{},
		"SwapPool":               SwapPool{},
		"BackstopPool":           BackstopPool{},
		"SquidStatus":            SquidStatus{},
		"BlockWhereInput":        BlockWhereInput{},
		"RouterWhereInput":       RouterWhereInput{},
		"NablaTokenWhereInput":   NablaTokenWhereInput{},
		"SwapPoolWhereInput":     SwapPoolWhereInput{},
		"BackstopPoolWhereInput": BackstopPoolWhereInput{},
	}

	for name, mirror := range mirrors {
		def := schema.Types[name]
		require.NotNil(t, def, "schema type %s", name)

		typ := reflect.TypeOf(mirror)
		for i := 0; i < typ.NumField(); i++ {
			field := typ.Field(i)
			fieldName := jsonName(field)
			if fieldName == "" {
				continue
			}
			schemaField := def.Fields.ForName(fieldName)
			if schemaField == nil {
				t.Fatalf("%s.%s is not in the schema", name, fieldName)
			}
			checkNullability(t, name, fieldName, field.Type, schemaField.Type)
		}
		if def.Kind == ast.InputObject && typ.NumField() != len(def.Fields) {
			t.Fatalf("%s mirrors %d of %d input fields", name, typ.NumField(), len(def.Fields))
		}
	}
}

func checkNullability(t *testing.T, typeName, fieldName string, goType reflect.Type, gqlType *ast.Type) {
	t.Helper()
	isList := gqlType.Elem != nil
	switch goType.Kind() {
	case reflect.Ptr:
		if gqlType.NonNull {
			t.Fatalf("%s.%s is non-null in the schema but a pointer in Go", typeName, fieldName)
		}
		if isList {
			t.Fatalf("%s.%s is a list in the schema", typeName, fieldName)
		}
	case reflect.Slice:
		if !isList {
			t.Fatalf("%s.%s is a slice in Go but not a list in the schema", typeName, fieldName)
		}
	default:
		if !gqlType.NonNull {
			t.Fatalf("%s.%s is nullable in the schema but a value in Go", typeName, fieldName)
		}
	}
}

func TestEnumsMatchSchema(t *testing.T) {
	schema, err := LoadSchema()
	require.NoError(t, err)

	enums := map[string][]string{
		"BlockOrderByInput":        toStrings(AllBlockOrderByInput),
		"RouterOrderByInput":       toStrings(AllRouterOrderByInput),
		"NablaTokenOrderByInput":   toStrings(AllNablaTokenOrderByInput),
		"SwapPoolOrderByInput":     toStrings(AllSwapPoolOrderByInput),
		"BackstopPoolOrderByInput": toStrings(AllBackstopPoolOrderByInput),
	}

	for name, values := range enums {
		def := schema.Types[name]
		require.NotNil(t, def, name)
		require.Equal(t, ast.Enum, def.Kind, name)
		assert.Len(t, values, len(def.EnumValues), name)
		for _, v := range values {
			assert.NotNil(t, def.EnumValues.ForName(v), "%s.%s", name, v)
		}
	}

	assert.True(t, BlockOrderByTimestampDesc.IsValid())
	assert.False(t, BlockOrderByInput("timestamp_SIDEWAYS").IsValid())
}

func toStrings[T ~string](values []T) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		out = append(out, string(v))
	}
	return out
}
