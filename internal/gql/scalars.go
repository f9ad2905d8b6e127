package gql

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common/hexutil"
)

// BigInt is the indexer's arbitrary precision integer scalar. It travels as a
// decimal string.
type BigInt struct {
	v *big.Int
}

// NewBigInt copies x into a BigInt.
func NewBigInt(x *big.Int) BigInt {
	if x == nil {
		return BigInt{}
	}
	return BigInt{v: new(big.Int).Set(x)}
}

// BigIntFromInt64 builds a BigInt from a machine integer.
func BigIntFromInt64(x int64) BigInt {
	return BigInt{v: big.NewInt(x)}
}

// ParseBigInt parses a base 10 integer of any size.
func ParseBigInt(s string) (BigInt, error) {
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return BigInt{}, fmt.Errorf("invalid BigInt: %q", s)
	}
	return BigInt{v: v}, nil
}

// Int returns a copy of the value. A zero BigInt yields 0.
func (b BigInt) Int() *big.Int {
	if b.v == nil {
		return new(big.Int)
	}
	return new(big.Int).Set(b.v)
}

// Sign reports -1, 0 or +1.
func (b BigInt) Sign() int {
	if b.v == nil {
		return 0
	}
	return b.v.Sign()
}

// Cmp compares b and o.
func (b BigInt) Cmp(o BigInt) int {
	return b.Int().Cmp(o.Int())
}

func (b BigInt) String() string {
	if b.v == nil {
		return "0"
	}
	return b.v.String()
}

func (b BigInt) MarshalJSON() ([]byte, error) {
	return json.Marshal(b.String())
}

func (b *BigInt) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		return nil
	}
	text := string(data)
	if len(data) > 0 && data[0] == '"' {
		if err := json.Unmarshal(data, &text); err != nil {
			return fmt.Errorf("decode BigInt: %w", err)
		}
	}
	parsed, err := ParseBigInt(text)
	if err != nil {
		return err
	}
	*b = parsed
	return nil
}

// Bytes is the indexer's binary scalar, a 0x prefixed hex string on the wire.
type Bytes []byte

// ParseBytes decodes 0x prefixed hex.
func ParseBytes(s string) (Bytes, error) {
	raw, err := hexutil.Decode(s)
	if err != nil {
		return nil, fmt.Errorf("invalid Bytes %q: %w", s, err)
	}
	return Bytes(raw), nil
}

func (b Bytes) String() string {
	return hexutil.Encode(b)
}

func (b Bytes) MarshalJSON() ([]byte, error) {
	return json.Marshal(hexutil.Encode(b))
}

func (b *Bytes) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return nil
	}
	var text string
	if err := json.Unmarshal(data, &text); err != nil {
		return fmt.Errorf("decode Bytes: %w", err)
	}
	parsed, err := ParseBytes(text)
	if err != nil {
		return err
	}
	*b = parsed
	return nil
}

// DateTime is an ISO-8601 timestamp.
type DateTime struct {
	time.Time
}

// NewDateTime normalizes t to UTC.
func NewDateTime(t time.Time) DateTime {
	return DateTime{Time: t.UTC()}
}

// localDateTime is ISO-8601 without a zone designator; such values are read as UTC.
const localDateTime = "2006-01-02T15:04:05.999999999"

// ParseDateTime parses an RFC 3339 timestamp with optional fractional seconds.
// A timestamp without an offset is taken to be UTC.
func ParseDateTime(s string) (DateTime, error) {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		local, localErr := time.Parse(localDateTime, s)
		if localErr != nil {
			return DateTime{}, fmt.Errorf("invalid DateTime %q: %w", s, err)
		}
		t = local
	}
	return NewDateTime(t), nil
}

func (d DateTime) String() string {
	return d.Time.UTC().Format(time.RFC3339Nano)
}

func (d DateTime) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

func (d *DateTime) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return nil
	}
	var text string
	if err := json.Unmarshal(data, &text); err != nil {
		return fmt.Errorf("decode DateTime: %w", err)
	}
	parsed, err := ParseDateTime(text)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
