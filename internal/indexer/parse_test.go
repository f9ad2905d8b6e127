package indexer

import (
	"reflect"
	"testing"
)

func TestParseRouterIDs(t *testing.T) {
	got, err := ParseRouterIDs([]string{
		" 0xAbCdEf0123456789abcdef0123456789ABCDEF01 ",
		"",
		"0xabcdef0123456789abcdef0123456789abcdef01",
		"6mYwT4yRrrMK8Xe6mR4qAsD5y7z9xQn7H3b1GdA2kq7ZmR8C",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{
		"0xabcdef0123456789abcdef0123456789abcdef01",
		"6mYwT4yRrrMK8Xe6mR4qAsD5y7z9xQn7H3b1GdA2kq7ZmR8C",
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("ids mismatch: %+v != %+v", got, want)
	}
}

func TestParseRouterIDsInvalidHex(t *testing.T) {
	if _, err := ParseRouterIDs([]string{"0x1234"}); err == nil {
		t.Fatalf("expected error for short hex address")
	}
}
