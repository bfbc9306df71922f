package customer

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

// ParseLedgerIdentity parses a 32-byte identity written as "0x" followed by
// 64 hex digits. The returned hash renders in lower case.
func ParseLedgerIdentity(raw string) (common.Hash, error) {
	if len(raw) != 2+2*common.HashLength || raw[:2] != "0x" {
		return common.Hash{}, &InvalidLedgerIdentityError{Value: raw}
	}
	b, err := hexutil.Decode(raw)
	if err != nil || len(b) != common.HashLength {
		return common.Hash{}, &InvalidLedgerIdentityError{Value: raw}
	}
	return common.BytesToHash(b), nil
}

func parseOptionalIdentity(raw string) (*common.Hash, error) {
	if raw == "" {
		return nil, nil
	}
	did, err := ParseLedgerIdentity(raw)
	if err != nil {
		return nil, err
	}
	return &did, nil
}
