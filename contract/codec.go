package contract

import (
	"encoding/hex"
	"errors"
	"fmt"
)

// typeURLPrefix is prepended to a contract's type name to build its
// google.protobuf.Any type_url, per spec.md §6.
const typeURLPrefix = "type.googleapis.com/protocol."

// typeURLNameOverride holds the kinds whose type_url spelling diverges
// from their Go type name. ClearAbiContract is the one known case: the
// historical encoder used the upper-case "ClearABIContract" spelling. This
// mismatch must be preserved exactly, per spec.md §6.
var typeURLNameOverride = map[Kind]string{
	ClearAbi: "ClearABIContract",
}

// TypeURL builds the type_url for a kind, honoring the ClearABIContract
// spelling override.
func TypeURL(k Kind) string {
	name, ok := typeURLNameOverride[k]
	if !ok {
		name = k.String()
	}
	return typeURLPrefix + name
}

// ErrProtobufBug is returned when a CreateSmartContract payload fails to
// decode and its transaction hash is not on the historical allowlist.
var ErrProtobufBug = errors.New("cannot handle protobuf bug")

// protobufBugTrim3 lists transaction hashes (lower-case hex, no 0x) whose
// CreateSmartContract payload carries a trailing `22 01 23` and must be
// decoded after stripping the last 3 bytes.
var protobufBugTrim3 = map[string]bool{
	"d7506ce73f42c802fedb367cd803975d328ef331767711313a965d7cb935fc3e": true,
	"c8b66021c09ec0e18bea68750630fa7dd066cd1d5e3162074e96baa652c3b884": true,
}

// protobufBugTrim4 lists transaction hashes whose CreateSmartContract
// payload carries a trailing `22 02 27 27` and must be decoded after
// stripping the last 4 bytes.
var protobufBugTrim4 = map[string]bool{
	"a58995a7160be51ec2388f749c8abe1468c0cac795a8e879f912837882e0d490": true,
	"73d96abda1756f724871dfba418aa1e8c1c7526070e4d69fb247171f753d1158": true,
	"46ff9d24e110296dadb7ad70b8ab817050999fdad147170a2d360997051db9e6": true,
	"0c4d57f340a94593dce4a87aa4d1d277c19edb3869d3427aa51a688f756b9af6": true,
	"a6b98c471b496d9f00ea2b7b0fc0173e84be0b26dd9cd7dab4907f822fbcf57a": true,
	"31ae94f0d236c7bda7c1776296497f5c073d0845e7214b9c3c46a55c44f6775e": true,
}

// DecodeCreateSmartContract wraps a PayloadDecoder's attempt to decode a
// CreateSmartContract payload with the historical protobuf-bug recovery:
// on decode failure, consult the hash allowlist and retry after trimming
// the documented number of trailing bytes. Any other failure is fatal.
func DecodeCreateSmartContract(decoder PayloadDecoder, txHash [32]byte, raw []byte) (Payload, error) {
	payload, err := decoder.Decode(CreateSmartContract, raw)
	if err == nil {
		return payload, nil
	}

	hashHex := hex.EncodeToString(txHash[:])
	switch {
	case protobufBugTrim3[hashHex]:
		trimmed := raw[:len(raw)-3]
		return decoder.Decode(CreateSmartContract, trimmed)
	case protobufBugTrim4[hashHex]:
		trimmed := raw[:len(raw)-4]
		return decoder.Decode(CreateSmartContract, trimmed)
	default:
		return nil, fmt.Errorf("%w: tx %s: %v", ErrProtobufBug, hashHex, err)
	}
}
