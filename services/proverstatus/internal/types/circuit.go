package types

import (
	"fmt"
	"strconv"
)

// CircuitId is the logical (base layer) circuit identifier.
type CircuitId uint8

func (id CircuitId) String() string {
	return strconv.Itoa(int(id))
}

const (
	// recursionLayerEIP4844LeafId is the leaf layer id of the EIP-4844 circuit as persisted by older protocol versions.
	recursionLayerEIP4844LeafId uint8     = 18
	eip4844CircuitId            CircuitId = 255
	recursionLayerIdOffset      uint8     = 2
)

// CorrectCircuitId translates a persisted circuit id into its logical value.
// Records of the node, recursion tip and scheduler rounds keep the recursion layer numbering
// (base id + 2, with the EIP-4844 circuit stored as 18), other rounds are returned unchanged.
func CorrectCircuitId(round AggregationRound, raw uint8) (CircuitId, error) {
	switch round {
	case NodeAggregation, RecursionTip, Scheduler:
		if raw == recursionLayerEIP4844LeafId {
			return eip4844CircuitId, nil
		}
		if raw < recursionLayerIdOffset {
			return 0, fmt.Errorf("%w: %d has no base layer counterpart in round %s", ErrInvalidCircuitId, raw, round)
		}
		return CircuitId(raw - recursionLayerIdOffset), nil
	case BasicCircuits, LeafAggregation:
		return CircuitId(raw), nil
	default:
		return 0, fmt.Errorf("%w: %d", ErrInvalidAggregationRound, round)
	}
}

var circuitNames = map[CircuitId]string{
	1:  "Main VM",
	2:  "Decommitts Sorter",
	3:  "Code Decommitter",
	4:  "Log Demuxer",
	5:  "Keccak",
	6:  "SHA256",
	7:  "ECRecover",
	8:  "RAM Permutation",
	9:  "Storage Sorter",
	10: "Storage Application",
	11: "Events Sorter",
	12: "L1 Messages Sorter",
	13: "L1 Messages Hasher",
	14: "Transient Storage Checker",
	15: "Secp256r1 Verify",

	eip4844CircuitId: "EIP4844 Repack",
}

// CircuitName returns the semantic name of a logical circuit id.
func CircuitName(id CircuitId) (string, error) {
	name, ok := circuitNames[id]
	if !ok {
		return "", fmt.Errorf("%w: no circuit with id %d", ErrInvalidCircuitId, id)
	}
	return name, nil
}
