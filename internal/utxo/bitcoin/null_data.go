package bitcoin

import (
	"bytes"

	"github.com/btcsuite/btcd/txscript"
)

// ExtractNullData returns the payload of an OP_RETURN script. Only a direct
// push (OP_DATA_1..OP_DATA_75) or OP_PUSHDATA1 right after OP_RETURN is
// recognized; anything else, including a truncated push, yields false.
func ExtractNullData(script []byte) ([]byte, bool) {
	if !isOpReturn(script) || len(script) < 2 {
		return nil, false
	}

	op := script[1]
	switch {
	case op >= txscript.OP_DATA_1 && op <= txscript.OP_DATA_75:
		return pushedData(script, 2, int(op))
	case op == txscript.OP_PUSHDATA1:
		if len(script) < 3 {
			return nil, false
		}
		return pushedData(script, 3, int(script[2]))
	default:
		return nil, false
	}
}

func pushedData(script []byte, offset, length int) ([]byte, bool) {
	if len(script)-offset < length {
		return nil, false
	}
	return bytes.Clone(script[offset : offset+length]), true
}
