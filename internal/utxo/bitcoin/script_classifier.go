package bitcoin

import (
	"strings"

	"github.com/btcsuite/btcd/txscript"
	"github.com/goodnatureofminers/blockinsight7000-txbuilder/internal/utxo/model"
)

type scriptRule struct {
	scriptType model.ScriptType
	match      func(script []byte) bool
}

// scriptRules are evaluated in order and the first match wins. Several
// patterns overlap at the byte level (a P2TR script is also a witness
// program), so the order is part of the contract.
var scriptRules = []scriptRule{
	{scriptType: model.ScriptEmpty, match: isEmptyScript},
	{scriptType: model.ScriptP2SH, match: txscript.IsPayToScriptHash},
	{scriptType: model.ScriptP2TR, match: txscript.IsPayToTaproot},
	{scriptType: model.ScriptP2WPKH, match: txscript.IsPayToWitnessPubKeyHash},
	{scriptType: model.ScriptP2WSH, match: txscript.IsPayToWitnessScriptHash},
	{scriptType: model.ScriptP2PKH, match: txscript.IsPayToPubKeyHash},
	{scriptType: model.ScriptP2PK, match: isPayToPubKey},
	{scriptType: model.ScriptOpReturn, match: isOpReturn},
	{scriptType: model.ScriptWitnessProgram, match: txscript.IsWitnessProgram},
}

// ClassifyScript returns the spending pattern of a script, or
// model.ScriptUnknown. The script is only pattern-matched, never executed.
func ClassifyScript(script []byte) model.ScriptType {
	for _, rule := range scriptRules {
		if rule.match(script) {
			return rule.scriptType
		}
	}
	return model.ScriptUnknown
}

// DisasmScript renders one token per opcode or push. A script that fails to
// parse is rendered up to the failure followed by "[error]".
func DisasmScript(script []byte) string {
	asm, _ := txscript.DisasmString(script)
	return asm
}

// DescribeScript builds the user-facing summary of a script.
func DescribeScript(script []byte) model.ScriptInfo {
	info := model.ScriptInfo{Asm: DisasmScript(script)}
	if scriptType := ClassifyScript(script); scriptType != model.ScriptUnknown {
		name := string(scriptType)
		info.Type = &name
	}
	if data, ok := ExtractNullData(script); ok {
		text := strings.ToValidUTF8(string(data), "\uFFFD")
		info.OpReturnData = &text
	}
	return info
}

func isEmptyScript(script []byte) bool {
	return len(script) == 0
}

// isPayToPubKey matches <33 or 65 byte push> OP_CHECKSIG by shape only; the
// key bytes are not inspected.
func isPayToPubKey(script []byte) bool {
	switch len(script) {
	case 35:
		return script[0] == txscript.OP_DATA_33 && script[34] == txscript.OP_CHECKSIG
	case 67:
		return script[0] == txscript.OP_DATA_65 && script[66] == txscript.OP_CHECKSIG
	}
	return false
}

func isOpReturn(script []byte) bool {
	return len(script) > 0 && script[0] == txscript.OP_RETURN
}
