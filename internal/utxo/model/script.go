package model

// ScriptType is the spending pattern of an output script.
type ScriptType string

const (
	ScriptEmpty          ScriptType = "Empty"
	ScriptP2SH           ScriptType = "P2SH"
	ScriptP2TR           ScriptType = "P2TR"
	ScriptP2WPKH         ScriptType = "P2WPKH"
	ScriptP2WSH          ScriptType = "P2WSH"
	ScriptP2PKH          ScriptType = "P2PKH"
	ScriptP2PK           ScriptType = "P2PK"
	ScriptOpReturn       ScriptType = "OP_RETURN"
	ScriptWitnessProgram ScriptType = "Witness Program"
	// ScriptUnknown never appears in JSON; ScriptInfo.Type is null instead.
	ScriptUnknown ScriptType = ""
)

// ScriptInfo is the presentation of a script for a user.
type ScriptInfo struct {
	Type         *string `json:"type"`
	Asm          string  `json:"asm"`
	OpReturnData *string `json:"opReturnData"`
}
