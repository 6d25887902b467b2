package txbuilder

const (
	defaultWorkerCount = 8

	opEncodeTx        = "encode_tx"
	opDecodeTx        = "decode_tx"
	opScriptAsm       = "script_asm"
	opScriptInfo      = "script_info"
	opSighash         = "sighash"
	opSignTx          = "sign_tx"
	opAddressScript   = "address_script"
	opPublicKey       = "public_key"
	opWIFSecret       = "wif_secret"
	opWIFPublicKey    = "wif_public_key"
	opP2SHScript      = "p2sh_script"
	opP2SHScriptSig   = "p2sh_script_sig"
	opP2WSHAddress    = "p2wsh_address"
	opP2WSHScript     = "p2wsh_script"
	opP2WPKHScriptSig = "p2wpkh_script_sig"
	opOpReturnScript  = "op_return_script"
	opSplitCommaHex   = "split_comma_hex"
	opBase58Check     = "base58check"
	opParseHex        = "parse_hex"
	opDigest          = "digest"
)
