package model

// Network names a set of chain parameters. Aliases such as "mainnet" are
// resolved by the script decoder.
type Network string

const (
	Mainnet  Network = "bitcoin"
	Testnet  Network = "testnet"
	Testnet4 Network = "testnet4"
	Signet   Network = "signet"
	Regtest  Network = "regtest"
)
