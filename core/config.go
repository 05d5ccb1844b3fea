package core

// ChainConfig defines a chain configuration and its builder.
// Implementations live in chain modules (chains/tendermint etc.) and are
// decoded from the config file through the type registry.
type ChainConfig interface {
	Validate() error
	Build() (Chain, error)
}

// ProverConfig defines a prover configuration and its builder.
type ProverConfig interface {
	Validate() error
	Build(Chain) (Prover, error)
}
