package core

import (
	errorsmod "cosmossdk.io/errors"
)

const codespace = "relayer"

// Every expected failure in this package maps to one of the sentinels
// below; callers branch with errors.Is instead of matching message text.
var (
	// identifier validation
	ErrEmptyIdentifier  = errorsmod.Register(codespace, 2, "identifier is empty")
	ErrIdentifierLength = errorsmod.Register(codespace, 3, "identifier has invalid length")
	ErrIdentifierChars  = errorsmod.Register(codespace, 4, "identifier contains a disallowed character")

	// event correlation
	ErrEventNotCorrelatable = errorsmod.Register(codespace, 5, "no builder object exists for this event kind")
	ErrCounterpartyUnknown  = errorsmod.Register(codespace, 6, "counterparty client identifier is not known")

	// query protocol
	ErrMissingClientID        = errorsmod.Register(codespace, 7, "missing client identifier")
	ErrMissingConsensusHeight = errorsmod.Register(codespace, 8, "missing consensus height")
	ErrProofMissing           = errorsmod.Register(codespace, 9, "response does not carry the requested proof")
	ErrStateNotFound          = errorsmod.Register(codespace, 10, "state not found on chain")
)
