package core

import (
	"go.opentelemetry.io/otel/attribute"
)

const (
	AttributeKeyChainID        = attribute.Key("chain_id")
	AttributeKeyClientID       = attribute.Key("client_id")
	AttributeKeyConnectionID   = attribute.Key("connection_id")
	AttributeKeyChannelID      = attribute.Key("channel_id")
	AttributeKeyPortID         = attribute.Key("port_id")
	AttributeKeyRevisionNumber = attribute.Key("revision_number")
	AttributeKeyRevisionHeight = attribute.Key("revision_height")
)
