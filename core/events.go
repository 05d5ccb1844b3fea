package core

import (
	"time"

	clienttypes "github.com/cosmos/ibc-go/v8/modules/core/02-client/types"
)

// Event is a state-transition event emitted by a chain's IBC handler.
//
// The set of variants is closed: every variant lives in this file and
// carries the unexported marker method, so dispatch sites (the correlator
// in particular) can enumerate them exhaustively. Adding a variant without
// teaching the correlator about it yields a correlation error at runtime,
// never a silent miss.
type Event interface {
	isEvent()

	// EventHeight returns the chain height at which the event was emitted.
	EventHeight() clienttypes.Height
}

var (
	_ Event = (*EventCreateClient)(nil)
	_ Event = (*EventUpdateClient)(nil)
	_ Event = (*EventConnectionOpenInit)(nil)
	_ Event = (*EventChannelOpenInit)(nil)
	_ Event = (*EventSendPacket)(nil)
	_ Event = (*EventUnknown)(nil)
)

func (*EventCreateClient) isEvent()       {}
func (*EventUpdateClient) isEvent()       {}
func (*EventConnectionOpenInit) isEvent() {}
func (*EventChannelOpenInit) isEvent()    {}
func (*EventSendPacket) isEvent()         {}
func (*EventUnknown) isEvent()            {}

// EventCreateClient reports that a light client was created on the chain.
type EventCreateClient struct {
	// Height is the chain height at which the event was emitted.
	Height clienttypes.Height
	// ClientID identifies the created client.
	ClientID ClientID
	// ClientType names the verification algorithm governing the client.
	ClientType string
	// ClientHeight is the counterparty height the client attests to.
	ClientHeight clienttypes.Height
}

func (e *EventCreateClient) EventHeight() clienttypes.Height { return e.Height }

// EventUpdateClient reports that a light client advanced to a new
// counterparty height. ClientHeight is monotonically non-decreasing across
// successive updates of the same client on a correct chain.
type EventUpdateClient struct {
	Height       clienttypes.Height
	ClientID     ClientID
	ClientType   string
	ClientHeight clienttypes.Height
}

func (e *EventUpdateClient) EventHeight() clienttypes.Height { return e.Height }

// EventConnectionOpenInit reports the first step of a connection handshake.
type EventConnectionOpenInit struct {
	Height               clienttypes.Height
	ConnectionID         ConnectionID
	ClientID             ClientID
	CounterpartyClientID ClientID
}

func (e *EventConnectionOpenInit) EventHeight() clienttypes.Height { return e.Height }

// EventChannelOpenInit reports the first step of a channel handshake.
type EventChannelOpenInit struct {
	Height             clienttypes.Height
	PortID             PortID
	ChannelID          ChannelID
	CounterpartyPortID PortID
	ConnectionID       ConnectionID
}

func (e *EventChannelOpenInit) EventHeight() clienttypes.Height { return e.Height }

// EventSendPacket reports a packet committed for sending.
type EventSendPacket struct {
	Height           clienttypes.Height
	Sequence         uint64
	SrcPort          PortID
	SrcChannel       ChannelID
	TimeoutHeight    clienttypes.Height
	TimeoutTimestamp time.Time
	Data             []byte
}

func (e *EventSendPacket) EventHeight() clienttypes.Height { return e.Height }

// EventUnknown wraps an event the relayer observed but has no typed
// representation for. It is carried rather than dropped so that callers can
// distinguish "nothing happened" from "something we cannot interpret".
type EventUnknown struct {
	Height clienttypes.Height
	Type   string
	Value  any
}

func (e *EventUnknown) EventHeight() clienttypes.Height { return e.Height }
