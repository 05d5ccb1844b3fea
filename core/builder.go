package core

import (
	errorsmod "cosmossdk.io/errors"
	clienttypes "github.com/cosmos/ibc-go/v8/modules/core/02-client/types"
)

// BuilderObject is a typed, queryable handle correlated from exactly one
// chain event. The relay loop works against this capability set instead of
// inspecting raw event shapes, so client, connection and channel events can
// be treated uniformly once the remaining ICS modules exist.
type BuilderObject interface {
	// ClientID returns the identifier of the client the event refers to.
	ClientID() ClientID

	// ClientHeight returns the height of the counterparty state the
	// referenced client attests to.
	ClientHeight() clienttypes.Height

	// CounterpartyClientID returns the identifier of the matching client on
	// the counterparty chain. It fails with ErrCounterpartyUnknown until the
	// counterparty identifier has been supplied from connection data.
	CounterpartyClientID() (ClientID, error)

	// Flipped returns the builder object for the counterparty side of the
	// relayed event, for driving the reverse direction of a bidirectional
	// relay. It fails with ErrCounterpartyUnknown under the same condition
	// as CounterpartyClientID.
	Flipped() (BuilderObject, error)
}

var _ BuilderObject = (*ClientBuilderObject)(nil)

// ClientBuilderObject is the builder object for client lifecycle events.
// It is a plain value snapshot of the event fields; it holds no reference
// back to the event and no shared state.
type ClientBuilderObject struct {
	height       clienttypes.Height
	clientID     ClientID
	clientType   string
	clientHeight clienttypes.Height

	// set via WithCounterparty once connection data names the pair
	counterpartyClientID ClientID
}

// NewClientBuilderObject correlates a single event into a client builder
// object. It succeeds exactly for the CreateClient and UpdateClient
// variants; every other variant fails with ErrEventNotCorrelatable so that
// the relay loop can tell "no client activity" apart from "client activity
// this core cannot interpret yet".
func NewClientBuilderObject(ev Event) (*ClientBuilderObject, error) {
	switch ev := ev.(type) {
	case *EventCreateClient:
		return &ClientBuilderObject{
			height:       ev.Height,
			clientID:     ev.ClientID,
			clientType:   ev.ClientType,
			clientHeight: ev.ClientHeight,
		}, nil
	case *EventUpdateClient:
		return &ClientBuilderObject{
			height:       ev.Height,
			clientID:     ev.ClientID,
			clientType:   ev.ClientType,
			clientHeight: ev.ClientHeight,
		}, nil
	default:
		return nil, errorsmod.Wrapf(ErrEventNotCorrelatable, "event %T", ev)
	}
}

// Height returns the chain height at which the source event was emitted.
func (o *ClientBuilderObject) Height() clienttypes.Height { return o.height }

func (o *ClientBuilderObject) ClientID() ClientID { return o.clientID }

// ClientType names the light-client algorithm governing the client.
func (o *ClientBuilderObject) ClientType() string { return o.clientType }

func (o *ClientBuilderObject) ClientHeight() clienttypes.Height { return o.clientHeight }

// WithCounterparty returns a copy of o carrying the counterparty client
// identifier. The mapping between a client and its counterparty cannot be
// derived from the event alone; it must come from connection handshake
// data, which is why it is supplied explicitly rather than guessed.
func (o *ClientBuilderObject) WithCounterparty(counterpartyClientID ClientID) *ClientBuilderObject {
	flipped := *o
	flipped.counterpartyClientID = counterpartyClientID
	return &flipped
}

func (o *ClientBuilderObject) CounterpartyClientID() (ClientID, error) {
	if o.counterpartyClientID.Empty() {
		return ClientID{}, errorsmod.Wrapf(ErrCounterpartyUnknown, "client %s", o.clientID)
	}
	return o.counterpartyClientID, nil
}

func (o *ClientBuilderObject) Flipped() (BuilderObject, error) {
	if o.counterpartyClientID.Empty() {
		return nil, errorsmod.Wrapf(ErrCounterpartyUnknown, "client %s", o.clientID)
	}
	return &ClientBuilderObject{
		height:               o.height,
		clientID:             o.counterpartyClientID,
		clientType:           o.clientType,
		clientHeight:         o.clientHeight,
		counterpartyClientID: o.clientID,
	}, nil
}
