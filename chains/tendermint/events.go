package tendermint

import (
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"
	"time"

	abci "github.com/cometbft/cometbft/abci/types"
	clienttypes "github.com/cosmos/ibc-go/v8/modules/core/02-client/types"
	conntypes "github.com/cosmos/ibc-go/v8/modules/core/03-connection/types"
	chantypes "github.com/cosmos/ibc-go/v8/modules/core/04-channel/types"

	"github.com/crossline-labs/crossline-relayer/core"
)

// ParseEvents converts the ABCI events emitted at the given height into
// typed relayer events. Events this backend has no typed representation
// for are carried as EventUnknown, never dropped.
func ParseEvents(height clienttypes.Height, events []abci.Event) ([]core.Event, error) {
	var out []core.Event
	for _, ev := range events {
		parsed, err := ParseEvent(height, ev)
		if err != nil {
			return nil, err
		}
		if parsed != nil {
			out = append(out, parsed)
		}
	}
	return out, nil
}

// ParseEvent converts a single ABCI event. It returns nil for event types
// that are not IBC handler events (message routing, fee events, etc.).
func ParseEvent(height clienttypes.Height, ev abci.Event) (core.Event, error) {
	switch ev.Type {
	case clienttypes.EventTypeCreateClient:
		clientID, clientType, clientHeight, err := parseClientEventAttrs(ev)
		if err != nil {
			return nil, fmt.Errorf("failed to parse event %s: %v", ev.Type, err)
		}
		return &core.EventCreateClient{
			Height:       height,
			ClientID:     clientID,
			ClientType:   clientType,
			ClientHeight: clientHeight,
		}, nil
	case clienttypes.EventTypeUpdateClient:
		clientID, clientType, clientHeight, err := parseClientEventAttrs(ev)
		if err != nil {
			return nil, fmt.Errorf("failed to parse event %s: %v", ev.Type, err)
		}
		return &core.EventUpdateClient{
			Height:       height,
			ClientID:     clientID,
			ClientType:   clientType,
			ClientHeight: clientHeight,
		}, nil
	case conntypes.EventTypeConnectionOpenInit:
		connectionID, err := getParsedAttribute(ev, conntypes.AttributeKeyConnectionID, core.ParseConnectionID)
		if err != nil {
			return nil, err
		}
		clientID, err := getParsedAttribute(ev, conntypes.AttributeKeyClientID, core.ParseClientID)
		if err != nil {
			return nil, err
		}
		cpClientID, err := getParsedAttribute(ev, conntypes.AttributeKeyCounterpartyClientID, core.ParseClientID)
		if err != nil {
			return nil, err
		}
		return &core.EventConnectionOpenInit{
			Height:               height,
			ConnectionID:         connectionID,
			ClientID:             clientID,
			CounterpartyClientID: cpClientID,
		}, nil
	case chantypes.EventTypeChannelOpenInit:
		portID, err := getParsedAttribute(ev, chantypes.AttributeKeyPortID, core.ParsePortID)
		if err != nil {
			return nil, err
		}
		channelID, err := getParsedAttribute(ev, chantypes.AttributeKeyChannelID, core.ParseChannelID)
		if err != nil {
			return nil, err
		}
		cpPortID, err := getParsedAttribute(ev, chantypes.AttributeCounterpartyPortID, core.ParsePortID)
		if err != nil {
			return nil, err
		}
		connectionID, err := getParsedAttribute(ev, chantypes.AttributeKeyConnectionID, core.ParseConnectionID)
		if err != nil {
			return nil, err
		}
		return &core.EventChannelOpenInit{
			Height:             height,
			PortID:             portID,
			ChannelID:          channelID,
			CounterpartyPortID: cpPortID,
			ConnectionID:       connectionID,
		}, nil
	case chantypes.EventTypeSendPacket:
		seq, err := getUintAttribute(ev, chantypes.AttributeKeySequence)
		if err != nil {
			return nil, err
		}
		srcPort, err := getParsedAttribute(ev, chantypes.AttributeKeySrcPort, core.ParsePortID)
		if err != nil {
			return nil, err
		}
		srcChannel, err := getParsedAttribute(ev, chantypes.AttributeKeySrcChannel, core.ParseChannelID)
		if err != nil {
			return nil, err
		}
		timeoutHeightStr, err := getAttribute(ev, chantypes.AttributeKeyTimeoutHeight)
		if err != nil {
			return nil, err
		}
		timeoutHeight, err := clienttypes.ParseHeight(timeoutHeightStr)
		if err != nil {
			return nil, err
		}
		timeoutNanos, err := getUintAttribute(ev, chantypes.AttributeKeyTimeoutTimestamp)
		if err != nil {
			return nil, err
		}
		dataHex, err := getAttribute(ev, chantypes.AttributeKeyDataHex)
		if err != nil {
			return nil, err
		}
		data, err := hex.DecodeString(dataHex)
		if err != nil {
			return nil, fmt.Errorf("failed to decode packet data: %v", err)
		}
		return &core.EventSendPacket{
			Height:           height,
			Sequence:         seq,
			SrcPort:          srcPort,
			SrcChannel:       srcChannel,
			TimeoutHeight:    timeoutHeight,
			TimeoutTimestamp: time.Unix(0, int64(timeoutNanos)),
			Data:             data,
		}, nil
	case "message", "tx", "coin_spent", "coin_received", "transfer":
		return nil, nil
	default:
		return &core.EventUnknown{
			Height: height,
			Type:   ev.Type,
			Value:  ev,
		}, nil
	}
}

// parseClientEventAttrs extracts the attributes shared by the create_client
// and update_client events. Newer chains emit the consensus heights as a
// comma-separated list under "consensus_heights"; the last entry is the
// height the client was left at.
func parseClientEventAttrs(ev abci.Event) (core.ClientID, string, clienttypes.Height, error) {
	clientID, err := getParsedAttribute(ev, clienttypes.AttributeKeyClientID, core.ParseClientID)
	if err != nil {
		return core.ClientID{}, "", clienttypes.Height{}, err
	}
	clientType, err := getAttribute(ev, clienttypes.AttributeKeyClientType)
	if err != nil {
		return core.ClientID{}, "", clienttypes.Height{}, err
	}

	heightStr, err := getAttribute(ev, clienttypes.AttributeKeyConsensusHeights)
	if err != nil {
		// fall back to the singular attribute emitted by older chains
		heightStr, err = getAttribute(ev, clienttypes.AttributeKeyConsensusHeight)
		if err != nil {
			return core.ClientID{}, "", clienttypes.Height{}, err
		}
	}
	heights := strings.Split(heightStr, ",")
	clientHeight, err := clienttypes.ParseHeight(heights[len(heights)-1])
	if err != nil {
		return core.ClientID{}, "", clienttypes.Height{}, err
	}

	return clientID, clientType, clientHeight, nil
}

func getAttribute(ev abci.Event, key string) (string, error) {
	for _, attr := range ev.Attributes {
		if attr.Key == key {
			return attr.Value, nil
		}
	}
	return "", fmt.Errorf("event %s has no attribute %q", ev.Type, key)
}

func getUintAttribute(ev abci.Event, key string) (uint64, error) {
	v, err := getAttribute(ev, key)
	if err != nil {
		return 0, err
	}
	n, err := strconv.ParseUint(v, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("event %s attribute %q is not an integer: %v", ev.Type, key, err)
	}
	return n, nil
}

func getParsedAttribute[T any](ev abci.Event, key string, parse func(string) (T, error)) (T, error) {
	var zero T
	v, err := getAttribute(ev, key)
	if err != nil {
		return zero, err
	}
	parsed, err := parse(v)
	if err != nil {
		return zero, fmt.Errorf("event %s attribute %q: %w", ev.Type, key, err)
	}
	return parsed, nil
}
