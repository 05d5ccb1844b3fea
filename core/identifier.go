package core

import (
	errorsmod "cosmossdk.io/errors"
)

// The four ICS-24 identifier namespaces share one grammar shape and differ
// only in their length bounds. A namespace is the parameterization of that
// grammar; the exported identifier types below are its four instantiations.
type namespace struct {
	name   string
	minLen int
	maxLen int
}

var (
	clientNamespace     = namespace{name: "client", minLen: 9, maxLen: 64}
	connectionNamespace = namespace{name: "connection", minLen: 10, maxLen: 64}
	channelNamespace    = namespace{name: "channel", minLen: 8, maxLen: 64}
	portNamespace       = namespace{name: "port", minLen: 2, maxLen: 128}
)

// isAllowedChar reports whether c may appear in an identifier.
// The allowed set is the ICS-24 one: alphanumerics and ".", "_", "+", "-",
// "#", "[", "]", "<", ">".
func isAllowedChar(c rune) bool {
	switch {
	case c >= 'a' && c <= 'z':
		return true
	case c >= 'A' && c <= 'Z':
		return true
	case c >= '0' && c <= '9':
		return true
	}
	switch c {
	case '.', '_', '+', '-', '#', '[', ']', '<', '>':
		return true
	}
	return false
}

func (ns namespace) validate(id string) error {
	if id == "" {
		return errorsmod.Wrapf(ErrEmptyIdentifier, "%s identifier", ns.name)
	}
	if len(id) < ns.minLen || len(id) > ns.maxLen {
		return errorsmod.Wrapf(ErrIdentifierLength, "%s identifier %q: length must be between %d and %d", ns.name, id, ns.minLen, ns.maxLen)
	}
	for _, c := range id {
		if !isAllowedChar(c) {
			return errorsmod.Wrapf(ErrIdentifierChars, "%s identifier %q: character %q is not allowed", ns.name, id, c)
		}
	}
	return nil
}

// ClientID identifies a light client hosted on a chain.
//
// A non-zero ClientID is obtained only through ParseClientID, so any value
// held by a caller has already passed the client namespace grammar. The
// zero value is the absent identifier. Identifiers are comparable and may
// be used as map keys; their ordering is the lexicographic ordering of the
// underlying string.
type ClientID struct {
	id string
}

// ParseClientID validates s under the client identifier grammar.
func ParseClientID(s string) (ClientID, error) {
	if err := clientNamespace.validate(s); err != nil {
		return ClientID{}, err
	}
	return ClientID{id: s}, nil
}

func (c ClientID) String() string { return c.id }

func (c ClientID) Bytes() []byte { return []byte(c.id) }

// Empty reports whether c is the zero (absent) identifier.
func (c ClientID) Empty() bool { return c.id == "" }

func (c ClientID) MarshalText() ([]byte, error) { return []byte(c.id), nil }

func (c *ClientID) UnmarshalText(bz []byte) error {
	id, err := ParseClientID(string(bz))
	if err != nil {
		return err
	}
	*c = id
	return nil
}

// ConnectionId identifies a connection end on a chain.
type ConnectionID struct {
	id string
}

// ParseConnectionID validates s under the connection identifier grammar.
func ParseConnectionID(s string) (ConnectionID, error) {
	if err := connectionNamespace.validate(s); err != nil {
		return ConnectionID{}, err
	}
	return ConnectionID{id: s}, nil
}

func (c ConnectionID) String() string { return c.id }

func (c ConnectionID) Bytes() []byte { return []byte(c.id) }

func (c ConnectionID) Empty() bool { return c.id == "" }

func (c ConnectionID) MarshalText() ([]byte, error) { return []byte(c.id), nil }

func (c *ConnectionID) UnmarshalText(bz []byte) error {
	id, err := ParseConnectionID(string(bz))
	if err != nil {
		return err
	}
	*c = id
	return nil
}

// ChannelID identifies a channel end on a chain.
type ChannelID struct {
	id string
}

// ParseChannelID validates s under the channel identifier grammar.
func ParseChannelID(s string) (ChannelID, error) {
	if err := channelNamespace.validate(s); err != nil {
		return ChannelID{}, err
	}
	return ChannelID{id: s}, nil
}

func (c ChannelID) String() string { return c.id }

func (c ChannelID) Bytes() []byte { return []byte(c.id) }

func (c ChannelID) Empty() bool { return c.id == "" }

func (c ChannelID) MarshalText() ([]byte, error) { return []byte(c.id), nil }

func (c *ChannelID) UnmarshalText(bz []byte) error {
	id, err := ParseChannelID(string(bz))
	if err != nil {
		return err
	}
	*c = id
	return nil
}

// PortID identifies a port bound on a chain.
type PortID struct {
	id string
}

// ParsePortID validates s under the port identifier grammar.
func ParsePortID(s string) (PortID, error) {
	if err := portNamespace.validate(s); err != nil {
		return PortID{}, err
	}
	return PortID{id: s}, nil
}

func (p PortID) String() string { return p.id }

func (p PortID) Bytes() []byte { return []byte(p.id) }

func (p PortID) Empty() bool { return p.id == "" }

func (p PortID) MarshalText() ([]byte, error) { return []byte(p.id), nil }

func (p *PortID) UnmarshalText(bz []byte) error {
	id, err := ParsePortID(string(bz))
	if err != nil {
		return err
	}
	*p = id
	return nil
}
