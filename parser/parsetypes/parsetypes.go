package parsetypes

import (
	"sort"
	"strconv"
)

// Names of the netfilter LOG target parameters used downstream. The kernel
// writes many more (MAC, TOS, PREC, ID, WINDOW, RES, ...) and they are kept
// in Fields as well, these are just the ones analysis depends on.
const (
	// Src is the source address of the dropped packet
	Src = "SRC"

	// Dst is the destination address of the dropped packet
	Dst = "DST"

	// Dpt is the destination port, only present for TCP and UDP
	Dpt = "DPT"

	// Spt is the source port, only present for TCP and UDP
	Spt = "SPT"

	// Proto is the transport protocol name, e.g. TCP, UDP or ICMP
	Proto = "PROTO"

	// In is the inbound interface. An empty value is valid.
	In = "IN"

	// Out is the outbound interface. An empty value is valid.
	Out = "OUT"
)

//DropRecord holds one kernel log entry describing a dropped packet.
//Records are created by the line parser and must not be modified afterwards.
type DropRecord struct {
	// Timestamp is in epoch seconds
	Timestamp int64 `json:"ts"`
	// Host is the name of the machine that wrote the syslog line
	Host string `json:"host"`
	// Fields holds the key=value parameters; later duplicates win
	Fields map[string]string `json:"fields"`
	// Flags holds the bare parameters (SYN, DF, ...) in the order they appeared
	Flags []string `json:"flags"`
}

//Field returns the value of a parameter and whether it was present
func (d DropRecord) Field(name string) (string, bool) {
	val, ok := d.Fields[name]
	return val, ok
}

//Port returns a parameter parsed as a port number
func (d DropRecord) Port(name string) (int, bool, error) {
	val, ok := d.Fields[name]
	if !ok {
		return 0, false, nil
	}
	port, err := strconv.Atoi(val)
	if err != nil {
		return 0, true, err
	}
	return port, true, nil
}

//HasFlag checks if a bare parameter was logged for the packet
func (d DropRecord) HasFlag(flag string) bool {
	for _, f := range d.Flags {
		if f == flag {
			return true
		}
	}
	return false
}

//Tokens serializes the record parameters back into log form. Fields come
//first ordered by key since their original order is not kept, followed by
//the flags in their original order.
func (d DropRecord) Tokens() []string {
	keys := make([]string, 0, len(d.Fields))
	for k := range d.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	tokens := make([]string, 0, len(keys)+len(d.Flags))
	for _, k := range keys {
		tokens = append(tokens, k+"="+d.Fields[k])
	}
	return append(tokens, d.Flags...)
}
