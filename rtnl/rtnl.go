// Package rtnl decodes rtnetlink link messages (struct ifinfomsg).
//
// By the time a message body reaches the decoder the caller has usually
// copied its first byte, the address family, to pick the family-specific
// decoder. That byte is passed as Request.Known and is not read again; the
// message length from the netlink header is passed as Request.Len.
package rtnl

import (
	"github.com/wippyai/tracedecode/decode"
	"github.com/wippyai/tracedecode/errors"
	"github.com/wippyai/tracedecode/xlat"
)

// rtnetlink message types carrying an ifinfomsg.
const (
	NewLink = 16
	DelLink = 17
	GetLink = 18
	SetLink = 19
)

func addressFamilies(t *xlat.Tables) *xlat.Table  { return t.AddressFamilies }
func arpHardwareTypes(t *xlat.Tables) *xlat.Table { return t.ARPHardwareTypes }
func interfaceFlags(t *xlat.Tables) *xlat.Table   { return t.InterfaceFlags }

var ifinfomsg = decode.MustStruct("ifinfomsg",
	decode.U8("ifi_family").XVal(addressFamilies, "AF_???"),
	decode.U8("ifi_pad").Hide(),
	decode.U16("ifi_type").XVal(arpHardwareTypes, "ARPHRD_???"),
	decode.S32("ifi_index").IfIndex(),
	decode.U32("ifi_flags").Flags(interfaceFlags, "IFF_???"),
	decode.U32("ifi_change").Hex(),
)

var table = decode.MustTable("netlink-route",
	decode.Entry{
		Tag: "ifinfomsg",
		Codes: []decode.Code{
			{Name: "RTM_NEWLINK", Value: NewLink},
			{Name: "RTM_DELLINK", Value: DelLink},
			{Name: "RTM_GETLINK", Value: GetLink},
			{Name: "RTM_SETLINK", Value: SetLink},
		},
		Handler: decode.Immediate(decodeIfinfomsg),
	},
)

// Table returns the rtnetlink link message table.
func Table() *decode.Table {
	return table
}

// Size is sizeof(struct ifinfomsg).
func Size() uint32 {
	return ifinfomsg.Size()
}

func decodeIfinfomsg(c *decode.Context, req decode.Request) {
	w := c.Writer()
	rec, err := c.Fetch(ifinfomsg, req.Arg, req.Known, req.Len)
	if rec.Valid() == 0 {
		w.Addr(req.Arg)
		return
	}

	c.Fields(rec, "{", "ifi_family")
	if errors.IsUnavailable(err) {
		// The remainder could not be read: print where it starts.
		w.Punct(", ")
		w.Addr(req.Arg + uint64(rec.Valid()))
		w.Punct("}")
		return
	}
	c.Fields(rec, ", ", "ifi_type", "ifi_index", "ifi_flags", "ifi_change")
	w.Punct("}")
}
