package usync

import (
	"strconv"

	"github.com/gwillem/whatsapp-go/internal/binary"
	"github.com/gwillem/whatsapp-go/internal/jid"
)

// Device is one entry of a user's device list.
type Device struct {
	ID       uint16
	KeyIndex uint32
}

// RequestedUsers returns the users listed in a device query.
func RequestedUsers(query binary.Node) []jid.JID {
	list, ok := query.GetChildByTag("usync", "list")
	if !ok {
		return nil
	}
	var out []jid.JID
	for _, u := range list.GetChildrenByTag("user") {
		if j, err := jid.Parse(u.Attr("jid")); err == nil {
			out = append(out, j)
		}
	}
	return out
}

// ResultNode builds the response to a device query. lookup returns the
// devices of one user; users with no devices get an empty device list.
func ResultNode(id string, users []jid.JID, lookup func(jid.JID) []Device) binary.Node {
	items := make([]binary.Node, 0, len(users))
	for _, u := range users {
		var devs []binary.Node
		for _, d := range lookup(u) {
			attrs := binary.Attrs{"id": strconv.Itoa(int(d.ID))}
			if d.ID != 0 {
				attrs["key-index"] = strconv.FormatUint(uint64(d.KeyIndex), 10)
			}
			devs = append(devs, binary.NewNode("device", attrs))
		}
		items = append(items, binary.NewNode("user", binary.Attrs{"jid": u.ToNonAD().String()},
			binary.NewNode("devices", nil, binary.NewNode("device-list", nil, devs...)),
		))
	}
	return binary.NewNode("iq", binary.Attrs{"id": id, "type": "result", "from": jid.ServerJID.String()},
		binary.NewNode("usync", nil, binary.NewNode("list", nil, items...)),
	)
}
