// Package binary models the XML-like wire node tree exchanged with the server.
package binary

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"sort"
	"strings"
)

// Attrs are the string-keyed attributes of a node.
type Attrs map[string]string

// Content is the payload of a node: Text, Bytes or Children. A nil Content
// means the node is empty.
type Content interface {
	isContent()
}

// Text is string content.
type Text string

// Bytes is binary content.
type Bytes []byte

// Children is a list of child nodes.
type Children []Node

func (Text) isContent()     {}
func (Bytes) isContent()    {}
func (Children) isContent() {}

// Node is a single element of the wire tree.
type Node struct {
	Tag     string
	Attrs   Attrs
	Content Content
}

// NewNode returns a node with the given children.
func NewNode(tag string, attrs Attrs, children ...Node) Node {
	n := Node{Tag: tag, Attrs: attrs}
	if len(children) > 0 {
		n.Content = Children(children)
	}
	return n
}

// NewBytesNode returns a node carrying binary content.
func NewBytesNode(tag string, attrs Attrs, data []byte) Node {
	return Node{Tag: tag, Attrs: attrs, Content: Bytes(data)}
}

// Attr returns the named attribute or "".
func (n *Node) Attr(key string) string {
	if n.Attrs == nil {
		return ""
	}
	return n.Attrs[key]
}

// SetAttr sets an attribute, allocating the map when needed.
func (n *Node) SetAttr(key, value string) {
	if n.Attrs == nil {
		n.Attrs = Attrs{}
	}
	n.Attrs[key] = value
}

// GetChildren returns the child list, or nil for non-list content.
func (n *Node) GetChildren() []Node {
	if c, ok := n.Content.(Children); ok {
		return c
	}
	return nil
}

// AppendChild appends a child, converting empty content to a child list.
func (n *Node) AppendChild(child Node) {
	c, _ := n.Content.(Children)
	n.Content = append(c, child)
}

// GetChildrenByTag returns every direct child with the given tag.
func (n *Node) GetChildrenByTag(tag string) []Node {
	var out []Node
	for _, c := range n.GetChildren() {
		if c.Tag == tag {
			out = append(out, c)
		}
	}
	return out
}

// GetChildByTag follows a path of tags and returns the first match at each level.
func (n *Node) GetChildByTag(tags ...string) (Node, bool) {
	cur := *n
	for _, tag := range tags {
		found := false
		for _, c := range cur.GetChildren() {
			if c.Tag == tag {
				cur, found = c, true
				break
			}
		}
		if !found {
			return Node{}, false
		}
	}
	return cur, true
}

// Bytes returns binary or text content as bytes.
func (n *Node) Bytes() []byte {
	switch c := n.Content.(type) {
	case Bytes:
		return c
	case Text:
		return []byte(c)
	}
	return nil
}

// ChildBytes returns the content of the first child with tag.
func (n *Node) ChildBytes(tag string) []byte {
	child, ok := n.GetChildByTag(tag)
	if !ok {
		return nil
	}
	return child.Bytes()
}

// Uint decodes the content as a big-endian unsigned integer of length bytes.
func (n *Node) Uint(length int) (uint32, error) {
	b := n.Bytes()
	if len(b) != length || length > 4 {
		return 0, fmt.Errorf("binary: <%s> has %d bytes, want %d", n.Tag, len(b), length)
	}
	var v uint32
	for _, x := range b {
		v = v<<8 | uint32(x)
	}
	return v, nil
}

// ChildUint decodes the first child with tag as a big-endian integer.
func (n *Node) ChildUint(tag string, length int) (uint32, error) {
	child, ok := n.GetChildByTag(tag)
	if !ok {
		return 0, fmt.Errorf("binary: missing <%s> in <%s>", tag, n.Tag)
	}
	return child.Uint(length)
}

// EncodeUint encodes v as length big-endian bytes.
func EncodeUint(v uint32, length int) []byte {
	var buf [4]byte
	binary.BigEndian.PutUint32(buf[:], v)
	return append([]byte(nil), buf[4-length:]...)
}

// String renders the node as indented XML for logging.
func (n Node) String() string {
	var sb strings.Builder
	n.write(&sb, 0)
	return sb.String()
}

func (n Node) write(sb *strings.Builder, depth int) {
	indent := strings.Repeat("  ", depth)
	sb.WriteString(indent + "<" + n.Tag)
	keys := make([]string, 0, len(n.Attrs))
	for k := range n.Attrs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(sb, " %s=%q", k, n.Attrs[k])
	}
	switch c := n.Content.(type) {
	case nil:
		sb.WriteString("/>")
	case Text:
		fmt.Fprintf(sb, ">%s</%s>", string(c), n.Tag)
	case Bytes:
		fmt.Fprintf(sb, "><!-- %d bytes -->%s</%s>", len(c), hex.EncodeToString(c[:min(len(c), 16)]), n.Tag)
	case Children:
		sb.WriteString(">")
		for _, child := range c {
			sb.WriteString("\n")
			child.write(sb, depth+1)
		}
		sb.WriteString("\n" + indent + "</" + n.Tag + ">")
	}
}
