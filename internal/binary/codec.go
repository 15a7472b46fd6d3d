package binary

import (
	"errors"
	"fmt"
	"sort"

	pb "google.golang.org/protobuf/proto"

	"github.com/gwillem/whatsapp-go/internal/binarypb"
)

// Codec converts nodes to and from transport frames.
type Codec interface {
	Marshal(n Node) ([]byte, error)
	Unmarshal(data []byte) (Node, error)
}

// WireCodec encodes the node tree as a binarypb.Node frame.
type WireCodec struct{}

const (
	kindNone = iota
	kindText
	kindBytes
	kindChildren
)

const maxDepth = 64

// Marshal encodes a node.
func (WireCodec) Marshal(n Node) ([]byte, error) {
	frame, err := toFrame(n, 0)
	if err != nil {
		return nil, err
	}
	return pb.MarshalOptions{Deterministic: true}.Marshal(frame)
}

// Unmarshal decodes a node.
func (WireCodec) Unmarshal(data []byte) (Node, error) {
	frame := new(binarypb.Node)
	if err := pb.Unmarshal(data, frame); err != nil {
		return Node{}, fmt.Errorf("binary: bad frame: %w", err)
	}
	return fromFrame(frame, 0)
}

// Marshal encodes n with WireCodec.
func Marshal(n Node) ([]byte, error) { return WireCodec{}.Marshal(n) }

// Unmarshal decodes data with WireCodec.
func Unmarshal(data []byte) (Node, error) { return WireCodec{}.Unmarshal(data) }

func toFrame(n Node, depth int) (*binarypb.Node, error) {
	if depth > maxDepth {
		return nil, errors.New("binary: node tree too deep")
	}
	if n.Tag == "" {
		return nil, errors.New("binary: node without tag")
	}
	frame := &binarypb.Node{Tag: pb.String(n.Tag)}

	keys := make([]string, 0, len(n.Attrs))
	for k := range n.Attrs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		frame.Attrs = append(frame.Attrs, &binarypb.Attr{Key: pb.String(k), Value: pb.String(n.Attrs[k])})
	}

	kind := kindNone
	switch c := n.Content.(type) {
	case Text:
		kind = kindText
		frame.Text = pb.String(string(c))
	case Bytes:
		kind = kindBytes
		frame.Content = append([]byte{}, c...)
	case Children:
		kind = kindChildren
		for _, child := range c {
			cf, err := toFrame(child, depth+1)
			if err != nil {
				return nil, err
			}
			frame.Children = append(frame.Children, cf)
		}
	}
	frame.Kind = pb.Uint32(uint32(kind))
	return frame, nil
}

func fromFrame(frame *binarypb.Node, depth int) (Node, error) {
	if depth > maxDepth {
		return Node{}, errors.New("binary: node tree too deep")
	}
	if frame.GetTag() == "" {
		return Node{}, errors.New("binary: node without tag")
	}
	n := Node{Tag: frame.GetTag()}
	for _, a := range frame.GetAttrs() {
		if n.Attrs == nil {
			n.Attrs = Attrs{}
		}
		n.Attrs[a.GetKey()] = a.GetValue()
	}
	switch frame.GetKind() {
	case kindText:
		n.Content = Text(frame.GetText())
	case kindBytes:
		n.Content = Bytes(append([]byte{}, frame.GetContent()...))
	case kindChildren:
		children := make(Children, 0, len(frame.GetChildren()))
		for _, cf := range frame.GetChildren() {
			child, err := fromFrame(cf, depth+1)
			if err != nil {
				return Node{}, err
			}
			children = append(children, child)
		}
		n.Content = children
	}
	return n, nil
}
