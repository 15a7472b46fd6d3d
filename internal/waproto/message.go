package waproto

import (
	"errors"
	"fmt"

	pb "google.golang.org/protobuf/proto"
)

// ErrMalformed reports a message that could not be decoded.
var ErrMalformed = errors.New("waproto: malformed message")

// Text encodes a plain text message.
func Text(s string) []byte {
	// Marshal cannot fail for a proto2 message without required fields.
	b, _ := pb.Marshal(&Message{Conversation: pb.String(s)})
	return b
}

// Parse decodes an encoded message. Fields this package does not declare
// are kept as unknown fields.
func Parse(data []byte) (*Message, error) {
	m := new(Message)
	if err := pb.Unmarshal(data, m); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	return m, nil
}

// WrapDeviceSent wraps message for delivery to our own devices.
func WrapDeviceSent(destination string, message []byte) ([]byte, error) {
	inner, err := Parse(message)
	if err != nil {
		return nil, err
	}
	return pb.Marshal(&Message{DeviceSentMessage: &DeviceSentMessage{
		DestinationJID: pb.String(destination),
		Message:        inner,
	}})
}

// SenderKeyDistributionOnly encodes a message whose only content is the
// distribution message for group.
func SenderKeyDistributionOnly(groupID string, skdm []byte) ([]byte, error) {
	return pb.Marshal(&Message{SenderKeyDistributionMessage: distribution(groupID, skdm)})
}

// EmbedSenderKeyDistribution adds a distribution message to an encoded
// message, replacing any distribution it already carried.
func EmbedSenderKeyDistribution(message []byte, groupID string, skdm []byte) ([]byte, error) {
	m, err := Parse(message)
	if err != nil {
		return nil, err
	}
	m.SenderKeyDistributionMessage = distribution(groupID, skdm)
	return pb.Marshal(m)
}

func distribution(groupID string, skdm []byte) *SenderKeyDistributionMessage {
	return &SenderKeyDistributionMessage{
		GroupID:                             pb.String(groupID),
		AxolotlSenderKeyDistributionMessage: skdm,
	}
}
