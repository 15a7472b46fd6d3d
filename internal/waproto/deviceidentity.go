package waproto

import (
	"fmt"

	pb "google.golang.org/protobuf/proto"
)

// EncodeDeviceIdentity serializes the account-signed identity of this
// companion device. The account signature key is only included when
// includeSignatureKey is set.
func EncodeDeviceIdentity(d *ADVSignedDeviceIdentity, includeSignatureKey bool) ([]byte, error) {
	if !includeSignatureKey && d.AccountSignatureKey != nil {
		d = pb.CloneOf(d)
		d.AccountSignatureKey = nil
	}
	data, err := pb.Marshal(d)
	if err != nil {
		return nil, fmt.Errorf("waproto: device identity: %w", err)
	}
	return data, nil
}

// DecodeDeviceIdentity parses EncodeDeviceIdentity output.
func DecodeDeviceIdentity(data []byte) (*ADVSignedDeviceIdentity, error) {
	d := new(ADVSignedDeviceIdentity)
	if err := pb.Unmarshal(data, d); err != nil {
		return nil, fmt.Errorf("waproto: device identity: %w", err)
	}
	return d, nil
}
