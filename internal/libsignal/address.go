package libsignal

import (
	"fmt"
	"strconv"
)

// Address names one session endpoint: an account name and a device ID.
type Address struct {
	Name     string
	DeviceID uint32
}

// NewAddress creates a new protocol address.
func NewAddress(name string, deviceID uint32) Address {
	return Address{Name: name, DeviceID: deviceID}
}

// String returns "name.deviceID", the key used for session records.
func (a Address) String() string {
	return a.Name + "." + strconv.FormatUint(uint64(a.DeviceID), 10)
}

// SenderKeyName identifies the sender-key chain of one sender in one group.
type SenderKeyName struct {
	GroupID string
	Sender  Address
}

// String returns "group::name::deviceID", the key used for sender-key records.
func (n SenderKeyName) String() string {
	return fmt.Sprintf("%s::%s::%d", n.GroupID, n.Sender.Name, n.Sender.DeviceID)
}
