package whatsapp

import (
	"github.com/gwillem/whatsapp-go/internal/binary"
	"github.com/gwillem/whatsapp-go/internal/fanout"
	"github.com/gwillem/whatsapp-go/internal/libsignal"
)

// Errors returned by the client, for use with errors.As.
type (
	NoSessionError         = libsignal.NoSessionError
	NoOpenSessionError     = libsignal.NoOpenSessionError
	NoSenderKeyError       = libsignal.NoSenderKeyError
	ProtocolDesyncError    = libsignal.ProtocolDesyncError
	InvalidMessageError    = libsignal.InvalidMessageError
	InvalidKeyIDError      = libsignal.InvalidKeyIDError
	UntrustedIdentityError = libsignal.UntrustedIdentityError
	ServerRejectedError    = binary.ServerRejectedError
	AssertionError         = fanout.AssertionError
	DecryptError           = fanout.DecryptError
)
