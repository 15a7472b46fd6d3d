package libsignal

import (
	"fmt"

	"github.com/gwillem/whatsapp-go/internal/signalcrypto"
)

const (
	// Maximum number of message keys derived ahead of the chain position.
	maxMessageKeysSkip = 2000
	// Maximum number of stored out-of-order message keys per receiving chain.
	maxMessageKeys = 2000
	// Receiving chains kept per session state.
	maxReceiverChains = 5
	// Archived session states kept per record.
	maxPreviousStates = 40
)

var (
	messageKeySeed = []byte{0x01}
	chainKeySeed   = []byte{0x02}

	infoText        = []byte("WhisperText")
	infoRatchet     = []byte("WhisperRatchet")
	infoMessageKeys = []byte("WhisperMessageKeys")
)

// ChainKey is a symmetric chain position.
type ChainKey struct {
	Index uint32
	Key   []byte
}

// MessageKeys are the per-message cipher parameters.
type MessageKeys struct {
	Index     uint32
	CipherKey []byte
	MacKey    []byte
	IV        []byte
}

// Next advances the chain by one step.
func (c ChainKey) Next() ChainKey {
	return ChainKey{Index: c.Index + 1, Key: signalcrypto.ComputeMAC(c.Key, chainKeySeed)}
}

// MessageKeys derives the keys for the current chain position.
func (c ChainKey) MessageKeys() (MessageKeys, error) {
	seed := signalcrypto.ComputeMAC(c.Key, messageKeySeed)
	okm, err := signalcrypto.DeriveSecrets(seed, nil, infoMessageKeys, 80)
	if err != nil {
		return MessageKeys{}, err
	}
	return MessageKeys{
		Index:     c.Index,
		CipherKey: okm[:32],
		MacKey:    okm[32:64],
		IV:        okm[64:80],
	}, nil
}

// createChain performs one DH ratchet step from rootKey, returning the new
// root key and the chain key for the new chain.
func createChain(rootKey []byte, their PublicKey, our PrivateKey) ([]byte, ChainKey, error) {
	secret, err := our.Agree(their)
	if err != nil {
		return nil, ChainKey{}, err
	}
	okm, err := signalcrypto.DeriveSecrets(secret, rootKey, infoRatchet, 64)
	if err != nil {
		return nil, ChainKey{}, err
	}
	return okm[:32], ChainKey{Index: 0, Key: okm[32:]}, nil
}

// deriveInitialKeys turns the concatenated X3DH agreements into the first
// root key and chain key.
func deriveInitialKeys(agreements ...[]byte) ([]byte, []byte, error) {
	secret := make([]byte, 32, 32+32*len(agreements))
	for i := range secret {
		secret[i] = 0xFF
	}
	for _, a := range agreements {
		secret = append(secret, a...)
	}
	okm, err := signalcrypto.DeriveSecrets(secret, nil, infoText, 64)
	if err != nil {
		return nil, nil, err
	}
	return okm[:32], okm[32:], nil
}

// aliceParameters are the initiator's inputs to session setup.
type aliceParameters struct {
	ourIdentity     *IdentityKeyPair
	ourBaseKey      KeyPair
	theirIdentity   IdentityKey
	theirSignedPre  PublicKey
	theirOneTimePre *PublicKey
	theirRatchetKey PublicKey
}

// bobParameters are the responder's inputs to session setup.
type bobParameters struct {
	ourIdentity      *IdentityKeyPair
	ourSignedPreKey  KeyPair
	ourOneTimePreKey *KeyPair
	ourRatchetKey    KeyPair
	theirIdentity    IdentityKey
	theirBaseKey     PublicKey
}

// initializeAliceSession builds the initiator state from a peer's bundle.
func initializeAliceSession(p aliceParameters) (*SessionState, error) {
	dh1, err := p.ourIdentity.DHPrivate.Agree(p.theirSignedPre)
	if err != nil {
		return nil, err
	}
	dh2, err := p.ourBaseKey.Private.Agree(p.theirIdentity.DH)
	if err != nil {
		return nil, err
	}
	dh3, err := p.ourBaseKey.Private.Agree(p.theirSignedPre)
	if err != nil {
		return nil, err
	}
	agreements := [][]byte{dh1, dh2, dh3}
	if p.theirOneTimePre != nil {
		dh4, err := p.ourBaseKey.Private.Agree(*p.theirOneTimePre)
		if err != nil {
			return nil, err
		}
		agreements = append(agreements, dh4)
	}
	rootKey, chainKey, err := deriveInitialKeys(agreements...)
	if err != nil {
		return nil, fmt.Errorf("libsignal: derive initial keys: %w", err)
	}

	sendingRatchet, err := GenerateKeyPair()
	if err != nil {
		return nil, err
	}
	newRoot, sendingChain, err := createChain(rootKey, p.theirRatchetKey, sendingRatchet.Private)
	if err != nil {
		return nil, err
	}

	s := &SessionState{
		Version:        CiphertextVersion,
		LocalIdentity:  p.ourIdentity.Public,
		RemoteIdentity: p.theirIdentity,
		RootKey:        newRoot,
		SenderChain:    SenderChain{RatchetKey: sendingRatchet, ChainKey: sendingChain},
	}
	s.addReceiverChain(p.theirRatchetKey, ChainKey{Index: 0, Key: chainKey})
	return s, nil
}

// initializeBobSession builds the responder state from a received pre-key message.
func initializeBobSession(p bobParameters) (*SessionState, error) {
	dh1, err := p.ourSignedPreKey.Private.Agree(p.theirIdentity.DH)
	if err != nil {
		return nil, err
	}
	dh2, err := p.ourIdentity.DHPrivate.Agree(p.theirBaseKey)
	if err != nil {
		return nil, err
	}
	dh3, err := p.ourSignedPreKey.Private.Agree(p.theirBaseKey)
	if err != nil {
		return nil, err
	}
	agreements := [][]byte{dh1, dh2, dh3}
	if p.ourOneTimePreKey != nil {
		dh4, err := p.ourOneTimePreKey.Private.Agree(p.theirBaseKey)
		if err != nil {
			return nil, err
		}
		agreements = append(agreements, dh4)
	}
	rootKey, chainKey, err := deriveInitialKeys(agreements...)
	if err != nil {
		return nil, fmt.Errorf("libsignal: derive initial keys: %w", err)
	}
	return &SessionState{
		Version:        CiphertextVersion,
		LocalIdentity:  p.ourIdentity.Public,
		RemoteIdentity: p.theirIdentity,
		RootKey:        rootKey,
		SenderChain:    SenderChain{RatchetKey: p.ourRatchetKey, ChainKey: ChainKey{Index: 0, Key: chainKey}},
	}, nil
}
