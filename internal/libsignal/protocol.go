package libsignal

import (
	"errors"
	"fmt"
	"time"

	"github.com/gwillem/whatsapp-go/internal/signalcrypto"
)

// ErrInvalidSignature is returned when a bundle's signed pre-key signature does not verify.
var ErrInvalidSignature = errors.New("libsignal: invalid signed pre-key signature")

func checkTrust(identityStore IdentityKeyStore, address Address, key IdentityKey, dir Direction) error {
	trusted, err := identityStore.IsTrustedIdentity(address, key, dir)
	if err != nil {
		return fmt.Errorf("libsignal: trust check: %w", err)
	}
	if !trusted {
		return &UntrustedIdentityError{Address: address}
	}
	return nil
}

// ProcessPreKeyBundle establishes an initiator session from a pre-key bundle.
// The new state replaces any open session for address; older states are archived.
func ProcessPreKeyBundle(
	bundle *PreKeyBundle,
	address Address,
	sessionStore SessionStore,
	identityStore IdentityKeyStore,
	now time.Time,
) error {
	if err := checkTrust(identityStore, address, bundle.IdentityKey, DirectionSending); err != nil {
		return err
	}
	if !bundle.IdentityKey.Verify(bundle.SignedPreKey.Serialize(), bundle.SignedPreKeySignature) {
		return ErrInvalidSignature
	}

	record, err := sessionStore.LoadSession(address)
	if err != nil {
		return fmt.Errorf("libsignal: load session: %w", err)
	}
	if record == nil {
		record = new(SessionRecord)
	}

	ourIdentity, err := identityStore.GetIdentityKeyPair()
	if err != nil {
		return fmt.Errorf("libsignal: local identity: %w", err)
	}
	localRegID, err := identityStore.GetLocalRegistrationID()
	if err != nil {
		return fmt.Errorf("libsignal: local registration id: %w", err)
	}
	baseKey, err := GenerateKeyPair()
	if err != nil {
		return err
	}

	state, err := initializeAliceSession(aliceParameters{
		ourIdentity:     ourIdentity,
		ourBaseKey:      baseKey,
		theirIdentity:   bundle.IdentityKey,
		theirSignedPre:  bundle.SignedPreKey,
		theirOneTimePre: bundle.PreKey,
		theirRatchetKey: bundle.SignedPreKey,
	})
	if err != nil {
		return err
	}
	state.Pending = &PendingPreKey{
		HasPreKeyID:    bundle.PreKey != nil,
		PreKeyID:       bundle.PreKeyID,
		SignedPreKeyID: bundle.SignedPreKeyID,
		BaseKey:        baseKey.Public,
	}
	state.LocalRegistrationID = localRegID
	state.RemoteRegistrationID = bundle.RegistrationID
	state.AliceBaseKey = baseKey.Public.Serialize()
	record.PromoteState(state)

	if _, err := identityStore.SaveIdentityKey(address, bundle.IdentityKey); err != nil {
		return fmt.Errorf("libsignal: save identity: %w", err)
	}
	if err := sessionStore.StoreSession(address, record); err != nil {
		return fmt.Errorf("libsignal: store session: %w", err)
	}
	return nil
}

// Encrypt encrypts plaintext for the given address, advancing the sending chain.
// The result is a PreKeyType message until the peer has answered.
func Encrypt(
	plaintext []byte,
	address Address,
	sessionStore SessionStore,
	identityStore IdentityKeyStore,
	now time.Time,
) (*CiphertextMessage, error) {
	record, err := sessionStore.LoadSession(address)
	if err != nil {
		return nil, fmt.Errorf("libsignal: load session: %w", err)
	}
	if record == nil {
		return nil, &NoSessionError{Address: address}
	}
	state := record.Current
	if !state.HasUsableSenderChain() {
		return nil, &NoOpenSessionError{Address: address}
	}
	if err := checkTrust(identityStore, address, state.RemoteIdentity, DirectionSending); err != nil {
		return nil, err
	}

	chain := state.SenderChain.ChainKey
	keys, err := chain.MessageKeys()
	if err != nil {
		return nil, err
	}
	ciphertext, err := signalcrypto.EncryptAESCBC(keys.CipherKey, keys.IV, plaintext)
	if err != nil {
		return nil, fmt.Errorf("libsignal: encrypt: %w", err)
	}
	msg, err := newSignalMessage(keys.MacKey, state.SenderChain.RatchetKey.Public, chain.Index,
		state.PreviousCounter, ciphertext, state.LocalIdentity, state.RemoteIdentity)
	if err != nil {
		return nil, err
	}

	out := &CiphertextMessage{typ: WhisperType, data: msg.Serialize()}
	if state.Pending != nil {
		pkmsg, err := newPreKeySignalMessage(state.LocalRegistrationID, state.Pending, state.LocalIdentity, msg)
		if err != nil {
			return nil, err
		}
		out = &CiphertextMessage{typ: PreKeyType, data: pkmsg.Serialize()}
	}

	state.SenderChain.ChainKey = chain.Next()
	if _, err := identityStore.SaveIdentityKey(address, state.RemoteIdentity); err != nil {
		return nil, fmt.Errorf("libsignal: save identity: %w", err)
	}
	if err := sessionStore.StoreSession(address, record); err != nil {
		return nil, fmt.Errorf("libsignal: store session: %w", err)
	}
	return out, nil
}

// DecryptPreKeyMessage decrypts a pre-key message, completing (or re-keying)
// the session and consuming the referenced one-time pre-key.
func DecryptPreKeyMessage(
	message *PreKeySignalMessage,
	address Address,
	sessionStore SessionStore,
	identityStore IdentityKeyStore,
	preKeyStore PreKeyStore,
	signedPreKeyStore SignedPreKeyStore,
) ([]byte, error) {
	record, err := sessionStore.LoadSession(address)
	if err != nil {
		return nil, fmt.Errorf("libsignal: load session: %w", err)
	}
	if record == nil {
		record = new(SessionRecord)
	}
	if err := checkTrust(identityStore, address, message.IdentityKey, DirectionReceiving); err != nil {
		return nil, err
	}

	consumedPreKey := false
	if !record.HasSessionState(CiphertextVersion, message.BaseKey.Serialize()) {
		signed, err := signedPreKeyStore.LoadSignedPreKey(message.SignedPreKeyID)
		if err != nil {
			return nil, fmt.Errorf("libsignal: load signed pre-key: %w", err)
		}
		if signed == nil {
			return nil, &InvalidKeyIDError{Kind: "signed pre-key", ID: message.SignedPreKeyID}
		}
		var oneTime *KeyPair
		if message.HasPreKeyID {
			pk, err := preKeyStore.LoadPreKey(message.PreKeyID)
			if err != nil {
				return nil, fmt.Errorf("libsignal: load pre-key: %w", err)
			}
			if pk == nil {
				return nil, &InvalidKeyIDError{Kind: "pre-key", ID: message.PreKeyID}
			}
			oneTime = &pk.KeyPair
			consumedPreKey = true
		}
		ourIdentity, err := identityStore.GetIdentityKeyPair()
		if err != nil {
			return nil, fmt.Errorf("libsignal: local identity: %w", err)
		}
		localRegID, err := identityStore.GetLocalRegistrationID()
		if err != nil {
			return nil, fmt.Errorf("libsignal: local registration id: %w", err)
		}
		state, err := initializeBobSession(bobParameters{
			ourIdentity:      ourIdentity,
			ourSignedPreKey:  signed.KeyPair,
			ourOneTimePreKey: oneTime,
			ourRatchetKey:    signed.KeyPair,
			theirIdentity:    message.IdentityKey,
			theirBaseKey:     message.BaseKey,
		})
		if err != nil {
			return nil, err
		}
		state.LocalRegistrationID = localRegID
		state.RemoteRegistrationID = message.RegistrationID
		state.AliceBaseKey = message.BaseKey.Serialize()
		record, err = record.Clone()
		if err != nil {
			return nil, err
		}
		record.PromoteState(state)
	}

	plaintext, updated, err := decryptWithRecord(record, message.Message, address)
	if err != nil {
		return nil, err
	}

	if _, err := identityStore.SaveIdentityKey(address, message.IdentityKey); err != nil {
		return nil, fmt.Errorf("libsignal: save identity: %w", err)
	}
	if err := sessionStore.StoreSession(address, updated); err != nil {
		return nil, fmt.Errorf("libsignal: store session: %w", err)
	}
	if consumedPreKey {
		if err := preKeyStore.RemovePreKey(message.PreKeyID); err != nil {
			return nil, fmt.Errorf("libsignal: remove pre-key: %w", err)
		}
	}
	return plaintext, nil
}

// DecryptMessage decrypts a ratchet message on an established session.
// A failed decrypt leaves the stored session untouched.
func DecryptMessage(
	message *SignalMessage,
	address Address,
	sessionStore SessionStore,
	identityStore IdentityKeyStore,
) ([]byte, error) {
	record, err := sessionStore.LoadSession(address)
	if err != nil {
		return nil, fmt.Errorf("libsignal: load session: %w", err)
	}
	if record == nil {
		return nil, &NoSessionError{Address: address}
	}
	plaintext, updated, err := decryptWithRecord(record, message, address)
	if err != nil {
		return nil, err
	}
	if err := checkTrust(identityStore, address, updated.Current.RemoteIdentity, DirectionReceiving); err != nil {
		return nil, err
	}
	if _, err := identityStore.SaveIdentityKey(address, updated.Current.RemoteIdentity); err != nil {
		return nil, fmt.Errorf("libsignal: save identity: %w", err)
	}
	if err := sessionStore.StoreSession(address, updated); err != nil {
		return nil, fmt.Errorf("libsignal: store session: %w", err)
	}
	return plaintext, nil
}

// decryptWithRecord tries the current state, then each archived state, each
// on a fresh copy of the record. A state that decrypts an archived message is
// promoted to current.
func decryptWithRecord(record *SessionRecord, msg *SignalMessage, address Address) ([]byte, *SessionRecord, error) {
	if record.Current == nil && len(record.Previous) == 0 {
		return nil, nil, &NoSessionError{Address: address}
	}
	var firstErr error
	for i := -1; i < len(record.Previous); i++ {
		work, err := record.Clone()
		if err != nil {
			return nil, nil, err
		}
		state := work.Current
		if i >= 0 {
			state = work.Previous[i]
		}
		if state == nil {
			continue
		}
		plaintext, err := decryptWithState(state, msg, address)
		if err != nil {
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		if i >= 0 {
			work.Previous = append(work.Previous[:i], work.Previous[i+1:]...)
			work.PromoteState(state)
		}
		return plaintext, work, nil
	}
	return nil, nil, firstErr
}

func decryptWithState(state *SessionState, msg *SignalMessage, address Address) ([]byte, error) {
	if len(state.RootKey) == 0 {
		return nil, &NoOpenSessionError{Address: address}
	}
	chainKey, err := receiverChainKey(state, msg.RatchetKey)
	if err != nil {
		return nil, err
	}
	keys, err := messageKeysFor(state, msg.RatchetKey, chainKey, msg.Counter, address)
	if err != nil {
		return nil, err
	}
	if err := msg.verifyMAC(state.RemoteIdentity, state.LocalIdentity, keys.MacKey); err != nil {
		return nil, err
	}
	plaintext, err := signalcrypto.DecryptAESCBC(keys.CipherKey, keys.IV, msg.Ciphertext)
	if err != nil {
		return nil, invalidMessage("decrypt body", err)
	}
	state.Pending = nil
	return plaintext, nil
}

// receiverChainKey returns the chain for theirRatchet, performing a DH
// ratchet step when the key is new.
func receiverChainKey(state *SessionState, theirRatchet PublicKey) (ChainKey, error) {
	if _, chain := state.receiverChain(theirRatchet); chain != nil {
		return chain.ChainKey, nil
	}
	rootKey, receiving, err := createChain(state.RootKey, theirRatchet, state.SenderChain.RatchetKey.Private)
	if err != nil {
		return ChainKey{}, err
	}
	ourNew, err := GenerateKeyPair()
	if err != nil {
		return ChainKey{}, err
	}
	rootKey, sending, err := createChain(rootKey, theirRatchet, ourNew.Private)
	if err != nil {
		return ChainKey{}, err
	}
	state.RootKey = rootKey
	state.addReceiverChain(theirRatchet, receiving)
	if idx := state.SenderChain.ChainKey.Index; idx > 0 {
		state.PreviousCounter = idx - 1
	} else {
		state.PreviousCounter = 0
	}
	state.SenderChain = SenderChain{RatchetKey: ourNew, ChainKey: sending}
	return receiving, nil
}

func messageKeysFor(state *SessionState, theirRatchet PublicKey, chainKey ChainKey, counter uint32, address Address) (MessageKeys, error) {
	_, chain := state.receiverChain(theirRatchet)
	if chain == nil {
		return MessageKeys{}, invalidMessage("missing receiver chain", nil)
	}
	if chainKey.Index > counter {
		if keys, ok := chain.takeMessageKeys(counter); ok {
			return keys, nil
		}
		return MessageKeys{}, &ProtocolDesyncError{Address: address, Counter: counter, Reason: "duplicate message"}
	}
	if counter-chainKey.Index > maxMessageKeysSkip {
		return MessageKeys{}, &ProtocolDesyncError{Address: address, Counter: counter, Reason: "message too far in the future"}
	}
	for chainKey.Index < counter {
		keys, err := chainKey.MessageKeys()
		if err != nil {
			return MessageKeys{}, err
		}
		chain.storeMessageKeys(keys)
		chainKey = chainKey.Next()
	}
	keys, err := chainKey.MessageKeys()
	if err != nil {
		return MessageKeys{}, err
	}
	chain.ChainKey = chainKey.Next()
	return keys, nil
}
