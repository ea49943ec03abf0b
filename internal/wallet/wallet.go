package wallet

import (
	"github.com/gagliardetto/solana-go"
	"github.com/mr-tron/base58"
	"github.com/pkg/errors"
)

// Identity is what the program context needs from a wallet: who pays and signs.
// It exposes no signing capability.
type Identity interface {
	PublicKey() solana.PublicKey
}

// Signer is an Identity that can also sign transactions.
type Signer interface {
	Identity
	SignTransaction(tx *solana.Transaction) error
}

// ReadOnly carries a client's public key for building transactions that the
// client signs elsewhere.
type ReadOnly struct {
	key solana.PublicKey
}

func NewReadOnly(key solana.PublicKey) *ReadOnly {
	return &ReadOnly{key: key}
}

func (w *ReadOnly) PublicKey() solana.PublicKey {
	return w.key
}

// Keypair signs with a locally held private key.
type Keypair struct {
	key solana.PrivateKey
}

func NewKeypair(key solana.PrivateKey) *Keypair {
	return &Keypair{key: key}
}

func (w *Keypair) PublicKey() solana.PublicKey {
	return w.key.PublicKey()
}

func (w *Keypair) SignTransaction(tx *solana.Transaction) error {
	pub := w.key.PublicKey()
	if Unsigned(tx) {
		// drop zeroed placeholder slots so Sign lays out a fresh set
		tx.Signatures = nil
	}
	_, err := tx.Sign(func(key solana.PublicKey) *solana.PrivateKey {
		if key.Equals(pub) {
			return &w.key
		}
		return nil
	})
	return err
}

// Unsigned reports whether tx carries no populated signature.
func Unsigned(tx *solana.Transaction) bool {
	for _, sig := range tx.Signatures {
		if sig != (solana.Signature{}) {
			return false
		}
	}
	return true
}

// ParsePublicKey decodes a base58 ed25519 public key.
func ParsePublicKey(s string) (solana.PublicKey, error) {
	raw, err := base58.Decode(s)
	if err != nil {
		return solana.PublicKey{}, errors.Wrapf(err, "invalid base58 public key %q", s)
	}
	if len(raw) != solana.PublicKeyLength {
		return solana.PublicKey{}, errors.Errorf("invalid public key length: expected %d bytes, got %d", solana.PublicKeyLength, len(raw))
	}
	return solana.PublicKeyFromBytes(raw), nil
}

var (
	_ Identity = (*ReadOnly)(nil)
	_ Signer   = (*Keypair)(nil)
)
