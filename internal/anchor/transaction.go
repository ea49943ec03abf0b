package anchor

import (
	"github.com/gagliardetto/solana-go"
	"github.com/pkg/errors"
)

// SerializeUnsigned encodes tx in wire format without requiring signatures.
// Every required signer gets a zeroed signature slot, which is the layout
// wallets expect to fill in before submitting.
func SerializeUnsigned(tx *solana.Transaction) ([]byte, error) {
	required := int(tx.Message.Header.NumRequiredSignatures)
	if required == 0 {
		return nil, errors.New("transaction has no required signers")
	}

	unsigned := *tx
	if len(unsigned.Signatures) == 0 {
		unsigned.Signatures = make([]solana.Signature, required)
	}
	if len(unsigned.Signatures) != required {
		return nil, errors.Errorf("transaction has %d signatures, message requires %d", len(unsigned.Signatures), required)
	}

	out, err := unsigned.MarshalBinary()
	if err != nil {
		return nil, errors.Wrap(err, "marshal transaction")
	}
	return out, nil
}
