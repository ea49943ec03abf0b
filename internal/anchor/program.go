package anchor

import (
	"favorites-tx/internal/wallet"

	bin "github.com/gagliardetto/binary"
	"github.com/gagliardetto/solana-go"
	"github.com/pkg/errors"
)

// Program binds an IDL to a deployed program id and the identity that will
// pay for and sign transactions built against it. It only ever sees an
// Identity, so it can encode calls but never sign them.
type Program struct {
	idl       *Idl
	programID solana.PublicKey
	identity  wallet.Identity
}

func NewProgram(idl *Idl, programID solana.PublicKey, identity wallet.Identity) *Program {
	return &Program{
		idl:       idl,
		programID: programID,
		identity:  identity,
	}
}

func (p *Program) ProgramID() solana.PublicKey {
	return p.programID
}

func (p *Program) Identity() wallet.Identity {
	return p.identity
}

// Accounts maps IDL account names to addresses.
type Accounts map[string]solana.PublicKey

type MethodBuilder struct {
	program  *Program
	name     string
	args     []any
	accounts Accounts
}

func (p *Program) Method(name string, args ...any) *MethodBuilder {
	return &MethodBuilder{
		program: p,
		name:    name,
		args:    args,
	}
}

func (b *MethodBuilder) Accounts(accounts Accounts) *MethodBuilder {
	b.accounts = accounts
	return b
}

// Instruction resolves accounts in IDL order and encodes the call eagerly,
// so bad args surface here instead of at transaction compile time.
func (b *MethodBuilder) Instruction() (*Instruction, error) {
	def, err := b.program.idl.Instruction(b.name)
	if err != nil {
		return nil, err
	}

	items := def.FlatAccounts()
	instruction := &Instruction{
		Def:              def,
		Args:             b.args,
		AccountMetaSlice: make(solana.AccountMetaSlice, 0, len(items)),
		programID:        b.program.programID,
	}
	instruction.BaseVariant = bin.BaseVariant{
		Impl: instruction,
	}

	for _, item := range items {
		key, ok := b.accounts[item.Name]
		if !ok {
			if item.Optional {
				// anchor passes the program id for an omitted optional account
				key = b.program.programID
			} else {
				return nil, errors.Errorf("%s: missing account %q", b.name, item.Name)
			}
		}
		meta := solana.Meta(key)
		if item.IsMut {
			meta = meta.WRITE()
		}
		if item.IsSigner {
			meta = meta.SIGNER()
		}
		instruction.AccountMetaSlice = append(instruction.AccountMetaSlice, meta)
	}

	if _, err := instruction.Data(); err != nil {
		return nil, errors.Wrap(err, b.name)
	}
	return instruction, nil
}

// Transaction wraps instructions in an unsigned legacy transaction paid for
// by the program's identity.
func (p *Program) Transaction(recentBlockhash solana.Hash, instructions ...solana.Instruction) (*solana.Transaction, error) {
	if len(instructions) == 0 {
		return nil, errors.New("transaction needs at least one instruction")
	}
	return solana.NewTransaction(
		instructions,
		recentBlockhash,
		solana.TransactionPayer(p.identity.PublicKey()),
	)
}
