package anchor

import (
	"bytes"
	"fmt"

	bin "github.com/gagliardetto/binary"
	"github.com/gagliardetto/solana-go"
)

// Instruction is one IDL method call: discriminator followed by borsh args.
type Instruction struct {
	bin.BaseVariant
	Def                     *IdlInstruction
	Args                    []any
	solana.AccountMetaSlice `bin:"-" borsh_skip:"true"`

	programID solana.PublicKey
}

func (inst *Instruction) ProgramID() solana.PublicKey {
	return inst.programID
}

func (inst *Instruction) Accounts() (out []*solana.AccountMeta) {
	return inst.Impl.(solana.AccountsGettable).GetAccounts()
}

func (inst *Instruction) Data() ([]byte, error) {
	buf := new(bytes.Buffer)
	if err := bin.NewBorshEncoder(buf).Encode(inst); err != nil {
		return nil, fmt.Errorf("unable to encode instruction: %w", err)
	}
	return buf.Bytes(), nil
}

func (inst *Instruction) MarshalWithEncoder(encoder *bin.Encoder) (err error) {
	disc := inst.Def.Discriminator()
	err = encoder.WriteBytes(disc[:], false)
	if err != nil {
		return err
	}
	return EncodeArgs(encoder, inst.Def.Args, inst.Args)
}

var _ solana.Instruction = (*Instruction)(nil)
