package favorites

import (
	_ "embed"
	"math/big"
	"strings"
	"sync"

	"favorites-tx/internal/anchor"
	"favorites-tx/internal/wallet"

	"github.com/gagliardetto/solana-go"
	"github.com/pkg/errors"
)

const (
	MethodSetFavorites = "setFavorites"
	// Seed prefixes the user key when deriving the favorites account.
	Seed = "favorites"
)

var DefaultProgramID = solana.MustPublicKeyFromBase58("E6t9eu8HpaFx6PymgHuPPrGwMegFYrCdLa4EeejjE4ji")

//go:embed idl/favorites.json
var idlJSON []byte

var loadIdl = sync.OnceValues(func() (*anchor.Idl, error) {
	return anchor.ParseIdl(idlJSON)
})

// Idl returns the favorites program interface description.
func Idl() (*anchor.Idl, error) {
	return loadIdl()
}

// NewProgram returns a program context for the favorites program that can
// encode calls on behalf of identity but has no way to sign them.
func NewProgram(programID solana.PublicKey, identity wallet.Identity) (*anchor.Program, error) {
	idl, err := Idl()
	if err != nil {
		return nil, err
	}
	return anchor.NewProgram(idl, programID, identity), nil
}

// DeriveAddress finds the PDA holding user's favorites under programID.
func DeriveAddress(programID, user solana.PublicKey) (solana.PublicKey, uint8, error) {
	return solana.FindProgramAddress([][]byte{
		[]byte(Seed),
		user.Bytes(),
	}, programID)
}

type SetFavoritesArgs struct {
	Number  *big.Int
	Color   string
	Hobbies []string
}

// ParseNumber reads the decimal favorite number without size limits; range
// is checked against the IDL type when the instruction is encoded.
func ParseNumber(s string) (*big.Int, error) {
	n, ok := new(big.Int).SetString(strings.TrimSpace(s), 10)
	if !ok {
		return nil, errors.Errorf("number %q is not a decimal integer", s)
	}
	return n, nil
}

// NewSetFavoritesInstruction encodes setFavorites writing args to the
// favorites account of the program's identity. The system program is passed
// so the program can create the account on first use.
func NewSetFavoritesInstruction(program *anchor.Program, favoritesPda solana.PublicKey, args SetFavoritesArgs) (*anchor.Instruction, error) {
	return program.Method(MethodSetFavorites, args.Number, args.Color, args.Hobbies).
		Accounts(anchor.Accounts{
			"user":          program.Identity().PublicKey(),
			"favorites":     favoritesPda,
			"systemProgram": solana.SystemProgramID,
		}).
		Instruction()
}
