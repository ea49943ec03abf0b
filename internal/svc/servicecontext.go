package svc

import (
	"favorites-tx/internal/chain"
	"favorites-tx/internal/config"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
	"github.com/go-playground/validator/v10"
)

type ServiceContext struct {
	Config config.Config

	Chain      chain.BlockhashSource
	ProgramID  solana.PublicKey
	Commitment rpc.CommitmentType
	Validator  *validator.Validate
}

func NewServiceContext(c config.Config) *ServiceContext {
	return &ServiceContext{
		Config:     c,
		Chain:      chain.NewClient(c.Chain),
		ProgramID:  solana.MustPublicKeyFromBase58(c.Chain.ProgramAddress),
		Commitment: rpc.CommitmentType(c.Chain.Commitment),
		Validator:  validator.New(),
	}
}
