package tx

import (
	"context"
	"encoding/base64"

	"favorites-tx/internal/anchor"
	"favorites-tx/internal/chain"
	"favorites-tx/internal/errorx"
	"favorites-tx/internal/favorites"
	"favorites-tx/internal/svc"
	"favorites-tx/internal/types"
	"favorites-tx/internal/wallet"

	"github.com/zeromicro/go-zero/core/logx"
)

const MsgCreated = "Transaction created successfully"

type CreateTx struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewCreateTx(ctx context.Context, svcCtx *svc.ServiceContext) *CreateTx {
	return &CreateTx{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

// CreateTx builds an unsigned setFavorites transaction for req.PublicKey and
// returns it base64 encoded. Nothing is signed or submitted.
func (l *CreateTx) CreateTx(req *types.CreateTxRequest) (resp *types.CreateTxResponse, err error) {
	defer func() {
		if err != nil {
			l.Errorw("create transaction failed",
				logx.Field("kind", errorx.KindOf(err).String()),
				logx.Field("publicKey", req.PublicKey),
				logx.Field("error", err.Error()),
			)
		}
	}()

	if err = l.svcCtx.Validator.StructCtx(l.ctx, req); err != nil {
		return nil, errorx.Validation(err.Error())
	}

	user, err := wallet.ParsePublicKey(req.PublicKey)
	if err != nil {
		return nil, errorx.Wrap(errorx.KindKeyDecode, err, "decode public key")
	}

	programID := l.svcCtx.ProgramID
	program, err := favorites.NewProgram(programID, wallet.NewReadOnly(user))
	if err != nil {
		return nil, errorx.Wrap(errorx.KindInstruction, err, "load program")
	}

	pda, _, err := favorites.DeriveAddress(programID, user)
	if err != nil {
		return nil, errorx.Wrap(errorx.KindInstruction, err, "derive favorites address")
	}

	number, err := favorites.ParseNumber(req.Number)
	if err != nil {
		return nil, errorx.Wrap(errorx.KindInstruction, err, "parse number")
	}

	ix, err := favorites.NewSetFavoritesInstruction(program, pda, favorites.SetFavoritesArgs{
		Number:  number,
		Color:   req.Color,
		Hobbies: req.Hobbies,
	})
	if err != nil {
		return nil, errorx.Wrap(errorx.KindInstruction, err, "build setFavorites")
	}

	recent, err := chain.LatestBlockhash(l.ctx, l.svcCtx.Chain, l.svcCtx.Commitment, l.svcCtx.Config.Chain.BlockhashAttempts)
	if err != nil {
		return nil, errorx.New(errorx.KindNetwork, err)
	}

	tx, err := program.Transaction(recent.Hash, ix)
	if err != nil {
		return nil, errorx.Wrap(errorx.KindSerialization, err, "assemble transaction")
	}

	raw, err := anchor.SerializeUnsigned(tx)
	if err != nil {
		return nil, errorx.New(errorx.KindSerialization, err)
	}

	l.Infof("built setFavorites tx for %s favorites=%s blockhash=%s", user, pda, recent.Hash)

	return &types.CreateTxResponse{
		Transaction: base64.StdEncoding.EncodeToString(raw),
		Message:     MsgCreated,
	}, nil
}
