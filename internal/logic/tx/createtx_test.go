package tx

import (
	"context"
	"testing"

	"favorites-tx/internal/chain/chaintest"
	"favorites-tx/internal/config"
	"favorites-tx/internal/errorx"
	"favorites-tx/internal/favorites"
	"favorites-tx/internal/svc"
	"favorites-tx/internal/types"
	"favorites-tx/internal/wallet"

	"github.com/gagliardetto/solana-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newServiceContext(node *chaintest.Node) *svc.ServiceContext {
	return svc.NewServiceContext(config.Config{
		Chain: config.ChainConf{
			RpcEndpointUrl:    node.URL,
			ProgramAddress:    favorites.DefaultProgramID.String(),
			Commitment:        "confirmed",
			BlockhashAttempts: 1,
			HealthTimeout:     1000,
		},
	})
}

func validRequest(user solana.PublicKey) *types.CreateTxRequest {
	return &types.CreateTxRequest{
		PublicKey: user.String(),
		Number:    "42",
		Color:     "blue",
		Hobbies:   []string{"reading", "chess"},
	}
}

func TestCreateTx(t *testing.T) {
	node := chaintest.NewNode()
	defer node.Close()

	owner := solana.NewWallet()
	user := owner.PublicKey()
	l := NewCreateTx(context.Background(), newServiceContext(node))

	resp, err := l.CreateTx(validRequest(user))
	require.NoError(t, err)
	assert.Equal(t, MsgCreated, resp.Message)
	require.NotEmpty(t, resp.Transaction)
	assert.Equal(t, []string{"getLatestBlockhash"}, node.Methods())

	tx, err := solana.TransactionFromBase64(resp.Transaction)
	require.NoError(t, err)

	keys := tx.Message.AccountKeys
	assert.Equal(t, user, keys[0], "fee payer")
	assert.Equal(t, node.Blockhash, tx.Message.RecentBlockhash)
	assert.True(t, wallet.Unsigned(tx))
	assert.Len(t, tx.Signatures, 1)

	require.Len(t, tx.Message.Instructions, 1)
	ix := tx.Message.Instructions[0]
	assert.Equal(t, favorites.DefaultProgramID, keys[ix.ProgramIDIndex])
	require.Len(t, ix.Accounts, 3)

	pda, _, err := favorites.DeriveAddress(favorites.DefaultProgramID, user)
	require.NoError(t, err)
	assert.Equal(t, user, keys[ix.Accounts[0]])
	assert.Equal(t, pda, keys[ix.Accounts[1]])
	assert.Equal(t, solana.SystemProgramID, keys[ix.Accounts[2]])

	// the client can sign what it gets back
	require.NoError(t, wallet.NewKeypair(owner.PrivateKey).SignTransaction(tx))
	assert.NoError(t, tx.VerifySignatures())
}

func TestCreateTxSameInputSameAccounts(t *testing.T) {
	node := chaintest.NewNode()
	defer node.Close()

	user := solana.NewWallet().PublicKey()
	svcCtx := newServiceContext(node)

	first, err := NewCreateTx(context.Background(), svcCtx).CreateTx(validRequest(user))
	require.NoError(t, err)
	second, err := NewCreateTx(context.Background(), svcCtx).CreateTx(validRequest(user))
	require.NoError(t, err)

	// same blockhash from the fake node, so the encoding is identical
	assert.Equal(t, first.Transaction, second.Transaction)
}

func TestCreateTxErrorKinds(t *testing.T) {
	user := solana.NewWallet().PublicKey()

	cases := []struct {
		name  string
		req   func() *types.CreateTxRequest
		kind  errorx.Kind
		calls int64
	}{
		{
			name: "missing public key",
			req: func() *types.CreateTxRequest {
				r := validRequest(user)
				r.PublicKey = ""
				return r
			},
			kind: errorx.KindValidation,
		},
		{
			name: "missing number",
			req: func() *types.CreateTxRequest {
				r := validRequest(user)
				r.Number = ""
				return r
			},
			kind: errorx.KindValidation,
		},
		{
			name: "missing color",
			req: func() *types.CreateTxRequest {
				r := validRequest(user)
				r.Color = ""
				return r
			},
			kind: errorx.KindValidation,
		},
		{
			name: "nil hobbies",
			req: func() *types.CreateTxRequest {
				r := validRequest(user)
				r.Hobbies = nil
				return r
			},
			kind: errorx.KindValidation,
		},
		{
			name: "empty hobbies",
			req: func() *types.CreateTxRequest {
				r := validRequest(user)
				r.Hobbies = []string{}
				return r
			},
			kind: errorx.KindValidation,
		},
		{
			name: "bad public key",
			req: func() *types.CreateTxRequest {
				r := validRequest(user)
				r.PublicKey = "not-a-public-key"
				return r
			},
			kind: errorx.KindKeyDecode,
		},
		{
			name: "non numeric number",
			req: func() *types.CreateTxRequest {
				r := validRequest(user)
				r.Number = "forty-two"
				return r
			},
			kind: errorx.KindInstruction,
		},
		{
			name: "negative number",
			req: func() *types.CreateTxRequest {
				r := validRequest(user)
				r.Number = "-1"
				return r
			},
			kind: errorx.KindInstruction,
		},
		{
			name: "number overflows u64",
			req: func() *types.CreateTxRequest {
				r := validRequest(user)
				r.Number = "18446744073709551616"
				return r
			},
			kind: errorx.KindInstruction,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			node := chaintest.NewNode()
			defer node.Close()

			_, err := NewCreateTx(context.Background(), newServiceContext(node)).CreateTx(tc.req())
			require.Error(t, err)
			assert.Equal(t, tc.kind, errorx.KindOf(err))
			assert.Equal(t, tc.calls, node.Calls(), "no rpc before the request is known good")
		})
	}
}

func TestCreateTxNetworkOutage(t *testing.T) {
	node := chaintest.NewNode()
	defer node.Close()
	node.FailNext(-1)

	_, err := NewCreateTx(context.Background(), newServiceContext(node)).CreateTx(validRequest(solana.NewWallet().PublicKey()))
	require.Error(t, err)
	assert.Equal(t, errorx.KindNetwork, errorx.KindOf(err))
	assert.Equal(t, int64(1), node.Calls(), "no retry by default")
}
