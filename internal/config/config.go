package config

import (
	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/go-zero/rest"
)

type Config struct {
	Rest   RestConf
	Log    LogConf
	Banner BannerConf
	Chain  ChainConf
}

type RestConf struct {
	rest.RestConf
}

type LogConf struct {
	logx.LogConf
}

type BannerConf struct {
	Text     string `json:",default=FAVORITES"`
	Color    string `json:",default=green"`
	FontName string `json:",default=starwars,options=big|larry3d|starwars|standard"`
}

// ChainConf binds the service to one RPC node and one deployed favorites program.
type ChainConf struct {
	RpcEndpointUrl string `json:",default=https://rpc.testnet.soo.network/rpc"`
	ProgramAddress string `json:",default=E6t9eu8HpaFx6PymgHuPPrGwMegFYrCdLa4EeejjE4ji"`
	Commitment     string `json:",default=confirmed,options=processed|confirmed|finalized"`
	// BlockhashAttempts of 1 means a failed fetch is returned as is.
	BlockhashAttempts uint  `json:",default=1"`
	HealthTimeout     int64 `json:",default=3000"` // milliseconds
}
