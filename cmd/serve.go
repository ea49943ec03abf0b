package cmd

import (
	"context"

	"favorites-tx/internal/config"
	"favorites-tx/internal/errorx"
	"favorites-tx/internal/handler"
	"favorites-tx/internal/svc"

	"github.com/common-nighthawk/go-figure"
	"github.com/spf13/cobra"
	"github.com/zeromicro/go-zero/core/conf"
	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/go-zero/core/service"
	"github.com/zeromicro/go-zero/rest"
	"github.com/zeromicro/go-zero/rest/httpx"
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "favorites-tx serve",
	Long:  `Start the HTTP API that builds unsigned setFavorites transactions.`,
	Run: func(cmd *cobra.Command, args []string) {
		Start(cfgFile)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func loadConfig(cfgFile string) config.Config {
	var c config.Config
	conf.MustLoad(cfgFile, &c, conf.UseEnv())
	return c
}

func tryLoadConfig(cfgFile string) (config.Config, error) {
	var c config.Config
	err := conf.Load(cfgFile, &c, conf.UseEnv())
	return c, err
}

func Start(cfgFile string) {
	c := loadConfig(cfgFile)
	logx.MustSetup(c.Log.LogConf)
	logx.AddGlobalFields(logx.Field("program", c.Chain.ProgramAddress))

	svcCtx := svc.NewServiceContext(c)
	start(svcCtx)
}

func start(svcCtx *svc.ServiceContext) {
	server := rest.MustNewServer(svcCtx.Config.Rest.RestConf)
	httpx.SetErrorHandlerCtx(func(ctx context.Context, err error) (int, any) {
		return errorx.Response(err)
	})
	handler.RegisterHandlers(server, svcCtx)

	group := service.NewServiceGroup()
	group.Add(server)

	printBanner(svcCtx.Config.Banner)
	logx.Infof("Starting rest server at %s:%d, rpc %s", svcCtx.Config.Rest.Host, svcCtx.Config.Rest.Port, svcCtx.Config.Chain.RpcEndpointUrl)
	group.Start()
}

func printBanner(c config.BannerConf) {
	figure.NewColorFigure(c.Text, c.FontName, c.Color, true).Print()
}
