package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	_ "time/tzdata"

	"github.com/disgoorg/disgo/bot"

	_ "github.com/leeineian/alpha/home"
	_ "github.com/leeineian/alpha/proc"
	"github.com/leeineian/alpha/sys"
)

func main() {
	// LogFatal panics so deferred cleanup runs; turn it into exit status 1 here.
	defer func() {
		if r := recover(); r != nil {
			if msg, ok := r.(string); ok {
				fmt.Fprintf(os.Stderr, "\n"+sys.MsgBotFatalRecovery+"\n", msg)
				os.Exit(1)
			}
			panic(r)
		}
	}()

	silent := flag.Bool("silent", false, "Disable all log output")
	skipReg := flag.Bool("skip-reg", false, "Skip command registration")
	logFile := flag.Bool("log-file", false, "Also write logs to <binary>.log")
	flag.Parse()

	cfg, err := sys.LoadConfig()
	if err != nil {
		sys.LogFatal(sys.MsgBotConfigFail, err)
	}
	sys.InitLogger(*silent || cfg.Silent, *logFile)
	sys.LogInfo(sys.MsgBotStarting, sys.GetProjectName())

	if err := sys.InitDatabase(context.Background(), cfg.DatabasePath); err != nil {
		sys.LogFatal(sys.MsgBotDatabaseFail, err)
	}
	defer sys.CloseDatabase()

	sys.InitStores(cfg.DataDir)

	if err := run(cfg, *silent, *skipReg); err != nil {
		sys.LogFatal("%v", err)
	}
}

func run(cfg *sys.Config, silent bool, skipReg bool) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	defer stop()

	sys.SetAppContext(ctx)

	client, err := sys.CreateClient(ctx, cfg)
	if err != nil {
		return fmt.Errorf(sys.MsgBotClientFail, err)
	}
	defer client.Close(context.Background())

	if !skipReg {
		if err := sys.RegisterCommands(ctx, client, cfg.GuildID); err != nil {
			sys.LogError(sys.MsgBotRegisterFail, err)
		}
	}

	if err := client.OpenGateway(ctx); err != nil {
		return fmt.Errorf(sys.MsgBotGatewayFail, err)
	}

	<-ctx.Done()
	if !silent {
		fmt.Println()
	}

	sys.ShutdownDaemons(context.Background())

	sys.LogInfo(sys.MsgBotShutdown, shutdownName(client))
	return nil
}

// shutdownName prefers the live session user, then the name cached at the last ready event.
func shutdownName(client *bot.Client) string {
	if botUser, ok := client.Caches.SelfUser(); ok {
		return botUser.Username
	}
	return sys.CachedBotName(context.Background())
}
