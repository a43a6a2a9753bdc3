package main

import (
	"fmt"

	fatihcolor "github.com/fatih/color"
	"github.com/ratel-online/core/log"
	"github.com/ratel-online/core/util/async"

	"github.com/ratel-online/uno/config"
	"github.com/ratel-online/uno/service"
	"github.com/ratel-online/uno/state"
	"github.com/ratel-online/uno/ui"
)

func main() {
	defer func() {
		if err := recover(); err != nil {
			fmt.Println("main", err)
			async.PrintStackTrace(err)
		}
	}()
	cfg, err := config.Load()
	if err != nil {
		log.Error(err)
		return
	}
	if cfg.NoColor {
		fatihcolor.NoColor = true
	}
	ui.RegisterAnnouncer()
	session := service.NewSession(cfg)
	_ = state.Run(session)
}
