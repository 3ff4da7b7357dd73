package main

import (
	"log"

	"github.com/sqlping/sqlping/internal/config"
	"github.com/sqlping/sqlping/internal/styles"
)

func main() {
	cfg, err := config.LoadConfig(config.CfgFile)
	if err != nil {
		log.Fatal("Could not load config file: ", err)
	}
	styles.ApplyAccent(cfg.Style.Accent)

	NewApp(cfg).Run()
}
