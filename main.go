package main

import (
	"bitwise74/resume-api/app"
	"bitwise74/resume-api/config"
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Setup()
	if err != nil {
		if errors.Is(err, config.ErrNoSecret) {
			fmt.Printf("No JWT secret configured. Set jwt.secret (or JWT_SECRET) to a random value, for example:\n\n%s\n", config.GenSecret())
			os.Exit(1)
		}

		panic(err)
	}

	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	a, err := app.NewRouter(cfg)
	if err != nil {
		panic(err)
	}
	defer a.Close()

	addr := ":" + strconv.Itoa(cfg.Host.Port)
	zap.L().Info("Server starting", zap.String("addr", addr), zap.Bool("ssl", cfg.Host.SSL.Enabled))

	if cfg.Host.SSL.Enabled {
		err = a.Router.RunTLS(addr, cfg.Host.SSL.CertificatePath, cfg.Host.SSL.CertificateKeyPath)
	} else {
		err = a.Router.Run(addr)
	}

	if err != nil {
		zap.L().Fatal("Server stopped", zap.Error(err))
	}
}
