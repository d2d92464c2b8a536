package main

import (
	"strings"
	"time"

	"pulse/config"
	"pulse/db"
	"pulse/models"
	"pulse/storage"
	"pulse/utils"
	"pulse/web"

	"github.com/gin-gonic/autotls"
	"github.com/sirupsen/logrus"
)

func main() {
	db.Init()
	models.Init()
	storage.Init()

	pageCache := utils.NewPageCache(time.Duration(config.CACHE_TTL) * time.Second)
	router := web.NewEngine(pageCache)

	var err error
	if config.TLS_DOMAINS != "" {
		err = autotls.Run(router, strings.Split(config.TLS_DOMAINS, ",")...)
	} else {
		err = router.Run(config.BIND_ADDRESS)
	}
	logrus.Fatalf("Server stopped: %v", err)
}
