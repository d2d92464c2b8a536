package db

import (
	"pulse/config"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var Instance *gorm.DB

func Init() {
	var err error
	if config.MYSQL_DSN != "" {
		Instance, err = gorm.Open(mysql.Open(config.MYSQL_DSN), &gorm.Config{
			SkipDefaultTransaction: true,
			PrepareStmt:            true,
			TranslateError:         true,
		})
	} else {
		Instance, err = gorm.Open(sqlite.Open(config.SQLITE_FILE), &gorm.Config{
			TranslateError: true,
		})
	}
	if err != nil || Instance == nil {
		logrus.Fatalf("Cannot open database: %v", err)
	}
}
