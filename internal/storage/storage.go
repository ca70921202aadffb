package storage

import (
	"os"
	"sync"

	"taskhive/internal/config"
	"taskhive/internal/util/logger"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gorm_logger "gorm.io/gorm/logger"
)

var (
	once sync.Once
	db   *gorm.DB
)

func GetDb() *gorm.DB {
	once.Do(func() {
		log := logger.GetLogger()

		connection, err := gorm.Open(postgres.Open(config.GetEnv().DatabaseDsn), &gorm.Config{
			Logger: gorm_logger.Default.LogMode(gorm_logger.Silent),
		})
		if err != nil {
			log.Error("Failed to connect to database", "error", err)
			os.Exit(1)
		}

		sqlDb, err := connection.DB()
		if err != nil {
			log.Error("Failed to access database connection pool", "error", err)
			os.Exit(1)
		}

		sqlDb.SetMaxOpenConns(25)
		sqlDb.SetMaxIdleConns(10)

		db = connection
	})

	return db
}
