package database

import (
	"fmt"
	"log"

	"github.com/Sspung/AIMatchMaker/internal/config"
	"github.com/Sspung/AIMatchMaker/internal/model"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func InitDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s&parseTime=%t&loc=Local",
		cfg.User,
		cfg.Password,
		cfg.Host,
		cfg.Port,
		cfg.DBName,
		cfg.Charset,
		cfg.ParseTime,
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
	})

	if err != nil {
		return nil, err
	}

	log.Println("Database connection established")

	err = db.AutoMigrate(
		&model.User{},
		&model.AiTool{},
		&model.AiBundle{},
		&model.QuizQuestion{},
		&model.UsageStat{},
		&model.UserFavorite{},
		&model.CustomPackage{},
	)

	if err != nil {
		return nil, err
	}

	log.Println("Database migration completed")

	if err := seedDefaults(db); err != nil {
		return nil, err
	}

	return db, nil
}
