// file: database/connect.go
package database

import (
	"log"
	"os"
	"time"

	"github.com/GIT-Pushers/Devs-sub000/models"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

var DB *gorm.DB

func Connect() {
	var err error
	dsn := os.Getenv("MYSQL_DSN")
	if dsn == "" {
		dsn = "root:123456@tcp(localhost:3306)/hackhub?charset=utf8mb4&parseTime=True&loc=Local"
	}
	DB, err = gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// 配置连接池，ConnMaxLifetime 用于规避 MySQL 的 wait_timeout
	sqlDB, err := DB.DB()
	if err != nil {
		log.Fatal("Failed to get underlying sql.DB:", err)
	}
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	log.Println("Database connection successfully established and connection pool configured.")
}

// MigrateTables 建表/同步表结构，生产环境按需关闭
func MigrateTables() {
	err := DB.AutoMigrate(
		&models.Account{},
		&models.GitHubBinding{},
		&models.AuthChallenge{},
		&models.Team{},
		&models.TeamMember{},
		&models.Hackathon{},
		&models.HackathonJudge{},
		&models.Sponsorship{},
		&models.TeamRegistration{},
		&models.JudgeScore{},
		&models.VotingToken{},
		&models.EventLog{},
	)
	if err != nil {
		log.Fatal("Failed to migrate database:", err)
	}
	log.Println("Database migration completed.")
}
