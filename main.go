// file: main.go
package main

import (
	"log"
	"os"

	"github.com/GIT-Pushers/Devs-sub000/database"
	"github.com/GIT-Pushers/Devs-sub000/routes"
	"github.com/joho/godotenv"
)

func main() {
	// .env 不存在时静默跳过，直接使用进程环境变量
	_ = godotenv.Load()

	database.Connect()
	database.MigrateTables()
	database.InitRedis()

	r := routes.SetupRouter()

	addr := os.Getenv("LISTEN_ADDR")
	if addr == "" {
		addr = ":8080"
	}

	log.Println("Starting server on " + addr)
	if err := r.Run(addr); err != nil {
		log.Fatalf("Failed to run server: %v", err)
	}
}
