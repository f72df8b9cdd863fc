package main

import (
	"log"

	"foodie-backend/config"
	"foodie-backend/routes"
	"foodie-backend/services"
	"foodie-backend/utils"
)

func main() {
	config.InitDB()
	utils.InitS3()

	sweeper := services.NewRecallSweeper(config.DB, services.RecallTTLFromEnv())
	if err := sweeper.Start(); err != nil {
		log.Fatalf("Failed to start recall sweeper: %v", err)
	}
	defer sweeper.Stop()

	hub := services.NewRealtimeHub()
	r := routes.SetupRouter(hub)
	if err := r.Run(":8080"); err != nil {
		log.Fatalf("Server exited: %v", err)
	}
}
