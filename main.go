package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"hotel_manager/config"
	"hotel_manager/database"
	"hotel_manager/helper"
	"hotel_manager/router"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Không tìm thấy file .env, dùng biến môi trường hệ thống")
	}
	helper.InitSecrets()

	database.ConnectDB()
	database.ConnectRedis()

	app := fiber.New(fiber.Config{
		BodyLimit: 20 * 1024 * 1024,
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins:     config.ConfigOr("CORS_ORIGINS", "http://localhost:5173"),
		AllowMethods:     "GET,POST,PUT,DELETE,PATCH,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Authorization, Accept",
		AllowCredentials: true,
		ExposeHeaders:    "Set-Cookie",
		MaxAge:           600,
	}))

	if config.Config("CLOUDINARY_CLOUD_NAME") != "" {
		router.WithCloudinary(app)
	}

	helper.StartReminderScheduler()
	helper.StartSweepScheduler()

	router.SetupRoutes(app)

	// Dừng scheduler gọn gàng khi nhận tín hiệu tắt
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		<-quit
		helper.StopReminderScheduler()
		helper.StopSweepScheduler()
		_ = app.Shutdown()
	}()

	port := config.ConfigOr("PORT", "8002")
	if err := app.Listen(":" + port); err != nil {
		log.Fatal(err)
	}
}
