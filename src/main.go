package main

import (
	"context"
	"fmt"
	"log"
	"net/url"
	"os"

	_ "Backend-CourseSignin/docs"
	"Backend-CourseSignin/src/controllers"
	"Backend-CourseSignin/src/database"
	"Backend-CourseSignin/src/jobs"
	"Backend-CourseSignin/src/routes"
	"Backend-CourseSignin/src/seeder"
	"Backend-CourseSignin/src/services/attendees"
	"Backend-CourseSignin/src/services/auth"
	"Backend-CourseSignin/src/services/checkin"
	"Backend-CourseSignin/src/services/checkins"
	"Backend-CourseSignin/src/services/classes"
	"Backend-CourseSignin/src/services/importer"
	"Backend-CourseSignin/src/services/orginfo"
	"Backend-CourseSignin/src/services/rosters"
	"Backend-CourseSignin/src/services/schema"
	"Backend-CourseSignin/src/services/sessions"
	"Backend-CourseSignin/src/services/stats"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/swagger"
)

func main() {

	// 連接 MongoDB
	db, err := database.Connect()
	if err != nil {
		log.Fatalf("Error connecting to the database: %v", err)
	}
	if err := database.EnsureIndexes(context.Background(), db); err != nil {
		log.Fatalf("Error creating indexes: %v", err)
	}

	// Redis 與 Asynq 連不上也能跑, 只會少掉背景工作與 token 黑名單
	database.InitRedis()
	database.InitAsynq()

	// 預設資料 (自訂欄位 / 帳號 / 組織資訊)
	if err := seeder.SeedDefaults(db); err != nil {
		log.Fatalf("Error seeding defaults: %v", err)
	}

	// QR 掃描碼的 seed, 跟原系統一樣可由環境變數覆蓋
	qrSeed := os.Getenv("QR_SEED")
	if qrSeed == "" {
		qrSeed = "secure_seed_2024"
	}

	// stores
	classStore := classes.NewStore(db)
	sessionStore := sessions.NewStore(db)
	attendeeStore := attendees.NewStore(db, qrSeed)
	schemaStore := schema.NewStore(db)
	rosterStore := rosters.NewStore(db)
	checkinStore := checkins.NewStore(db)
	authService := auth.NewService(db)
	orgStore := orginfo.NewStore(db)

	engine := checkin.NewEngine(sessionStore, attendeeStore, checkinStore)
	aggregator := stats.NewAggregator(rosterStore, checkinStore)
	importService := importer.NewService(attendeeStore, rosterStore)

	// 背景 worker (QR 批次產生)
	jobs.StartWorker(rosterStore)

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins:     "*",
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: false,
	}))

	// Swagger UI
	app.Get("/swagger/*", swagger.HandlerDefault)

	routes.InitRoutes(app, routes.Controllers{
		Auth:     controllers.NewAuthController(authService),
		Class:    controllers.NewClassController(classStore),
		Session:  controllers.NewSessionController(sessionStore),
		Attendee: controllers.NewAttendeeController(attendeeStore),
		Schema:   controllers.NewSchemaController(schemaStore),
		Roster:   controllers.NewRosterController(rosterStore),
		Checkin:  controllers.NewCheckinController(engine, checkinStore, aggregator),
		Import:   controllers.NewImportController(importService),
		Org:      controllers.NewOrgController(orgStore),
		QRCode:   controllers.NewQRCodeController(attendeeStore),
	})

	appURI := os.Getenv("APP_URI")
	if appURI == "" {
		appURI = "8888"
	}

	log.Println("Server is running on port " + appURI)
	if err := app.Listen(fmt.Sprintf(":%s", url.PathEscape(appURI))); err != nil {
		log.Fatal(err)
	}
}
