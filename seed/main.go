package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/tecno-hogar/tecnohogar_api/model"
	"github.com/tecno-hogar/tecnohogar_api/services"
	"github.com/tecno-hogar/tecnohogar_api/shared"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	var (
		seedType = flag.String("type", "all", "Type of seeding: all, schema, sheet, demo")
		help     = flag.Bool("help", false, "Show help message")
	)
	flag.Parse()

	if *help {
		showHelp()
		return
	}

	switch *seedType {
	case "all":
		migrateSchema()
		seedSheetHeader()
	case "schema":
		migrateSchema()
	case "sheet":
		seedSheetHeader()
	case "demo":
		migrateSchema()
		seedDemoData()
	default:
		log.Fatalf("Unknown seed type: %s (use -help for options)", *seedType)
	}

	log.Println("Seeding completed")
}

func openDatabase() *gorm.DB {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
			envOr("DB_HOST", "localhost"),
			envOr("DB_USER", "postgres"),
			os.Getenv("DB_PASSWORD"),
			envOr("DB_NAME", "tecnohogar"),
			envOr("DB_PORT", "5432"))
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
	})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	return db
}

func migrateSchema() {
	db := openDatabase()
	if err := db.AutoMigrate(&model.Client{}, &model.Ticket{}); err != nil {
		log.Fatalf("Failed to migrate schema: %v", err)
	}
	log.Println("Schema migrated")
}

func seedSheetHeader() {
	sheetSvc := services.NewSheetsService()
	if !sheetSvc.Enabled() {
		log.Println("Google Sheets is disabled, skipping header row")
		return
	}
	if err := sheetSvc.Start(); err != nil {
		log.Fatalf("Failed to start Google Sheets: %v", err)
	}
	if err := sheetSvc.CreateHeaderRow(); err != nil {
		log.Fatalf("Failed to create sheet header row: %v", err)
	}
	log.Println("Google Sheet header row initialized")
}

func seedDemoData() {
	db := openDatabase()

	client := model.Client{
		ID:       uuid.New().String(),
		Nombre:   "Cliente Demo",
		Telefono: "5512345678",
		Email:    "demo@tecnohogar.mx",
	}
	if err := db.FirstOrCreate(&client, model.Client{Telefono: client.Telefono}).Error; err != nil {
		log.Fatalf("Failed to seed demo client: %v", err)
	}

	ticket := model.Ticket{
		ID:                   uuid.New().String(),
		ClienteID:            client.ID,
		TipoElectrodomestico: shared.ApplianceLavadora,
		Marca:                "LG",
		Problema:             "No centrifuga y hace ruido al girar",
		Urgencia:             shared.UrgenciaMedia,
		Estado:               shared.EstadoPendiente,
	}
	if err := db.Create(&ticket).Error; err != nil {
		log.Fatalf("Failed to seed demo ticket: %v", err)
	}

	log.Printf("Demo data seeded: cliente=%s servicio=%s", client.ID, ticket.ID)
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func showHelp() {
	fmt.Println("TecnoHogar database seeder")
	fmt.Println()
	fmt.Println("Usage: go run seed/main.go [options]")
	fmt.Println()
	fmt.Println("Options:")
	fmt.Println("  -type string   Type of seeding: all, schema, sheet, demo (default \"all\")")
	fmt.Println("  -help          Show this help message")
}
