package main

import (
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"github.com/milhoverde/oficina-backend/internal/modules/appointment"
	"github.com/milhoverde/oficina-backend/internal/modules/auth"
	"github.com/milhoverde/oficina-backend/internal/modules/catalog"
	"github.com/milhoverde/oficina-backend/internal/modules/client"
	"github.com/milhoverde/oficina-backend/internal/modules/employee"
	"github.com/milhoverde/oficina-backend/internal/modules/expense"
	"github.com/milhoverde/oficina-backend/internal/modules/inventory"
	"github.com/milhoverde/oficina-backend/internal/modules/lift"
	"github.com/milhoverde/oficina-backend/internal/modules/reports"
	"github.com/milhoverde/oficina-backend/internal/modules/serviceorder"
	"github.com/milhoverde/oficina-backend/internal/modules/supplier"
)

// repositories bundles one backend choice for every module. The file
// backend is the default; setting DATABASE_URL switches the whole set
// to PostgreSQL.
type repositories struct {
	clients      client.Repository
	employees    employee.Repository
	suppliers    supplier.Repository
	catalog      catalog.Repository
	inventory    inventory.Repository
	lifts        lift.Repository
	orders       serviceorder.Repository
	appointments appointment.Repository
	expenses     expense.Repository
}

func newJSONRepositories(dir string) *repositories {
	return &repositories{
		clients:      client.NewJSONRepository(dir),
		employees:    employee.NewJSONRepository(dir),
		suppliers:    supplier.NewJSONRepository(dir),
		catalog:      catalog.NewJSONRepository(dir),
		inventory:    inventory.NewJSONRepository(dir),
		lifts:        lift.NewJSONRepository(dir),
		orders:       serviceorder.NewJSONRepository(dir),
		appointments: appointment.NewJSONRepository(dir),
		expenses:     expense.NewJSONRepository(dir),
	}
}

func newPostgresRepositories(db *sql.DB) (*repositories, error) {
	lifts, err := lift.NewPostgresRepository(db)
	if err != nil {
		return nil, err
	}
	return &repositories{
		clients:      client.NewPostgresRepository(db),
		employees:    employee.NewPostgresRepository(db),
		suppliers:    supplier.NewPostgresRepository(db),
		catalog:      catalog.NewPostgresRepository(db),
		inventory:    inventory.NewPostgresRepository(db),
		lifts:        lifts,
		orders:       serviceorder.NewPostgresRepository(db),
		appointments: appointment.NewPostgresRepository(db),
		expenses:     expense.NewPostgresRepository(db),
	}, nil
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment as is")
	}

	var repos *repositories
	if dsn := os.Getenv("DATABASE_URL"); dsn != "" {
		db, err := sql.Open("postgres", dsn)
		if err != nil {
			log.Fatal(err)
		}
		defer db.Close()
		if err := db.Ping(); err != nil {
			log.Fatal(err)
		}
		fmt.Println("Successfully connected to the database!")
		if repos, err = newPostgresRepositories(db); err != nil {
			log.Fatal(err)
		}
	} else {
		dataDir := os.Getenv("DATA_DIR")
		if dataDir == "" {
			dataDir = "data"
		}
		repos = newJSONRepositories(dataDir)
		fmt.Printf("Using file storage in %s/\n", dataDir)
	}

	// ── Router ──────────────────────────────────────────────
	router := chi.NewRouter()
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(middleware.RequestID)

	// ── Phase 1: People & Identity ──────────────────────────
	clientService := client.NewService(repos.clients)
	client.NewHandler(clientService).RegisterRoutes(router)

	employeeService := employee.NewService(repos.employees)
	employee.NewHandler(employeeService).RegisterRoutes(router)

	authService := auth.NewService(repos.employees)
	auth.NewHandler(authService).RegisterRoutes(router)

	// ── Phase 2: Catalog & Inventory ────────────────────────
	supplierService := supplier.NewService(repos.suppliers)
	supplier.NewHandler(supplierService).RegisterRoutes(router)

	catalogService := catalog.NewService(repos.catalog)
	catalog.NewHandler(catalogService).RegisterRoutes(router)

	inventoryService := inventory.NewService(repos.inventory, supplierService)
	inventory.NewHandler(inventoryService).RegisterRoutes(router)

	// ── Phase 3: Shop Floor ─────────────────────────────────
	liftService := lift.NewService(repos.lifts)
	lift.NewHandler(liftService).RegisterRoutes(router)

	orderService := serviceorder.NewService(repos.orders, catalogService, inventoryService)
	serviceorder.NewHandler(orderService).RegisterRoutes(router)

	appointmentService := appointment.NewService(
		repos.appointments, clientService, liftService, orderService, employeeService)
	appointment.NewHandler(appointmentService).RegisterRoutes(router)

	// ── Phase 4: Finance ────────────────────────────────────
	expenseService := expense.NewService(repos.expenses)
	expense.NewHandler(expenseService).RegisterRoutes(router)

	reportsService := reports.NewService(orderService, expenseService)
	reports.NewHandler(reportsService).RegisterRoutes(router)

	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "8080"
	}
	fmt.Printf("Server starting on port %s\n", port)
	log.Fatal(http.ListenAndServe(":"+port, router))
}
