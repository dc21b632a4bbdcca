package app

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"gymoffice/internal/config"
	"gymoffice/internal/domain/account"
	"gymoffice/internal/domain/client"
	"gymoffice/internal/domain/employee"
	"gymoffice/internal/domain/equipment"
	"gymoffice/internal/domain/gym"
	"gymoffice/internal/domain/rate"
	"gymoffice/internal/domain/subscription"
	"gymoffice/internal/domain/visit"
	"gymoffice/internal/middleware"
	jwtsvc "gymoffice/internal/pkg/jwt"
)

// Migrate creates or updates the schema for every persisted entity.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&gym.Gym{},
		&client.Client{},
		&employee.Employee{},
		&equipment.Equipment{},
		&rate.Rate{},
		&subscription.Subscription{},
		&visit.Visit{},
		&account.Account{},
	)
}

// NewRouter wires repositories, services and handlers into a gin engine.
// The same assembly backs cmd/api and the end-to-end tests.
func NewRouter(db *gorm.DB, cfg config.Config) *gin.Engine {
	gymRepo := gym.NewRepository(db)
	clientRepo := client.NewRepository(db)
	employeeRepo := employee.NewRepository(db)
	equipmentRepo := equipment.NewRepository(db)
	rateRepo := rate.NewRepository(db)
	subscriptionRepo := subscription.NewRepository(db)
	visitRepo := visit.NewRepository(db)
	accountRepo := account.NewRepository(db)

	jwt := jwtsvc.New(cfg.JWTSecret, cfg.JWTTTL)

	gymHandler := gym.NewHandler(gym.NewService(gymRepo))
	clientHandler := client.NewHandler(client.NewService(clientRepo))
	employeeHandler := employee.NewHandler(employee.NewService(employeeRepo, gymRepo))
	equipmentHandler := equipment.NewHandler(equipment.NewService(equipmentRepo, gymRepo))
	rateHandler := rate.NewHandler(rate.NewService(rateRepo))
	subscriptionHandler := subscription.NewHandler(
		subscription.NewService(subscriptionRepo, clientRepo, rateRepo))
	visitHandler := visit.NewHandler(visit.NewService(visitRepo, clientRepo, gymRepo))
	accountHandler := account.NewHandler(account.NewService(accountRepo, jwt))

	r := gin.New()
	r.Use(middleware.RequestLogger())
	r.Use(middleware.CORS())

	base := r.Group("/gym")

	account.RegisterRoutes(base, accountHandler)
	account.RegisterProtectedRoutes(base.Group("", middleware.Auth(jwt)), accountHandler)

	crud := base.Group("")
	if cfg.AuthRequired {
		crud.Use(middleware.Auth(jwt))
	}

	gym.RegisterRoutes(crud, gymHandler)
	client.RegisterRoutes(crud, clientHandler)
	employee.RegisterRoutes(crud, employeeHandler)
	equipment.RegisterRoutes(crud, equipmentHandler)
	rate.RegisterRoutes(crud, rateHandler)
	subscription.RegisterRoutes(crud, subscriptionHandler)
	visit.RegisterRoutes(crud, visitHandler)

	return r
}
