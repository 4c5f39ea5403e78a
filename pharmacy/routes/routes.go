package routes

import (
	"Ensurance/cache"
	"Ensurance/config"
	"Ensurance/middlewares"
	"Ensurance/pharmacy/handlers"
	"Ensurance/pharmacy/models"
	"Ensurance/pharmacy/repositories"
	"Ensurance/pharmacy/services"
	"Ensurance/utils"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRoutes initializes the routes and middleware for the pharmacy
// backend.
func SetupRoutes(c *cache.Cache, cfg *config.AppConfig, db *gorm.DB) http.Handler {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())

	router.Use(middlewares.CorsMiddleware())
	router.Use(middlewares.NewRateLimiterMiddleware(middlewares.RateLimiterConfig{
		RequestsPerSecond: 50,
		Burst:             100,
	}))
	router.Use(middlewares.LoggingMiddleware())

	// Repositories
	userRepo := repositories.NewUserRepository(db)
	medicineRepo := repositories.NewMedicineRepository(db, c)
	hospitalRepo := repositories.NewCrudRepository[models.Hospital](db, "id_hospital")
	configRepo := repositories.NewConfigRepository(db)
	serviceApprovalRepo := repositories.NewServiceApprovalRepository(db)
	billMedicineRepo := repositories.NewBillMedicineRepository(db)
	orderMedicineRepo := repositories.NewOrderMedicineRepository(db)
	prescriptionMedicineRepo := repositories.NewPrescriptionMedicineRepository(db)
	medicineCatSubcatRepo := repositories.NewMedicineCatSubcatRepository(db)

	// Services
	authService := services.NewAuthService(userRepo)
	approvalService := services.NewApprovalService(serviceApprovalRepo, userRepo, hospitalRepo, configRepo)

	// Handlers
	authHandler := handlers.NewAuthHandler(authService)
	userHandler := handlers.NewUserHandler(userRepo)
	medicineHandler := handlers.NewMedicineHandler(medicineRepo)
	serviceApprovalHandler := handlers.NewServiceApprovalHandler(approvalService)
	proxyHandler := handlers.NewProxyHandler(
		utils.NewForwarder(30*time.Second), cfg.InsuranceAPIURL)

	api := router.Group("/api2")

	// Auth & users
	api.POST("/login", authHandler.Login)
	api.GET("/verification", authHandler.Verification)
	api.GET("/users", userHandler.Get)
	api.POST("/users", userHandler.Create)
	api.PUT("/users", userHandler.Update)

	// Core entities
	handlers.NewCrudHandler(
		repositories.NewCrudRepository[models.Policy](db, "id_policy"),
		func(p *models.Policy) int64 { return p.IDPolicy },
	).WithDelete().Register(api, "/policies")

	handlers.NewCrudHandler[models.Hospital](
		hospitalRepo,
		func(h *models.Hospital) int64 { return h.IDHospital },
	).Register(api, "/hospitals")

	handlers.NewCrudHandler(
		repositories.NewCrudRepository[models.Category](db, "id_category"),
		func(cat *models.Category) int64 { return cat.IDCategory },
	).Register(api, "/categories")

	handlers.NewCrudHandler(
		repositories.NewCrudRepository[models.Subcategory](db, "id_subcategory"),
		func(s *models.Subcategory) int64 { return s.IDSubcategory },
	).Register(api, "/subcategories")

	handlers.NewCrudHandler(
		repositories.NewCrudRepository[models.Prescription](db, "id_prescription", "Hospital", "User"),
		func(p *models.Prescription) int64 { return p.IDPrescription },
	).Register(api, "/prescriptions")

	handlers.NewCrudHandler(
		repositories.NewCrudRepository[models.Bill](db, "id_bill", "Prescription"),
		func(b *models.Bill) int64 { return b.IDBill },
	).Register(api, "/bills")

	handlers.NewCrudHandler(
		repositories.NewCrudRepository[models.Orders](db, "id_order", "User"),
		func(o *models.Orders) int64 { return o.IDOrder },
	).Register(api, "/orders")

	handlers.NewCrudHandler(
		repositories.NewCrudRepository[models.Comments](db, "id_comments", "User", "Medicine"),
		func(cm *models.Comments) int64 { return cm.IDComments },
	).Register(api, "/comments")

	// Medicines
	medicineHandler.Register(api, "/medicines")
	api.GET("/search_medicines", medicineHandler.Search)
	api.GET("/medicines-xml", medicineHandler.GetXML)
	api.GET("/medicines-xml-static", medicineHandler.GetStaticXML)

	// Join resources
	billMedicineHandler := handlers.NewBillMedicineHandler(billMedicineRepo)
	api.GET("/bill_medicines", billMedicineHandler.Get)
	api.POST("/bill_medicines", billMedicineHandler.Create)

	orderMedicineHandler := handlers.NewOrderMedicineHandler(orderMedicineRepo)
	api.GET("/order_medicines", orderMedicineHandler.Get)
	api.POST("/order_medicines", orderMedicineHandler.Create)

	prescriptionMedicineHandler := handlers.NewPrescriptionMedicineHandler(prescriptionMedicineRepo)
	api.GET("/prescription_medicines", prescriptionMedicineHandler.Get)
	api.POST("/prescription_medicines", prescriptionMedicineHandler.Create)

	medicineCatSubcatHandler := handlers.NewMedicineCatSubcatHandler(medicineCatSubcatRepo)
	api.GET("/medicine_catsubcats", medicineCatSubcatHandler.Get)
	api.POST("/medicine_catsubcats", medicineCatSubcatHandler.Create)

	// Service approvals
	api.POST("/service-approvals/request", serviceApprovalHandler.Request)
	api.POST("/service-approvals/prescription", serviceApprovalHandler.Prescription)
	api.POST("/service-approvals/complete/:approvalCode", serviceApprovalHandler.Complete)
	api.GET("/service-approvals", serviceApprovalHandler.Get)

	// Integrations / proxies
	api.Any("/insurance-integration/*path", proxyHandler.Redirect)

	router.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Ensurance pharmacy backend")
	})

	return router
}
