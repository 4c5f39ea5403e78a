package routes

import (
	"Ensurance/cache"
	"Ensurance/config"
	"Ensurance/insurance/handlers"
	"Ensurance/insurance/models"
	"Ensurance/insurance/repositories"
	"Ensurance/insurance/services"
	"Ensurance/middlewares"
	"Ensurance/utils"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRoutes initializes the routes and middleware for the insurance
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
	hospitalRepo := repositories.NewHospitalRepository(db, c)
	configRepo := repositories.NewConfigRepository(db)
	prescriptionApprovalRepo := repositories.NewPrescriptionApprovalRepository(db)
	serviceApprovalRepo := repositories.NewServiceApprovalRepository(db)
	ensuranceAppointmentRepo := repositories.NewEnsuranceAppointmentRepository(db)
	medicinePresRepo := repositories.NewMedicinePresRepository(db)
	serviceCategoryRepo := repositories.NewServiceCategoryRepository(db)
	insuranceServiceRepo := repositories.NewCrudRepository[models.InsuranceService](db, "id_insurance_service", "Category", "Subcategory")

	// Services
	authService := services.NewAuthService(userRepo)
	approvalService := services.NewApprovalService(prescriptionApprovalRepo, userRepo, configRepo)
	dashboardService := services.NewDashboardService(db, serviceApprovalRepo, hospitalRepo, insuranceServiceRepo)

	// Handlers
	authHandler := handlers.NewAuthHandler(authService)
	userHandler := handlers.NewUserHandler(userRepo)
	approvalHandler := handlers.NewApprovalHandler(approvalService)
	configHandler := handlers.NewConfigHandler(configRepo)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService)
	notificationHandler := handlers.NewNotificationHandler()
	proxyHandler := handlers.NewProxyHandler(
		utils.NewForwarder(30*time.Second), hospitalRepo, cfg.HospitalAPIURL)

	api := router.Group("/api")

	// Auth & users
	api.POST("/login", authHandler.Login)
	api.GET("/users", userHandler.Get)
	api.POST("/users", userHandler.Create)
	api.PUT("/users", userHandler.Update)
	api.GET("/users/by-email", userHandler.GetByEmail)

	// Core entities
	handlers.NewCrudHandler(
		repositories.NewCrudRepository[models.Policy](db, "id_policy"),
		func(p *models.Policy) int64 { return p.IDPolicy },
	).WithDelete().Register(api, "/policy")

	handlers.NewCrudHandler(
		repositories.NewCrudRepository[models.Appointment](db, "id_appointment", "Hospital", "User"),
		func(a *models.Appointment) int64 { return a.IDAppointment },
	).Register(api, "/appointment")

	handlers.NewCrudHandler(
		repositories.NewCrudRepository[models.AppointmentMade](db, "id_cita"),
		func(a *models.AppointmentMade) int64 { return a.IDCita },
	).Register(api, "/appointmentmade")

	handlers.NewCrudHandler(
		repositories.NewCrudRepository[models.Category](db, "id_category"),
		func(cat *models.Category) int64 { return cat.IDCategory },
	).Register(api, "/category")

	handlers.NewCrudHandler[models.Hospital](
		hospitalRepo,
		func(h *models.Hospital) int64 { return h.IDHospital },
	).Register(api, "/hospital")

	handlers.NewCrudHandler(
		repositories.NewCrudRepository[models.Medicine](db, "id_medicine", "Pharmacy"),
		func(m *models.Medicine) int64 { return m.IDMedicine },
	).Register(api, "/medicine")

	handlers.NewCrudHandler(
		repositories.NewCrudRepository[models.Pharmacy](db, "id_pharmacy"),
		func(p *models.Pharmacy) int64 { return p.IDPharmacy },
	).Register(api, "/pharmacy")

	handlers.NewCrudHandler(
		repositories.NewCrudRepository[models.Prescription](db, "id_prescription", "Hospital", "User", "Medicine", "Pharmacy"),
		func(p *models.Prescription) int64 { return p.IDPrescription },
	).Register(api, "/prescription")

	handlers.NewCrudHandler(
		repositories.NewCrudRepository[models.Service](db, "id_service", "Hospital", "Category", "Subcategory"),
		func(s *models.Service) int64 { return s.IDService },
	).Register(api, "/service")

	handlers.NewCrudHandler(
		repositories.NewCrudRepository[models.TotalHospital](db, "id_total_hospital", "Hospital"),
		func(t *models.TotalHospital) int64 { return t.IDTotalHospital },
	).Register(api, "/totalhospital")

	handlers.NewCrudHandler(
		repositories.NewCrudRepository[models.TotalPharmacy](db, "id_total_pharmacy", "Pharmacy"),
		func(t *models.TotalPharmacy) int64 { return t.IDTotalPharmacy },
	).Register(api, "/totalpharmacy")

	handlers.NewCrudHandler(
		repositories.NewCrudRepository[models.Transactions](db, "id_transaction", "User", "Hospital"),
		func(t *models.Transactions) int64 { return t.IDTransaction },
	).Register(api, "/transactions")

	handlers.NewCrudHandler(
		repositories.NewCrudRepository[models.TransactionPolicy](db, "id_transaction_policy", "Policy", "User"),
		func(t *models.TransactionPolicy) int64 { return t.IDTransactionPolicy },
	).Register(api, "/transactionpolicy")

	// Join resources
	medicinePresHandler := handlers.NewMedicinePresHandler(medicinePresRepo)
	api.GET("/medicinepres", medicinePresHandler.Get)
	api.POST("/medicinepres", medicinePresHandler.Create)

	serviceCategoryHandler := handlers.NewServiceCategoryHandler(serviceCategoryRepo)
	api.GET("/servicecategory", serviceCategoryHandler.Get)
	api.POST("/servicecategory", serviceCategoryHandler.Create)

	// Insurance services
	handlers.NewCrudHandler(
		insuranceServiceRepo,
		func(s *models.InsuranceService) int64 { return s.IDInsuranceService },
	).WithDelete().Register(api, "/insurance-services")

	handlers.NewCrudHandler(
		repositories.NewCrudRepository[models.HospitalInsuranceService](db, "id_hospital_service", "Hospital", "InsuranceService"),
		func(s *models.HospitalInsuranceService) int64 { return s.IDHospitalService },
	).WithDelete().Register(api, "/hospital-services")

	// Configurable amount
	api.GET("/configurableamount", configHandler.Get)
	api.PUT("/configurableamount", configHandler.Update)

	// Notifications
	api.POST("/notifications/email", notificationHandler.SendEmail)

	// Ensurance appointments and approvals
	handlers.NewEnsuranceAppointmentHandler(ensuranceAppointmentRepo).Register(api, "/ensurance-appointments")
	api.POST("/prescriptions/approve", approvalHandler.Approve)
	api.GET("/prescriptions/approvals", approvalHandler.ListApprovals)

	// Dashboard
	api.GET("/dashboard", dashboardHandler.Summary)
	api.GET("/dashboard/status", dashboardHandler.Status)

	// Integrations / proxies
	api.Any("/hospital-integration/*path", proxyHandler.Redirect)
	api.Any("/hospital-proxy/:hospitalId/*path", proxyHandler.HospitalProxy)

	router.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Ensurance insurance backend")
	})

	return router
}
