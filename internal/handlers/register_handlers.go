package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/oficinasys/service_order_app/cmd/docs"
	portssvc "github.com/oficinasys/service_order_app/internal/core/ports/services"
	"github.com/oficinasys/service_order_app/internal/middleware"
	"github.com/oficinasys/service_order_app/internal/platform/config"
	"github.com/oficinasys/service_order_app/internal/printing"
	"github.com/oficinasys/service_order_app/internal/utils"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	printer *printing.Printer,
) {
	registerDocumentValidators()

	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	// Public authentication routes
	registerAuthRoutes(r, cfg, services)

	// API v1 routes behind JWT auth
	setupAPIV1Routes(r, cfg, services, printer)

	// Swagger routes (not exposed in production)
	setupSwaggerRoutes(r, cfg)
}

// registerDocumentValidators wires the CPF/CNPJ check-digit validators into
// gin's binding engine so dto tags like `binding:"cpf"` work.
func registerDocumentValidators() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	_ = v.RegisterValidation("cpf", func(fl validator.FieldLevel) bool {
		return utils.IsValidCPF(fl.Field().String())
	})
	_ = v.RegisterValidation("cnpj", func(fl validator.FieldLevel) bool {
		return utils.IsValidCNPJ(fl.Field().String())
	})
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	printer *printing.Printer,
) {
	v1 := r.Group("/api/v1", middleware.AuthMiddleware(cfg.JWTSecret))

	registerClientRoutes(v1, services.Client)
	registerSupplierRoutes(v1, services.Supplier)
	registerProductRoutes(v1, services.Product)
	registerStockEntryRoutes(v1, services.StockEntry)
	registerOrderRoutes(v1, services.Order, services.Client, printer)
	registerInvoiceRoutes(v1, services.Invoice, services.Order, services.Client, printer)
	registerPayableRoutes(v1, services.Payable)
	registerReportingRoutes(v1, services.Reporting, services.Order, printer)
	registerLookupRoutes(v1, services.Lookup)
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
