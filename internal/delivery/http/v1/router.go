package v1

import (
	"net/http"

	"go-candidate-backend/internal/delivery/http/middleware"
	"go-candidate-backend/internal/delivery/http/response"
	"go-candidate-backend/internal/domain"
	"go-candidate-backend/internal/usecase"
	"go-candidate-backend/pkg/security"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	AuthUC         domain.AuthUsecase
	CandidateUC    domain.CandidateUsecase
	HealthUC       usecase.HealthUsecase
	Tokens         middleware.TokenVerifier
	SecurityLogger *security.SecurityLogger
	AllowedOrigins []string
}

func NewRouter(deps RouterDeps) *gin.Engine {
	registerValidators()

	r := gin.New()

	// Global Middlewares
	r.Use(middleware.CORSMiddleware(deps.AllowedOrigins)) // CORS must be first!
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.SecurityHeadersMiddleware())
	r.Use(middleware.ErrorHandler())

	r.GET("/ping", func(c *gin.Context) {
		response.Success(c, http.StatusOK, domain.MsgPong)
	})

	r.GET("/health", func(c *gin.Context) {
		status, ok := deps.HealthUC.Check(c.Request.Context())
		code := http.StatusOK
		if !ok {
			code = http.StatusServiceUnavailable
		}
		response.JSON(c, code, status)
	})

	// Swagger
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Protected routes
	protected := r.Group("")
	protected.Use(middleware.AuthMiddleware(deps.Tokens, deps.AuthUC, deps.SecurityLogger))

	NewAuthHandler(&r.RouterGroup, protected, deps.AuthUC)
	NewCandidateHandler(protected, deps.CandidateUC)

	return r
}
