package bootstrap

import (
	"database/sql"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	httpapi "github.com/renoquote/quote-backend/internal/api/http"
	"github.com/renoquote/quote-backend/internal/api/http/middleware"
	quoteshttp "github.com/renoquote/quote-backend/internal/quotes/http"
	"github.com/renoquote/quote-backend/internal/quotes/service"
)

type RouterDeps struct {
	ServiceName string
	Version     string
	DB          *sql.DB
	Pipeline    *service.PipelineService
}

func BuildRouter(dep RouterDeps) *gin.Engine {
	r := gin.Default()
	r.Use(cors.Default())
	r.Use(middleware.RequestID())

	healthHandler := httpapi.NewHealthHandler(dep.ServiceName, dep.Version, dep.DB)
	healthHandler.RegisterRoutes(r)

	// Submission routes live at the root: their paths are the public contract.
	quotesHandler := quoteshttp.New(dep.Pipeline)
	quotesHandler.Register(r)

	return r
}
