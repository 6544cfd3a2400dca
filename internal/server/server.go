package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"

	"github.com/shushruth21/estre/internal/accessory"
	accessorydomain "github.com/shushruth21/estre/internal/accessory/domain"
	"github.com/shushruth21/estre/internal/catalog"
	catalogdomain "github.com/shushruth21/estre/internal/catalog/domain"
	"github.com/shushruth21/estre/internal/config"
	"github.com/shushruth21/estre/internal/fabricprice"
	fabricpricedomain "github.com/shushruth21/estre/internal/fabricprice/domain"
	"github.com/shushruth21/estre/internal/formula"
	formuladomain "github.com/shushruth21/estre/internal/formula/domain"
	"github.com/shushruth21/estre/internal/jobcard"
	jobcarddomain "github.com/shushruth21/estre/internal/jobcard/domain"
	"github.com/shushruth21/estre/internal/jobcard/render"
	"github.com/shushruth21/estre/internal/observability"
	obsmiddleware "github.com/shushruth21/estre/internal/observability/logger"
	obsmetrics "github.com/shushruth21/estre/internal/observability/metrics"
	obstracing "github.com/shushruth21/estre/internal/observability/tracing"
	"github.com/shushruth21/estre/internal/order"
	orderdomain "github.com/shushruth21/estre/internal/order/domain"
	"github.com/shushruth21/estre/internal/pricing"
	pricingdomain "github.com/shushruth21/estre/internal/pricing/domain"
	"github.com/shushruth21/estre/internal/qir"
	qirdomain "github.com/shushruth21/estre/internal/qir/domain"
	"github.com/shushruth21/estre/internal/reference"
	referencedomain "github.com/shushruth21/estre/internal/reference/domain"
	"github.com/shushruth21/estre/internal/telemetry"
)

var Module = fx.Module("http.server",
	fx.Provide(registerGin),
	formula.Module,
	catalog.Module,
	fabricprice.Module,
	accessory.Module,
	pricing.Module,
	jobcard.Module,
	qir.Module,
	order.Module,
	reference.Module,
	telemetry.Module,
	fx.Invoke(NewServer),
	fx.Invoke(run),
)

func NewEngine(obsCfg observability.Config, httpMetrics *obsmetrics.HTTPMetrics) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(obsmiddleware.GinMiddleware(obsmiddleware.MiddlewareConfig{
		Debug:           obsCfg.Debug(),
		ErrorClassifier: classifyErrorForLog,
	}))
	r.Use(obstracing.GinMiddleware())
	r.Use(obsmetrics.GinMiddleware(httpMetrics))
	r.Use(ErrorHandlingMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return r
}

func registerGin(obsCfg observability.Config, httpMetrics *obsmetrics.HTTPMetrics) *gin.Engine {
	return NewEngine(obsCfg, httpMetrics)
}

func run(lc fx.Lifecycle, cfg config.Config, r *gin.Engine) {
	srv := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: r,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					panic(err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	})
}

type Server struct {
	engine         *gin.Engine
	catalogSvc     catalogdomain.Service
	formulaSvc     formuladomain.Service
	pricingSvc     pricingdomain.Service
	fabricPriceSvc fabricpricedomain.Service
	accessorySvc   accessorydomain.Service
	jobCardSvc     jobcarddomain.Service
	jobCardPDF     render.Renderer
	qirSvc         qirdomain.Service
	orderSvc       orderdomain.Service
	refrepo        referencedomain.Repository
	monitor        *telemetry.Monitor
}

type ServerParams struct {
	fx.In

	Gin            *gin.Engine
	CatalogSvc     catalogdomain.Service
	FormulaSvc     formuladomain.Service
	PricingSvc     pricingdomain.Service
	FabricPriceSvc fabricpricedomain.Service
	AccessorySvc   accessorydomain.Service
	JobCardSvc     jobcarddomain.Service
	JobCardPDF     render.Renderer
	QIRSvc         qirdomain.Service
	OrderSvc       orderdomain.Service
	Refrepo        referencedomain.Repository
	Monitor        *telemetry.Monitor
}

func NewServer(p ServerParams) *Server {
	s := &Server{
		engine:         p.Gin,
		catalogSvc:     p.CatalogSvc,
		formulaSvc:     p.FormulaSvc,
		pricingSvc:     p.PricingSvc,
		fabricPriceSvc: p.FabricPriceSvc,
		accessorySvc:   p.AccessorySvc,
		jobCardSvc:     p.JobCardSvc,
		jobCardPDF:     p.JobCardPDF,
		qirSvc:         p.QIRSvc,
		orderSvc:       p.OrderSvc,
		refrepo:        p.Refrepo,
		monitor:        p.Monitor,
	}
	s.registerRoutes()
	return s
}

func (s *Server) registerRoutes() {
	v1 := s.engine.Group("/v1")

	v1.GET("/products", s.ListProducts)
	v1.POST("/products", s.CreateProduct)
	v1.GET("/products/:id", s.GetProduct)

	v1.POST("/pricing/quote", s.CalculateQuote)
	v1.POST("/pricing/fabric-requirements", s.CalculateFabricRequirements)
	v1.POST("/pricing/console-placements", s.ListConsolePlacements)
	v1.GET("/pricing/formulas", s.GetFormulaSet)

	v1.GET("/fabric-prices", s.ListFabricPrices)
	v1.GET("/accessories/total", s.GetAccessoryTotal)

	v1.POST("/orders", s.CreateOrder)
	v1.GET("/orders", s.ListOrders)
	v1.GET("/orders/:id", s.GetOrder)
	v1.POST("/orders/:id/confirm", s.ConfirmOrder)

	v1.GET("/job-cards/:number", s.GetJobCard)
	v1.GET("/job-cards/:number/pdf", s.GetJobCardPDF)

	v1.GET("/qir/checklist", s.GetChecklist)
	v1.POST("/qir/reports", s.SubmitInspection)
	v1.GET("/qir/reports/:id", s.GetInspection)
	v1.GET("/qir/job-cards/:number/reports", s.ListInspections)

	v1.GET("/reference/options", s.ListDropdownOptions)
	v1.GET("/reference/settings", s.ListCategorySettings)

	v1.GET("/telemetry/recent", s.RecentOperations)
}
