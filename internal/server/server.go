package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/piadesu/attn-store/internal/account"
	accountdomain "github.com/piadesu/attn-store/internal/account/domain"
	"github.com/piadesu/attn-store/internal/account/session"
	"github.com/piadesu/attn-store/internal/analytics"
	analyticsdomain "github.com/piadesu/attn-store/internal/analytics/domain"
	"github.com/piadesu/attn-store/internal/catalog"
	catalogdomain "github.com/piadesu/attn-store/internal/catalog/domain"
	"github.com/piadesu/attn-store/internal/config"
	"github.com/piadesu/attn-store/internal/debt"
	debtdomain "github.com/piadesu/attn-store/internal/debt/domain"
	"github.com/piadesu/attn-store/internal/notification"
	notificationdomain "github.com/piadesu/attn-store/internal/notification/domain"
	"github.com/piadesu/attn-store/internal/observability"
	obslogger "github.com/piadesu/attn-store/internal/observability/logger"
	obsmetrics "github.com/piadesu/attn-store/internal/observability/metrics"
	obstracing "github.com/piadesu/attn-store/internal/observability/tracing"
	"github.com/piadesu/attn-store/internal/order"
	orderdomain "github.com/piadesu/attn-store/internal/order/domain"
	"github.com/piadesu/attn-store/internal/providers/pdf"
	"github.com/piadesu/attn-store/internal/ratelimit"
	"github.com/piadesu/attn-store/internal/wallet"
	walletdomain "github.com/piadesu/attn-store/internal/wallet/domain"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
)

var Module = fx.Module("http.server",
	fx.Provide(registerGin),
	account.Module,
	analytics.Module,
	catalog.Module,
	debt.Module,
	notification.Module,
	order.Module,
	wallet.Module,
	ratelimit.Module,
	pdf.Module,
	fx.Invoke(NewServer),
	fx.Invoke(run),
)

func NewEngine(obsCfg observability.Config, httpMetrics *obsmetrics.HTTPMetrics) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(obslogger.GinMiddleware(obslogger.MiddlewareConfig{
		Debug: obsCfg.Debug(),
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
	engine          *gin.Engine
	cfg             config.Config
	accountSvc      accountdomain.Service
	sessions        *session.Manager
	analyticsSvc    analyticsdomain.Service
	catalogSvc      catalogdomain.Service
	debtSvc         debtdomain.Service
	notificationSvc notificationdomain.Service
	orderSvc        orderdomain.Service
	walletSvc       walletdomain.Service
	loginLimiter    *ratelimit.LoginLimiter
	pdfProvider     *pdf.Provider
}

type ServerParams struct {
	fx.In

	Gin             *gin.Engine
	Cfg             config.Config
	AccountSvc      accountdomain.Service
	Sessions        *session.Manager
	AnalyticsSvc    analyticsdomain.Service
	CatalogSvc      catalogdomain.Service
	DebtSvc         debtdomain.Service
	NotificationSvc notificationdomain.Service
	OrderSvc        orderdomain.Service
	WalletSvc       walletdomain.Service
	LoginLimiter    *ratelimit.LoginLimiter `optional:"true"`
	PDFProvider     *pdf.Provider
}

func NewServer(p ServerParams) *Server {
	svc := &Server{
		engine:          p.Gin,
		cfg:             p.Cfg,
		accountSvc:      p.AccountSvc,
		sessions:        p.Sessions,
		analyticsSvc:    p.AnalyticsSvc,
		catalogSvc:      p.CatalogSvc,
		debtSvc:         p.DebtSvc,
		notificationSvc: p.NotificationSvc,
		orderSvc:        p.OrderSvc,
		walletSvc:       p.WalletSvc,
		loginLimiter:    p.LoginLimiter,
		pdfProvider:     p.PDFProvider,
	}

	svc.registerAPIRoutes()

	return svc
}

func (s *Server) Engine() *gin.Engine {
	return s.engine
}

func (s *Server) registerAPIRoutes() {
	api := s.engine.Group("/api")

	// -------- Accounts & auth --------
	api.POST("/account/", s.Signup)
	api.POST("/login/", s.Login)
	api.POST("/logout/", s.Logout)
	api.GET("/profile/:username/", s.SessionRequired(), s.GetProfile)
	api.PATCH("/profile/:username/", s.SessionRequired(), s.UpdateProfile)

	// -------- Catalog --------
	api.GET("/categories/", s.ListCategories)
	api.POST("/categories/", s.CreateCategory)
	api.GET("/products/", s.ListProducts)
	api.POST("/products/", s.CreateProduct)
	api.POST("/add-product/", s.CreateProduct)
	api.GET("/products/:id/", s.GetProduct)
	api.PATCH("/products/:id/", s.UpdateProduct)

	// -------- Orders --------
	api.GET("/orders/", s.ListOrders)
	api.POST("/create-order/", s.CreateOrder)
	api.GET("/orders/:id/", s.GetOrder)
	api.PATCH("/orders/:id/", s.UpdateOrderStatus)
	api.GET("/orders/:id/items/", s.ListOrderItems)
	api.GET("/orders/:id/receipt/", s.OrderReceipt)
	api.GET("/ordereditem/", s.ListAllOrderItems)

	// -------- Wallet --------
	api.POST("/add-ewallet/", s.CreateWalletEntry)
	api.GET("/ewallets/", s.ListWalletEntries)

	// -------- Debts --------
	api.POST("/debtpayments/", s.CreateDebtPayment)
	api.GET("/debtpayments/", s.ListDebtPayments)
	api.GET("/debts/", s.ListOutstandingDebts)

	// -------- Notifications --------
	api.GET("/notifications/", s.ListNotifications)
	api.POST("/notifications/:id/mark-read/", s.MarkNotificationRead)

	// -------- Analytics --------
	api.GET("/analytics/", s.Analytics)
}
