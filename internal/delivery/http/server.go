package http

import (
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sewasew/escrow-service/internal/delivery/http/handlers"
	"github.com/sewasew/escrow-service/internal/delivery/http/middleware"
	"github.com/sewasew/escrow-service/internal/usecase/dispute"
	"github.com/sewasew/escrow-service/internal/usecase/escrow"
	"github.com/sewasew/escrow-service/internal/usecase/order"
	"github.com/sewasew/escrow-service/internal/usecase/returns"
	"github.com/sewasew/escrow-service/internal/usecase/trialpolicy"
)

type Server struct {
	echo    *echo.Echo
	orders  *handlers.OrderHandler
	payment *handlers.PaymentHandler
	returns *handlers.ReturnHandler
	dispute *handlers.DisputeHandler
	policy  *handlers.TrialPolicyHandler

	jwtSecret string
}

func NewServer(
	orderUc *order.Usecase,
	escrowUc *escrow.Usecase,
	returnsUc *returns.Usecase,
	disputeUc *dispute.Usecase,
	policyUc *trialpolicy.Usecase,
	jwtSecret string,
) *Server {
	e := echo.New()
	e.HideBanner = true

	e.Use(echomw.Logger())
	e.Use(echomw.Recover())
	e.Use(echomw.CORS())

	s := &Server{
		echo:      e,
		orders:    handlers.NewOrderHandler(orderUc),
		payment:   handlers.NewPaymentHandler(escrowUc),
		returns:   handlers.NewReturnHandler(returnsUc),
		dispute:   handlers.NewDisputeHandler(disputeUc),
		policy:    handlers.NewTrialPolicyHandler(policyUc),
		jwtSecret: jwtSecret,
	}
	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	s.echo.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]string{"status": "ok"})
	})
	s.echo.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// Gateway callback and its polling fallback carry no bearer token;
	// both are safe because settlement requires the gateway-side verify.
	s.echo.POST("/payments/verify", s.payment.Verify)
	s.echo.GET("/payments/verify", s.payment.Verify)
	s.echo.GET("/payments/status", s.payment.Status)

	auth := s.echo.Group("", middleware.JWT(s.jwtSecret))

	auth.POST("/orders", s.orders.Create)
	auth.GET("/orders", s.orders.ListMine)
	auth.GET("/orders/:orderID", s.orders.Get)
	auth.POST("/orders/:orderID/cancel", s.orders.Cancel)

	auth.POST("/payments/initiate", s.payment.Initiate)

	auth.POST("/returns", s.returns.Initiate)
	auth.POST("/returns/scan", s.returns.Scan)
	auth.GET("/returns/mine", s.returns.ListForBuyer)
	auth.GET("/returns/seller", s.returns.ListForSeller)
	auth.GET("/orders/:orderID/return", s.returns.GetByOrder)

	auth.POST("/products/:productID/trial-policy", s.policy.Create)
	auth.PUT("/products/:productID/trial-policy", s.policy.Update)
	auth.DELETE("/products/:productID/trial-policy", s.policy.Delete)
	auth.GET("/products/:productID/trial-policy", s.policy.Get)

	admin := auth.Group("/disputes", middleware.RequireRole("admin"))
	admin.GET("", s.dispute.List)
	admin.GET("/:disputeID", s.dispute.Get)
	admin.POST("/:disputeID/review", s.dispute.StartReview)
	admin.POST("/:disputeID/resolve", s.dispute.Resolve)
}

func (s *Server) Start(address string) error {
	return s.echo.Start(address)
}

func (s *Server) Shutdown() error {
	return s.echo.Close()
}
