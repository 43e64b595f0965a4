package main

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/printkart/storefront/internal/catalog"
	"github.com/printkart/storefront/internal/checkout"
	"github.com/printkart/storefront/internal/config"
	"github.com/printkart/storefront/internal/content"
	"github.com/printkart/storefront/internal/fulfillment"
	"github.com/printkart/storefront/internal/httpx"
	"github.com/printkart/storefront/internal/identity"
	"github.com/printkart/storefront/internal/newsletter"
	"github.com/printkart/storefront/internal/order"
)

// deps gathers every store the handlers touch. Tests build this with
// bare in-memory repos; main seeds demo data and optionally swaps the
// core repos to PostgreSQL.
type deps struct {
	products   catalog.Repository
	categories catalog.CategoryRepository
	sections   content.SectionRepository
	faqs       content.FAQRepository
	users      identity.Repository
	guests     *identity.GuestRepo
	subs       newsletter.Repository
	orders     order.Repository
	sessions   *identity.Sessions
	checkout   *checkout.Service
}

func newRouter(d deps) *gin.Engine {
	r := gin.New()
	r.Use(httpx.RequestID(), httpx.Logger(), gin.Recovery())

	r.GET("/healthz", func(c *gin.Context) { c.String(200, "ok") })

	api := r.Group("/api")
	{
		api.GET("/products", listProductsHandler(d.products))
		api.GET("/products/:id", getProductHandler(d.products))
		api.GET("/categories", listCategoriesHandler(d.categories))
		api.GET("/content", getContentHandler(d.sections))
		api.GET("/faqs", listFAQsHandler(d.faqs))
		api.POST("/newsletter", subscribeHandler(d.subs))
		api.POST("/guests", createGuestHandler(d.guests))
		api.POST("/auth/register", registerHandler(d.users))
		api.POST("/auth/login", loginHandler(d.sessions))
		api.POST("/checkout", checkoutHandler(d.checkout))
		api.GET("/track", trackShipmentHandler())
	}

	admin := r.Group("/api/admin", httpx.RequireAuth(d.sessions))
	{
		admin.POST("/products", createProductHandler(d.products))
		admin.PUT("/products/:id", updateProductHandler(d.products))
		admin.DELETE("/products/:id", deleteProductHandler(d.products))

		admin.POST("/categories", createCategoryHandler(d.categories))
		admin.PUT("/categories", updateCategoryHandler(d.categories))
		admin.DELETE("/categories", deleteCategoryHandler(d.categories))

		admin.GET("/content", listContentHandler(d.sections))
		admin.POST("/content", createContentHandler(d.sections))
		admin.PUT("/content", updateContentHandler(d.sections))
		admin.DELETE("/content", deleteContentHandler(d.sections))

		admin.POST("/faqs", createFAQHandler(d.faqs))
		admin.PUT("/faqs", updateFAQHandler(d.faqs))
		admin.DELETE("/faqs", deleteFAQHandler(d.faqs))

		admin.GET("/newsletter", listSubscribersHandler(d.subs))
		admin.DELETE("/newsletter", deleteSubscriberHandler(d.subs))

		admin.GET("/guests", listGuestsHandler(d.guests))
		admin.DELETE("/guests", deleteGuestHandler(d.guests))

		admin.GET("/users", listUsersHandler(d.users))

		admin.GET("/orders", listOrdersHandler(d.orders))
		admin.POST("/orders", createOrderHandler(d.orders))
		admin.GET("/orders/:id", getOrderHandler(d.orders))
		admin.PUT("/orders/:id/status", updateOrderStatusHandler(d.orders))
		admin.GET("/export", exportOrdersHandler(d.orders))

		admin.POST("/refund", refundHandler())
		admin.POST("/invoice", invoiceHandler())
		admin.POST("/shipments", updateShipmentHandler())
	}

	return r
}

func main() {
	cfg := config.Load()

	d := deps{
		products:   catalog.NewMemRepo(seedProducts()),
		categories: catalog.NewCategoryMemRepo(seedCategories()),
		sections:   content.NewSectionMemRepo(seedSections()),
		faqs:       content.NewFAQMemRepo(seedFAQs()),
		guests:     identity.NewGuestRepo(seedGuests()),
		subs:       newsletter.NewMemRepo(),
		orders:     order.NewMemRepo(seedOrders()),
	}
	users := identity.NewMemRepo(nil)
	d.users = users

	if cfg.PostgresDSN != "" {
		pool, err := pgxpool.New(context.Background(), cfg.PostgresDSN)
		if err != nil {
			log.Fatalf("postgres: %v", err)
		}
		defer pool.Close()
		d.products = catalog.NewPGRepo(pool)
		d.orders = order.NewPGRepo(pool)
		log.Printf("[store] products/orders backed by postgres")
	}

	// bootstrap admin account so the console is reachable on first run
	if _, err := users.Register(context.Background(), "Admin", cfg.AdminEmail, cfg.AdminPass); err != nil {
		log.Fatalf("admin bootstrap: %v", err)
	}
	d.sessions = identity.NewSessions(d.users)
	d.checkout = checkout.NewService(paymentGateway(), d.orders)

	r := newRouter(d)
	log.Printf("storefront listening on %s", cfg.HTTPAddr)
	log.Fatal(r.Run(cfg.HTTPAddr))
}

// paymentGateway adapts the fulfillment mock to the checkout Gateway.
func paymentGateway() checkout.Gateway {
	return checkout.GatewayFunc(func(amount, method string) error {
		_, err := fulfillment.AuthorizePayment(amount, method)
		return err
	})
}
