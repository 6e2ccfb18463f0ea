package handler

import (
	"net/http"

	"lapakpedia/pkg/logger"
	"lapakpedia/pkg/metrics"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const serviceName = "marketplace"

// route - строка таблицы маршрутов. Защищённые маршруты проходят
// через bearer-токен middleware, остальные публичны.
type route struct {
	method  string
	path    string
	guarded bool
	handler gin.HandlerFunc
}

// routeTable перечисляет весь API. Разбиение на guarded/public
// повторяет исходный контракт: чтение каталога и покупок публично,
// мутации и всё вокруг пользователей и заказов - под токеном.
func routeTable(
	authHandler *AuthHandler,
	userHandler *UserHandler,
	catalogHandler *CatalogHandler,
	favouriteHandler *FavouriteHandler,
	orderHandler *OrderHandler,
) []route {
	return []route{
		{http.MethodPost, "/login", false, authHandler.Login},
		{http.MethodGet, "/me", true, authHandler.Me},

		{http.MethodGet, "/users", true, userHandler.ListUsers},
		{http.MethodPost, "/users", false, userHandler.CreateUser},
		{http.MethodGet, "/users/:id", true, userHandler.GetUser},
		{http.MethodPut, "/users/:id", true, userHandler.UpdateUser},
		{http.MethodDelete, "/users/:id", true, userHandler.DeleteUser},

		{http.MethodGet, "/categories", false, catalogHandler.ListCategories},
		{http.MethodPost, "/categories", true, catalogHandler.CreateCategory},
		{http.MethodGet, "/categories/:id", false, catalogHandler.GetCategory},
		{http.MethodPut, "/categories/:id", true, catalogHandler.UpdateCategory},
		{http.MethodDelete, "/categories/:id", true, catalogHandler.DeleteCategory},

		{http.MethodGet, "/products", false, catalogHandler.ListProducts},
		{http.MethodPost, "/products", true, catalogHandler.CreateProduct},
		{http.MethodGet, "/products/:id", false, catalogHandler.GetProduct},
		{http.MethodPut, "/products/:id", true, catalogHandler.UpdateProduct},
		{http.MethodDelete, "/products/:id", true, catalogHandler.DeleteProduct},

		{http.MethodGet, "/favourites", false, favouriteHandler.ListFavourites},
		{http.MethodPost, "/favourites", true, favouriteHandler.CreateFavourite},
		{http.MethodDelete, "/favourites/:id", true, favouriteHandler.DeleteFavourite},

		{http.MethodGet, "/orders", true, orderHandler.ListOrders},
		{http.MethodPost, "/orders", true, orderHandler.CreateOrder},
		{http.MethodGet, "/orders/:id", true, orderHandler.GetOrder},
		{http.MethodPut, "/orders/:id", true, orderHandler.UpdateOrder},
		{http.MethodDelete, "/orders/:id", true, orderHandler.DeleteOrder},

		{http.MethodGet, "/purchases", false, orderHandler.ListPurchases},
		{http.MethodPost, "/purchases", true, orderHandler.CreatePurchase},
		{http.MethodGet, "/purchases/:id", true, orderHandler.GetPurchase},
		{http.MethodPut, "/purchases/:id", true, orderHandler.UpdatePurchase},
		{http.MethodDelete, "/purchases/:id", true, orderHandler.DeletePurchase},
	}
}

// SetupRoutes собирает gin.Engine: сервисные эндпоинты, статика фото
// и таблица маршрутов API
func SetupRoutes(
	authHandler *AuthHandler,
	userHandler *UserHandler,
	catalogHandler *CatalogHandler,
	favouriteHandler *FavouriteHandler,
	orderHandler *OrderHandler,
	authMiddleware *AuthMiddleware,
	photoDir string,
) *gin.Engine {
	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(logger.GinLoggerMiddleware())
	router.Use(metrics.GinPrometheusMiddleware(serviceName))

	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"https://*", "http://*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposeHeaders:    []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"service": serviceName,
		})
	})

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Загруженные фото отдаются как статика
	router.Static("/images", photoDir)

	guard := authMiddleware.Authenticate()
	for _, r := range routeTable(authHandler, userHandler, catalogHandler, favouriteHandler, orderHandler) {
		if r.guarded {
			router.Handle(r.method, r.path, guard, r.handler)
			continue
		}
		router.Handle(r.method, r.path, r.handler)
	}

	return router
}
