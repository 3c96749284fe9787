package router

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/yeremiapane/northwind-api/controllers"
	"github.com/yeremiapane/northwind-api/middlewares"
	"github.com/yeremiapane/northwind-api/services"
)

func SetupRouter(db *gorm.DB, push services.Notifier) *gin.Engine {
	r := gin.Default()

	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddlewares())
	r.Use(middlewares.LoggerMiddleware())
	r.Use(middlewares.NewRateLimiter(50, 1).RateLimit())

	customerCtrl := controllers.NewCustomerController(db)
	orderCtrl := controllers.NewOrderController(db, push)
	deviceCtrl := controllers.NewDeviceController(db)

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	api := r.Group("/api")
	{
		// CUSTOMERS
		api.GET("/customers", customerCtrl.GetAllCustomers)
		api.POST("/customers", customerCtrl.CreateCustomer)
		api.GET("/customers/:customer_id", customerCtrl.GetCustomerByID)
		api.PUT("/customers/:customer_id", customerCtrl.UpdateCustomer)
		api.DELETE("/customers/:customer_id", customerCtrl.DeleteCustomer)

		// ORDERS
		api.GET("/orders", orderCtrl.GetAllOrders)
		api.POST("/orders", orderCtrl.CreateOrder)
		api.GET("/orders/:order_id", orderCtrl.GetOrderByID)
		api.PUT("/orders/:order_id", orderCtrl.UpdateOrder)
		api.DELETE("/orders/:order_id", orderCtrl.DeleteOrder)

		// DEVICE TOKENS
		api.POST("/device/register", deviceCtrl.RegisterDevice)
		api.GET("/device/check/:token", deviceCtrl.CheckDeviceRegistration)
	}

	return r
}
