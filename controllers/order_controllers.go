package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/yeremiapane/northwind-api/models"
	"github.com/yeremiapane/northwind-api/services"
	"github.com/yeremiapane/northwind-api/utils"
)

type OrderController struct {
	DB   *gorm.DB
	Push services.Notifier
}

func NewOrderController(db *gorm.DB, push services.Notifier) *OrderController {
	return &OrderController{DB: db, Push: push}
}

// GetAllOrders -> paginated list of orders with the related customer
func (oc *OrderController) GetAllOrders(c *gin.Context) {
	pageNumber, pageSize, err := parsePagination(c)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var totalOrders int64
	if err := oc.DB.Model(&models.Order{}).Count(&totalOrders).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	// An empty page is still a valid page.
	var orders []models.Order
	if err := oc.DB.Preload("Customer").
		Offset((pageNumber - 1) * pageSize).
		Limit(pageSize).
		Find(&orders).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.SetPaginationHeader(c, utils.NewPaginationMeta(totalOrders, pageNumber, pageSize))
	utils.RespondJSON(c, http.StatusOK, "List of orders", orders)
}

// GetOrderByID -> detail of one order
func (oc *OrderController) GetOrderByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("order_id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("order id must be an integer"))
		return
	}

	var order models.Order
	if err := oc.DB.Preload("Customer").First(&order, "order_id = ?", id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("order not found"))
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Order detail", order)
}

// CreateOrder -> insert an order for an existing customer, then notify every
// registered device (best effort, the response does not depend on delivery)
func (oc *OrderController) CreateOrder(c *gin.Context) {
	var order models.Order
	if err := c.ShouldBindJSON(&order); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if order.CustomerID == nil || *order.CustomerID == "" {
		utils.RespondError(c, http.StatusBadRequest, errors.New("customer id is required"))
		return
	}

	var count int64
	if err := oc.DB.Model(&models.Customer{}).
		Where("customer_id = ?", *order.CustomerID).
		Count(&count).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	if count == 0 {
		utils.RespondError(c, http.StatusBadRequest, errors.New("customer with this ID does not exist"))
		return
	}

	if order.OrderDate.IsZero() {
		order.OrderDate = time.Now().UTC()
	}
	order.Customer = nil

	if err := oc.DB.Create(&order).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("New order created (ID=%d) for customer %s", order.OrderID, *order.CustomerID)

	oc.notifyOrderCreated(c, &order)

	c.Header("Location", fmt.Sprintf("/api/orders/%d", order.OrderID))
	utils.RespondJSON(c, http.StatusCreated, "Order created", order)
}

// notifyOrderCreated fans the new order out to every registered device token.
// Failures are logged, never surfaced: the order is already committed.
func (oc *OrderController) notifyOrderCreated(c *gin.Context, order *models.Order) {
	var deviceTokens []models.DeviceToken
	if err := oc.DB.Find(&deviceTokens).Error; err != nil {
		utils.ErrorLogger.Printf("Failed to load device tokens for order %d: %v", order.OrderID, err)
		return
	}

	tokens := make([]string, 0, len(deviceTokens))
	for _, dt := range deviceTokens {
		tokens = append(tokens, dt.Token)
	}

	body := fmt.Sprintf("Order #%d has been created.", order.OrderID)
	if err := oc.Push.SendPushNotification(c.Request.Context(), tokens, "New Order Created", body, *order.CustomerID); err != nil {
		utils.ErrorLogger.Printf("Failed to send push notification for order %d: %v", order.OrderID, err)
	}
}

// UpdateOrder -> full replace of the order's scalar fields
func (oc *OrderController) UpdateOrder(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("order_id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("order id must be an integer"))
		return
	}

	var payload models.Order
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if uint(id) != payload.OrderID {
		utils.RespondError(c, http.StatusBadRequest, errors.New("order ID in the URL does not match the payload"))
		return
	}

	var order models.Order
	if err := oc.DB.First(&order, "order_id = ?", id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("order not found"))
		return
	}

	order.CustomerID = payload.CustomerID
	order.OrderDate = payload.OrderDate
	order.TotalAmount = payload.TotalAmount

	if err := oc.DB.Save(&order).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// DeleteOrder -> remove one order
func (oc *OrderController) DeleteOrder(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("order_id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("order id must be an integer"))
		return
	}

	var order models.Order
	if err := oc.DB.First(&order, "order_id = ?", id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("order not found"))
		return
	}

	if err := oc.DB.Delete(&order).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	c.Status(http.StatusNoContent)
}
