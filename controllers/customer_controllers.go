package controllers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/yeremiapane/northwind-api/models"
	"github.com/yeremiapane/northwind-api/utils"
)

type CustomerController struct {
	DB *gorm.DB
}

func NewCustomerController(db *gorm.DB) *CustomerController {
	return &CustomerController{DB: db}
}

// GetAllCustomers -> paginated list of customers with their orders
func (cc *CustomerController) GetAllCustomers(c *gin.Context) {
	pageNumber, pageSize, err := parsePagination(c)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var totalCustomers int64
	if err := cc.DB.Model(&models.Customer{}).Count(&totalCustomers).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	var customers []models.Customer
	if err := cc.DB.Preload("Orders").
		Offset((pageNumber - 1) * pageSize).
		Limit(pageSize).
		Find(&customers).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.SetPaginationHeader(c, utils.NewPaginationMeta(totalCustomers, pageNumber, pageSize))
	utils.RespondJSON(c, http.StatusOK, "List of customers", customers)
}

// GetCustomerByID -> detail of one customer with related orders
func (cc *CustomerController) GetCustomerByID(c *gin.Context) {
	id := c.Param("customer_id")

	var customer models.Customer
	if err := cc.DB.Preload("Orders").First(&customer, "customer_id = ?", id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("customer not found"))
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Customer detail", customer)
}

// CreateCustomer -> insert a customer, optionally with nested orders
func (cc *CustomerController) CreateCustomer(c *gin.Context) {
	var customer models.Customer
	if err := c.ShouldBindJSON(&customer); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if customer.CustomerID == "" {
		utils.RespondError(c, http.StatusBadRequest, errors.New("customer id is required"))
		return
	}

	var count int64
	if err := cc.DB.Model(&models.Customer{}).
		Where("customer_id = ?", customer.CustomerID).
		Count(&count).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	if count > 0 {
		utils.RespondError(c, http.StatusBadRequest, errors.New("customer with this ID already exists"))
		return
	}

	// Nested orders always belong to the customer being created.
	for i := range customer.Orders {
		customer.Orders[i].CustomerID = &customer.CustomerID
	}

	if err := cc.DB.Create(&customer).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("New customer created (ID=%s)", customer.CustomerID)

	c.Header("Location", fmt.Sprintf("/api/customers/%s", customer.CustomerID))
	utils.RespondJSON(c, http.StatusCreated, "Customer created", customer)
}

// UpdateCustomer -> full replace of the customer's scalar fields
func (cc *CustomerController) UpdateCustomer(c *gin.Context) {
	id := c.Param("customer_id")

	var payload models.Customer
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if id != payload.CustomerID {
		utils.RespondError(c, http.StatusBadRequest, errors.New("customer ID in the URL does not match the payload"))
		return
	}

	var customer models.Customer
	if err := cc.DB.First(&customer, "customer_id = ?", id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("customer not found"))
		return
	}

	customer.CompanyName = payload.CompanyName
	customer.ContactName = payload.ContactName
	customer.Address = payload.Address
	customer.City = payload.City
	customer.Country = payload.Country
	customer.Phone = payload.Phone

	if err := cc.DB.Save(&customer).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// DeleteCustomer -> remove the customer; its orders keep existing with a
// null customer id (SET NULL, not cascade)
func (cc *CustomerController) DeleteCustomer(c *gin.Context) {
	id := c.Param("customer_id")

	var customer models.Customer
	if err := cc.DB.Preload("Orders").First(&customer, "customer_id = ?", id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("customer not found"))
		return
	}

	if err := cc.DB.Model(&models.Order{}).
		Where("customer_id = ?", id).
		Update("customer_id", nil).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	if err := cc.DB.Delete(&customer).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("Customer deleted (ID=%s), %d order(s) detached", id, len(customer.Orders))

	c.Status(http.StatusNoContent)
}
