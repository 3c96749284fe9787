package Controllers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"github.com/yeremiapane/northwind-api/controllers"
	"github.com/yeremiapane/northwind-api/models"
	"github.com/yeremiapane/northwind-api/utils"
)

func setupCustomerRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	customerCtrl := controllers.NewCustomerController(db)
	r.GET("/api/customers", customerCtrl.GetAllCustomers)
	r.POST("/api/customers", customerCtrl.CreateCustomer)
	r.GET("/api/customers/:customer_id", customerCtrl.GetCustomerByID)
	r.PUT("/api/customers/:customer_id", customerCtrl.UpdateCustomer)
	r.DELETE("/api/customers/:customer_id", customerCtrl.DeleteCustomer)
	return r
}

func seedCustomer(t *testing.T, db *gorm.DB, id, company string) {
	t.Helper()
	err := db.Create(&models.Customer{CustomerID: id, CompanyName: company}).Error
	assert.NoError(t, err)
}

func TestGetAllCustomersRejectsBadPagination(t *testing.T) {
	db := setupTestDB(t)
	r := setupCustomerRouter(db)
	seedCustomer(t, db, "ALFKI", "Alfreds Futterkiste")

	for _, query := range []string{
		"pageNumber=0&pageSize=10",
		"pageNumber=1&pageSize=0",
		"pageNumber=-3&pageSize=10",
		"pageNumber=abc&pageSize=10",
	} {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/customers?"+query, nil)
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code, query)
	}

	// Rejected requests must not touch the store.
	var count int64
	assert.NoError(t, db.Model(&models.Customer{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestGetAllCustomersPaginationHeader(t *testing.T) {
	db := setupTestDB(t)
	r := setupCustomerRouter(db)

	ids := []string{"ALFKI", "ANATR", "ANTON", "AROUT", "BERGS"}
	for _, id := range ids {
		seedCustomer(t, db, id, "Company "+id)
	}

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/customers?pageNumber=2&pageSize=2", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var meta utils.PaginationMeta
	assert.NoError(t, json.Unmarshal([]byte(w.Header().Get(utils.PaginationHeader)), &meta))
	assert.Equal(t, int64(5), meta.TotalCount)
	assert.Equal(t, 2, meta.PageSize)
	assert.Equal(t, 2, meta.CurrentPage)
	assert.Equal(t, 3, meta.TotalPages)

	var resp utils.JSONResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	customers := resp.Data.([]interface{})
	assert.Len(t, customers, 2)
}

func TestGetCustomerByIDLoadsOrders(t *testing.T) {
	db := setupTestDB(t)
	r := setupCustomerRouter(db)

	seedCustomer(t, db, "ALFKI", "Alfreds Futterkiste")
	customerID := "ALFKI"
	assert.NoError(t, db.Create(&models.Order{CustomerID: &customerID, TotalAmount: 42.5}).Error)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/customers/ALFKI", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp utils.JSONResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp.Data.(map[string]interface{})
	assert.Equal(t, "ALFKI", data["customer_id"])
	orders := data["orders"].([]interface{})
	assert.Len(t, orders, 1)
}

func TestGetCustomerByIDNotFound(t *testing.T) {
	db := setupTestDB(t)
	r := setupCustomerRouter(db)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/customers/NOPE", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	var resp utils.JSONResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "customer not found", resp.Message)
}

func TestCreateCustomerWithNestedOrders(t *testing.T) {
	db := setupTestDB(t)
	r := setupCustomerRouter(db)

	payload := map[string]interface{}{
		"customer_id":  "ALFKI",
		"company_name": "Alfreds Futterkiste",
		"city":         "Berlin",
		"orders": []map[string]interface{}{
			// Deliberately wrong customer id: create must force it to ALFKI.
			{"customer_id": "OTHER", "total_amount": 10.0},
			{"total_amount": 20.0},
		},
	}
	body, _ := json.Marshal(payload)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/api/customers", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "/api/customers/ALFKI", w.Header().Get("Location"))

	var orders []models.Order
	assert.NoError(t, db.Find(&orders).Error)
	assert.Len(t, orders, 2)
	for _, o := range orders {
		assert.NotNil(t, o.CustomerID)
		assert.Equal(t, "ALFKI", *o.CustomerID)
	}
}

func TestCreateCustomerDuplicateID(t *testing.T) {
	db := setupTestDB(t)
	r := setupCustomerRouter(db)
	seedCustomer(t, db, "ALFKI", "Alfreds Futterkiste")

	body, _ := json.Marshal(map[string]interface{}{
		"customer_id":  "ALFKI",
		"company_name": "Impostor Inc",
	})
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/api/customers", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var count int64
	assert.NoError(t, db.Model(&models.Customer{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestUpdateCustomer(t *testing.T) {
	db := setupTestDB(t)
	r := setupCustomerRouter(db)
	seedCustomer(t, db, "ALFKI", "Alfreds Futterkiste")

	payload := map[string]interface{}{
		"customer_id":  "ALFKI",
		"company_name": "Alfreds Renamed",
		"city":         "Hamburg",
	}
	body, _ := json.Marshal(payload)

	// ID mismatch between path and payload.
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("PUT", "/api/customers/ANATR", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Missing target.
	body, _ = json.Marshal(map[string]interface{}{"customer_id": "NOPE"})
	w = httptest.NewRecorder()
	req, _ = http.NewRequest("PUT", "/api/customers/NOPE", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)

	// Applying the same update twice ends in the same state as once.
	for i := 0; i < 2; i++ {
		body, _ = json.Marshal(payload)
		w = httptest.NewRecorder()
		req, _ = http.NewRequest("PUT", "/api/customers/ALFKI", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusNoContent, w.Code)

		var customer models.Customer
		assert.NoError(t, db.First(&customer, "customer_id = ?", "ALFKI").Error)
		assert.Equal(t, "Alfreds Renamed", customer.CompanyName)
		assert.Equal(t, "Hamburg", customer.City)
	}
}

func TestDeleteCustomerDetachesOrders(t *testing.T) {
	db := setupTestDB(t)
	r := setupCustomerRouter(db)
	seedCustomer(t, db, "ALFKI", "Alfreds Futterkiste")

	customerID := "ALFKI"
	assert.NoError(t, db.Create(&models.Order{CustomerID: &customerID, TotalAmount: 10}).Error)
	assert.NoError(t, db.Create(&models.Order{CustomerID: &customerID, TotalAmount: 20}).Error)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("DELETE", "/api/customers/ALFKI", nil)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNoContent, w.Code)

	var customerCount int64
	assert.NoError(t, db.Model(&models.Customer{}).Count(&customerCount).Error)
	assert.Equal(t, int64(0), customerCount)

	// Orders survive, with their customer reference nulled.
	var orders []models.Order
	assert.NoError(t, db.Find(&orders).Error)
	assert.Len(t, orders, 2)
	for _, o := range orders {
		assert.Nil(t, o.CustomerID)
	}

	// Deleting again -> not found.
	w = httptest.NewRecorder()
	req, _ = http.NewRequest("DELETE", "/api/customers/ALFKI", nil)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
