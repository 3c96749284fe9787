package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/yeremiapane/northwind-api/models"
	"github.com/yeremiapane/northwind-api/utils"
)

type DeviceController struct {
	DB *gorm.DB
}

func NewDeviceController(db *gorm.DB) *DeviceController {
	return &DeviceController{DB: db}
}

// RegisterDevice -> store an FCM token; registering the same token twice is a
// no-op, not an error
func (dc *DeviceController) RegisterDevice(c *gin.Context) {
	var deviceToken models.DeviceToken
	if err := c.ShouldBindJSON(&deviceToken); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if deviceToken.Token == "" {
		utils.RespondError(c, http.StatusBadRequest, errors.New("device token is required"))
		return
	}

	var existing models.DeviceToken
	err := dc.DB.First(&existing, "token = ?", deviceToken.Token).Error
	if err == nil {
		utils.RespondJSON(c, http.StatusOK, "Device token already registered.", existing)
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	deviceToken.RegisteredAt = time.Now().UTC()
	if err := dc.DB.Create(&deviceToken).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("Device token registered (ID=%d)", deviceToken.DeviceTokenID)

	c.Header("Location", fmt.Sprintf("/api/device/check/%s", deviceToken.Token))
	utils.RespondJSON(c, http.StatusCreated, "Device token registered.", deviceToken)
}

// CheckDeviceRegistration -> report whether a token is registered; always 200
// for a well-formed request
func (dc *DeviceController) CheckDeviceRegistration(c *gin.Context) {
	token := c.Param("token")
	if token == "" {
		utils.RespondError(c, http.StatusBadRequest, errors.New("device token is required"))
		return
	}

	var existing models.DeviceToken
	err := dc.DB.First(&existing, "token = ?", token).Error
	if err == nil {
		utils.RespondJSON(c, http.StatusOK, "Device token is already registered.", gin.H{"isRegistered": true})
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Device token is not registered.", gin.H{"isRegistered": false})
}
