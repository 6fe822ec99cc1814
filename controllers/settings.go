package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"shoppos/models"
	"shoppos/store"
)

type SettingsController struct {
	settings *store.SettingsStore
}

func NewSettingsController(settings *store.SettingsStore) *SettingsController {
	return &SettingsController{settings: settings}
}

func (s *SettingsController) Get(c *gin.Context) {
	c.JSON(http.StatusOK, s.settings.Get())
}

type settingsInput struct {
	ShopName string `json:"shopName" binding:"required"`
	Address  string `json:"address"`
	Phone    string `json:"phone"`
	Currency string `json:"currency" binding:"required"`
	Footer   string `json:"footer"`
}

func (s *SettingsController) Update(c *gin.Context) {
	var input settingsInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	settings := models.Settings{
		ShopName: input.ShopName,
		Address:  input.Address,
		Phone:    input.Phone,
		Currency: input.Currency,
		Footer:   input.Footer,
	}
	s.settings.Update(settings)
	c.JSON(http.StatusOK, settings)
}
