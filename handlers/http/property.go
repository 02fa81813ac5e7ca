package httpHandler

import (
	"net/http"

	"realty-server/entities"
	"realty-server/usecases"

	"github.com/gin-gonic/gin"
)

type PropertyHandler struct {
	useCase *usecases.PropertyUseCase
}

func NewPropertyHandler(useCase *usecases.PropertyUseCase) *PropertyHandler {
	return &PropertyHandler{useCase: useCase}
}

// CreateProperty handles POST /properties; callers get back the stored
// record field for field.
func (h *PropertyHandler) CreateProperty(c *gin.Context) {
	var property entities.Property

	if err := c.ShouldBindJSON(&property); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	if err := h.useCase.CreateProperty(&property); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, property)
}

// GetProperty handles GET /properties/:id
func (h *PropertyHandler) GetProperty(c *gin.Context) {
	id := c.Param("id")

	property, err := h.useCase.GetProperty(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Property not found"})
		return
	}

	c.JSON(http.StatusOK, property)
}

// GetAllProperties handles GET /properties
func (h *PropertyHandler) GetAllProperties(c *gin.Context) {
	properties, err := h.useCase.GetAllProperties()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve properties"})
		return
	}
	if properties == nil {
		properties = []entities.Property{}
	}

	c.JSON(http.StatusOK, properties)
}
