package delivery

import (
	"errors"
	"net/http"

	"cardshop-backend/internal/cart/usecase"

	"github.com/gin-gonic/gin"
)

type CartHandler struct {
	cartUsecase usecase.CartUsecase
}

func NewCartHandler(cartUsecase usecase.CartUsecase) *CartHandler {
	return &CartHandler{
		cartUsecase: cartUsecase,
	}
}

func (h *CartHandler) GetAll(c *gin.Context) {
	userID := c.GetString("userID")

	cards, err := h.cartUsecase.GetAll(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"cards": cards})
}

func (h *CartHandler) Add(c *gin.Context) {
	userID := c.GetString("userID")
	cardID := c.Param("cardId")

	cartID, err := h.cartUsecase.Add(userID, cardID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"id": cartID})
}

func (h *CartHandler) Remove(c *gin.Context) {
	userID := c.GetString("userID")
	cardID := c.Param("cardId")

	cartID, err := h.cartUsecase.Remove(userID, cardID)
	if err != nil {
		if errors.Is(err, usecase.ErrCartNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"id": cartID})
}

func (h *CartHandler) Clear(c *gin.Context) {
	userID := c.GetString("userID")

	if err := h.cartUsecase.Clear(userID); err != nil {
		switch {
		case errors.Is(err, usecase.ErrCartNotFound):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		case errors.Is(err, usecase.ErrCartEmpty):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.Status(http.StatusNoContent)
}
