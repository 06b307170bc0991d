package delivery

import (
	"net/http"
	"strconv"

	carddomain "cardshop-backend/internal/card/domain"
	carddto "cardshop-backend/internal/card/dto"
	"cardshop-backend/internal/card/usecase"

	"github.com/gin-gonic/gin"
	"github.com/lib/pq"
)

type CardHandler struct {
	cardUsecase usecase.CardUsecase
}

func NewCardHandler(cardUsecase usecase.CardUsecase) *CardHandler {
	return &CardHandler{
		cardUsecase: cardUsecase,
	}
}

func (h *CardHandler) Create(c *gin.Context) {
	var req carddto.CreateCardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	card := &carddomain.Card{
		Title:       req.Title,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		Type:        req.Type,
		Price:       req.Price,
		Weight:      req.Weight,
		Kcal:        req.Kcal,
		Components:  pq.StringArray(req.Components),
	}

	if err := h.cardUsecase.Create(card); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, card)
}

func (h *CardHandler) List(c *gin.Context) {
	page := 1
	offset := 10

	if pageStr := c.Query("page"); pageStr != "" {
		if parsed, err := strconv.Atoi(pageStr); err == nil && parsed > 0 {
			page = parsed
		}
	}

	if offsetStr := c.Query("offset"); offsetStr != "" {
		if parsed, err := strconv.Atoi(offsetStr); err == nil && parsed > 0 {
			offset = parsed
		}
	}

	var cardType *carddomain.CardType
	if typeStr := c.Query("type"); typeStr != "" {
		t := carddomain.CardType(typeStr)
		cardType = &t
	}

	cards, err := h.cardUsecase.GetAllOrByType(page, offset, cardType)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, carddto.CardsResponse{
		Cards:  cards,
		Page:   page,
		Offset: offset,
	})
}

func (h *CardHandler) GetByID(c *gin.Context) {
	id := c.Param("id")

	card, err := h.cardUsecase.GetOneByID(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if card == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "card not found"})
		return
	}

	c.JSON(http.StatusOK, card)
}
