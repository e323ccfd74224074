package handler

import (
	"time"

	"main/model"
	"main/usecase"
	"main/utils"

	"github.com/gin-gonic/gin"
)

type QuotesHandler struct{}

func NewQuotesHandler() *QuotesHandler {
	return &QuotesHandler{}
}

func (h *QuotesHandler) GetDailyQuote(c *gin.Context) {
	utils.Success(c, usecase.DailyQuote(time.Now()))
}

func (h *QuotesHandler) GetRandomQuote(c *gin.Context) {
	category := c.Query("category")
	if !utils.ValidateQuoteCategory(category) {
		utils.BadRequest(c, "Unknown quote category")
		return
	}

	utils.Success(c, usecase.RandomQuote(model.QuoteCategory(category)))
}
