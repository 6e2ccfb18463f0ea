package handler

import (
	"context"
	"errors"
	"net/http"

	"lapakpedia/internal/app/marketplace/entity"
	"lapakpedia/internal/app/marketplace/service"
	"lapakpedia/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

type FavouriteServiceInterface interface {
	List(ctx context.Context, q entity.FavouriteListQuery) ([]entity.Favourite, error)
	Create(ctx context.Context, req *entity.CreateFavouriteRequest) (*entity.Favourite, error)
	Delete(ctx context.Context, id string) error
}

type FavouriteHandler struct {
	favouriteService FavouriteServiceInterface
	validator        *validator.Validate
}

func NewFavouriteHandler(favouriteService FavouriteServiceInterface) *FavouriteHandler {
	return &FavouriteHandler{
		favouriteService: favouriteService,
		validator:        validator.New(),
	}
}

func (h *FavouriteHandler) ListFavourites(c *gin.Context) {
	page, err := parsePageQuery(c)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error occurred while retrieving favourites"})
		return
	}

	q := entity.FavouriteListQuery{
		PageQuery: page,
		MemberID:  c.Query("memberID"),
		ProductID: c.Query("productID"),
	}

	favourites, err := h.favouriteService.List(c.Request.Context(), q)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error occurred while retrieving favourites"})
		return
	}

	c.JSON(http.StatusOK, favourites)
}

func (h *FavouriteHandler) CreateFavourite(c *gin.Context) {
	var req entity.CreateFavouriteRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Error occurred while creating favourite"})
		return
	}

	if err := h.validator.Struct(req); err != nil {
		logger.Warn().Str("reason", formatValidationError(err)).Msg("Favourite payload rejected")
		c.JSON(http.StatusBadRequest, gin.H{"message": "Error occurred while creating favourite"})
		return
	}

	favourite, err := h.favouriteService.Create(c.Request.Context(), &req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Error occurred while creating favourite"})
		return
	}

	c.JSON(http.StatusOK, favourite)
}

func (h *FavouriteHandler) DeleteFavourite(c *gin.Context) {
	if err := h.favouriteService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, service.ErrFavouriteNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Favourite not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Couldn't delete favourite"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Favourite deleted successfully!"})
}
