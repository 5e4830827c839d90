package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"resepku/internal/errors"
	"resepku/internal/model"
	"resepku/internal/service"
)

// ShareHandler handles publication, favorite, and public-feed endpoints.
type ShareHandler struct {
	recipeService service.RecipeService
}

// NewShareHandler creates a new share handler.
func NewShareHandler(recipeService service.RecipeService) *ShareHandler {
	return &ShareHandler{recipeService: recipeService}
}

// FavoriteRequest represents a favorite request. resepId is the publication id.
type FavoriteRequest struct {
	SharedRecipeID uint `json:"resepId" validate:"required"`
}

// Share godoc
// @Summary Publish an owned recipe
// @Tags sharing
// @Produce json
// @Security BearerAuth
// @Param id path int true "Recipe ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Router /user/share-recipe/{id} [post]
func (h *ShareHandler) Share(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}
	recipeID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.recipeService.Share(c.Request().Context(), userID, recipeID); err != nil {
		c.Logger().Warnf("share recipe %d: %v", recipeID, err)
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, map[string]string{
		"message": "Recipe shared successfully",
	})
}

// Unshare godoc
// @Summary Withdraw a publication
// @Tags sharing
// @Produce json
// @Security BearerAuth
// @Param id path int true "Publication ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} errors.ErrorResponse
// @Router /user/unshare-recipe/{id} [delete]
func (h *ShareHandler) Unshare(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}
	shareID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.recipeService.Unshare(c.Request().Context(), userID, shareID); err != nil {
		c.Logger().Warnf("unshare %d: %v", shareID, err)
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, map[string]string{
		"message": "Recipe unshared successfully",
	})
}

// Favorite godoc
// @Summary Favorite a published recipe
// @Tags favorites
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body FavoriteRequest true "Publication to favorite"
// @Success 200 {object} map[string]string
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /user/fav-recipe [post]
func (h *ShareHandler) Favorite(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	var req FavoriteRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Recipe ID is required")
	}

	if err := h.recipeService.Favorite(c.Request().Context(), userID, req.SharedRecipeID); err != nil {
		c.Logger().Warnf("favorite %d: %v", req.SharedRecipeID, err)
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, map[string]string{
		"message": "Recipe added to favorites successfully",
	})
}

// Unfavorite godoc
// @Summary Remove a favorite
// @Tags favorites
// @Produce json
// @Security BearerAuth
// @Param id path int true "Publication ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} errors.ErrorResponse
// @Router /user/unfav-recipe/{id} [delete]
func (h *ShareHandler) Unfavorite(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}
	shareID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.recipeService.Unfavorite(c.Request().Context(), userID, shareID); err != nil {
		c.Logger().Warnf("unfavorite %d: %v", shareID, err)
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, map[string]string{
		"message": "Recipe removed from favorites successfully",
	})
}

// CheckFavorite godoc
// @Summary Check whether a publication is favorited
// @Tags favorites
// @Produce json
// @Security BearerAuth
// @Param id path int true "Publication ID"
// @Success 200 {object} map[string]bool
// @Router /user/check-fav-recipe/{id} [get]
func (h *ShareHandler) CheckFavorite(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}
	shareID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	favorited, err := h.recipeService.IsFavorited(c.Request().Context(), userID, shareID)
	if err != nil {
		c.Logger().Errorf("check favorite %d: %v", shareID, err)
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, map[string]bool{
		"isFavorited": favorited,
	})
}

// FavoriteRecipes godoc
// @Summary List the authenticated user's favorites
// @Tags favorites
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.SharedSummary
// @Router /user/favorite-recipes [get]
func (h *ShareHandler) FavoriteRecipes(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	rows, err := h.recipeService.FavoriteRecipes(c.Request().Context(), userID)
	if err != nil {
		c.Logger().Errorf("favorite recipes %d: %v", userID, err)
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	if rows == nil {
		rows = []model.SharedSummary{}
	}

	return c.JSON(http.StatusOK, rows)
}

// PublishedRecipes godoc
// @Summary List publications of the authenticated user's recipes
// @Tags sharing
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.SharedSummary
// @Router /user/published-recipes [get]
func (h *ShareHandler) PublishedRecipes(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	rows, err := h.recipeService.PublishedRecipes(c.Request().Context(), userID)
	if err != nil {
		c.Logger().Errorf("published recipes %d: %v", userID, err)
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	if rows == nil {
		rows = []model.SharedSummary{}
	}

	return c.JSON(http.StatusOK, rows)
}

// AllFavorites godoc
// @Summary List every favorite with its recipe
// @Tags favorites
// @Produce json
// @Success 200 {array} model.FavoriteRow
// @Failure 404 {object} errors.ErrorResponse
// @Router /favresep [get]
func (h *ShareHandler) AllFavorites(c echo.Context) error {
	rows, err := h.recipeService.AllFavorites(c.Request().Context())
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, rows)
}

// SearchRecipes godoc
// @Summary Search the public feed
// @Tags sharing
// @Produce json
// @Param search query string false "Keyword"
// @Success 200 {array} model.PublishedRecipe
// @Router /recipes [get]
func (h *ShareHandler) SearchRecipes(c echo.Context) error {
	rows, err := h.recipeService.Search(c.Request().Context(), c.QueryParam("search"))
	if err != nil {
		c.Logger().Errorf("search recipes: %v", err)
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	if rows == nil {
		rows = []model.PublishedRecipe{}
	}

	return c.JSON(http.StatusOK, rows)
}
