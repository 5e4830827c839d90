package handler

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"resepku/internal/errors"
	"resepku/internal/model"
	"resepku/internal/service"
	"resepku/internal/storage"
)

// RecipeHandler handles owned-recipe endpoints.
type RecipeHandler struct {
	recipeService service.RecipeService
	store         *storage.LocalStore
}

// NewRecipeHandler creates a new recipe handler.
func NewRecipeHandler(recipeService service.RecipeService, store *storage.LocalStore) *RecipeHandler {
	return &RecipeHandler{recipeService: recipeService, store: store}
}

// AddRecipeRequest represents a new recipe.
type AddRecipeRequest struct {
	Title       string   `json:"title" validate:"required"`
	Servings    string   `json:"servings"`
	CookTime    string   `json:"cookTime"`
	Ingredients []string `json:"ingredients" validate:"required,min=1"`
	Steps       []string `json:"steps" validate:"required,min=1"`
	ImagePath   string   `json:"imagePath"`
}

// AddRecipe godoc
// @Summary Add a recipe
// @Tags recipes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body AddRecipeRequest true "Recipe data"
// @Success 201 {object} map[string]string
// @Failure 400 {object} errors.ErrorResponse
// @Router /addRecipe [post]
func (h *RecipeHandler) AddRecipe(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	var req AddRecipeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Required fields are missing.")
	}

	if _, err := h.recipeService.AddRecipe(c.Request().Context(), userID, service.RecipeInput{
		Title:       req.Title,
		Servings:    req.Servings,
		CookTime:    req.CookTime,
		Ingredients: req.Ingredients,
		Steps:       req.Steps,
		ImagePath:   req.ImagePath,
	}); err != nil {
		c.Logger().Errorf("add recipe: %v", err)
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusCreated, map[string]string{
		"message": "Recipe added successfully.",
	})
}

// EditRecipe godoc
// @Summary Edit an owned recipe
// @Tags recipes
// @Accept mpfd
// @Produce json
// @Security BearerAuth
// @Param id path int true "Recipe ID"
// @Param image formData file false "Replacement image"
// @Success 200 {object} map[string]string
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /editRecipe/{id} [put]
func (h *RecipeHandler) EditRecipe(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}
	recipeID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	title := c.FormValue("title")
	ingredients, ingErr := decodeListField(c.FormValue("ingredients"))
	steps, stepErr := decodeListField(c.FormValue("steps"))
	if title == "" || ingErr != nil || stepErr != nil || len(ingredients) == 0 || len(steps) == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "Required fields are missing")
	}

	// A freshly uploaded image wins over the existing path field.
	imagePath := ""
	responsePath := c.FormValue("existingImagePath")
	if fh, fileErr := c.FormFile("image"); fileErr == nil {
		stored, saveErr := h.store.Save(fh, "")
		if saveErr != nil {
			return mapUploadError(c, saveErr)
		}
		imagePath = stored
		responsePath = strings.TrimPrefix(stored, h.store.Prefix())
	} else if responsePath != "" {
		imagePath = h.store.Prefix() + responsePath
	}

	if err := h.recipeService.EditRecipe(c.Request().Context(), userID, recipeID, service.RecipeInput{
		Title:       title,
		Servings:    c.FormValue("servings"),
		CookTime:    c.FormValue("cookTime"),
		Ingredients: ingredients,
		Steps:       steps,
		ImagePath:   imagePath,
	}); err != nil {
		c.Logger().Errorf("edit recipe %d: %v", recipeID, err)
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, map[string]string{
		"message":   "Recipe updated successfully",
		"imagePath": responsePath,
	})
}

// UploadRecipeImage godoc
// @Summary Upload a recipe image
// @Tags recipes
// @Accept mpfd
// @Produce json
// @Security BearerAuth
// @Param recipeImage formData file true "Image file"
// @Success 200 {object} map[string]string
// @Failure 400 {object} errors.ErrorResponse
// @Router /upload-recipe-image [post]
func (h *RecipeHandler) UploadRecipeImage(c echo.Context) error {
	if _, err := currentUserID(c); err != nil {
		return err
	}

	fh, err := c.FormFile("recipeImage")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "No file uploaded")
	}

	filePath, err := h.store.Save(fh, storage.RecipeDir)
	if err != nil {
		return mapUploadError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]string{
		"message":  "Recipe image uploaded successfully",
		"filePath": filePath,
	})
}

// OwnRecipes godoc
// @Summary List the authenticated user's recipes
// @Tags recipes
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.RecipeSummary
// @Router /user/own-recipes [get]
func (h *RecipeHandler) OwnRecipes(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	recipes, err := h.recipeService.OwnRecipes(c.Request().Context(), userID)
	if err != nil {
		c.Logger().Errorf("own recipes %d: %v", userID, err)
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	if recipes == nil {
		recipes = []model.RecipeSummary{}
	}

	return c.JSON(http.StatusOK, recipes)
}

// DeleteRecipe godoc
// @Summary Delete an owned recipe
// @Tags recipes
// @Produce json
// @Security BearerAuth
// @Param id path int true "Recipe ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} errors.ErrorResponse
// @Router /user/delete-recipe/{id} [delete]
func (h *RecipeHandler) DeleteRecipe(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}
	recipeID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.recipeService.DeleteRecipe(c.Request().Context(), userID, recipeID); err != nil {
		c.Logger().Errorf("delete recipe %d: %v", recipeID, err)
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, map[string]string{
		"message": "Recipe deleted successfully",
	})
}

// RecipeDetail godoc
// @Summary Get a recipe from one of three sources
// @Tags recipes
// @Produce json
// @Security BearerAuth
// @Param source path string true "own | favorite | published"
// @Param id path int true "Recipe or publication ID"
// @Success 200 {object} model.RecipeDetail
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /user/recipe-detail/{source}/{id} [get]
func (h *RecipeHandler) RecipeDetail(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	detail, err := h.recipeService.Detail(c.Request().Context(), userID, c.Param("source"), id)
	if err != nil {
		c.Logger().Warnf("recipe detail %s/%d: %v", c.Param("source"), id, err)
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, detail)
}

// decodeListField parses a JSON-encoded string list out of a multipart field.
func decodeListField(raw string) ([]string, error) {
	if raw == "" {
		return nil, nil
	}
	var list []string
	if err := json.Unmarshal([]byte(raw), &list); err != nil {
		return nil, err
	}
	return list, nil
}
