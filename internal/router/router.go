package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"resepku/internal/auth"
	"resepku/internal/config"
	"resepku/internal/handler"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	authHandler *handler.AuthHandler,
	userHandler *handler.UserHandler,
	recipeHandler *handler.RecipeHandler,
	shareHandler *handler.ShareHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// Uploaded images are exposed read-only.
	e.Static("/uploads", cfg.UploadDir)

	// Public routes
	e.POST("/register", authHandler.Register)
	e.POST("/login", authHandler.Login)
	e.GET("/verify-token", authHandler.VerifyToken)
	e.GET("/favresep", shareHandler.AllFavorites)
	e.GET("/recipes", shareHandler.SearchRecipes)

	// Secured routes. Every mutation derives the acting user from the
	// verified token; client-supplied user ids are never trusted.
	secured := e.Group("", echojwt.WithConfig(auth.EchoJWTConfig(cfg.JWTSecret)))

	secured.GET("/profile", userHandler.GetProfile)
	secured.PUT("/profile", userHandler.UpdateProfile)
	secured.POST("/upload-profile-picture", userHandler.UploadProfilePicture)

	secured.POST("/addRecipe", recipeHandler.AddRecipe)
	secured.PUT("/editRecipe/:id", recipeHandler.EditRecipe)
	secured.POST("/upload-recipe-image", recipeHandler.UploadRecipeImage)
	secured.GET("/user/own-recipes", recipeHandler.OwnRecipes)
	secured.DELETE("/user/delete-recipe/:id", recipeHandler.DeleteRecipe)
	secured.GET("/user/recipe-detail/:source/:id", recipeHandler.RecipeDetail)

	secured.POST("/user/share-recipe/:id", shareHandler.Share)
	secured.DELETE("/user/unshare-recipe/:id", shareHandler.Unshare)
	secured.GET("/user/favorite-recipes", shareHandler.FavoriteRecipes)
	secured.GET("/user/published-recipes", shareHandler.PublishedRecipes)
	secured.POST("/user/fav-recipe", shareHandler.Favorite)
	secured.DELETE("/user/unfav-recipe/:id", shareHandler.Unfavorite)
	// Deprecated alias kept for clients of the old API.
	secured.DELETE("/user/unfav-recipee/:id", shareHandler.Unfavorite)
	secured.GET("/user/check-fav-recipe/:id", shareHandler.CheckFavorite)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
