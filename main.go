package main

import (
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/kataras/iris/v12"
	"github.com/kataras/iris/v12/middleware/jwt"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/coinflows/frontdesk/routes"
	"github.com/coinflows/frontdesk/storage"
	"github.com/coinflows/frontdesk/utils"
)

func main() {
	if os.Getenv("APP_ENV") != "production" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout})
	}
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	godotenv.Load()
	storage.InitializeDB()
	storage.InitializeRedis()

	app := iris.New()
	app.Validator = validator.New()

	// CORS for the dashboard frontend
	app.AllowMethods(iris.MethodOptions)
	app.UseRouter(func(ctx iris.Context) {
		ctx.Header("Access-Control-Allow-Origin", ctx.GetHeader("Origin"))
		ctx.Header("Vary", "Origin")
		ctx.Header("Access-Control-Allow-Credentials", "true")
		ctx.Header("Access-Control-Allow-Headers", "Authorization, Content-Type, X-Requested-With")
		ctx.Header("Access-Control-Allow-Methods", "GET,POST,PATCH,PUT,DELETE,OPTIONS")
		if ctx.Method() == iris.MethodOptions {
			ctx.StatusCode(iris.StatusNoContent)
			return
		}
		ctx.Next()
	})

	app.Use(iris.Compression)

	accessTokenVerifier := jwt.NewVerifier(jwt.HS256, []byte(os.Getenv("ACCESS_TOKEN_SECRET")))
	accessTokenVerifier.WithDefaultBlocklist()
	accessTokenVerifierMiddleware := accessTokenVerifier.Verify(func() interface{} {
		return new(utils.AccessToken)
	})

	refreshTokenVerifier := jwt.NewVerifier(jwt.HS256, []byte(os.Getenv("REFRESH_TOKEN_SECRET")))
	refreshTokenVerifier.WithDefaultBlocklist()
	refreshTokenVerifierMiddleware := refreshTokenVerifier.Verify(func() interface{} {
		return new(jwt.Claims)
	})

	users := app.Party("/api/users")
	{
		users.Post("/register", routes.Register)
		users.Post("/login", routes.Login)
		users.Post("/google", routes.GoogleLoginOrSignUp)
		users.Post("/refresh", refreshTokenVerifierMiddleware, utils.RefreshToken)
	}

	api := app.Party("/api", accessTokenVerifierMiddleware)
	{
		api.Get("/properties", routes.GetProperties)
		api.Get("/properties/{propId}", routes.GetPropertyByPropID)
		api.Get("/bookings", routes.GetBookings)
		api.Get("/calendar/grid", routes.GetCalendarGrid)
		api.Get("/calendar/timeline", routes.GetCalendarTimeline)

		admin := api.Party("/admin", utils.AdminOnlyMiddleware)
		{
			admin.Get("/stats", routes.AdminStats)
			admin.Post("/sync", routes.AdminSync)
		}
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "4000"
	}
	log.Info().Str("port", port).Msg("starting frontdesk API")
	app.Listen(":" + port)
}
