// file: internals/route/details/auth_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"sekolahku_backend/internals/configs"
	authController "sekolahku_backend/internals/features/users/auth/controller"
	authSvc "sekolahku_backend/internals/features/users/auth/service"
	"sekolahku_backend/internals/middlewares"
	authMiddleware "sekolahku_backend/internals/middlewares/auth"
)

func AuthRoutes(app *fiber.App, db *gorm.DB) {
	ctrl := authController.NewAuthController(db)

	grp := app.Group("/api/auth")
	grp.Post("/login", middlewares.LoginRateLimiter(), ctrl.Login)

	guarded := grp.Group("",
		authMiddleware.AuthJWT(authMiddleware.AuthJWTOpts{
			Secret:              configs.JWTSecret,
			AllowCookieFallback: true,
			BlacklistChecker: func(raw string) (bool, error) {
				return authSvc.IsTokenBlacklisted(db, raw)
			},
		}),
	)
	guarded.Get("/me", ctrl.Me)
	guarded.Post("/logout", ctrl.Logout)
}
