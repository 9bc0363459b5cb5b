package routes

import (
	"Chipster/controllers"
	"Chipster/middleware"
	"Chipster/services/rooms"
	"Chipster/services/users"
	utils "Chipster/utils"

	"github.com/gin-gonic/gin"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// SetupRoutes configures all API routes
func SetupRoutes(router *gin.Engine, svc *rooms.Service, userStore users.Store, secret []byte) {
	// utils global
	router.Use(utils.Logger())
	router.Use(utils.ErrorHandler())

	// Swagger route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API routes group
	api := router.Group("/")

	api.GET("/ping", controllers.Ping)

	api.POST("/signup", controllers.SignUp(userStore, secret))

	api.POST("/login", controllers.Login(userStore, secret))

	// Rooms can be watched without an account
	api.GET("/rooms", controllers.ListRooms(svc))

	api.GET("/rooms/:id", controllers.GetRoom(svc))

	api.GET("/rooms/:id/actions", controllers.ListActions(svc))

	api.GET("/rooms/:id/results", controllers.ListResults(svc))

	authentication := api.Group("/auth")
	authentication.Use(middleware.AuthRequired(secret))
	{
		authentication.DELETE("/logout", controllers.Logout)

		authentication.GET("/me", controllers.Me(userStore))

		authentication.POST("/rooms", controllers.CreateRoom(svc))

		authentication.PATCH("/rooms/:id", controllers.UpdateRoom(svc))

		authentication.DELETE("/rooms/:id", controllers.DeleteRoom(svc))

		authentication.POST("/rooms/:id/join", controllers.JoinRoom(svc))

		authentication.POST("/rooms/:id/leave", controllers.LeaveRoom(svc))

		// {"action":"start"} deals, PUT declares the winner
		authentication.POST("/rooms/:id/hand", controllers.StartHand(svc))

		authentication.PUT("/rooms/:id/hand", controllers.DeclareWinner(svc))

		authentication.POST("/rooms/:id/actions", controllers.ApplyAction(svc))
	}
}
