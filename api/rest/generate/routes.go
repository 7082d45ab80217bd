package generate

import "github.com/gin-gonic/gin"

// registers diagram generation routes
func RegisterRoutes(router *gin.RouterGroup, generator DiagramGenerator, middleware ...gin.HandlerFunc) {
	handlers := append(middleware, Handler(generator))
	router.POST("/generate", handlers...)
}
