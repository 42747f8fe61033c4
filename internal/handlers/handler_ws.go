package handlers

import (
	"github.com/Shunea/be-easyreserv-sub002/internal/ws"
	"github.com/gin-gonic/gin"
)

// RegisterLiveFeedRoutes registers the websocket feed of reservation status changes.
func RegisterLiveFeedRoutes(rg *gin.RouterGroup, hub *ws.Hub) {
	rg.GET("/restaurants/:restaurant_id", func(c *gin.Context) {
		ws.ServeWS(hub, c.Param("restaurant_id"), c.Writer, c.Request)
	})
}
