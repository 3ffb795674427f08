package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"go-firewatch/fireapi"
)

// TestConnection probes the remote fire service and reports reachability.
func TestConnection(c *gin.Context, client *fireapi.Client) {
	if err := client.Ping(c.Request.Context()); err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"ok": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
