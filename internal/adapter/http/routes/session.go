package routes

import (
	"vetdesk/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathSession = "/session"
	PathCatalog = "/catalog"
	PathCart    = "/cart"
)

func addSessionRoutes(rg *gin.RouterGroup, sessionHandler *handlers.SessionHandler, catalogHandler *handlers.CatalogHandler, cartHandler *handlers.CartHandler) {
	session := rg.Group(PathSession)
	{
		session.POST("/lookup", sessionHandler.Lookup)
		session.POST("/patients/:patient_id/select", sessionHandler.SelectPatient)
		session.POST("/delinquency/settle", sessionHandler.SettleDelinquency)
		session.POST("/home", sessionHandler.GoHome)
	}
	rg.GET(PathSession, sessionHandler.GetSession)

	catalog := rg.Group(PathCatalog)
	{
		catalog.GET("/services", catalogHandler.ListServices)
		catalog.POST("/services/:service_id/unlock", catalogHandler.UnlockService)
	}

	cart := rg.Group(PathCart)
	{
		cart.GET("", cartHandler.GetCart)
		cart.GET("/totals", cartHandler.GetCartTotals)
		cart.POST("/items", cartHandler.AddItem)
		cart.PATCH("/items/:service_id/quantity", cartHandler.UpdateQuantity)
		cart.DELETE("/items/:service_id", cartHandler.RemoveItem)
	}
}
