package httpx

import (
	"github.com/gin-gonic/gin"

	"github.com/NguyenZak/ikigai-app-sub001/internal/http/handlers"
	"github.com/NguyenZak/ikigai-app-sub001/internal/http/middleware"
)

func BuildRouter(ah *handlers.AuthHandlers, ch *handlers.CustomerHandlers, coh *handlers.ContentHandlers, ph *handlers.PolicyHandlers, sessmw *middleware.AuthMW, cb *middleware.CasbinMW) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// Public surface: intake and content reads need no session.
	r.POST("/customers", ch.Intake)
	r.GET("/rooms", coh.PublicRooms)
	r.GET("/rooms/:id", coh.PublicRoom)
	r.GET("/news", coh.PublicNews)
	r.GET("/news/:slug", coh.PublicNewsBySlug)
	r.GET("/banners", coh.PublicBanners)

	r.POST("/auth/login", ah.Login)

	// Everything below passes the gate: session first, then role.
	auth := r.Group("/auth").Use(sessmw.WithSession(), cb.Enforce())
	auth.GET("/me", ah.Me)
	auth.POST("/logout", ah.Logout)

	adm := r.Group("/admin").Use(sessmw.WithSession(), cb.Enforce())
	adm.GET("/customers", ch.List)
	adm.POST("/customers", ch.Create)
	adm.GET("/customers/:id", ch.Get)
	adm.PUT("/customers/:id", ch.Update)
	adm.DELETE("/customers/:id", ch.Delete)

	adm.GET("/rooms", coh.ListRooms)
	adm.POST("/rooms", coh.SaveRoom)
	adm.PUT("/rooms/:id", coh.SaveRoom)
	adm.DELETE("/rooms/:id", coh.DeleteRoom)

	adm.GET("/news", coh.ListNews)
	adm.POST("/news", coh.SaveNews)
	adm.PUT("/news/:id", coh.SaveNews)
	adm.DELETE("/news/:id", coh.DeleteNews)

	adm.GET("/banners", coh.ListBanners)
	adm.POST("/banners", coh.SaveBanner)
	adm.PUT("/banners/:id", coh.SaveBanner)
	adm.DELETE("/banners/:id", coh.DeleteBanner)

	adm.GET("/policies", ph.List)
	adm.POST("/policies", ph.Add)
	adm.DELETE("/policies", ph.Remove)

	return r
}
