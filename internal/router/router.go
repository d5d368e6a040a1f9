package router

import (
	"github.com/gin-gonic/gin"
	"github.com/hirewise/sitecms/internal/handler"
)

// SetupRouter 配置 Gin 引擎和路由
func SetupRouter(api *handler.API) *gin.Engine {
	r := gin.Default()

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "pong",
		})
	})

	// 公共站点接口
	public := r.Group("/api")
	{
		public.GET("/pages/:slug", api.ShowPage)
		public.POST("/contact", api.SubmitContact)
	}

	// 编辑器接口；认证由外层网关处理
	admin := r.Group("/api/admin")
	{
		admin.GET("/pages", api.ListPages)
		admin.POST("/pages", api.CreatePage)
		admin.PUT("/pages/:id", api.UpdatePage)
		admin.DELETE("/pages/:id", api.DeletePage)
		admin.POST("/pages/:id/sections", api.AppendSection)
		admin.GET("/contacts", api.ListContacts)
	}

	return r
}
