package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/hbrar/intervu/internal/api/handlers"
	"github.com/hbrar/intervu/internal/api/middleware"
	"github.com/hbrar/intervu/internal/web"
)

type Deps struct {
	Interview *handlers.InterviewHandler
}

// New builds the engine with logging, recovery, and the embedded templates
// already attached. Tests use the same constructor as main.
func New(log *logrus.Logger, d Deps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestLogger(log))
	r.SetHTMLTemplate(web.Templates())
	RegisterRoutes(r, d)
	return r
}

func RegisterRoutes(r *gin.Engine, d Deps) {
	// Health-ish
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	r.GET("/", d.Interview.Index)
	r.POST("/begin", d.Interview.Begin)
	r.GET("/interview", d.Interview.Show)
	r.POST("/interview", d.Interview.Answer)
	r.GET("/report", d.Interview.Report)
	r.GET("/restart", d.Interview.Restart)
}
