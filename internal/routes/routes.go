package routes

import (
	"github.com/damoang/angple-moderation/internal/handler"
	"github.com/damoang/angple-moderation/internal/middleware"
	"github.com/damoang/angple-moderation/pkg/jwt"
	"github.com/gin-gonic/gin"
)

// Setup configures all API routes
func Setup(
	router *gin.Engine,
	lifecycleHandler *handler.LifecycleHandler,
	recommendHandler *handler.RecommendHandler,
	reportHandler *handler.ReportHandler,
	jwtManager *jwt.Manager,
) {
	api := router.Group("/api/v1")

	auth := middleware.JWTAuth(jwtManager)
	admin := middleware.AdminOnly()

	boards := api.Group("/boards/:type")
	{
		posts := boards.Group("/posts/:id")
		{
			// 조회/조회수는 세션 기반, 로그인 불필요
			posts.POST("/view", lifecycleHandler.RecordView)
			posts.GET("/recommend", recommendHandler.GetStatus)

			posts.POST("/recommend", auth, recommendHandler.Recommend)
			posts.DELETE("/recommend", auth, recommendHandler.CancelRecommend)

			// 운영 조치 (관리자)
			posts.GET("", auth, admin, lifecycleHandler.GetPost)
			posts.DELETE("", auth, admin, lifecycleHandler.DeletePost)
			posts.POST("/recover", auth, admin, lifecycleHandler.RecoverPost)
		}

		comments := boards.Group("/comments/:id")
		{
			comments.DELETE("", auth, admin, lifecycleHandler.DeleteComment)
			comments.POST("/recover", auth, admin, lifecycleHandler.RecoverComment)
		}

		attachments := boards.Group("/attachments/:id")
		{
			attachments.DELETE("", auth, admin, lifecycleHandler.DeleteAttachment)
			attachments.POST("/recover", auth, admin, lifecycleHandler.RecoverAttachment)
		}

		audit := boards.Group("/audit/:kind/:id")
		{
			audit.GET("", auth, admin, lifecycleHandler.GetAuditTrail)
			audit.POST("/modify", auth, lifecycleHandler.LogModification)
		}
	}

	reports := api.Group("/reports")
	{
		reports.POST("", auth, reportHandler.FileReport)
		reports.GET("", auth, admin, reportHandler.ListReports)
		reports.GET("/:id", auth, admin, reportHandler.GetReport)
		reports.PATCH("/:id/status", auth, admin, reportHandler.UpdateReportStatus)
	}

	penalties := api.Group("/penalties", auth, admin)
	{
		penalties.POST("", reportHandler.ApplyPenalty)
		penalties.POST("/:id/lift", reportHandler.LiftPenalty)
	}

	users := api.Group("/users/:id")
	{
		users.GET("/penalties", auth, admin, reportHandler.GetUserPenalties)
		users.GET("/status", auth, reportHandler.GetAccountStatus)
	}
}
