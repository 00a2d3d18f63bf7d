package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"

	"solar-storefront-backend/internal/config"
	"solar-storefront-backend/internal/logger"
	"solar-storefront-backend/internal/queue"
	"solar-storefront-backend/middleware"
	"solar-storefront-backend/services"
	"solar-storefront-backend/utils"
)

// SetupAdminRoutes registers the token-protected operations endpoints.
// A nil asynq client makes rebuilds run synchronously in-process.
func SetupAdminRoutes(router *gin.Engine, cfg *config.Config, knowledge *services.KnowledgeService, export *services.ExportService, asynqClient *asynq.Client) {
	admin := router.Group("/api/admin")
	admin.Use(middleware.RequireAdmin(cfg))
	{
		admin.POST("/knowledge/rebuild", func(c *gin.Context) {
			if asynqClient != nil {
				task, err := queue.NewKnowledgeRebuildTask("admin")
				if err == nil {
					if _, err = asynqClient.Enqueue(task); err == nil {
						c.JSON(http.StatusAccepted, gin.H{"status": "queued"})
						return
					}
				}
				logger.Warn("failed to enqueue rebuild task, rebuilding inline", "error", err)
			}

			snap := knowledge.Refresh(c.Request.Context())
			c.JSON(http.StatusOK, gin.H{
				"status":      "rebuilt",
				"snapshot_id": snap.SnapshotID,
				"chunks":      len(snap.Chunks),
			})
		})

		admin.GET("/knowledge/stats", func(c *gin.Context) {
			c.JSON(http.StatusOK, knowledge.Stats(c.Request.Context()))
		})

		admin.GET("/export/catalog", func(c *gin.Context) {
			buf, err := export.ExportCatalog(c.Request.Context())
			if err != nil {
				utils.RespondWithInternalError(c, "export failed", nil)
				return
			}

			c.Header("Content-Disposition", `attachment; filename="catalog-export.xlsx"`)
			c.Data(http.StatusOK,
				"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
				buf.Bytes())
		})
	}
}
