package routes

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"solar-storefront-backend/internal/telemetry"
	"solar-storefront-backend/models"
	"solar-storefront-backend/services"
	"solar-storefront-backend/utils"
)

// SetupChatRoutes registers the retrieval and responder endpoints consumed
// by the storefront chat widget.
func SetupChatRoutes(router *gin.Engine, contextSvc *services.ContextService, responder *services.ResponderService, metrics *telemetry.Metrics) {
	chat := router.Group("/api/chat")
	{
		chat.POST("/context", func(c *gin.Context) {
			var req models.ContextRequest
			if err := c.ShouldBindJSON(&req); err != nil {
				utils.RespondWithBadRequest(c, "invalid request body", err.Error())
				return
			}

			result := contextSvc.GetRelevantContext(
				c.Request.Context(), req.Query, req.ProductID, req.Page, req.MaxChunks)

			if metrics != nil {
				metrics.RecordSearch(searchMode(req))
			}

			c.JSON(http.StatusOK, models.ContextResponse{
				Context:    result.Context,
				ChunkCount: result.ChunkCount,
				SnapshotID: result.SnapshotID,
			})
		})

		chat.POST("/respond", func(c *gin.Context) {
			var req models.RespondRequest
			if err := c.ShouldBindJSON(&req); err != nil {
				utils.RespondWithBadRequest(c, "invalid request body", err.Error())
				return
			}

			reply := responder.GenerateResponse(c.Request.Context(), req.Query, req.ProductID)
			contactRequired := strings.HasPrefix(reply, services.ContactRequiredSentinel)
			if contactRequired && metrics != nil {
				metrics.RecordResponderFallback()
			}

			c.JSON(http.StatusOK, models.RespondResponse{
				Reply:           reply,
				ContactRequired: contactRequired,
			})
		})

		chat.GET("/can-answer", func(c *gin.Context) {
			query := c.Query("query")
			if query == "" {
				utils.RespondWithBadRequest(c, "query parameter is required", nil)
				return
			}

			canAnswer := responder.CanAnswer(c.Request.Context(), query, c.Query("product_id"))
			c.JSON(http.StatusOK, gin.H{"can_answer": canAnswer})
		})
	}
}

func searchMode(req models.ContextRequest) string {
	switch {
	case req.ProductID != "":
		return "product"
	case req.Page != "":
		return "page"
	default:
		return "plain"
	}
}
