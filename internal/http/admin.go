package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hadithdb/hadith-api/internal/tasks"
)

// AdminController enqueues maintenance jobs on the task queue.
type AdminController struct {
	taskClient *tasks.Client
}

func NewAdminController(taskClient *tasks.Client) *AdminController {
	return &AdminController{taskClient: taskClient}
}

// Reindex queues a full search index rebuild.
func (controller *AdminController) Reindex(c *gin.Context) {
	ids, err := controller.taskClient.Add(tasks.ReindexSearchTask{}).Save()
	if err != nil {
		respondInternalError(c, err, "queue reindex")
		return
	}
	c.JSON(http.StatusAccepted, gin.H{"message": "Reindex queued", "task_ids": ids})
}

// ClassifyTopics queues a batch chapter classification pass.
func (controller *AdminController) ClassifyTopics(c *gin.Context) {
	ids, err := controller.taskClient.Add(tasks.ClassifyChaptersTask{}).Save()
	if err != nil {
		respondInternalError(c, err, "queue classification")
		return
	}
	c.JSON(http.StatusAccepted, gin.H{"message": "Topic classification queued", "task_ids": ids})
}
