package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hadithdb/hadith-api/internal/auth"
	"github.com/hadithdb/hadith-api/internal/database/hadiths"
	"github.com/hadithdb/hadith-api/internal/database/progress"
	"github.com/hadithdb/hadith-api/internal/entities"
)

// ProgressController tracks which hadiths a child is memorizing. All routes
// are nested under a child the authenticated parent owns.
type ProgressController struct {
	repo    *progress.Repository
	hadiths *hadiths.Repository
}

func NewProgressController(repo *progress.Repository, hadithRepo *hadiths.Repository) *ProgressController {
	return &ProgressController{repo: repo, hadiths: hadithRepo}
}

type startProgressRequest struct {
	HadithID uint `json:"hadith_id" binding:"required"`
}

type updateProgressRequest struct {
	Status entities.LearningStatus `json:"status" binding:"required"`
	Notes  string                  `json:"notes"`
}

func (controller *ProgressController) List(c *gin.Context) {
	child, ok := controller.ownedChild(c)
	if !ok {
		return
	}

	status := entities.LearningStatus(c.Query("status"))
	if status != "" && !status.IsValid() {
		respondBadRequest(c, "invalid status")
		return
	}

	records, err := controller.repo.ListProgress(child.ID, status)
	if err != nil {
		respondInternalError(c, err, "list progress")
		return
	}
	c.JSON(http.StatusOK, gin.H{"progress": records, "count": len(records)})
}

func (controller *ProgressController) Start(c *gin.Context) {
	child, ok := controller.ownedChild(c)
	if !ok {
		return
	}

	var req startProgressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "hadith_id is required")
		return
	}

	if _, err := controller.hadiths.GetByID(req.HadithID); err != nil {
		respondNotFound(c, "Hadith")
		return
	}
	if _, err := controller.repo.GetProgress(child.ID, req.HadithID); err == nil {
		respondError(c, http.StatusConflict, "Hadith already tracked for this child")
		return
	}

	record, err := controller.repo.StartProgress(child.ID, req.HadithID)
	if err != nil {
		respondInternalError(c, err, "start progress")
		return
	}
	c.JSON(http.StatusCreated, record)
}

func (controller *ProgressController) Update(c *gin.Context) {
	child, ok := controller.ownedChild(c)
	if !ok {
		return
	}
	hadithID, ok := parseIDParam(c, "hadithId")
	if !ok {
		return
	}

	var req updateProgressRequest
	if err := c.ShouldBindJSON(&req); err != nil || !req.Status.IsValid() {
		respondBadRequest(c, "invalid status")
		return
	}

	record, err := controller.repo.GetProgress(child.ID, hadithID)
	if err != nil {
		respondNotFound(c, "Progress record")
		return
	}

	if err := controller.repo.UpdateStatus(record, req.Status, req.Notes); err != nil {
		respondInternalError(c, err, "update progress")
		return
	}
	c.JSON(http.StatusOK, record)
}

func (controller *ProgressController) Delete(c *gin.Context) {
	child, ok := controller.ownedChild(c)
	if !ok {
		return
	}
	hadithID, ok := parseIDParam(c, "hadithId")
	if !ok {
		return
	}

	record, err := controller.repo.GetProgress(child.ID, hadithID)
	if err != nil {
		respondNotFound(c, "Progress record")
		return
	}
	if err := controller.repo.DeleteProgress(record.ID); err != nil {
		respondInternalError(c, err, "delete progress")
		return
	}
	c.Status(http.StatusNoContent)
}

func (controller *ProgressController) Stats(c *gin.Context) {
	child, ok := controller.ownedChild(c)
	if !ok {
		return
	}

	stats, err := controller.repo.Stats(child.ID)
	if err != nil {
		respondInternalError(c, err, "progress stats")
		return
	}
	c.JSON(http.StatusOK, gin.H{"child_id": child.ID, "stats": stats})
}

func (controller *ProgressController) ownedChild(c *gin.Context) (*entities.Child, bool) {
	childID, ok := parseIDParam(c, "childId")
	if !ok {
		return nil, false
	}

	user := auth.CurrentUser(c)
	child, err := controller.repo.GetChild(childID, user.ID)
	if err != nil {
		respondNotFound(c, "Child")
		return nil, false
	}
	return child, true
}
