package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hadithdb/hadith-api/internal/auth"
	"github.com/hadithdb/hadith-api/internal/database/progress"
	"github.com/hadithdb/hadith-api/internal/entities"
)

// ChildrenController manages the child profiles of the authenticated parent.
// Every lookup is scoped to the parent so one account can never see another's
// children.
type ChildrenController struct {
	repo *progress.Repository
}

func NewChildrenController(repo *progress.Repository) *ChildrenController {
	return &ChildrenController{repo: repo}
}

type childRequest struct {
	Name   string `json:"name" binding:"required"`
	Avatar string `json:"avatar"`
}

func (controller *ChildrenController) Create(c *gin.Context) {
	var req childRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "name is required")
		return
	}

	user := auth.CurrentUser(c)
	child, err := controller.repo.CreateChild(user.ID, req.Name, req.Avatar)
	if err != nil {
		respondInternalError(c, err, "create child")
		return
	}
	c.JSON(http.StatusCreated, child)
}

func (controller *ChildrenController) List(c *gin.Context) {
	user := auth.CurrentUser(c)
	children, err := controller.repo.GetChildren(user.ID)
	if err != nil {
		respondInternalError(c, err, "list children")
		return
	}
	c.JSON(http.StatusOK, gin.H{"children": children, "count": len(children)})
}

func (controller *ChildrenController) Get(c *gin.Context) {
	child, ok := controller.ownedChild(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, child)
}

func (controller *ChildrenController) Update(c *gin.Context) {
	child, ok := controller.ownedChild(c)
	if !ok {
		return
	}

	var req childRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "name is required")
		return
	}

	child.Name = req.Name
	child.Avatar = req.Avatar
	if err := controller.repo.UpdateChild(child); err != nil {
		respondInternalError(c, err, "update child")
		return
	}
	c.JSON(http.StatusOK, child)
}

func (controller *ChildrenController) Delete(c *gin.Context) {
	child, ok := controller.ownedChild(c)
	if !ok {
		return
	}

	if err := controller.repo.DeleteChild(child.ID); err != nil {
		respondInternalError(c, err, "delete child")
		return
	}
	c.Status(http.StatusNoContent)
}

// ownedChild resolves the :childId parameter to a child of the authenticated
// parent, responding with an error when it isn't one.
func (controller *ChildrenController) ownedChild(c *gin.Context) (*entities.Child, bool) {
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
