package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/hadithdb/hadith-api/internal/database/books"
)

type BooksController struct {
	repo *books.Repository
}

func NewBooksController(repo *books.Repository) *BooksController {
	return &BooksController{repo: repo}
}

func (controller *BooksController) GetAllBooks(c *gin.Context) {
	allBooks, err := controller.repo.GetAllBooks()
	if err != nil {
		respondInternalError(c, err, "list books")
		return
	}
	c.IndentedJSON(http.StatusOK, gin.H{"books": allBooks, "count": len(allBooks)})
}

func (controller *BooksController) GetBook(c *gin.Context) {
	book, err := controller.repo.GetBookBySlug(c.Param("slug"))
	if err != nil {
		respondNotFound(c, "Book")
		return
	}
	c.IndentedJSON(http.StatusOK, book)
}

func (controller *BooksController) GetChapters(c *gin.Context) {
	book, err := controller.repo.GetBookBySlug(c.Param("slug"))
	if err != nil {
		respondNotFound(c, "Book")
		return
	}

	chapters, err := controller.repo.GetChapters(book.ID)
	if err != nil {
		respondInternalError(c, err, "list chapters")
		return
	}
	c.IndentedJSON(http.StatusOK, gin.H{
		"book":     book.Slug,
		"chapters": chapters,
		"count":    len(chapters),
	})
}

func (controller *BooksController) GetChapter(c *gin.Context) {
	book, err := controller.repo.GetBookBySlug(c.Param("slug"))
	if err != nil {
		respondNotFound(c, "Book")
		return
	}

	number, err := strconv.Atoi(c.Param("number"))
	if err != nil {
		respondBadRequest(c, "invalid chapter number")
		return
	}

	chapter, err := controller.repo.GetChapter(book.ID, number)
	if err != nil {
		respondNotFound(c, "Chapter")
		return
	}
	c.IndentedJSON(http.StatusOK, chapter)
}
