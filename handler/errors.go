package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/marcvalle10/notes-api/usecase"
	"github.com/marcvalle10/notes-api/utils"
)

// respondError maps a service error onto the HTTP surface. Store failures
// keep their original message; everything else answers with the sentinel's.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, usecase.ErrTokenNotFound),
		errors.Is(err, usecase.ErrNoteNotFound):
		utils.NotFound(c, err.Error())
	case errors.Is(err, usecase.ErrNotOwner):
		utils.Forbidden(c, err.Error())
	default:
		utils.BadRequest(c, err.Error())
	}
}
