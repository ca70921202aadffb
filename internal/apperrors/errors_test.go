package apperrors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_KindOf_ClassifiedErrors_ReturnsKind(t *testing.T) {
	assert.Equal(t, KindValidation, KindOf(Validation("no fields to update")))
	assert.Equal(t, KindForbidden, KindOf(Forbidden("only team leads can create tasks")))
	assert.Equal(t, KindNotFound, KindOf(NotFound("project not found")))
	assert.Equal(t, KindConflict, KindOf(Conflict("user is already a member of this project")))
}

func Test_KindOf_WrappedError_StillClassified(t *testing.T) {
	wrapped := fmt.Errorf("accept invitation: %w", NotFound("invitation not found or already processed"))

	assert.True(t, IsNotFound(wrapped))
	assert.Equal(t, http.StatusNotFound, StatusCode(wrapped))
}

func Test_StatusCode_UnclassifiedError_ReturnsBadRequest(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, StatusCode(errors.New("something broke")))
}

func Test_StatusCode_MapsEveryKind(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, StatusCode(Validation("x")))
	assert.Equal(t, http.StatusForbidden, StatusCode(Forbidden("x")))
	assert.Equal(t, http.StatusNotFound, StatusCode(NotFound("x")))
	assert.Equal(t, http.StatusConflict, StatusCode(Conflict("x")))
}
