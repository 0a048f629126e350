package web

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender(t *testing.T) {
	var buf bytes.Buffer
	err := Render(&buf, PoetryPage, PageData{
		Title:     "Poetry Generation Interface",
		RootPath:  "/gradio-poetry",
		Script:    "poetry.js",
		Models:    []string{"phi3"},
		Styles:    []string{"Haiku"},
		MinLength: 1,
		MaxLength: 100,
	})
	require.NoError(t, err)

	assert.Contains(t, buf.String(), `href="/gradio-poetry/static/theme.css"`)
	assert.Contains(t, buf.String(), `<option value="Haiku">Haiku</option>`)
}

func TestRender_UnknownPage(t *testing.T) {
	assert.Error(t, Render(io.Discard, "missing.html", PageData{}))
}

// chat.js must only record a turn once the server accepted it; throttled or
// rejected submissions answer with plain text and are not replayed.
func TestChatScript_RecordsOnlyAcceptedTurns(t *testing.T) {
	rr := httptest.NewRecorder()
	Static().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/chat.js", nil))
	require.Equal(t, http.StatusOK, rr.Code)
	script := rr.Body.String()

	okBranch := strings.Index(script, "if (resp.ok)")
	elseBranch := strings.Index(script, "} else {")
	require.Positive(t, okBranch)
	require.Greater(t, elseBranch, okBranch)

	assert.Equal(t, 2, strings.Count(script, "history.push("))
	firstPush := strings.Index(script, "history.push(")
	lastPush := strings.LastIndex(script, "history.push(")
	assert.Greater(t, firstPush, okBranch)
	assert.Less(t, lastPush, elseBranch)
	assert.NotContains(t, script[:okBranch], "resp.json()")
}
