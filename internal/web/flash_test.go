package web

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlashSetThenPopOnce(t *testing.T) {
	t.Parallel()

	flash := NewFlash("test-secret")

	// request that sets the notice
	setReq := httptest.NewRequest("POST", "/service/new", nil)
	setRec := httptest.NewRecorder()

	require.NoError(t, flash.Set(setRec, setReq, "Service posted successfully!"))

	cookies := setRec.Result().Cookies()
	require.NotEmpty(t, cookies)

	// next request carries the cookie and consumes the notice
	popReq := httptest.NewRequest("GET", "/services", nil)
	for _, c := range cookies {
		popReq.AddCookie(c)
	}
	popRec := httptest.NewRecorder()

	assert.Equal(t, "Service posted successfully!", flash.Pop(popRec, popReq))

	// the page after that sees nothing
	againReq := httptest.NewRequest("GET", "/services", nil)
	for _, c := range popRec.Result().Cookies() {
		againReq.AddCookie(c)
	}

	assert.Equal(t, "", flash.Pop(httptest.NewRecorder(), againReq))
}

func TestFlashPopWithoutCookie(t *testing.T) {
	t.Parallel()

	flash := NewFlash("test-secret")

	req := httptest.NewRequest("GET", "/", nil)

	assert.Equal(t, "", flash.Pop(httptest.NewRecorder(), req))
}

func TestFlashIgnoresTamperedCookie(t *testing.T) {
	t.Parallel()

	flash := NewFlash("test-secret")

	req := httptest.NewRequest("GET", "/", nil)
	req.AddCookie(&http.Cookie{Name: sessionName, Value: "tampered"})

	assert.Equal(t, "", flash.Pop(httptest.NewRecorder(), req))
}
