package web

import (
	"net/http"

	"github.com/gorilla/sessions"
)

const sessionName = "service-booker"

// Flash holds one-shot notices in a signed session cookie: Set stores a
// message, Pop on the next rendered page returns and discards it.
type Flash struct {
	store *sessions.CookieStore
}

func NewFlash(secret string) *Flash {
	return &Flash{store: sessions.NewCookieStore([]byte(secret))}
}

func (f *Flash) Set(w http.ResponseWriter, r *http.Request, msg string) error {
	session, _ := f.store.Get(r, sessionName)

	session.AddFlash(msg)

	return session.Save(r, w)
}

func (f *Flash) Pop(w http.ResponseWriter, r *http.Request) string {
	session, _ := f.store.Get(r, sessionName)

	flashes := session.Flashes()
	if len(flashes) == 0 {
		return ""
	}

	// Save persists the now-empty flash slot so the notice shows once only.
	_ = session.Save(r, w)

	msg, ok := flashes[0].(string)
	if !ok {
		return ""
	}

	return msg
}
