package server

import (
	"fmt"
	"net/http"
)

// Events keeps a websocket open so that mutations made in one tab reload the
// affected collection in the session's other tabs. Incoming messages are ignored.
func (s *AdminServer) Events(writer http.ResponseWriter, request *http.Request) {
	sess := sessionFrom(request)
	wssConn := s.UpgradeToWebsocket(writer, request)
	if wssConn == nil {
		return
	}
	s.ConnStore.AddConnection(sess.Id, wssConn)
	s.Logger.Debug(fmt.Sprintf("Session %s opened an event stream", sess.Id))
	defer func() {
		s.ConnStore.RemoveConnection(sess.Id, wssConn)
		wssConn.Close()
	}()
	for {
		if _, _, err := wssConn.ReadMessage(); err != nil {
			s.Logger.Debug(fmt.Sprintf("Event stream of session %s closed", sess.Id))
			return
		}
	}
}
