package main

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/coder/websocket"
)

// handleSearchWS serves live search over a websocket. Every text frame is
// a free-text query; the reply is the filtered section list. Frames are
// handled strictly in order, so the most recent query always wins.
func (a *app) handleSearchWS(w http.ResponseWriter, r *http.Request) {
	conn, err := websocket.Accept(w, r, nil)
	if err != nil {
		slog.Warn("websocket accept failed", "error", err)
		return
	}
	defer conn.CloseNow()

	ctx := r.Context()
	for {
		typ, data, err := conn.Read(ctx)
		if err != nil {
			return
		}
		if typ != websocket.MessageText {
			continue
		}

		c, ok := a.loader.Catalog()
		if !ok {
			conn.Close(websocket.StatusInternalError, "catalog not loaded")
			return
		}

		payload, err := json.Marshal(buildSectionsResponse(c, string(data)))
		if err != nil {
			slog.Error("failed to encode search response", "error", err)
			conn.Close(websocket.StatusInternalError, "encode error")
			return
		}
		if err := conn.Write(ctx, websocket.MessageText, payload); err != nil {
			return
		}
	}
}
