package handler

import (
	"github.com/gofiber/contrib/websocket"
	"github.com/stevedore-dev/stevedore/internal/core/ports"
)

type WebsocketHandler struct {
	runManager ports.RunManagerInterface
}

func NewWebsocketHandler(runManager ports.RunManagerInterface) *WebsocketHandler {
	return &WebsocketHandler{
		runManager: runManager,
	}
}

func (wh WebsocketHandler) HandleRunLogs(c *websocket.Conn) {
	id := c.Params("id")
	subscription, err := wh.runManager.Subscribe(id)

	if err != nil {
		c.Close()
		return
	}

	for {
		line := <-subscription
		//a nil message marks the end of the stream
		if line == nil {
			c.Close()
			return
		}
		err := c.WriteMessage(websocket.TextMessage, *line)
		if err != nil {
			wh.runManager.Unsubscribe(id, subscription)
			c.Close()
			return
		}
	}
}
