package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"
)

const (
	maxExpandLength = 64 << 10

	wsWriteTimeout = 10 * time.Second
)

type expandRequest struct {
	Text *string `json:"text" binding:"required,max=65536"`
}

type expandResponse struct {
	Text string `json:"text"`
}

func (s *Service) expandText(ctx *gin.Context) {
	// utf-8 takes at most 4 bytes per rune, plus room for the JSON around the text
	ctx.Request.Body = http.MaxBytesReader(ctx.Writer, ctx.Request.Body, 4*maxExpandLength+1024)

	var req expandRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, bindingErrorResponse(err, "body"))
		return
	}

	ctx.JSON(http.StatusOK, expandResponse{Text: s.expander.Expand(*req.Text)})
}

// expandStream upgrades to a websocket and answers every text frame with its expansion.
// The connection stays open until the client closes it or sends a non-text frame.
func (s *Service) expandStream(ctx *gin.Context) {
	conn, err := s.upgrader.Upgrade(ctx.Writer, ctx.Request, nil)
	if err != nil {
		// the upgrader has already written the error response
		log.Warn().Err(err).Str("request_id", ctx.GetString(requestIDKey)).Msg("websocket upgrade failed")
		return
	}
	defer conn.Close()

	conn.SetReadLimit(maxExpandLength)

	for {
		msgType, msg, err := conn.ReadMessage()
		if err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) &&
				!errors.Is(err, websocket.ErrReadLimit) {
				log.Debug().Err(err).Msg("websocket read ended")
			}
			return
		}

		if msgType != websocket.TextMessage {
			closeMsg := websocket.FormatCloseMessage(websocket.CloseUnsupportedData, "text frames only")
			_ = conn.WriteControl(websocket.CloseMessage, closeMsg, time.Now().Add(wsWriteTimeout))
			return
		}

		_ = conn.SetWriteDeadline(time.Now().Add(wsWriteTimeout))
		if err := conn.WriteMessage(websocket.TextMessage, []byte(s.expander.Expand(string(msg)))); err != nil {
			log.Debug().Err(err).Msg("websocket write failed")
			return
		}
	}
}
