package api

import (
	"context"
	"strconv"
	"time"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"

	"github.com/jason-s-yu/uno/service/internal/logging"
)

// subscribe upgrades to a websocket and pushes a state frame on connect and
// after every change to the game. Anything the client sends is discarded.
func (s *Server) subscribe(c *gin.Context) {
	id := c.Param("gameId")
	player, err := strconv.Atoi(c.DefaultQuery("playerIndex", "0"))
	if err != nil {
		s.fail(c, errors.Wrap(errBadRequest, "playerIndex must be an integer"))
		return
	}

	ctx, cancel := context.WithCancel(c.Request.Context())
	defer cancel()
	stream, err := s.svc.Watch(ctx, id, player)
	if err != nil {
		s.fail(c, err)
		return
	}

	conn, err := websocket.Accept(c.Writer, c.Request, &websocket.AcceptOptions{
		OriginPatterns: s.originPatterns,
	})
	if err != nil {
		s.log.WithError(err).WithField(logging.GameIDKey, id).Debug("websocket accept failed")
		return
	}
	defer conn.CloseNow()

	log := s.log.WithField(logging.GameIDKey, id).WithField(logging.PlayerIndexKey, player)
	log.Debug("stream opened")
	defer log.Debug("stream closed")

	ctx = conn.CloseRead(ctx)
	ping := time.NewTicker(s.pingInterval)
	defer ping.Stop()
	for {
		select {
		case <-ctx.Done():
			conn.Close(websocket.StatusNormalClosure, "")
			return
		case msg, ok := <-stream:
			if !ok {
				conn.Close(websocket.StatusNormalClosure, "")
				return
			}
			wctx, wcancel := context.WithTimeout(ctx, writeTimeout)
			err := wsjson.Write(wctx, conn, msg)
			wcancel()
			if err != nil {
				log.WithError(err).Debug("stream write failed")
				return
			}
		case <-ping.C:
			pctx, pcancel := context.WithTimeout(ctx, writeTimeout)
			err := conn.Ping(pctx)
			pcancel()
			if err != nil {
				log.WithError(err).Debug("stream ping failed")
				return
			}
		}
	}
}
