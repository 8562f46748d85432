package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"

	"github.com/jason-s-yu/uno/engine"
	"github.com/jason-s-yu/uno/service/internal/game"
)

type createGameRequest struct {
	PlayerName string `json:"playerName" binding:"required"`
}

type createGameResponse struct {
	GameID      string `json:"gameId"`
	PlayerIndex int    `json:"playerIndex"`
}

type joinGameRequest struct {
	GameID     string `json:"gameId" binding:"required"`
	PlayerName string `json:"playerName" binding:"required"`
}

// seatRequest addresses one seat of one game. PlayerIndex is a pointer so
// seat 0 passes the required check.
type seatRequest struct {
	GameID      string `json:"gameId" binding:"required"`
	PlayerIndex *int   `json:"playerIndex" binding:"required"`
}

type playActionRequest struct {
	seatRequest
	Action *game.WireAction `json:"action" binding:"required"`
}

type gameResponse struct {
	Game engine.PlayerView `json:"game"`
}

func (s *Server) bind(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		s.fail(c, errors.Wrap(errBadRequest, err.Error()))
		return false
	}
	return true
}

func (s *Server) respond(c *gin.Context, v engine.PlayerView, err error) {
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gameResponse{Game: v})
}

func (s *Server) createGame(c *gin.Context) {
	var req createGameRequest
	if !s.bind(c, &req) {
		return
	}
	id, seat, err := s.svc.Create(c.Request.Context(), req.PlayerName)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, createGameResponse{GameID: id, PlayerIndex: seat})
}

func (s *Server) joinGame(c *gin.Context) {
	var req joinGameRequest
	if !s.bind(c, &req) {
		return
	}
	v, err := s.svc.Join(c.Request.Context(), req.GameID, req.PlayerName)
	s.respond(c, v, err)
}

func (s *Server) startGame(c *gin.Context) {
	var req seatRequest
	if !s.bind(c, &req) {
		return
	}
	v, err := s.svc.Start(c.Request.Context(), req.GameID, *req.PlayerIndex)
	s.respond(c, v, err)
}

func (s *Server) getGame(c *gin.Context) {
	var req seatRequest
	if !s.bind(c, &req) {
		return
	}
	v, err := s.svc.View(c.Request.Context(), req.GameID, *req.PlayerIndex)
	s.respond(c, v, err)
}

func (s *Server) playAction(c *gin.Context) {
	var req playActionRequest
	if !s.bind(c, &req) {
		return
	}
	action, err := req.Action.ToEngine()
	if err != nil {
		s.fail(c, err)
		return
	}
	v, err := s.svc.Act(c.Request.Context(), req.GameID, *req.PlayerIndex, action)
	s.respond(c, v, err)
}
