// Package api exposes the game service over HTTP and a websocket stream.
package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"

	"github.com/jason-s-yu/uno/service/internal/game"
	"github.com/jason-s-yu/uno/service/internal/logging"
)

const (
	defaultPingInterval = 30 * time.Second
	writeTimeout        = 10 * time.Second
)

// Server routes HTTP requests to a game.Service.
type Server struct {
	svc     *game.Service
	log     logrus.FieldLogger
	limiter *rate.Limiter

	pingInterval   time.Duration
	originPatterns []string

	router *gin.Engine
}

// Option configures a Server.
type Option func(*Server)

// WithRateLimit caps mutating requests at perSecond with a burst of twice
// that.
func WithRateLimit(perSecond float64) Option {
	return func(s *Server) {
		burst := int(2 * perSecond)
		if burst < 1 {
			burst = 1
		}
		s.limiter = rate.NewLimiter(rate.Limit(perSecond), burst)
	}
}

func WithPingInterval(d time.Duration) Option { return func(s *Server) { s.pingInterval = d } }

// WithOriginPatterns lists the extra origins allowed to open the stream.
func WithOriginPatterns(patterns ...string) Option {
	return func(s *Server) { s.originPatterns = patterns }
}

func New(svc *game.Service, log logrus.FieldLogger, opts ...Option) *Server {
	s := &Server{
		svc:          svc,
		log:          log,
		limiter:      rate.NewLimiter(rate.Inf, 0),
		pingInterval: defaultPingInterval,
	}
	for _, o := range opts {
		o(s)
	}
	s.router = s.routes()
	return s
}

func (s *Server) routes() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), s.logRequests())

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	g := r.Group("/api/game")
	g.POST("/get", s.getGame)
	g.GET("/:gameId/subscribe", s.subscribe)

	mutating := g.Group("", s.rateLimit())
	mutating.POST("/create", s.createGame)
	mutating.POST("/join", s.joinGame)
	mutating.POST("/start", s.startGame)
	mutating.POST("/action", s.playAction)
	return r
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// ----------------------------------------------------------------------------
// Middleware
// ----------------------------------------------------------------------------

func (s *Server) rateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !s.limiter.Allow() {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "rate limit exceeded"})
			return
		}
		c.Next()
	}
}

func (s *Server) logRequests() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		entry := s.log.WithFields(logrus.Fields{
			"method":  c.Request.Method,
			"path":    c.FullPath(),
			"code":    c.Writer.Status(),
			"latency": time.Since(start).String(),
		}).WithField(logging.RemoteAddrKey, c.ClientIP())
		if c.Writer.Status() >= http.StatusInternalServerError {
			entry.Warn("request failed")
			return
		}
		entry.Debug("request")
	}
}
