package api

import (
	"context"
	"net/http"
	"time"

	"github.com/RichardKnop/machinery/v1"
	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jinzhu/gorm"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/healthkernel/healthkernel-api/cards"
	"github.com/healthkernel/healthkernel-api/logmodule"
	"github.com/healthkernel/healthkernel-api/schema"
	"github.com/healthkernel/healthkernel-api/store"
)

var log *logrus.Entry

func init() {
	log = logrus.WithField("prefix", "gin")
}

// Server to run a http server instance
type Server struct {
	// Server instance
	server *http.Server

	// Stores
	core   store.CoreStore
	health store.HealthStore

	// Card assembly
	builder  *cards.Builder
	settings schema.GoalSettings

	// job pool enqueuer
	backgroundEnqueuer *machinery.Server
}

// NewServer new instance of server
func NewServer(
	ormDB *gorm.DB,
	mongoClient *mongo.Client,
	taskServer *machinery.Server,
	settings schema.GoalSettings) *Server {
	healthStore := store.NewHealthStore(
		mongoClient,
		viper.GetString("mongo.database"),
		settings.TrackingStartOverride,
	)

	return &Server{
		core:               store.NewCoreStore(ormDB),
		health:             healthStore,
		builder:            cards.NewBuilder(healthStore, healthStore, settings),
		settings:           settings,
		backgroundEnqueuer: taskServer,
	}
}

// Run to run the server
func (s *Server) Run(addr string) error {
	s.server = &http.Server{
		Addr:    addr,
		Handler: s.setupRouter(),
	}

	return s.server.ListenAndServe()
}

func (s *Server) setupRouter() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(sentrygin.New(sentrygin.Options{
		Repanic:         true,
		WaitForDelivery: false,
		Timeout:         10 * time.Second,
	}))

	apiRoute := r.Group("/api")
	apiRoute.Use(logmodule.Ginrus("API"))

	apiRoute.POST("/auth", s.requestJWT)

	// the open catalog route serves web documentation clients
	catalogRoute := apiRoute.Group("/signals")
	catalogRoute.Use(cors.New(cors.Config{
		AllowMethods:     []string{"GET"},
		AllowHeaders:     []string{"Origin"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		AllowAllOrigins:  true,
		MaxAge:           12 * time.Hour,
	}))
	{
		catalogRoute.GET("", s.listSignals)
	}

	// api route other than `/auth` and the catalog will apply the
	// following middleware
	apiRoute.Use(s.authMiddleware())

	cardRoute := apiRoute.Group("/cards")
	{
		cardRoute.GET("/:card_type", s.getCard)
	}

	presetRoute := apiRoute.Group("/presets")
	{
		presetRoute.GET("", s.listPresets)
		presetRoute.GET("/:preset_id", s.getPreset)
		presetRoute.GET("/:preset_id/run", s.runPreset)
	}

	dataRoute := apiRoute.Group("/data")
	{
		dataRoute.GET("/latest", s.getLatestData)
		dataRoute.GET("/history", s.getSignalHistory)
	}

	secretRoute := r.Group("/secret")
	secretRoute.Use(logmodule.Ginrus("Secret"))
	secretRoute.Use(s.apikeyAuthentication(viper.GetString("server.apikey.admin")))
	{
		secretRoute.POST("/devices", s.registerDevice)
		secretRoute.POST("/tracking-start/invalidate", s.invalidateTrackingStart)
	}

	r.GET("/information", s.information)
	r.GET("/healthz", s.healthz)

	return r
}

// Shutdown to shutdown the server
func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

// shouldInterupt sends error message and determine if it should interupt the current flow
func shouldInterupt(err error, c *gin.Context) bool {
	if err == nil {
		return false
	}

	log.Error(err)
	abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer)
	return true
}

func (s *Server) healthz(c *gin.Context) {
	// Ping both stores
	if err := s.core.PingORM(); shouldInterupt(err, c) {
		return
	}
	if err := s.health.Ping(); shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "OK",
		"version": viper.GetString("server.version"),
	})
}

func (s *Server) information(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"information": map[string]interface{}{
			"server": map[string]interface{}{
				"version": viper.GetString("server.version"),
			},
			"system_version": "HealthKernel 0.1",
			"docs":           viper.GetStringMap("docs"),
		},
	})
}

func responseWithEncoding(c *gin.Context, code int, obj ErrorResponse) {
	acceptEncoding := c.GetHeader("Accept-Encoding")
	switch acceptEncoding {
	default:
		c.JSON(code, obj)
	}
}

func abortWithEncoding(c *gin.Context, code int, obj ErrorResponse, errors ...error) {
	for _, err := range errors {
		c.Error(err)
	}
	responseWithEncoding(c, code, obj)
	c.Abort()
}
