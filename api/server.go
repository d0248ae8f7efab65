package api

import (
	"context"
	"crypto/rsa"
	"crypto/tls"
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

	"github.com/helpmate/helpmate-api/external/onesignal"
	"github.com/helpmate/helpmate-api/external/payment"
	"github.com/helpmate/helpmate-api/logmodule"
	"github.com/helpmate/helpmate-api/store"
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
	store      store.MarketCore
	mongoStore store.MongoStore

	// JWT private key
	jwtPrivateKey *rsa.PrivateKey

	// External services
	oneSignalClient *onesignal.OneSignalClient

	// http client for calling external services
	httpClient *http.Client

	// job pool enqueuer
	backgroundEnqueuer *machinery.Server
}

// NewServer new instance of server
func NewServer(
	ormDB *gorm.DB,
	mongoClient *mongo.Client,
	backgroundEnqueuer *machinery.Server,
	jwtKey *rsa.PrivateKey) *Server {
	tr := &http.Transport{
		TLSClientConfig: &tls.Config{InsecureSkipVerify: true},
	}

	httpClient := &http.Client{
		Timeout:   5 * time.Minute,
		Transport: tr,
	}

	mongoStore := store.NewMongoStore(mongoClient, viper.GetString("mongo.database"))

	return &Server{
		store:              store.NewMarketStore(ormDB, mongoStore, payment.NewSandboxGateway()),
		mongoStore:         mongoStore,
		jwtPrivateKey:      jwtKey,
		httpClient:         httpClient,
		oneSignalClient:    onesignal.NewClient(httpClient),
		backgroundEnqueuer: backgroundEnqueuer,
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
	apiRoute.GET("/information", s.information)

	apiRoute.POST("/auth", s.requestJWT)

	// api route other than `/auth` will apply the following middleware
	apiRoute.Use(s.authMiddleware())

	accountRoute := apiRoute.Group("/accounts")
	{
		accountRoute.POST("", s.accountRegister)
	}

	accountRoute.Use(s.recognizeAccountMiddleware())
	{
		accountRoute.GET("/me", s.accountDetail)
		accountRoute.PATCH("/me", s.accountUpdateMetadata)
	}

	authorized := apiRoute.Group("")
	authorized.Use(s.recognizeAccountMiddleware())

	requestRoute := authorized.Group("/requests")
	{
		requestRoute.POST("", s.createRequest)
		requestRoute.GET("", s.listOpenRequests)
		requestRoute.GET("/:requestID", s.getRequest)
		requestRoute.PATCH("/:requestID/close", s.closeRequest)

		requestRoute.POST("/:requestID/interests", s.expressInterest)
		requestRoute.GET("/:requestID/interests", s.listInterests)
		requestRoute.DELETE("/:requestID/interests", s.withdrawInterest)
		requestRoute.PATCH("/:requestID/interests/:helperNumber/accept", s.acceptInterest)
		requestRoute.PATCH("/:requestID/interests/:helperNumber/reject", s.rejectInterest)
	}

	conversationRoute := authorized.Group("/conversations")
	{
		conversationRoute.GET("/:conversationID", s.getConversation)
		conversationRoute.POST("/:conversationID/bargains", s.createOffer)
		conversationRoute.GET("/:conversationID/bargains", s.getBargainHistory)
		conversationRoute.POST("/:conversationID/transactions", s.createServiceTransaction)
	}

	bargainRoute := authorized.Group("/bargains")
	{
		bargainRoute.PATCH("/:bargainID/accept", s.acceptOffer)
		bargainRoute.PATCH("/:bargainID/confirm", s.confirmDeal)
		bargainRoute.PATCH("/:bargainID/cancel", s.cancelBargain)
	}

	transactionRoute := authorized.Group("/transactions")
	{
		transactionRoute.GET("/pending-feedbacks", s.listPendingFeedbacks)
		transactionRoute.GET("/:transactionID", s.getServiceTransaction)
		transactionRoute.PATCH("/:transactionID/pay", s.processPayment)
		transactionRoute.PATCH("/:transactionID/complete", s.completeService)
		transactionRoute.POST("/:transactionID/feedback", s.submitFeedback)
	}

	metricRoute := r.Group("/metrics")
	metricRoute.Use(logmodule.Ginrus("Metric"))
	metricRoute.Use(cors.New(cors.Config{
		AllowMethods:     []string{"GET"},
		AllowHeaders:     []string{"Origin"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		AllowAllOrigins:  true,
		MaxAge:           12 * time.Hour,
	}))
	metricRoute.Use(s.apikeyAuthentication(viper.GetString("server.apikey.metric")))
	{
		metricRoute.GET("/requests", s.metricOpenRequests)
	}

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
	// Ping db
	err := s.store.Ping()
	if shouldInterupt(err, c) {
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
			"android":        viper.GetStringMap("clients.android"),
			"ios":            viper.GetStringMap("clients.ios"),
			"system_version": "Helpmate 0.1",
			"docs":           viper.GetStringMap("docs"),
		},
	})
}

// metricOpenRequests exposes the size of the open request pool for the
// operations dashboard.
func (s *Server) metricOpenRequests(c *gin.Context) {
	requests, err := s.store.ListOpenRequests()
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{"open_requests": len(requests)})
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
