package api

import (
	"context"
	"fmt"
	"github.com/alex-pricope/hackathon-voting/api/controllers"
	"github.com/alex-pricope/hackathon-voting/api/transport"
	"github.com/alex-pricope/hackathon-voting/live"
	"github.com/alex-pricope/hackathon-voting/logging"
	"github.com/alex-pricope/hackathon-voting/storage"
	"github.com/alex-pricope/hackathon-voting/voting"
	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	ginadapter "github.com/awslabs/aws-lambda-go-api-proxy/gin"
	"github.com/gin-gonic/gin"
	"os"
)

type Server struct {
	config *Config
}

func NewServer(config *Config) *Server {
	return &Server{
		config: config,
	}
}

// App is the wired application: stores, services and the HTTP engine.
type App struct {
	Engine      *gin.Engine
	Votes       *voting.VoteStore
	Results     *voting.ResultsStore
	Teams       *voting.TeamRegistry
	Submission  *voting.SubmissionService
	Query       *voting.QueryService
	Admin       *voting.AdminService
	Broadcaster *live.Broadcaster
	Scheduler   *voting.ResultsScheduler
}

// NewApp builds every component on top of docs and registers the routes.
func NewApp(ctx context.Context, config *Config, docs storage.DocumentStorage, ginMode string) (*App, error) {
	awards := config.Voting.AwardMap()
	weights := config.Voting.Weights()

	teams := voting.LoadTeamRegistry(ctx, config.Voting.Teams, docs)
	votes := voting.NewVoteStore(ctx, teams, config.Voting.Rubrics, docs)
	results := voting.NewResultsStore(ctx, awards, docs)

	query := voting.NewQueryService(votes, results, weights)
	broadcaster := live.NewBroadcaster(query.GetSnapshot, config.SendBuffer)
	submission := voting.NewSubmissionService(votes, broadcaster)
	admin := voting.NewAdminService(votes, results, teams, awards, broadcaster)

	app := &App{
		Engine:      transport.NewRouter(ginMode),
		Votes:       votes,
		Results:     results,
		Teams:       teams,
		Submission:  submission,
		Query:       query,
		Admin:       admin,
		Broadcaster: broadcaster,
	}

	if config.Schedule != "" {
		scheduler, err := voting.NewResultsScheduler(admin, config.Schedule, config.ResultsConfig.Timeout)
		if err != nil {
			return nil, err
		}
		app.Scheduler = scheduler
	}

	//Register controllers
	votingController := controllers.NewVotingController(submission, query, teams, config.Voting)
	votingController.RegisterRoutes(app.Engine)
	adminController := controllers.NewAdminController(admin, weights, config.AdminToken)
	adminController.RegisterRoutes(app.Engine)
	liveController := controllers.NewLiveController(broadcaster, admin, config.WriteTimeout)
	liveController.RegisterRoutes(app.Engine)

	return app, nil
}

func (s *Server) Start() {
	ctx := context.Background()

	docs, err := s.newDocumentStorage(ctx)
	if err != nil {
		logging.Log.Errorf("failed to create storage: %v", err)
		panic("failed to create storage")
	}

	app, err := NewApp(ctx, s.config, docs, gin.DebugMode)
	if err != nil {
		logging.Log.Errorf("failed to build app: %v", err)
		panic("failed to build app")
	}
	if app.Scheduler != nil {
		app.Scheduler.Start()
		defer app.Scheduler.Stop()
	}

	//Do not run lambda helper locally
	if s.config.Mode == "local" || os.Getenv("APP_ENV") == "local" {
		startLocal(app.Engine, s.config.Port)
	} else {
		startLambda(app.Engine)
	}
}

// newDocumentStorage picks the configured backend and wraps it with bounded
// retries.
func (s *Server) newDocumentStorage(ctx context.Context) (storage.DocumentStorage, error) {
	var inner storage.DocumentStorage
	switch s.config.Backend {
	case StorageBackendMemory:
		inner = storage.NewMemoryDocumentStorage()
	case StorageBackendFile:
		fileStorage, err := storage.NewFileDocumentStorage(s.config.Dir)
		if err != nil {
			return nil, err
		}
		inner = fileStorage
	case StorageBackendDynamo:
		cfg, err := awsconfig.LoadDefaultConfig(ctx)
		if err != nil {
			logging.Log.Errorf("failed to load AWS config: %v", err)
			return nil, err
		}
		inner = &storage.DynamoDocumentStorage{
			Client:    dynamodb.NewFromConfig(cfg),
			TableName: s.config.TableName,
		}
	default:
		return nil, fmt.Errorf("unknown storage backend %q", s.config.Backend)
	}
	logging.Log.Infof("STORAGE: using %s backend", s.config.Backend)

	return &timeoutDocumentStorage{
		inner: &storage.RetryingDocumentStorage{
			Inner:    inner,
			Attempts: s.config.RetryAttempts,
			Delay:    s.config.RetryDelay,
		},
		timeout: s.config.StorageConfig.Timeout,
	}, nil
}

// StartLambda sets up for AWS Lambda. The websocket channel is not available
// there; viewers fall back to polling /api/voting-status.
func startLambda(engine *gin.Engine) {
	ginLambda := ginadapter.NewV2(engine)

	handler := func(ctx context.Context, req events.APIGatewayV2HTTPRequest) (events.APIGatewayV2HTTPResponse, error) {
		logging.Log.Infof("Lambda handler triggered on path: %s", req.RawPath)
		return ginLambda.ProxyWithContext(ctx, req)
	}

	logging.Log.Info("Starting lambda")
	lambda.Start(handler)
}

// StartLocal starts a normal HTTP server on the configured port
func startLocal(engine *gin.Engine, port int) {
	logging.Log.Info(fmt.Sprintf("Starting server on http://localhost:%d", port))

	if err := engine.Run(fmt.Sprintf(":%d", port)); err != nil {
		logging.Log.Fatalf("Failed to run server: %v", err)
	}
}
