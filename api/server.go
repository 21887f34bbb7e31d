package api

import (
	"context"
	"fmt"
	"os"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	ginadapter "github.com/awslabs/aws-lambda-go-api-proxy/gin"
	"github.com/gin-gonic/gin"

	"github.com/santhoshclientric/Revyn-sub001/api/controllers"
	"github.com/santhoshclientric/Revyn-sub001/api/transport"
	"github.com/santhoshclientric/Revyn-sub001/llm"
	"github.com/santhoshclientric/Revyn-sub001/logging"
	"github.com/santhoshclientric/Revyn-sub001/payments"
	"github.com/santhoshclientric/Revyn-sub001/report"
	"github.com/santhoshclientric/Revyn-sub001/scoring"
	"github.com/santhoshclientric/Revyn-sub001/storage"
)

type Server struct {
	config *Config
}

func NewServer(config *Config) *Server {
	return &Server{
		config: config,
	}
}

func (s *Server) Start() {
	r := transport.NewRouter(gin.DebugMode)

	// Create storage
	cfg, err := awsconfig.LoadDefaultConfig(context.Background())
	if err != nil {
		logging.Log.Errorf("failed to load AWS config: %v", err)
		panic("failed to load AWS config")
	}

	dynamoClient := dynamodb.NewFromConfig(cfg)

	submissionStorage := &storage.DynamoSubmissionStorage{
		Client:    dynamoClient,
		TableName: s.config.TableNameSubmissions,
	}
	reportStorage := &storage.DynamoReportStorage{
		Client:    dynamoClient,
		TableName: s.config.TableNameReports,
	}
	orderStorage := &storage.DynamoOrderStorage{
		Client:    dynamoClient,
		TableName: s.config.TableNameOrders,
	}

	// The catalog is built once and handed to everything that scores.
	catalog := scoring.Default()

	provider, err := llm.NewProvider(context.Background(), s.config.LLM)
	if err != nil {
		logging.Log.Errorf("failed to create LLM provider: %v", err)
		panic("failed to create LLM provider")
	}
	reportService := report.NewService(provider, reportStorage, catalog)

	stripeClient := payments.NewStripeClient(s.config.Payments)

	//Register controllers
	catalogController := controllers.NewCatalogController(catalog)
	catalogController.RegisterRoutes(r)
	auditController := controllers.NewAuditController(submissionStorage, catalog)
	auditController.RegisterRoutes(r)
	reportsController := controllers.NewReportsController(submissionStorage, reportStorage, orderStorage, reportService)
	reportsController.RegisterRoutes(r)
	paymentsController := controllers.NewPaymentsController(orderStorage, submissionStorage, stripeClient, s.config.ReportAmountCents, s.config.ReportCurrency)
	paymentsController.RegisterRoutes(r)
	adminController := controllers.NewAdminController(submissionStorage, orderStorage)
	adminController.RegisterRoutes(r)

	//Do not run lambda helper locally
	if os.Getenv("APP_ENV") == "local" {
		startLocal(r, s.config.Port)
	} else {
		startLambda(r)
	}
}

// startLambda sets up for AWS Lambda
func startLambda(engine *gin.Engine) {
	ginLambda := ginadapter.NewV2(engine)

	handler := func(ctx context.Context, req events.APIGatewayV2HTTPRequest) (events.APIGatewayV2HTTPResponse, error) {
		logging.Log.Infof("Lambda handler triggered on path: %s", req.RawPath)
		return ginLambda.ProxyWithContext(ctx, req)
	}

	logging.Log.Info("Starting lambda")
	lambda.Start(handler)
}

// startLocal starts a normal HTTP server on the configured port
func startLocal(engine *gin.Engine, port int) {
	logging.Log.Info(fmt.Sprintf("Starting server on http://localhost:%d", port))

	if err := engine.Run(fmt.Sprintf(":%d", port)); err != nil {
		logging.Log.Fatalf("Failed to run server: %v", err)
	}
}
