package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/beka-birhanu/vinom-maze/api"
	api_i "github.com/beka-birhanu/vinom-maze/api/i"
	"github.com/beka-birhanu/vinom-maze/api/identity"
	mazeapi "github.com/beka-birhanu/vinom-maze/api/maze"
	"github.com/beka-birhanu/vinom-maze/config"
	dmn "github.com/beka-birhanu/vinom-maze/domain"
	"github.com/beka-birhanu/vinom-maze/infrastruture/lock"
	"github.com/beka-birhanu/vinom-maze/infrastruture/repo"
	"github.com/beka-birhanu/vinom-maze/infrastruture/token"
	"github.com/beka-birhanu/vinom-maze/logger"
	"github.com/beka-birhanu/vinom-maze/service"
	"github.com/beka-birhanu/vinom-maze/service/i"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	redisKeyPrefix      = "vinom"
	mazeCollection      = "mazes"
	escapeLockExpiry    = 10 * time.Second
	startupTimeout      = 30 * time.Second
	redisLockKeyPrefix  = redisKeyPrefix + ":"
	mongoDisconnectWait = 5 * time.Second
)

// Global variables for dependencies
var (
	redisClient    *redis.Client
	mongoClient    *mongo.Client
	mazeRepo       i.MazeRepo
	mazeLocker     i.Locker
	mazeService    i.MazeService
	mazeController api_i.Controller
	jwtTokenizer   i.Tokenizer
	router         *api.Router
	appLogger      *logger.Logger
)

func exitOnErr(msg string, err error) {
	if err != nil {
		appLogger.Error(fmt.Sprintf("%s: %v", msg, err))
		os.Exit(1)
	}
}

func initRedis(ctx context.Context) {
	redisClient = redis.NewClient(&redis.Options{
		Addr:     config.Envs.RedisAddr,
		Password: config.Envs.RedisPassword,
		DB:       config.Envs.RedisDB,
	})
	exitOnErr("Redis ping failed", redisClient.Ping(ctx).Err())
	appLogger.Info("Connected to Redis")
}

func initMongo(ctx context.Context) {
	uri := fmt.Sprintf("mongodb://%s:%s@%s:%v", config.Envs.DBUser, config.Envs.DBPassword, config.Envs.DBHost, config.Envs.DBPort)
	if config.Envs.DBUser == "" {
		uri = fmt.Sprintf("mongodb://%s:%v", config.Envs.DBHost, config.Envs.DBPort)
	}

	var err error
	mongoClient, err = mongo.Connect(ctx, options.Client().ApplyURI(uri))
	exitOnErr("Failed to connect to MongoDB", err)
	exitOnErr("MongoDB ping failed", mongoClient.Ping(ctx, nil))
	appLogger.Info("Connected to MongoDB")
}

// initStore wires the maze repository and the escape locker for the configured backend.
// Only the Redis backend locks across processes.
func initStore(ctx context.Context) {
	switch config.Envs.StoreBackend {
	case config.StoreMemory:
		mazeRepo = repo.NewMemoryMazeRepo()
		mazeLocker = lock.NewLocalLocker()
	case config.StoreRedis:
		initRedis(ctx)
		mazeRepo = repo.NewRedisMazeRepo(redisClient, redisKeyPrefix, config.Envs.MazeTTLSeconds)
		mazeLocker = lock.NewRedisLocker(redisClient, redisLockKeyPrefix, escapeLockExpiry)
	case config.StoreMongo:
		initMongo(ctx)
		mazeRepo = repo.NewMongoMazeRepo(mongoClient, config.Envs.DBName, mazeCollection)
		mazeLocker = lock.NewLocalLocker()
	default:
		exitOnErr("Selecting maze store", fmt.Errorf("unknown STORE_BACKEND %q", config.Envs.StoreBackend))
	}
	appLogger.Info(fmt.Sprintf("Maze store initialized (%s)", config.Envs.StoreBackend))
}

func initMazeService() {
	serviceLogger, err := logger.New("MAZE-SERVICE", config.ColorCyan, os.Stdout)
	exitOnErr("Creating maze service logger", err)

	mazeService, err = service.NewMazeService(&service.Config{
		Repo:         mazeRepo,
		Locker:       mazeLocker,
		Logger:       serviceLogger,
		MaxDimension: config.Envs.MaxMazeDimension,
	})
	exitOnErr("Creating maze service", err)
	appLogger.Info("Maze service initialized")
}

func initMazeController() {
	var err error
	mazeController, err = mazeapi.NewMazeController(mazeService)
	exitOnErr("Creating maze controller", err)
	appLogger.Info("Maze controller initialized")
}

func initJWTTokenizer() {
	if config.Envs.JWTSecret == "" {
		exitOnErr("Creating JWT tokenizer", fmt.Errorf("JWT_SECRET is not set"))
	}
	jwtTokenizer = token.NewJwtService(config.Envs.JWTSecret, config.Envs.JWTIssuer)
	appLogger.Info("JWT Tokenizer initialized")
}

func initRouter(t i.Tokenizer) {
	gin.SetMode(config.Envs.GinMode)
	router = api.NewRouter(api.Config{
		Addr:                    fmt.Sprintf("%s:%v", config.Envs.HostIP, config.Envs.RESTPort),
		BaseURL:                 "/api",
		Controllers:             []api_i.Controller{mazeController},
		AuthorizationMiddleware: identity.Authorize(t, dmn.ScopeMazesWrite),
	})
	appLogger.Info("Router initialized")
}

func main() {
	ctx, cancel := context.WithTimeout(context.Background(), startupTimeout)
	defer cancel()

	appLogger, _ = logger.New("APP", config.ColorGreen, os.Stdout)

	initJWTTokenizer()
	initStore(ctx)
	defer func() {
		if redisClient != nil {
			_ = redisClient.Close()
		}
		if mongoClient != nil {
			disconnectCtx, cancel := context.WithTimeout(context.Background(), mongoDisconnectWait)
			defer cancel()
			_ = mongoClient.Disconnect(disconnectCtx)
		}
	}()

	initMazeService()
	initMazeController()
	initRouter(jwtTokenizer)

	// Run HTTP server
	if err := router.Run(); err != nil {
		appLogger.Error(fmt.Sprintf("Starting server: %v", err))
		os.Exit(1)
	}
}
