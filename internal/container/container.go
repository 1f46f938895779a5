package container

import (
	"context"

	"cloud.google.com/go/storage"
	"github.com/elastic/go-elasticsearch/v8"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/nlefevre/gocommerce/config"
	"github.com/nlefevre/gocommerce/internal/application"
	"github.com/nlefevre/gocommerce/internal/infrastructure/postgres"
	"github.com/nlefevre/gocommerce/internal/infrastructure/stripepay"
	handlers "github.com/nlefevre/gocommerce/internal/interface/http"
	"github.com/nlefevre/gocommerce/pkg/helpers"
)

// Container wires infrastructure, services, and handlers. Postgres is the
// only hard dependency; Redis, GCS, Elasticsearch, RabbitMQ, and Stripe
// degrade to disabled features when unconfigured or unreachable.
type Container struct {
	Cfg    *config.Config
	Logger *logrus.Logger

	Pool        *pgxpool.Pool
	Redis       *redis.Client
	GCS         *storage.Client
	ES          *elasticsearch.Client
	Pub         *helpers.RabbitPublisher
	JWT         *helpers.JWTManager
	Revocations helpers.RevocationStore

	UserHandler     *handlers.UserHandler
	AuthHandler     *handlers.AuthHandler
	ProductHandler  *handlers.ProductHandler
	CategoryHandler *handlers.CategoryHandler
	OrderHandler    *handlers.OrderHandler
	PaymentHandler  *handlers.PaymentHandler
	ReviewHandler   *handlers.ReviewHandler
	CartHandler     *handlers.CartHandler
	WishlistHandler *handlers.WishlistHandler
}

func New(ctx context.Context, cfg *config.Config, logger *logrus.Logger) (*Container, error) {
	pool, err := postgres.NewPool(ctx, cfg.PostgresDSN(), cfg.DBMaxConns, cfg.DBMinConns, cfg.DBMaxConnLife)
	if err != nil {
		return nil, err
	}

	rdb := helpers.NewRedisClient(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	if err := rdb.Ping(ctx).Err(); err != nil {
		logger.WithError(err).Warn("redis unreachable, token revocation and rate limiting disabled")
		rdb = nil
	}

	var gcs *storage.Client
	if cfg.GCSBucket != "" {
		gcs, err = helpers.NewGCSClient(ctx, cfg.GCSCredentialsJSONPath)
		if err != nil {
			logger.WithError(err).Warn("gcs client init failed, image uploads disabled")
			gcs = nil
		}
	}

	es, err := helpers.NewESClient(cfg.ESAddrs(), cfg.ElasticsearchUser, cfg.ElasticsearchPass)
	if err != nil {
		logger.WithError(err).Warn("elasticsearch client init failed, search disabled")
		es = nil
	}

	var pub *helpers.RabbitPublisher
	if cfg.RabbitMQURL != "" {
		pub, err = helpers.NewRabbitPublisher(cfg.RabbitMQURL, cfg.RabbitMQEmailQueue)
		if err != nil {
			logger.WithError(err).Warn("rabbitmq unreachable, transactional email disabled")
			pub = nil
		}
	}

	jwt := helpers.NewJWTManager(cfg.JWTSecret, cfg.TokenTTL)
	revocations := helpers.NewRevocationStore(rdb)

	userRepo := postgres.NewUserRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	categoryRepo := postgres.NewCategoryRepository(pool)
	orderRepo := postgres.NewOrderRepository(pool)
	paymentRepo := postgres.NewPaymentRepository(pool)
	reviewRepo := postgres.NewReviewRepository(pool)
	cartRepo := postgres.NewCartRepository(pool)
	wishlistRepo := postgres.NewWishlistRepository(pool)

	userSvc := application.NewUserService(userRepo, cartRepo, wishlistRepo, jwt, revocations, logger)
	productSvc := application.NewProductService(productRepo, gcs, cfg.GCSBucket, es, cfg.ESProductsIndex, logger)
	categorySvc := application.NewCategoryService(categoryRepo)
	orderSvc := application.NewOrderService(orderRepo, userRepo, productRepo)
	paymentSvc := application.NewPaymentService(orderRepo, paymentRepo, stripepay.New(cfg.StripeSecretKey, cfg.StripeCurrency), logger)
	reviewSvc := application.NewReviewService(reviewRepo, productRepo, userRepo)
	cartSvc := application.NewCartService(cartRepo, productRepo)
	wishlistSvc := application.NewWishlistService(wishlistRepo, productRepo)

	return &Container{
		Cfg:         cfg,
		Logger:      logger,
		Pool:        pool,
		Redis:       rdb,
		GCS:         gcs,
		ES:          es,
		Pub:         pub,
		JWT:         jwt,
		Revocations: revocations,

		UserHandler:     handlers.NewUserHandler(userSvc, logger),
		AuthHandler:     handlers.NewAuthHandler(userRepo, rdb, pub, cfg, logger),
		ProductHandler:  handlers.NewProductHandler(productSvc, logger),
		CategoryHandler: handlers.NewCategoryHandler(categorySvc),
		OrderHandler:    handlers.NewOrderHandler(orderSvc),
		PaymentHandler:  handlers.NewPaymentHandler(paymentSvc),
		ReviewHandler:   handlers.NewReviewHandler(reviewSvc),
		CartHandler:     handlers.NewCartHandler(cartSvc),
		WishlistHandler: handlers.NewWishlistHandler(wishlistSvc),
	}, nil
}

func (c *Container) Close() {
	if c.Pub != nil {
		c.Pub.Close()
	}
	if c.Redis != nil {
		_ = c.Redis.Close()
	}
	if c.GCS != nil {
		_ = c.GCS.Close()
	}
	if c.Pool != nil {
		c.Pool.Close()
	}
}
