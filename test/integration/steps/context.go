// Package steps provides step definitions for BDD integration tests.
package steps

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"time"

	"github.com/cucumber/godog"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/financy/backend/config"
	"github.com/financy/backend/internal/infra/dependency"
	"github.com/financy/backend/internal/integration/persistence"
	"github.com/financy/backend/test/integration/mock"
)

// TestContext holds the test state for each scenario.
type TestContext struct {
	// HTTP
	server       *httptest.Server
	engine       *gin.Engine
	response     *http.Response
	responseBody []byte

	// Request building
	requestHeaders map[string]string

	// Auth
	accessToken  string
	refreshToken string

	// Entities created through the API, addressable by name in steps
	categoryIDs    map[string]string
	transactionIDs map[string]string

	// Infra
	cfg   *config.Config
	db    *mock.Db
	redis *redis.Client
}

// expand substitutes placeholders like {category:Mercado}, {transaction:Feira},
// {access_token} and {refresh_token} with values captured earlier in the
// scenario.
func (tc *TestContext) expand(s string) string {
	s = strings.ReplaceAll(s, "{access_token}", tc.accessToken)
	s = strings.ReplaceAll(s, "{refresh_token}", tc.refreshToken)
	for name, id := range tc.categoryIDs {
		s = strings.ReplaceAll(s, "{category:"+name+"}", id)
	}
	for title, id := range tc.transactionIDs {
		s = strings.ReplaceAll(s, "{transaction:"+title+"}", id)
	}
	return s
}

// contextKey is used to store TestContext in context.Context.
type contextKey struct{}

// GetTestContext retrieves the TestContext from context.
func GetTestContext(ctx context.Context) *TestContext {
	if tc, ok := ctx.Value(contextKey{}).(*TestContext); ok {
		return tc
	}
	return nil
}

// SetTestContext stores the TestContext in context.
func SetTestContext(ctx context.Context, tc *TestContext) context.Context {
	return context.WithValue(ctx, contextKey{}, tc)
}

// InitializeTestSuite sets up resources before any scenarios run.
func InitializeTestSuite(ctx *godog.TestSuiteContext) {
	ctx.BeforeSuite(func() {
		gin.SetMode(gin.TestMode)
	})
}

// InitializeScenario registers all step definitions.
func InitializeScenario(ctx *godog.ScenarioContext) {
	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		db := mock.NewDb()
		if err := db.Reset(); err != nil {
			return ctx, fmt.Errorf("failed to reset database: %w", err)
		}

		redisClient := mock.NewRedis()
		if err := mock.ClearRedis(redisClient); err != nil {
			return ctx, fmt.Errorf("failed to clear redis: %w", err)
		}

		seedCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := persistence.SeedCategoryTemplates(seedCtx, db.DbConn); err != nil {
			return ctx, fmt.Errorf("failed to seed category templates: %w", err)
		}

		tc := &TestContext{
			requestHeaders: make(map[string]string),
			categoryIDs:    make(map[string]string),
			transactionIDs: make(map[string]string),
			cfg:            config.Load(),
			db:             db,
			redis:          redisClient,
		}

		injector := dependency.NewInjector(tc.cfg, db.DbConn, redisClient)
		tc.engine = injector.Router.Setup("test")
		tc.server = httptest.NewServer(tc.engine)

		return SetTestContext(ctx, tc), nil
	})

	ctx.After(func(ctx context.Context, sc *godog.Scenario, err error) (context.Context, error) {
		tc := GetTestContext(ctx)
		if tc != nil && tc.server != nil {
			tc.server.Close()
		}
		return ctx, nil
	})

	registerAPISteps(ctx)
	registerAuthSteps(ctx)
	registerFixtureSteps(ctx)
	registerResponseSteps(ctx)
}
