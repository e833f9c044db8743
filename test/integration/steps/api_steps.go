package steps

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/cucumber/godog"
)

// registerAPISteps registers HTTP request steps.
func registerAPISteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^the API server is running$`, theAPIServerIsRunning)
	ctx.Step(`^I send a "([^"]*)" request to "([^"]*)"$`, iSendARequestTo)
	ctx.Step(`^I send a "([^"]*)" request to "([^"]*)" with body:$`, iSendARequestToWithBody)
	ctx.Step(`^I set header "([^"]*)" to "([^"]*)"$`, iSetHeaderTo)
}

// registerAuthSteps registers authentication setup steps.
func registerAuthSteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^I am registered as "([^"]*)" with password "([^"]*)"$`, iAmRegisteredAs)
	ctx.Step(`^I am not authenticated$`, iAmNotAuthenticated)
}

// registerFixtureSteps registers steps that create domain data through the API.
func registerFixtureSteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^I have a category named "([^"]*)"$`, iHaveACategoryNamed)
	ctx.Step(`^I have an? (income|expense) "([^"]*)" of (\d+(?:\.\d+)?) on "([^"]*)"$`, iHaveATransaction)
	ctx.Step(`^I have an? (income|expense) "([^"]*)" of (\d+(?:\.\d+)?) on "([^"]*)" in "([^"]*)"$`, iHaveACategorizedTransaction)
}

func theAPIServerIsRunning(ctx context.Context) error {
	tc := GetTestContext(ctx)
	if tc == nil || tc.server == nil {
		return fmt.Errorf("test server is not running")
	}
	return nil
}

// doRequest sends one HTTP request against the scenario's server, expanding
// placeholders in the endpoint and body, and captures the response.
func (tc *TestContext) doRequest(method, endpoint string, body []byte) error {
	url := tc.server.URL + tc.expand(endpoint)

	var reader *bytes.Buffer
	if body != nil {
		reader = bytes.NewBuffer([]byte(tc.expand(string(body))))
	} else {
		reader = bytes.NewBuffer(nil)
	}

	req, err := http.NewRequest(method, url, reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for key, value := range tc.requestHeaders {
		req.Header.Set(key, value)
	}
	if tc.accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+tc.accessToken)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	tc.response = resp
	tc.responseBody, err = readBody(resp)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}
	return nil
}

func iSendARequestTo(ctx context.Context, method, endpoint string) (context.Context, error) {
	tc := GetTestContext(ctx)
	if tc == nil {
		return ctx, fmt.Errorf("test context not found")
	}
	if err := tc.doRequest(method, endpoint, nil); err != nil {
		return ctx, err
	}
	return SetTestContext(ctx, tc), nil
}

func iSendARequestToWithBody(ctx context.Context, method, endpoint string, body *godog.DocString) (context.Context, error) {
	tc := GetTestContext(ctx)
	if tc == nil {
		return ctx, fmt.Errorf("test context not found")
	}
	if err := tc.doRequest(method, endpoint, []byte(body.Content)); err != nil {
		return ctx, err
	}
	return SetTestContext(ctx, tc), nil
}

func iSetHeaderTo(ctx context.Context, header, value string) (context.Context, error) {
	tc := GetTestContext(ctx)
	if tc == nil {
		return ctx, fmt.Errorf("test context not found")
	}
	tc.requestHeaders[header] = value
	return SetTestContext(ctx, tc), nil
}

func iAmRegisteredAs(ctx context.Context, email, password string) (context.Context, error) {
	tc := GetTestContext(ctx)
	if tc == nil {
		return ctx, fmt.Errorf("test context not found")
	}

	body, _ := json.Marshal(map[string]string{
		"email":    email,
		"name":     "Test User",
		"password": password,
	})
	if err := tc.doRequest(http.MethodPost, "/api/v1/auth/register", body); err != nil {
		return ctx, err
	}
	if tc.response.StatusCode != http.StatusCreated {
		return ctx, fmt.Errorf("registration failed with status %d: %s", tc.response.StatusCode, string(tc.responseBody))
	}

	var auth struct {
		AccessToken  string `json:"access_token"`
		RefreshToken string `json:"refresh_token"`
	}
	if err := json.Unmarshal(tc.responseBody, &auth); err != nil {
		return ctx, fmt.Errorf("failed to parse registration response: %w", err)
	}
	tc.accessToken = auth.AccessToken
	tc.refreshToken = auth.RefreshToken

	return SetTestContext(ctx, tc), nil
}

func iAmNotAuthenticated(ctx context.Context) (context.Context, error) {
	tc := GetTestContext(ctx)
	if tc == nil {
		return ctx, fmt.Errorf("test context not found")
	}
	tc.accessToken = ""
	tc.refreshToken = ""
	return SetTestContext(ctx, tc), nil
}

func iHaveACategoryNamed(ctx context.Context, name string) (context.Context, error) {
	tc := GetTestContext(ctx)
	if tc == nil {
		return ctx, fmt.Errorf("test context not found")
	}

	body, _ := json.Marshal(map[string]string{"name": name})
	if err := tc.doRequest(http.MethodPost, "/api/v1/categories", body); err != nil {
		return ctx, err
	}
	if tc.response.StatusCode != http.StatusCreated {
		return ctx, fmt.Errorf("category creation failed with status %d: %s", tc.response.StatusCode, string(tc.responseBody))
	}

	var category struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(tc.responseBody, &category); err != nil {
		return ctx, fmt.Errorf("failed to parse category response: %w", err)
	}
	tc.categoryIDs[name] = category.ID

	return SetTestContext(ctx, tc), nil
}

func iHaveATransaction(ctx context.Context, transactionType, title string, amount float64, date string) (context.Context, error) {
	return createTransaction(ctx, transactionType, title, amount, date, "")
}

func iHaveACategorizedTransaction(ctx context.Context, transactionType, title string, amount float64, date, categoryName string) (context.Context, error) {
	return createTransaction(ctx, transactionType, title, amount, date, categoryName)
}

func createTransaction(ctx context.Context, transactionType, title string, amount float64, date, categoryName string) (context.Context, error) {
	tc := GetTestContext(ctx)
	if tc == nil {
		return ctx, fmt.Errorf("test context not found")
	}

	occurredAt, err := time.Parse("2006-01-02", date)
	if err != nil {
		return ctx, fmt.Errorf("invalid date %q: %w", date, err)
	}

	request := map[string]any{
		"title":       title,
		"amount":      amount,
		"type":        strings.ToUpper(transactionType),
		"occurred_at": occurredAt.UTC().Format(time.RFC3339),
	}
	if categoryName != "" {
		categoryID, ok := tc.categoryIDs[categoryName]
		if !ok {
			return ctx, fmt.Errorf("category %q was not created in this scenario", categoryName)
		}
		request["category_id"] = categoryID
	}

	body, _ := json.Marshal(request)
	if err := tc.doRequest(http.MethodPost, "/api/v1/transactions", body); err != nil {
		return ctx, err
	}
	if tc.response.StatusCode != http.StatusCreated {
		return ctx, fmt.Errorf("transaction creation failed with status %d: %s", tc.response.StatusCode, string(tc.responseBody))
	}

	var transaction struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(tc.responseBody, &transaction); err != nil {
		return ctx, fmt.Errorf("failed to parse transaction response: %w", err)
	}
	tc.transactionIDs[title] = transaction.ID

	return SetTestContext(ctx, tc), nil
}
