package integrity

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"backoffice/core/database"
	"backoffice/core/rowcodec"
	"backoffice/core/staging"
	"backoffice/core/storage/mocks"
	"backoffice/feature/feeds"

	"github.com/gofiber/fiber/v2"
	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var filings = staging.Dataset{
	Name:    "security_filings",
	Target:  "security_filing",
	Staging: "security_filing_stage",
	Fields: []rowcodec.FieldSpec{
		{Name: "filing_id", Kind: rowcodec.KindString},
		{Name: "url", Kind: rowcodec.KindString},
	},
}

func setupSQLite(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.Connect(database.Config{Driver: database.DriverSQLite, Name: ":memory:"})
	require.NoError(t, err)
	require.NoError(t, db.Exec("CREATE TABLE security_filing (filing_id TEXT, url TEXT)").Error)
	require.NoError(t, db.Exec("CREATE TABLE security_filing_stage (filing_id TEXT)").Error)
	return db
}

func setupTestApp(t *testing.T, withFeeds bool) (*fiber.App, *mocks.Client) {
	app := fiber.New()
	client := new(mocks.Client)

	var fs *feeds.Service
	if withFeeds {
		fs = feeds.NewService(client, "test-bucket", feeds.Config{Prefix: "feeds/", Extension: ".json"}, zap.NewNop())
		noop := func(context.Context, []struct{}) (*staging.Result, error) { return &staging.Result{}, nil }
		fs.Register("security_filings", feeds.JSON(noop))
		fs.Register("pair_orders", feeds.JSON(noop))
	}

	feature := NewFeature(setupSQLite(t), []staging.Dataset{filings}, fs, zap.NewNop())
	require.True(t, feature.IsEnabled())
	require.NoError(t, feature.Load(app))
	return app, client
}

func listing(keys ...string) <-chan minio.ObjectInfo {
	ch := make(chan minio.ObjectInfo, len(keys))
	for _, k := range keys {
		ch <- minio.ObjectInfo{Key: k, Size: 2}
	}
	close(ch)
	return ch
}

func TestHandleSchemaCheck(t *testing.T) {
	app, _ := setupTestApp(t, false)

	resp, err := app.Test(httptest.NewRequest("GET", "/integrity/schema", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var body struct {
		Matched  bool `json:"matched"`
		Datasets []struct {
			Dataset string `json:"dataset"`
			Tables  []struct {
				Table          string   `json:"table"`
				MissingColumns []string `json:"missing_columns"`
			} `json:"tables"`
		} `json:"datasets"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.False(t, body.Matched)
	require.Len(t, body.Datasets, 1)
	assert.Equal(t, "security_filings", body.Datasets[0].Dataset)
	assert.Empty(t, body.Datasets[0].Tables[0].MissingColumns)
	assert.Equal(t, []string{"url"}, body.Datasets[0].Tables[1].MissingColumns)
}

func TestHandleFeedsCheck(t *testing.T) {
	app, client := setupTestApp(t, true)
	client.On("ListObjects", mock.Anything, "test-bucket", mock.Anything).
		Return(listing("feeds/security_filings.json", "feeds/unrelated.csv")).Once()

	resp, err := app.Test(httptest.NewRequest("GET", "/integrity/feeds", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var body map[string][]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, []string{"security_filings"}, body["present"])
	assert.Equal(t, []string{"pair_orders"}, body["missing"])
	client.AssertExpectations(t)
}

func TestHandleFeedsCheck_NotConfigured(t *testing.T) {
	app, _ := setupTestApp(t, false)

	resp, err := app.Test(httptest.NewRequest("GET", "/integrity/feeds", nil))
	require.NoError(t, err)
	assert.Equal(t, 500, resp.StatusCode)
}

func TestHandleIntegrityCheck(t *testing.T) {
	app, _ := setupTestApp(t, false)

	resp, err := app.Test(httptest.NewRequest("GET", "/integrity", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var body map[string]map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, false, body["schema"]["matched"])
	assert.Equal(t, "error", body["feeds"]["status"])
	assert.Equal(t, ErrNoFeeds.Error(), body["feeds"]["error"])
}
