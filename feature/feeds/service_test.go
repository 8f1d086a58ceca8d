package feeds

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"backoffice/core/reconcile"
	"backoffice/core/server"
	"backoffice/core/staging"
	"backoffice/core/storage/mocks"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

type row struct {
	ID string `json:"id"`
}

type recorder struct {
	calls [][]row
	err   error
}

func (r *recorder) replace(name string) func(context.Context, []row) (*staging.Result, error) {
	return func(_ context.Context, items []row) (*staging.Result, error) {
		if r.err != nil {
			return nil, r.err
		}
		r.calls = append(r.calls, items)
		return &staging.Result{Dataset: name, Rows: len(items)}, nil
	}
}

var testConfig = Config{Prefix: "feeds/", Extension: ".json", CacheTTLSeconds: 60}

func body(s string) io.ReadCloser {
	return io.NopCloser(strings.NewReader(s))
}

func TestRefresh(t *testing.T) {
	client := new(mocks.Client)
	svc := NewService(client, "bucket", testConfig, zap.NewNop())
	rec := &recorder{}
	svc.Register("pair_orders", JSON(rec.replace("pair_orders")))

	client.On("GetObject", mock.Anything, "bucket", "feeds/pair_orders.json", minio.GetObjectOptions{}).
		Return(body(`[{"id":"P1"},{"id":"P2"}]`), nil).Once()

	res, err := svc.Refresh(context.Background(), "pair_orders")
	require.NoError(t, err)
	assert.Equal(t, &staging.Result{Dataset: "pair_orders", Rows: 2}, res)
	assert.Equal(t, [][]row{{{ID: "P1"}, {ID: "P2"}}}, rec.calls)
	client.AssertExpectations(t)
}

func TestRefresh_Errors(t *testing.T) {
	ctx := context.Background()

	t.Run("UnknownDataset", func(t *testing.T) {
		svc := NewService(new(mocks.Client), "bucket", testConfig, nil)
		_, err := svc.Refresh(ctx, "nope")
		assert.ErrorIs(t, err, server.ErrNotFound)
	})

	t.Run("GetObjectFails", func(t *testing.T) {
		client := new(mocks.Client)
		svc := NewService(client, "bucket", testConfig, nil)
		svc.Register("security_alerts", JSON((&recorder{}).replace("security_alerts")))
		client.On("GetObject", mock.Anything, "bucket", "feeds/security_alerts.json", mock.Anything).
			Return(nil, errors.New("no such key"))

		_, err := svc.Refresh(ctx, "security_alerts")
		assert.EqualError(t, err, "feed security_alerts: get feeds/security_alerts.json: no such key")
	})

	t.Run("BadPayload", func(t *testing.T) {
		client := new(mocks.Client)
		rec := &recorder{}
		svc := NewService(client, "bucket", testConfig, nil)
		svc.Register("security_alerts", JSON(rec.replace("security_alerts")))
		client.On("GetObject", mock.Anything, "bucket", "feeds/security_alerts.json", mock.Anything).
			Return(body(`{"id":"not an array"}`), nil)

		_, err := svc.Refresh(ctx, "security_alerts")
		assert.ErrorIs(t, err, server.ErrInvalidInput)
		assert.Empty(t, rec.calls)
	})
}

func setupRefreshAll(t *testing.T, failing error) (*Service, *recorder, *observer.ObservedLogs) {
	client := new(mocks.Client)
	core, logs := observer.New(zapcore.InfoLevel)
	svc := NewService(client, "bucket", testConfig, zap.New(core))

	ok := &recorder{}
	bad := &recorder{err: failing}
	svc.Register("a_first", JSON(ok.replace("a_first")))
	svc.Register("b_failing", JSON(bad.replace("b_failing")))
	svc.Register("c_last", JSON(ok.replace("c_last")))

	for _, name := range []string{"a_first", "b_failing", "c_last"} {
		client.On("GetObject", mock.Anything, "bucket", "feeds/"+name+".json", mock.Anything).
			Return(body(`[{"id":"x"}]`), nil).Once()
	}
	return svc, ok, logs
}

func TestRefreshAll_StopsAtFirstFailure(t *testing.T) {
	svc, ok, _ := setupRefreshAll(t, errors.New("promote failed"))

	outcomes, err := svc.RefreshAll(context.Background(), false)
	assert.EqualError(t, err, "feed b_failing: promote failed")
	assert.Equal(t, []Outcome{{Dataset: "a_first", Rows: 1}}, outcomes)
	assert.Len(t, ok.calls, 1)
}

func TestRefreshAll_ContinueOnError(t *testing.T) {
	svc, ok, logs := setupRefreshAll(t, errors.New("promote failed"))

	outcomes, err := svc.RefreshAll(context.Background(), true)
	require.NoError(t, err)
	assert.Equal(t, []Outcome{
		{Dataset: "a_first", Rows: 1},
		{Dataset: "b_failing", Error: "feed b_failing: promote failed"},
		{Dataset: "c_last", Rows: 1},
	}, outcomes)
	assert.Len(t, ok.calls, 2)
	assert.Equal(t, 1, logs.FilterMessage("Dataset refresh failed, continuing").Len())
}

func TestUpload(t *testing.T) {
	client := new(mocks.Client)
	svc := NewService(client, "bucket", testConfig, nil)
	svc.Register("security_filings", JSON((&recorder{}).replace("security_filings")))

	payload := strings.NewReader(`[]`)
	client.On("PutObject", mock.Anything, "bucket", "feeds/security_filings.json", payload, int64(2),
		minio.PutObjectOptions{ContentType: "application/json"}).Return(minio.UploadInfo{}, nil)

	require.NoError(t, svc.Upload(context.Background(), "security_filings", payload, 2))
	client.AssertExpectations(t)

	err := svc.Upload(context.Background(), "nope", strings.NewReader(`[]`), 2)
	assert.ErrorIs(t, err, server.ErrNotFound)
}

func TestAvailable(t *testing.T) {
	client := new(mocks.Client)
	svc := NewService(client, "bucket", testConfig, nil)
	svc.Register("security_alerts", JSON((&recorder{}).replace("security_alerts")))
	svc.Register("pair_orders", JSON((&recorder{}).replace("pair_orders")))

	modified := time.Date(2024, 3, 1, 6, 0, 0, 0, time.UTC)
	ch := make(chan minio.ObjectInfo, 3)
	ch <- minio.ObjectInfo{Key: "feeds/security_alerts.json", Size: 10, LastModified: modified}
	ch <- minio.ObjectInfo{Key: "feeds/unrelated.json", Size: 5}
	ch <- minio.ObjectInfo{Key: "feeds/pair_orders.json", Size: 20, LastModified: modified}
	close(ch)
	client.On("ListObjects", mock.Anything, "bucket", minio.ListObjectsOptions{Prefix: "feeds/", Recursive: true}).
		Return((<-chan minio.ObjectInfo)(ch)).Once()

	objects, err := svc.Available(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []Object{
		{Dataset: "pair_orders", Key: "feeds/pair_orders.json", Size: 20, LastModified: modified},
		{Dataset: "security_alerts", Key: "feeds/security_alerts.json", Size: 10, LastModified: modified},
	}, objects)

	// second call is served from the cache
	again, err := svc.Available(context.Background())
	require.NoError(t, err)
	assert.Equal(t, objects, again)
	client.AssertNumberOfCalls(t, "ListObjects", 1)
}

func TestAvailable_ListError(t *testing.T) {
	client := new(mocks.Client)
	svc := NewService(client, "bucket", testConfig, nil)
	svc.Register("pair_orders", JSON((&recorder{}).replace("pair_orders")))

	ch := make(chan minio.ObjectInfo, 1)
	ch <- minio.ObjectInfo{Err: errors.New("access denied")}
	close(ch)
	client.On("ListObjects", mock.Anything, "bucket", mock.Anything).Return((<-chan minio.ObjectInfo)(ch))

	_, err := svc.Available(context.Background())
	assert.EqualError(t, err, "list feeds: access denied")
}

func TestDatasets_Sorted(t *testing.T) {
	svc := NewService(nil, "bucket", testConfig, nil)
	svc.Register("security_filings", nil)
	svc.Register("pair_orders", nil)
	assert.Equal(t, []string{"pair_orders", "security_filings"}, svc.Datasets())
	assert.Equal(t, "feeds/pair_orders.json", svc.ObjectName("pair_orders"))
}

func TestPreview(t *testing.T) {
	ctx := context.Background()
	client := new(mocks.Client)
	svc := NewService(client, "bucket", testConfig, nil)
	rec := &recorder{}
	svc.Register("pair_orders", JSON(rec.replace("pair_orders")))

	_, err := svc.Preview(ctx, "pair_orders")
	assert.ErrorIs(t, err, server.ErrNotFound)

	var got []row
	svc.RegisterPreview("pair_orders", JSONPreview(func(_ context.Context, items []row) (*reconcile.Plan, error) {
		got = items
		return &reconcile.Plan{Dataset: "pair_orders", Summary: reconcile.Summary{Total: 1, Added: 1}}, nil
	}))
	client.On("GetObject", mock.Anything, "bucket", "feeds/pair_orders.json", mock.Anything).
		Return(body(`[{"id":"P9"}]`), nil).Once()

	plan, err := svc.Preview(ctx, "pair_orders")
	require.NoError(t, err)
	assert.Equal(t, 1, plan.Summary.Added)
	assert.Equal(t, []row{{ID: "P9"}}, got)
	assert.Empty(t, rec.calls)
	client.AssertExpectations(t)
}

func TestPreview_BadPayload(t *testing.T) {
	client := new(mocks.Client)
	svc := NewService(client, "bucket", testConfig, nil)
	svc.Register("security_filings", JSON((&recorder{}).replace("security_filings")))
	svc.RegisterPreview("security_filings", JSONPreview(func(context.Context, []row) (*reconcile.Plan, error) {
		t.Fatal("preview must not run on a malformed feed")
		return nil, nil
	}))
	client.On("GetObject", mock.Anything, "bucket", "feeds/security_filings.json", mock.Anything).
		Return(body(`{"id":`), nil).Once()

	_, err := svc.Preview(context.Background(), "security_filings")
	assert.ErrorIs(t, err, server.ErrInvalidInput)
}
