package checks

import (
	"testing"

	"backoffice/feature/feeds"

	"github.com/stretchr/testify/assert"
)

func TestCheckFeeds(t *testing.T) {
	report := CheckFeeds(
		[]string{"pair_orders", "security_alerts", "security_filings"},
		[]feeds.Object{{Dataset: "security_alerts", Key: "feeds/security_alerts.json"}},
	)
	assert.Equal(t, []string{"security_alerts"}, report.Present)
	assert.Equal(t, []string{"pair_orders", "security_filings"}, report.Missing)
}

func TestCheckFeeds_Empty(t *testing.T) {
	report := CheckFeeds(nil, nil)
	assert.NotNil(t, report.Present)
	assert.NotNil(t, report.Missing)
}
