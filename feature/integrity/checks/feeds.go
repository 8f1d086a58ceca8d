package checks

import "backoffice/feature/feeds"

// FeedReport lists which registered datasets have a feed in the bucket.
type FeedReport struct {
	Present []string `json:"present"`
	Missing []string `json:"missing"`
}

// CheckFeeds matches the registered datasets against the listed feed objects.
// Datasets keep their given order.
func CheckFeeds(datasets []string, objects []feeds.Object) *FeedReport {
	found := make(map[string]struct{}, len(objects))
	for _, o := range objects {
		found[o.Dataset] = struct{}{}
	}

	report := &FeedReport{Present: []string{}, Missing: []string{}}
	for _, name := range datasets {
		if _, ok := found[name]; ok {
			report.Present = append(report.Present, name)
			continue
		}
		report.Missing = append(report.Missing, name)
	}
	return report
}
