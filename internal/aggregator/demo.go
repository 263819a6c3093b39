package aggregator

import "statusio-go/internal/status"

// DemoRecords returns the fixed synthetic record set used when demo mode
// is on: one record per urgency tier plus an explicitly non-premium
// account, so the classifier, renderer and visibility policy can all be
// exercised without live credentials.
func DemoRecords() []status.Record {
	return []status.Record{
		{Provider: "Real-Debrid (demo 31d)", Premium: status.PremiumYes, DaysLeft: status.Days(31), Username: "demo31"},
		{Provider: "AllDebrid (demo 16d)", Premium: status.PremiumYes, DaysLeft: status.Days(16), Username: "demo16"},
		{Provider: "Premiumize (demo 10d)", Premium: status.PremiumYes, DaysLeft: status.Days(10), Username: "demo10"},
		{Provider: "TorBox (demo 6d)", Premium: status.PremiumYes, DaysLeft: status.Days(6), Username: "demo6"},
		{Provider: "Debrid-Link (demo 2d)", Premium: status.PremiumYes, DaysLeft: status.Days(2), Username: "demo2"},
		{Provider: "Demo Provider (expired)", Premium: status.PremiumNo, DaysLeft: status.Days(0), Username: "demoExpired"},
	}
}
