package types

// TimeRange selects the analytics reporting window.
type TimeRange string

// Supported analytics time ranges.
const (
	TimeRange7d  TimeRange = "7d"
	TimeRange30d TimeRange = "30d"
	TimeRange90d TimeRange = "90d"
	TimeRange1y  TimeRange = "1y"
)

// IsValid reports whether r is a supported time range.
func (r TimeRange) IsValid() bool {
	switch r {
	case TimeRange7d, TimeRange30d, TimeRange90d, TimeRange1y:
		return true
	}
	return false
}

// PerformancePoint is one row of the performance-over-time series.
type PerformancePoint struct {
	Date       string `json:"date"`
	Views      int    `json:"views"`
	Engagement int    `json:"engagement"`
	Clicks     int    `json:"clicks"`
}

// PlatformShare is one row of the per-platform performance breakdown.
type PlatformShare struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
	Posts int    `json:"posts"`
}

// CampaignPerformance is one row of the per-campaign metrics breakdown.
type CampaignPerformance struct {
	Name        string `json:"name"`
	Impressions int    `json:"impressions"`
	Clicks      int    `json:"clicks"`
	Conversions int    `json:"conversions"`
}

// AnalyticsReport is the payload of GET /api/analytics.
type AnalyticsReport struct {
	TimeRange           TimeRange             `json:"time_range"`
	PerformanceOverTime []PerformancePoint    `json:"performance_over_time"`
	PlatformPerformance []PlatformShare       `json:"platform_performance"`
	CampaignPerformance []CampaignPerformance `json:"campaign_performance"`
}

// DashboardStats is the payload of GET /api/dashboard/stats.
// The backend uses camelCase keys for this endpoint only.
type DashboardStats struct {
	TotalClients    int `json:"totalClients"`
	PendingContent  int `json:"pendingContent"`
	ApprovedContent int `json:"approvedContent"`
	ActiveCampaigns int `json:"activeCampaigns"`
}
