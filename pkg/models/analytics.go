package models

// AnalyticsSummary aggregates cost and token accounting across tasks.
type AnalyticsSummary struct {
	TotalTasks         int     `json:"total_tasks"`
	CompletedTasks     int     `json:"completed_tasks"`
	FailedTasks        int     `json:"failed_tasks"`
	CancelledTasks     int     `json:"cancelled_tasks"`
	TotalCostUSD       float64 `json:"total_cost_usd"`
	TotalInputTokens   int     `json:"total_input_tokens"`
	TotalOutputTokens  int     `json:"total_output_tokens"`
	AvgDurationSeconds float64 `json:"avg_duration_seconds"`
}

// DailyCost is one day's aggregated spend.
type DailyCost struct {
	Date      string  `json:"date"` // YYYY-MM-DD
	CostUSD   float64 `json:"cost_usd"`
	TaskCount int     `json:"task_count"`
}

// AgentUsage is per-agent aggregated spend.
type AgentUsage struct {
	AgentName string  `json:"agent_name"`
	TaskCount int     `json:"task_count"`
	CostUSD   float64 `json:"cost_usd"`
}
