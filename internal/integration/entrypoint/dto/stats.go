package dto

import (
	"github.com/habit-tracker/backend/internal/application/usecase/stats"
	"github.com/habit-tracker/backend/internal/domain/entity"
)

// StatsPeriodResponse represents the resolved time window of a stats query.
type StatsPeriodResponse struct {
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
	Granularity string `json:"granularity"`
}

// HabitStatResponse represents one habit's completion count within the window.
type HabitStatResponse struct {
	HabitID         string `json:"habit_id"`
	Name            string `json:"name"`
	Color           string `json:"color"`
	CompletionCount int    `json:"completion_count"`
}

// HabitStatsResponse represents the response for the per-habit stats query.
type HabitStatsResponse struct {
	Period StatsPeriodResponse `json:"period"`
	Data   []HabitStatResponse `json:"data"`
}

// TrendPointResponse represents a single day bucket in the trend series.
type TrendPointResponse struct {
	Date        string `json:"date"`
	Label       string `json:"label"`
	Completions int    `json:"completions"`
}

// TrendsResponse represents the response for the trend series query.
type TrendsResponse struct {
	Granularity string               `json:"granularity"`
	Data        []TrendPointResponse `json:"data"`
}

// CategoryBreakdownItemResponse represents one category's share of completions.
type CategoryBreakdownItemResponse struct {
	Category    string  `json:"category"`
	Completions int     `json:"completions"`
	Percentage  float64 `json:"percentage"`
}

// CategoryBreakdownResponse represents the response for the category breakdown query.
type CategoryBreakdownResponse struct {
	Period           StatsPeriodResponse             `json:"period"`
	TotalCompletions int                             `json:"total_completions"`
	Data             []CategoryBreakdownItemResponse `json:"data"`
}

// ProjectStatsResponse represents the aggregated project summary.
type ProjectStatsResponse struct {
	Total       int `json:"total"`
	NotStarted  int `json:"not_started"`
	InProgress  int `json:"in_progress"`
	Completed   int `json:"completed"`
	AvgProgress int `json:"avg_progress"`
}

func toStatsPeriodResponse(period stats.StatsPeriod) StatsPeriodResponse {
	return StatsPeriodResponse{
		StartDate:   period.StartDate.Format(entity.DateKeyLayout),
		EndDate:     period.EndDate.Format(entity.DateKeyLayout),
		Granularity: string(period.Granularity),
	}
}

// ToHabitStatsResponse converts habit stats output to a HabitStatsResponse DTO.
func ToHabitStatsResponse(output *stats.GetHabitStatsOutput) HabitStatsResponse {
	data := make([]HabitStatResponse, len(output.Stats))
	for i, item := range output.Stats {
		data[i] = HabitStatResponse{
			HabitID:         item.HabitID.String(),
			Name:            item.Name,
			Color:           item.Color,
			CompletionCount: item.CompletionCount,
		}
	}
	return HabitStatsResponse{
		Period: toStatsPeriodResponse(output.Period),
		Data:   data,
	}
}

// ToTrendsResponse converts trend series output to a TrendsResponse DTO.
func ToTrendsResponse(output *stats.GetTrendsOutput) TrendsResponse {
	data := make([]TrendPointResponse, len(output.Points))
	for i, point := range output.Points {
		data[i] = TrendPointResponse{
			Date:        point.Date.Format(entity.DateKeyLayout),
			Label:       point.Label,
			Completions: point.Completions,
		}
	}
	return TrendsResponse{
		Granularity: string(output.Granularity),
		Data:        data,
	}
}

// ToCategoryBreakdownResponse converts category breakdown output to a
// CategoryBreakdownResponse DTO.
func ToCategoryBreakdownResponse(output *stats.GetCategoryBreakdownOutput) CategoryBreakdownResponse {
	data := make([]CategoryBreakdownItemResponse, len(output.Categories))
	for i, item := range output.Categories {
		data[i] = CategoryBreakdownItemResponse{
			Category:    item.Category,
			Completions: item.Completions,
			Percentage:  item.Percentage,
		}
	}
	return CategoryBreakdownResponse{
		Period:           toStatsPeriodResponse(output.Period),
		TotalCompletions: output.TotalCompletions,
		Data:             data,
	}
}

// ToProjectStatsResponse converts project summary output to a ProjectStatsResponse DTO.
func ToProjectStatsResponse(output *stats.GetProjectStatsOutput) ProjectStatsResponse {
	return ProjectStatsResponse{
		Total:       output.Total,
		NotStarted:  output.NotStarted,
		InProgress:  output.InProgress,
		Completed:   output.Completed,
		AvgProgress: output.AvgProgress,
	}
}
