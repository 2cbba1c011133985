package dto

import "time"

// OrderUserResponse identifies the customer of an order row.
type OrderUserResponse struct {
	Name   string `json:"name"`
	Avatar string `json:"avatar"`
}

// OrderResponse describes a row of the order table.
type OrderResponse struct {
	ID           string            `json:"id"`
	DisplayID    string            `json:"display_id"`
	User         OrderUserResponse `json:"user"`
	Project      string            `json:"project"`
	Address      string            `json:"address"`
	Date         time.Time         `json:"date"`
	ReadableDate string            `json:"readable_date"`
	Status       string            `json:"status"`
	Tone         string            `json:"tone"`
	Selected     bool              `json:"selected"`
}

// OrderViewResponse is the rendered state of an order table.
type OrderViewResponse struct {
	SessionID        string          `json:"session_id,omitempty"`
	Search           string          `json:"search"`
	Sort             string          `json:"sort"`
	Direction        string          `json:"direction"`
	Page             int             `json:"page"`
	TotalPages       int             `json:"total_pages"`
	PageSize         int             `json:"page_size"`
	TotalItems       int             `json:"total_items"`
	FilteredItems    int             `json:"filtered_items"`
	RangeStart       int             `json:"range_start"`
	RangeEnd         int             `json:"range_end"`
	IsFiltered       bool            `json:"is_filtered"`
	HasPrevious      bool            `json:"has_previous"`
	HasNext          bool            `json:"has_next"`
	Orders           []OrderResponse `json:"orders"`
	SelectedIDs      []string        `json:"selected_ids"`
	SelectedCount    int             `json:"selected_count"`
	AllSelected      bool            `json:"all_selected"`
	SomeSelected     bool            `json:"some_selected"`
	SelectionSummary string          `json:"selection_summary,omitempty"`
}

// SearchRequest replaces the search text of a view.
type SearchRequest struct {
	Query string `json:"query"`
}

// SortRequest changes ordering of a view.
type SortRequest struct {
	Key       string `json:"key"`
	Direction string `json:"direction"`
}

// PageRequest jumps to a page of a view.
type PageRequest struct {
	Page *int `json:"page" binding:"required"`
}
