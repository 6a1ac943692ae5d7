package models

type GenreSummary struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type MovieSummary struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Synopsis    string `json:"synopsis"`
	ImageURL    string `json:"imageUrl"`
	ReleaseDate string `json:"releaseDate"`
	Views       int64  `json:"views"`
}

type MovieDetails struct {
	ID           string         `json:"id"`
	Name         string         `json:"name"`
	Synopsis     string         `json:"synopsis"`
	ImageURL     string         `json:"imageUrl"`
	PathM3U8File string         `json:"pathM3U8File"`
	ReleaseDate  string         `json:"releaseDate"`
	Views        int64          `json:"views"`
	Genres       []GenreSummary `json:"genries"` // field name matches the server payload
	CreatedDate  string         `json:"createdDate"`
	UpdatedDate  string         `json:"updatedDate"`
}

// PagedList is the server's pagination envelope.
type PagedList[T any] struct {
	Items           []T  `json:"items"`
	Page            int  `json:"page"`
	PageSize        int  `json:"pageSize"`
	TotalCount      int  `json:"totalCount"`
	HasNextPage     bool `json:"hasNextPage"`
	HasPreviousPage bool `json:"hasPreviusPage"` // spelling matches the server
}

// MovieQuery describes the supported catalog filters. Zero values are
// omitted from the request so the server applies its own defaults.
type MovieQuery struct {
	Page        int
	PageSize    int
	GenreID     string
	SearchTerm  string
	ReleaseYear int
	Sort        string
}
