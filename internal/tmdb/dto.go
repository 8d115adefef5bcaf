package tmdb

// MovieResult is one movie in a search or discover page
type MovieResult struct {
	ID            int     `json:"id"`
	Title         string  `json:"title"`
	OriginalTitle string  `json:"original_title"`
	ReleaseDate   string  `json:"release_date"`
	GenreIDs      []int   `json:"genre_ids"`
	Popularity    float64 `json:"popularity"`
	VoteCount     int     `json:"vote_count"`
	VoteAverage   float64 `json:"vote_average"`
	Adult         bool    `json:"adult"`
}

// PageResponse is the envelope for paged movie lists
type PageResponse struct {
	Page         int           `json:"page"`
	Results      []MovieResult `json:"results"`
	TotalPages   int           `json:"total_pages"`
	TotalResults int           `json:"total_results"`
}

// GenreResult is one entry of the genre list
type GenreResult struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// GenreListResponse is the body of /genre/movie/list
type GenreListResponse struct {
	Genres []GenreResult `json:"genres"`
}

// StatusResponse is the body TMDB returns with error statuses
type StatusResponse struct {
	StatusCode    int    `json:"status_code"`
	StatusMessage string `json:"status_message"`
	Success       bool   `json:"success"`
}
