package api

// Series describes a catalog series in a transport-friendly format.
type Series struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Year  string `json:"year"`
	Month string `json:"month"`
}

// Episode describes a catalog episode in a transport-friendly format.
type Episode struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Number   string `json:"number"`
	Year     string `json:"year"`
	Month    string `json:"month"`
	SeriesID int64  `json:"seriesId"`
	Abstract string `json:"abstract"`
}

// DependencyStatus captures availability of an external dependency.
type DependencyStatus struct {
	Name        string `json:"name"`
	Command     string `json:"command"`
	Description string `json:"description"`
	Optional    bool   `json:"optional"`
	Available   bool   `json:"available"`
	Detail      string `json:"detail,omitempty"`
}

// Status aggregates database health for the status endpoint.
type Status struct {
	DatabasePath   string             `json:"databasePath"`
	DatabaseExists bool               `json:"databaseExists"`
	SizeBytes      int64              `json:"sizeBytes"`
	ModifiedAt     string             `json:"modifiedAt,omitempty"`
	IntegrityOK    bool               `json:"integrityOk"`
	SeriesCount    int                `json:"seriesCount"`
	EpisodeCount   int                `json:"episodeCount"`
	Error          string             `json:"error,omitempty"`
	Dependencies   []DependencyStatus `json:"dependencies,omitempty"`
}

// ErrorResponse is the body of every non-2xx reply.
type ErrorResponse struct {
	Error string `json:"error"`
}
