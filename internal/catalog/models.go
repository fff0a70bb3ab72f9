package catalog

// Series is one row of series_data.
type Series struct {
	ID    int64  `json:"id" yaml:"id"`
	Name  string `json:"series_name" yaml:"series_name"`
	Year  string `json:"series_year" yaml:"series_year"`
	Month string `json:"series_month" yaml:"series_month"`
}

// Episode is one row of ep_data. Name holds the series name exactly as the
// post titled it, before the trailing episode number is stripped.
type Episode struct {
	ID       int64  `json:"id" yaml:"id"`
	Name     string `json:"ep_name" yaml:"ep_name"`
	Num      string `json:"ep_num" yaml:"ep_num"`
	Year     string `json:"ep_year" yaml:"ep_year"`
	Month    string `json:"ep_month" yaml:"ep_month"`
	SeriesID int64  `json:"series_id" yaml:"series_id"`
	Abstract string `json:"abstract" yaml:"abstract"`
}

// Counts reports the number of rows in each table.
type Counts struct {
	Series   int `json:"series" yaml:"series"`
	Episodes int `json:"episodes" yaml:"episodes"`
}

// DatabaseHealth describes the database file for diagnostics.
type DatabaseHealth struct {
	DBPath         string `json:"db_path"`
	DatabaseExists bool   `json:"database_exists"`
	SizeBytes      int64  `json:"size_bytes"`
	ModifiedAt     string `json:"modified_at,omitempty"`
	IntegrityCheck bool   `json:"integrity_check"`
	Counts         Counts `json:"counts"`
	Error          string `json:"error,omitempty"`
}
