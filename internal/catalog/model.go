package catalog

// Review is a single rating and free-text review attached to a movie.
type Review struct {
	Rating float64 `json:"rating"`
	Review string  `json:"review"`
}

// Movie is one catalog entry. Genre is stored as typed and compared case-insensitively.
type Movie struct {
	Title   string   `json:"title"`
	Genre   string   `json:"genre"`
	Year    int      `json:"year"`
	Rating  float64  `json:"rating"`
	Reviews []Review `json:"reviews"`
}

// Catalog is the ordered list of movies. Insertion order is creation order.
type Catalog []Movie

// Clone returns a deep copy whose reviews never alias the receiver's.
func (c Catalog) Clone() Catalog {
	out := make(Catalog, len(c))
	for i, movie := range c {
		out[i] = movie.clone()
	}
	return out
}

// Genres returns each movie's genre as stored, in catalog order.
func (c Catalog) Genres() []string {
	genres := make([]string, 0, len(c))
	for _, movie := range c {
		genres = append(genres, movie.Genre)
	}
	return genres
}

func (m Movie) clone() Movie {
	reviews := make([]Review, len(m.Reviews))
	copy(reviews, m.Reviews)
	m.Reviews = reviews
	return m
}

// normalize replaces nil review lists so they persist as [] rather than null.
func (c Catalog) normalize() Catalog {
	if c == nil {
		return Catalog{}
	}
	for i := range c {
		if c[i].Reviews == nil {
			c[i].Reviews = []Review{}
		}
	}
	return c
}
