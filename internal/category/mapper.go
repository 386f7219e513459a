package category

type CategoryResponse struct {
	ID        int64   `json:"id"`
	Name      string  `json:"name"`
	ImageURL  *string `json:"imageUrl,omitempty"`
	SortOrder int     `json:"sortOrder"`
}

func ToResponse(c *Category) CategoryResponse {
	return CategoryResponse{
		ID:        c.ID,
		Name:      c.Name,
		ImageURL:  c.ImageURL,
		SortOrder: c.SortOrder,
	}
}

func ToResponses(list []*Category) []CategoryResponse {
	out := make([]CategoryResponse, 0, len(list))
	for _, c := range list {
		out = append(out, ToResponse(c))
	}
	return out
}
