package category

type Category struct {
	ID        int64
	Name      string
	ImageURL  *string
	SortOrder int
}

type CreateCategoryInput struct {
	Name      string
	ImageURL  *string
	SortOrder int
}
