package schema

// ContentPostTable represents the 'content.post' table
type ContentPostTable struct {
	Table           string
	ID              string
	AuthorID        string
	Title           string
	Slug            string
	Excerpt         string
	Content         string
	ContentHTML     string
	CoverURL        string
	Category        string
	Tags            string
	MetaDescription string
	Status          string
	AIGenerated     string
	PublishedAt     string
	CreatedAt       string
	UpdatedAt       string
	DeletedAt       string
	SearchVector    string
}

// ContentPost is the schema definition for content.post
var ContentPost = ContentPostTable{
	Table:           "content.post",
	ID:              "id",
	AuthorID:        "authorid",
	Title:           "title",
	Slug:            "slug",
	Excerpt:         "excerpt",
	Content:         "content",
	ContentHTML:     "contenthtml",
	CoverURL:        "coverurl",
	Category:        "category",
	Tags:            "tags",
	MetaDescription: "metadescription",
	Status:          "status",
	AIGenerated:     "aigenerated",
	PublishedAt:     "publishedat",
	CreatedAt:       "createdat",
	UpdatedAt:       "updatedat",
	DeletedAt:       "deletedat",
	SearchVector:    "searchvector",
}

func (t ContentPostTable) Columns() []string {
	return []string{
		t.ID, t.AuthorID, t.Title, t.Slug, t.Excerpt, t.Content, t.ContentHTML,
		t.CoverURL, t.Category, t.Tags, t.MetaDescription, t.Status, t.AIGenerated,
		t.PublishedAt, t.CreatedAt, t.UpdatedAt, t.DeletedAt, t.SearchVector,
	}
}
