package schema

// AIKnowledgeBlockTable represents the 'ai.knowledgeblock' table
type AIKnowledgeBlockTable struct {
	Table     string
	ID        string
	Slug      string
	Name      string
	Content   string
	Tags      string
	Position  string
	IsActive  string
	CreatedAt string
	UpdatedAt string
}

// AIKnowledgeBlock is the schema definition for ai.knowledgeblock
var AIKnowledgeBlock = AIKnowledgeBlockTable{
	Table:     "ai.knowledgeblock",
	ID:        "id",
	Slug:      "slug",
	Name:      "name",
	Content:   "content",
	Tags:      "tags",
	Position:  "position",
	IsActive:  "isactive",
	CreatedAt: "createdat",
	UpdatedAt: "updatedat",
}

func (t AIKnowledgeBlockTable) Columns() []string {
	return []string{
		t.ID, t.Slug, t.Name, t.Content, t.Tags, t.Position,
		t.IsActive, t.CreatedAt, t.UpdatedAt,
	}
}
