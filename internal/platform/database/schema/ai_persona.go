package schema

// AIPersonaTable represents the 'ai.persona' table
type AIPersonaTable struct {
	Table         string
	ID            string
	Slug          string
	Name          string
	Role          string
	Description   string
	BasePrompt    string
	PreferredTone string
	IsActive      string
	IsDefault     string
	CreatedAt     string
	UpdatedAt     string
}

// AIPersona is the schema definition for ai.persona
var AIPersona = AIPersonaTable{
	Table:         "ai.persona",
	ID:            "id",
	Slug:          "slug",
	Name:          "name",
	Role:          "role",
	Description:   "description",
	BasePrompt:    "baseprompt",
	PreferredTone: "preferredtone",
	IsActive:      "isactive",
	IsDefault:     "isdefault",
	CreatedAt:     "createdat",
	UpdatedAt:     "updatedat",
}

func (t AIPersonaTable) Columns() []string {
	return []string{
		t.ID, t.Slug, t.Name, t.Role, t.Description, t.BasePrompt,
		t.PreferredTone, t.IsActive, t.IsDefault, t.CreatedAt, t.UpdatedAt,
	}
}
