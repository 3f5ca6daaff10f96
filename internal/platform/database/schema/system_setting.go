package schema

// SystemSettingTable represents the 'system.setting' table
type SystemSettingTable struct {
	Table       string
	Key         string
	Value       string
	Description string
	UpdatedBy   string
	UpdatedAt   string
}

// SystemSetting is the schema definition for system.setting
var SystemSetting = SystemSettingTable{
	Table:       "system.setting",
	Key:         "key",
	Value:       "value",
	Description: "description",
	UpdatedBy:   "updatedby",
	UpdatedAt:   "updatedat",
}

func (t SystemSettingTable) Columns() []string {
	return []string{
		t.Key, t.Value, t.Description, t.UpdatedBy, t.UpdatedAt,
	}
}
