package settings

// Settings is the persisted connection record for the PBX. The pipeline
// reads it as an immutable snapshot; only the settings flow writes it.
type Settings struct {
	Domain     string `mapstructure:"domain"`
	Extension  string `mapstructure:"extension"`
	Key        string `mapstructure:"key"`
	AutoAnswer bool   `mapstructure:"auto_answer"`
}
