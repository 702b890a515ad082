package manifest

// Plugin mirrors the fields of a plugin manifest.json the initializer
// rewrites or reports on. Unknown fields are ignored.
type Plugin struct {
	Group             string            `yaml:"Group" json:"Group"`
	Name              string            `yaml:"Name" json:"Name"`
	Version           string            `yaml:"Version" json:"Version"`
	Description       string            `yaml:"Description" json:"Description"`
	Authors           []Author          `yaml:"Authors" json:"Authors"`
	Website           string            `yaml:"Website" json:"Website"`
	ServerVersion     string            `yaml:"ServerVersion" json:"ServerVersion"`
	Dependencies      map[string]string `yaml:"Dependencies" json:"Dependencies"`
	DisabledByDefault bool              `yaml:"DisabledByDefault" json:"DisabledByDefault"`
	IncludesAssetPack bool              `yaml:"IncludesAssetPack" json:"IncludesAssetPack"`
	Main              string            `yaml:"Main" json:"Main"`
}

// Author is one entry of the Authors list.
type Author struct {
	Name  string `yaml:"Name" json:"Name"`
	Email string `yaml:"Email" json:"Email"`
	URL   string `yaml:"Url" json:"Url"`
}
