package gamedata

// AttackDef defines a monster attack loaded from JSON.
// AnimationName and AudioKey are looked up by the presentation layer; the
// battle core only passes them through.
type AttackDef struct {
	ID            int    `json:"id"`
	Name          string `json:"name"`
	AnimationName string `json:"animationName"`
	AudioKey      string `json:"audioKey"`
}

// SpeciesDef defines a monster species loaded from JSON.
type SpeciesDef struct {
	ID         int    `json:"id"`
	Name       string `json:"name"`
	AssetKey   string `json:"assetKey"`
	Color      string `json:"color"`      // Hex color code used by the terminal renderer
	MaxHP      int    `json:"maxHp"`      // Hit points at level 1
	BaseAttack int    `json:"baseAttack"` // Attack at level 1
	BaseExp    int    `json:"baseExp"`    // Experience yield factor when defeated
	AttackIDs  []int  `json:"attackIds"`
}

// ItemType says what an item does when used in battle.
type ItemType string

const (
	ItemHeal    ItemType = "HEAL"
	ItemCapture ItemType = "CAPTURE"
)

// ItemDef defines an inventory item loaded from JSON.
type ItemDef struct {
	ID          int      `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	TypeKey     ItemType `json:"typeKey"`
	Value       int      `json:"value"` // HP restored for heal items
}

// EncounterDef is one row of the wild encounter table.
type EncounterDef struct {
	MonsterID   int `json:"monsterId"`
	MinLevel    int `json:"minLevel"`
	MaxLevel    int `json:"maxLevel"`
	SpawnWeight int `json:"spawnWeight"`
}

type attacksFile struct {
	Attacks []AttackDef `json:"attacks"`
}

type monstersFile struct {
	Monsters []SpeciesDef `json:"monsters"`
}

type itemsFile struct {
	Items []ItemDef `json:"items"`
}

type encountersFile struct {
	Encounters []EncounterDef `json:"encounters"`
}
