package gamedata

import (
	"testing"
	"testing/fstest"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samdwyer/monstertamer/internal/dice"
	"github.com/samdwyer/monstertamer/internal/errors"
)

func TestLoadRegistry(t *testing.T) {
	registry, err := LoadRegistry()
	require.NoError(t, err)

	iguanignite := registry.Species(1)
	require.NotNil(t, iguanignite)
	assert.Equal(t, "Iguanignite", iguanignite.Name)
	assert.Len(t, registry.Attacks(iguanignite.AttackIDs), 2)

	slash := registry.Attack(1)
	require.NotNil(t, slash)
	assert.Equal(t, "SLASH", slash.AnimationName)

	potion := registry.Item(1)
	require.NotNil(t, potion)
	assert.Equal(t, ItemHeal, potion.TypeKey)
	assert.Equal(t, 30, potion.Value)

	assert.Nil(t, registry.Species(999))
	assert.NotEmpty(t, registry.Items())
}

func TestAttacksSkipsUnknownAndCaps(t *testing.T) {
	registry := NewRegistry([]AttackDef{{ID: 1}, {ID: 2}, {ID: 3}, {ID: 4}, {ID: 5}}, nil, nil, nil)

	assert.Len(t, registry.Attacks([]int{1, 99, 2}), 2)
	assert.Len(t, registry.Attacks([]int{1, 2, 3, 4, 5}), MaxAttacks)
}

func TestValidateRejectsDanglingReferences(t *testing.T) {
	registry := NewRegistry(nil, []SpeciesDef{{ID: 1, AttackIDs: []int{7}}}, nil, nil)
	err := registry.Validate()
	require.Error(t, err)
	assert.True(t, errors.IsValidation(err))

	registry = NewRegistry([]AttackDef{{ID: 7}}, []SpeciesDef{{ID: 1, AttackIDs: []int{7}}}, nil,
		[]EncounterDef{{MonsterID: 2, MinLevel: 1, MaxLevel: 2, SpawnWeight: 1}})
	assert.Error(t, registry.Validate())

	registry = NewRegistry([]AttackDef{{ID: 7}}, []SpeciesDef{{ID: 1, AttackIDs: []int{7}}}, nil,
		[]EncounterDef{{MonsterID: 1, MinLevel: 5, MaxLevel: 2, SpawnWeight: 1}})
	assert.Error(t, registry.Validate())
}

func TestSpawnRandomWeighted(t *testing.T) {
	registry := NewRegistry(nil,
		[]SpeciesDef{{ID: 1, Name: "A"}, {ID: 2, Name: "B"}},
		nil,
		[]EncounterDef{
			{MonsterID: 1, MinLevel: 2, MaxLevel: 4, SpawnWeight: 30},
			{MonsterID: 2, MinLevel: 5, MaxLevel: 5, SpawnWeight: 10},
		})

	species, level := registry.SpawnRandom(dice.NewManualRoller(29, 3))
	require.NotNil(t, species)
	assert.Equal(t, "A", species.Name)
	assert.Equal(t, 3, level)

	species, level = registry.SpawnRandom(dice.NewManualRoller(30))
	require.NotNil(t, species)
	assert.Equal(t, "B", species.Name)
	assert.Equal(t, 5, level)

	empty := NewRegistry(nil, nil, nil, nil)
	species, _ = empty.SpawnRandom(dice.NewManualRoller())
	assert.Nil(t, species)
}

func TestLoadFromReportsErrors(t *testing.T) {
	fsys := fstest.MapFS{"bad.json": {Data: []byte("{not json")}}

	_, err := LoadFrom[itemsFile](fsys, "bad.json")
	assert.True(t, errors.IsValidation(err))

	_, err = LoadFrom[itemsFile](fsys, "missing.json")
	assert.True(t, errors.IsNotFound(err))
}

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		input string
		valid bool
	}{
		{"#FF0000", true},
		{"FF0000", true},
		{"#1E90FF", true},
		{"invalid", false},
		{"#FFF", false},
		{"#GG0000", false},
	}

	for _, tt := range tests {
		_, err := ParseHexColor(tt.input)
		if tt.valid {
			assert.NoError(t, err, tt.input)
		} else {
			assert.Error(t, err, tt.input)
		}
	}

	s := SpeciesDef{Color: "nope"}
	assert.Equal(t, tcell.ColorWhite, s.TCellColor())
}
